package diorama

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/audio"
)

// NodePose is one moving node's local transform for a streamed frame.
// Rotation uses the same [x, y, z, w] order as the exported document.
type NodePose struct {
	ID        int        `json:"id"`
	Position  [3]float64 `json:"position"`
	Rotation  [4]float64 `json:"rotation"`
	Intensity *float64   `json:"intensity,omitempty"`
}

// CameraPose is a ride-along view for one agent, ready for a chase
// camera: where the eye sits and what it watches.
type CameraPose struct {
	Name     string     `json:"name"`
	Position [3]float64 `json:"position"`
	LookAt   [3]float64 `json:"look_at"`
}

// POVPose is a first person view. A zero up vector or field of view
// tells the client to keep its own defaults.
type POVPose struct {
	Name     string     `json:"name"`
	Position [3]float64 `json:"position"`
	LookAt   [3]float64 `json:"look_at"`
	Up       [3]float64 `json:"up"`
	FOVDeg   float64    `json:"fov_deg"`
}

// Frame is the per-tick delta sent to connected clients: poses for the
// dynamic nodes, the current state of every sound loop, and the camera
// rides on offer. Static geometry never reappears here; clients get it
// once from the scene document.
type Frame struct {
	Type    string         `json:"type"`
	Tick    uint64         `json:"tick"`
	Night   bool           `json:"night"`
	Nodes   []NodePose     `json:"nodes"`
	Sounds  []audio.Status `json:"sounds,omitempty"`
	Cameras []CameraPose   `json:"cameras,omitempty"`
	POVs    []POVPose      `json:"povs,omitempty"`
}

func triple(v mgl64.Vec3) [3]float64 {
	return [3]float64{v[0], v[1], v[2]}
}

// Frame snapshots the dynamic node set after a simulation step.
func (d *Diorama) Frame(tick uint64, sounds []audio.Status) Frame {
	poses := make([]NodePose, 0, len(d.dynamic))
	for _, n := range d.dynamic {
		pose := NodePose{
			ID:       n.ID,
			Position: [3]float64{n.Position[0], n.Position[1], n.Position[2]},
			Rotation: [4]float64{n.Rotation.V[0], n.Rotation.V[1], n.Rotation.V[2], n.Rotation.W},
		}
		if n.Light != nil {
			v := n.Light.Intensity
			pose.Intensity = &v
		}
		poses = append(poses, pose)
	}

	var cams []CameraPose
	for _, c := range d.Sched.CameraSources() {
		view := c.CameraTarget()
		cams = append(cams, CameraPose{Name: c.Name(), Position: triple(view.Position), LookAt: triple(view.LookAt)})
	}

	var povs []POVPose
	for _, p := range d.Sched.POVSources() {
		pov := p.POV()
		povs = append(povs, POVPose{
			Name:     p.Name(),
			Position: triple(pov.Position),
			LookAt:   triple(pov.LookAt),
			Up:       triple(pov.Up),
			FOVDeg:   pov.FOVDeg,
		})
	}

	return Frame{Type: "frame", Tick: tick, Night: d.night, Nodes: poses, Sounds: sounds, Cameras: cams, POVs: povs}
}
