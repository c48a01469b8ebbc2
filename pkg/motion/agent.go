// Package motion holds the agents that animate the diorama. Each agent
// owns its subtree exclusively and is stepped by the scheduler at a fixed
// cadence; everything else in the scene is static after build.
package motion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/geo"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
)

// Agent is one simulation participant. Update advances its state by dt
// seconds and poses its nodes; it must never touch nodes of other agents.
type Agent interface {
	Name() string
	Update(dt float64)
}

// View is a rider camera placement in world space. The renderer keeps
// its own up vector and field of view.
type View struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
}

// POV is a first person camera placement. A zero Up or FOVDeg leaves the
// renderer's defaults in place; only the helicopter overrides Up, so its
// banking leans the horizon.
type POV struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	Up       mgl64.Vec3
	FOVDeg   float64
}

// CameraSource is the capability of agents a rider camera can follow.
// Callers discover it with a type assertion, not a registry.
type CameraSource interface {
	Agent
	CameraTarget() View
}

// POVSource is the capability of agents that host a first person view.
type POVSource interface {
	Agent
	POV() POV
}

// deckGazeM is how far past the rim the observation view looks.
const deckGazeM = 60.0

// DeckView rides the rotating observation deck. The anchor is a child of
// the deck rotor, so the vantage turns with the deck and always faces
// outward over the rim.
type DeckView struct {
	name   string
	anchor *scene.Node
}

func NewDeckView(name string, anchor *scene.Node) *DeckView {
	return &DeckView{name: name, anchor: anchor}
}

func (v *DeckView) Name() string { return v.name }

func (v *DeckView) Update(float64) {}

func (v *DeckView) POV() POV {
	pos := v.anchor.WorldPosition()
	out := v.anchor.TransformDirection(mgl64.Vec3{1, 0, 0})
	if !geo.Finite(out) || out.Len() < 1e-9 {
		out = mgl64.Vec3{1, 0, 0}
	}
	return POV{Position: pos, LookAt: pos.Add(out.Normalize().Mul(deckGazeM))}
}
