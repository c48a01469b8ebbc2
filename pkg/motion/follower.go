package motion

import (
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/geo"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
)

// Follower drives a node around a closed loop at constant ground speed.
// Traffic cars and the hero taxi are followers with different speeds and
// start offsets; spacing between followers on the same loop is therefore
// constant for equal speeds.
type Follower struct {
	name  string
	node  *scene.Node
	loop  *geo.Curve
	t     float64
	rate  float64 // param per second
	ahead float64 // look ahead param for heading
}

// NewFollower starts the node at param start on the loop. Speed is meters
// per second; the param rate is derived from the measured loop length.
func NewFollower(name string, node *scene.Node, loop *geo.Curve, speedMPS, start float64) *Follower {
	f := &Follower{
		name:  name,
		node:  node,
		loop:  loop,
		t:     geo.Mod1(start),
		rate:  speedMPS / loop.Length(),
		ahead: 2.0 / loop.Length(),
	}
	f.pose()
	return f
}

func (f *Follower) Name() string { return f.name }

// Progress reports the loop param in [0,1).
func (f *Follower) Progress() float64 { return f.t }

func (f *Follower) Update(dt float64) {
	f.t = geo.Mod1(f.t + f.rate*dt)
	f.pose()
}

func (f *Follower) pose() {
	p := f.loop.PointAt(f.t)
	q := f.loop.PointAt(geo.Mod1(f.t + f.ahead))
	if !geo.Finite(p) || !geo.Finite(q) {
		return
	}
	f.node.SetPosition(p.X(), p.Y(), p.Z())
	dir := q.Sub(p)
	if dir.Len() < 1e-9 {
		return
	}
	f.node.Rotation = headingQuat(dir)
}

// Taxi is the hero cab: a follower carrying a fixed in-cab camera rig,
// an eye over the driver's seat and a view target out past the hood.
type Taxi struct {
	*Follower
	eye  *scene.Node
	gaze *scene.Node
}

// NewTaxi builds the rig as children of the car node, so the view turns
// and dips with the body for free.
func NewTaxi(name string, node *scene.Node, loop *geo.Curve, speedMPS, start float64) *Taxi {
	eye := scene.NewGroup(name + "-eye")
	eye.SetPosition(-0.35, 1.32, 0.15)
	node.AddChild(eye)

	gaze := scene.NewGroup(name + "-gaze")
	gaze.SetPosition(-0.35, 1.05, 14)
	node.AddChild(gaze)

	return &Taxi{
		Follower: NewFollower(name, node, loop, speedMPS, start),
		eye:      eye,
		gaze:     gaze,
	}
}

func (t *Taxi) CameraTarget() View {
	return View{Position: t.eye.WorldPosition(), LookAt: t.gaze.WorldPosition()}
}
