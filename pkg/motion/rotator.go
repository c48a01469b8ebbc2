package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
)

// Rotator spins a node about a fixed axis at constant RPM: the saucer
// deck, the mall gears. Negative RPM reverses, which is how the second
// gear of a meshed pair turns.
type Rotator struct {
	name  string
	node  *scene.Node
	axis  mgl64.Vec3
	omega float64 // rad/s, signed
	phase float64
	angle float64
}

func NewRotator(name string, node *scene.Node, axis mgl64.Vec3, rpm, phase float64) *Rotator {
	r := &Rotator{
		name:  name,
		node:  node,
		axis:  axis,
		omega: rpm * 2 * math.Pi / 60,
		phase: phase,
	}
	r.pose()
	return r
}

func (r *Rotator) Name() string { return r.name }

// Angle reports the accumulated rotation past the phase offset.
func (r *Rotator) Angle() float64 { return r.angle }

func (r *Rotator) Update(dt float64) {
	r.angle += r.omega * dt
	r.pose()
}

func (r *Rotator) pose() {
	r.node.Rotation = mgl64.QuatRotate(r.phase+r.angle, r.axis)
}

// Pulser breathes a light between a dim floor and its base intensity.
// The beacon runs one; at night the diorama adds one for the pad lamps'
// parent light as well.
type Pulser struct {
	name   string
	node   *scene.Node
	base   float64
	period float64
	t      float64
}

func NewPulser(name string, node *scene.Node, period float64) *Pulser {
	p := &Pulser{name: name, node: node, period: period}
	if node.Light != nil {
		p.base = node.Light.Intensity
	}
	return p
}

func (p *Pulser) Name() string { return p.name }

func (p *Pulser) Update(dt float64) {
	if p.node.Light == nil || p.period <= 0 {
		return
	}
	p.t += dt
	wave := 0.5 + 0.5*math.Sin(2*math.Pi*p.t/p.period)
	p.node.Light.Intensity = p.base * (0.3 + 0.7*wave)
}
