// Package diorama assembles the full scene from a spec: static structures,
// lights, and the agent roster that animates it. Everything downstream of
// the seed is deterministic, so two builds from the same spec are
// identical node for node.
package diorama

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/audio"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/geo"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/input"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/motion"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/sim"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/structures"
)

const nightEmissive = 1.5

// Options carries the runtime seams: where helicopter input comes from
// and which audio service hands out the positional loops. Nil fields get
// inert defaults, which is what the build and validate commands want.
type Options struct {
	Source input.Source
	Sounds audio.Service
}

// Diorama is the built world: the scene tree, the stepped agents, and the
// handles the server needs at runtime.
type Diorama struct {
	Spec  *spec.DioramaSpec
	Root  *scene.Node
	Sched *sim.Scheduler

	Train     *motion.Train
	Taxi      *motion.Taxi
	Heli      *motion.Helicopter
	Elevators []*motion.Elevator

	sun     *scene.Node
	ambient *scene.Node
	night   bool

	dynamic []*scene.Node
}

// Build generates the diorama. The spec seed drives every random draw;
// agents get child seeds so adding one subsystem does not reshuffle the
// draws of another.
func Build(sp *spec.DioramaSpec, opts Options) *Diorama {
	if opts.Source == nil {
		opts.Source = input.NewStick()
	}
	if opts.Sounds == nil {
		opts.Sounds = audio.Muted{}
	}

	rng := rand.New(rand.NewSource(sp.Seed))
	track := geo.NewCurve(geo.FromTriples(sp.Monorail.Points))
	road := geo.NewClosedCurve(geo.FromTriples(sp.Road.Points))

	d := &Diorama{
		Spec:  sp,
		Root:  scene.NewGroup(sp.Name),
		Sched: sim.NewScheduler(),
	}

	d.addLights()
	d.Root.AddChild(structures.Ground(sp.Ground, road, rng))

	rail := structures.Monorail(sp.Monorail, track, columnVeto(sp, road))
	d.Root.AddChild(rail.Root)

	needle := structures.Needle(sp.Needle)
	d.Root.AddChild(needle.Root)

	d.Root.AddChild(structures.Museum(sp.Museum, track))
	d.Root.AddChild(structures.Tunnel(sp.Tunnel, track))
	d.Root.AddChild(structures.Skyline(sp.Skyline, rng))

	mall := structures.Mall(sp.Mall)
	d.Root.AddChild(mall.Root)

	d.Root.AddChild(structures.Pad(sp.Helicopter))

	heli := structures.Helicopter()
	d.Root.AddChild(heli.Root)

	traffic := scene.NewGroup("traffic")
	d.Root.AddChild(traffic)

	// Agents, in a fixed step order.
	d.Train = motion.NewTrain(sp.Monorail, track, rail.Cars, opts.Sounds, childRand(rng))
	d.Sched.Add(d.Train)
	d.track(rail.Cars[:]...)

	taxiNode := structures.Taxi("hero-taxi")
	traffic.AddChild(taxiNode)
	// Offset from the traffic slots so the cab never spawns inside a car.
	d.Taxi = motion.NewTaxi("hero-taxi", taxiNode, road, sp.Road.TaxiSpeedMPS, 0.5+0.5/float64(sp.Road.Cars+1))
	d.Sched.Add(d.Taxi)
	d.track(taxiNode)

	carRand := childRand(rng)
	for i := 0; i < sp.Road.Cars; i++ {
		name := fmt.Sprintf("traffic-%d", i)
		node := structures.RandomCar(name, carRand)
		traffic.AddChild(node)
		start := float64(i) / float64(sp.Road.Cars)
		d.Sched.Add(motion.NewFollower(name, node, road, sp.Road.CarSpeedMPS, start))
		d.track(node)
	}

	d.Heli = motion.NewHelicopter(sp.Helicopter, heli.Root, heli.MainRotor, heli.TailRotor, opts.Source, opts.Sounds)
	d.Sched.Add(d.Heli)
	d.track(heli.Root, heli.MainRotor, heli.TailRotor)

	elevRand := childRand(rng)
	cabs := sp.Elevators.Count
	if cabs > len(needle.ElevatorCars) {
		cabs = len(needle.ElevatorCars)
	}
	for i := 0; i < cabs; i++ {
		name := fmt.Sprintf("needle-elevator-%d", i)
		stagger := float64(i) * sp.Elevators.DwellS
		e := motion.NewElevator(name, needle.ElevatorCars[i], needle.CarFloorY, needle.CarTopY,
			sp.Elevators, stagger, opts.Sounds, childRand(elevRand))
		d.Elevators = append(d.Elevators, e)
		d.Sched.Add(e)
		d.track(needle.ElevatorCars[i])
	}

	d.Sched.Add(motion.NewRotator("needle-deck-spin", needle.DeckRotor, geo.Up, sp.Needle.DeckRPM, 0))
	d.track(needle.DeckRotor)

	for i, gear := range mall.Gears {
		rpm := sp.Mall.GearRPM
		phase := 0.0
		if i%2 == 1 {
			rpm = -rpm
			phase = math.Pi / 8
		}
		d.Sched.Add(motion.NewRotator(fmt.Sprintf("mall-gear-spin-%d", i), gear, mgl64.Vec3{0, 0, 1}, rpm, phase))
		d.track(gear)
	}

	d.Sched.Add(motion.NewPulser("needle-beacon-pulse", needle.Beacon, 2.4))
	d.track(needle.Beacon)

	deckView := scene.NewGroup("deck-observation")
	deckView.SetPosition(sp.Needle.DeckRadiusM-2.5, sp.Needle.DeckDepthM/2+1.1, 0)
	needle.DeckRotor.AddChild(deckView)
	d.Sched.Add(motion.NewDeckView("deck-view", deckView))

	scene.Index(d.Root)
	return d
}

// childRand derives an independent generator, so each consumer's draw
// sequence survives changes elsewhere in the build.
func childRand(parent *rand.Rand) *rand.Rand {
	return rand.New(rand.NewSource(parent.Int63()))
}

// columnVeto keeps guideway columns out of the berm and off the roadway.
func columnVeto(sp *spec.DioramaSpec, road *geo.Curve) func(x, z float64) bool {
	const roadSamples = 256
	pts := make([]geo.Point2D, roadSamples)
	for i := range pts {
		p := road.PointAt(float64(i) / roadSamples)
		pts[i] = geo.Pt(p.X(), p.Z())
	}
	clear := sp.Ground.RoadHalfWidthM + 1.5
	berm := geo.Pt(sp.Tunnel.Center[0], sp.Tunnel.Center[1])

	return func(x, z float64) bool {
		at := geo.Pt(x, z)
		if at.Distance(berm) < sp.Tunnel.RadiusM-1 {
			return true
		}
		for _, p := range pts {
			if at.Distance(p) < clear {
				return true
			}
		}
		return false
	}
}

func (d *Diorama) addLights() {
	d.sun = scene.DirectionalLight("sun", scene.RGB(1, 0.96, 0.88), 1.15)
	d.sun.SetPosition(120, 220, 80)
	d.Root.AddChild(d.sun)

	d.ambient = scene.AmbientLight("ambient", scene.RGB(0.78, 0.84, 0.95), 0.5)
	d.Root.AddChild(d.ambient)
}

// track registers nodes whose transforms change at runtime; the frame
// stream carries only these.
func (d *Diorama) track(nodes ...*scene.Node) {
	d.dynamic = append(d.dynamic, nodes...)
}

// DynamicNodes returns the moving set in a stable order.
func (d *Diorama) DynamicNodes() []*scene.Node {
	return d.dynamic
}

// Night reports the current lighting mode.
func (d *Diorama) Night() bool {
	return d.night
}

// SetNight flips the scene between day and night: the sun and ambient
// lights swap character and every tagged glow material lights up. The
// renderer reads the same tag from the exported document, so a client
// joining later sees the same look.
func (d *Diorama) SetNight(on bool) {
	d.night = on

	if on {
		d.sun.Light.Color = scene.RGB(0.6, 0.68, 0.9)
		d.sun.Light.Intensity = 0.08
		d.ambient.Light.Color = scene.RGB(0.25, 0.3, 0.5)
		d.ambient.Light.Intensity = 0.22
	} else {
		d.sun.Light.Color = scene.RGB(1, 0.96, 0.88)
		d.sun.Light.Intensity = 1.15
		d.ambient.Light.Color = scene.RGB(0.78, 0.84, 0.95)
		d.ambient.Light.Intensity = 0.5
	}

	glow := 0.0
	if on {
		glow = nightEmissive
	}
	seen := map[*scene.Material]struct{}{}
	d.Root.Walk(func(n *scene.Node) {
		if n.Tag != structures.TagNightGlow {
			return
		}
		var mat *scene.Material
		switch {
		case n.Mesh != nil:
			mat = n.Mesh.Material
		case n.Instanced != nil:
			mat = n.Instanced.Material
		}
		if mat == nil {
			return
		}
		if _, ok := seen[mat]; ok {
			return
		}
		seen[mat] = struct{}{}
		mat.EmissiveIntensity = glow
		if mat.Emissive == (scene.Color{}) {
			mat.Emissive = mat.Color
		}
	})
}

// Export renders the scene tree into the renderer document.
func (d *Diorama) Export() *scene.Document {
	return scene.Export(d.Root, d.Spec.SpecVersion)
}
