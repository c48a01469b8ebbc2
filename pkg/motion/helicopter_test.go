package motion_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/audio"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/input"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/motion"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
)

func testHeli(stick input.Source) (*motion.Helicopter, *scene.Node) {
	body := scene.NewGroup("heli")
	body.AddChild(scene.NewGroup("main-rotor"))
	body.AddChild(scene.NewGroup("tail-rotor"))
	h := motion.NewHelicopter(spec.Default().Helicopter, body, body.Children()[0], body.Children()[1], stick, nil)
	return h, body
}

// heading projects the body's forward axis onto the ground plane.
func heading(body *scene.Node) float64 {
	f := body.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	return math.Atan2(f.X(), f.Z())
}

// horizonLean measures how far the view's up vector tips away from gravity
// within the image plane, which is how slanted the rendered horizon looks.
func horizonLean(p motion.POV) float64 {
	fwd := p.LookAt.Sub(p.Position).Normalize()
	up := mgl64.Vec3{0, 1, 0}
	gravity := up.Sub(fwd.Mul(up.Dot(fwd))).Normalize()
	d := p.Up.Dot(gravity)
	if d > 1 {
		d = 1
	}
	if d < -1 {
		d = -1
	}
	return math.Acos(d)
}

func TestHelicopterStaysParkedWithoutDevice(t *testing.T) {
	stick := input.NewStick()
	h, body := testHeli(stick)

	home := body.Position
	rotor := body.Children()[0].Rotation
	for i := 0; i < 600; i++ {
		h.Update(1.0 / 60)
	}
	assert.Equal(t, motion.HeliParked, h.Mode())
	assert.Equal(t, home, body.Position)
	assert.Equal(t, rotor, body.Children()[0].Rotation, "rotors must not turn before the engine is ever engaged")
}

func TestHelicopterLiftsOffOnTrigger(t *testing.T) {
	stick := input.NewStick()
	h, body := testHeli(stick)
	startY := body.Position.Y()

	stick.Set(input.State{Lift: 1})
	for i := 0; i < 300; i++ {
		h.Update(1.0 / 60)
	}
	assert.Equal(t, motion.HeliManual, h.Mode())
	assert.Greater(t, body.Position.Y(), startY+5)
}

func TestHelicopterParksWhereItStarted(t *testing.T) {
	stick := input.NewStick()
	h, body := testHeli(stick)
	home := body.Position
	facing := body.Rotation

	stick.Set(input.State{Lift: 1, Pitch: 0.6})
	for i := 0; i < 240; i++ {
		h.Update(1.0 / 60)
	}
	require.Greater(t, body.Position.Sub(home).Len(), 10.0, "should have flown away first")

	// Unplugging mid-air returns the airframe to the pad in a single step,
	// and holding there accumulates no drift.
	stick.Release()
	h.Update(1.0 / 60)
	assert.Equal(t, motion.HeliParked, h.Mode())
	assert.Equal(t, home, body.Position)
	assert.Equal(t, facing, body.Rotation)

	for i := 0; i < 180; i++ {
		h.Update(1.0 / 60)
	}
	assert.Equal(t, home, body.Position)
	assert.Equal(t, facing, body.Rotation)
}

func TestHelicopterFloorClampNoRebound(t *testing.T) {
	def := spec.Default().Helicopter
	stick := input.NewStick()
	h, body := testHeli(stick)

	// Connected with the trigger released: gravity wins.
	stick.Set(input.State{})
	minY := math.Inf(1)
	for i := 0; i < 2000; i++ {
		h.Update(1.0 / 60)
		if y := body.Position.Y(); y < minY {
			minY = y
		}
	}
	assert.Equal(t, def.MinAltitudeM, minY)
	assert.Equal(t, def.MinAltitudeM, body.Position.Y(), "must rest on the floor, not bounce")
}

func TestHelicopterDragBleedsHorizontalSpeed(t *testing.T) {
	stick := input.NewStick()
	h, body := testHeli(stick)

	stick.Set(input.State{Lift: 1, Pitch: 1})
	for i := 0; i < 240; i++ {
		h.Update(1.0 / 60)
	}

	horizSpeed := func() float64 {
		prev := body.Position
		h.Update(1.0 / 60)
		d := body.Position.Sub(prev)
		return math.Hypot(d.X(), d.Z()) * 60
	}

	// Keep climbing but let go of the cyclic.
	stick.Set(input.State{Lift: 1})
	speedAfterRelease := horizSpeed()
	for i := 0; i < 600; i++ {
		h.Update(1.0 / 60)
	}
	speedLater := horizSpeed()

	require.Positive(t, speedAfterRelease)
	assert.Less(t, speedLater, speedAfterRelease*0.1, "drag should bleed off nearly all speed")
}

func TestHelicopterYawSpinSettles(t *testing.T) {
	stick := input.NewStick()
	h, body := testHeli(stick)

	turn := func(frames int) float64 {
		total := 0.0
		prev := heading(body)
		for i := 0; i < frames; i++ {
			h.Update(1.0 / 60)
			now := heading(body)
			total += math.Abs(math.Remainder(now-prev, 2*math.Pi))
			prev = now
		}
		return total
	}

	stick.Set(input.State{Yaw: 1})
	spinning := turn(120)
	require.Greater(t, spinning, 0.3, "pedal should swing the heading")

	stick.Set(input.State{})
	coasting := turn(60)
	for i := 0; i < 120; i++ {
		h.Update(1.0 / 60)
	}
	settled := turn(60)

	assert.Positive(t, coasting, "heading keeps swinging right after pedal release")
	assert.Less(t, settled, coasting*0.1, "friction should stop the spin")
}

func TestHelicopterLeansIntoTravel(t *testing.T) {
	stick := input.NewStick()
	h, body := testHeli(stick)

	stick.Set(input.State{Lift: 1, Pitch: 1})
	for i := 0; i < 300; i++ {
		h.Update(1.0 / 60)
	}

	noseY := body.Rotation.Rotate(mgl64.Vec3{0, 0, 1}).Y()
	assert.Less(t, noseY, -0.1, "sustained forward flight should dip the nose")
}

func TestHelicopterPOVConveysBanking(t *testing.T) {
	stick := input.NewStick()
	h, body := testHeli(stick)

	// Parked: the gimbal points ahead and below the nose, horizon level.
	pov := h.POV()
	assert.Less(t, pov.LookAt.Y(), pov.Position.Y())
	assert.Less(t, pov.Position.Sub(body.WorldPosition()).Len(), 3.0)
	assert.Equal(t, 72.0, pov.FOVDeg)
	assert.InDelta(t, 1, pov.Up.Len(), 1e-9)

	stick.Set(input.State{Lift: 1, Pitch: 1})
	for i := 0; i < 300; i++ {
		h.Update(1.0 / 60)
	}
	straight := horizonLean(h.POV())

	stick.Set(input.State{Lift: 1, Roll: 1})
	for i := 0; i < 300; i++ {
		h.Update(1.0 / 60)
	}
	banked := horizonLean(h.POV())

	assert.Less(t, straight, 0.03, "no sideways motion, no slant")
	assert.Greater(t, banked, 0.15, "a sustained roll must tilt the horizon")
}

func TestHelicopterRotorRampAndEngineLoop(t *testing.T) {
	root := scene.NewGroup("world")
	body := scene.NewGroup("heli")
	root.AddChild(body)
	body.AddChild(scene.NewGroup("main-rotor"))
	body.AddChild(scene.NewGroup("tail-rotor"))

	stick := input.NewStick()
	board := audio.NewBoard()
	h := motion.NewHelicopter(spec.Default().Helicopter, body, body.Children()[0], body.Children()[1], stick, board)
	scene.Index(root)

	snap := func() audio.Status {
		states := board.Snapshot()
		require.Len(t, states, 1)
		return states[0]
	}

	st := snap()
	assert.Equal(t, "helicopter-engine", st.Kind)
	assert.Equal(t, body.ID, st.NodeID)
	assert.Zero(t, st.Volume, "engine silent before first engage")

	// Engage: the loop swells over the first half second instead of snapping on.
	stick.Set(input.State{Lift: 1})
	for i := 0; i < 30; i++ {
		h.Update(1.0 / 60)
	}
	midRamp := snap().Volume
	assert.Positive(t, midRamp)

	for i := 0; i < 90; i++ {
		h.Update(1.0 / 60)
	}
	full := snap()
	assert.Greater(t, full.Volume, midRamp)
	assert.Greater(t, full.Volume, 0.85)
	assert.Greater(t, full.Rate, 1.1, "engine pitches up at speed")

	// Shutdown is lazier than spin-up: still audible a second after the
	// pilot unplugs, silent once the blades stop.
	stick.Release()
	main := body.Children()[0]
	atRelease := main.Rotation
	for i := 0; i < 60; i++ {
		h.Update(1.0 / 60)
	}
	assert.Greater(t, snap().Volume, 0.3)
	assert.NotEqual(t, atRelease, main.Rotation, "blades keep turning while winding down")

	for i := 0; i < 240; i++ {
		h.Update(1.0 / 60)
	}
	assert.Zero(t, snap().Volume)
	assert.Equal(t, motion.HeliParked, h.Mode())
}
