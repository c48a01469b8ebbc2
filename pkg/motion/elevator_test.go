package motion_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/audio"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/motion"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
)

func testElevator(sounds audio.Service) (*motion.Elevator, *scene.Node) {
	def := spec.Default().Elevators
	def.DwellS = 0.5
	def.DwellJitterS = 0

	car := scene.NewGroup("cab")
	car.SetPosition(4, 1.2, 0)
	e := motion.NewElevator("elevator-0", car, 1.2, 150, def, 0.1, sounds, rand.New(rand.NewSource(2)))
	return e, car
}

func TestElevatorRoundTripLandsExactly(t *testing.T) {
	e, car := testElevator(nil)
	require.Zero(t, e.Cycles())

	reachedTop := false
	reachedFloor := false
	for i := 0; i < 20000; i++ {
		e.Update(1.0 / 50)
		y := car.Position.Y()
		require.GreaterOrEqual(t, y, 1.2, "tick %d", i)
		require.LessOrEqual(t, y, 150.0, "tick %d", i)
		if e.State() == motion.ElevatorWaiting {
			if y == 150.0 {
				reachedTop = true
			}
			if reachedTop && y == 1.2 {
				reachedFloor = true
				break
			}
		}
	}
	assert.True(t, reachedTop, "cab never landed exactly at the top")
	assert.True(t, reachedFloor, "cab never landed exactly back at the floor")
	assert.Equal(t, 1, e.Cycles(), "a finished round trip counts once")
}

func TestElevatorRespectsLineSpeed(t *testing.T) {
	e, car := testElevator(nil)
	def := spec.Default().Elevators

	dt := 1.0 / 50
	prev := car.Position.Y()
	for i := 0; i < 5000; i++ {
		e.Update(dt)
		y := car.Position.Y()
		step := y - prev
		require.LessOrEqual(t, step, def.SpeedMPS*dt+1e-9, "tick %d", i)
		require.GreaterOrEqual(t, step, -def.SpeedMPS*dt-1e-9, "tick %d", i)
		prev = y
	}
}

func TestElevatorMotorTracksSpeed(t *testing.T) {
	board := audio.NewBoard()
	e, _ := testElevator(board)

	snap := func() audio.Status {
		states := board.Snapshot()
		require.Len(t, states, 1)
		return states[0]
	}

	st := snap()
	assert.Equal(t, "elevator-motor", st.Kind)
	assert.Zero(t, st.Volume, "motor silent while the cab waits")

	// First moving tick: barely off the landing, barely audible.
	for i := 0; i < 20000 && e.State() == motion.ElevatorWaiting; i++ {
		e.Update(1.0 / 50)
	}
	e.Update(1.0 / 50)
	creep := snap().Volume
	require.Positive(t, creep)

	// Half a ride later the cab is at line speed and the motor with it.
	for i := 0; i < 300; i++ {
		e.Update(1.0 / 50)
	}
	require.NotEqual(t, motion.ElevatorWaiting, e.State())
	cruise := snap().Volume
	assert.Greater(t, cruise, creep)

	// Ride out the rest of the leg: landing cuts the motor.
	for i := 0; i < 20000 && e.State() != motion.ElevatorWaiting; i++ {
		e.Update(1.0 / 50)
	}
	assert.Zero(t, snap().Volume)
}

func TestElevatorDwellsBetweenRuns(t *testing.T) {
	e, car := testElevator(nil)

	for i := 0; i < 20000 && e.State() != motion.ElevatorWaiting; i++ {
		e.Update(1.0 / 50)
	}
	// Find the first arrival at the top, then confirm it holds still.
	for i := 0; i < 20000 && car.Position.Y() != 150.0; i++ {
		e.Update(1.0 / 50)
	}
	require.Equal(t, 150.0, car.Position.Y())
	require.Equal(t, motion.ElevatorWaiting, e.State())

	e.Update(0.2)
	assert.Equal(t, 150.0, car.Position.Y(), "cab moved during dwell")
}

func TestElevatorCameraLooksOutwardAndDown(t *testing.T) {
	e, car := testElevator(nil)

	// Ride partway up so the view has grounds below it.
	for i := 0; i < 400; i++ {
		e.Update(1.0 / 50)
	}

	v := e.CameraTarget()
	pos := car.WorldPosition()
	assert.Greater(t, v.Position.X(), pos.X(), "eye hangs outside the glass")
	assert.Less(t, v.Position.Sub(pos).Len(), 4.0, "eye stays with the cab")
	assert.Greater(t, v.LookAt.X(), v.Position.X(), "gaze continues outward")
	assert.Less(t, v.LookAt.Y(), v.Position.Y(), "gaze drops toward the grounds")
}
