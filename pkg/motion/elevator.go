package motion

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/audio"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
)

// ElevatorState is the cab's phase.
type ElevatorState int

const (
	ElevatorWaiting ElevatorState = iota
	ElevatorMovingUp
	ElevatorMovingDown
)

func (s ElevatorState) String() string {
	switch s {
	case ElevatorMovingUp:
		return "moving-up"
	case ElevatorMovingDown:
		return "moving-down"
	}
	return "waiting"
}

const (
	// elevatorCrawl is the minimum approach speed, so braking never
	// stalls short of the landing.
	elevatorCrawl = 0.4
	motorVolume   = 0.6
)

// Elevator shuttles one exterior cab between the ground landing and the
// deck landing. The cab accelerates to line speed, brakes on approach,
// and lands exactly on the target height before dwelling.
type Elevator struct {
	name string
	car  *scene.Node

	floorY, topY float64
	speed, accel float64
	dwellS       float64
	jitterS      float64

	motor *audio.Sound
	rng   *rand.Rand

	state  ElevatorState
	vel    float64
	dwell  float64
	cycles int
}

// NewElevator starts the cab waiting at its current height. initialDwell
// staggers the fleet so the cabs don't move in lockstep.
func NewElevator(name string, car *scene.Node, floorY, topY float64, def spec.ElevatorsDef, initialDwell float64, sounds audio.Service, rng *rand.Rand) *Elevator {
	if sounds == nil {
		sounds = audio.Muted{}
	}
	e := &Elevator{
		name:    name,
		car:     car,
		floorY:  floorY,
		topY:    topY,
		speed:   def.SpeedMPS,
		accel:   def.AccelMPS2,
		dwellS:  def.DwellS,
		jitterS: def.DwellJitterS,
		rng:     rng,
		state:   ElevatorWaiting,
		dwell:   initialDwell,
	}
	e.motor = sounds.CreatePositional("elevator-motor", 6, 90, 0)
	e.motor.AttachTo(car)
	return e
}

func (e *Elevator) Name() string { return e.name }

func (e *Elevator) State() ElevatorState { return e.state }

// Height reports the cab's current height.
func (e *Elevator) Height() float64 { return e.car.Position.Y() }

// Cycles reports how many round trips have returned to the ground
// landing, for telemetry.
func (e *Elevator) Cycles() int { return e.cycles }

func (e *Elevator) Update(dt float64) {
	switch e.state {
	case ElevatorWaiting:
		e.dwell -= dt
		if e.dwell > 0 {
			return
		}
		// Leave for the far landing.
		mid := (e.floorY + e.topY) / 2
		if e.Height() < mid {
			e.state = ElevatorMovingUp
		} else {
			e.state = ElevatorMovingDown
		}
		e.vel = 0

	case ElevatorMovingUp:
		e.travel(dt, e.topY, 1)

	case ElevatorMovingDown:
		e.travel(dt, e.floorY, -1)
	}
}

// travel integrates one tick toward target: accelerate until the braking
// distance meets the remaining distance, then decelerate, and land
// exactly on the target even if the last tick overshoots.
func (e *Elevator) travel(dt, target, dir float64) {
	y := e.Height()
	remaining := math.Abs(target - y)
	braking := e.vel * e.vel / (2 * e.accel)

	if remaining <= braking {
		e.vel = math.Max(e.vel-e.accel*dt, elevatorCrawl)
	} else {
		e.vel = math.Min(e.vel+e.accel*dt, e.speed)
	}
	e.motor.SetVolume(motorVolume * e.vel / e.speed)

	y += dir * e.vel * dt
	landed := (dir > 0 && y >= target) || (dir < 0 && y <= target)
	if landed {
		y = target
	}
	e.car.Position[1] = y
	if landed {
		e.arrive(target)
	}
}

func (e *Elevator) arrive(at float64) {
	e.state = ElevatorWaiting
	e.vel = 0
	e.dwell = e.dwellS + e.rng.Float64()*e.jitterS
	e.motor.SetVolume(0)
	if at == e.floorY {
		e.cycles++
	}
}

// CameraTarget rides just outside the glass: outward of the cab at its
// current height, looking out over the grounds and a little down.
func (e *Elevator) CameraTarget() View {
	out := mgl64.Vec3{e.car.Position.X(), 0, e.car.Position.Z()}
	if out.Len() < 1e-9 {
		out = mgl64.Vec3{1, 0, 0}
	} else {
		out = out.Normalize()
	}
	if p := e.car.Parent(); p != nil {
		out = p.TransformDirection(out)
	}
	pos := e.car.WorldPosition()
	eye := pos.Add(out.Mul(2.2)).Add(mgl64.Vec3{0, 0.6, 0})
	look := pos.Add(out.Mul(45)).Sub(mgl64.Vec3{0, 12, 0})
	return View{Position: eye, LookAt: look}
}
