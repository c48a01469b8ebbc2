package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/audio"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/geo"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/input"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
)

// HeliMode is the helicopter's control mode. It follows the input
// device: a connected pilot flies manual, losing the device re-parks.
type HeliMode int

const (
	HeliParked HeliMode = iota
	HeliManual
)

func (m HeliMode) String() string {
	if m == HeliManual {
		return "manual"
	}
	return "parked"
}

const (
	heliGravity     = 16.0  // m/s^2, tuned heavy so the trigger matters
	heliLiftAccel   = 30.0  // m/s^2 at full trigger
	heliThrust      = 22.0  // m/s^2 horizontal at full stick
	heliYawAccel    = 5.2   // rad/s^2 at full pedal
	heliYawFriction = 0.90  // yaw rate kept per frame at 60 Hz
	heliDrag        = 0.965 // velocity kept per frame at 60 Hz
	heliMaxTilt     = 0.42  // rad, visual bank limit
	heliTiltGain    = 0.028 // rad of tilt per m/s of local velocity
	heliTiltSmooth  = 0.90  // tilt kept per frame at 60 Hz

	rotorRampUp   = 0.9 // spin fraction per second on engage
	rotorRampDown = 0.35
	rotorMaxRPS   = 5.5
	tailRPSFactor = 4.2
	engineVolume  = 0.9

	skidHeightM = 1.2

	// The gimbal chases a point ahead of and below the nose, so street
	// detail stays in frame during low passes. Parked it droops further.
	gimbalAheadM     = 16.0
	gimbalDropM      = 5.0
	gimbalParkedTilt = 0.5 // rad
	gimbalSmooth     = 0.93

	povReachM = 120.0
	povFOVDeg = 72.0
)

// Helicopter free-flies the airframe from pilot input. With no device
// connected it sits parked on the pad, rotors winding down; input takes
// it manual. There is no autopilot: releasing the stick mid-air lets
// gravity and drag bring it down, wherever that is.
type Helicopter struct {
	body      *scene.Node
	mainRotor *scene.Node
	tailRotor *scene.Node
	gimbal    *scene.Node

	source input.Source
	engine *audio.Sound
	def    spec.HelicopterDef

	mode       HeliMode
	pos        mgl64.Vec3
	vel        mgl64.Vec3
	yaw        float64
	yawVel     float64
	rotor      float64 // spin fraction, 0..1
	rotorAngle float64
	tailAngle  float64
	tiltPitch  float64 // visual lean, radians
	tiltRoll   float64
	gimbalTilt float64
}

// NewHelicopter parks the airframe on the pad at the pad heading. The
// POV gimbal is created here and hung off the body nose.
func NewHelicopter(def spec.HelicopterDef, body, mainRotor, tailRotor *scene.Node, source input.Source, sounds audio.Service) *Helicopter {
	if source == nil {
		source = input.NewStick()
	}
	if sounds == nil {
		sounds = audio.Muted{}
	}
	h := &Helicopter{
		body:       body,
		mainRotor:  mainRotor,
		tailRotor:  tailRotor,
		source:     source,
		def:        def,
		gimbalTilt: gimbalParkedTilt,
	}
	h.pos = h.landing()
	h.yaw = h.padHeading()
	h.gimbal = scene.NewGroup("heli-gimbal")
	h.gimbal.SetPosition(0, -0.2, 1.7)
	body.AddChild(h.gimbal)
	h.engine = sounds.CreatePositional("helicopter-engine", 12, 260, 0)
	h.engine.AttachTo(body)
	h.pose()
	return h
}

func (h *Helicopter) Name() string { return "helicopter" }

// Mode reports the current control mode.
func (h *Helicopter) Mode() HeliMode { return h.mode }

// Position reports the body position, mainly for tests and telemetry.
func (h *Helicopter) Position() mgl64.Vec3 { return h.pos }

func (h *Helicopter) landing() mgl64.Vec3 {
	return mgl64.Vec3{h.def.PadPosition[0], h.def.PadPosition[1] + skidHeightM, h.def.PadPosition[2]}
}

func (h *Helicopter) padHeading() float64 {
	return h.def.PadHeadingDeg * math.Pi / 180
}

func (h *Helicopter) Update(dt float64) {
	in, connected := h.source.Poll()
	if connected {
		h.mode = HeliManual
	} else {
		h.mode = HeliParked
	}

	if h.mode == HeliParked {
		h.park(dt)
	} else {
		h.fly(in, dt)
	}
	h.spinRotors(dt)
	h.pose()
}

// park snaps the airframe onto the pad. Parked is a fixed point: every
// velocity is zeroed each frame, so no drift accumulates no matter how
// long it holds.
func (h *Helicopter) park(dt float64) {
	h.pos = h.landing()
	h.vel = mgl64.Vec3{}
	h.yaw = h.padHeading()
	h.yawVel = 0
	h.tiltPitch = 0
	h.tiltRoll = 0
	h.gimbalTilt = geo.Lerp(gimbalParkedTilt, h.gimbalTilt, damp(gimbalSmooth, dt))
}

func (h *Helicopter) fly(in input.State, dt float64) {
	// Heading: yaw rate integrates the pedal and bleeds off by friction.
	h.yawVel += -in.Yaw * heliYawAccel * dt
	h.yawVel *= damp(heliYawFriction, dt)
	h.yaw += h.yawVel * dt

	sin, cos := math.Sin(h.yaw), math.Cos(h.yaw)
	forward := mgl64.Vec3{sin, 0, cos}
	right := mgl64.Vec3{cos, 0, -sin}

	// Cyclic thrust in the heading frame, gravity down, trigger lift up.
	accel := forward.Mul(in.Pitch * heliThrust).Add(right.Mul(in.Roll * heliThrust))
	accel[1] = in.Lift*heliLiftAccel - heliGravity
	h.vel = h.vel.Add(accel.Mul(dt))
	h.vel = h.vel.Mul(damp(heliDrag, dt))

	h.pos = h.pos.Add(h.vel.Mul(dt))

	// Hard floor, dead stop, no rebound.
	if h.pos.Y() < h.def.MinAltitudeM {
		h.pos[1] = h.def.MinAltitudeM
		if h.vel.Y() < 0 {
			h.vel[1] = 0
		}
	}

	// Visual banking leans into the velocity as seen from the body.
	keep := damp(heliTiltSmooth, dt)
	h.tiltPitch = geo.Lerp(clampTilt(h.vel.Dot(forward)*heliTiltGain), h.tiltPitch, keep)
	h.tiltRoll = geo.Lerp(clampTilt(-h.vel.Dot(right)*heliTiltGain), h.tiltRoll, keep)

	h.gimbalTilt = geo.Lerp(math.Atan2(gimbalDropM, gimbalAheadM), h.gimbalTilt, damp(gimbalSmooth, dt))
}

func clampTilt(v float64) float64 {
	if v > heliMaxTilt {
		return heliMaxTilt
	}
	if v < -heliMaxTilt {
		return -heliMaxTilt
	}
	return v
}

// spinRotors ramps the spin fraction toward the mode target, fast on
// engage and lazily on shutdown, and keys the engine loop to it.
func (h *Helicopter) spinRotors(dt float64) {
	target := 0.0
	if h.mode == HeliManual {
		target = 1
	}
	if h.rotor < target {
		h.rotor = math.Min(target, h.rotor+rotorRampUp*dt)
	} else {
		h.rotor = math.Max(target, h.rotor-rotorRampDown*dt)
	}

	h.rotorAngle += h.rotor * rotorMaxRPS * 2 * math.Pi * dt
	h.tailAngle += h.rotor * rotorMaxRPS * tailRPSFactor * 2 * math.Pi * dt

	h.engine.SetVolume(engineVolume * h.rotor)
	h.engine.SetPlaybackRate(0.55 + 0.65*h.rotor)
}

func (h *Helicopter) pose() {
	if geo.Finite(h.pos) {
		h.body.SetPosition(h.pos.X(), h.pos.Y(), h.pos.Z())
		h.body.Rotation = mgl64.QuatRotate(h.yaw, geo.Up).
			Mul(mgl64.QuatRotate(h.tiltPitch, mgl64.Vec3{1, 0, 0})).
			Mul(mgl64.QuatRotate(h.tiltRoll, mgl64.Vec3{0, 0, 1}))
	}
	h.mainRotor.Rotation = mgl64.QuatRotate(h.rotorAngle, geo.Up)
	h.tailRotor.Rotation = mgl64.QuatRotate(h.tailAngle, mgl64.Vec3{1, 0, 0})
	h.gimbal.Rotation = mgl64.QuatRotate(h.gimbalTilt, mgl64.Vec3{1, 0, 0})
}

// POV reports the gimbal's view: position, a look-at projected far
// ahead, the gimbal's own up so banking leans the horizon, and the wide
// news-camera field of view.
func (h *Helicopter) POV() POV {
	pos := h.gimbal.WorldPosition()
	fwd := h.gimbal.TransformDirection(mgl64.Vec3{0, 0, 1})
	if !geo.Finite(fwd) || fwd.Len() < 1e-9 {
		return POV{Position: pos, LookAt: pos.Add(mgl64.Vec3{0, 0, 1}), FOVDeg: povFOVDeg}
	}
	return POV{
		Position: pos,
		LookAt:   pos.Add(fwd.Normalize().Mul(povReachM)),
		Up:       h.gimbal.TransformDirection(geo.Up).Normalize(),
		FOVDeg:   povFOVDeg,
	}
}
