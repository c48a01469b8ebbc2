package motion

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/audio"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/geo"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
)

// TrainState is the shuttle's phase.
type TrainState int

const (
	TrainMoving TrainState = iota
	TrainDwelling
)

func (s TrainState) String() string {
	if s == TrainDwelling {
		return "dwelling"
	}
	return "moving"
}

const (
	trainRideHeight = 1.35
	humVolume       = 0.85
)

// Train shuttles the four car consist along the open guideway: terminus
// to terminus with a station stop each way. Cars keep a fixed geometric
// order and both end cars carry a nose, so a direction flip only changes
// which end leads; the rider camera and the glide hum move to the new
// lead car.
type Train struct {
	track *geo.Curve
	cars  [4]*scene.Node
	def   spec.MonorailDef

	hum *audio.Sound
	rng *rand.Rand

	state    TrainState
	pos      float64 // track param of car slot 0
	dir      float64 // +1 toward param 1, -1 back
	dwell    float64
	spacingT float64
	stopped  bool // station stop already made on this leg
}

// NewTrain places the consist at the low terminus, ready to move up-track.
func NewTrain(def spec.MonorailDef, track *geo.Curve, cars [4]*scene.Node, sounds audio.Service, rng *rand.Rand) *Train {
	if sounds == nil {
		sounds = audio.Muted{}
	}
	t := &Train{
		track:    track,
		cars:     cars,
		def:      def,
		rng:      rng,
		state:    TrainMoving,
		dir:      1,
		spacingT: (def.CarLengthM + def.CarGapM) / track.Length(),
	}
	t.pos = t.lowStop()
	t.hum = sounds.CreatePositional("monorail-hum", 8, 140, humVolume)
	t.hum.AttachTo(t.LeadCar())
	t.pose()
	return t
}

func (t *Train) Name() string { return "monorail-train" }

// State reports the current phase, for the stats endpoint.
func (t *Train) State() TrainState { return t.state }

// Progress reports the param of car slot 0.
func (t *Train) Progress() float64 { return t.pos }

// Direction reports +1 or -1.
func (t *Train) Direction() float64 { return t.dir }

// LeadCar returns the car at the leading end for the current direction.
func (t *Train) LeadCar() *scene.Node {
	if t.dir >= 0 {
		return t.cars[0]
	}
	return t.cars[3]
}

// span is the param length of the whole consist.
func (t *Train) span() float64 { return 3 * t.spacingT }

// lowStop and highStop bound pos so every car, not just slot 0, stays
// inside the buffered track.
func (t *Train) lowStop() float64  { return t.def.BufferT + t.span() }
func (t *Train) highStop() float64 { return 1 - t.def.BufferT }

func (t *Train) stationT() float64 {
	// Stop with the consist centered on the platform span.
	return (t.def.StationFrom+t.def.StationTo)/2 + t.span()/2
}

func (t *Train) Update(dt float64) {
	switch t.state {
	case TrainDwelling:
		t.dwell -= dt
		if t.dwell > 0 {
			return
		}
		t.state = TrainMoving
		t.hum.SetVolume(humVolume)

	case TrainMoving:
		prev := t.pos
		t.pos += t.dir * t.def.Speed * dt

		if !t.stopped && crossed(prev, t.pos, t.stationT(), t.dir) {
			t.pos = t.stationT()
			t.stopped = true
			t.arrive()
			break
		}
		if t.dir > 0 && t.pos >= t.highStop() {
			t.pos = t.highStop()
			t.turnAround()
		} else if t.dir < 0 && t.pos <= t.lowStop() {
			t.pos = t.lowStop()
			t.turnAround()
		}
	}
	t.pose()
}

func crossed(from, to, mark, dir float64) bool {
	if dir > 0 {
		return from < mark && to >= mark
	}
	return from > mark && to <= mark
}

func (t *Train) arrive() {
	t.state = TrainDwelling
	t.dwell = t.def.DwellS + t.rng.Float64()*t.def.DwellJitterS
	t.hum.SetVolume(0)
}

func (t *Train) turnAround() {
	t.arrive()
	t.dir = -t.dir
	t.stopped = false
	t.hum.AttachTo(t.LeadCar())
}

// pose places each car on the track, nose along the travel direction.
// A non finite sample skips only that car, leaving its previous
// transform in place.
func (t *Train) pose() {
	for i, car := range t.cars {
		at := t.pos - float64(i)*t.spacingT
		p := t.track.PointAt(at)
		tan := t.track.TangentAt(at)
		if !geo.Finite(p) || !geo.Finite(tan) {
			continue
		}
		if t.dir < 0 {
			tan = tan.Mul(-1)
		}
		car.SetPosition(p.X(), p.Y()+trainRideHeight, p.Z())
		car.Rotation = headingQuat(tan)
	}
}

// CameraTarget hangs the rider eye ahead and outward of the lead nose,
// looking far down the track.
func (t *Train) CameraTarget() View {
	lead := t.LeadCar()
	nose := t.def.CarLengthM / 2
	return View{
		Position: lead.TransformPoint(mgl64.Vec3{2.4, 3.2, nose + 4}),
		LookAt:   lead.TransformPoint(mgl64.Vec3{0, 1.5, nose + 55}),
	}
}
