// Package input feeds pilot controls to the helicopter. The live source
// is written by the websocket handler and polled by the simulation tick;
// the scripted source replays a fixed control sequence for headless
// runs. A source that reports no connected device keeps the aircraft
// parked, so losing the pilot is just a disconnect, not an error.
package input

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// State is one control sample. Pitch, roll and yaw are stick axes in
// [-1, 1]: pitch noses forward or back, roll strafes, yaw turns. Lift is
// the trigger magnitude in [0, 1].
type State struct {
	Pitch float64 `yaml:"pitch" json:"pitch"`
	Roll  float64 `yaml:"roll" json:"roll"`
	Yaw   float64 `yaml:"yaw" json:"yaw"`
	Lift  float64 `yaml:"lift" json:"lift"`
}

// Source is polled once per simulation tick. The second result reports
// whether a device is connected; false means no manual control.
type Source interface {
	Poll() (State, bool)
}

// Stick is the live source. One goroutine sets, another polls. A stick
// nobody has touched, or one that was released, reads as disconnected.
type Stick struct {
	mu        sync.RWMutex
	state     State
	connected bool
}

func NewStick() *Stick {
	return &Stick{}
}

// Set stores a clamped sample and marks the device connected.
func (s *Stick) Set(state State) {
	s.mu.Lock()
	s.state = clamp(state)
	s.connected = true
	s.mu.Unlock()
}

// Release neutralizes the axes and marks the device disconnected.
func (s *Stick) Release() {
	s.mu.Lock()
	s.state = State{}
	s.connected = false
	s.mu.Unlock()
}

func (s *Stick) Poll() (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.connected
}

func clamp(s State) State {
	return State{
		Pitch: clampAxis(s.Pitch),
		Roll:  clampAxis(s.Roll),
		Yaw:   clampAxis(s.Yaw),
		Lift:  clampTrigger(s.Lift),
	}
}

func clampAxis(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampTrigger(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Segment holds one scripted control setting for a duration.
type Segment struct {
	DurationS float64 `yaml:"duration_s"`
	State     `yaml:",inline"`
}

// Script replays control segments in order. While a segment is active
// the script reads as a connected device; past the last segment it reads
// as disconnected, which sends the aircraft back to its pad. The caller
// advances the clock between polls.
type Script struct {
	segments []Segment
	t        float64
}

func NewScript(segments []Segment) *Script {
	return &Script{segments: segments}
}

// LoadScript reads a flight script: a YAML list of segments.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading flight script: %w", err)
	}
	var segments []Segment
	if err := yaml.Unmarshal(data, &segments); err != nil {
		return nil, fmt.Errorf("parsing flight script: %w", err)
	}
	return NewScript(segments), nil
}

// Advance moves the script clock forward.
func (s *Script) Advance(dt float64) {
	s.t += dt
}

func (s *Script) Poll() (State, bool) {
	at := 0.0
	for _, seg := range s.segments {
		at += seg.DurationS
		if s.t < at {
			return clamp(seg.State), true
		}
	}
	return State{}, false
}
