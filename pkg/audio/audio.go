// Package audio is the positional sound channel between the agents and
// the renderer. The engine plays nothing itself: an agent creates a
// looping positional sound through a Service, attaches the handle to the
// node it should follow, and steers volume and playback rate as its
// state changes. The dev server snapshots handle state into each
// streamed frame so the browser keeps its audio graph in sync.
package audio

import (
	"sync"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
)

// Service hands out positional sounds. CreatePositional may return nil
// when the backend has no listener, and every Sound method accepts a nil
// receiver, so agents create and drive handles unconditionally.
type Service interface {
	CreatePositional(kind string, refDistance, maxDistance, volume float64) *Sound
}

// Sound is one looping positional source.
type Sound struct {
	mu sync.Mutex

	id          int
	kind        string
	refDistance float64
	maxDistance float64
	volume      float64
	rate        float64
	node        *scene.Node
}

// AttachTo binds the sound to a node; the renderer keeps the emitter at
// the node's world position. Reattaching moves the emitter, which is how
// the train hum follows the lead car across direction flips.
func (s *Sound) AttachTo(n *scene.Node) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.node = n
	s.mu.Unlock()
}

func (s *Sound) SetVolume(v float64) {
	if s == nil {
		return
	}
	if v < 0 {
		v = 0
	}
	s.mu.Lock()
	s.volume = v
	s.mu.Unlock()
}

func (s *Sound) SetPlaybackRate(r float64) {
	if s == nil {
		return
	}
	if r < 0 {
		r = 0
	}
	s.mu.Lock()
	s.rate = r
	s.mu.Unlock()
}

// Node returns the node the sound is attached to, or nil.
func (s *Sound) Node() *scene.Node {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.node
}

// Volume returns the current volume, 0 for a nil handle.
func (s *Sound) Volume() float64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Rate returns the current playback rate, 0 for a nil handle.
func (s *Sound) Rate() float64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

// Status is the wire snapshot of one sound. NodeID refers to the scene
// document's node numbering, so a client can parent its emitter there.
type Status struct {
	ID          int     `json:"id"`
	Kind        string  `json:"kind"`
	NodeID      int     `json:"node_id,omitempty"`
	RefDistance float64 `json:"ref_distance"`
	MaxDistance float64 `json:"max_distance"`
	Volume      float64 `json:"volume"`
	Rate        float64 `json:"rate"`
}

func (s *Sound) status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{
		ID:          s.id,
		Kind:        s.kind,
		RefDistance: s.refDistance,
		MaxDistance: s.maxDistance,
		Volume:      s.volume,
		Rate:        s.rate,
	}
	if s.node != nil {
		st.NodeID = s.node.ID
	}
	return st
}

// Muted is the Service for runs without a listener: build, validate,
// headless simulate. It creates nothing.
type Muted struct{}

func (Muted) CreatePositional(string, float64, float64, float64) *Sound { return nil }

// Board is the dev server's Service: it hands out live handles and
// reports their state every frame.
type Board struct {
	mu     sync.Mutex
	sounds []*Sound
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) CreatePositional(kind string, refDistance, maxDistance, volume float64) *Sound {
	if volume < 0 {
		volume = 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	s := &Sound{
		id:          len(b.sounds) + 1,
		kind:        kind,
		refDistance: refDistance,
		maxDistance: maxDistance,
		volume:      volume,
		rate:        1,
	}
	b.sounds = append(b.sounds, s)
	return s
}

// Snapshot reports every sound's current state in creation order.
func (b *Board) Snapshot() []Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Status, len(b.sounds))
	for i, s := range b.sounds {
		out[i] = s.status()
	}
	return out
}

// Len reports how many sounds have been created.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sounds)
}
