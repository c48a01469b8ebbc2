// Package sim steps the diorama's agents. The scheduler is a plain object
// owned by the caller, not a global: build constructs one, the server and
// the headless commands drive it.
package sim

import (
	"context"
	"time"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/motion"
)

// Scheduler holds the agent list and steps it in registration order, so
// runs from the same seed replay identically.
type Scheduler struct {
	agents []motion.Agent
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add appends agents to the step order.
func (s *Scheduler) Add(agents ...motion.Agent) {
	s.agents = append(s.agents, agents...)
}

// Step advances every agent by dt seconds.
func (s *Scheduler) Step(dt float64) {
	for _, a := range s.agents {
		a.Update(dt)
	}
}

// Len reports the number of registered agents.
func (s *Scheduler) Len() int {
	return len(s.agents)
}

// Clear drops every agent. Teardown only; a cleared scheduler steps nothing.
func (s *Scheduler) Clear() {
	s.agents = nil
}

// Agents returns the registration order for capability scans.
func (s *Scheduler) Agents() []motion.Agent {
	return s.agents
}

// Find returns the agent with the given name, or nil.
func (s *Scheduler) Find(name string) motion.Agent {
	for _, a := range s.agents {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// CameraSources filters the agents a chase camera can follow.
func (s *Scheduler) CameraSources() []motion.CameraSource {
	var out []motion.CameraSource
	for _, a := range s.agents {
		if t, ok := a.(motion.CameraSource); ok {
			out = append(out, t)
		}
	}
	return out
}

// POVSources filters the agents that can host the first person view.
func (s *Scheduler) POVSources() []motion.POVSource {
	var out []motion.POVSource
	for _, a := range s.agents {
		if p, ok := a.(motion.POVSource); ok {
			out = append(out, p)
		}
	}
	return out
}

// Advance fast-forwards the scheduler by the given simulated duration in
// fixed dt steps and returns how many steps ran. Headless runs use it to
// reach an interesting moment without waiting.
func Advance(s *Scheduler, seconds, dt float64) int {
	if dt <= 0 {
		return 0
	}
	steps := 0
	for elapsed := 0.0; elapsed+dt <= seconds+1e-12; elapsed += dt {
		s.Step(dt)
		steps++
	}
	return steps
}

// Runner drives a scheduler from the wall clock at a fixed tick rate. The
// simulated dt per tick is constant regardless of wall jitter, so the live
// run and a headless Advance cover the same state sequence.
type Runner struct {
	Scheduler *Scheduler
	Hz        float64

	// Before runs ahead of each step; the server drains queued client
	// commands here. After runs behind it with the tick count; the server
	// streams the frame there.
	Before func()
	After  func(tick uint64, dt float64)
}

// Run ticks until the context is canceled.
func (r *Runner) Run(ctx context.Context) error {
	hz := r.Hz
	if hz <= 0 {
		hz = 30
	}
	dt := 1 / hz
	ticker := time.NewTicker(time.Duration(float64(time.Second) / hz))
	defer ticker.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if r.Before != nil {
				r.Before()
			}
			r.Scheduler.Step(dt)
			tick++
			if r.After != nil {
				r.After(tick, dt)
			}
		}
	}
}
