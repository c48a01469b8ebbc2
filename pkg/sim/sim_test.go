package sim_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/motion"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/sim"
)

// probe records its updates; some probes also advertise a view.
type probe struct {
	name    string
	calls   int
	elapsed float64
	log     *[]string
}

func (p *probe) Name() string { return p.name }

func (p *probe) Update(dt float64) {
	p.calls++
	p.elapsed += dt
	if p.log != nil {
		*p.log = append(*p.log, p.name)
	}
}

type camProbe struct {
	probe
}

func (c *camProbe) CameraTarget() motion.View {
	return motion.View{Position: mgl64.Vec3{1, 2, 3}, LookAt: mgl64.Vec3{4, 5, 6}}
}

type povProbe struct {
	probe
}

func (c *povProbe) POV() motion.POV {
	return motion.POV{Position: mgl64.Vec3{7, 8, 9}, FOVDeg: 60}
}

func TestSchedulerStepsInRegistrationOrder(t *testing.T) {
	var log []string
	s := sim.NewScheduler()
	s.Add(&probe{name: "train", log: &log}, &probe{name: "taxi", log: &log})
	s.Add(&probe{name: "deck", log: &log})

	s.Step(0.1)
	s.Step(0.1)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"train", "taxi", "deck", "train", "taxi", "deck"}, log)
}

func TestSchedulerFind(t *testing.T) {
	s := sim.NewScheduler()
	train := &probe{name: "train"}
	s.Add(train)

	assert.Same(t, motion.Agent(train), s.Find("train"))
	assert.Nil(t, s.Find("blimp"))
}

func TestSchedulerClear(t *testing.T) {
	s := sim.NewScheduler()
	p := &probe{name: "p"}
	s.Add(p)
	s.Clear()

	s.Step(0.1)
	assert.Zero(t, s.Len())
	assert.Zero(t, p.calls, "a cleared scheduler steps nothing")
	assert.Nil(t, s.Find("p"))
}

func TestSchedulerCapabilityScan(t *testing.T) {
	s := sim.NewScheduler()
	cam := &camProbe{probe: probe{name: "taxi"}}
	pov := &povProbe{probe: probe{name: "helicopter"}}
	s.Add(&probe{name: "gears"}, cam, pov)

	riders := s.CameraSources()
	require.Len(t, riders, 1)
	assert.Equal(t, "taxi", riders[0].Name())

	views := s.POVSources()
	require.Len(t, views, 1)
	assert.Equal(t, "helicopter", views[0].Name())
}

func TestAdvanceCoversRequestedTime(t *testing.T) {
	s := sim.NewScheduler()
	p := &probe{name: "p"}
	s.Add(p)

	steps := sim.Advance(s, 10, 0.05)
	assert.Equal(t, 200, steps)
	assert.Equal(t, 200, p.calls)
	assert.InDelta(t, 10, p.elapsed, 1e-9)
}

func TestAdvanceRejectsBadStep(t *testing.T) {
	s := sim.NewScheduler()
	p := &probe{name: "p"}
	s.Add(p)

	assert.Zero(t, sim.Advance(s, 10, 0))
	assert.Zero(t, p.calls)
}

func TestRunnerTicksUntilCanceled(t *testing.T) {
	s := sim.NewScheduler()
	p := &probe{name: "p"}
	s.Add(p)

	var before, after int
	r := &sim.Runner{
		Scheduler: s,
		Hz:        200,
		Before:    func() { before++ },
		After:     func(tick uint64, dt float64) { after++ },
	}

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	err := r.Run(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, p.calls, 5)
	assert.Equal(t, p.calls, before)
	assert.Equal(t, p.calls, after)
}
