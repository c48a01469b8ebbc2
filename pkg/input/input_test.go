package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/input"
)

func TestStickStartsDisconnected(t *testing.T) {
	stick := input.NewStick()
	state, ok := stick.Poll()
	assert.False(t, ok)
	assert.Equal(t, input.State{}, state)
}

func TestStickClampsAxes(t *testing.T) {
	stick := input.NewStick()
	stick.Set(input.State{Pitch: -3, Roll: 0.5, Yaw: 4, Lift: 2})

	got, ok := stick.Poll()
	require.True(t, ok, "a set stick reads as connected")
	assert.Equal(t, -1.0, got.Pitch)
	assert.Equal(t, 0.5, got.Roll)
	assert.Equal(t, 1.0, got.Yaw)
	assert.Equal(t, 1.0, got.Lift)
}

func TestStickLiftIsTriggerNotAxis(t *testing.T) {
	stick := input.NewStick()
	stick.Set(input.State{Lift: -0.7})

	got, _ := stick.Poll()
	assert.Zero(t, got.Lift, "trigger has no negative throw")
}

func TestStickReleaseDisconnects(t *testing.T) {
	stick := input.NewStick()
	stick.Set(input.State{Lift: 1, Yaw: 0.3})
	stick.Release()

	state, ok := stick.Poll()
	assert.False(t, ok)
	assert.Equal(t, input.State{}, state)
}

func TestScriptSegmentsInOrder(t *testing.T) {
	script := input.NewScript([]input.Segment{
		{DurationS: 2, State: input.State{Lift: 1}},
		{DurationS: 3, State: input.State{Pitch: 0.5}},
	})

	got, ok := script.Poll()
	require.True(t, ok)
	assert.Equal(t, 1.0, got.Lift)

	script.Advance(2.5)
	got, ok = script.Poll()
	require.True(t, ok)
	assert.Zero(t, got.Lift)
	assert.Equal(t, 0.5, got.Pitch)
}

func TestScriptEndsAsDisconnect(t *testing.T) {
	script := input.NewScript([]input.Segment{
		{DurationS: 1, State: input.State{Lift: 0.8}},
	})

	script.Advance(5)
	state, ok := script.Poll()
	assert.False(t, ok, "a finished script reads as no device")
	assert.Equal(t, input.State{}, state)
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.yaml")
	doc := `- duration_s: 4
  lift: 0.8
- duration_s: 2
  pitch: 0.4
  yaw: -0.2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	script, err := input.LoadScript(path)
	require.NoError(t, err)

	got, ok := script.Poll()
	require.True(t, ok)
	assert.Equal(t, 0.8, got.Lift)

	script.Advance(5)
	got, ok = script.Poll()
	require.True(t, ok)
	assert.Equal(t, 0.4, got.Pitch)
	assert.Equal(t, -0.2, got.Yaw)
}

func TestLoadScriptMissing(t *testing.T) {
	_, err := input.LoadScript("does-not-exist.yaml")
	require.Error(t, err)
}
