package scenario

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

// stepClock returns a clock whose k-th measured interval lasts deltas[k].
func stepClock(deltas ...time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		if calls%2 == 1 {
			now = now.Add(deltas[(calls/2)%len(deltas)])
		}
		calls++
		return now
	}
}

func TestRunnerKeepsFastestRepeat(t *testing.T) {
	r := NewRunner(nil,
		WithEngines(Lazy),
		WithRepeat(3),
		withClock(stepClock(5*time.Millisecond, 2*time.Millisecond, 7*time.Millisecond)),
	)
	results, err := r.Run("sum3")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 2*time.Millisecond, results[0].Duration)
	require.Equal(t, "14", results[0].Outcome.Probe)
}

func TestRunnerAllScenariosBothEngines(t *testing.T) {
	results, err := NewRunner(hclog.NewNullLogger()).Run()
	require.NoError(t, err)
	require.Len(t, results, 2*len(Names()))
	for i := 0; i < len(results); i += 2 {
		require.Equal(t, results[i].Scenario, results[i+1].Scenario)
		require.Equal(t, Lazy, results[i].Engine)
		require.Equal(t, Eager, results[i+1].Engine)
	}
}

func TestRunnerCollectsErrors(t *testing.T) {
	var logs bytes.Buffer
	log := hclog.New(&hclog.LoggerOptions{Output: &logs, Level: hclog.Debug})

	results, err := NewRunner(log, WithEngines(Eager, Engine(9))).Run("sum3", "nope")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownScenario)
	require.ErrorIs(t, err, ErrUnknownEngine)
	require.Len(t, results, 1)
	require.Equal(t, Eager, results[0].Engine)
	require.Contains(t, logs.String(), "scenario failed")
	require.Contains(t, logs.String(), "run complete")
}

func TestWithRepeatClampsToOne(t *testing.T) {
	r := NewRunner(nil, WithRepeat(0))
	require.Equal(t, 1, r.repeat)
}

func TestAgree(t *testing.T) {
	a := Outcome{Probe: "1"}
	require.NoError(t, agree("x", []Outcome{a, a}))
	require.NoError(t, agree("x", nil))
	require.ErrorIs(t, agree("x", []Outcome{a, {Probe: "2"}}), ErrDisagreement)
}

func TestWriteReport(t *testing.T) {
	results, err := NewRunner(nil, withClock(stepClock(time.Millisecond))).Run("complex")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, results))
	out := buf.String()
	require.Contains(t, strings.ToLower(out), "scenario")
	require.Contains(t, out, "complex")
	require.Contains(t, out, "lazy")
	require.Contains(t, out, "eager")
	require.Contains(t, out, "2x2")
	require.Contains(t, out, "(-88-244i)")
	require.Contains(t, out, "1ms")
}

func TestWriteReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil))
}
