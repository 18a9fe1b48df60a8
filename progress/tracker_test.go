package progress_test

import (
	"testing"

	"github.com/cordialsys/bridgekit"
	"github.com/cordialsys/bridgekit/normalize"
	"github.com/cordialsys/bridgekit/progress"
	"github.com/stretchr/testify/require"
)

func evt(method string, state string) normalize.Event {
	return normalize.Event{Method: method, Values: map[string]any{"state": state}}
}

func TestTrackerTransitions(t *testing.T) {
	require := require.New(t)
	tracker := progress.NewTracker()
	require.Equal(bridgekit.StepNone, tracker.Current())

	require.True(tracker.HandleEvent(evt("approve", "active")))
	require.Equal(bridgekit.StepApproving, tracker.Current())

	require.True(tracker.HandleEvent(evt("approve", "success")))
	require.True(tracker.HandleEvent(evt("burn", "active")))
	require.Equal(bridgekit.StepBurning, tracker.Current())

	require.Equal([]string{
		"Approving: active",
		"Approving: success",
		"Burning: active",
	}, tracker.Messages())
}

func TestTrackerDuplicateEventsIdempotent(t *testing.T) {
	require := require.New(t)
	tracker := progress.NewTracker()

	require.True(tracker.HandleEvent(evt("mint", "pending")))
	require.False(tracker.HandleEvent(evt("mint", "pending")))
	require.False(tracker.HandleEvent(evt("mint", "pending")))
	require.Len(tracker.Messages(), 1)

	require.True(tracker.HandleEvent(evt("mint", "success")))
	require.Len(tracker.Messages(), 2)
}

func TestTrackerIgnoresUnrecognized(t *testing.T) {
	require := require.New(t)
	tracker := progress.NewTracker()
	require.False(tracker.HandleEvent(normalize.Event{Method: "estimateGas"}))
	require.False(tracker.HandleEvent(normalize.Event{Method: "mint"}))
	require.Empty(tracker.Messages())
	require.Equal(bridgekit.StepNone, tracker.Current())
}

func TestTrackerResetDeterminism(t *testing.T) {
	require := require.New(t)
	tracker := progress.NewTracker()
	sequence := []normalize.Event{
		evt("approve", "active"),
		evt("approve", "success"),
		evt("burn", "active"),
		evt("burn", "success"),
		evt("attest", "active"),
		evt("mint", "pending"),
		evt("mint", "pending"),
		evt("mint", "success"),
	}

	run := func() []string {
		tracker.Reset()
		for _, e := range sequence {
			tracker.HandleEvent(e)
		}
		return tracker.Messages()
	}
	first := run()
	second := run()
	require.Equal(first, second)
	require.Len(first, 7)
}

func TestTrackerAddLog(t *testing.T) {
	require := require.New(t)
	tracker := progress.NewTracker()
	tracker.AddLog("Bridge started")
	tracker.AddLog("Approving transfer...")
	require.Equal([]string{"Bridge started", "Approving transfer..."}, tracker.Messages())
	// milestone lines do not move the step pointer
	require.Equal(bridgekit.StepNone, tracker.Current())

	tracker.Reset()
	require.Empty(tracker.Entries())
}

func TestTrackerEntriesAreCopies(t *testing.T) {
	require := require.New(t)
	tracker := progress.NewTracker()
	tracker.AddLog("one")
	entries := tracker.Entries()
	entries[0].Message = "mutated"
	require.Equal("one", tracker.Messages()[0])
}
