// Package normalize maps raw bridge protocol events into the closed set of
// transfer steps and step states.  The protocol emits polymorphic payloads
// keyed by method name; everything unrecognized is dropped, never fatal.
package normalize

import (
	"fmt"
	"strings"

	"github.com/cordialsys/bridgekit"
)

// Event is a raw progress event as emitted by the bridging service.
type Event struct {
	Method string         `json:"method"`
	Values map[string]any `json:"values,omitempty"`
}

// State extracts the reported step state, if the payload carries a valid one.
func (evt Event) State() (bridgekit.StepState, bool) {
	raw, ok := evt.Values["state"]
	if !ok {
		return "", false
	}
	str, ok := raw.(string)
	if !ok {
		return "", false
	}
	state := bridgekit.StepState(strings.ToLower(strings.TrimSpace(str)))
	if !state.Valid() {
		return "", false
	}
	return state, true
}

func (evt Event) String() string {
	state, _ := evt.State()
	return fmt.Sprintf("Event(method=%s state=%s)", evt.Method, state)
}

// StepUpdate is one normalized observation of the transfer's progress.
type StepUpdate struct {
	Step  bridgekit.Step
	State bridgekit.StepState
}

// StepForMethod maps a protocol method name to a transfer step.
// The bridge has used both noun and verb forms across versions.
func StepForMethod(method string) (bridgekit.Step, bool) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "approve", "approval":
		return bridgekit.StepApproving, true
	case "burn", "depositforburn":
		return bridgekit.StepBurning, true
	case "attest", "attestation":
		return bridgekit.StepAttesting, true
	case "mint", "receivemessage":
		return bridgekit.StepMinting, true
	}
	return bridgekit.StepNone, false
}

// IsMint reports whether the event belongs to the mint phase, which is the
// point where the destination wallet network must be aligned.
func (evt Event) IsMint() bool {
	step, ok := StepForMethod(evt.Method)
	return ok && step == bridgekit.StepMinting
}

// Normalize maps a raw event to a step update.  Unknown methods and
// malformed payloads return ok=false and are ignored by callers.
func Normalize(evt Event) (StepUpdate, bool) {
	step, ok := StepForMethod(evt.Method)
	if !ok {
		return StepUpdate{}, false
	}
	state, ok := evt.State()
	if !ok {
		return StepUpdate{}, false
	}
	return StepUpdate{Step: step, State: state}, true
}
