package client

import (
	"encoding/json"

	"github.com/cordialsys/bridgekit"
	"github.com/cordialsys/bridgekit/errors"
)

// Envelope is the return of a bridging call.  Data is opaque to the
// protocol boundary: it may be an already-structured result or a JSON
// encoded string requiring one more parse.
type Envelope struct {
	OK   bool            `json:"ok"`
	Data json.RawMessage `json:"data,omitempty"`
}

// StepResult is the terminal record of one protocol step.
type StepResult struct {
	Name         string              `json:"name,omitempty"`
	State        bridgekit.StepState `json:"state"`
	ErrorMessage string              `json:"errorMessage,omitempty"`
}

// Result is the decoded terminal payload of a bridging call.
type Result struct {
	State bridgekit.StepState `json:"state"`
	Steps []StepResult        `json:"steps,omitempty"`
}

// FirstError returns the first step-level error message, if any step failed.
// A step error overrides a successful top-level state.
func (r *Result) FirstError() (string, bool) {
	for _, step := range r.Steps {
		if step.State == bridgekit.StateError {
			return step.ErrorMessage, true
		}
	}
	return "", false
}

// DecodeResult parses the envelope's opaque data.  A missing payload decodes
// to an empty result; malformed payloads are a Decode error.
func DecodeResult(envelope *Envelope) (*Result, error) {
	if envelope == nil {
		return nil, errors.Decodef("bridge returned no envelope")
	}
	raw := envelope.Data
	if len(raw) == 0 || string(raw) == "null" {
		return &Result{}, nil
	}
	// unwrap one level of string encoding, if present
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		raw = json.RawMessage(asString)
	}
	result := &Result{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, errors.Decodef("malformed bridge result: %v", err)
	}
	return result, nil
}
