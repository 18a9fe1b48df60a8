package bridgekit

// Step is one phase of a bridge transfer, in protocol order.
type Step string

const (
	// StepNone is the pointer value before an attempt has started.
	StepNone      = Step("")
	StepApproving = Step("approving")
	StepBurning   = Step("burning")
	StepAttesting = Step("attesting")
	StepMinting   = Step("minting")
	StepComplete  = Step("complete")
	StepFailed    = Step("failed")
)

// StepSequence is the canonical ordering used for display.
var StepSequence = []Step{
	StepApproving,
	StepBurning,
	StepAttesting,
	StepMinting,
	StepComplete,
}

// Terminal reports whether no further step can follow.
func (step Step) Terminal() bool {
	return step == StepComplete || step == StepFailed
}

func (step Step) DisplayName() string {
	switch step {
	case StepApproving:
		return "Approving"
	case StepBurning:
		return "Burning"
	case StepAttesting:
		return "Attesting"
	case StepMinting:
		return "Minting"
	case StepComplete:
		return "Complete"
	case StepFailed:
		return "Failed"
	}
	return "Idle"
}

// StepState is the reported progress of a single step.
type StepState string

const (
	StatePending = StepState("pending")
	StateActive  = StepState("active")
	StateSuccess = StepState("success")
	StateError   = StepState("error")
)

func (state StepState) Valid() bool {
	switch state {
	case StatePending, StateActive, StateSuccess, StateError:
		return true
	}
	return false
}

// Terminal reports whether the step can no longer change state.
func (state StepState) Terminal() bool {
	return state == StateSuccess || state == StateError
}
