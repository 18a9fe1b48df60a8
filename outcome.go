package bridgekit

import "fmt"

// TransferOutcome is the single terminal result of one attempt.  An attempt
// is either still in flight or has exactly one outcome.
type TransferOutcome struct {
	ok bool
	// Amount settled on the destination chain, set on success.
	settled AmountHumanReadable
	// Human readable reason, set on failure.
	reason string
}

func Success(settled AmountHumanReadable) TransferOutcome {
	return TransferOutcome{ok: true, settled: settled}
}

func Failure(reason string) TransferOutcome {
	return TransferOutcome{ok: false, reason: reason}
}

func (outcome TransferOutcome) Ok() bool { return outcome.ok }

func (outcome TransferOutcome) Settled() (AmountHumanReadable, bool) {
	return outcome.settled, outcome.ok
}

func (outcome TransferOutcome) Reason() (string, bool) {
	return outcome.reason, !outcome.ok
}

func (outcome TransferOutcome) String() string {
	if outcome.ok {
		return fmt.Sprintf("Success(settled=%s)", outcome.settled)
	}
	return fmt.Sprintf("Failure(reason=%q)", outcome.reason)
}
