package bridgekit

import (
	"fmt"

	"github.com/cordialsys/bridgekit/errors"
)

// Adapter is a handle to a connected wallet able to sign on one kind of chain.
// Connection and disconnection are owned by the embedding application.
type Adapter interface {
	// The wallet's account address.
	Address() string
	// The kind of chain the wallet signs for.
	Kind() Kind
}

// TransferRequest describes one bridge attempt.  It is constructed fresh per
// submission and never mutated.
type TransferRequest struct {
	From   Chain
	To     Chain
	Amount AmountHumanReadable

	// Wallet handles for each side of the transfer.
	FromAdapter Adapter
	ToAdapter   Adapter
}

func NewTransferRequest(from Chain, to Chain, amount AmountHumanReadable, fromAdapter Adapter, toAdapter Adapter) *TransferRequest {
	return &TransferRequest{
		From:        from,
		To:          to,
		Amount:      amount,
		FromAdapter: fromAdapter,
		ToAdapter:   toAdapter,
	}
}

// Validate rejects requests that must not produce any side effect.
func (req *TransferRequest) Validate() error {
	if !req.Amount.IsPositive() {
		return errors.Validationf("amount must be positive, got %s", req.Amount)
	}
	if req.From == req.To {
		return errors.Validationf("source and destination chain are identical: %s", req.From)
	}
	if req.From == "" || req.To == "" {
		return errors.Validationf("source and destination chain are required")
	}
	if req.FromAdapter == nil {
		return errors.Validationf("no wallet connected for source chain %s", req.From)
	}
	if req.ToAdapter == nil {
		return errors.Validationf("no wallet connected for destination chain %s", req.To)
	}
	// The approval and burn are signed on the wallet's currently active
	// network, so the source wallet kind must match the source chain.
	if kind := req.From.KindOf(); req.FromAdapter.Kind() != kind {
		return errors.Validationf("source wallet signs for %s chains, but %s is a %s chain",
			req.FromAdapter.Kind(), req.From, kind)
	}
	if kind := req.To.KindOf(); req.ToAdapter.Kind() != kind {
		return errors.Validationf("destination wallet signs for %s chains, but %s is a %s chain",
			req.ToAdapter.Kind(), req.To, kind)
	}
	return nil
}

func (req TransferRequest) String() string {
	return fmt.Sprintf("TransferRequest(from=%s to=%s amount=%s)", req.From, req.To, req.Amount)
}
