// Package client defines the collaborator boundaries of the orchestrator:
// the bridging service, the ledger catalog, and balance reads.
package client

import (
	"context"

	"github.com/cordialsys/bridgekit"
	"github.com/cordialsys/bridgekit/normalize"
)

// OnEvent receives progress events while a bridging call is in flight.
// Events are emitted on the protocol's internal callbacks, interleaved with
// the awaited Execute call, and must not be blocked indefinitely.
type OnEvent func(evt normalize.Event)

// BridgeService is the single opaque call into the bridging protocol
// (approval, burn, attestation, mint).  Execute is long-running: it emits
// zero or more progress events before resolving with a final envelope.
type BridgeService interface {
	Execute(ctx context.Context, req *bridgekit.TransferRequest, onEvent OnEvent) (*Envelope, error)
}

// Catalog is the ledger catalog collaborator, called once at startup.  The
// result is read-only reference data for the lifetime of the process.
type Catalog interface {
	GetSupportedChains(ctx context.Context) ([]bridgekit.ChainInfo, error)
}

// BalanceClient reads asset balances on one chain.
type BalanceClient interface {
	// Fetch the configured asset balance for an address, as a big integer.
	FetchBalance(ctx context.Context, address string) (bridgekit.AmountBlockchain, error)
	// Decimals of the configured asset.
	FetchDecimals(ctx context.Context) (int32, error)
}
