package client

import (
	"context"
	"sync"

	"github.com/cordialsys/bridgekit"
)

// Refresher re-reads a balance after it may have changed, e.g. after a
// successful transfer debits the source ledger.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// CachedBalance holds the last fetched human readable balance for one
// address on one chain.
type CachedBalance struct {
	client  BalanceClient
	address string

	mu      sync.Mutex
	balance bridgekit.AmountHumanReadable
	loaded  bool
}

var _ Refresher = &CachedBalance{}

func NewCachedBalance(client BalanceClient, address string) *CachedBalance {
	return &CachedBalance{client: client, address: address}
}

// Refresh fetches the balance and converts it using the asset's decimals.
func (c *CachedBalance) Refresh(ctx context.Context) error {
	raw, err := c.client.FetchBalance(ctx, c.address)
	if err != nil {
		return err
	}
	decimals, err := c.client.FetchDecimals(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balance = raw.ToHuman(decimals)
	c.loaded = true
	return nil
}

// Balance returns the last fetched balance and whether one has been loaded.
func (c *CachedBalance) Balance() (bridgekit.AmountHumanReadable, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance, c.loaded
}
