package wallet

import (
	"context"

	"github.com/cordialsys/bridgekit"
	"github.com/sirupsen/logrus"
)

// StaticAdapter is a wallet handle fixed to one address, for headless use
// where signing happens out of process.
type StaticAdapter struct {
	address string
	kind    bridgekit.Kind
}

var _ bridgekit.Adapter = &StaticAdapter{}

func NewStaticAdapter(address string, kind bridgekit.Kind) *StaticAdapter {
	return &StaticAdapter{address: address, kind: kind}
}

func (a *StaticAdapter) Address() string      { return a.address }
func (a *StaticAdapter) Kind() bridgekit.Kind { return a.kind }

// AutoApproveSwitcher approves every network switch without prompting.
// Used where no interactive wallet owns the active network.
type AutoApproveSwitcher struct{}

var _ Switcher = AutoApproveSwitcher{}

func (AutoApproveSwitcher) SwitchActiveNetwork(ctx context.Context, chainID bridgekit.StringOrInt) error {
	logrus.WithField("chain_id", chainID).Debug("auto-approving network switch")
	return nil
}
