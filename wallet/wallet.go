// Package wallet holds the network synchronization logic between the
// orchestrator's required active network and the user's wallet.
package wallet

import (
	"context"
	"time"

	"github.com/cordialsys/bridgekit"
	"github.com/cordialsys/bridgekit/errors"
	"github.com/sirupsen/logrus"
)

// Switcher is the wallet network-switch collaborator.  Implementations
// suspend until the wallet confirms or rejects the switch and must honor
// context cancellation.  A user rejection is reported with
// errors.UserDeclined so callers can continue or abort without treating it
// as a hard fault.
type Switcher interface {
	SwitchActiveNetwork(ctx context.Context, chainID bridgekit.StringOrInt) error
}

// DefaultAlignTimeout bounds how long an ignored wallet prompt may suspend
// an alignment before it is abandoned.
const DefaultAlignTimeout = 30 * time.Second

// Synchronizer ensures the wallet's active network matches a target chain
// before a chain-specific action is signed.
type Synchronizer struct {
	switcher Switcher
	timeout  time.Duration
}

func NewSynchronizer(switcher Switcher) *Synchronizer {
	return &Synchronizer{switcher: switcher, timeout: DefaultAlignTimeout}
}

func (s *Synchronizer) WithTimeout(timeout time.Duration) *Synchronizer {
	s.timeout = timeout
	return s
}

// Align switches the wallet to the target chain's network.  Chains whose
// kind does not require alignment are a no-op.  A prompt the user ignores
// is abandoned after the configured timeout.
func (s *Synchronizer) Align(ctx context.Context, target bridgekit.ChainInfo) error {
	if !target.KindOf().RequiresAlignment() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.switcher.SwitchActiveNetwork(ctx, target.ChainID)
	if err == nil {
		return nil
	}
	if errors.IsUserDeclined(err) {
		return err
	}
	if ctx.Err() == context.DeadlineExceeded {
		return errors.Errorf(errors.WalletError, "network switch to %s timed out", target.Chain)
	}
	logrus.WithError(err).WithField("chain", target.Chain).Debug("wallet network switch failed")
	return errors.Errorf(errors.WalletError, "network switch to %s failed: %v", target.Chain, err)
}
