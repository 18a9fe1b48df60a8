// Package orchestrator drives one cross-chain transfer attempt from
// submission to terminal outcome.
package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/cordialsys/bridgekit"
	"github.com/cordialsys/bridgekit/client"
	"github.com/cordialsys/bridgekit/errors"
	"github.com/cordialsys/bridgekit/normalize"
	"github.com/cordialsys/bridgekit/progress"
	"github.com/cordialsys/bridgekit/wallet"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Orchestrator runs transfer attempts one at a time.  A second Submit while
// one is outstanding is rejected, so the tracker and log are never written
// by two attempts concurrently.
type Orchestrator struct {
	bridge       client.BridgeService
	synchronizer *wallet.Synchronizer
	tracker      *progress.Tracker
	// read-only catalog of environment-appropriate chains, loaded at startup
	catalog  []bridgekit.ChainInfo
	balances map[bridgekit.Chain]client.Refresher

	mu sync.Mutex
	// uuid of the attempt in flight, empty when idle.  Events and
	// resolutions tagged with any other id are stale and discarded.
	attempt string
}

func New(bridge client.BridgeService, synchronizer *wallet.Synchronizer, catalog []bridgekit.ChainInfo) *Orchestrator {
	return &Orchestrator{
		bridge:       bridge,
		synchronizer: synchronizer,
		tracker:      progress.NewTracker(),
		catalog:      catalog,
		balances:     map[bridgekit.Chain]client.Refresher{},
	}
}

// RegisterRefresher attaches the balance-refresh collaborator for a chain,
// invoked after a transfer debits it.
func (o *Orchestrator) RegisterRefresher(chain bridgekit.Chain, refresher client.Refresher) {
	o.balances[chain] = refresher
}

// Tracker exposes the attempt's display state.
func (o *Orchestrator) Tracker() *progress.Tracker {
	return o.tracker
}

// Catalog returns the chains this orchestrator serves.
func (o *Orchestrator) Catalog() []bridgekit.ChainInfo {
	return o.catalog
}

// Reset clears local tracking state.  It does not stop an underlying
// protocol action, whose late events are discarded by the attempt guard.
func (o *Orchestrator) Reset() {
	o.tracker.Reset()
}

// Submit runs one transfer attempt and resolves to exactly one outcome.
//
// A non-nil error is returned only when the attempt stopped before any
// protocol action: validation rejections, a concurrent attempt, or the user
// declining the entry network switch (errors.UserDeclined, a silent abort
// with no failure log).  Every failure after the bridging call starts is
// reported as a Failure outcome with a nil error.
func (o *Orchestrator) Submit(ctx context.Context, req *bridgekit.TransferRequest) (bridgekit.TransferOutcome, error) {
	var none bridgekit.TransferOutcome
	if err := req.Validate(); err != nil {
		return none, err
	}
	destination, ok := bridgekit.FindChain(o.catalog, req.To)
	if !ok {
		return none, errors.Validationf("unsupported destination chain: %s", req.To)
	}
	if _, ok := bridgekit.FindChain(o.catalog, req.From); !ok {
		return none, errors.Validationf("unsupported source chain: %s", req.From)
	}

	attemptID, err := o.begin()
	if err != nil {
		return none, err
	}
	defer o.end(attemptID)

	log := logrus.WithFields(logrus.Fields{
		"attempt": attemptID,
		"from":    req.From,
		"to":      req.To,
		"amount":  req.Amount,
	})
	log.Info("bridge started")

	o.tracker.Reset()
	o.tracker.AddLog("Bridge started")
	o.tracker.AddLog("Approving transfer...")

	// The wallet must be parked on the destination network before the mint
	// can be signed there.  A decline aborts the attempt silently; any other
	// wallet error is a normal failure.
	if err := o.synchronizer.Align(ctx, destination); err != nil {
		if errors.IsUserDeclined(err) {
			log.WithError(err).Warn("user rejected network switch")
			return none, err
		}
		return o.fail(log, errors.MessageOf(err)), nil
	}

	envelope, err := o.execute(ctx, req, attemptID, destination, log)
	if err != nil {
		return o.fail(log, errors.MessageOf(err)), nil
	}

	outcome := o.classify(envelope, req.Amount)
	if reason, failed := outcome.Reason(); failed {
		return o.fail(log, reason), nil
	}

	o.tracker.SetCurrent(bridgekit.StepComplete)
	o.refreshSource(ctx, req.From, log)
	log.Info("bridge complete")
	return outcome, nil
}

// execute invokes the bridging service, routing each event to the tracker
// and, during the mint phase, to the network synchronizer.
func (o *Orchestrator) execute(
	ctx context.Context,
	req *bridgekit.TransferRequest,
	attemptID string,
	destination bridgekit.ChainInfo,
	log *logrus.Entry,
) (*client.Envelope, error) {
	var alignOnce sync.Once
	onEvent := func(evt normalize.Event) {
		if !o.isCurrent(attemptID) {
			log.WithField("method", evt.Method).Debug("discarding stale bridge event")
			return
		}
		o.tracker.HandleEvent(evt)

		if !evt.IsMint() || !destination.KindOf().RequiresAlignment() {
			return
		}
		if state, ok := evt.State(); !ok || state.Terminal() {
			return
		}
		// The wait is bounded by the synchronizer, so an ignored wallet
		// prompt cannot wedge event delivery.  Rejection here is swallowed:
		// the bridging call continues and a wallet-side mint failure will
		// surface as a normal step error.
		alignOnce.Do(func() {
			if err := o.synchronizer.Align(ctx, destination); err != nil {
				log.WithError(err).Warn("mint-phase network switch failed")
			}
		})
	}
	return o.bridge.Execute(ctx, req, onEvent)
}

// classify reconciles the envelope with its decoded step stream.  A
// step-level error overrides a successful top-level state.
func (o *Orchestrator) classify(envelope *client.Envelope, amount bridgekit.AmountHumanReadable) bridgekit.TransferOutcome {
	result, err := client.DecodeResult(envelope)
	if err != nil {
		return bridgekit.Failure(errors.MessageOf(err))
	}
	if message, failed := result.FirstError(); failed {
		if message == "" {
			message = "Bridge failed"
		}
		return bridgekit.Failure(message)
	}
	if !envelope.OK || result.State != bridgekit.StateSuccess {
		return bridgekit.Failure("Bridge failed")
	}
	return bridgekit.Success(amount)
}

func (o *Orchestrator) fail(log *logrus.Entry, reason string) bridgekit.TransferOutcome {
	o.tracker.AddLog(fmt.Sprintf("Error: %s", reason))
	o.tracker.SetCurrent(bridgekit.StepFailed)
	log.WithField("reason", reason).Error("bridge failed")
	return bridgekit.Failure(reason)
}

func (o *Orchestrator) refreshSource(ctx context.Context, source bridgekit.Chain, log *logrus.Entry) {
	refresher, ok := o.balances[source]
	if !ok {
		return
	}
	if err := refresher.Refresh(ctx); err != nil {
		// display concern only, the transfer itself settled
		log.WithError(err).Warn("failed to refresh source balance")
	}
}

func (o *Orchestrator) begin() (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.attempt != "" {
		return "", errors.Validationf("a transfer is already in progress")
	}
	o.attempt = uuid.NewString()
	return o.attempt, nil
}

func (o *Orchestrator) end(attemptID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.attempt == attemptID {
		o.attempt = ""
	}
}

func (o *Orchestrator) isCurrent(attemptID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.attempt == attemptID
}
