// Package factory wires configuration into connector, balance, and
// orchestrator instances.
package factory

import (
	"context"
	"fmt"

	"github.com/cordialsys/bridgekit"
	xclient "github.com/cordialsys/bridgekit/client"
	"github.com/cordialsys/bridgekit/client/connector"
	"github.com/cordialsys/bridgekit/client/evm"
	"github.com/cordialsys/bridgekit/client/solana"
	"github.com/cordialsys/bridgekit/factory/config"
	"github.com/cordialsys/bridgekit/orchestrator"
	"github.com/cordialsys/bridgekit/wallet"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Factory struct {
	Config *config.Config
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{Config: cfg}
}

// NewDefaultFactory loads configuration from file or testnet defaults.
func NewDefaultFactory() (*Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewFactory(cfg), nil
}

// NewBridgeClient builds the connector client for the configured deployment.
func (f *Factory) NewBridgeClient() *connector.Client {
	cli := connector.NewClient(f.Config.Connector.URL)
	if f.Config.Connector.RateLimit > 0 {
		cli = cli.WithRateLimit(rate.Limit(f.Config.Connector.RateLimit), f.Config.Connector.Burst)
	}
	if f.Config.Connector.PollInterval > 0 {
		cli = cli.WithPollInterval(f.Config.Connector.PollInterval)
	}
	return cli
}

// NewBalanceClient builds a USDC balance reader for one configured chain.
func (f *Factory) NewBalanceClient(chain bridgekit.Chain) (xclient.BalanceClient, error) {
	chainCfg, ok := f.Config.GetChain(chain)
	if !ok {
		return nil, fmt.Errorf("no rpc configured for chain: %s", chain)
	}
	switch kind := chainCfg.KindOf(); kind {
	case bridgekit.KindEvm:
		return evm.NewClient(chainCfg.URL, chainCfg.Token)
	case bridgekit.KindSolana:
		return solana.NewClient(chainCfg.URL, chainCfg.Token)
	default:
		return nil, fmt.Errorf("unsupported chain kind: %s", kind)
	}
}

// NewSynchronizer builds the network synchronizer over a wallet switcher.
func (f *Factory) NewSynchronizer(switcher wallet.Switcher) *wallet.Synchronizer {
	synchronizer := wallet.NewSynchronizer(switcher)
	if f.Config.AlignTimeout > 0 {
		synchronizer = synchronizer.WithTimeout(f.Config.AlignTimeout)
	}
	return synchronizer
}

// LoadCatalog fetches the supported chains once and narrows them to the
// configured environment.
func (f *Factory) LoadCatalog(ctx context.Context) ([]bridgekit.ChainInfo, error) {
	chains, err := f.NewBridgeClient().GetSupportedChains(ctx)
	if err != nil {
		return nil, err
	}
	return bridgekit.FilterTestnets(chains, f.Config.Testnet()), nil
}

// NewOrchestrator assembles an orchestrator over the configured connector,
// with balance refreshers registered for every configured chain present in
// the catalog.
func (f *Factory) NewOrchestrator(ctx context.Context, switcher wallet.Switcher, addressFor func(bridgekit.ChainInfo) (string, bool)) (*orchestrator.Orchestrator, error) {
	catalog, err := f.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	orch := orchestrator.New(f.NewBridgeClient(), f.NewSynchronizer(switcher), catalog)
	for _, info := range catalog {
		address, ok := addressFor(info)
		if !ok {
			continue
		}
		balanceClient, err := f.NewBalanceClient(info.Chain)
		if err != nil {
			// chains without rpc config just don't get refreshed
			continue
		}
		cached := xclient.NewCachedBalance(balanceClient, address)
		if err := cached.Refresh(ctx); err != nil {
			logrus.WithError(err).WithField("chain", info.Chain).Warn("initial balance read failed")
		}
		orch.RegisterRefresher(info.Chain, cached)
	}
	return orch, nil
}
