package wallet_test

import (
	"context"
	"testing"
	"time"

	"github.com/cordialsys/bridgekit"
	"github.com/cordialsys/bridgekit/errors"
	"github.com/cordialsys/bridgekit/wallet"
	"github.com/stretchr/testify/require"
)

type fakeSwitcher struct {
	calls []bridgekit.StringOrInt
	err   error
	block bool
}

func (f *fakeSwitcher) SwitchActiveNetwork(ctx context.Context, chainID bridgekit.StringOrInt) error {
	f.calls = append(f.calls, chainID)
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

var sepolia = bridgekit.ChainInfo{Chain: bridgekit.EthereumSepolia, ChainID: "11155111", IsTestnet: true}
var devnet = bridgekit.ChainInfo{Chain: bridgekit.SolanaDevnet, ChainID: "devnet", IsTestnet: true}

func TestAlignEvm(t *testing.T) {
	require := require.New(t)
	switcher := &fakeSwitcher{}
	sync := wallet.NewSynchronizer(switcher)

	require.NoError(sync.Align(context.Background(), sepolia))
	require.Equal([]bridgekit.StringOrInt{"11155111"}, switcher.calls)
}

func TestAlignSolanaNoOp(t *testing.T) {
	require := require.New(t)
	switcher := &fakeSwitcher{}
	sync := wallet.NewSynchronizer(switcher)

	require.NoError(sync.Align(context.Background(), devnet))
	require.Empty(switcher.calls)
}

func TestAlignDeclinedIsDistinguished(t *testing.T) {
	require := require.New(t)
	switcher := &fakeSwitcher{err: errors.UserDeclinedf("user rejected the request")}
	sync := wallet.NewSynchronizer(switcher)

	err := sync.Align(context.Background(), sepolia)
	require.Error(err)
	require.True(errors.IsUserDeclined(err))
}

func TestAlignWalletErrorClassified(t *testing.T) {
	require := require.New(t)
	switcher := &fakeSwitcher{err: errors.Errorf(errors.WalletError, "chain not added")}
	sync := wallet.NewSynchronizer(switcher)

	err := sync.Align(context.Background(), sepolia)
	require.Error(err)
	require.False(errors.IsUserDeclined(err))
	require.Equal(errors.WalletError, errors.StatusOf(err))
}

func TestAlignBoundedWait(t *testing.T) {
	require := require.New(t)
	switcher := &fakeSwitcher{block: true}
	sync := wallet.NewSynchronizer(switcher).WithTimeout(20 * time.Millisecond)

	start := time.Now()
	err := sync.Align(context.Background(), sepolia)
	require.Error(err)
	require.Equal(errors.WalletError, errors.StatusOf(err))
	require.Less(time.Since(start), 2*time.Second)
}
