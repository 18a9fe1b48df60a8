// Package solana reads USDC balances on Solana via the token program.
package solana

import (
	"context"
	"fmt"

	"github.com/cordialsys/bridgekit"
	xclient "github.com/cordialsys/bridgekit/client"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Client reads balances of one token mint over JSON-RPC.
type Client struct {
	SolClient *rpc.Client
	Mint      solana.PublicKey
}

var _ xclient.BalanceClient = &Client{}

func NewClient(url string, mint string) (*Client, error) {
	mintKey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, fmt.Errorf("invalid mint address: %s: %v", mint, err)
	}
	return &Client{
		SolClient: rpc.New(url),
		Mint:      mintKey,
	}, nil
}

// FetchBalance fetches the token balance held in the owner's associated
// token account.
func (client *Client) FetchBalance(ctx context.Context, address string) (bridgekit.AmountBlockchain, error) {
	zero := bridgekit.NewAmountBlockchainFromUint64(0)
	owner, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return zero, fmt.Errorf("invalid address: %s: %v", address, err)
	}
	ata, _, err := solana.FindAssociatedTokenAddress(owner, client.Mint)
	if err != nil {
		return zero, err
	}
	out, err := client.SolClient.GetTokenAccountBalance(ctx, ata, rpc.CommitmentFinalized)
	if err != nil {
		// an owner with no token account has a zero balance
		return zero, nil
	}
	if out == nil || out.Value == nil {
		return zero, nil
	}
	return bridgekit.NewAmountBlockchainFromStr(out.Value.Amount), nil
}

// FetchNativeBalance fetches the SOL balance for an address.
func (client *Client) FetchNativeBalance(ctx context.Context, address string) (bridgekit.AmountBlockchain, error) {
	zero := bridgekit.NewAmountBlockchainFromUint64(0)
	owner, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return zero, fmt.Errorf("invalid address: %s: %v", address, err)
	}
	out, err := client.SolClient.GetBalance(ctx, owner, rpc.CommitmentFinalized)
	if err != nil {
		return zero, fmt.Errorf("failed to get balance for '%v': %v", address, err)
	}
	if out == nil {
		return zero, nil
	}
	return bridgekit.NewAmountBlockchainFromUint64(out.Value), nil
}

// FetchDecimals looks up the mint's configured decimals.
func (client *Client) FetchDecimals(ctx context.Context) (int32, error) {
	out, err := client.SolClient.GetTokenSupply(ctx, client.Mint, rpc.CommitmentFinalized)
	if err != nil {
		return 0, fmt.Errorf("failed to get mint info for '%s': %v", client.Mint, err)
	}
	if out == nil || out.Value == nil {
		return 0, fmt.Errorf("no supply info for mint '%s'", client.Mint)
	}
	return int32(out.Value.Decimals), nil
}
