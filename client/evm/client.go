// Package evm reads USDC balances on account-based chains.
package evm

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/cordialsys/bridgekit"
	xclient "github.com/cordialsys/bridgekit/client"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

const erc20JSON = `[
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"type":"function"}
]`

var erc20 abi.ABI

func init() {
	var err error
	erc20, err = abi.JSON(strings.NewReader(erc20JSON))
	if err != nil {
		panic(err)
	}
}

// Client reads balances of one token contract over JSON-RPC.
type Client struct {
	EthClient *ethclient.Client
	Token     common.Address

	mu       sync.Mutex
	decimals int32
	resolved bool
}

var _ xclient.BalanceClient = &Client{}

func NewClient(url string, tokenContract string) (*Client, error) {
	if !common.IsHexAddress(tokenContract) {
		return nil, fmt.Errorf("bad token contract address '%s'", tokenContract)
	}
	ethClient, err := ethclient.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial '%s': %v", url, err)
	}
	return &Client{
		EthClient: ethClient,
		Token:     common.HexToAddress(tokenContract),
	}, nil
}

func (client *Client) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := erc20.Pack(method, args...)
	if err != nil {
		return nil, err
	}
	out, err := client.EthClient.CallContract(ctx, ethereum.CallMsg{To: &client.Token, Data: data}, nil)
	if err != nil {
		return nil, err
	}
	return erc20.Unpack(method, out)
}

// FetchBalance fetches the token balance for an address.
func (client *Client) FetchBalance(ctx context.Context, address string) (bridgekit.AmountBlockchain, error) {
	zero := bridgekit.NewAmountBlockchainFromUint64(0)
	if !common.IsHexAddress(address) {
		return zero, fmt.Errorf("bad address '%v'", address)
	}
	out, err := client.call(ctx, "balanceOf", common.HexToAddress(address))
	if err != nil {
		return zero, fmt.Errorf("failed to get balance for '%v': %v", address, err)
	}
	balance, ok := out[0].(*big.Int)
	if !ok {
		return zero, fmt.Errorf("unexpected balanceOf return type %T", out[0])
	}
	return bridgekit.AmountBlockchain(*balance), nil
}

// FetchNativeBalance fetches the gas asset balance for an address.
func (client *Client) FetchNativeBalance(ctx context.Context, address string) (bridgekit.AmountBlockchain, error) {
	zero := bridgekit.NewAmountBlockchainFromUint64(0)
	if !common.IsHexAddress(address) {
		return zero, fmt.Errorf("bad address '%v'", address)
	}
	balance, err := client.EthClient.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return zero, fmt.Errorf("failed to get balance for '%v': %v", address, err)
	}
	return bridgekit.AmountBlockchain(*balance), nil
}

// FetchDecimals looks up the token decimals, cached after the first call.
func (client *Client) FetchDecimals(ctx context.Context) (int32, error) {
	client.mu.Lock()
	if client.resolved {
		decimals := client.decimals
		client.mu.Unlock()
		return decimals, nil
	}
	client.mu.Unlock()

	out, err := client.call(ctx, "decimals")
	if err != nil {
		return 0, fmt.Errorf("failed to get decimals for '%s': %v", client.Token, err)
	}
	decimals, ok := out[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("unexpected decimals return type %T", out[0])
	}

	client.mu.Lock()
	client.decimals = int32(decimals)
	client.resolved = true
	client.mu.Unlock()
	return int32(decimals), nil
}
