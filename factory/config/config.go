package config

import (
	"time"

	"github.com/cordialsys/bridgekit"
	"github.com/cordialsys/bridgekit/config"
)

// ConnectorConfig locates the remote bridge connector.
type ConnectorConfig struct {
	URL string `yaml:"url,omitempty"`
	// Rate limit on connector requests, in requests/second.
	RateLimit float64 `yaml:"rate_limit,omitempty"`
	// Requests to permit in burst.
	Burst int `yaml:"burst,omitempty"`
	// Period between transfer status polls.
	PollInterval time.Duration `yaml:"poll_interval,omitempty"`
}

// ChainClientConfig is the RPC configuration for balance reads on one chain.
type ChainClientConfig struct {
	Chain bridgekit.Chain `yaml:"chain"`
	URL   string          `yaml:"url,omitempty"`
	// USDC contract address (EVM) or mint (Solana) on the chain.
	Token string         `yaml:"token,omitempty"`
	Kind  bridgekit.Kind `yaml:"kind,omitempty"`
}

func (chain *ChainClientConfig) KindOf() bridgekit.Kind {
	if chain.Kind.Valid() {
		return chain.Kind
	}
	return chain.Chain.KindOf()
}

type Config struct {
	// "testnet" or "mainnet"; selects which catalog entries are served.
	Network string `yaml:"network,omitempty"`
	// Bound on how long a wallet network-switch prompt may suspend.
	AlignTimeout time.Duration `yaml:"align_timeout,omitempty"`

	Connector ConnectorConfig      `yaml:"connector,omitempty"`
	Chains    []*ChainClientConfig `yaml:"chains,omitempty"`
}

func (cfg *Config) Testnet() bool {
	return cfg.Network != "mainnet"
}

func (cfg *Config) GetChain(chain bridgekit.Chain) (*ChainClientConfig, bool) {
	for _, chainCfg := range cfg.Chains {
		if chainCfg.Chain == chain {
			return chainCfg, true
		}
	}
	return nil, false
}

// DefaultConfig serves the public testnet deployment.
func DefaultConfig() *Config {
	return &Config{
		Network:      "testnet",
		AlignTimeout: 30 * time.Second,
		Connector: ConnectorConfig{
			URL:          "https://bridge-connector.cordialapis.com",
			RateLimit:    10,
			Burst:        5,
			PollInterval: 2 * time.Second,
		},
		Chains: []*ChainClientConfig{
			{
				Chain: bridgekit.EthereumSepolia,
				URL:   "https://ethereum-sepolia-rpc.publicnode.com",
				Token: "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238",
			},
			{
				Chain: bridgekit.BaseSepolia,
				URL:   "https://sepolia.base.org",
				Token: "0x036CbD53842c5426634e7929541eC2318f3dCF7e",
			},
			{
				Chain: bridgekit.AvalancheFuji,
				URL:   "https://api.avax-test.network/ext/bc/C/rpc",
				Token: "0x5425890298aed601595a70AB815c96711a31Bc65",
			},
			{
				Chain: bridgekit.SolanaDevnet,
				URL:   "https://api.devnet.solana.com",
				Token: "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU",
			},
		},
	}
}

// Load reads the "bridgekit" section of the configuration file, falling back
// to testnet defaults when no file is present.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := config.RequireConfig("bridgekit", cfg, DefaultConfig()); err != nil {
		return nil, err
	}
	return cfg, nil
}
