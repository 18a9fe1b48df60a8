package config_test

import (
	"testing"

	"github.com/cordialsys/bridgekit/config"
	"github.com/stretchr/testify/require"
)

type nested struct {
	URL       string `yaml:"url,omitempty"`
	RateLimit int    `yaml:"rate_limit,omitempty"`
}

type testConfig struct {
	Network   string   `yaml:"network,omitempty"`
	Connector nested   `yaml:"connector,omitempty"`
	Chains    []string `yaml:"chains,omitempty"`
}

func TestApplyDefaults(t *testing.T) {
	require := require.New(t)
	defaults := &testConfig{
		Network:   "testnet",
		Connector: nested{URL: "https://connector.example.com", RateLimit: 10},
		Chains:    []string{"Ethereum_Sepolia", "Solana_Devnet"},
	}
	overrides := &testConfig{
		Connector: nested{URL: "http://localhost:8080"},
	}
	result := &testConfig{}
	require.NoError(config.ApplyDefaults(defaults, overrides, result))

	require.Equal("testnet", result.Network)
	require.Equal("http://localhost:8080", result.Connector.URL)
	require.Equal(10, result.Connector.RateLimit)
	require.Equal([]string{"Ethereum_Sepolia", "Solana_Devnet"}, result.Chains)
}

func TestApplyDefaultsEmptyArrayDoesNotOverride(t *testing.T) {
	require := require.New(t)
	defaults := &testConfig{Chains: []string{"Ethereum_Sepolia"}}
	result := &testConfig{}
	require.NoError(config.ApplyDefaults(defaults, &testConfig{}, result))
	require.Equal([]string{"Ethereum_Sepolia"}, result.Chains)
}
