package bridgekit

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Chain is the bridge-kit identifier of a ledger participating in a transfer,
// e.g. "Ethereum_Sepolia" or "Solana_Devnet".
type Chain string

// Known chains on the testnet deployment of the bridge.
const (
	EthereumSepolia = Chain("Ethereum_Sepolia")
	BaseSepolia     = Chain("Base_Sepolia")
	AvalancheFuji   = Chain("Avalanche_Fuji")
	ArbitrumSepolia = Chain("Arbitrum_Sepolia")
	SolanaDevnet    = Chain("Solana_Devnet")
)

// Kind is the transaction model of a chain.  EVM chains are account based and
// share a single wallet whose active network must be switched; Solana wallets
// are bound to one network and never need alignment.
type Kind string

const (
	KindEvm    = Kind("evm")
	KindSolana = Kind("solana")
)

var SupportedKinds = []Kind{KindEvm, KindSolana}

func (kind Kind) Valid() bool {
	return kind == KindEvm || kind == KindSolana
}

// RequiresAlignment reports whether the wallet's active network must match
// this kind of chain before a transaction can be signed on it.
func (kind Kind) RequiresAlignment() bool {
	return kind == KindEvm
}

// KindOf infers the transaction model from the chain identifier.  The bridge
// catalog names Solana networks with a "Solana" prefix; everything else it
// serves is account based.
func (chain Chain) KindOf() Kind {
	if strings.Contains(strings.ToLower(string(chain)), "solana") {
		return KindSolana
	}
	return KindEvm
}

// StringOrInt tolerates catalogs that report chain ids either as JSON numbers
// (EVM numeric ids) or strings (named Solana clusters).
type StringOrInt string

func (s StringOrInt) String() string {
	return string(s)
}

var _ json.Unmarshaler = (*StringOrInt)(nil)
var _ yaml.Unmarshaler = (*StringOrInt)(nil)

func (s *StringOrInt) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*s = StringOrInt(asString)
		return nil
	}
	var asInt int64
	if err := json.Unmarshal(data, &asInt); err != nil {
		return fmt.Errorf("chain id must be a string or integer: %s", data)
	}
	*s = StringOrInt(fmt.Sprint(asInt))
	return nil
}

func (s *StringOrInt) UnmarshalYAML(node *yaml.Node) error {
	*s = StringOrInt(strings.TrimSpace(node.Value))
	return nil
}

// ChainInfo is one read-only entry of the ledger catalog.
type ChainInfo struct {
	Chain     Chain       `json:"chain" yaml:"chain"`
	ChainID   StringOrInt `json:"chainId" yaml:"chain_id"`
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	IsTestnet bool        `json:"isTestnet" yaml:"is_testnet"`
	Kind      Kind        `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// KindOf returns the catalog-reported kind, falling back to inference from
// the chain identifier for catalogs that omit it.
func (info *ChainInfo) KindOf() Kind {
	if info.Kind.Valid() {
		return info.Kind
	}
	return info.Chain.KindOf()
}

func (info *ChainInfo) DisplayName() string {
	if info.Name != "" {
		return info.Name
	}
	return string(info.Chain)
}

func (info ChainInfo) String() string {
	return fmt.Sprintf(
		"ChainInfo(chain=%s chainId=%s kind=%s testnet=%v)",
		info.Chain, info.ChainID, info.KindOf(), info.IsTestnet,
	)
}

// FindChain looks up a catalog entry by chain identifier.
func FindChain(catalog []ChainInfo, chain Chain) (ChainInfo, bool) {
	for _, info := range catalog {
		if info.Chain == chain {
			return info, true
		}
	}
	return ChainInfo{}, false
}

// FilterTestnets narrows a catalog to environment-appropriate entries.
func FilterTestnets(catalog []ChainInfo, testnet bool) []ChainInfo {
	filtered := []ChainInfo{}
	for _, info := range catalog {
		if info.IsTestnet == testnet {
			filtered = append(filtered, info)
		}
	}
	return filtered
}
