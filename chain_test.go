package bridgekit_test

import (
	"encoding/json"

	. "github.com/cordialsys/bridgekit"
)

func (s *BridgekitTestSuite) TestKindOf() {
	require := s.Require()
	require.Equal(KindEvm, EthereumSepolia.KindOf())
	require.Equal(KindEvm, BaseSepolia.KindOf())
	require.Equal(KindEvm, AvalancheFuji.KindOf())
	require.Equal(KindSolana, SolanaDevnet.KindOf())
	require.Equal(KindSolana, Chain("Solana").KindOf())
}

func (s *BridgekitTestSuite) TestRequiresAlignment() {
	require := s.Require()
	require.True(KindEvm.RequiresAlignment())
	require.False(KindSolana.RequiresAlignment())
}

func (s *BridgekitTestSuite) TestChainInfoKindFallback() {
	require := s.Require()
	// catalog-reported kind wins
	info := ChainInfo{Chain: Chain("Custom_Net"), Kind: KindSolana}
	require.Equal(KindSolana, info.KindOf())
	// otherwise inferred from the identifier
	info = ChainInfo{Chain: SolanaDevnet}
	require.Equal(KindSolana, info.KindOf())
	info = ChainInfo{Chain: EthereumSepolia}
	require.Equal(KindEvm, info.KindOf())
}

func (s *BridgekitTestSuite) TestStringOrIntJSON() {
	require := s.Require()
	var id StringOrInt
	require.NoError(json.Unmarshal([]byte(`11155111`), &id))
	require.Equal(StringOrInt("11155111"), id)

	require.NoError(json.Unmarshal([]byte(`"devnet"`), &id))
	require.Equal(StringOrInt("devnet"), id)

	require.Error(json.Unmarshal([]byte(`{}`), &id))
}

func (s *BridgekitTestSuite) TestFindChain() {
	require := s.Require()
	catalog := []ChainInfo{
		{Chain: EthereumSepolia, ChainID: "11155111", IsTestnet: true},
		{Chain: SolanaDevnet, ChainID: "devnet", IsTestnet: true},
		{Chain: Chain("Ethereum"), ChainID: "1"},
	}
	info, ok := FindChain(catalog, SolanaDevnet)
	require.True(ok)
	require.Equal(StringOrInt("devnet"), info.ChainID)

	_, ok = FindChain(catalog, Chain("Polygon_Amoy"))
	require.False(ok)

	testnets := FilterTestnets(catalog, true)
	require.Len(testnets, 2)
	mainnets := FilterTestnets(catalog, false)
	require.Len(mainnets, 1)
}
