package bridgekit_test

import (
	"encoding/json"

	. "github.com/cordialsys/bridgekit"
)

func (s *BridgekitTestSuite) TestNewAmountBlockchainFromUint64() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(123)
	require.NotNil(amount)
	require.Equal(uint64(123), amount.Uint64())
	require.Equal("123", amount.String())
}

func (s *BridgekitTestSuite) TestNewAmountBlockchainFromStr() {
	require := s.Require()
	amount := NewAmountBlockchainFromStr("10000000")
	require.Equal(uint64(10_000_000), amount.Uint64())

	amount = NewAmountBlockchainFromStr("not-a-number")
	require.True(amount.IsZero())
}

func (s *BridgekitTestSuite) TestAmountBlockchainAdd() {
	require := s.Require()
	a := NewAmountBlockchainFromUint64(100)
	b := NewAmountBlockchainFromUint64(23)
	sum := a.Add(&b)
	require.Equal(uint64(123), sum.Uint64())
	require.Equal(uint64(100), a.Uint64())
}

func (s *BridgekitTestSuite) TestAmountToHuman() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(10_500_000)
	human := amount.ToHuman(6)
	require.Equal("10.5", human.String())
	require.True(human.IsPositive())

	roundtrip := human.ToBlockchain(6)
	require.Equal(uint64(10_500_000), roundtrip.Uint64())
}

func (s *BridgekitTestSuite) TestNewAmountHumanReadableFromStr() {
	require := s.Require()
	amount, err := NewAmountHumanReadableFromStr("10.3")
	require.NoError(err)
	require.Equal("10.3", amount.String())

	amount, err = NewAmountHumanReadableFromStr("")
	require.Error(err)
	require.Equal("0", amount.String())

	amount, err = NewAmountHumanReadableFromStr("err")
	require.Error(err)
	require.Equal("0", amount.String())
}

func (s *BridgekitTestSuite) TestAmountHumanReadableJSON() {
	require := s.Require()
	amount, err := NewAmountHumanReadableFromStr("0.25")
	require.NoError(err)

	data, err := json.Marshal(amount)
	require.NoError(err)
	require.Equal(`"0.25"`, string(data))

	var decoded AmountHumanReadable
	require.NoError(json.Unmarshal(data, &decoded))
	require.Equal("0.25", decoded.String())
	require.NoError(json.Unmarshal([]byte("null"), &decoded))
	require.Error(json.Unmarshal([]byte(`"abc"`), &decoded))
}

func (s *BridgekitTestSuite) TestAmountBlockchainJSON() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(5_000_000)
	data, err := json.Marshal(amount)
	require.NoError(err)
	require.Equal(`"5000000"`, string(data))

	var decoded AmountBlockchain
	require.NoError(json.Unmarshal(data, &decoded))
	require.Equal(uint64(5_000_000), decoded.Uint64())
	require.Error(json.Unmarshal([]byte(`"xyz"`), &decoded))
}
