package bridgekit_test

import (
	. "github.com/cordialsys/bridgekit"
	"github.com/cordialsys/bridgekit/errors"
)

type testAdapter struct {
	address string
	kind    Kind
}

func (a testAdapter) Address() string { return a.address }
func (a testAdapter) Kind() Kind      { return a.kind }

func (s *BridgekitTestSuite) TestValidateRequest() {
	require := s.Require()
	amount, err := NewAmountHumanReadableFromStr("1.5")
	require.NoError(err)
	evm := testAdapter{address: "0xabc", kind: KindEvm}
	sol := testAdapter{address: "4zMM", kind: KindSolana}

	req := NewTransferRequest(EthereumSepolia, BaseSepolia, amount, evm, evm)
	require.NoError(req.Validate())

	req = NewTransferRequest(EthereumSepolia, SolanaDevnet, amount, evm, sol)
	require.NoError(req.Validate())
}

func (s *BridgekitTestSuite) TestValidateRequestRejections() {
	require := s.Require()
	amount, err := NewAmountHumanReadableFromStr("1.5")
	require.NoError(err)
	zero, err := NewAmountHumanReadableFromStr("0")
	require.NoError(err)
	evm := testAdapter{address: "0xabc", kind: KindEvm}

	for _, req := range []*TransferRequest{
		NewTransferRequest(EthereumSepolia, BaseSepolia, zero, evm, evm),
		NewTransferRequest(EthereumSepolia, EthereumSepolia, amount, evm, evm),
		NewTransferRequest("", BaseSepolia, amount, evm, evm),
		NewTransferRequest(EthereumSepolia, BaseSepolia, amount, nil, evm),
		NewTransferRequest(EthereumSepolia, BaseSepolia, amount, evm, nil),
		NewTransferRequest(SolanaDevnet, BaseSepolia, amount, evm, evm),
		NewTransferRequest(EthereumSepolia, SolanaDevnet, amount, evm, evm),
	} {
		err := req.Validate()
		require.Error(err)
		require.True(errors.IsValidation(err), "expected validation error for %s, got %v", req, err)
	}
}

func (s *BridgekitTestSuite) TestOutcome() {
	require := s.Require()
	amount, err := NewAmountHumanReadableFromStr("10.5")
	require.NoError(err)

	outcome := Success(amount)
	require.True(outcome.Ok())
	settled, ok := outcome.Settled()
	require.True(ok)
	require.Equal("10.5", settled.String())
	_, failed := outcome.Reason()
	require.False(failed)

	outcome = Failure("Bridge failed")
	require.False(outcome.Ok())
	reason, failed := outcome.Reason()
	require.True(failed)
	require.Equal("Bridge failed", reason)
	_, ok = outcome.Settled()
	require.False(ok)
}

func (s *BridgekitTestSuite) TestSteps() {
	require := s.Require()
	require.True(StepComplete.Terminal())
	require.True(StepFailed.Terminal())
	require.False(StepMinting.Terminal())
	require.False(StepNone.Terminal())

	require.Equal("Minting", StepMinting.DisplayName())
	require.Equal("Idle", StepNone.DisplayName())

	require.True(StateSuccess.Terminal())
	require.True(StateError.Terminal())
	require.False(StateActive.Terminal())
	require.False(StatePending.Terminal())
	require.True(StateActive.Valid())
	require.False(StepState("done").Valid())

	require.Equal(StepApproving, StepSequence[0])
	require.Equal(StepComplete, StepSequence[len(StepSequence)-1])
}
