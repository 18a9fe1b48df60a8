package bridgekit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type BridgekitTestSuite struct {
	suite.Suite
	Ctx context.Context
}

func (s *BridgekitTestSuite) SetupTest() {
	s.Ctx = context.Background()
}

func TestBridgekit(t *testing.T) {
	suite.Run(t, new(BridgekitTestSuite))
}
