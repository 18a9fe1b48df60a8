package bridgekit

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// AmountBlockchain is a big integer amount as a ledger reports it, without
// any decimal point applied.
type AmountBlockchain big.Int

// AmountHumanReadable is a decimal amount as a human enters it.
type AmountHumanReadable decimal.Decimal

func (amount AmountBlockchain) String() string {
	bigInt := big.Int(amount)
	return bigInt.String()
}

// Int converts an AmountBlockchain into *big.Int
func (amount AmountBlockchain) Int() *big.Int {
	bigInt := big.Int(amount)
	return &bigInt
}

func (amount AmountBlockchain) Uint64() uint64 {
	bigInt := big.Int(amount)
	return bigInt.Uint64()
}

// Use the underlying big.Int.Add()
func (amount *AmountBlockchain) Add(x *AmountBlockchain) AmountBlockchain {
	sum := new(big.Int)
	sum.Set((*big.Int)(amount))
	return AmountBlockchain(*sum.Add(sum, x.Int()))
}

func (amount *AmountBlockchain) IsZero() bool {
	return amount.Int().Sign() == 0
}

func (amount *AmountBlockchain) ToHuman(decimals int32) AmountHumanReadable {
	dec := decimal.NewFromBigInt(amount.Int(), -decimals)
	return AmountHumanReadable(dec)
}

// NewAmountBlockchainFromUint64 creates a new AmountBlockchain from a uint64
func NewAmountBlockchainFromUint64(u64 uint64) AmountBlockchain {
	bigInt := new(big.Int).SetUint64(u64)
	return AmountBlockchain(*bigInt)
}

// NewAmountBlockchainFromStr creates a new AmountBlockchain from a string,
// yielding zero on malformed input.
func NewAmountBlockchainFromStr(str string) AmountBlockchain {
	bigInt, ok := new(big.Int).SetString(str, 0)
	if !ok {
		return NewAmountBlockchainFromUint64(0)
	}
	return AmountBlockchain(*bigInt)
}

// NewAmountHumanReadableFromStr creates a new AmountHumanReadable from a string
func NewAmountHumanReadableFromStr(str string) (AmountHumanReadable, error) {
	dec, err := decimal.NewFromString(str)
	return AmountHumanReadable(dec), err
}

func (amount AmountHumanReadable) Decimal() decimal.Decimal {
	return decimal.Decimal(amount)
}

func (amount AmountHumanReadable) IsPositive() bool {
	return decimal.Decimal(amount).IsPositive()
}

func (amount AmountHumanReadable) ToBlockchain(decimals int32) AmountBlockchain {
	factor := decimal.NewFromInt32(10).Pow(decimal.NewFromInt32(decimals))
	raised := decimal.Decimal(amount).Mul(factor)
	return AmountBlockchain(*raised.BigInt())
}

func (amount AmountHumanReadable) String() string {
	return decimal.Decimal(amount).String()
}

var _ json.Marshaler = AmountHumanReadable{}
var _ json.Unmarshaler = &AmountHumanReadable{}
var _ yaml.Marshaler = AmountHumanReadable{}
var _ yaml.Unmarshaler = &AmountHumanReadable{}
var _ yaml.IsZeroer = AmountHumanReadable{}

func (amount AmountHumanReadable) MarshalYAML() (interface{}, error) {
	return amount.String(), nil
}

func (amount AmountHumanReadable) IsZero() bool {
	return decimal.Decimal(amount).IsZero()
}

func (amount *AmountHumanReadable) UnmarshalYAML(node *yaml.Node) error {
	value := strings.Trim(strings.TrimSpace(node.Value), "\"")
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid decimal amount: %v", err)
	}
	*amount = AmountHumanReadable(dec)
	return nil
}

func (amount AmountHumanReadable) MarshalJSON() ([]byte, error) {
	return []byte("\"" + amount.String() + "\""), nil
}

func (amount *AmountHumanReadable) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	dec, err := decimal.NewFromString(strings.Trim(string(p), "\""))
	if err != nil {
		return err
	}
	*amount = AmountHumanReadable(dec)
	return nil
}

var _ json.Marshaler = AmountBlockchain{}
var _ json.Unmarshaler = &AmountBlockchain{}

func (amount AmountBlockchain) MarshalJSON() ([]byte, error) {
	return []byte("\"" + amount.String() + "\""), nil
}

func (amount *AmountBlockchain) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	str := strings.Trim(string(p), "\"")
	var z big.Int
	if _, ok := z.SetString(str, 0); !ok {
		return fmt.Errorf("not a valid big integer: %s", p)
	}
	*amount = AmountBlockchain(z)
	return nil
}
