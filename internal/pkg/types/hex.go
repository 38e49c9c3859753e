package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Hex is a "0x"-prefixed hexadecimal quantity as used by Ethereum JSON-RPC,
// e.g. block numbers, timestamps and wei values. Values may exceed 64 bits.
type Hex string

// HexFromInt64 encodes n as a Hex quantity.
func HexFromInt64(n int64) Hex {
	return Hex(fmt.Sprintf("0x%x", n))
}

// HexFromString validates s and returns it as a Hex.
func HexFromString(s string) (Hex, error) {
	if _, err := parseHex(s); err != nil {
		return "", err
	}

	return Hex(s), nil
}

func parseHex(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("hex string %q must start with 0x", s)
	}

	digits := s[2:]
	if digits == "" {
		return nil, fmt.Errorf("hex string %q has no digits", s)
	}

	v, ok := new(big.Int).SetString(digits, 16)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid hexadecimal value %q", s)
	}

	return v, nil
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
// A JSON null leaves h unchanged.
func (h *Hex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	v, err := HexFromString(s)
	if err != nil {
		return err
	}

	*h = v
	return nil
}

// Big returns the value of h. Invalid values decode to zero.
func (h Hex) Big() *big.Int {
	v, err := parseHex(string(h))
	if err != nil {
		return new(big.Int)
	}

	return v
}

// Int64 returns the value of h, or zero when it is invalid or does not fit.
func (h Hex) Int64() int64 {
	v := h.Big()
	if !v.IsInt64() {
		return 0
	}

	return v.Int64()
}

// Decimal returns the exact value of h as an integer decimal.
func (h Hex) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(h.Big(), 0)
}
