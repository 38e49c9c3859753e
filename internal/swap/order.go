// Package swap holds the data model shared by the swap matcher and the swap
// status reconciler: swap orders as recorded when the user initiates an
// exchange, the legs they move funds across, and the statuses reported by
// third-party providers.
package swap

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderNotFound is returned by storage lookups that resolve no order.
	ErrOrderNotFound = errors.New("swap order not found")

	// ErrAlreadyClaimed is returned when binding an incoming transaction to an
	// order whose incoming record has already been set.
	ErrAlreadyClaimed = errors.New("swap order already claimed")

	// ErrDuplicateOrder is returned when saving an order whose Date is taken.
	ErrDuplicateOrder = errors.New("swap order already exists")
)

// Token identifies an asset on a specific blockchain.
type Token struct {
	CoinUID        string `validate:"required"` // Coin identifier (e.g., "tether")
	BlockchainType string `validate:"required"` // Blockchain identifier (e.g., "ethereum")
}

// Leg is one side of a swap: what leaves the wallet or what the provider
// delivers, on which chain and to which address.
type Leg struct {
	CoinUID        string          `validate:"required"`
	BlockchainType string          `validate:"required"`
	Amount         decimal.Decimal `validate:"dpos"`
	Address        string
}

// Token returns the asset moved by the leg.
func (l Leg) Token() Token {
	return Token{CoinUID: l.CoinUID, BlockchainType: l.BlockchainType}
}

// Order is a swap executed by a third-party provider.
//
// Date is the creation time in unix milliseconds and is the primary key: the
// caller guarantees it is unique per order. IncomingRecordUID is set at most
// once, by claiming, and a claimed order never takes part in matching again.
type Order struct {
	Date              int64    `validate:"gt=0"`
	TransactionID     string   `validate:"required"`
	Provider          Provider `validate:"required"`
	Status            Status
	In                Leg
	Out               Leg
	OutgoingRecordUID *string
	IncomingRecordUID *string
	AmountOutReal     *decimal.Decimal
	FinishedAt        *int64
}

// Claimed reports whether an incoming transaction has been bound to the order.
func (o Order) Claimed() bool {
	return o.IncomingRecordUID != nil
}

// Involves reports whether either leg moves the given token from or to address.
func (o Order) Involves(token Token, address string) bool {
	matches := func(l Leg) bool {
		return l.CoinUID == token.CoinUID &&
			l.BlockchainType == token.BlockchainType &&
			strings.EqualFold(l.Address, address)
	}

	return matches(o.In) || matches(o.Out)
}

// WithinTolerance reports whether actual deviates from quoted by at most
// tolerance, relative to quoted: |actual - quoted| <= quoted * tolerance.
func WithinTolerance(quoted, actual, tolerance decimal.Decimal) bool {
	return actual.Sub(quoted).Abs().LessThanOrEqual(quoted.Mul(tolerance))
}
