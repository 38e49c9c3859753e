package swap

import (
	"context"

	"github.com/shopspring/decimal"
)

// IncomingTransaction is a transaction freshly observed on a swap's output
// chain, as surfaced by a chain adapter.
//
// Addresses is empty for chains that do not expose the recipient (privacy
// preserving chains) and Amount is nil when the adapter cannot tell it.
type IncomingTransaction struct {
	UID            string
	Amount         *decimal.Decimal
	Timestamp      int64 // unix milliseconds
	CoinUID        string
	BlockchainType string
	Addresses      []string
}

// EventNotifier is told about state changes of swap orders so that other
// systems (history views, push notifications) can react to them.
type EventNotifier interface {
	// NotifySwapMatched is called after order has been bound to tx.
	NotifySwapMatched(ctx context.Context, order Order, tx IncomingTransaction) error

	// NotifySwapStatusChanged is called after a new provider status has been
	// persisted for order.
	NotifySwapStatusChanged(ctx context.Context, order Order, previous Status) error
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) NotifySwapMatched(context.Context, Order, IncomingTransaction) error {
	return nil
}

func (NopNotifier) NotifySwapStatusChanged(context.Context, Order, Status) error {
	return nil
}

var _ EventNotifier = NopNotifier{}
