// Package nats publishes swap order events to NATS subjects as JSON.
//
// Two subjects are used under a configurable prefix: "<prefix>.matched" when
// an incoming transaction is bound to an order and "<prefix>.status" when a
// provider reports a new status for it.
package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/swap"

	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
)

// DefaultSubjectPrefix is used when no prefix is configured.
const DefaultSubjectPrefix = "walletsync.swap"

// Config contains everything required to connect to the NATS server.
type Config struct {
	Address       string
	Name          string
	Token         string
	SubjectPrefix string
}

// publisher is the part of *nats.Conn the notifier uses.
type publisher interface {
	Publish(subject string, data []byte) error
}

type notifier struct {
	conn   publisher
	prefix string
	close  func() error
}

var _ swap.EventNotifier = (*notifier)(nil)

// Connect opens a NATS connection and returns a notifier publishing on it.
func Connect(cfg Config) (*notifier, error) {
	opts := []nats.Option{nats.Name(cfg.Name)}
	if cfg.Token != "" {
		opts = append(opts, nats.Token(cfg.Token))
	}

	conn, err := nats.Connect(cfg.Address, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats at %s: %w", cfg.Address, err)
	}

	n := newNotifier(conn, cfg.SubjectPrefix)
	n.close = conn.Drain
	return n, nil
}

func newNotifier(conn publisher, prefix string) *notifier {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	return &notifier{
		conn:   conn,
		prefix: prefix,
		close:  func() error { return nil },
	}
}

// Close drains pending messages and disconnects.
func (n *notifier) Close() error {
	return n.close()
}

func (n *notifier) subject(event string) string {
	return n.prefix + "." + event
}

// orderEvent is the JSON payload of every swap event.
type orderEvent struct {
	Date              int64            `json:"date"`
	TransactionID     string           `json:"transactionId"`
	Provider          swap.Provider    `json:"provider"`
	Status            swap.Status      `json:"status"`
	PreviousStatus    swap.Status      `json:"previousStatus,omitempty"`
	CoinUIDOut        string           `json:"coinUidOut"`
	BlockchainTypeOut string           `json:"blockchainTypeOut"`
	AmountOut         decimal.Decimal  `json:"amountOut"`
	AddressOut        string           `json:"addressOut,omitempty"`
	IncomingRecordUID *string          `json:"incomingRecordUid,omitempty"`
	AmountOutReal     *decimal.Decimal `json:"amountOutReal,omitempty"`
	FinishedAt        *int64           `json:"finishedAt,omitempty"`
}

func newOrderEvent(o swap.Order) orderEvent {
	return orderEvent{
		Date:              o.Date,
		TransactionID:     o.TransactionID,
		Provider:          o.Provider,
		Status:            o.Status,
		CoinUIDOut:        o.Out.CoinUID,
		BlockchainTypeOut: o.Out.BlockchainType,
		AmountOut:         o.Out.Amount,
		AddressOut:        o.Out.Address,
		IncomingRecordUID: o.IncomingRecordUID,
		AmountOutReal:     o.AmountOutReal,
		FinishedAt:        o.FinishedAt,
	}
}

func (n *notifier) publish(ctx context.Context, event string, payload orderEvent) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	subject := n.subject(event)
	if err := n.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	logger.Debug(ctx, "swap event published",
		"nats.subject", subject,
		"order.date", payload.Date,
	)

	return nil
}

// NotifySwapMatched implements swap.EventNotifier.
func (n *notifier) NotifySwapMatched(ctx context.Context, order swap.Order, _ swap.IncomingTransaction) error {
	return n.publish(ctx, "matched", newOrderEvent(order))
}

// NotifySwapStatusChanged implements swap.EventNotifier.
func (n *notifier) NotifySwapStatusChanged(ctx context.Context, order swap.Order, previous swap.Status) error {
	payload := newOrderEvent(order)
	payload.PreviousStatus = previous

	return n.publish(ctx, "status", payload)
}
