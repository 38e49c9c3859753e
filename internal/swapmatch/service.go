// Package swapmatch binds transactions observed on a swap's output chain to
// the swap orders they settle.
//
// Provider settlement amounts differ from quotes by spread and slippage, so
// matching tolerates a bounded relative deviation inside a bounded time
// window, and prefers the recipient address whenever the chain exposes it.
// Every binding is a conditional claim at the store, which makes concurrent
// matcher invocations safe: an order is bound to at most one transaction.
package swapmatch

import (
	"context"
	"time"

	"github.com/gabapcia/walletsync/internal/pkg/telemetry"
	"github.com/gabapcia/walletsync/internal/swap"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// MatchWindow bounds how long before an incoming transaction the order it
// settles may have been created.
const MatchWindow = 3 * time.Hour

// AmountTolerance is the relative deviation from the quoted output amount
// accepted when matching by amount (0.5%).
var AmountTolerance = decimal.RequireFromString("0.005")

// Service is the swap transaction matcher.
type Service interface {
	// FindMatchingSwap returns the order settled by tx, binding them if they
	// were not bound yet, or nil when no order matches.
	//
	// Calling it again for a transaction already bound returns the same order
	// without modifying it.
	FindMatchingSwap(ctx context.Context, tx swap.IncomingTransaction) (*swap.Order, error)
}

type service struct {
	storage   OrderStorage
	notifier  swap.EventNotifier
	window    time.Duration
	tolerance decimal.Decimal

	tracer  trace.Tracer
	matches metric.Int64Counter
}

var _ Service = (*service)(nil)

type config struct {
	notifier swap.EventNotifier
}

// Option configures the matcher.
type Option func(*config)

// WithNotifier sets the notifier told about every new binding.
func WithNotifier(n swap.EventNotifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// New creates a matcher on top of the given order storage.
func New(storage OrderStorage, opts ...Option) *service {
	cfg := config{notifier: swap.NopNotifier{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	var matches metric.Int64Counter = noop.Int64Counter{}
	if c, err := telemetry.Meter("swapmatch").Int64Counter("swapmatch.matches",
		metric.WithDescription("Incoming transactions bound to a swap order, by matching tier"),
	); err == nil {
		matches = c
	}

	return &service{
		storage:   storage,
		notifier:  cfg.notifier,
		window:    MatchWindow,
		tolerance: AmountTolerance,
		tracer:    telemetry.Tracer("swapmatch"),
		matches:   matches,
	}
}
