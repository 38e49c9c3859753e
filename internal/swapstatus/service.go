// Package swapstatus keeps the status of swap orders in sync with the
// providers executing them.
//
// Each provider is reached through its own StatusRepository. A reconcile pass
// queries every outstanding order concurrently, so a slow or failing provider
// only delays or skips its own orders.
package swapstatus

import (
	"context"
	"errors"

	"github.com/gabapcia/walletsync/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletsync/internal/pkg/telemetry"
	"github.com/gabapcia/walletsync/internal/swap"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBatchSize is the number of orders refreshed by a reconcile pass.
const DefaultBatchSize = 10

// ErrNoStatusRepository is returned when no status repository is registered
// for an order's provider.
var ErrNoStatusRepository = errors.New("no status repository for provider")

// Service is the swap status reconciler.
type Service interface {
	// Reconcile refreshes the most recent unfinished orders moving token from
	// or to address. It reports whether at least one order changed status.
	//
	// Failures of individual providers are logged and skipped. The error is
	// non-nil only when the orders cannot be loaded or ctx ends before every
	// provider has answered.
	Reconcile(ctx context.Context, token swap.Token, address string) (bool, error)

	// UpdateTransactionStatus refreshes a single order by provider transaction
	// id and returns its resolved status, or nil when the order or its provider
	// is unknown or the provider could not be reached.
	UpdateTransactionStatus(ctx context.Context, transactionID string) (*swap.Status, error)

	// RecordOrder validates and stores a newly executed swap order.
	RecordOrder(ctx context.Context, order swap.Order) error
}

type service struct {
	storage      OrderStorage
	repositories StatusRepositories
	notifier     swap.EventNotifier
	retry        retry.Retry
	batchSize    int
	now          func() int64

	tracer  trace.Tracer
	changes metric.Int64Counter
}

var _ Service = (*service)(nil)

type config struct {
	batchSize int
	retry     retry.Retry
	notifier  swap.EventNotifier
}

// Option configures the reconciler.
type Option func(*config)

// WithBatchSize sets how many orders a reconcile pass refreshes. Values below
// one are ignored.
func WithBatchSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// WithRetry wraps every provider status call with r.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithNotifier sets the notifier told about every status change.
func WithNotifier(n swap.EventNotifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// New creates a reconciler persisting through storage and querying providers
// through repositories.
func New(storage OrderStorage, repositories StatusRepositories, opts ...Option) *service {
	cfg := config{
		batchSize: DefaultBatchSize,
		retry:     retry.New(retry.WithAttempts(1)),
		notifier:  swap.NopNotifier{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var changes metric.Int64Counter = noop.Int64Counter{}
	if c, err := telemetry.Meter("swapstatus").Int64Counter("swapstatus.changes",
		metric.WithDescription("Swap order status changes reported by providers"),
	); err == nil {
		changes = c
	}

	return &service{
		storage:      storage,
		repositories: repositories,
		notifier:     cfg.notifier,
		retry:        cfg.retry,
		batchSize:    cfg.batchSize,
		now:          nowMillis,
		tracer:       telemetry.Tracer("swapstatus"),
		changes:      changes,
	}
}
