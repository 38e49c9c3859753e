// Package pendingtx keeps an optimistic record of every send or swap from the
// moment the wallet decides to broadcast it until the chain confirms it or the
// broadcast fails, so balances and history reflect the transaction immediately
// without ever diverging from what the chain eventually reports.
package pendingtx

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// defaultTTL is how long a pending row lives before an expiry sweep may drop it.
const defaultTTL = 24 * time.Hour

// Service is the pending-transaction registrar.
type Service interface {
	// Register persists a new pending transaction derived from draft and returns
	// its identifier. An error means nothing was recorded and the caller must
	// not broadcast; an id that is still in flight yields ErrPendingExists.
	Register(ctx context.Context, draft Draft) (string, error)

	// UpdateTxID attaches the canonical hash produced by a successful broadcast.
	// Repeating the call with the same hash is a no-op. Failures, including an
	// unknown id, are logged and never surfaced.
	UpdateTxID(ctx context.Context, id, txHash string)

	// DeleteFailed drops the row of a transaction whose broadcast failed.
	// Failures are logged; the row is then left for the expiry sweep.
	DeleteFailed(ctx context.Context, id string)

	// Get returns the pending transaction with the given id, or ErrPendingNotFound.
	Get(ctx context.Context, id string) (Entity, error)

	// ListByWallet returns the live pending transactions of a wallet, oldest first.
	ListByWallet(ctx context.Context, walletID string) ([]Entity, error)

	// AvailableBalance returns sdkBalance minus what pending transactions of
	// token still reserve, i.e. those the chain balance does not reflect yet.
	AvailableBalance(ctx context.Context, walletID string, token Token, sdkBalance decimal.Decimal) (decimal.Decimal, error)

	// ResolveConfirmed removes the pending rows superseded by a transaction
	// observed on chain and returns their ids.
	ResolveConfirmed(ctx context.Context, tx ChainTransaction) ([]string, error)

	// SweepExpired removes every row whose expiry has passed and returns how
	// many were removed.
	SweepExpired(ctx context.Context) (int, error)
}

// service is the concrete implementation of Service.
type service struct {
	storage Storage
	ttl     time.Duration
	now     func() time.Time
}

var _ Service = (*service)(nil)

// config holds the optional settings of the registrar.
type config struct {
	ttl time.Duration
}

// Option configures the registrar.
type Option func(*config)

// WithTTL sets how long a pending row may live before it expires.
// Non-positive values are ignored.
func WithTTL(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// New creates a registrar backed by the given storage.
func New(storage Storage, opts ...Option) *service {
	cfg := config{ttl: defaultTTL}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		storage: storage,
		ttl:     cfg.ttl,
		now:     func() time.Time { return time.Now().UTC() },
	}
}
