package swapstatus

import (
	"context"
	"time"

	"github.com/gabapcia/walletsync/internal/swap"
)

// OrderStorage is the part of the swap order store the reconciler relies on.
type OrderStorage interface {
	// ListActive returns up to limit orders, most recent first, where either
	// leg moves token from or to address and whose status is not one of
	// excluded.
	ListActive(ctx context.Context, token swap.Token, address string, excluded []swap.Status, limit int) ([]swap.Order, error)

	// GetByTransactionID returns the order with the given provider
	// transaction id, or swap.ErrOrderNotFound.
	GetByTransactionID(ctx context.Context, transactionID string) (swap.Order, error)

	// UpdateStatus sets the status of the order identified by date, and its
	// finish time when finishedAt is not nil, leaving every other field as
	// is. It returns swap.ErrOrderNotFound when the order does not exist.
	UpdateStatus(ctx context.Context, date int64, status swap.Status, finishedAt *int64) error

	// Save stores a new order, or returns swap.ErrDuplicateOrder when its
	// date is taken.
	Save(ctx context.Context, order swap.Order) error
}

// StatusRepository reports the execution status of orders placed with a
// single provider.
type StatusRepository interface {
	GetTransactionStatus(ctx context.Context, transactionID, destinationAddress string) (swap.Status, error)
}

// StatusRepositories maps each provider to the repository reporting its
// statuses.
type StatusRepositories map[swap.Provider]StatusRepository

// Lookup returns the repository for p, or ErrNoStatusRepository.
func (r StatusRepositories) Lookup(p swap.Provider) (StatusRepository, error) {
	repo, ok := r[p]
	if !ok || repo == nil {
		return nil, ErrNoStatusRepository
	}

	return repo, nil
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
