package swapstatus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/swap"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Reconcile implements Service.
func (s *service) Reconcile(ctx context.Context, token swap.Token, address string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "swapstatus.Reconcile", trace.WithAttributes(
		attribute.String("token.coin", token.CoinUID),
		attribute.String("token.blockchain", token.BlockchainType),
		attribute.String("address", address),
	))
	defer span.End()

	orders, err := s.storage.ListActive(ctx, token, address, swap.TerminalStatuses(), s.batchSize)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, fmt.Errorf("listing active swap orders: %w", err)
	}
	span.SetAttributes(attribute.Int("orders.count", len(orders)))

	var (
		wg      sync.WaitGroup
		changed atomic.Bool
	)
	for _, order := range orders {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, updated, err := s.refresh(ctx, order)
			if err != nil {
				logger.Warn(ctx, "error refreshing swap order status",
					"order.date", order.Date,
					"order.provider", order.Provider,
					"order.transaction_id", order.TransactionID,
					"error", err,
				)
				return
			}
			if updated {
				changed.Store(true)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return changed.Load(), ctx.Err()
	}

	span.SetAttributes(attribute.Bool("orders.changed", changed.Load()))
	return changed.Load(), nil
}

// UpdateTransactionStatus implements Service.
func (s *service) UpdateTransactionStatus(ctx context.Context, transactionID string) (*swap.Status, error) {
	ctx, span := s.tracer.Start(ctx, "swapstatus.UpdateTransactionStatus", trace.WithAttributes(
		attribute.String("order.transaction_id", transactionID),
	))
	defer span.End()

	order, err := s.storage.GetByTransactionID(ctx, transactionID)
	if errors.Is(err, swap.ErrOrderNotFound) {
		return nil, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("loading swap order %s: %w", transactionID, err)
	}

	status, _, err := s.refresh(ctx, order)
	switch {
	case errors.Is(err, errPersist):
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	case err != nil:
		logger.Warn(ctx, "error refreshing swap order status",
			"order.date", order.Date,
			"order.provider", order.Provider,
			"order.transaction_id", order.TransactionID,
			"error", err,
		)
		return nil, nil
	}

	return &status, nil
}

// errPersist marks refresh failures that happened after the provider
// answered, while storing the new status.
var errPersist = errors.New("persisting swap order status")

// refresh asks the order's provider for its current status and stores it
// when it differs from the stored one. It returns the resolved status and
// whether it changed.
func (s *service) refresh(ctx context.Context, order swap.Order) (swap.Status, bool, error) {
	repo, err := s.repositories.Lookup(order.Provider)
	if err != nil {
		return "", false, fmt.Errorf("%w: %q", err, order.Provider)
	}

	var reported swap.Status
	err = s.retry.Execute(ctx, func() error {
		var err error
		reported, err = repo.GetTransactionStatus(ctx, order.TransactionID, order.Out.Address)
		return err
	})
	if err != nil {
		return "", false, fmt.Errorf("querying %s status: %w", order.Provider, err)
	}

	status := swap.NormalizeStatus(string(reported))
	if status.Equal(order.Status) {
		return status, false, nil
	}

	var finishedAt *int64
	if status.IsTerminal() {
		at := s.now()
		finishedAt = &at
	}

	if err := s.storage.UpdateStatus(ctx, order.Date, status, finishedAt); err != nil {
		return "", false, fmt.Errorf("%w %d: %w", errPersist, order.Date, err)
	}

	logger.Info(ctx, "swap order status changed",
		"order.date", order.Date,
		"order.provider", order.Provider,
		"order.transaction_id", order.TransactionID,
		"status.previous", order.Status,
		"status.current", status,
	)
	s.changes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", string(order.Provider)),
		attribute.String("status", string(status)),
	))

	previous := order.Status
	order.Status = status
	order.FinishedAt = finishedAt
	if err := s.notifier.NotifySwapStatusChanged(ctx, order, previous); err != nil {
		logger.Error(ctx, "error notifying swap status change",
			"order.date", order.Date,
			"error", err,
		)
	}

	return status, true, nil
}
