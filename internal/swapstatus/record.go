package swapstatus

import (
	"context"
	"fmt"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/validator"
	"github.com/gabapcia/walletsync/internal/swap"
)

// RecordOrder implements Service. The status is normalized and defaults to
// swap.StatusNew. Orders reach the store unclaimed. Unknown provider tags are
// rejected; a known provider without a status repository is only warned about,
// since the order must still be matchable and Reconcile skips it.
func (s *service) RecordOrder(ctx context.Context, order swap.Order) error {
	order.Status = swap.NormalizeStatus(string(order.Status))
	if order.Status == "" {
		order.Status = swap.StatusNew
	}
	order.IncomingRecordUID = nil
	order.AmountOutReal = nil

	if err := validator.Validate(order); err != nil {
		return err
	}

	provider, err := swap.ParseProvider(string(order.Provider))
	if err != nil {
		return err
	}
	order.Provider = provider

	if _, err := s.repositories.Lookup(order.Provider); err != nil {
		logger.Warn(ctx, "recording swap order for a provider without status repository",
			"order.date", order.Date,
			"order.provider", order.Provider,
		)
	}

	if err := s.storage.Save(ctx, order); err != nil {
		return fmt.Errorf("saving swap order %d: %w", order.Date, err)
	}

	logger.Info(ctx, "swap order recorded",
		"order.date", order.Date,
		"order.provider", order.Provider,
		"order.transaction_id", order.TransactionID,
	)

	return nil
}
