package swapmatch

import (
	"context"
	"errors"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/types"
	"github.com/gabapcia/walletsync/internal/swap"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Matching tiers, cheapest and most specific first.
const (
	tierBound     = "bound"
	tierAddress   = "address_amount"
	tierAmount    = "amount_window"
	tierTimestamp = "timestamp"
)

// maxTimestampClaimAttempts bounds how often the timestamp tier looks for a
// new candidate after losing a claim race.
const maxTimestampClaimAttempts = 3

// FindMatchingSwap runs the matching tiers in order and returns the first hit:
//
//  1. the order already bound to tx.UID, returned as is;
//  2. with addresses and amount: per address, unclaimed orders paying that
//     address an amount within tolerance inside the window;
//  3. with amount only: unclaimed orders for the output token with an amount
//     within tolerance inside the window;
//  4. with neither: the latest unclaimed order for the output token inside
//     the window.
//
// Tiers 2 to 4 claim the order conditionally; a candidate claimed
// concurrently by another transaction is skipped in favour of the next one.
func (s *service) FindMatchingSwap(ctx context.Context, tx swap.IncomingTransaction) (*swap.Order, error) {
	ctx, span := s.tracer.Start(ctx, "swapmatch.FindMatchingSwap", trace.WithAttributes(
		attribute.String("tx.uid", tx.UID),
		attribute.String("tx.coin", tx.CoinUID),
		attribute.String("tx.blockchain", tx.BlockchainType),
	))
	defer span.End()

	order, tier, err := s.findMatchingSwap(ctx, tx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if order == nil {
		span.SetAttributes(attribute.Bool("swap.matched", false))
		return nil, nil
	}

	span.SetAttributes(
		attribute.Bool("swap.matched", true),
		attribute.String("swap.tier", tier),
		attribute.Int64("order.date", order.Date),
	)
	s.matches.Add(ctx, 1, metric.WithAttributes(attribute.String("tier", tier)))

	return order, nil
}

func (s *service) findMatchingSwap(ctx context.Context, tx swap.IncomingTransaction) (*swap.Order, string, error) {
	bound, err := s.storage.GetByIncomingRecordUID(ctx, tx.UID)
	if err == nil {
		return &bound, tierBound, nil
	}
	if !errors.Is(err, swap.ErrOrderNotFound) {
		return nil, "", err
	}

	addresses := nonEmpty(tx.Addresses)

	switch {
	case tx.Amount != nil && len(addresses) > 0:
		order, err := s.matchByAddress(ctx, tx, addresses)
		return order, tierAddress, err
	case tx.Amount != nil:
		order, err := s.matchByAmount(ctx, tx)
		return order, tierAmount, err
	default:
		order, err := s.matchByTimestamp(ctx, tx)
		return order, tierTimestamp, err
	}
}

// nonEmpty drops blank and repeated addresses, keeping their order.
func nonEmpty(addresses []string) []string {
	out := make([]string, 0, len(addresses))
	for _, a := range types.Unique(addresses) {
		if a != "" {
			out = append(out, a)
		}
	}

	return out
}

// windowStart is the earliest order date a transaction at ts can settle.
func (s *service) windowStart(ts int64) int64 {
	return ts - s.window.Milliseconds()
}

func (s *service) candidateQuery(tx swap.IncomingTransaction, address string) CandidateQuery {
	return CandidateQuery{
		CoinUID:        tx.CoinUID,
		BlockchainType: tx.BlockchainType,
		Address:        address,
		Amount:         *tx.Amount,
		Tolerance:      s.tolerance,
		From:           s.windowStart(tx.Timestamp),
		To:             tx.Timestamp,
	}
}

// eligible reports whether a candidate returned by the store satisfies the
// window and tolerance of q.
func eligible(o swap.Order, q CandidateQuery) bool {
	if o.Claimed() || o.Date < q.From || o.Date > q.To {
		return false
	}

	return swap.WithinTolerance(o.Out.Amount, q.Amount, q.Tolerance)
}

func (s *service) matchByAddress(ctx context.Context, tx swap.IncomingTransaction, addresses []string) (*swap.Order, error) {
	for _, address := range addresses {
		order, err := s.matchCandidates(ctx, tx, s.candidateQuery(tx, address))
		if err != nil || order != nil {
			return order, err
		}
	}

	return nil, nil
}

func (s *service) matchByAmount(ctx context.Context, tx swap.IncomingTransaction) (*swap.Order, error) {
	return s.matchCandidates(ctx, tx, s.candidateQuery(tx, ""))
}

// matchCandidates claims the best ranked eligible candidate for q.
func (s *service) matchCandidates(ctx context.Context, tx swap.IncomingTransaction, q CandidateQuery) (*swap.Order, error) {
	candidates, err := s.storage.FindUnclaimedByTokenOut(ctx, q)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		if !eligible(candidate, q) {
			continue
		}

		claimed, err := s.claim(ctx, &candidate, tx, tx.Amount)
		if err != nil {
			return nil, err
		}
		if claimed {
			return &candidate, nil
		}
	}

	return nil, nil
}

// matchByTimestamp binds the latest unclaimed order of the output token
// inside the window. The settled amount is unknown, so AmountOutReal is left
// untouched.
func (s *service) matchByTimestamp(ctx context.Context, tx swap.IncomingTransaction) (*swap.Order, error) {
	for range maxTimestampClaimAttempts {
		candidate, err := s.storage.GetLatestUnclaimedByTokenOut(ctx, tx.CoinUID, tx.BlockchainType, s.windowStart(tx.Timestamp), tx.Timestamp)
		if errors.Is(err, swap.ErrOrderNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		claimed, err := s.claim(ctx, &candidate, tx, nil)
		if err != nil {
			return nil, err
		}
		if claimed {
			return &candidate, nil
		}
	}

	return nil, nil
}

// claim conditionally binds tx to order. On success order is updated in place
// to reflect the stored row. It returns false, without error, when the order
// was claimed by someone else or vanished in the meantime.
func (s *service) claim(ctx context.Context, order *swap.Order, tx swap.IncomingTransaction, amountOutReal *decimal.Decimal) (bool, error) {
	err := s.storage.ClaimIncoming(ctx, order.Date, tx.UID, amountOutReal)
	if errors.Is(err, swap.ErrAlreadyClaimed) || errors.Is(err, swap.ErrOrderNotFound) {
		logger.Debug(ctx, "swap order claim lost",
			"order.date", order.Date,
			"tx.uid", tx.UID,
			"error", err,
		)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	uid := tx.UID
	order.IncomingRecordUID = &uid
	if amountOutReal != nil {
		amount := *amountOutReal
		order.AmountOutReal = &amount
	}

	logger.Info(ctx, "incoming transaction bound to swap order",
		"order.date", order.Date,
		"order.provider", order.Provider,
		"order.transaction_id", order.TransactionID,
		"tx.uid", tx.UID,
	)

	if err := s.notifier.NotifySwapMatched(ctx, *order, tx); err != nil {
		logger.Error(ctx, "error notifying swap match",
			"order.date", order.Date,
			"tx.uid", tx.UID,
			"error", err,
		)
	}

	return true, nil
}
