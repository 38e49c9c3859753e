package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/gabapcia/walletsync/internal/swap"
	"github.com/gabapcia/walletsync/internal/swapmatch"
	"github.com/gabapcia/walletsync/internal/swapstatus"

	"github.com/shopspring/decimal"
)

type orderStore struct {
	mu     sync.RWMutex
	orders map[int64]swap.Order
}

// NewOrderStore creates an empty swap order store.
func NewOrderStore() *orderStore {
	return &orderStore{
		orders: make(map[int64]swap.Order),
	}
}

func cloneOrder(o swap.Order) swap.Order {
	if o.OutgoingRecordUID != nil {
		uid := *o.OutgoingRecordUID
		o.OutgoingRecordUID = &uid
	}
	if o.IncomingRecordUID != nil {
		uid := *o.IncomingRecordUID
		o.IncomingRecordUID = &uid
	}
	if o.AmountOutReal != nil {
		amount := *o.AmountOutReal
		o.AmountOutReal = &amount
	}
	if o.FinishedAt != nil {
		at := *o.FinishedAt
		o.FinishedAt = &at
	}

	return o
}

// filter returns clones of the orders accepted by keep.
func (s *orderStore) filter(keep func(swap.Order) bool) []swap.Order {
	var out []swap.Order
	for _, o := range s.orders {
		if keep(o) {
			out = append(out, cloneOrder(o))
		}
	}

	return out
}

func byDateDesc(a, b swap.Order) int {
	return cmp.Compare(b.Date, a.Date)
}

func (s *orderStore) Save(_ context.Context, o swap.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.Date]; ok {
		return swap.ErrDuplicateOrder
	}

	s.orders[o.Date] = cloneOrder(o)
	return nil
}

func (s *orderStore) GetByIncomingRecordUID(_ context.Context, uid string) (swap.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.IncomingRecordUID != nil && *o.IncomingRecordUID == uid {
			return cloneOrder(o), nil
		}
	}

	return swap.Order{}, swap.ErrOrderNotFound
}

func (s *orderStore) FindUnclaimedByTokenOut(_ context.Context, q swapmatch.CandidateQuery) ([]swap.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filter(func(o swap.Order) bool {
		return !o.Claimed() &&
			o.Out.CoinUID == q.CoinUID &&
			o.Out.BlockchainType == q.BlockchainType &&
			o.Date >= q.From && o.Date <= q.To &&
			(q.Address == "" || strings.EqualFold(o.Out.Address, q.Address)) &&
			swap.WithinTolerance(o.Out.Amount, q.Amount, q.Tolerance)
	})

	distance := func(o swap.Order) decimal.Decimal {
		return o.Out.Amount.Sub(q.Amount).Abs()
	}
	slices.SortFunc(out, func(a, b swap.Order) int {
		if c := distance(a).Cmp(distance(b)); c != 0 {
			return c
		}
		return cmp.Compare(a.Date, b.Date)
	})

	return out, nil
}

func (s *orderStore) GetLatestUnclaimedByTokenOut(_ context.Context, coinUID, blockchainType string, from, to int64) (swap.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filter(func(o swap.Order) bool {
		return !o.Claimed() &&
			o.Out.CoinUID == coinUID &&
			o.Out.BlockchainType == blockchainType &&
			o.Date >= from && o.Date <= to
	})
	if len(out) == 0 {
		return swap.Order{}, swap.ErrOrderNotFound
	}

	return slices.MinFunc(out, byDateDesc), nil
}

func (s *orderStore) ClaimIncoming(_ context.Context, date int64, uid string, amountOutReal *decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[date]
	if !ok {
		return swap.ErrOrderNotFound
	}
	if o.Claimed() {
		return swap.ErrAlreadyClaimed
	}

	o.IncomingRecordUID = &uid
	if amountOutReal != nil {
		amount := *amountOutReal
		o.AmountOutReal = &amount
	}
	s.orders[date] = o

	return nil
}

func (s *orderStore) ListActive(_ context.Context, token swap.Token, address string, excluded []swap.Status, limit int) ([]swap.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filter(func(o swap.Order) bool {
		excludedStatus := slices.ContainsFunc(excluded, o.Status.Equal)
		return !excludedStatus && o.Involves(token, address)
	})

	slices.SortFunc(out, byDateDesc)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (s *orderStore) GetByTransactionID(_ context.Context, transactionID string) (swap.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filter(func(o swap.Order) bool {
		return o.TransactionID == transactionID
	})
	if len(out) == 0 {
		return swap.Order{}, swap.ErrOrderNotFound
	}

	return slices.MinFunc(out, byDateDesc), nil
}

func (s *orderStore) UpdateStatus(_ context.Context, date int64, status swap.Status, finishedAt *int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[date]
	if !ok {
		return swap.ErrOrderNotFound
	}

	o.Status = status
	if finishedAt != nil {
		at := *finishedAt
		o.FinishedAt = &at
	}
	s.orders[date] = o

	return nil
}

var (
	_ swapmatch.OrderStorage  = (*orderStore)(nil)
	_ swapstatus.OrderStorage = (*orderStore)(nil)
)
