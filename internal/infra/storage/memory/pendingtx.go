// Package memory implements the pending transaction and swap order stores in
// process memory. Data lives as long as the process; it backs tests and the
// development mode of the CLI.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/walletsync/internal/pendingtx"
)

type pendingStore struct {
	mu   sync.RWMutex
	rows map[string]pendingtx.Entity
}

// NewPendingStore creates an empty pending transaction store.
func NewPendingStore() *pendingStore {
	return &pendingStore{
		rows: make(map[string]pendingtx.Entity),
	}
}

// clonePending copies the pointer fields so callers never share them with
// the store.
func clonePending(e pendingtx.Entity) pendingtx.Entity {
	if e.FeeAtomic != nil {
		fee := *e.FeeAtomic
		e.FeeAtomic = &fee
	}
	if e.TxHash != nil {
		hash := *e.TxHash
		e.TxHash = &hash
	}
	if e.Nonce != nil {
		nonce := *e.Nonce
		e.Nonce = &nonce
	}
	if e.Memo != nil {
		memo := *e.Memo
		e.Memo = &memo
	}

	return e
}

func (s *pendingStore) Save(_ context.Context, e pendingtx.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[e.ID]; ok {
		return pendingtx.ErrPendingExists
	}

	s.rows[e.ID] = clonePending(e)
	return nil
}

func (s *pendingStore) Get(_ context.Context, id string) (pendingtx.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.rows[id]
	if !ok {
		return pendingtx.Entity{}, pendingtx.ErrPendingNotFound
	}

	return clonePending(e), nil
}

func (s *pendingStore) UpdateTxHash(_ context.Context, id, txHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.rows[id]
	if !ok {
		return pendingtx.ErrPendingNotFound
	}

	e.TxHash = &txHash
	s.rows[id] = e
	return nil
}

func (s *pendingStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rows, id)
	return nil
}

func (s *pendingStore) ListByWallet(_ context.Context, walletID string) ([]pendingtx.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []pendingtx.Entity
	for _, e := range s.rows {
		if e.WalletID == walletID {
			out = append(out, clonePending(e))
		}
	}

	slices.SortFunc(out, func(a, b pendingtx.Entity) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return out, nil
}

func (s *pendingStore) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for id, e := range s.rows {
		if !e.ExpiresAt.After(now) {
			delete(s.rows, id)
			n++
		}
	}

	return n, nil
}

var _ pendingtx.Storage = (*pendingStore)(nil)
