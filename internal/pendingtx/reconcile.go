package pendingtx

import (
	"context"
	"strings"

	"github.com/gabapcia/walletsync/internal/pkg/logger"

	"github.com/shopspring/decimal"
)

// AvailableBalance subtracts from sdkBalance what pending transactions of the
// token still reserve.
//
// A pending row only reserves funds while the chain balance has not moved
// since the row was created: once the balance reported by the chain differs
// from SdkBalanceAtCreationAtomic the transaction is already reflected in it
// and subtracting it again would double count.
func (s *service) AvailableBalance(ctx context.Context, walletID string, token Token, sdkBalance decimal.Decimal) (decimal.Decimal, error) {
	entities, err := s.ListByWallet(ctx, walletID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	current := sdkBalance.Shift(token.Decimals)
	available := current

	for _, e := range entities {
		if e.CoinUID != token.CoinUID || e.BlockchainType != token.BlockchainType || e.TokenType != token.TokenType {
			continue
		}

		if !e.SdkBalanceAtCreationAtomic.Equal(current) {
			continue
		}

		available = available.Sub(e.reservedAtomic())
	}

	return available.Shift(-token.Decimals), nil
}

// supersededBy reports whether the chain transaction is the one the pending
// row stands for. Rows that already carry a hash are matched by hash only;
// the others by counterparties, amount and, when both sides know it, nonce.
func (e Entity) supersededBy(tx ChainTransaction) bool {
	if e.TxHash != nil {
		return strings.EqualFold(*e.TxHash, tx.Hash)
	}

	if !strings.EqualFold(e.FromAddress, tx.FromAddress) || !strings.EqualFold(e.ToAddress, tx.ToAddress) {
		return false
	}

	if !e.AmountAtomic.Equal(tx.AmountAtomic) {
		return false
	}

	if e.Nonce != nil && tx.Nonce != nil {
		return *e.Nonce == *tx.Nonce
	}

	return true
}

// ResolveConfirmed removes every pending row of the wallet superseded by tx.
// A failed delete stops the pass and is returned with the ids removed so far.
func (s *service) ResolveConfirmed(ctx context.Context, tx ChainTransaction) ([]string, error) {
	entities, err := s.storage.ListByWallet(ctx, tx.WalletID)
	if err != nil {
		return nil, err
	}

	removed := make([]string, 0)
	for _, e := range entities {
		if !e.supersededBy(tx) {
			continue
		}

		if err := s.storage.Delete(ctx, e.ID); err != nil {
			return removed, err
		}

		removed = append(removed, e.ID)
		logger.Info(ctx, "pending transaction superseded by chain transaction",
			"pending.id", e.ID,
			"chain.tx_hash", tx.Hash,
		)
	}

	return removed, nil
}

// SweepExpired removes the rows whose expiry has passed.
func (s *service) SweepExpired(ctx context.Context) (int, error) {
	n, err := s.storage.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}

	if n > 0 {
		logger.Info(ctx, "expired pending transactions swept", "pending.count", n)
	}

	return n, nil
}
