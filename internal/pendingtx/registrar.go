package pendingtx

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/validator"

	"github.com/google/uuid"
)

// buildEntity validates the draft and derives the row to persist.
func (s *service) buildEntity(draft Draft) (Entity, error) {
	if err := validator.Validate(draft); err != nil {
		return Entity{}, err
	}

	decimals := draft.Token.Decimals

	amount, err := toAtomic(draft.Amount, decimals)
	if err != nil {
		return Entity{}, fmt.Errorf("amount: %w", err)
	}

	baseline, err := toAtomic(draft.SdkBalanceAtCreation, decimals)
	if err != nil {
		return Entity{}, fmt.Errorf("sdk balance: %w", err)
	}

	e := Entity{
		ID:                         draft.ID,
		WalletID:                   draft.WalletID,
		CoinUID:                    draft.Token.CoinUID,
		BlockchainType:             draft.Token.BlockchainType,
		TokenType:                  draft.Token.TokenType,
		Decimals:                   decimals,
		Meta:                       draft.Meta,
		AmountAtomic:               amount,
		SdkBalanceAtCreationAtomic: baseline,
		FromAddress:                draft.FromAddress,
		ToAddress:                  draft.ToAddress,
		TxHash:                     draft.TxHash,
		Nonce:                      draft.Nonce,
		Memo:                       draft.Memo,
		CreatedAt:                  draft.Timestamp.UTC(),
	}

	if draft.Fee != nil {
		fee, err := toAtomic(*draft.Fee, decimals)
		if err != nil {
			return Entity{}, fmt.Errorf("fee: %w", err)
		}
		e.FeeAtomic = &fee
	}

	if e.ID == "" {
		e.ID = uuid.Must(uuid.NewV7()).String()
	}

	if draft.Timestamp.IsZero() {
		e.CreatedAt = s.now()
	}
	e.ExpiresAt = e.CreatedAt.Add(s.ttl)

	return e, nil
}

// Register validates the draft, converts its amounts to atomic units and
// persists it. The error is returned as is so the caller can abort the
// broadcast: funds leaving without a local record would corrupt every balance
// view until the chain itself surfaces the transaction.
func (s *service) Register(ctx context.Context, draft Draft) (string, error) {
	e, err := s.buildEntity(draft)
	if err != nil {
		return "", err
	}

	if err := s.storage.Save(ctx, e); err != nil {
		return "", fmt.Errorf("persisting pending transaction %s: %w", e.ID, err)
	}

	logger.Info(ctx, "pending transaction registered",
		"pending.id", e.ID,
		"pending.wallet", e.WalletID,
		"pending.coin", e.CoinUID,
		"pending.blockchain", e.BlockchainType,
		"pending.amount_atomic", e.AmountAtomic.String(),
	)

	return e.ID, nil
}

// UpdateTxID attaches the broadcast hash to a pending row.
func (s *service) UpdateTxID(ctx context.Context, id, txHash string) {
	e, err := s.storage.Get(ctx, id)
	if err != nil {
		s.logUpdateFailure(ctx, id, txHash, err)
		return
	}

	if e.TxHash != nil && *e.TxHash == txHash {
		return
	}

	if err := s.storage.UpdateTxHash(ctx, id, txHash); err != nil {
		s.logUpdateFailure(ctx, id, txHash, err)
		return
	}

	logger.Debug(ctx, "pending transaction hash attached",
		"pending.id", id,
		"pending.tx_hash", txHash,
	)
}

func (s *service) logUpdateFailure(ctx context.Context, id, txHash string, err error) {
	if errors.Is(err, ErrPendingNotFound) {
		logger.Warn(ctx, "pending transaction not found while attaching hash",
			"pending.id", id,
			"pending.tx_hash", txHash,
		)
		return
	}

	logger.Error(ctx, "error attaching hash to pending transaction",
		"pending.id", id,
		"pending.tx_hash", txHash,
		"error", err,
	)
}

// DeleteFailed removes the row of a transaction whose broadcast failed, so
// balances stop reserving funds for it.
func (s *service) DeleteFailed(ctx context.Context, id string) {
	if err := s.storage.Delete(ctx, id); err != nil {
		logger.Error(ctx, "error deleting failed pending transaction",
			"pending.id", id,
			"error", err,
		)
		return
	}

	logger.Info(ctx, "failed pending transaction deleted", "pending.id", id)
}

// Get returns a pending transaction by id.
func (s *service) Get(ctx context.Context, id string) (Entity, error) {
	return s.storage.Get(ctx, id)
}

// ListByWallet returns the live pending transactions of a wallet, oldest first.
func (s *service) ListByWallet(ctx context.Context, walletID string) ([]Entity, error) {
	entities, err := s.storage.ListByWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entities = slices.DeleteFunc(entities, func(e Entity) bool {
		return !e.ExpiresAt.After(now)
	})

	slices.SortStableFunc(entities, func(a, b Entity) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return entities, nil
}
