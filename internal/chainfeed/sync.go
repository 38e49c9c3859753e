package chainfeed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/walletsync/internal/pendingtx"
	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/swap"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Sync implements Service.
func (s *service) Sync(ctx context.Context) (int, error) {
	network := s.asset.BlockchainType

	ctx, span := s.tracer.Start(ctx, "chainfeed.Sync",
		trace.WithAttributes(attribute.String("chain.network", network)),
	)
	defer span.End()

	processed, err := s.sync(ctx)
	span.SetAttributes(attribute.Int("chain.blocks", processed))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if processed > 0 {
		s.blocks.Add(ctx, int64(processed), metric.WithAttributes(attribute.String("chain.network", network)))
	}

	return processed, err
}

func (s *service) sync(ctx context.Context) (int, error) {
	network := s.asset.BlockchainType

	latest, err := s.chain.LatestBlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching latest %s block number: %w", network, err)
	}

	from, err := s.startHeight(ctx, latest)
	if err != nil {
		return 0, err
	}

	to := min(latest, from+int64(s.maxBlocks)-1)

	processed := 0
	for height := from; height <= to; height++ {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		block, err := s.chain.BlockByNumber(ctx, height)
		if err != nil {
			return processed, fmt.Errorf("fetching %s block %d: %w", network, height, err)
		}

		s.processBlock(ctx, block)
		processed++

		// A failed save only makes the next pass replay the block.
		if err := s.checkpoints.SaveCheckpoint(ctx, network, height); err != nil {
			logger.Error(ctx, "failed to save checkpoint",
				"block.network", network,
				"block.height", height,
				"error", err,
			)
		}
	}

	return processed, nil
}

// startHeight is the block after the checkpoint, or the chain tip when there
// is no checkpoint yet.
func (s *service) startHeight(ctx context.Context, latest int64) (int64, error) {
	checkpoint, err := s.checkpoints.LoadLatestCheckpoint(ctx, s.asset.BlockchainType)
	if errors.Is(err, ErrNoCheckpointFound) {
		return latest, nil
	}

	if err != nil {
		return 0, fmt.Errorf("loading %s checkpoint: %w", s.asset.BlockchainType, err)
	}

	return checkpoint + 1, nil
}

func (s *service) processBlock(ctx context.Context, block Block) {
	for _, tx := range block.Transactions {
		for _, w := range s.wallets {
			if strings.EqualFold(tx.From, w.Address) {
				s.resolveOutgoing(ctx, w, tx)
			}

			if tx.To != "" && strings.EqualFold(tx.To, w.Address) {
				s.matchIncoming(ctx, w, block, tx)
			}
		}
	}
}

func (s *service) resolveOutgoing(ctx context.Context, w Wallet, tx Transaction) {
	removed, err := s.resolver.ResolveConfirmed(ctx, pendingtx.ChainTransaction{
		Hash:         tx.Hash,
		WalletID:     w.ID,
		FromAddress:  w.Address,
		ToAddress:    tx.To,
		AmountAtomic: tx.Value,
		Nonce:        tx.Nonce,
	})
	if err != nil {
		logger.Error(ctx, "error resolving pending transactions",
			"wallet.id", w.ID,
			"chain.tx_hash", tx.Hash,
			"error", err,
		)
		return
	}

	if len(removed) > 0 {
		logger.Debug(ctx, "outgoing transfer confirmed",
			"wallet.id", w.ID,
			"chain.tx_hash", tx.Hash,
			"pending.count", len(removed),
		)
	}
}

func (s *service) matchIncoming(ctx context.Context, w Wallet, block Block, tx Transaction) {
	if !tx.Value.IsPositive() {
		return
	}

	amount := tx.Value.Shift(-s.asset.Decimals)
	order, err := s.matcher.FindMatchingSwap(ctx, swap.IncomingTransaction{
		UID:            tx.Hash,
		Amount:         &amount,
		Timestamp:      block.Timestamp,
		CoinUID:        s.asset.CoinUID,
		BlockchainType: s.asset.BlockchainType,
		Addresses:      []string{w.Address},
	})
	if err != nil {
		logger.Error(ctx, "error matching incoming transfer",
			"wallet.id", w.ID,
			"chain.tx_hash", tx.Hash,
			"error", err,
		)
		return
	}

	if order != nil {
		logger.Debug(ctx, "incoming transfer settles swap order",
			"chain.tx_hash", tx.Hash,
			"order.date", order.Date,
		)
	}
}
