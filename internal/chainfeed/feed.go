package chainfeed

import (
	"context"
	"errors"

	"github.com/gabapcia/walletsync/internal/pendingtx"
	"github.com/gabapcia/walletsync/internal/swap"

	"github.com/shopspring/decimal"
)

var (
	// ErrBlockNotFound is returned by a Blockchain asked for a block the node
	// does not have (yet).
	ErrBlockNotFound = errors.New("block not found")

	// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when nothing
	// was saved for the network yet.
	ErrNoCheckpointFound = errors.New("no checkpoint found for network")
)

// Transaction is a transfer of the native asset included in a block.
type Transaction struct {
	Hash  string
	From  string
	To    string          // empty for contract creations
	Value decimal.Decimal // atomic units (wei for Ethereum)
	Nonce *uint64
}

// Block is a block reduced to what the feed needs.
type Block struct {
	Height       int64
	Hash         string
	Timestamp    int64 // unix milliseconds
	Transactions []Transaction
}

// Asset is the native coin of the followed chain.
type Asset struct {
	CoinUID        string `validate:"required"`
	BlockchainType string `validate:"required"` // also the checkpoint key
	Decimals       int32  `validate:"gte=0,lte=36"`
}

// Wallet is an address of the wallet whose transfers are followed.
type Wallet struct {
	ID      string `validate:"required"`
	Address string `validate:"required"`
}

// Blockchain reads blocks from a node.
type Blockchain interface {
	// LatestBlockNumber returns the height of the newest block.
	LatestBlockNumber(ctx context.Context) (int64, error)

	// BlockByNumber returns the block at height or ErrBlockNotFound.
	BlockByNumber(ctx context.Context, height int64) (Block, error)
}

// CheckpointStorage remembers the last processed height per network.
type CheckpointStorage interface {
	// SaveCheckpoint overwrites the checkpoint of network.
	SaveCheckpoint(ctx context.Context, network string, height int64) error

	// LoadLatestCheckpoint returns the checkpoint of network or
	// ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context, network string) (int64, error)
}

// PendingResolver drops pending transactions once the chain confirms them.
type PendingResolver interface {
	ResolveConfirmed(ctx context.Context, tx pendingtx.ChainTransaction) ([]string, error)
}

// SwapMatcher binds incoming transfers to the swap orders they settle.
type SwapMatcher interface {
	FindMatchingSwap(ctx context.Context, tx swap.IncomingTransaction) (*swap.Order, error)
}

// nopCheckpoint persists nothing, so every Sync starts at the chain tip.
type nopCheckpoint struct{}

func (nopCheckpoint) SaveCheckpoint(context.Context, string, int64) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(context.Context, string) (int64, error) {
	return 0, ErrNoCheckpointFound
}
