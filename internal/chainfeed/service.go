// Package chainfeed follows the blocks of a chain and hands every transfer
// touching a wallet address to the components that care: outgoing transfers
// resolve pending transactions, incoming ones are matched against swap orders.
package chainfeed

import (
	"context"

	"github.com/gabapcia/walletsync/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// DefaultMaxBlocks caps how many blocks a single Sync processes.
const DefaultMaxBlocks = 100

// Service follows one chain.
type Service interface {
	// Sync processes the blocks produced since the last checkpoint, at most
	// the configured number per call, and returns how many it processed.
	// Transfers that fail to resolve or match are logged and skipped; a block
	// that cannot be fetched stops the pass.
	Sync(ctx context.Context) (int, error)
}

type service struct {
	chain       Blockchain
	checkpoints CheckpointStorage
	resolver    PendingResolver
	matcher     SwapMatcher
	asset       Asset
	wallets     []Wallet
	maxBlocks   int

	tracer trace.Tracer
	blocks metric.Int64Counter
}

var _ Service = (*service)(nil)

type config struct {
	checkpoints CheckpointStorage
	maxBlocks   int
}

// Option configures the feed.
type Option func(*config)

// WithCheckpointStorage sets where the last processed height is kept.
// Without it every Sync starts at the chain tip.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		if cs != nil {
			c.checkpoints = cs
		}
	}
}

// WithMaxBlocks caps how many blocks a single Sync processes. Values below 1
// are ignored.
func WithMaxBlocks(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.maxBlocks = n
		}
	}
}

// New creates a feed of asset transfers touching wallets.
func New(chain Blockchain, resolver PendingResolver, matcher SwapMatcher, asset Asset, wallets []Wallet, opts ...Option) *service {
	cfg := config{
		checkpoints: nopCheckpoint{},
		maxBlocks:   DefaultMaxBlocks,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var blocks metric.Int64Counter = noop.Int64Counter{}
	if c, err := telemetry.Meter("chainfeed").Int64Counter("chainfeed.blocks",
		metric.WithDescription("Blocks processed by the chain feed"),
	); err == nil {
		blocks = c
	}

	return &service{
		chain:       chain,
		checkpoints: cfg.checkpoints,
		resolver:    resolver,
		matcher:     matcher,
		asset:       asset,
		wallets:     wallets,
		maxBlocks:   cfg.maxBlocks,
		tracer:      telemetry.Tracer("chainfeed"),
		blocks:      blocks,
	}
}
