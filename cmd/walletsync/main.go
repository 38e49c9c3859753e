package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gabapcia/walletsync/internal/chainfeed"
	"github.com/gabapcia/walletsync/internal/handlers/cli"
	"github.com/gabapcia/walletsync/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/walletsync/internal/infra/notify/nats"
	"github.com/gabapcia/walletsync/internal/infra/provider/httpstatus"
	"github.com/gabapcia/walletsync/internal/infra/storage/memory"
	"github.com/gabapcia/walletsync/internal/infra/storage/postgres"
	"github.com/gabapcia/walletsync/internal/infra/storage/redis"
	"github.com/gabapcia/walletsync/internal/pendingtx"
	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletsync/internal/pkg/telemetry"
	"github.com/gabapcia/walletsync/internal/pkg/transport/http"
	"github.com/gabapcia/walletsync/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletsync/internal/swapmatch"
	"github.com/gabapcia/walletsync/internal/swapstatus"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// orderStorage is what both swap services need from the order store.
type orderStorage interface {
	swapmatch.OrderStorage
	swapstatus.OrderStorage
}

type stores struct {
	pending     pendingtx.Storage
	orders      orderStorage
	checkpoints chainfeed.CheckpointStorage
	close       func() error
}

func openStores(ctx context.Context, cfg config) (stores, error) {
	if cfg.Store == storeMemory {
		return stores{
			pending:     memory.NewPendingStore(),
			orders:      memory.NewOrderStore(),
			checkpoints: memory.NewCheckpointStore(),
			close:       func() error { return nil },
		}, nil
	}

	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return stores{}, fmt.Errorf("connecting to redis: %w", err)
	}

	pg, err := postgres.NewClient(ctx, cfg.PostgresDSN)
	if err != nil {
		return stores{}, errors.Join(fmt.Errorf("connecting to postgres: %w", err), rdb.Close())
	}

	if err := pg.EnsureSchema(ctx); err != nil {
		return stores{}, errors.Join(fmt.Errorf("creating swap order schema: %w", err), pg.Close(), rdb.Close())
	}

	return stores{
		pending:     rdb,
		orders:      pg,
		checkpoints: rdb,
		close: func() error {
			return errors.Join(pg.Close(), rdb.Close())
		},
	}, nil
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName, version)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		defer func() {
			if err := shutdown(context.WithoutCancel(ctx)); err != nil {
				logger.Error(ctx, "error shutting down telemetry", "error", err)
			}
		}()
	}

	// Telemetry goes first so the logger can bridge into its LoggerProvider.
	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Error(ctx, "error closing stores", "error", err)
		}
	}()

	var (
		matchOpts  []swapmatch.Option
		statusOpts = []swapstatus.Option{
			swapstatus.WithBatchSize(cfg.ReconcileBatchSize),
			swapstatus.WithRetry(retry.New(
				retry.WithAttempts(cfg.StatusAttempts),
				retry.WithRetryIf(func(err error) bool {
					// An explicit error answer will not change on a second call.
					return !errors.Is(err, httpstatus.ErrProviderReturnedError)
				}),
			)),
		}
	)

	if cfg.NATS.URL != "" {
		notifier, err := nats.Connect(nats.Config{
			Address:       cfg.NATS.URL,
			Name:          cfg.NATS.Name,
			Token:         cfg.NATS.Token,
			SubjectPrefix: cfg.NATS.SubjectPrefix,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := notifier.Close(); err != nil {
				logger.Error(ctx, "error closing nats connection", "error", err)
			}
		}()

		matchOpts = append(matchOpts, swapmatch.WithNotifier(notifier))
		statusOpts = append(statusOpts, swapstatus.WithNotifier(notifier))
	}

	httpClient := http.NewClient(
		http.WithTimeout(cfg.HTTPTimeout),
		http.WithRetryMax(cfg.HTTPRetries),
	).StandardClient()

	repositories, err := httpstatus.NewRepositories(httpClient, cfg.ProviderEndpoints)
	if err != nil {
		return fmt.Errorf("configuring swap providers: %w", err)
	}

	var (
		pt = pendingtx.New(st.pending, pendingtx.WithTTL(cfg.PendingTTL))
		sm = swapmatch.New(st.orders, matchOpts...)
		ss = swapstatus.New(st.orders, repositories, statusOpts...)
	)

	var cf chainfeed.Service
	if cfg.Chain.RPCURL != "" {
		cf = chainfeed.New(
			ethereum.NewClient(jsonrpc.NewClient(httpClient, cfg.Chain.RPCURL)),
			pt,
			sm,
			cfg.Chain.asset(),
			cfg.Chain.Wallets,
			chainfeed.WithCheckpointStorage(st.checkpoints),
			chainfeed.WithMaxBlocks(cfg.Chain.MaxBlocks),
		)
	}

	return cli.Run(ctx, pt, sm, ss, cf)
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
