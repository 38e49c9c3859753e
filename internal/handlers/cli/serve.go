package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gabapcia/walletsync/internal/chainfeed"
	"github.com/gabapcia/walletsync/internal/pendingtx"
	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/types"
	"github.com/gabapcia/walletsync/internal/pkg/x/chflow"
	"github.com/gabapcia/walletsync/internal/swap"
	"github.com/gabapcia/walletsync/internal/swapstatus"

	"github.com/urfave/cli/v3"
)

var errNothingToServe = errors.New("nothing to serve: no --watch target and no chain feed configured")

// watchTarget is a token and address whose swap orders are reconciled.
type watchTarget struct {
	token   swap.Token
	address string
}

// parseWatchTargets parses "coin:blockchain:address" entries, dropping
// repeated ones.
func parseWatchTargets(values []string) ([]watchTarget, error) {
	targets := make([]watchTarget, 0, len(values))
	for _, v := range types.Unique(values) {
		parts := strings.SplitN(v, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid watch target %q: expected coin:blockchain:address", v)
		}

		targets = append(targets, watchTarget{
			token:   swap.Token{CoinUID: parts[0], BlockchainType: parts[1]},
			address: parts[2],
		})
	}

	return targets, nil
}

// syncOnce runs one chain feed pass, when a feed is configured, then one
// reconcile pass over every target and finally an expiry sweep of pending
// transactions. Failures are logged and never stop the pass.
func syncOnce(ctx context.Context, ss swapstatus.Service, pt pendingtx.Service, cf chainfeed.Service, targets []watchTarget) {
	if cf != nil {
		if n, err := cf.Sync(ctx); err != nil {
			logger.Error(ctx, "error following chain", "chain.blocks", n, "error", err)
		}
	}

	for _, target := range targets {
		changed, err := ss.Reconcile(ctx, target.token, target.address)
		if err != nil {
			logger.Error(ctx, "error reconciling swap orders",
				"token.coin", target.token.CoinUID,
				"token.blockchain", target.token.BlockchainType,
				"address", target.address,
				"error", err,
			)
			continue
		}

		if changed {
			logger.Info(ctx, "swap orders updated",
				"token.coin", target.token.CoinUID,
				"token.blockchain", target.token.BlockchainType,
				"address", target.address,
			)
		}
	}

	if _, err := pt.SweepExpired(ctx); err != nil {
		logger.Error(ctx, "error sweeping expired pending transactions", "error", err)
	}
}

// serveCommand returns a CLI command that follows the chain, when a feed is
// configured, and reconciles swap statuses of the watched addresses on a
// fixed interval.
//
// Usage example:
//
//	walletsync serve --watch tether:ethereum:0xABC --interval 30s
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func serveCommand(ss swapstatus.Service, pt pendingtx.Service, cf chainfeed.Service) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Periodically polls swap providers for the orders of the watched addresses and sweeps expired pending transactions.",
		Usage:       "Runs the reconcile loop. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "watch",
				Usage:    "Token and address to reconcile, as coin:blockchain:address (repeatable)",
				Sources:  cli.EnvVars("WALLETSYNC_WATCH"),
			},
			&cli.DurationFlag{
				Name:    "interval",
				Usage:   "Time between reconcile passes",
				Sources: cli.EnvVars("WALLETSYNC_RECONCILE_INTERVAL"),
				Value:   time.Minute,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			targets, err := parseWatchTargets(c.StringSlice("watch"))
			if err != nil {
				return err
			}

			if len(targets) == 0 && cf == nil {
				return errNothingToServe
			}

			interval := c.Duration("interval")
			if interval <= 0 {
				return fmt.Errorf("invalid --interval %s: must be positive", interval)
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info(ctx, "reconcile loop started",
				"targets.count", len(targets),
				"interval", interval.String(),
			)

			chflow.Every(ctx, interval, func(ctx context.Context) {
				syncOnce(ctx, ss, pt, cf, targets)
			})

			logger.Info(ctx, "reconcile loop stopped")
			return nil
		},
	}
}
