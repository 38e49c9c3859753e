package cli

import (
	"context"
	"errors"

	"github.com/gabapcia/walletsync/internal/chainfeed"

	"github.com/urfave/cli/v3"
)

var errNoChainFeed = errors.New("no chain feed configured")

// chainCommand groups chain feed commands.
func chainCommand(cf chainfeed.Service) *cli.Command {
	return &cli.Command{
		Name:        "chain",
		Description: "Follows the configured chain for transfers touching the wallet.",
		Usage:       "walletsync chain [command] [flags]",
		Commands: []*cli.Command{
			syncChainCommand(cf),
		},
	}
}

// syncChainCommand returns a CLI command running a single chain feed pass.
//
// Usage example:
//
//	walletsync chain sync
func syncChainCommand(cf chainfeed.Service) *cli.Command {
	return &cli.Command{
		Name:        "sync",
		Description: "Processes the blocks produced since the last checkpoint: outgoing transfers resolve pending transactions, incoming ones are matched against swap orders.",
		Usage:       "Prints how many blocks were processed.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if cf == nil {
				return errNoChainFeed
			}

			n, err := cf.Sync(ctx)
			if err != nil {
				return err
			}

			return printJSON(c, map[string]int{"blocks": n})
		},
	}
}
