package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gabapcia/walletsync/internal/chainfeed"
	"github.com/gabapcia/walletsync/internal/pendingtx"
	"github.com/gabapcia/walletsync/internal/swapmatch"
	"github.com/gabapcia/walletsync/internal/swapstatus"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// Run initializes and executes the walletsync CLI application.
//
// It registers all available commands:
//
//   - `serve`: periodically follows the chain and reconciles swap statuses of
//     watched addresses.
//   - `chain sync`: runs one chain feed pass.
//   - `reconcile`, `status`, `match`: one-shot swap operations.
//   - `order record`: records a swap order placed with a provider.
//   - `pending ...`: manages pending outgoing transactions.
//
// cf may be nil when no chain is followed.
func Run(ctx context.Context, pt pendingtx.Service, sm swapmatch.Service, ss swapstatus.Service, cf chainfeed.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletsync",
		Description:           "Keeps pending transactions and swap orders of a multi-chain wallet in sync with the chains and swap providers.",
		Usage:                 "walletsync [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(ss, pt, cf),
			chainCommand(cf),
			reconcileCommand(ss),
			statusCommand(ss),
			matchCommand(sm),
			orderCommand(ss),
			pendingCommand(pt),
		},
	}

	return app.Run(ctx, os.Args)
}

// printJSON writes v as indented JSON to the writer of the root command.
func printJSON(c *cli.Command, v any) error {
	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// decimalFlag parses the named flag as an exact decimal.
func decimalFlag(c *cli.Command, name string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.String(name))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s: %w", name, err)
	}

	return d, nil
}

// optionalDecimalFlag parses the named flag when it was set.
func optionalDecimalFlag(c *cli.Command, name string) (*decimal.Decimal, error) {
	if !c.IsSet(name) {
		return nil, nil
	}

	d, err := decimalFlag(c, name)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// optionalStringFlag returns the named flag when it was set.
func optionalStringFlag(c *cli.Command, name string) *string {
	if !c.IsSet(name) {
		return nil
	}

	v := c.String(name)
	return &v
}
