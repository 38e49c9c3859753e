package cli

import (
	"context"
	"time"

	"github.com/gabapcia/walletsync/internal/swap"
	"github.com/gabapcia/walletsync/internal/swapmatch"
	"github.com/gabapcia/walletsync/internal/swapstatus"

	"github.com/urfave/cli/v3"
)

func tokenFlags(usage string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "coin",
			Usage:    "Coin identifier (e.g., tether)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "blockchain",
			Usage:    "Blockchain identifier (e.g., ethereum)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "address",
			Usage:    usage,
			Required: true,
		},
	}
}

// reconcileCommand returns a CLI command running a single reconcile pass.
//
// Usage example:
//
//	walletsync reconcile --coin tether --blockchain ethereum --address 0xABC
func reconcileCommand(ss swapstatus.Service) *cli.Command {
	return &cli.Command{
		Name:        "reconcile",
		Description: "Polls swap providers once for the unfinished orders of a token and address.",
		Usage:       "Runs one reconcile pass and prints whether any order changed.",
		Flags:       tokenFlags("Address on either leg of the orders"),
		Action: func(ctx context.Context, c *cli.Command) error {
			token := swap.Token{CoinUID: c.String("coin"), BlockchainType: c.String("blockchain")}

			changed, err := ss.Reconcile(ctx, token, c.String("address"))
			if err != nil {
				return err
			}

			return printJSON(c, map[string]bool{"changed": changed})
		},
	}
}

// statusCommand returns a CLI command refreshing a single order.
//
// Usage example:
//
//	walletsync status --transaction-id 8f2c...
func statusCommand(ss swapstatus.Service) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Refreshes the status of a single swap order from its provider.",
		Usage:       "Prints the resolved status, or null when the order or its provider is unknown.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "transaction-id",
				Usage:    "Provider transaction id of the order",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			status, err := ss.UpdateTransactionStatus(ctx, c.String("transaction-id"))
			if err != nil {
				return err
			}

			return printJSON(c, map[string]*swap.Status{"status": status})
		},
	}
}

// matchCommand returns a CLI command binding an incoming transaction to the
// swap order it settles.
//
// Usage example:
//
//	walletsync match --uid 0xdef --coin tether --blockchain ethereum --amount 50.2 --timestamp 1772367000000 --address X
func matchCommand(sm swapmatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "match",
		Description: "Finds, and binds if needed, the swap order settled by an incoming transaction.",
		Usage:       "Prints the matched order, or null when none matches.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "uid",
				Usage:    "Record uid of the incoming transaction",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "coin",
				Usage:    "Coin received (e.g., tether)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "blockchain",
				Usage:    "Blockchain of the transaction (e.g., ethereum)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "amount",
				Usage: "Amount received, when the chain exposes it",
			},
			&cli.Int64Flag{
				Name:  "timestamp",
				Usage: "Transaction time in unix milliseconds (defaults to now)",
			},
			&cli.StringSliceFlag{
				Name:  "address",
				Usage: "Recipient address, when the chain exposes it (repeatable)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			amount, err := optionalDecimalFlag(c, "amount")
			if err != nil {
				return err
			}

			ts := c.Int64("timestamp")
			if ts <= 0 {
				ts = time.Now().UnixMilli()
			}

			order, err := sm.FindMatchingSwap(ctx, swap.IncomingTransaction{
				UID:            c.String("uid"),
				Amount:         amount,
				Timestamp:      ts,
				CoinUID:        c.String("coin"),
				BlockchainType: c.String("blockchain"),
				Addresses:      c.StringSlice("address"),
			})
			if err != nil {
				return err
			}

			return printJSON(c, map[string]*swap.Order{"order": order})
		},
	}
}

// orderCommand groups swap order management commands.
func orderCommand(ss swapstatus.Service) *cli.Command {
	return &cli.Command{
		Name:        "order",
		Description: "Manages swap orders placed with providers.",
		Usage:       "walletsync order [command] [flags]",
		Commands: []*cli.Command{
			recordOrderCommand(ss),
		},
	}
}

// recordOrderCommand returns a CLI command recording a new swap order.
//
// Usage example:
//
//	walletsync order record --provider changenow --transaction-id 8f2c... \
//	  --coin-in bitcoin --blockchain-in bitcoin --amount-in 0.0008 \
//	  --coin-out tether --blockchain-out ethereum --amount-out 50 --address-out X
func recordOrderCommand(ss swapstatus.Service) *cli.Command {
	return &cli.Command{
		Name:        "record",
		Description: "Records a swap order right after it was placed with a provider.",
		Usage:       "Stores the order so that incoming transactions can be matched against it.",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "date", Usage: "Order creation time in unix milliseconds, unique per order (defaults to now)"},
			&cli.StringFlag{Name: "provider", Usage: "Provider tag (e.g., changenow)", Required: true},
			&cli.StringFlag{Name: "transaction-id", Usage: "Provider transaction id", Required: true},
			&cli.StringFlag{Name: "status", Usage: "Initial provider status", Value: string(swap.StatusNew)},
			&cli.StringFlag{Name: "coin-in", Usage: "Coin sent", Required: true},
			&cli.StringFlag{Name: "blockchain-in", Usage: "Blockchain of the coin sent", Required: true},
			&cli.StringFlag{Name: "amount-in", Usage: "Amount sent", Required: true},
			&cli.StringFlag{Name: "address-in", Usage: "Address the coin is sent from"},
			&cli.StringFlag{Name: "coin-out", Usage: "Coin received", Required: true},
			&cli.StringFlag{Name: "blockchain-out", Usage: "Blockchain of the coin received", Required: true},
			&cli.StringFlag{Name: "amount-out", Usage: "Quoted amount to receive", Required: true},
			&cli.StringFlag{Name: "address-out", Usage: "Address the coin is delivered to"},
			&cli.StringFlag{Name: "outgoing-record-uid", Usage: "Record uid of the outgoing transaction"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			amountIn, err := decimalFlag(c, "amount-in")
			if err != nil {
				return err
			}

			amountOut, err := decimalFlag(c, "amount-out")
			if err != nil {
				return err
			}

			date := c.Int64("date")
			if date <= 0 {
				date = time.Now().UnixMilli()
			}

			order := swap.Order{
				Date:          date,
				TransactionID: c.String("transaction-id"),
				Provider:      swap.Provider(c.String("provider")),
				Status:        swap.Status(c.String("status")),
				In: swap.Leg{
					CoinUID:        c.String("coin-in"),
					BlockchainType: c.String("blockchain-in"),
					Amount:         amountIn,
					Address:        c.String("address-in"),
				},
				Out: swap.Leg{
					CoinUID:        c.String("coin-out"),
					BlockchainType: c.String("blockchain-out"),
					Amount:         amountOut,
					Address:        c.String("address-out"),
				},
				OutgoingRecordUID: optionalStringFlag(c, "outgoing-record-uid"),
			}

			if err := ss.RecordOrder(ctx, order); err != nil {
				return err
			}

			return printJSON(c, map[string]int64{"date": order.Date})
		},
	}
}
