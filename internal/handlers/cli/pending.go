package cli

import (
	"context"

	"github.com/gabapcia/walletsync/internal/pendingtx"

	"github.com/urfave/cli/v3"
)

// pendingCommand groups pending transaction commands.
func pendingCommand(pt pendingtx.Service) *cli.Command {
	return &cli.Command{
		Name:        "pending",
		Description: "Manages pending outgoing transactions of the wallet.",
		Usage:       "walletsync pending [command] [flags]",
		Commands: []*cli.Command{
			registerPendingCommand(pt),
			updatePendingCommand(pt),
			failPendingCommand(pt),
			listPendingCommand(pt),
			balancePendingCommand(pt),
			resolvePendingCommand(pt),
			sweepPendingCommand(pt),
		},
	}
}

func tokenTypeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "coin", Usage: "Coin identifier (e.g., bitcoin)", Required: true},
		&cli.StringFlag{Name: "blockchain", Usage: "Blockchain identifier (e.g., bitcoin)", Required: true},
		&cli.StringFlag{Name: "token-type", Usage: "Token type (e.g., native, eip20:0xdac1...)", Value: "native"},
		&cli.Int64Flag{Name: "decimals", Usage: "Decimal places of the token", Required: true},
	}
}

func tokenFromFlags(c *cli.Command) pendingtx.Token {
	return pendingtx.Token{
		CoinUID:        c.String("coin"),
		BlockchainType: c.String("blockchain"),
		TokenType:      c.String("token-type"),
		Decimals:       int32(c.Int64("decimals")),
	}
}

// registerPendingCommand returns a CLI command recording a transaction about
// to be broadcast.
//
// Usage example:
//
//	walletsync pending register --wallet w1 --coin bitcoin --blockchain bitcoin --decimals 8 \
//	  --amount 1.5 --fee 0.0002 --balance 3.25 --from A --to B
func registerPendingCommand(pt pendingtx.Service) *cli.Command {
	flags := append(tokenTypeFlags(),
		&cli.StringFlag{Name: "id", Usage: "Identifier of the pending transaction (generated when empty)"},
		&cli.StringFlag{Name: "wallet", Usage: "Wallet id", Required: true},
		&cli.StringFlag{Name: "amount", Usage: "Amount sent, in token units", Required: true},
		&cli.StringFlag{Name: "fee", Usage: "Fee paid in the same token, in token units"},
		&cli.StringFlag{Name: "balance", Usage: "Balance reported by the chain SDK when the draft was made", Required: true},
		&cli.StringFlag{Name: "from", Usage: "Sender address", Required: true},
		&cli.StringFlag{Name: "to", Usage: "Recipient address", Required: true},
		&cli.StringFlag{Name: "memo", Usage: "Transaction memo"},
		&cli.StringFlag{Name: "meta", Usage: "Token specific payload"},
	)

	return &cli.Command{
		Name:        "register",
		Description: "Records an outgoing transaction before it is broadcast.",
		Usage:       "Prints the id of the pending transaction. Do not broadcast when this fails.",
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			amount, err := decimalFlag(c, "amount")
			if err != nil {
				return err
			}

			balance, err := decimalFlag(c, "balance")
			if err != nil {
				return err
			}

			fee, err := optionalDecimalFlag(c, "fee")
			if err != nil {
				return err
			}

			id, err := pt.Register(ctx, pendingtx.Draft{
				ID:                   c.String("id"),
				WalletID:             c.String("wallet"),
				Token:                tokenFromFlags(c),
				Amount:               amount,
				Fee:                  fee,
				SdkBalanceAtCreation: balance,
				FromAddress:          c.String("from"),
				ToAddress:            c.String("to"),
				Meta:                 c.String("meta"),
				Memo:                 optionalStringFlag(c, "memo"),
			})
			if err != nil {
				return err
			}

			return printJSON(c, map[string]string{"id": id})
		},
	}
}

// updatePendingCommand returns a CLI command attaching the broadcast hash.
//
// Usage example:
//
//	walletsync pending update --id p1 --hash 0xabc
func updatePendingCommand(pt pendingtx.Service) *cli.Command {
	return &cli.Command{
		Name:        "update",
		Description: "Attaches the hash produced by a successful broadcast to a pending transaction.",
		Usage:       "Never fails; problems are logged.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Usage: "Pending transaction id", Required: true},
			&cli.StringFlag{Name: "hash", Usage: "Transaction hash", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			pt.UpdateTxID(ctx, c.String("id"), c.String("hash"))
			return nil
		},
	}
}

// failPendingCommand returns a CLI command dropping a transaction whose
// broadcast failed.
//
// Usage example:
//
//	walletsync pending fail --id p1
func failPendingCommand(pt pendingtx.Service) *cli.Command {
	return &cli.Command{
		Name:        "fail",
		Description: "Drops a pending transaction whose broadcast failed.",
		Usage:       "Never fails; problems are logged.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Usage: "Pending transaction id", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			pt.DeleteFailed(ctx, c.String("id"))
			return nil
		},
	}
}

// listPendingCommand returns a CLI command printing the pending transactions
// of a wallet.
func listPendingCommand(pt pendingtx.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "Lists the live pending transactions of a wallet, oldest first.",
		Usage:       "walletsync pending list --wallet w1",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "wallet", Usage: "Wallet id", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			entities, err := pt.ListByWallet(ctx, c.String("wallet"))
			if err != nil {
				return err
			}

			return printJSON(c, map[string][]pendingtx.Entity{"pending": entities})
		},
	}
}

// balancePendingCommand returns a CLI command computing the balance left once
// pending transactions are accounted for.
func balancePendingCommand(pt pendingtx.Service) *cli.Command {
	flags := append(tokenTypeFlags(),
		&cli.StringFlag{Name: "wallet", Usage: "Wallet id", Required: true},
		&cli.StringFlag{Name: "balance", Usage: "Balance currently reported by the chain SDK", Required: true},
	)

	return &cli.Command{
		Name:        "balance",
		Description: "Prints the SDK balance minus what pending transactions still reserve.",
		Usage:       "walletsync pending balance --wallet w1 --coin bitcoin --blockchain bitcoin --decimals 8 --balance 3.25",
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			balance, err := decimalFlag(c, "balance")
			if err != nil {
				return err
			}

			available, err := pt.AvailableBalance(ctx, c.String("wallet"), tokenFromFlags(c), balance)
			if err != nil {
				return err
			}

			return printJSON(c, map[string]string{"available": available.String()})
		},
	}
}

// resolvePendingCommand returns a CLI command removing the pending rows
// superseded by a confirmed chain transaction.
func resolvePendingCommand(pt pendingtx.Service) *cli.Command {
	return &cli.Command{
		Name:        "resolve",
		Description: "Removes the pending transactions superseded by a transaction observed on chain.",
		Usage:       "walletsync pending resolve --wallet w1 --hash 0xabc --from A --to B --amount-atomic 150000000",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "wallet", Usage: "Wallet id", Required: true},
			&cli.StringFlag{Name: "hash", Usage: "Hash of the chain transaction", Required: true},
			&cli.StringFlag{Name: "from", Usage: "Sender address"},
			&cli.StringFlag{Name: "to", Usage: "Recipient address"},
			&cli.StringFlag{Name: "amount-atomic", Usage: "Amount in atomic units", Value: "0"},
			&cli.Uint64Flag{Name: "nonce", Usage: "Account nonce of the transaction"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			amount, err := decimalFlag(c, "amount-atomic")
			if err != nil {
				return err
			}

			tx := pendingtx.ChainTransaction{
				Hash:         c.String("hash"),
				WalletID:     c.String("wallet"),
				FromAddress:  c.String("from"),
				ToAddress:    c.String("to"),
				AmountAtomic: amount,
			}
			if c.IsSet("nonce") {
				nonce := c.Uint64("nonce")
				tx.Nonce = &nonce
			}

			removed, err := pt.ResolveConfirmed(ctx, tx)
			if err != nil {
				return err
			}

			return printJSON(c, map[string][]string{"removed": removed})
		},
	}
}

// sweepPendingCommand returns a CLI command removing expired rows.
func sweepPendingCommand(pt pendingtx.Service) *cli.Command {
	return &cli.Command{
		Name:        "sweep",
		Description: "Removes pending transactions whose expiry has passed.",
		Usage:       "walletsync pending sweep",
		Action: func(ctx context.Context, c *cli.Command) error {
			n, err := pt.SweepExpired(ctx)
			if err != nil {
				return err
			}

			return printJSON(c, map[string]int{"removed": n})
		},
	}
}
