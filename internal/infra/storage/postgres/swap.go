package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/walletsync/internal/swap"
	"github.com/gabapcia/walletsync/internal/swapmatch"
	"github.com/gabapcia/walletsync/internal/swapstatus"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// orderColumns lists the selected columns in the order scanOrder expects.
// Amounts are read as text to keep them exact.
const orderColumns = `
  date, transaction_id, provider, status,
  coin_uid_in, blockchain_type_in, amount_in::text, address_in,
  coin_uid_out, blockchain_type_out, amount_out::text, address_out,
  outgoing_record_uid, incoming_record_uid, amount_out_real::text, finished_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (swap.Order, error) {
	var (
		o                   swap.Order
		provider, status    string
		amountIn, amountOut string
		amountOutReal       *string
	)

	err := row.Scan(
		&o.Date, &o.TransactionID, &provider, &status,
		&o.In.CoinUID, &o.In.BlockchainType, &amountIn, &o.In.Address,
		&o.Out.CoinUID, &o.Out.BlockchainType, &amountOut, &o.Out.Address,
		&o.OutgoingRecordUID, &o.IncomingRecordUID, &amountOutReal, &o.FinishedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return swap.Order{}, swap.ErrOrderNotFound
	}
	if err != nil {
		return swap.Order{}, err
	}

	o.Provider = swap.Provider(provider)
	o.Status = swap.Status(status)

	if o.In.Amount, err = decimal.NewFromString(amountIn); err != nil {
		return swap.Order{}, fmt.Errorf("decoding amount_in of order %d: %w", o.Date, err)
	}
	if o.Out.Amount, err = decimal.NewFromString(amountOut); err != nil {
		return swap.Order{}, fmt.Errorf("decoding amount_out of order %d: %w", o.Date, err)
	}
	if amountOutReal != nil {
		settled, err := decimal.NewFromString(*amountOutReal)
		if err != nil {
			return swap.Order{}, fmt.Errorf("decoding amount_out_real of order %d: %w", o.Date, err)
		}
		o.AmountOutReal = &settled
	}

	return o, nil
}

func (c *client) queryOrders(ctx context.Context, q string, args ...any) ([]swap.Order, error) {
	rows, err := c.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []swap.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// decimalArg passes an optional decimal as an exact numeric literal.
func decimalArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}

	return d.String()
}

// Save implements swapstatus.OrderStorage.
func (c *client) Save(ctx context.Context, o swap.Order) error {
	cctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := `
INSERT INTO swap_orders(
  date, transaction_id, provider, status,
  coin_uid_in, blockchain_type_in, amount_in, address_in,
  coin_uid_out, blockchain_type_out, amount_out, address_out,
  outgoing_record_uid, incoming_record_uid, amount_out_real, finished_at
) VALUES (
  $1, $2, $3, $4,
  $5, $6, $7::numeric, $8,
  $9, $10, $11::numeric, $12,
  $13, $14, $15::numeric, $16
)
ON CONFLICT(date) DO NOTHING
`
	tag, err := c.pool.Exec(cctx, q,
		o.Date, o.TransactionID, string(o.Provider), string(o.Status),
		o.In.CoinUID, o.In.BlockchainType, o.In.Amount.String(), o.In.Address,
		o.Out.CoinUID, o.Out.BlockchainType, o.Out.Amount.String(), o.Out.Address,
		o.OutgoingRecordUID, o.IncomingRecordUID, decimalArg(o.AmountOutReal), o.FinishedAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return swap.ErrDuplicateOrder
	}

	return nil
}

// GetByIncomingRecordUID implements swapmatch.OrderStorage.
func (c *client) GetByIncomingRecordUID(ctx context.Context, uid string) (swap.Order, error) {
	cctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := `SELECT` + orderColumns + ` FROM swap_orders WHERE incoming_record_uid = $1`
	return scanOrder(c.pool.QueryRow(cctx, q, uid))
}

// FindUnclaimedByTokenOut implements swapmatch.OrderStorage.
func (c *client) FindUnclaimedByTokenOut(ctx context.Context, cq swapmatch.CandidateQuery) ([]swap.Order, error) {
	cctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := `SELECT` + orderColumns + `
FROM swap_orders
WHERE incoming_record_uid IS NULL
  AND coin_uid_out = $1
  AND blockchain_type_out = $2
  AND date BETWEEN $3 AND $4
  AND ($5::text = '' OR lower(address_out) = lower($5::text))
  AND abs(amount_out - $6::numeric) <= amount_out * $7::numeric
ORDER BY abs(amount_out - $6::numeric) ASC, date ASC
`
	return c.queryOrders(cctx, q,
		cq.CoinUID, cq.BlockchainType, cq.From, cq.To,
		cq.Address, cq.Amount.String(), cq.Tolerance.String(),
	)
}

// GetLatestUnclaimedByTokenOut implements swapmatch.OrderStorage.
func (c *client) GetLatestUnclaimedByTokenOut(ctx context.Context, coinUID, blockchainType string, from, to int64) (swap.Order, error) {
	cctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := `SELECT` + orderColumns + `
FROM swap_orders
WHERE incoming_record_uid IS NULL
  AND coin_uid_out = $1
  AND blockchain_type_out = $2
  AND date BETWEEN $3 AND $4
ORDER BY date DESC
LIMIT 1
`
	return scanOrder(c.pool.QueryRow(cctx, q, coinUID, blockchainType, from, to))
}

// ClaimIncoming implements swapmatch.OrderStorage. The update only applies
// while incoming_record_uid is NULL, which makes concurrent claims of the
// same order resolve to a single winner.
func (c *client) ClaimIncoming(ctx context.Context, date int64, uid string, amountOutReal *decimal.Decimal) error {
	cctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := c.pool.Exec(cctx, `
UPDATE swap_orders
SET incoming_record_uid = $2,
    amount_out_real = COALESCE($3::numeric, amount_out_real)
WHERE date = $1 AND incoming_record_uid IS NULL
`, date, uid, decimalArg(amountOutReal))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := c.pool.QueryRow(cctx, `SELECT EXISTS(SELECT 1 FROM swap_orders WHERE date = $1)`, date).Scan(&exists); err != nil {
		return err
	}

	if !exists {
		return swap.ErrOrderNotFound
	}

	return swap.ErrAlreadyClaimed
}

// ListActive implements swapstatus.OrderStorage.
func (c *client) ListActive(ctx context.Context, token swap.Token, address string, excluded []swap.Status, limit int) ([]swap.Order, error) {
	if limit <= 0 {
		limit = swapstatus.DefaultBatchSize
	}

	cctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	statuses := make([]string, len(excluded))
	for i, s := range excluded {
		statuses[i] = string(s)
	}

	q := `SELECT` + orderColumns + `
FROM swap_orders
WHERE NOT (lower(status) = ANY($4::text[]))
  AND (
    (coin_uid_in = $1 AND blockchain_type_in = $2 AND lower(address_in) = lower($3))
    OR
    (coin_uid_out = $1 AND blockchain_type_out = $2 AND lower(address_out) = lower($3))
  )
ORDER BY date DESC
LIMIT $5
`
	return c.queryOrders(cctx, q, token.CoinUID, token.BlockchainType, address, statuses, limit)
}

// GetByTransactionID implements swapstatus.OrderStorage.
func (c *client) GetByTransactionID(ctx context.Context, transactionID string) (swap.Order, error) {
	cctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := `SELECT` + orderColumns + `
FROM swap_orders
WHERE transaction_id = $1
ORDER BY date DESC
LIMIT 1
`
	return scanOrder(c.pool.QueryRow(cctx, q, transactionID))
}

// UpdateStatus implements swapstatus.OrderStorage.
func (c *client) UpdateStatus(ctx context.Context, date int64, status swap.Status, finishedAt *int64) error {
	cctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := c.pool.Exec(cctx, `
UPDATE swap_orders
SET status = $2,
    finished_at = COALESCE($3, finished_at)
WHERE date = $1
`, date, string(status), finishedAt)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return swap.ErrOrderNotFound
	}

	return nil
}

// Compile-time assertions to ensure client implements both order storages.
var (
	_ swapmatch.OrderStorage  = new(client)
	_ swapstatus.OrderStorage = new(client)
)
