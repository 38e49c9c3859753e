// Package postgres implements the swap order store on PostgreSQL.
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// queryTimeout bounds every statement issued by the store.
const queryTimeout = 3 * time.Second

type client struct {
	pool *pgxpool.Pool
}

func (c *client) Close() error {
	c.pool.Close()
	return nil
}

// NewClient opens a connection pool on dsn and checks it with a ping.
func NewClient(ctx context.Context, dsn string) (*client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &client{
		pool: pool,
	}, nil
}

// EnsureSchema creates the swap order table and its indexes when missing.
func (c *client) EnsureSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS swap_orders (
  date BIGINT PRIMARY KEY, -- unix ms, unique per order
  transaction_id TEXT NOT NULL,
  provider TEXT NOT NULL,
  status TEXT NOT NULL,

  coin_uid_in TEXT NOT NULL,
  blockchain_type_in TEXT NOT NULL,
  amount_in NUMERIC NOT NULL,
  address_in TEXT NOT NULL DEFAULT '',

  coin_uid_out TEXT NOT NULL,
  blockchain_type_out TEXT NOT NULL,
  amount_out NUMERIC NOT NULL,
  address_out TEXT NOT NULL DEFAULT '',

  outgoing_record_uid TEXT NULL,
  incoming_record_uid TEXT NULL UNIQUE,
  amount_out_real NUMERIC NULL,
  finished_at BIGINT NULL
);

CREATE INDEX IF NOT EXISTS swap_orders_token_out_idx
  ON swap_orders(coin_uid_out, blockchain_type_out, date DESC)
  WHERE incoming_record_uid IS NULL;

CREATE INDEX IF NOT EXISTS swap_orders_transaction_id_idx ON swap_orders(transaction_id);
`
	_, err := c.pool.Exec(ctx, ddl)
	return err
}
