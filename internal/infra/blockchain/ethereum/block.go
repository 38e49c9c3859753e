package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/walletsync/internal/chainfeed"
	"github.com/gabapcia/walletsync/internal/pkg/types"
)

type (
	// transactionResponse is the part of an eth_getBlockByNumber transaction
	// the feed uses.
	transactionResponse struct {
		Hash  string    `json:"hash"`
		From  string    `json:"from"`
		To    string    `json:"to"` // null for contract creations
		Value types.Hex `json:"value"`
		Nonce types.Hex `json:"nonce"`
	}

	blockResponse struct {
		Number       types.Hex             `json:"number"`
		Hash         string                `json:"hash"`
		Timestamp    types.Hex             `json:"timestamp"` // unix seconds
		Transactions []transactionResponse `json:"transactions"`
	}
)

func (t transactionResponse) toTransaction() chainfeed.Transaction {
	tx := chainfeed.Transaction{
		Hash:  t.Hash,
		From:  t.From,
		To:    t.To,
		Value: t.Value.Decimal(),
	}

	if t.Nonce != "" {
		nonce := t.Nonce.Big().Uint64()
		tx.Nonce = &nonce
	}

	return tx
}

func (b blockResponse) toBlock() chainfeed.Block {
	transactions := make([]chainfeed.Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		transactions[i] = t.toTransaction()
	}

	return chainfeed.Block{
		Height:       b.Number.Int64(),
		Hash:         b.Hash,
		Timestamp:    b.Timestamp.Int64() * 1000,
		Transactions: transactions,
	}
}

// LatestBlockNumber implements chainfeed.Blockchain.
func (c *client) LatestBlockNumber(ctx context.Context) (int64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var number types.Hex
	if err := json.Unmarshal(data, &number); err != nil {
		return 0, err
	}

	return number.Int64(), nil
}

// BlockByNumber implements chainfeed.Blockchain. Nodes answer null for
// blocks they do not have, which is reported as chainfeed.ErrBlockNotFound.
func (c *client) BlockByNumber(ctx context.Context, height int64) (chainfeed.Block, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", types.HexFromInt64(height), true)
	if err != nil {
		return chainfeed.Block{}, err
	}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return chainfeed.Block{}, fmt.Errorf("%w: %d", chainfeed.ErrBlockNotFound, height)
	}

	var block blockResponse
	if err := json.Unmarshal(data, &block); err != nil {
		return chainfeed.Block{}, fmt.Errorf("decoding block %d: %w", height, err)
	}

	return block.toBlock(), nil
}
