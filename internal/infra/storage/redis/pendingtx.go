package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/walletsync/internal/pendingtx"

	redis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// pendingKeyPrefix is the namespace of every pending transaction key.
const pendingKeyPrefix = "pendingtx"

// pendingEntryKey is the hash holding one pending row.
//
// Format: "pendingtx:entry:{id}"
func pendingEntryKey(id string) string {
	return fmt.Sprintf("%s:entry:%s", pendingKeyPrefix, id)
}

// pendingWalletKey is the sorted set of the row ids of a wallet, scored by
// creation time.
//
// Format: "pendingtx:wallet:{walletID}"
func pendingWalletKey(walletID string) string {
	return fmt.Sprintf("%s:wallet:%s", pendingKeyPrefix, walletID)
}

// pendingExpiryKey is the sorted set of every row id, scored by expiration
// time. Redis expires the hashes on its own; the set lets DeleteExpired
// report and clean up what is due.
const pendingExpiryKey = pendingKeyPrefix + ":expiry"

// Hash fields of a pending row.
const (
	fieldID                   = "id"
	fieldWalletID             = "wallet_id"
	fieldCoinUID              = "coin_uid"
	fieldBlockchainType       = "blockchain_type"
	fieldTokenType            = "token_type"
	fieldDecimals             = "decimals"
	fieldMeta                 = "meta"
	fieldAmountAtomic         = "amount_atomic"
	fieldFeeAtomic            = "fee_atomic"
	fieldSdkBalanceAtCreation = "sdk_balance_at_creation_atomic"
	fieldFromAddress          = "from_address"
	fieldToAddress            = "to_address"
	fieldTxHash               = "tx_hash"
	fieldNonce                = "nonce"
	fieldMemo                 = "memo"
	fieldCreatedAt            = "created_at"
	fieldExpiresAt            = "expires_at"
)

// updateTxHashScript sets the hash of a row only if the row still exists, so
// an update racing with expiration never resurrects a partial row.
var updateTxHashScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return 0
end
redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
return 1
`)

// insertPendingScript writes a row and its index entries unless a row with
// the same id is still live.
//
// KEYS: entry, wallet index, expiry index.
// ARGV: expires at (ms), created at (ms), id, then field/value pairs.
var insertPendingScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return 0
end
redis.call("HSET", KEYS[1], unpack(ARGV, 4))
redis.call("PEXPIREAT", KEYS[1], ARGV[1])
redis.call("ZADD", KEYS[2], ARGV[2], ARGV[3])
redis.call("ZADD", KEYS[3], ARGV[1], ARGV[3])
return 1
`)

// encodePending flattens an entity into hash fields. Optional fields are
// omitted when nil; amounts are exact decimal strings.
func encodePending(e pendingtx.Entity) map[string]any {
	fields := map[string]any{
		fieldID:                   e.ID,
		fieldWalletID:             e.WalletID,
		fieldCoinUID:              e.CoinUID,
		fieldBlockchainType:       e.BlockchainType,
		fieldTokenType:            e.TokenType,
		fieldDecimals:             strconv.FormatInt(int64(e.Decimals), 10),
		fieldMeta:                 e.Meta,
		fieldAmountAtomic:         e.AmountAtomic.String(),
		fieldSdkBalanceAtCreation: e.SdkBalanceAtCreationAtomic.String(),
		fieldFromAddress:          e.FromAddress,
		fieldToAddress:            e.ToAddress,
		fieldCreatedAt:            e.CreatedAt.UTC().Format(time.RFC3339Nano),
		fieldExpiresAt:            e.ExpiresAt.UTC().Format(time.RFC3339Nano),
	}

	if e.FeeAtomic != nil {
		fields[fieldFeeAtomic] = e.FeeAtomic.String()
	}
	if e.TxHash != nil {
		fields[fieldTxHash] = *e.TxHash
	}
	if e.Nonce != nil {
		fields[fieldNonce] = strconv.FormatUint(*e.Nonce, 10)
	}
	if e.Memo != nil {
		fields[fieldMemo] = *e.Memo
	}

	return fields
}

// decodePending rebuilds an entity from its hash fields.
func decodePending(fields map[string]string) (pendingtx.Entity, error) {
	var (
		e   pendingtx.Entity
		err error
	)

	e.ID = fields[fieldID]
	e.WalletID = fields[fieldWalletID]
	e.CoinUID = fields[fieldCoinUID]
	e.BlockchainType = fields[fieldBlockchainType]
	e.TokenType = fields[fieldTokenType]
	e.Meta = fields[fieldMeta]
	e.FromAddress = fields[fieldFromAddress]
	e.ToAddress = fields[fieldToAddress]

	decimals, err := strconv.ParseInt(fields[fieldDecimals], 10, 32)
	if err != nil {
		return pendingtx.Entity{}, fmt.Errorf("decoding %s: %w", fieldDecimals, err)
	}
	e.Decimals = int32(decimals)

	if e.AmountAtomic, err = decimal.NewFromString(fields[fieldAmountAtomic]); err != nil {
		return pendingtx.Entity{}, fmt.Errorf("decoding %s: %w", fieldAmountAtomic, err)
	}
	if e.SdkBalanceAtCreationAtomic, err = decimal.NewFromString(fields[fieldSdkBalanceAtCreation]); err != nil {
		return pendingtx.Entity{}, fmt.Errorf("decoding %s: %w", fieldSdkBalanceAtCreation, err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, fields[fieldCreatedAt]); err != nil {
		return pendingtx.Entity{}, fmt.Errorf("decoding %s: %w", fieldCreatedAt, err)
	}
	if e.ExpiresAt, err = time.Parse(time.RFC3339Nano, fields[fieldExpiresAt]); err != nil {
		return pendingtx.Entity{}, fmt.Errorf("decoding %s: %w", fieldExpiresAt, err)
	}

	if v, ok := fields[fieldFeeAtomic]; ok {
		fee, err := decimal.NewFromString(v)
		if err != nil {
			return pendingtx.Entity{}, fmt.Errorf("decoding %s: %w", fieldFeeAtomic, err)
		}
		e.FeeAtomic = &fee
	}
	if v, ok := fields[fieldTxHash]; ok {
		e.TxHash = &v
	}
	if v, ok := fields[fieldNonce]; ok {
		nonce, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return pendingtx.Entity{}, fmt.Errorf("decoding %s: %w", fieldNonce, err)
		}
		e.Nonce = &nonce
	}
	if v, ok := fields[fieldMemo]; ok {
		e.Memo = &v
	}

	return e, nil
}

// Save implements pendingtx.Storage. The row expires in Redis at e.ExpiresAt.
func (c *client) Save(ctx context.Context, e pendingtx.Entity) error {
	fields := encodePending(e)

	args := make([]any, 0, 3+2*len(fields))
	args = append(args, e.ExpiresAt.UnixMilli(), e.CreatedAt.UnixMilli(), e.ID)
	for k, v := range fields {
		args = append(args, k, v)
	}

	keys := []string{pendingEntryKey(e.ID), pendingWalletKey(e.WalletID), pendingExpiryKey}

	inserted, err := insertPendingScript.Run(ctx, c.conn, keys, args...).Int()
	if err != nil {
		return err
	}

	if inserted == 0 {
		return pendingtx.ErrPendingExists
	}

	return nil
}

// Get implements pendingtx.Storage.
func (c *client) Get(ctx context.Context, id string) (pendingtx.Entity, error) {
	fields, err := c.conn.HGetAll(ctx, pendingEntryKey(id)).Result()
	if err != nil {
		return pendingtx.Entity{}, err
	}

	if len(fields) == 0 {
		return pendingtx.Entity{}, pendingtx.ErrPendingNotFound
	}

	return decodePending(fields)
}

// UpdateTxHash implements pendingtx.Storage.
func (c *client) UpdateTxHash(ctx context.Context, id, txHash string) error {
	updated, err := updateTxHashScript.Run(ctx, c.conn, []string{pendingEntryKey(id)}, fieldTxHash, txHash).Int()
	if err != nil {
		return err
	}

	if updated == 0 {
		return pendingtx.ErrPendingNotFound
	}

	return nil
}

// Delete implements pendingtx.Storage.
func (c *client) Delete(ctx context.Context, id string) error {
	key := pendingEntryKey(id)

	walletID, err := c.conn.HGet(ctx, key, fieldWalletID).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.ZRem(ctx, pendingExpiryKey, id)
		if walletID != "" {
			pipe.ZRem(ctx, pendingWalletKey(walletID), id)
		}
		return nil
	})

	return err
}

// ListByWallet implements pendingtx.Storage. Index entries whose row has
// already expired are dropped along the way.
func (c *client) ListByWallet(ctx context.Context, walletID string) ([]pendingtx.Entity, error) {
	indexKey := pendingWalletKey(walletID)

	ids, err := c.conn.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, nil
	}

	cmds, err := c.conn.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			pipe.HGetAll(ctx, pendingEntryKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var (
		entities = make([]pendingtx.Entity, 0, len(ids))
		stale    []any
	)
	for i, cmd := range cmds {
		fields, err := cmd.(*redis.MapStringStringCmd).Result()
		if err != nil {
			return nil, err
		}

		if len(fields) == 0 {
			stale = append(stale, ids[i])
			continue
		}

		e, err := decodePending(fields)
		if err != nil {
			return nil, fmt.Errorf("pending transaction %s: %w", ids[i], err)
		}
		entities = append(entities, e)
	}

	if len(stale) > 0 {
		if err := c.conn.ZRem(ctx, indexKey, stale...).Err(); err != nil {
			return nil, err
		}
	}

	return entities, nil
}

// DeleteExpired implements pendingtx.Storage.
func (c *client) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	ids, err := c.conn.ZRangeByScore(ctx, pendingExpiryKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, nil
	}

	members := make([]any, len(ids))
	keys := make([]string, len(ids))
	for i, id := range ids {
		members[i] = id
		keys[i] = pendingEntryKey(id)
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.ZRem(ctx, pendingExpiryKey, members...)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(ids), nil
}

// Compile-time assertion to ensure client implements pendingtx.Storage.
var _ pendingtx.Storage = new(client)
