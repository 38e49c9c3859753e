package pendingtx

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrPendingNotFound is returned when no pending row exists for an id.
	ErrPendingNotFound = errors.New("pending transaction not found")

	// ErrPendingExists is returned when a row with the same id is still live.
	ErrPendingExists = errors.New("pending transaction already exists")

	// ErrPrecisionExceeded is returned when an amount has more decimal places
	// than its token can represent.
	ErrPrecisionExceeded = errors.New("amount exceeds token precision")
)

// Token identifies the asset a pending transaction moves.
type Token struct {
	CoinUID        string `validate:"required"`
	BlockchainType string `validate:"required"`
	TokenType      string `validate:"required"` // TokenTypeNative or e.g. "eip20:0xdac1..."
	Decimals       int32  `validate:"gte=0,lte=36"`
}

// Draft describes an outgoing transaction the wallet is about to broadcast.
// Amounts are expressed in token units.
type Draft struct {
	ID                   string // optional; generated when empty
	WalletID             string `validate:"required"`
	Token                Token
	Amount               decimal.Decimal  `validate:"dpos"`
	Fee                  *decimal.Decimal `validate:"omitempty,dnonneg"`
	SdkBalanceAtCreation decimal.Decimal  `validate:"dnonneg"`
	FromAddress          string           `validate:"required"`
	ToAddress            string           `validate:"required"`
	Meta                 string           // token-specific payload, opaque to the registrar
	Memo                 *string
	TxHash               *string
	Nonce                *uint64
	Timestamp            time.Time // defaults to the registration time
}

// Entity is the persisted form of a pending transaction. Amounts are atomic
// (integer) quantities of the token and are persisted as exact decimal strings.
type Entity struct {
	ID                         string
	WalletID                   string
	CoinUID                    string
	BlockchainType             string
	TokenType                  string
	Decimals                   int32
	Meta                       string
	AmountAtomic               decimal.Decimal
	FeeAtomic                  *decimal.Decimal
	SdkBalanceAtCreationAtomic decimal.Decimal
	FromAddress                string
	ToAddress                  string
	TxHash                     *string
	Nonce                      *uint64
	Memo                       *string
	CreatedAt                  time.Time
	ExpiresAt                  time.Time
}

// Token returns the asset of the pending transaction.
func (e Entity) Token() Token {
	return Token{
		CoinUID:        e.CoinUID,
		BlockchainType: e.BlockchainType,
		TokenType:      e.TokenType,
		Decimals:       e.Decimals,
	}
}

// TokenTypeNative marks the chain's own coin, the one fees are paid in.
const TokenTypeNative = "native"

// reservedAtomic is what the transaction takes from the balance of its token.
// The fee only counts for native transfers; token transfers pay it in the
// native coin.
func (e Entity) reservedAtomic() decimal.Decimal {
	if e.FeeAtomic == nil || e.TokenType != TokenTypeNative {
		return e.AmountAtomic
	}

	return e.AmountAtomic.Add(*e.FeeAtomic)
}

// ChainTransaction is a transaction observed on chain by a chain adapter,
// carrying enough identity to supersede a pending row.
type ChainTransaction struct {
	Hash         string
	WalletID     string
	FromAddress  string
	ToAddress    string
	AmountAtomic decimal.Decimal
	Nonce        *uint64
}

// Storage persists pending transactions. Every call is expected to be atomic
// on its own; no multi-call transactions are assumed.
type Storage interface {
	// Save inserts the entity, or returns ErrPendingExists when a live row
	// already has its id.
	Save(ctx context.Context, e Entity) error

	// Get returns the row with the given id or ErrPendingNotFound.
	Get(ctx context.Context, id string) (Entity, error)

	// UpdateTxHash sets the hash of an existing row or returns ErrPendingNotFound.
	UpdateTxHash(ctx context.Context, id, txHash string) error

	// Delete removes the row. Deleting a missing row is not an error.
	Delete(ctx context.Context, id string) error

	// ListByWallet returns the live rows of a wallet ordered by creation time.
	ListByWallet(ctx context.Context, walletID string) ([]Entity, error)

	// DeleteExpired removes rows whose ExpiresAt is not after now.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// toAtomic converts an amount in token units to an integral atomic amount.
func toAtomic(amount decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	atomic := amount.Shift(decimals)
	if !atomic.IsInteger() {
		return decimal.Decimal{}, ErrPrecisionExceeded
	}

	return atomic.Truncate(0), nil
}
