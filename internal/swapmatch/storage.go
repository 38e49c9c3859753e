package swapmatch

import (
	"context"

	"github.com/gabapcia/walletsync/internal/swap"

	"github.com/shopspring/decimal"
)

// CandidateQuery selects unclaimed orders whose output leg could have produced
// an incoming transaction.
type CandidateQuery struct {
	CoinUID        string
	BlockchainType string
	Address        string          // output address; empty matches any
	Amount         decimal.Decimal // amount actually received
	Tolerance      decimal.Decimal // relative deviation accepted from the quoted output amount
	From           int64           // inclusive lower bound on the order date, unix ms
	To             int64           // inclusive upper bound on the order date, unix ms
}

// OrderStorage is the part of the swap order store the matcher relies on.
// Each call is atomic on its own.
type OrderStorage interface {
	// GetByIncomingRecordUID returns the order already bound to uid, or
	// swap.ErrOrderNotFound.
	GetByIncomingRecordUID(ctx context.Context, uid string) (swap.Order, error)

	// FindUnclaimedByTokenOut returns the unclaimed orders matching q, closest
	// quoted amount first and, among equally close ones, oldest first.
	FindUnclaimedByTokenOut(ctx context.Context, q CandidateQuery) ([]swap.Order, error)

	// GetLatestUnclaimedByTokenOut returns the most recent unclaimed order for
	// the output token created within [from, to], or swap.ErrOrderNotFound.
	GetLatestUnclaimedByTokenOut(ctx context.Context, coinUID, blockchainType string, from, to int64) (swap.Order, error)

	// ClaimIncoming binds uid to the order only if it is still unclaimed,
	// setting AmountOutReal when amountOutReal is not nil. It returns
	// swap.ErrAlreadyClaimed when another transaction got there first and
	// swap.ErrOrderNotFound when the order does not exist.
	ClaimIncoming(ctx context.Context, date int64, uid string, amountOutReal *decimal.Decimal) error
}
