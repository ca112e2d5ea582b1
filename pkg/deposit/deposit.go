// Package deposit holds the request types for crediting deposits and
// withdrawing fees on the settlement chain.
package deposit

import "errors"

var (
	ErrDuplicateTransaction = errors.New("transaction is already indexed")
	ErrNegativeFees         = errors.New("estimated fees must not be negative")
	ErrFeesOutOfRange       = errors.New("estimated fees must be a plain decimal within uint256")
)

// CreditRequest credits a deposit made on SourceChainID to Domain's balance.
type CreditRequest struct {
	Domain        string `json:"domain"`
	SourceChainID uint64 `json:"chainId"`
	TxHash        string `json:"txHash"`
}

// WithdrawRequest withdraws EstimatedFees from Domain's balance. The amount is
// a decimal string; any fractional part is truncated toward zero.
type WithdrawRequest struct {
	Domain        string `json:"domain"`
	EstimatedFees string `json:"estimatedFees"`
}
