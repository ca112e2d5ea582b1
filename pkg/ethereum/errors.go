package ethereum

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrChainCallFailed wraps any RPC or transaction failure.
	ErrChainCallFailed = errors.New("chain call failed")
	// ErrChainCallTimeout is returned when a call or receipt wait exceeds its bound.
	// A timed out transaction must not be assumed to have committed.
	ErrChainCallTimeout = errors.New("chain call timed out")
	// ErrTransactionReverted is returned for mined transactions with a failed status.
	ErrTransactionReverted = errors.New("transaction reverted")
	// ErrIdentityNotFound is returned when no identity contract is deployed for a domain.
	ErrIdentityNotFound = errors.New("fusion not found")
	// ErrIndexerNotFound is returned when the indexer proxy for a source chain resolves to the zero address.
	ErrIndexerNotFound = errors.New("indexer not found")
)

// TxError carries the hash of a transaction that was sent but whose outcome
// could not be confirmed.
type TxError struct {
	TxHash common.Hash
	Err    error
}

func (e *TxError) Error() string {
	return fmt.Sprintf("tx %s: %v", e.TxHash.Hex(), e.Err)
}

func (e *TxError) Unwrap() error {
	return e.Err
}

// chainError classifies err as a timeout or a generic chain failure.
func chainError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", ErrChainCallTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrChainCallFailed, op, err)
}
