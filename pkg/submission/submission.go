// Package submission journals every transaction the middleware sends.
package submission

import (
	"time"

	"github.com/google/uuid"
)

// Kind names the operation that produced a transaction.
type Kind string

const (
	KindDeployBase     Kind = "deploy_base"
	KindDeployExternal Kind = "deploy_external"
	KindRequest        Kind = "request"
	KindFinalize       Kind = "finalize"
	KindDeposit        Kind = "deposit"
	KindWithdrawFees   Kind = "withdraw_fees"
)

// Status is the last known outcome of a submission.
type Status string

const (
	StatusConfirmed   Status = "confirmed"
	StatusFailed      Status = "failed"
	StatusUnconfirmed Status = "unconfirmed"
)

// Record is one journaled submission.
type Record struct {
	ID        uuid.UUID `json:"id"`
	ChainID   uint64    `json:"chainId"`
	Domain    string    `json:"domain"`
	Kind      Kind      `json:"kind"`
	TxHash    string    `json:"txHash,omitempty"`
	Status    Status    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRecord creates a record with a fresh id and timestamp.
func NewRecord(chainID uint64, domain string, kind Kind, txHash string, status Status, errMsg string) *Record {
	return &Record{
		ID:        uuid.New(),
		ChainID:   chainID,
		Domain:    domain,
		Kind:      kind,
		TxHash:    txHash,
		Status:    status,
		Error:     errMsg,
		CreatedAt: time.Now().UTC(),
	}
}
