// Package claim holds the request and result types of the cross-chain domain claim protocol.
package claim

import (
	"errors"

	"github.com/chainsafe/fusion-middleware/pkg/circuits"
	"github.com/chainsafe/fusion-middleware/pkg/ethereum"
)

// Mode selects the final dispatch of a claim on a target chain.
type Mode string

const (
	// ModeImmediate deploys the identity on the target chain right away.
	ModeImmediate Mode = "immediate"
	// ModeRequest registers a deployment request to be finalized later.
	ModeRequest Mode = "request"
)

var (
	ErrNotBaseChain            = errors.New("chain is not the base chain")
	ErrBaseChainCannotRequest  = errors.New("base chain cannot request")
	ErrBaseChainCannotDeploy   = errors.New("base chain cannot deploy externally")
	ErrBaseChainCannotFinalize = errors.New("base chain cannot finalize")
	ErrDomainAlreadyTaken      = errors.New("domain is already taken")
	ErrDomainNotReservedOnBase = errors.New("domain is not taken on base chain")
	ErrInvalidProof            = errors.New("proof is invalid")
	ErrRequestNotFulfilled     = errors.New("request not fulfilled")
	ErrProofNotBound           = errors.New("server proof is not bound to the claimed domain and chain")
)

// ClaimRequest is a claimant's proof that they control the identity reserved
// for Domain on the base chain.
type ClaimRequest struct {
	Domain  string        `json:"domain"`
	Kind    circuits.Kind `json:"type"`
	Proof   string        `json:"proof"`
	Address string        `json:"address"`
}

// DeployRequest is the body of a deploy call. ForwardRequest is used on the
// base chain, ChainDeployRequest on every other chain.
type DeployRequest struct {
	ForwardRequest     *ethereum.ForwardRequest `json:"forwardRequest,omitempty"`
	ChainDeployRequest *ClaimRequest            `json:"chainDeployRequest,omitempty"`
}

// CrossChainAvailability is the state of a domain on the base and target
// chains, read fresh for every claim.
type CrossChainAvailability struct {
	ReservedOnBase    bool
	AvailableOnTarget bool
}

// Claimable reports whether a claim may proceed to proof verification.
func (a CrossChainAvailability) Claimable() bool {
	return a.ReservedOnBase && a.AvailableOnTarget
}
