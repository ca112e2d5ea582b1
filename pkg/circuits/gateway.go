// Package circuits dispatches claimant proof verification to the circuit for
// the proof's kind and wraps the remote circuit runner.
package circuits

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/fusion-middleware/internal/metrics"
)

// Kind tags which circuit a claimant proof was produced for.
type Kind string

const (
	Password  Kind = "password"
	Signature Kind = "signature"
)

var (
	// ErrUnknownKind is returned by ParseKind for anything but "password" or "signature".
	ErrUnknownKind = errors.New("unknown proof type")
	// ErrVerifierUnavailable means the verifier could not be reached; the
	// proof was neither accepted nor rejected.
	ErrVerifierUnavailable = errors.New("proof verifier unavailable")
)

// ParseKind parses the wire name of a proof kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Password, Signature:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Verifier checks one kind of claimant proof. A false result with a nil error
// is a rejection; errors are reserved for infrastructure failures.
type Verifier interface {
	Verify(ctx context.Context, messageHash, referenceHash common.Hash, proof []byte, claimant common.Address) (bool, error)
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(ctx context.Context, messageHash, referenceHash common.Hash, proof []byte, claimant common.Address) (bool, error)

// Verify calls f.
func (f VerifierFunc) Verify(ctx context.Context, messageHash, referenceHash common.Hash, proof []byte, claimant common.Address) (bool, error) {
	return f(ctx, messageHash, referenceHash, proof, claimant)
}

// Gateway holds exactly one verifier per proof kind.
type Gateway struct {
	verifiers map[Kind]Verifier
	logger    *zap.Logger
}

// NewGateway creates a gateway dispatching password and signature proofs.
func NewGateway(password, signature Verifier, logger *zap.Logger) *Gateway {
	return &Gateway{
		verifiers: map[Kind]Verifier{
			Password:  password,
			Signature: signature,
		},
		logger: logger,
	}
}

// Verify runs the verifier registered for kind. Empty proofs, unknown kinds,
// malformed input and verifier panics all yield (false, nil). Only
// ErrVerifierUnavailable is returned as an error.
func (g *Gateway) Verify(
	ctx context.Context,
	kind Kind,
	messageHash, referenceHash common.Hash,
	proof []byte,
	claimant common.Address,
) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("proof verifier panicked", zap.String("kind", string(kind)), zap.Any("panic", r))
			ok, err = false, nil
		}
		metrics.ProofVerifications.WithLabelValues(string(kind), verificationResult(ok, err)).Inc()
	}()

	if len(proof) == 0 {
		return false, nil
	}
	v, found := g.verifiers[kind]
	if !found || v == nil {
		return false, nil
	}

	ok, err = v.Verify(ctx, messageHash, referenceHash, proof, claimant)
	if err != nil {
		if errors.Is(err, ErrVerifierUnavailable) {
			return false, err
		}
		g.logger.Debug("proof rejected by verifier", zap.String("kind", string(kind)), zap.Error(err))
		return false, nil
	}
	return ok, nil
}

func verificationResult(ok bool, err error) string {
	switch {
	case err != nil:
		return "unavailable"
	case ok:
		return "valid"
	default:
		return "invalid"
	}
}
