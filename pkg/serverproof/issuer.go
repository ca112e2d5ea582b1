// Package serverproof derives the server's per-chain hash and issues the
// deployment proofs that authorize server-initiated chain writes.
package serverproof

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/chainsafe/fusion-middleware/internal/metrics"
	"github.com/chainsafe/fusion-middleware/pkg/chain"
	"github.com/chainsafe/fusion-middleware/pkg/circuits"
)

// ErrProofIssuanceFailed is returned when a server proof cannot be produced.
var ErrProofIssuanceFailed = errors.New("server proof issuance failed")

// ChainContext is the view of a target chain needed to issue a proof.
type ChainContext interface {
	Descriptor() chain.Descriptor
	LatestBlockNumber(ctx context.Context) (uint64, error)
}

// Bundle is a server proof bound to one domain on one chain.
type Bundle struct {
	ServerHash [32]byte
	Proof      []byte
	Domain     string
	ChainID    uint64
}

// BoundTo reports whether the bundle authorizes domain on chainID.
func (b *Bundle) BoundTo(domain string, chainID uint64) bool {
	return b != nil && b.Domain == domain && b.ChainID == chainID && len(b.Proof) > 0
}

// Issuer holds the server passcode. The passcode never leaves this type.
type Issuer struct {
	passcode []byte
	hasher   circuits.Hasher
	prover   circuits.Prover
	cache    *lru.Cache[uint64, [32]byte]
	logger   *zap.Logger
}

// NewIssuer creates an issuer. cacheSize bounds the number of derived hashes kept.
func NewIssuer(passcode string, hasher circuits.Hasher, prover circuits.Prover, cacheSize int, logger *zap.Logger) (*Issuer, error) {
	if passcode == "" {
		return nil, errors.New("server passcode is empty")
	}
	if cacheSize <= 0 {
		cacheSize = 64
	}
	cache, err := lru.New[uint64, [32]byte](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create server hash cache: %w", err)
	}
	return &Issuer{
		passcode: []byte(passcode),
		hasher:   hasher,
		prover:   prover,
		cache:    cache,
		logger:   logger,
	}, nil
}

// LoadPasscode reads the server passcode from the named environment variable.
func LoadPasscode(envName string) (string, error) {
	v := os.Getenv(envName)
	if v == "" {
		return "", fmt.Errorf("environment variable %s is not set", envName)
	}
	return v, nil
}

// DeriveServerHash commits the passcode to chainID: Hash(utf8(passcode), pad32(chainID)).
func (i *Issuer) DeriveServerHash(ctx context.Context, chainID uint64) ([32]byte, error) {
	if h, ok := i.cache.Get(chainID); ok {
		return h, nil
	}

	chainBytes := common.LeftPadBytes(new(big.Int).SetUint64(chainID).Bytes(), 32)
	h, err := i.hasher.Hash(ctx, i.passcode, chainBytes)
	if err != nil {
		return [32]byte{}, fmt.Errorf("failed to derive server hash for chain %d: %w", chainID, err)
	}

	i.cache.Add(chainID, h)
	return h, nil
}

// IssueProof produces a deployment proof for domain bound to chainID, using
// the chain's current head and factory as public context.
func (i *Issuer) IssueProof(ctx context.Context, cc ChainContext, domain string, serverHash [32]byte, chainID uint64) (*Bundle, error) {
	label := strconv.FormatUint(chainID, 10)
	bundle, err := i.issue(ctx, cc, domain, serverHash, chainID)
	if err != nil {
		metrics.ServerProofsIssued.WithLabelValues(label, "failed").Inc()
		i.logger.Warn("server proof issuance failed",
			zap.String("domain", domain),
			zap.Uint64("chain_id", chainID),
			zap.Error(err))
		return nil, err
	}
	metrics.ServerProofsIssued.WithLabelValues(label, "ok").Inc()
	return bundle, nil
}

func (i *Issuer) issue(ctx context.Context, cc ChainContext, domain string, serverHash [32]byte, chainID uint64) (*Bundle, error) {
	if domain == "" {
		return nil, fmt.Errorf("%w: empty domain", ErrProofIssuanceFailed)
	}
	if serverHash == ([32]byte{}) {
		return nil, fmt.Errorf("%w: empty server hash", ErrProofIssuanceFailed)
	}
	if cc == nil {
		return nil, fmt.Errorf("%w: no chain context", ErrProofIssuanceFailed)
	}
	desc := cc.Descriptor()
	if desc.ChainID != chainID {
		return nil, fmt.Errorf("%w: chain context is %d, proof requested for %d", ErrProofIssuanceFailed, desc.ChainID, chainID)
	}
	factory, err := desc.Contract(chain.FusionProxyFactory)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProofIssuanceFailed, err)
	}

	block, err := cc.LatestBlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: chain %d unreachable: %w", ErrProofIssuanceFailed, chainID, err)
	}

	proof, err := i.prover.ProveDeploy(ctx, circuits.DeployInput{
		Domain:      domain,
		ServerHash:  serverHash,
		ChainID:     chainID,
		BlockNumber: block,
		Factory:     factory,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProofIssuanceFailed, err)
	}
	if len(proof) == 0 {
		return nil, fmt.Errorf("%w: prover returned an empty proof", ErrProofIssuanceFailed)
	}

	return &Bundle{
		ServerHash: serverHash,
		Proof:      proof,
		Domain:     domain,
		ChainID:    chainID,
	}, nil
}
