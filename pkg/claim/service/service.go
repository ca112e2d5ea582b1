package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/fusion-middleware/internal/metrics"
	apperrors "github.com/chainsafe/fusion-middleware/pkg/app/errors"
	"github.com/chainsafe/fusion-middleware/pkg/chain"
	"github.com/chainsafe/fusion-middleware/pkg/circuits"
	"github.com/chainsafe/fusion-middleware/pkg/claim"
	"github.com/chainsafe/fusion-middleware/pkg/ethereum"
	"github.com/chainsafe/fusion-middleware/pkg/keylock"
	"github.com/chainsafe/fusion-middleware/pkg/serverproof"
	"github.com/chainsafe/fusion-middleware/pkg/submission"
)

// identityChallenge is the message a deployed identity signs to prove control.
const identityChallenge = "DEPLOY_REQUEST"

// ChainClient is the view of one chain the coordinator reads from and submits to.
//
//go:generate mockery --name ChainClient --output mocks --outpkg mocks --filename mock_chain_client.go --with-expecter
type ChainClient interface {
	Descriptor() chain.Descriptor
	LatestBlockNumber(ctx context.Context) (uint64, error)
	IsDomainTaken(ctx context.Context, domain string) (bool, error)
	GetFusionProxy(ctx context.Context, domain string) (common.Address, error)
	PredictProxyAddress(ctx context.Context, domain string) (common.Address, error)
	Reservation(ctx context.Context, domain string) (*ethereum.Reservation, error)
	IsValidSignature(ctx context.Context, identity common.Address, hash common.Hash, signature []byte) (bool, error)
	IsRequestFulfilled(ctx context.Context, domain string) (bool, error)
	ExecuteForwardRequest(ctx context.Context, req *ethereum.ForwardRequest) (*ethereum.Receipt, error)
	DeployExternal(ctx context.Context, domain string, serverHash [32]byte, serverProof []byte) (*ethereum.Receipt, error)
	RequestProxy(ctx context.Context, domain string, serverHash [32]byte, serverProof []byte) (*ethereum.Receipt, error)
	FinalizeProxyWithRequest(ctx context.Context, domain string) (*ethereum.Receipt, error)
}

// Clients resolves the client of a configured chain.
type Clients interface {
	Client(chainID uint64) (ChainClient, error)
}

// ProofVerifier checks a claimant proof of the given kind. *circuits.Gateway satisfies it.
//
//go:generate mockery --name ProofVerifier --output mocks --outpkg mocks --filename mock_proof_verifier.go --with-expecter
type ProofVerifier interface {
	Verify(
		ctx context.Context,
		kind circuits.Kind,
		messageHash, referenceHash common.Hash,
		proof []byte,
		claimant common.Address,
	) (bool, error)
}

// ServerProofIssuer derives server hashes and issues server proofs. *serverproof.Issuer satisfies it.
//
//go:generate mockery --name ServerProofIssuer --output mocks --outpkg mocks --filename mock_server_proof_issuer.go --with-expecter
type ServerProofIssuer interface {
	DeriveServerHash(ctx context.Context, chainID uint64) ([32]byte, error)
	IssueProof(
		ctx context.Context,
		cc serverproof.ChainContext,
		domain string,
		serverHash [32]byte,
		chainID uint64,
	) (*serverproof.Bundle, error)
}

// Journal records submitted transactions. submission.Store satisfies it.
//
//go:generate mockery --name Journal --output mocks --outpkg mocks --filename mock_journal.go --with-expecter
type Journal interface {
	Record(ctx context.Context, rec *submission.Record) error
}

// Service defines the interface for the domain claim coordinator
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Deploy(ctx context.Context, chainID uint64, req *claim.DeployRequest) (*ethereum.Receipt, error)
	DeployOnBase(ctx context.Context, chainID uint64, req *ethereum.ForwardRequest) (*ethereum.Receipt, error)
	ClaimOnTarget(ctx context.Context, chainID uint64, req *claim.ClaimRequest, mode claim.Mode) (*ethereum.Receipt, error)
	Finalize(ctx context.Context, chainID uint64, domain string) (*ethereum.Receipt, error)
	GetServerHash(ctx context.Context, chainID uint64) (string, error)
	ResolveDeployAddress(ctx context.Context, domain string) (common.Address, error)
	VerifyIdentitySignature(ctx context.Context, domain, proof string) (bool, error)
}

type coordinator struct {
	registry *chain.Registry
	clients  Clients
	verifier ProofVerifier
	issuer   ServerProofIssuer
	journal  Journal
	locks    *keylock.Locker
	logger   *zap.Logger
}

// NewService creates a new claim coordinator. journal may be nil.
func NewService(
	registry *chain.Registry,
	clients Clients,
	verifier ProofVerifier,
	issuer ServerProofIssuer,
	journal Journal,
	logger *zap.Logger,
) Service {
	return &coordinator{
		registry: registry,
		clients:  clients,
		verifier: verifier,
		issuer:   issuer,
		journal:  journal,
		locks:    keylock.New(),
		logger:   logger,
	}
}

// Deploy routes a deploy call by chain role: the base chain takes a forward
// request, any other chain an immediate claim.
func (s *coordinator) Deploy(ctx context.Context, chainID uint64, req *claim.DeployRequest) (*ethereum.Receipt, error) {
	if chainID == 0 {
		return nil, apperrors.BadRequestError(nil, "chainId is required")
	}
	desc, err := s.resolve(chainID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &claim.DeployRequest{}
	}

	if desc.IsBase {
		if req.ForwardRequest == nil {
			return nil, apperrors.BadRequestError(nil, "forwardRequest is required")
		}
		return s.DeployOnBase(ctx, chainID, req.ForwardRequest)
	}

	if req.ChainDeployRequest == nil {
		return nil, apperrors.BadRequestError(nil, "chainDeployRequest is required")
	}
	return s.ClaimOnTarget(ctx, chainID, req.ChainDeployRequest, claim.ModeImmediate)
}

// DeployOnBase relays a signed forward request to the base chain forwarder.
// The base chain's contracts are authoritative, so no proof is checked here.
func (s *coordinator) DeployOnBase(ctx context.Context, chainID uint64, req *ethereum.ForwardRequest) (*ethereum.Receipt, error) {
	desc, err := s.resolve(chainID)
	if err != nil {
		return nil, err
	}
	if !desc.IsBase {
		return nil, apperrors.BadRequestError(claim.ErrNotBaseChain, "Chain is not the base chain")
	}
	if req == nil {
		return nil, apperrors.BadRequestError(nil, "forwardRequest is required")
	}

	client, err := s.client(chainID)
	if err != nil {
		return nil, err
	}

	receipt, err := client.ExecuteForwardRequest(ctx, req)
	s.record(ctx, chainID, "", submission.KindDeployBase, receipt, err)
	if err != nil {
		return nil, chainFailure(err)
	}
	return receipt, nil
}

// ClaimOnTarget runs the cross-chain claim of req.Domain on a non-base chain.
// Everything from the availability checks through dispatch happens while
// holding the (chainID, domain) lock.
func (s *coordinator) ClaimOnTarget(
	ctx context.Context,
	chainID uint64,
	req *claim.ClaimRequest,
	mode claim.Mode,
) (receipt *ethereum.Receipt, err error) {
	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "failed"
		}
		metrics.ClaimsTotal.WithLabelValues(strconv.FormatUint(chainID, 10), string(mode), status).Inc()
		metrics.ClaimDuration.WithLabelValues(string(mode)).Observe(time.Since(start).Seconds())
	}()

	if chainID == 0 {
		return nil, apperrors.BadRequestError(nil, "chainId is required")
	}
	if req == nil {
		return nil, apperrors.BadRequestError(nil, "chainDeployRequest is required")
	}
	kind, claimant, err := validateClaim(req)
	if err != nil {
		return nil, err
	}
	if mode != claim.ModeImmediate && mode != claim.ModeRequest {
		return nil, apperrors.NotSupportedError(nil, fmt.Sprintf("unknown claim mode %q", mode))
	}

	desc, err := s.resolve(chainID)
	if err != nil {
		return nil, err
	}
	if desc.IsBase {
		if mode == claim.ModeRequest {
			return nil, apperrors.BadRequestError(claim.ErrBaseChainCannotRequest, "Base chain cannot request")
		}
		return nil, apperrors.BadRequestError(claim.ErrBaseChainCannotDeploy, "Base chain cannot deploy externally")
	}

	target, err := s.client(chainID)
	if err != nil {
		return nil, err
	}
	base, err := s.baseClient()
	if err != nil {
		return nil, err
	}

	unlock, err := s.locks.Lock(ctx, keylock.Key(chainID, req.Domain))
	if err != nil {
		return nil, apperrors.TimeoutError(err, "Timed out waiting for a concurrent claim on this domain")
	}
	defer unlock()

	avail, err := s.availability(ctx, target, base, req.Domain)
	if err != nil {
		return nil, chainFailure(err)
	}
	if !avail.Claimable() {
		if !avail.AvailableOnTarget {
			return nil, apperrors.ConflictError(claim.ErrDomainAlreadyTaken, "Domain is already taken")
		}
		return nil, apperrors.ConflictError(claim.ErrDomainNotReservedOnBase, "Domain is not taken on base chain")
	}

	reservation, err := base.Reservation(ctx, req.Domain)
	if err != nil {
		if errors.Is(err, ethereum.ErrIdentityNotFound) {
			return nil, apperrors.ConflictError(claim.ErrDomainNotReservedOnBase, "Domain is not taken on base chain")
		}
		return nil, chainFailure(err)
	}
	messageHash, err := MessageHash(req.Domain, reservation.Nonce)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	proof, err := decodeHex(req.Proof)
	if err != nil {
		return nil, apperrors.UnAuthorizedError(fmt.Errorf("%w: %w", claim.ErrInvalidProof, err), "Proof is invalid")
	}
	ok, err := s.verifier.Verify(ctx, kind, messageHash, reservation.ReferenceHash, proof, claimant)
	if err != nil {
		return nil, apperrors.DependencyError(err, "Proof verifier unavailable")
	}
	if !ok {
		return nil, apperrors.UnAuthorizedError(claim.ErrInvalidProof, "Proof is invalid")
	}

	serverHash, err := s.issuer.DeriveServerHash(ctx, chainID)
	if err != nil {
		return nil, apperrors.DependencyError(err, "Failed to derive server hash")
	}
	bundle, err := s.issuer.IssueProof(ctx, target, req.Domain, serverHash, chainID)
	if err != nil {
		return nil, apperrors.DependencyError(err, "Failed to issue server proof")
	}
	if !bundle.BoundTo(req.Domain, chainID) {
		return nil, apperrors.GeneralError(claim.ErrProofNotBound)
	}

	var kindLabel submission.Kind
	switch mode {
	case claim.ModeRequest:
		kindLabel = submission.KindRequest
		receipt, err = target.RequestProxy(ctx, req.Domain, bundle.ServerHash, bundle.Proof)
	default:
		kindLabel = submission.KindDeployExternal
		receipt, err = target.DeployExternal(ctx, req.Domain, bundle.ServerHash, bundle.Proof)
	}
	s.record(ctx, chainID, req.Domain, kindLabel, receipt, err)
	if err != nil {
		return nil, chainFailure(err)
	}
	return receipt, nil
}

// Finalize completes a fulfilled request on a non-base chain. Calls are not
// deduplicated; callers must not resubmit after obtaining a receipt.
func (s *coordinator) Finalize(ctx context.Context, chainID uint64, domain string) (*ethereum.Receipt, error) {
	if chainID == 0 {
		return nil, apperrors.BadRequestError(nil, "chainId is required")
	}
	if strings.TrimSpace(domain) == "" {
		return nil, apperrors.BadRequestError(nil, "domain is required")
	}

	desc, err := s.resolve(chainID)
	if err != nil {
		return nil, err
	}
	if desc.IsBase {
		return nil, apperrors.BadRequestError(claim.ErrBaseChainCannotFinalize, "Base chain cannot finalize")
	}
	client, err := s.client(chainID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locks.Lock(ctx, keylock.Key(chainID, domain))
	if err != nil {
		return nil, apperrors.TimeoutError(err, "Timed out waiting for a concurrent claim on this domain")
	}
	defer unlock()

	fulfilled, err := client.IsRequestFulfilled(ctx, domain)
	if err != nil {
		return nil, chainFailure(err)
	}
	if !fulfilled {
		return nil, apperrors.ConflictError(claim.ErrRequestNotFulfilled, "Request not fulfilled")
	}

	receipt, err := client.FinalizeProxyWithRequest(ctx, domain)
	s.record(ctx, chainID, domain, submission.KindFinalize, receipt, err)
	if err != nil {
		return nil, chainFailure(err)
	}
	return receipt, nil
}

// GetServerHash returns the hex encoded server hash for chainID. The chain
// does not need to be configured.
func (s *coordinator) GetServerHash(ctx context.Context, chainID uint64) (string, error) {
	if chainID == 0 {
		return "", apperrors.BadRequestError(nil, "chainId is required")
	}
	hash, err := s.issuer.DeriveServerHash(ctx, chainID)
	if err != nil {
		return "", apperrors.DependencyError(err, "Failed to derive server hash")
	}
	return hexutil.Encode(hash[:]), nil
}

// ResolveDeployAddress predicts the base chain identity address for domain.
func (s *coordinator) ResolveDeployAddress(ctx context.Context, domain string) (common.Address, error) {
	if strings.TrimSpace(domain) == "" {
		return common.Address{}, apperrors.BadRequestError(nil, "domain is required")
	}
	base, err := s.baseClient()
	if err != nil {
		return common.Address{}, err
	}
	addr, err := base.PredictProxyAddress(ctx, domain)
	if err != nil {
		return common.Address{}, chainFailure(err)
	}
	return addr, nil
}

// VerifyIdentitySignature asks the identity deployed for domain on the base
// chain whether proof is its signature over the identity challenge (EIP-1271).
func (s *coordinator) VerifyIdentitySignature(ctx context.Context, domain, proof string) (bool, error) {
	if strings.TrimSpace(domain) == "" {
		return false, apperrors.BadRequestError(nil, "domain is required")
	}
	if proof == "" {
		return false, apperrors.BadRequestError(nil, "proof is required")
	}
	signature, err := decodeHex(proof)
	if err != nil {
		return false, apperrors.BadRequestError(err, "proof must be hex encoded")
	}

	base, err := s.baseClient()
	if err != nil {
		return false, err
	}
	identity, err := base.GetFusionProxy(ctx, domain)
	if err != nil {
		return false, chainFailure(err)
	}
	if identity == (common.Address{}) {
		return false, apperrors.ResourceNotFoundError(ethereum.ErrIdentityNotFound, "Fusion not found")
	}

	hash := common.BytesToHash(accounts.TextHash([]byte(identityChallenge)))
	valid, err := base.IsValidSignature(ctx, identity, hash, signature)
	if err != nil {
		return false, chainFailure(err)
	}
	return valid, nil
}

// MessageHash is the digest a claimant proves knowledge over:
// keccak256(abi.encode(domain, nonce)) with nonce read from the base chain identity.
func MessageHash(domain string, nonce *big.Int) (common.Hash, error) {
	if nonce == nil {
		nonce = new(big.Int)
	}
	stringType, err := abi.NewType("string", "", nil)
	if err != nil {
		return common.Hash{}, err
	}
	uintType, err := abi.NewType("uint256", "", nil)
	if err != nil {
		return common.Hash{}, err
	}
	packed, err := abi.Arguments{{Type: stringType}, {Type: uintType}}.Pack(domain, nonce)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to encode message: %w", err)
	}
	return crypto.Keccak256Hash(packed), nil
}

// availability reads both chains concurrently. A domain taken on the target
// decides the result even when the base read failed.
func (s *coordinator) availability(
	ctx context.Context,
	target, base ChainClient,
	domain string,
) (claim.CrossChainAvailability, error) {
	var (
		takenOnTarget, takenOnBase bool
		targetErr, baseErr         error
	)

	var g errgroup.Group
	g.Go(func() error {
		takenOnTarget, targetErr = target.IsDomainTaken(ctx, domain)
		return targetErr
	})
	g.Go(func() error {
		takenOnBase, baseErr = base.IsDomainTaken(ctx, domain)
		return baseErr
	})
	// errors are inspected per chain below
	_ = g.Wait()

	switch {
	case targetErr != nil:
		return claim.CrossChainAvailability{}, targetErr
	case takenOnTarget:
		return claim.CrossChainAvailability{AvailableOnTarget: false}, nil
	case baseErr != nil:
		return claim.CrossChainAvailability{}, baseErr
	}

	return claim.CrossChainAvailability{
		ReservedOnBase:    takenOnBase,
		AvailableOnTarget: true,
	}, nil
}

func (s *coordinator) resolve(chainID uint64) (chain.Descriptor, error) {
	desc, err := s.registry.Resolve(chainID)
	if err != nil {
		return chain.Descriptor{}, apperrors.ResourceNotFoundError(err, "Chain not found")
	}
	return desc, nil
}

func (s *coordinator) client(chainID uint64) (ChainClient, error) {
	c, err := s.clients.Client(chainID)
	if err != nil {
		return nil, apperrors.ResourceNotFoundError(err, "Chain not found")
	}
	return c, nil
}

func (s *coordinator) baseClient() (ChainClient, error) {
	desc, err := s.registry.Base()
	if err != nil {
		return nil, apperrors.ResourceNotFoundError(err, "Base chain not found")
	}
	c, err := s.clients.Client(desc.ChainID)
	if err != nil {
		return nil, apperrors.ResourceNotFoundError(err, "Base chain not found")
	}
	return c, nil
}

// record journals a submission outcome. Journal failures are only logged.
func (s *coordinator) record(
	ctx context.Context,
	chainID uint64,
	domain string,
	kind submission.Kind,
	receipt *ethereum.Receipt,
	sendErr error,
) {
	if s.journal == nil {
		return
	}
	rec := submissionRecord(chainID, domain, kind, receipt, sendErr)
	if err := s.journal.Record(context.WithoutCancel(ctx), rec); err != nil {
		s.logger.Warn("Failed to journal submission",
			zap.Uint64("chain_id", chainID),
			zap.String("domain", domain),
			zap.String("kind", string(kind)),
			zap.String("tx_hash", rec.TxHash),
			zap.Error(err))
	}
}

func submissionRecord(
	chainID uint64,
	domain string,
	kind submission.Kind,
	receipt *ethereum.Receipt,
	sendErr error,
) *submission.Record {
	if sendErr == nil {
		return submission.NewRecord(chainID, domain, kind, receipt.TxHash.Hex(), submission.StatusConfirmed, "")
	}

	var txErr *ethereum.TxError
	if errors.As(sendErr, &txErr) {
		status := submission.StatusUnconfirmed
		if errors.Is(sendErr, ethereum.ErrTransactionReverted) {
			status = submission.StatusFailed
		}
		return submission.NewRecord(chainID, domain, kind, txErr.TxHash.Hex(), status, sendErr.Error())
	}
	return submission.NewRecord(chainID, domain, kind, "", submission.StatusFailed, sendErr.Error())
}

// chainFailure converts a chain client error into a service error carrying its message verbatim.
func chainFailure(err error) error {
	if errors.Is(err, ethereum.ErrChainCallTimeout) {
		return apperrors.TimeoutError(err, err.Error())
	}
	return apperrors.DependencyError(err, err.Error())
}

func validateClaim(req *claim.ClaimRequest) (circuits.Kind, common.Address, error) {
	if strings.TrimSpace(req.Domain) == "" {
		return "", common.Address{}, apperrors.BadRequestError(nil, "domain is required")
	}
	kind, err := circuits.ParseKind(string(req.Kind))
	if err != nil {
		return "", common.Address{}, apperrors.BadRequestError(err, `type must be "password" or "signature"`)
	}
	if req.Proof == "" {
		return "", common.Address{}, apperrors.BadRequestError(nil, "proof is required")
	}
	if !common.IsHexAddress(req.Address) {
		return "", common.Address{}, apperrors.BadRequestError(nil, "address is invalid")
	}
	return kind, common.HexToAddress(req.Address), nil
}

func decodeHex(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}
