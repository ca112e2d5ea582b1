package service

import (
	"context"
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/fusion-middleware/internal/metrics"
	apperrors "github.com/chainsafe/fusion-middleware/pkg/app/errors"
	"github.com/chainsafe/fusion-middleware/pkg/deposit"
	"github.com/chainsafe/fusion-middleware/pkg/ethereum"
	"github.com/chainsafe/fusion-middleware/pkg/keylock"
	"github.com/chainsafe/fusion-middleware/pkg/submission"
)

// SettlementClient is the view of the settlement chain the indexer needs.
// *ethereum.Client satisfies it.
//
//go:generate mockery --name SettlementClient --output mocks --outpkg mocks --filename mock_settlement_client.go --with-expecter
type SettlementClient interface {
	ChainID() uint64
	CheckBalance(ctx context.Context, domain string) (*big.Int, error)
	IndexerFor(ctx context.Context, sourceChainID uint64) (common.Address, error)
	IsTxDuplicate(ctx context.Context, indexer common.Address, txHash common.Hash) (bool, error)
	DepositAndIndex(ctx context.Context, domain string, sourceChainID uint64, txHash common.Hash) (*ethereum.Receipt, error)
	WithdrawFees(ctx context.Context, domain string, amount *big.Int) (*ethereum.Receipt, error)
}

// Journal records submitted transactions. submission.Store satisfies it.
//
//go:generate mockery --name Journal --output mocks --outpkg mocks --filename mock_journal.go --with-expecter
type Journal interface {
	Record(ctx context.Context, rec *submission.Record) error
}

// Service defines the interface for the deposit indexer
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	CreditDeposit(ctx context.Context, req *deposit.CreditRequest) (*ethereum.Receipt, error)
	WithdrawFees(ctx context.Context, req *deposit.WithdrawRequest) (*ethereum.Receipt, error)
	DomainBalance(ctx context.Context, domain string) (*big.Int, error)
}

type indexerService struct {
	client  SettlementClient
	journal Journal
	locks   *keylock.Locker
	logger  *zap.Logger
}

// NewService creates a new deposit indexer. journal may be nil.
func NewService(client SettlementClient, journal Journal, logger *zap.Logger) Service {
	return &indexerService{
		client:  client,
		journal: journal,
		locks:   keylock.New(),
		logger:  logger,
	}
}

// CreditDeposit credits a deposit at most once per (source chain, tx hash).
// Concurrent credits of the same transaction are serialized so the duplicate
// check and the deposit cannot interleave.
func (s *indexerService) CreditDeposit(ctx context.Context, req *deposit.CreditRequest) (receipt *ethereum.Receipt, err error) {
	if req == nil || strings.TrimSpace(req.Domain) == "" {
		return nil, apperrors.BadRequestError(nil, "domain is required")
	}
	if req.SourceChainID == 0 {
		return nil, apperrors.BadRequestError(nil, "chainId is required")
	}
	txHash, err := parseTxHash(req.TxHash)
	if err != nil {
		return nil, err
	}

	label := strconv.FormatUint(req.SourceChainID, 10)
	defer func() {
		status := "success"
		switch {
		case errors.Is(err, deposit.ErrDuplicateTransaction):
			status = "duplicate"
		case err != nil:
			status = "failed"
		}
		metrics.DepositsCredited.WithLabelValues(label, status).Inc()
	}()

	unlock, err := s.locks.Lock(ctx, keylock.Key(req.SourceChainID, txHash.Hex()))
	if err != nil {
		return nil, apperrors.TimeoutError(err, "Timed out waiting for a concurrent credit of this transaction")
	}
	defer unlock()

	indexer, err := s.client.IndexerFor(ctx, req.SourceChainID)
	if err != nil {
		if errors.Is(err, ethereum.ErrIndexerNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "Indexer not found")
		}
		return nil, chainFailure(err)
	}

	duplicate, err := s.client.IsTxDuplicate(ctx, indexer, txHash)
	if err != nil {
		return nil, chainFailure(err)
	}
	if duplicate {
		return nil, apperrors.ConflictError(deposit.ErrDuplicateTransaction, "Transaction is already indexed")
	}

	receipt, err = s.client.DepositAndIndex(ctx, req.Domain, req.SourceChainID, txHash)
	s.record(ctx, req.Domain, submission.KindDeposit, receipt, err)
	if err != nil {
		return nil, chainFailure(err)
	}
	return receipt, nil
}

// WithdrawFees withdraws the integral part of req.EstimatedFees.
func (s *indexerService) WithdrawFees(ctx context.Context, req *deposit.WithdrawRequest) (*ethereum.Receipt, error) {
	if req == nil || strings.TrimSpace(req.Domain) == "" {
		return nil, apperrors.BadRequestError(nil, "domain is required")
	}
	amount, err := FeeAmount(req.EstimatedFees)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "estimatedFees must be a non-negative decimal")
	}

	unlock, err := s.locks.Lock(ctx, keylock.Key(s.client.ChainID(), req.Domain))
	if err != nil {
		return nil, apperrors.TimeoutError(err, "Timed out waiting for a concurrent withdrawal for this domain")
	}
	defer unlock()

	receipt, err := s.client.WithdrawFees(ctx, req.Domain, amount)
	s.record(ctx, req.Domain, submission.KindWithdrawFees, receipt, err)
	if err != nil {
		return nil, chainFailure(err)
	}
	return receipt, nil
}

// DomainBalance returns the settlement balance of domain.
func (s *indexerService) DomainBalance(ctx context.Context, domain string) (*big.Int, error) {
	if strings.TrimSpace(domain) == "" {
		return nil, apperrors.BadRequestError(nil, "domain is required")
	}
	balance, err := s.client.CheckBalance(ctx, domain)
	if err != nil {
		return nil, chainFailure(err)
	}
	return balance, nil
}

// maxFeeDigits is the digit count of the largest uint256.
const maxFeeDigits = 78

// FeeAmount parses a decimal fee string and truncates it toward zero.
// Exponent notation is rejected and the result must fit in a uint256.
func FeeAmount(fees string) (*big.Int, error) {
	fees = strings.TrimSpace(fees)
	if strings.ContainsAny(fees, "eE") {
		return nil, deposit.ErrFeesOutOfRange
	}
	whole, _, _ := strings.Cut(strings.TrimLeft(fees, "+-0"), ".")
	if len(whole) > maxFeeDigits {
		return nil, deposit.ErrFeesOutOfRange
	}
	d, err := decimal.NewFromString(fees)
	if err != nil {
		return nil, err
	}
	if d.IsNegative() {
		return nil, deposit.ErrNegativeFees
	}
	amount := d.Truncate(0).BigInt()
	if amount.Cmp(abi.MaxUint256) > 0 {
		return nil, deposit.ErrFeesOutOfRange
	}
	return amount, nil
}

func (s *indexerService) record(
	ctx context.Context,
	domain string,
	kind submission.Kind,
	receipt *ethereum.Receipt,
	sendErr error,
) {
	if s.journal == nil {
		return
	}

	chainID := s.client.ChainID()
	var rec *submission.Record
	var txErr *ethereum.TxError
	switch {
	case sendErr == nil:
		rec = submission.NewRecord(chainID, domain, kind, receipt.TxHash.Hex(), submission.StatusConfirmed, "")
	case errors.As(sendErr, &txErr) && !errors.Is(sendErr, ethereum.ErrTransactionReverted):
		rec = submission.NewRecord(chainID, domain, kind, txErr.TxHash.Hex(), submission.StatusUnconfirmed, sendErr.Error())
	case txErr != nil:
		rec = submission.NewRecord(chainID, domain, kind, txErr.TxHash.Hex(), submission.StatusFailed, sendErr.Error())
	default:
		rec = submission.NewRecord(chainID, domain, kind, "", submission.StatusFailed, sendErr.Error())
	}

	if err := s.journal.Record(context.WithoutCancel(ctx), rec); err != nil {
		s.logger.Warn("Failed to journal submission",
			zap.String("domain", domain),
			zap.String("kind", string(kind)),
			zap.Error(err))
	}
}

func parseTxHash(raw string) (common.Hash, error) {
	b, err := hexutil.Decode(raw)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, apperrors.BadRequestError(err, "txHash must be a 32-byte hex string")
	}
	return common.BytesToHash(b), nil
}

func chainFailure(err error) error {
	if errors.Is(err, ethereum.ErrChainCallTimeout) {
		return apperrors.TimeoutError(err, err.Error())
	}
	return apperrors.DependencyError(err, err.Error())
}
