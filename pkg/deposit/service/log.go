package service

import (
	"context"
	"math/big"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/fusion-middleware/pkg/app/errors"
	"github.com/chainsafe/fusion-middleware/pkg/deposit"
	"github.com/chainsafe/fusion-middleware/pkg/ethereum"
)

const serviceName = "DepositIndexer"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the deposit Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// CreditDeposit wraps the service method with logging
func (ls *logService) CreditDeposit(
	ctx context.Context,
	req *deposit.CreditRequest,
) (resp *ethereum.Receipt, err error) {
	start := time.Now()

	var domain, txHash string
	var sourceChainID uint64
	if req != nil {
		domain, txHash, sourceChainID = req.Domain, req.TxHash, req.SourceChainID
	}

	ls.logger.Info("CreditDeposit started",
		zap.String("service", serviceName),
		zap.String("method", "CreditDeposit"),
		zap.String("domain", domain),
		zap.Uint64("source_chain_id", sourceChainID),
		zap.String("tx_hash", txHash),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			logFailure(ls.logger, "CreditDeposit failed", err,
				zap.String("service", serviceName),
				zap.String("method", "CreditDeposit"),
				zap.String("domain", domain),
				zap.String("tx_hash", txHash),
				zap.Duration("duration", duration),
			)
		} else {
			ls.logger.Info("CreditDeposit completed",
				zap.String("service", serviceName),
				zap.String("method", "CreditDeposit"),
				zap.String("domain", domain),
				zap.String("tx_hash", txHash),
				zap.String("settlement_tx_hash", resp.TxHash.Hex()),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.CreditDeposit(ctx, req)
}

// WithdrawFees wraps the service method with logging
func (ls *logService) WithdrawFees(
	ctx context.Context,
	req *deposit.WithdrawRequest,
) (resp *ethereum.Receipt, err error) {
	start := time.Now()

	var domain, fees string
	if req != nil {
		domain, fees = req.Domain, req.EstimatedFees
	}

	ls.logger.Info("WithdrawFees started",
		zap.String("service", serviceName),
		zap.String("method", "WithdrawFees"),
		zap.String("domain", domain),
		zap.String("estimated_fees", fees),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			logFailure(ls.logger, "WithdrawFees failed", err,
				zap.String("service", serviceName),
				zap.String("method", "WithdrawFees"),
				zap.String("domain", domain),
				zap.Duration("duration", duration),
			)
		} else {
			ls.logger.Info("WithdrawFees completed",
				zap.String("service", serviceName),
				zap.String("method", "WithdrawFees"),
				zap.String("domain", domain),
				zap.String("tx_hash", resp.TxHash.Hex()),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.WithdrawFees(ctx, req)
}

// DomainBalance wraps the service method with logging
func (ls *logService) DomainBalance(ctx context.Context, domain string) (balance *big.Int, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			logFailure(ls.logger, "DomainBalance failed", err,
				zap.String("service", serviceName),
				zap.String("method", "DomainBalance"),
				zap.String("domain", domain),
				zap.Duration("duration", time.Since(start)),
			)
			return
		}
		ls.logger.Debug("DomainBalance completed",
			zap.String("service", serviceName),
			zap.String("method", "DomainBalance"),
			zap.String("domain", domain),
			zap.String("balance", balance.String()),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.DomainBalance(ctx, domain)
}

// logFailure logs client errors at warn level and everything else at error level.
func logFailure(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if apperrors.IsInternalError(err) {
		logger.Error(msg, fields...)
		return
	}
	logger.Warn(msg, fields...)
}
