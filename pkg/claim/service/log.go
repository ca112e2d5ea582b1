package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/fusion-middleware/pkg/app/errors"
	"github.com/chainsafe/fusion-middleware/pkg/claim"
	"github.com/chainsafe/fusion-middleware/pkg/ethereum"
)

const serviceName = "DomainClaimCoordinator"

const (
	logMessageMaxLen     = 64
	signatureDisplaySize = 16
)

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the claim Service.
// It logs method entry/exit, duration, errors, and redacted proof data.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Deploy wraps the service method with logging
func (ls *logService) Deploy(
	ctx context.Context,
	chainID uint64,
	req *claim.DeployRequest,
) (resp *ethereum.Receipt, err error) {
	start := time.Now()

	ls.logger.Info("Deploy started",
		zap.String("service", serviceName),
		zap.String("method", "Deploy"),
		zap.Uint64("chain_id", chainID),
		zap.Bool("has_forward_request", req != nil && req.ForwardRequest != nil),
		zap.Bool("has_chain_deploy_request", req != nil && req.ChainDeployRequest != nil),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			logFailure(ls.logger, "Deploy failed", err,
				zap.String("service", serviceName),
				zap.String("method", "Deploy"),
				zap.Uint64("chain_id", chainID),
				zap.Duration("duration", duration),
			)
		} else {
			ls.logger.Info("Deploy completed",
				zap.String("service", serviceName),
				zap.String("method", "Deploy"),
				zap.Uint64("chain_id", chainID),
				zap.String("tx_hash", resp.TxHash.Hex()),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Deploy(ctx, chainID, req)
}

// DeployOnBase wraps the service method with logging
func (ls *logService) DeployOnBase(
	ctx context.Context,
	chainID uint64,
	req *ethereum.ForwardRequest,
) (resp *ethereum.Receipt, err error) {
	start := time.Now()

	ls.logger.Info("DeployOnBase started",
		zap.String("service", serviceName),
		zap.String("method", "DeployOnBase"),
		zap.Uint64("chain_id", chainID),
		zap.String("signature", redactForwardSignature(req)),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			logFailure(ls.logger, "DeployOnBase failed", err,
				zap.String("service", serviceName),
				zap.String("method", "DeployOnBase"),
				zap.Uint64("chain_id", chainID),
				zap.Duration("duration", duration),
			)
		} else {
			ls.logger.Info("DeployOnBase completed",
				zap.String("service", serviceName),
				zap.String("method", "DeployOnBase"),
				zap.Uint64("chain_id", chainID),
				zap.String("tx_hash", resp.TxHash.Hex()),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.DeployOnBase(ctx, chainID, req)
}

// ClaimOnTarget wraps the service method with logging
func (ls *logService) ClaimOnTarget(
	ctx context.Context,
	chainID uint64,
	req *claim.ClaimRequest,
	mode claim.Mode,
) (resp *ethereum.Receipt, err error) {
	start := time.Now()

	ls.logger.Info("ClaimOnTarget started",
		zap.String("service", serviceName),
		zap.String("method", "ClaimOnTarget"),
		zap.Uint64("chain_id", chainID),
		zap.String("mode", string(mode)),
		zap.String("domain", claimDomain(req)),
		zap.String("proof", redactSignature(claimProof(req))),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			logFailure(ls.logger, "ClaimOnTarget failed", err,
				zap.String("service", serviceName),
				zap.String("method", "ClaimOnTarget"),
				zap.Uint64("chain_id", chainID),
				zap.String("mode", string(mode)),
				zap.String("domain", claimDomain(req)),
				zap.Duration("duration", duration),
			)
		} else {
			ls.logger.Info("ClaimOnTarget completed",
				zap.String("service", serviceName),
				zap.String("method", "ClaimOnTarget"),
				zap.Uint64("chain_id", chainID),
				zap.String("mode", string(mode)),
				zap.String("domain", claimDomain(req)),
				zap.String("tx_hash", resp.TxHash.Hex()),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.ClaimOnTarget(ctx, chainID, req, mode)
}

// Finalize wraps the service method with logging
func (ls *logService) Finalize(
	ctx context.Context,
	chainID uint64,
	domain string,
) (resp *ethereum.Receipt, err error) {
	start := time.Now()

	ls.logger.Info("Finalize started",
		zap.String("service", serviceName),
		zap.String("method", "Finalize"),
		zap.Uint64("chain_id", chainID),
		zap.String("domain", truncateString(domain, logMessageMaxLen)),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			logFailure(ls.logger, "Finalize failed", err,
				zap.String("service", serviceName),
				zap.String("method", "Finalize"),
				zap.Uint64("chain_id", chainID),
				zap.String("domain", truncateString(domain, logMessageMaxLen)),
				zap.Duration("duration", duration),
			)
		} else {
			ls.logger.Info("Finalize completed",
				zap.String("service", serviceName),
				zap.String("method", "Finalize"),
				zap.Uint64("chain_id", chainID),
				zap.String("domain", truncateString(domain, logMessageMaxLen)),
				zap.String("tx_hash", resp.TxHash.Hex()),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Finalize(ctx, chainID, domain)
}

// GetServerHash wraps the service method with logging
func (ls *logService) GetServerHash(
	ctx context.Context,
	chainID uint64,
) (hash string, err error) {
	start := time.Now()

	ls.logger.Info("GetServerHash started",
		zap.String("service", serviceName),
		zap.String("method", "GetServerHash"),
		zap.Uint64("chain_id", chainID),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			logFailure(ls.logger, "GetServerHash failed", err,
				zap.String("service", serviceName),
				zap.String("method", "GetServerHash"),
				zap.Uint64("chain_id", chainID),
				zap.Duration("duration", duration),
			)
		} else {
			ls.logger.Info("GetServerHash completed",
				zap.String("service", serviceName),
				zap.String("method", "GetServerHash"),
				zap.Uint64("chain_id", chainID),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.GetServerHash(ctx, chainID)
}

// ResolveDeployAddress wraps the service method with logging
func (ls *logService) ResolveDeployAddress(
	ctx context.Context,
	domain string,
) (addr common.Address, err error) {
	start := time.Now()

	ls.logger.Info("ResolveDeployAddress started",
		zap.String("service", serviceName),
		zap.String("method", "ResolveDeployAddress"),
		zap.String("domain", truncateString(domain, logMessageMaxLen)),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			logFailure(ls.logger, "ResolveDeployAddress failed", err,
				zap.String("service", serviceName),
				zap.String("method", "ResolveDeployAddress"),
				zap.String("domain", truncateString(domain, logMessageMaxLen)),
				zap.Duration("duration", duration),
			)
		} else {
			ls.logger.Info("ResolveDeployAddress completed",
				zap.String("service", serviceName),
				zap.String("method", "ResolveDeployAddress"),
				zap.String("domain", truncateString(domain, logMessageMaxLen)),
				zap.String("wallet_address", addr.Hex()),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.ResolveDeployAddress(ctx, domain)
}

// VerifyIdentitySignature wraps the service method with logging
func (ls *logService) VerifyIdentitySignature(
	ctx context.Context,
	domain, proof string,
) (valid bool, err error) {
	start := time.Now()

	ls.logger.Info("VerifyIdentitySignature started",
		zap.String("service", serviceName),
		zap.String("method", "VerifyIdentitySignature"),
		zap.String("domain", truncateString(domain, logMessageMaxLen)),
		zap.String("proof", redactSignature(proof)),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			logFailure(ls.logger, "VerifyIdentitySignature failed", err,
				zap.String("service", serviceName),
				zap.String("method", "VerifyIdentitySignature"),
				zap.String("domain", truncateString(domain, logMessageMaxLen)),
				zap.Duration("duration", duration),
			)
		} else {
			ls.logger.Info("VerifyIdentitySignature completed",
				zap.String("service", serviceName),
				zap.String("method", "VerifyIdentitySignature"),
				zap.String("domain", truncateString(domain, logMessageMaxLen)),
				zap.Bool("valid", valid),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.VerifyIdentitySignature(ctx, domain, proof)
}

// Helper functions for sensitive data redaction

// truncateString limits string length for logging to prevent log spam
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// redactSignature shows only the edges and length of a proof or signature
func redactSignature(sig string) string {
	if sig == "" {
		return "<empty>"
	}
	sigLen := len(sig)
	if sigLen > signatureDisplaySize {
		return fmt.Sprintf("%s...%s (%d bytes)", sig[:8], sig[sigLen-4:], sigLen)
	}
	return fmt.Sprintf("<%d bytes>", sigLen)
}

func redactForwardSignature(req *ethereum.ForwardRequest) string {
	if req == nil {
		return "<empty>"
	}
	return redactSignature(req.Signature.String())
}

func claimDomain(req *claim.ClaimRequest) string {
	if req == nil {
		return ""
	}
	return truncateString(req.Domain, logMessageMaxLen)
}

func claimProof(req *claim.ClaimRequest) string {
	if req == nil {
		return ""
	}
	return req.Proof
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
