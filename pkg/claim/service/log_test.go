package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/chainsafe/fusion-middleware/pkg/app/errors"
	"github.com/chainsafe/fusion-middleware/pkg/claim"
	"github.com/chainsafe/fusion-middleware/pkg/claim/service/mocks"
)

func TestLog_FailureLevelFollowsErrorCategory(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level zapcore.Level
	}{
		{"conflict", apperrors.ConflictError(claim.ErrDomainAlreadyTaken, "Domain is already taken"), zapcore.WarnLevel},
		{"bad request", apperrors.BadRequestError(nil, "domain is required"), zapcore.WarnLevel},
		{"chain failure", apperrors.DependencyError(errors.New("rpc down"), "rpc down"), zapcore.ErrorLevel},
		{"untyped", errors.New("boom"), zapcore.ErrorLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			svc := mocks.NewService(t)
			svc.EXPECT().Finalize(mock.Anything, uint64(2), "alice.eth").Return(nil, tc.err).Once()

			_, err := NewLog(svc, zap.New(core)).Finalize(context.Background(), 2, "alice.eth")
			require.ErrorIs(t, err, tc.err)

			failed := logs.FilterMessage("Finalize failed").All()
			require.Len(t, failed, 1)
			assert.Equal(t, tc.level, failed[0].Level)
			assert.Equal(t, "alice.eth", failed[0].ContextMap()["domain"])
		})
	}
}

func TestLog_RedactsProof(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := mocks.NewService(t)
	proof := "0x" + "ab" + "0123456789abcdef0123456789abcdef0123456789abcdef"
	svc.EXPECT().VerifyIdentitySignature(mock.Anything, "alice.eth", proof).Return(true, nil).Once()

	_, err := NewLog(svc, zap.New(core)).VerifyIdentitySignature(context.Background(), "alice.eth", proof)
	require.NoError(t, err)

	for _, entry := range logs.All() {
		for _, v := range entry.ContextMap() {
			if s, ok := v.(string); ok {
				assert.NotEqual(t, proof, s)
			}
		}
	}
}
