package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/fusion-middleware/pkg/app/errors"
	"github.com/chainsafe/fusion-middleware/pkg/circuits"
	"github.com/chainsafe/fusion-middleware/pkg/claim"
	"github.com/chainsafe/fusion-middleware/pkg/claim/service/mocks"
	"github.com/chainsafe/fusion-middleware/pkg/ethereum"
)

func newDeployTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code"`
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestDeployHTTP_BaseChainReturnsReceipt(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Deploy(mock.Anything, uint64(1), mock.MatchedBy(func(req *claim.DeployRequest) bool {
			return req.ForwardRequest != nil && req.ForwardRequest.From == claimant
		})).
		Return(&ethereum.Receipt{TxHash: common.HexToHash("0x01"), Status: 1}, nil).
		Once()

	rec := serve(t, newDeployTestServer(svc), http.MethodPost, "/deploy/1",
		`{"forwardRequest":{"from":"`+claimant.Hex()+`","to":"`+identity.Hex()+`","value":"0x0","gas":"0x5208","nonce":"0x0","data":"0x","signature":"0x01"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Success bool             `json:"success"`
		Receipt ethereum.Receipt `json:"receipt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, common.HexToHash("0x01"), got.Receipt.TxHash)
}

func TestDeployHTTP_InvalidJSON(t *testing.T) {
	svc := mocks.NewService(t)

	rec := serve(t, newDeployTestServer(svc), http.MethodPost, "/deploy/2", "{invalid")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	got := decodeError(t, rec)
	assert.False(t, got.Success)
	assert.Equal(t, "invalid JSON", got.Error)
	assert.Equal(t, http.StatusBadRequest, got.Code)
}

func TestDeployHTTP_InvalidChainID(t *testing.T) {
	svc := mocks.NewService(t)

	rec := serve(t, newDeployTestServer(svc), http.MethodPost, "/deploy/abc", "{}")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "chainId must be a positive integer", decodeError(t, rec).Error)
}

func TestDeployHTTP_NotReservedOnBase(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Deploy(mock.Anything, uint64(2), mock.Anything).
		Return(nil, apperrors.ConflictError(claim.ErrDomainNotReservedOnBase, "Domain is not taken on base chain")).
		Once()

	rec := serve(t, newDeployTestServer(svc), http.MethodPost, "/deploy/2",
		`{"chainDeployRequest":{"domain":"alice.eth","type":"password","proof":"0x01","address":"`+claimant.Hex()+`"}}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	got := decodeError(t, rec)
	assert.False(t, got.Success)
	assert.Equal(t, "Domain is not taken on base chain", got.Error)
}

func TestRequestHTTP_UsesRequestMode(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		ClaimOnTarget(mock.Anything, uint64(2), mock.MatchedBy(func(req *claim.ClaimRequest) bool {
			return req.Domain == "alice.eth" && req.Kind == circuits.Signature
		}), claim.ModeRequest).
		Return(&ethereum.Receipt{Status: 1}, nil).
		Once()

	rec := serve(t, newDeployTestServer(svc), http.MethodPost, "/deploy/request/2",
		`{"chainDeployRequest":{"domain":"alice.eth","type":"signature","proof":"0x01","address":"`+claimant.Hex()+`"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetHashHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetServerHash(mock.Anything, uint64(5)).Return("0xabc", nil).Once()

	rec := serve(t, newDeployTestServer(svc), http.MethodGet, "/deploy/getHash/5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Success    bool   `json:"success"`
		ServerHash string `json:"serverHash"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, "0xabc", got.ServerHash)
}

func TestGetAddressHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ResolveDeployAddress(mock.Anything, "alice.eth").Return(identity, nil).Once()

	rec := serve(t, newDeployTestServer(svc), http.MethodGet, "/deploy/getAddress/alice.eth", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		WalletAddress string `json:"walletAddress"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, identity.Hex(), got.WalletAddress)
}

func TestFinalizeHTTP_RequestNotFulfilled(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Finalize(mock.Anything, uint64(2), "alice.eth").
		Return(nil, apperrors.ConflictError(claim.ErrRequestNotFulfilled, "Request not fulfilled")).
		Once()

	rec := serve(t, newDeployTestServer(svc), http.MethodPost, "/deploy/finalize/2/alice.eth", "")
	require.Equal(t, http.StatusConflict, rec.Code)

	got := decodeError(t, rec)
	assert.False(t, got.Success)
	assert.Equal(t, "Request not fulfilled", got.Error)
}

func TestVerifyHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().VerifyIdentitySignature(mock.Anything, "alice.eth", "0xabcd").Return(false, nil).Once()

	rec := serve(t, newDeployTestServer(svc), http.MethodGet, "/deploy/verify/alice.eth/0xabcd", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Success)
}
