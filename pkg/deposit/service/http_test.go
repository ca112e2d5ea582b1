package service

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/fusion-middleware/pkg/deposit"
	"github.com/chainsafe/fusion-middleware/pkg/deposit/service/mocks"
)

func newBalanceTestServer(svc Service, auth func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, auth, zap.NewNop())
	return r
}

func denyAll(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func TestBalanceHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().DomainBalance(mock.Anything, "alice.eth").Return(big.NewInt(1234), nil).Once()

	rec := httptest.NewRecorder()
	newBalanceTestServer(svc, denyAll).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/balance/alice.eth", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Success bool   `json:"success"`
		Balance string `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, "1234", got.Balance)
}

func TestDepositHTTP_RequiresOperator(t *testing.T) {
	svc := mocks.NewService(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/balance/deposit", bytes.NewBufferString(`{}`))
	newBalanceTestServer(svc, denyAll).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDepositHTTP_CreditsDeposit(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().CreditDeposit(mock.Anything, &deposit.CreditRequest{
		Domain:        "alice.eth",
		SourceChainID: 2,
		TxHash:        depositTx.Hex(),
	}).Return(receipt, nil).Once()

	body := `{"domain":"alice.eth","chainId":2,"txHash":"` + depositTx.Hex() + `"}`
	rec := httptest.NewRecorder()
	newBalanceTestServer(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/balance/deposit", bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithdrawFeesHTTP_InvalidJSON(t *testing.T) {
	svc := mocks.NewService(t)

	rec := httptest.NewRecorder()
	newBalanceTestServer(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/balance/withdraw-fees", bytes.NewBufferString("{")))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "invalid JSON", got.Error)
}
