package submission_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/fusion-middleware/pkg/submission"
	"github.com/chainsafe/fusion-middleware/pkg/submission/mocks"
)

func newTestServer(store submission.Store) http.Handler {
	r := chi.NewRouter()
	submission.RegisterRoutes(r, store, zap.NewNop())
	return r
}

func TestHTTP_ListSubmissions(t *testing.T) {
	store := mocks.NewStore(t)
	rec := submission.NewRecord(2, "alice.eth", submission.KindRequest, "0x01", submission.StatusConfirmed, "")
	store.EXPECT().ListByDomain(mock.Anything, "alice.eth", 5).Return([]*submission.Record{rec}, nil).Once()

	resp := httptest.NewRecorder()
	newTestServer(store).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/submissions/alice.eth?limit=5", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var got struct {
		Success     bool                 `json:"success"`
		Submissions []*submission.Record `json:"submissions"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.True(t, got.Success)
	require.Len(t, got.Submissions, 1)
	assert.Equal(t, rec.ID, got.Submissions[0].ID)
	assert.Equal(t, submission.KindRequest, got.Submissions[0].Kind)
}

func TestHTTP_ListSubmissions_DefaultLimit(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().ListByDomain(mock.Anything, "alice.eth", 100).Return(nil, nil).Once()

	resp := httptest.NewRecorder()
	newTestServer(store).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/submissions/alice.eth", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHTTP_ListSubmissions_InvalidLimit(t *testing.T) {
	store := mocks.NewStore(t)

	resp := httptest.NewRecorder()
	newTestServer(store).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/submissions/alice.eth?limit=abc", nil))
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var got struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.False(t, got.Success)
	assert.Equal(t, "limit must be a positive integer", got.Error)
}

func TestHTTP_ListSubmissions_StoreFailure(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().ListByDomain(mock.Anything, "alice.eth", 100).Return(nil, errors.New("db down")).Once()

	resp := httptest.NewRecorder()
	newTestServer(store).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/submissions/alice.eth", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
