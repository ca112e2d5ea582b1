package circuits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 5*time.Second, zap.NewNop())
}

func TestClient_PasswordVerifier(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/password/verify", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]bool{"verified": true})
	})

	ok, err := c.PasswordVerifier().Verify(context.Background(), msgHash, refHash, []byte{0xde, 0xad}, claimant)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0xdead", got["proof"])
	assert.Equal(t, msgHash.Hex(), got["messageHash"])
	assert.Equal(t, refHash.Hex(), got["hash"])
}

func TestClient_VerifierClientErrorIsRejection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signature/verify", r.URL.Path)
		http.Error(w, "invalid proof", http.StatusBadRequest)
	})

	ok, err := c.SignatureVerifier().Verify(context.Background(), msgHash, refHash, []byte{1}, claimant)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_VerifierServerErrorIsUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.PasswordVerifier().Verify(context.Background(), msgHash, refHash, []byte{1}, claimant)
	assert.True(t, errors.Is(err, ErrVerifierUnavailable))
}

func TestClient_UnreachableRunner(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second, zap.NewNop())

	_, err := c.PasswordVerifier().Verify(context.Background(), msgHash, refHash, []byte{1}, claimant)
	assert.True(t, errors.Is(err, ErrVerifierUnavailable))
}

func TestClient_Hash(t *testing.T) {
	want := common.HexToHash("0x1234")
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pedersen/hash", r.URL.Path)
		var req struct {
			Inputs []string `json:"inputs"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"0x7365637265", "0x02"}, req.Inputs)
		_ = json.NewEncoder(w).Encode(map[string]string{"hash": want.Hex()})
	})

	got, err := c.Hash(context.Background(), []byte("secre"), []byte{2})
	require.NoError(t, err)
	assert.Equal(t, [32]byte(want), got)
}

func TestClient_ProveDeploy(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deploy/prove", r.URL.Path)
		var in DeployInput
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "alice.eth", in.Domain)
		assert.Equal(t, uint64(2), in.ChainID)
		assert.Equal(t, uint64(77), in.BlockNumber)
		_ = json.NewEncoder(w).Encode(map[string]string{"proof": "0xbeef"})
	})

	proof, err := c.ProveDeploy(context.Background(), DeployInput{Domain: "alice.eth", ChainID: 2, BlockNumber: 77})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xbe, 0xef}, proof)
}

func TestClient_ProveDeployEmptyProof(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"proof": "0x"})
	})

	_, err := c.ProveDeploy(context.Background(), DeployInput{Domain: "alice.eth"})
	require.Error(t, err)
}
