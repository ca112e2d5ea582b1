package circuits

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	msgHash  = common.HexToHash("0x01")
	refHash  = common.HexToHash("0x02")
	claimant = common.HexToAddress("0x00000000000000000000000000000000000000aa")
)

type recordingVerifier struct {
	calls  int
	result bool
	err    error
	panic  bool
}

func (r *recordingVerifier) Verify(_ context.Context, _, _ common.Hash, _ []byte, _ common.Address) (bool, error) {
	r.calls++
	if r.panic {
		panic("index out of range")
	}
	return r.result, r.err
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("password")
	require.NoError(t, err)
	assert.Equal(t, Password, k)

	k, err = ParseKind("signature")
	require.NoError(t, err)
	assert.Equal(t, Signature, k)

	_, err = ParseKind("Password")
	assert.True(t, errors.Is(err, ErrUnknownKind))
	_, err = ParseKind("")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestGateway_DispatchesOnlyToRequestedKind(t *testing.T) {
	tests := []struct {
		kind          Kind
		wantPassword  int
		wantSignature int
	}{
		{kind: Password, wantPassword: 1},
		{kind: Signature, wantSignature: 1},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			password := &recordingVerifier{result: true}
			signature := &recordingVerifier{result: true}
			g := NewGateway(password, signature, zap.NewNop())

			ok, err := g.Verify(context.Background(), tc.kind, msgHash, refHash, []byte{1}, claimant)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tc.wantPassword, password.calls)
			assert.Equal(t, tc.wantSignature, signature.calls)
		})
	}
}

func TestGateway_FailureModesYieldFalse(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		proof    []byte
		verifier *recordingVerifier
	}{
		{name: "empty proof", kind: Password, proof: nil, verifier: &recordingVerifier{result: true}},
		{name: "unknown kind", kind: Kind("biometric"), proof: []byte{1}, verifier: &recordingVerifier{result: true}},
		{name: "rejected", kind: Password, proof: []byte{1}, verifier: &recordingVerifier{result: false}},
		{name: "malformed", kind: Password, proof: []byte{1}, verifier: &recordingVerifier{err: fmt.Errorf("bad proof length")}},
		{name: "panic", kind: Password, proof: []byte{1}, verifier: &recordingVerifier{panic: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGateway(tc.verifier, tc.verifier, zap.NewNop())
			ok, err := g.Verify(context.Background(), tc.kind, msgHash, refHash, tc.proof, claimant)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestGateway_VerifierUnavailable(t *testing.T) {
	v := &recordingVerifier{err: fmt.Errorf("%w: connection refused", ErrVerifierUnavailable)}
	g := NewGateway(v, v, zap.NewNop())

	ok, err := g.Verify(context.Background(), Signature, msgHash, refHash, []byte{1}, claimant)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrVerifierUnavailable))
}
