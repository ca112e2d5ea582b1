package serverproof

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/fusion-middleware/pkg/chain"
	"github.com/chainsafe/fusion-middleware/pkg/circuits"
)

var factoryAddr = common.HexToAddress("0x3333333333333333333333333333333333333333")

type countingHasher struct {
	inner circuits.Hasher
	calls int32
}

func (c *countingHasher) Hash(ctx context.Context, inputs ...[]byte) ([32]byte, error) {
	atomic.AddInt32(&c.calls, 1)
	return c.inner.Hash(ctx, inputs...)
}

type stubProver struct {
	got   circuits.DeployInput
	proof []byte
	err   error
}

func (s *stubProver) ProveDeploy(_ context.Context, in circuits.DeployInput) ([]byte, error) {
	s.got = in
	return s.proof, s.err
}

type stubChain struct {
	desc  chain.Descriptor
	block uint64
	err   error
}

func (s stubChain) Descriptor() chain.Descriptor { return s.desc }

func (s stubChain) LatestBlockNumber(context.Context) (uint64, error) { return s.block, s.err }

func targetChain(id uint64) stubChain {
	return stubChain{
		desc: chain.Descriptor{
			ChainID:   id,
			Contracts: map[string]common.Address{chain.FusionProxyFactory: factoryAddr},
		},
		block: 123,
	}
}

func newIssuer(t *testing.T, prover circuits.Prover) (*Issuer, *countingHasher) {
	t.Helper()
	hasher := &countingHasher{inner: circuits.NewMiMCHasher()}
	issuer, err := NewIssuer("correct horse", hasher, prover, 8, zap.NewNop())
	require.NoError(t, err)
	return issuer, hasher
}

func TestDeriveServerHash_DomainSeparation(t *testing.T) {
	issuer, _ := newIssuer(t, &stubProver{})

	h1, err := issuer.DeriveServerHash(context.Background(), 1)
	require.NoError(t, err)
	h2, err := issuer.DeriveServerHash(context.Background(), 2)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestDeriveServerHash_DeterministicAndCached(t *testing.T) {
	issuer, hasher := newIssuer(t, &stubProver{})

	a, err := issuer.DeriveServerHash(context.Background(), 10)
	require.NoError(t, err)
	b, err := issuer.DeriveServerHash(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hasher.calls))

	other, err := NewIssuer("correct horse", circuits.NewMiMCHasher(), &stubProver{}, 8, zap.NewNop())
	require.NoError(t, err)
	c, err := other.DeriveServerHash(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestDeriveServerHash_DifferentSecrets(t *testing.T) {
	a, err := NewIssuer("one", circuits.NewMiMCHasher(), &stubProver{}, 8, zap.NewNop())
	require.NoError(t, err)
	b, err := NewIssuer("two", circuits.NewMiMCHasher(), &stubProver{}, 8, zap.NewNop())
	require.NoError(t, err)

	ha, err := a.DeriveServerHash(context.Background(), 1)
	require.NoError(t, err)
	hb, err := b.DeriveServerHash(context.Background(), 1)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestNewIssuer_RejectsEmptyPasscode(t *testing.T) {
	_, err := NewIssuer("", circuits.NewMiMCHasher(), &stubProver{}, 8, zap.NewNop())
	require.Error(t, err)
}

func TestIssueProof_BindsDomainAndChain(t *testing.T) {
	prover := &stubProver{proof: []byte{0xaa}}
	issuer, _ := newIssuer(t, prover)

	serverHash, err := issuer.DeriveServerHash(context.Background(), 2)
	require.NoError(t, err)

	bundle, err := issuer.IssueProof(context.Background(), targetChain(2), "alice.eth", serverHash, 2)
	require.NoError(t, err)

	assert.True(t, bundle.BoundTo("alice.eth", 2))
	assert.False(t, bundle.BoundTo("alice.eth", 3))
	assert.False(t, bundle.BoundTo("bob.eth", 2))
	assert.Equal(t, serverHash, bundle.ServerHash)

	assert.Equal(t, circuits.DeployInput{
		Domain:      "alice.eth",
		ServerHash:  serverHash,
		ChainID:     2,
		BlockNumber: 123,
		Factory:     factoryAddr,
	}, prover.got)
}

func TestIssueProof_Failures(t *testing.T) {
	unreachable := targetChain(2)
	unreachable.err = errors.New("dial tcp: connection refused")

	tests := []struct {
		name   string
		cc     ChainContext
		domain string
		hash   [32]byte
		chain  uint64
		prover *stubProver
	}{
		{name: "unreachable chain", cc: unreachable, domain: "alice.eth", hash: [32]byte{1}, chain: 2, prover: &stubProver{proof: []byte{1}}},
		{name: "prover error", cc: targetChain(2), domain: "alice.eth", hash: [32]byte{1}, chain: 2, prover: &stubProver{err: errors.New("boom")}},
		{name: "empty proof", cc: targetChain(2), domain: "alice.eth", hash: [32]byte{1}, chain: 2, prover: &stubProver{}},
		{name: "empty domain", cc: targetChain(2), domain: "", hash: [32]byte{1}, chain: 2, prover: &stubProver{proof: []byte{1}}},
		{name: "empty hash", cc: targetChain(2), domain: "alice.eth", chain: 2, prover: &stubProver{proof: []byte{1}}},
		{name: "chain mismatch", cc: targetChain(3), domain: "alice.eth", hash: [32]byte{1}, chain: 2, prover: &stubProver{proof: []byte{1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issuer, _ := newIssuer(t, tc.prover)
			_, err := issuer.IssueProof(context.Background(), tc.cc, tc.domain, tc.hash, tc.chain)
			assert.True(t, errors.Is(err, ErrProofIssuanceFailed), "got %v", err)
		})
	}
}

func TestLoadPasscode(t *testing.T) {
	t.Setenv("FUSION_TEST_PASSCODE", "secret")
	v, err := LoadPasscode("FUSION_TEST_PASSCODE")
	require.NoError(t, err)
	assert.Equal(t, "secret", v)

	_, err = LoadPasscode("FUSION_TEST_PASSCODE_UNSET")
	require.Error(t, err)
}
