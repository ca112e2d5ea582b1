package circuits

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiMCHasher_Deterministic(t *testing.T) {
	h := NewMiMCHasher()
	chain2 := common.LeftPadBytes([]byte{2}, 32)

	a, err := h.Hash(context.Background(), []byte("passcode"), chain2)
	require.NoError(t, err)
	b, err := h.Hash(context.Background(), []byte("passcode"), chain2)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, [32]byte{}, a)
}

func TestMiMCHasher_InputSeparation(t *testing.T) {
	h := NewMiMCHasher()

	a, err := h.Hash(context.Background(), []byte("passcode"), common.LeftPadBytes([]byte{1}, 32))
	require.NoError(t, err)
	b, err := h.Hash(context.Background(), []byte("passcode"), common.LeftPadBytes([]byte{2}, 32))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestMiMCHasher_ReducesOversizedInput(t *testing.T) {
	h := NewMiMCHasher()
	oversized := make([]byte, 32)
	for i := range oversized {
		oversized[i] = 0xff
	}

	_, err := h.Hash(context.Background(), oversized)
	require.NoError(t, err)
}
