package chain

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/fusion-middleware/pkg/config"
)

var factoryAddr = common.HexToAddress("0x1111111111111111111111111111111111111111")

func descriptor(id uint64, base bool) Descriptor {
	return Descriptor{
		ChainID:   id,
		IsBase:    base,
		Contracts: map[string]common.Address{FusionProxyFactory: factoryAddr},
	}
}

func TestNew_ResolvesChains(t *testing.T) {
	r, err := New(descriptor(1, true), descriptor(10, false))
	require.NoError(t, err)

	d, err := r.Resolve(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), d.ChainID)
	assert.False(t, d.IsBase)

	base, err := r.Base()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), base.ChainID)

	_, err = r.Resolve(99)
	assert.True(t, errors.Is(err, ErrChainNotFound))
}

func TestNew_RequiresSingleBase(t *testing.T) {
	_, err := New(descriptor(1, false), descriptor(2, false))
	assert.True(t, errors.Is(err, ErrBaseChainNotFound))

	_, err = New(descriptor(1, true), descriptor(2, true))
	assert.True(t, errors.Is(err, ErrBaseChainNotFound))
}

func TestNew_RejectsDuplicateChainID(t *testing.T) {
	_, err := New(descriptor(1, true), descriptor(1, false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate chain id 1")
}

func TestNew_RequiresFactoryOnClaimChains(t *testing.T) {
	_, err := New(descriptor(1, true), Descriptor{ChainID: 2})
	assert.True(t, errors.Is(err, ErrContractNotConfigured))

	settlement := Descriptor{ChainID: 3, IsSettlement: true}
	r, err := New(descriptor(1, true), settlement)
	require.NoError(t, err)

	s, err := r.Settlement()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), s.ChainID)
}

func TestSettlement_NotConfigured(t *testing.T) {
	r, err := New(descriptor(1, true))
	require.NoError(t, err)

	_, err = r.Settlement()
	assert.True(t, errors.Is(err, ErrSettlementChainNotFound))
}

func TestRegistry_IsolatedFromCallerMutation(t *testing.T) {
	d := descriptor(1, true)
	d.MaxGasPrice = big.NewInt(100)
	r, err := New(d)
	require.NoError(t, err)

	d.Contracts[FusionProxyFactory] = common.Address{}
	d.MaxGasPrice.SetInt64(1)

	got, err := r.Resolve(1)
	require.NoError(t, err)
	assert.Equal(t, factoryAddr, got.Contracts[FusionProxyFactory])
	assert.Equal(t, int64(100), got.MaxGasPrice.Int64())
}

func TestRegistry_AccessorsReturnCopies(t *testing.T) {
	base := descriptor(1, true)
	base.MaxGasPrice = big.NewInt(100)
	settle := descriptor(2, false)
	settle.IsSettlement = true
	r, err := New(base, settle)
	require.NoError(t, err)

	bad := common.HexToAddress("0xbad")

	resolved, err := r.Resolve(1)
	require.NoError(t, err)
	resolved.Contracts[FusionProxyFactory] = bad
	resolved.MaxGasPrice.SetInt64(1)

	b, err := r.Base()
	require.NoError(t, err)
	b.Contracts[Forwarder] = bad

	s, err := r.Settlement()
	require.NoError(t, err)
	s.Contracts[FusionProxyFactory] = bad

	for _, d := range r.All() {
		d.Contracts[BalanceHandler] = bad
	}

	got, err := r.Resolve(1)
	require.NoError(t, err)
	assert.Equal(t, factoryAddr, got.Contracts[FusionProxyFactory])
	assert.NotContains(t, got.Contracts, Forwarder)
	assert.NotContains(t, got.Contracts, BalanceHandler)
	assert.Equal(t, int64(100), got.MaxGasPrice.Int64())

	got, err = r.Resolve(2)
	require.NoError(t, err)
	assert.Equal(t, factoryAddr, got.Contracts[FusionProxyFactory])
}

func TestAll_SortedByChainID(t *testing.T) {
	r, err := New(descriptor(42, false), descriptor(1, true), descriptor(7, false))
	require.NoError(t, err)

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, []uint64{1, 7, 42}, []uint64{all[0].ChainID, all[1].ChainID, all[2].ChainID})
}

func TestFromConfig(t *testing.T) {
	r, err := FromConfig([]config.ChainConfig{
		{
			ChainID:     1,
			RPCURL:      "http://localhost:8545",
			IsBase:      true,
			MaxGasPrice: "50000000000",
			Contracts:   map[string]string{FusionProxyFactory: factoryAddr.Hex()},
		},
	})
	require.NoError(t, err)

	base, err := r.Base()
	require.NoError(t, err)
	assert.Equal(t, "50000000000", base.MaxGasPrice.String())

	_, err = FromConfig([]config.ChainConfig{
		{ChainID: 1, IsBase: true, MaxGasPrice: "lots", Contracts: map[string]string{FusionProxyFactory: factoryAddr.Hex()}},
	})
	require.Error(t, err)
}
