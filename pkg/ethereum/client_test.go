package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/fusion-middleware/pkg/chain"
)

const simulatedChainID = 1337

var (
	noCodeFactory = common.HexToAddress("0x00000000000000000000000000000000000f0c70")
	noCodeHandler = common.HexToAddress("0x0000000000000000000000000000000000ba1a0c")
)

func newSimulatedClient(t *testing.T, receiptTimeout time.Duration) (*Client, *simulated.Backend, *ecdsa.PrivateKey) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	balance, _ := new(big.Int).SetString("1000000000000000000000", 10)
	sim := simulated.NewBackend(types.GenesisAlloc{addr: {Balance: balance}})
	t.Cleanup(func() { _ = sim.Close() })

	desc := chain.Descriptor{
		ChainID: simulatedChainID,
		IsBase:  true,
		Contracts: map[string]common.Address{
			chain.FusionProxyFactory: noCodeFactory,
			chain.BalanceHandler:     noCodeHandler,
		},
		CallTimeout:    5 * time.Second,
		ReceiptTimeout: receiptTimeout,
		GasLimit:       100_000,
	}
	return NewClient(desc, sim.Client(), key, zap.NewNop()), sim, key
}

// mine commits blocks until the returned stop function is called.
func mine(sim *simulated.Backend) (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				sim.Commit()
			}
		}
	}()
	return func() {
		close(done)
		wg.Wait()
	}
}

func TestClient_ConcurrentSubmissionsAreNonceOrdered(t *testing.T) {
	client, sim, _ := newSimulatedClient(t, 30*time.Second)
	stop := mine(sim)
	defer stop()

	const n = 5
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		receipts []*Receipt
		errs     []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := client.DepositAndIndex(context.Background(), "alice.eth", 2, common.BigToHash(big.NewInt(int64(i))))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			receipts = append(receipts, r)
		}(i)
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, receipts, n)

	var nonces []uint64
	for _, r := range receipts {
		assert.Equal(t, types.ReceiptStatusSuccessful, r.Status)
		tx, _, err := sim.Client().TransactionByHash(context.Background(), r.TxHash)
		require.NoError(t, err)
		nonces = append(nonces, tx.Nonce())
	}
	sort.Slice(nonces, func(i, j int) bool { return nonces[i] < nonces[j] })
	assert.Equal(t, []uint64{0, 1, 2, 3, 4}, nonces)
}

func TestClient_ReceiptTimeoutCarriesTxHash(t *testing.T) {
	client, _, _ := newSimulatedClient(t, 200*time.Millisecond)

	_, err := client.WithdrawFees(context.Background(), "alice.eth", big.NewInt(10))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChainCallTimeout))

	var txErr *TxError
	require.True(t, errors.As(err, &txErr))
	assert.NotEqual(t, common.Hash{}, txErr.TxHash)
}

func TestClient_NonceAdvancesPastUnminedTransaction(t *testing.T) {
	client, sim, _ := newSimulatedClient(t, 200*time.Millisecond)

	_, err := client.WithdrawFees(context.Background(), "alice.eth", big.NewInt(1))
	require.Error(t, err)

	stop := mine(sim)
	defer stop()
	client.desc.ReceiptTimeout = 30 * time.Second

	r, err := client.WithdrawFees(context.Background(), "alice.eth", big.NewInt(2))
	require.NoError(t, err)

	tx, _, err := sim.Client().TransactionByHash(context.Background(), r.TxHash)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), tx.Nonce())
}

func TestClient_CallAgainstMissingContractFails(t *testing.T) {
	client, _, _ := newSimulatedClient(t, time.Second)

	_, err := client.GetFusionProxy(context.Background(), "alice.eth")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChainCallFailed))
}

func TestClient_UnconfiguredContract(t *testing.T) {
	client, _, _ := newSimulatedClient(t, time.Second)

	_, err := client.IndexerFor(context.Background(), 2)
	assert.True(t, errors.Is(err, chain.ErrContractNotConfigured))

	_, err = client.ExecuteForwardRequest(context.Background(), &ForwardRequest{})
	assert.True(t, errors.Is(err, chain.ErrContractNotConfigured))
}

func TestClient_CancelledBeforeSubmit(t *testing.T) {
	client, _, _ := newSimulatedClient(t, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FinalizeProxyWithRequest(ctx, "alice.eth")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoadPrivateKey(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	t.Setenv("FUSION_TEST_KEY", "0x"+common.Bytes2Hex(crypto.FromECDSA(key)))
	loaded, err := LoadPrivateKey("FUSION_TEST_KEY")
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(loaded.PublicKey))

	_, err = LoadPrivateKey("FUSION_TEST_KEY_UNSET")
	require.Error(t, err)
}

func TestPool_UnknownChain(t *testing.T) {
	client, _, _ := newSimulatedClient(t, time.Second)
	pool := NewPoolFromClients(client)

	got, err := pool.Client(simulatedChainID)
	require.NoError(t, err)
	assert.Same(t, client, got)

	_, err = pool.Client(99)
	assert.True(t, errors.Is(err, chain.ErrChainNotFound))
}
