package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/fusion-middleware/internal/metrics"
	"github.com/chainsafe/fusion-middleware/pkg/chain"
)

const (
	defaultCallTimeout    = 30 * time.Second
	defaultReceiptTimeout = 3 * time.Minute
	defaultGasLimit       = 2_000_000
)

// Backend is the subset of an RPC connection the client needs.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Client represents a connection to one configured chain together with the
// server signer used for every transaction sent to it.
type Client struct {
	desc       chain.Descriptor
	backend    Backend
	closer     func()
	privateKey *ecdsa.PrivateKey
	address    common.Address
	chainID    *big.Int
	label      string
	logger     *zap.Logger

	// nonceMu serializes submissions from the shared signer.
	nonceMu   sync.Mutex
	nextNonce uint64
	nonceSet  bool
}

// Dial connects to the chain described by desc.
func Dial(desc chain.Descriptor, key *ecdsa.PrivateKey, logger *zap.Logger) (*Client, error) {
	rpc, err := ethclient.Dial(desc.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain %d RPC: %w", desc.ChainID, err)
	}
	c := NewClient(desc, rpc, key, logger)
	c.closer = rpc.Close

	logger.Info("Connected to chain",
		zap.Uint64("chain_id", desc.ChainID),
		zap.String("name", desc.Name),
		zap.Bool("is_base", desc.IsBase),
		zap.Bool("is_settlement", desc.IsSettlement),
		zap.String("signer", c.address.Hex()))

	return c, nil
}

// NewClient creates a client over an existing backend.
func NewClient(desc chain.Descriptor, backend Backend, key *ecdsa.PrivateKey, logger *zap.Logger) *Client {
	if desc.CallTimeout <= 0 {
		desc.CallTimeout = defaultCallTimeout
	}
	if desc.ReceiptTimeout <= 0 {
		desc.ReceiptTimeout = defaultReceiptTimeout
	}
	if desc.GasLimit == 0 {
		desc.GasLimit = defaultGasLimit
	}
	return &Client{
		desc:       desc,
		backend:    backend,
		privateKey: key,
		address:    crypto.PubkeyToAddress(key.PublicKey),
		chainID:    new(big.Int).SetUint64(desc.ChainID),
		label:      strconv.FormatUint(desc.ChainID, 10),
		logger:     logger.With(zap.Uint64("chain_id", desc.ChainID)),
	}
}

// Close closes the underlying RPC connection
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// Descriptor returns the chain this client is bound to.
func (c *Client) Descriptor() chain.Descriptor {
	return c.desc
}

// ChainID returns the numeric chain identifier.
func (c *Client) ChainID() uint64 {
	return c.desc.ChainID
}

// SignerAddress returns the address of the server signer.
func (c *Client) SignerAddress() common.Address {
	return c.address
}

// LatestBlockNumber returns the current head of the chain.
func (c *Client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.desc.CallTimeout)
	defer cancel()

	header, err := c.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, chainError("get latest block", err)
	}
	return header.Number.Uint64(), nil
}

// call runs fn with call options bounded by the chain's call timeout.
func (c *Client) call(ctx context.Context, method string, fn func(opts *bind.CallOpts) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.desc.CallTimeout)
	defer cancel()

	if err := fn(&bind.CallOpts{Context: ctx, From: c.address}); err != nil {
		metrics.ChainCalls.WithLabelValues(c.label, method, "error").Inc()
		return chainError(method, err)
	}
	metrics.ChainCalls.WithLabelValues(c.label, method, "ok").Inc()
	return nil
}

// transact signs and sends one transaction, then waits for its receipt.
// Submissions are serialized per client so nonces are assigned in order.
func (c *Client) transact(
	ctx context.Context,
	method string,
	send func(opts *bind.TransactOpts) (*types.Transaction, error),
) (*Receipt, error) {
	tx, err := c.submit(ctx, method, send)
	if err != nil {
		metrics.TransactionsSent.WithLabelValues(c.label, "failed").Inc()
		return nil, err
	}

	receipt, err := c.waitMined(ctx, tx)
	if err != nil {
		metrics.TransactionsSent.WithLabelValues(c.label, "unconfirmed").Inc()
		return nil, err
	}
	metrics.GasUsed.WithLabelValues(method).Observe(float64(receipt.GasUsed))

	if receipt.Status != types.ReceiptStatusSuccessful {
		metrics.TransactionsSent.WithLabelValues(c.label, "reverted").Inc()
		return nil, &TxError{
			TxHash: receipt.TxHash,
			Err:    fmt.Errorf("%w: %w: %s", ErrChainCallFailed, ErrTransactionReverted, method),
		}
	}
	metrics.TransactionsSent.WithLabelValues(c.label, "success").Inc()
	return newReceipt(receipt), nil
}

func (c *Client) submit(
	ctx context.Context,
	method string,
	send func(opts *bind.TransactOpts) (*types.Transaction, error),
) (*types.Transaction, error) {
	c.nonceMu.Lock()
	defer c.nonceMu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, chainError("send "+method, err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, c.desc.CallTimeout)
	defer cancel()

	auth, err := c.transactor(sendCtx)
	if err != nil {
		return nil, err
	}

	tx, err := send(auth)
	if err != nil {
		// the node may or may not have seen the nonce; resync from pending state next time
		c.nonceSet = false
		c.logger.Warn("Transaction submission failed",
			zap.String("method", method),
			zap.Uint64("nonce", auth.Nonce.Uint64()),
			zap.Error(err))
		return nil, chainError("send "+method, err)
	}

	c.nextNonce = tx.Nonce() + 1
	c.nonceSet = true
	metrics.LastNonce.WithLabelValues(c.label).Set(float64(tx.Nonce()))

	c.logger.Info("Transaction submitted",
		zap.String("method", method),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("nonce", tx.Nonce()))

	return tx, nil
}

// transactor returns signing options with an explicit nonce. Callers must hold nonceMu.
func (c *Client) transactor(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(c.privateKey, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx

	pending, err := c.backend.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, chainError("get nonce", err)
	}
	nonce := pending
	if c.nonceSet && c.nextNonce > nonce {
		nonce = c.nextNonce
	}

	auth.Nonce = new(big.Int).SetUint64(nonce)
	auth.GasLimit = c.desc.GasLimit
	auth.Value = new(big.Int)

	// Cap gas price if configured
	if c.desc.MaxGasPrice != nil {
		gasPrice, err := c.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, chainError("suggest gas price", err)
		}

		if gasPrice.Cmp(c.desc.MaxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", c.desc.MaxGasPrice.String()))
			auth.GasPrice = new(big.Int).Set(c.desc.MaxGasPrice)
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// waitMined blocks until tx is mined or the receipt timeout elapses. Returning
// early never un-sends the transaction; the error carries its hash.
func (c *Client) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.desc.ReceiptTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		c.logger.Warn("Transaction receipt not confirmed",
			zap.String("tx_hash", tx.Hash().Hex()),
			zap.Error(err))
		return nil, &TxError{TxHash: tx.Hash(), Err: chainError("wait for receipt", err)}
	}
	return receipt, nil
}
