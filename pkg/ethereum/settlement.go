package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chainsafe/fusion-middleware/pkg/chain"
	"github.com/chainsafe/fusion-middleware/pkg/ethereum/contracts"
)

func (c *Client) balanceHandler() (*contracts.BalanceHandler, error) {
	addr, err := c.desc.Contract(chain.BalanceHandler)
	if err != nil {
		return nil, err
	}
	return contracts.NewBalanceHandler(addr, c.backend)
}

// CheckBalance returns the balance credited to domain.
func (c *Client) CheckBalance(ctx context.Context, domain string) (*big.Int, error) {
	handler, err := c.balanceHandler()
	if err != nil {
		return nil, err
	}

	var balance *big.Int
	err = c.call(ctx, "checkBalance", func(opts *bind.CallOpts) error {
		var err error
		balance, err = handler.CheckBalance(opts, domain)
		return err
	})
	return balance, err
}

// IndexerFor resolves the indexer proxy owned by the server signer for
// deposits originating on sourceChainID.
func (c *Client) IndexerFor(ctx context.Context, sourceChainID uint64) (common.Address, error) {
	addr, err := c.desc.Contract(chain.IndexerProxyFactory)
	if err != nil {
		return common.Address{}, err
	}
	factory, err := contracts.NewIndexerProxyFactoryCaller(addr, c.backend)
	if err != nil {
		return common.Address{}, err
	}

	var indexer common.Address
	err = c.call(ctx, "getIndexerProxy", func(opts *bind.CallOpts) error {
		var err error
		indexer, err = factory.GetIndexerProxy(opts, new(big.Int).SetUint64(sourceChainID), c.address)
		return err
	})
	if err != nil {
		return common.Address{}, err
	}
	if indexer == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: chain %d", ErrIndexerNotFound, sourceChainID)
	}
	return indexer, nil
}

// IsTxDuplicate reports whether txHash is already marked indexed by indexer.
func (c *Client) IsTxDuplicate(ctx context.Context, indexer common.Address, txHash common.Hash) (bool, error) {
	caller, err := contracts.NewIndexerCaller(indexer, c.backend)
	if err != nil {
		return false, err
	}

	var duplicate bool
	err = c.call(ctx, "isTxDuplicate", func(opts *bind.CallOpts) error {
		var err error
		duplicate, err = caller.IsTxDuplicate(opts, txHash)
		return err
	})
	return duplicate, err
}

// DepositAndIndex credits a deposit to domain and marks txHash as indexed.
func (c *Client) DepositAndIndex(ctx context.Context, domain string, sourceChainID uint64, txHash common.Hash) (*Receipt, error) {
	handler, err := c.balanceHandler()
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, "DepositAndIndex", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return handler.DepositAndIndex(opts, domain, new(big.Int).SetUint64(sourceChainID), txHash)
	})
}

// WithdrawFees deducts amount from the balance credited to domain.
func (c *Client) WithdrawFees(ctx context.Context, domain string, amount *big.Int) (*Receipt, error) {
	handler, err := c.balanceHandler()
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, "WithdrawFees", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return handler.WithdrawFees(opts, domain, amount)
	})
}
