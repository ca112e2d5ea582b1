package ethereum

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chainsafe/fusion-middleware/pkg/chain"
	"github.com/chainsafe/fusion-middleware/pkg/ethereum/contracts"
)

// erc1271MagicValue is returned by isValidSignature for a valid signature.
var erc1271MagicValue = [4]byte{0x16, 0x26, 0xba, 0x7e}

func (c *Client) factory() (*contracts.FusionProxyFactory, error) {
	addr, err := c.desc.Contract(chain.FusionProxyFactory)
	if err != nil {
		return nil, err
	}
	return contracts.NewFusionProxyFactory(addr, c.backend)
}

// GetFusionProxy returns the identity contract deployed for domain, or the
// zero address when none exists.
func (c *Client) GetFusionProxy(ctx context.Context, domain string) (common.Address, error) {
	factory, err := c.factory()
	if err != nil {
		return common.Address{}, err
	}

	var proxy common.Address
	err = c.call(ctx, "getFusionProxy", func(opts *bind.CallOpts) error {
		var err error
		proxy, err = factory.GetFusionProxy(opts, domain)
		return err
	})
	return proxy, err
}

// IsDomainTaken reports whether an identity for domain exists on this chain.
func (c *Client) IsDomainTaken(ctx context.Context, domain string) (bool, error) {
	proxy, err := c.GetFusionProxy(ctx, domain)
	if err != nil {
		return false, err
	}
	return proxy != (common.Address{}), nil
}

// PredictProxyAddress simulates createProxyWithDomain with an empty initializer
// and returns the address the identity would be deployed at. No state changes.
func (c *Client) PredictProxyAddress(ctx context.Context, domain string) (common.Address, error) {
	factory, err := c.factory()
	if err != nil {
		return common.Address{}, err
	}

	var out []interface{}
	raw := &contracts.FusionProxyFactoryRaw{Contract: factory}
	err = c.call(ctx, "createProxyWithDomain", func(opts *bind.CallOpts) error {
		return raw.Call(opts, &out, "createProxyWithDomain", domain, []byte{})
	})
	if err != nil {
		return common.Address{}, err
	}
	if len(out) == 0 {
		return common.Address{}, chainError("createProxyWithDomain", fmt.Errorf("empty result"))
	}
	addr, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, chainError("createProxyWithDomain", fmt.Errorf("unexpected result type %T", out[0]))
	}
	return addr, nil
}

// Reservation reads the identity deployed for domain together with its stored
// reference hash and current nonce.
func (c *Client) Reservation(ctx context.Context, domain string) (*Reservation, error) {
	identity, err := c.GetFusionProxy(ctx, domain)
	if err != nil {
		return nil, err
	}
	if identity == (common.Address{}) {
		return nil, fmt.Errorf("%w: %s", ErrIdentityNotFound, domain)
	}

	fusion, err := contracts.NewFusionCaller(identity, c.backend)
	if err != nil {
		return nil, err
	}

	res := &Reservation{Identity: identity}
	err = c.call(ctx, "TxHash", func(opts *bind.CallOpts) error {
		hash, err := fusion.TxHash(opts)
		res.ReferenceHash = hash
		return err
	})
	if err != nil {
		return nil, err
	}

	err = c.call(ctx, "getNonce", func(opts *bind.CallOpts) error {
		nonce, err := fusion.GetNonce(opts)
		res.Nonce = nonce
		return err
	})
	if err != nil {
		return nil, err
	}
	if res.Nonce == nil {
		res.Nonce = new(big.Int)
	}
	return res, nil
}

// IsValidSignature asks the identity contract to validate signature over hash (EIP-1271).
func (c *Client) IsValidSignature(ctx context.Context, identity common.Address, hash common.Hash, signature []byte) (bool, error) {
	fusion, err := contracts.NewFusionCaller(identity, c.backend)
	if err != nil {
		return false, err
	}

	var magic [4]byte
	err = c.call(ctx, "isValidSignature", func(opts *bind.CallOpts) error {
		var err error
		magic, err = fusion.IsValidSignature(opts, hash, signature)
		return err
	})
	if err != nil {
		return false, err
	}
	return bytes.Equal(magic[:], erc1271MagicValue[:]), nil
}

// IsRequestFulfilled reports whether the pending request for domain has been fulfilled.
func (c *Client) IsRequestFulfilled(ctx context.Context, domain string) (bool, error) {
	factory, err := c.factory()
	if err != nil {
		return false, err
	}

	var fulfilled bool
	err = c.call(ctx, "fulfilledRequests", func(opts *bind.CallOpts) error {
		var err error
		fulfilled, err = factory.FulfilledRequests(opts, domain)
		return err
	})
	return fulfilled, err
}

// ExecuteForwardRequest relays a signed meta-transaction through the chain's forwarder.
func (c *Client) ExecuteForwardRequest(ctx context.Context, req *ForwardRequest) (*Receipt, error) {
	addr, err := c.desc.Contract(chain.Forwarder)
	if err != nil {
		return nil, err
	}
	forwarder, err := contracts.NewForwarderTransactor(addr, c.backend)
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, "execute", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return forwarder.Execute(opts, req.binding(), req.Signature)
	})
}

// DeployExternal deploys the identity for domain on this chain, authorized by a server proof.
func (c *Client) DeployExternal(ctx context.Context, domain string, serverHash [32]byte, serverProof []byte) (*Receipt, error) {
	factory, err := c.factory()
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, "deployExternal", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return factory.DeployExternal(opts, domain, serverHash, serverProof)
	})
}

// RequestProxy registers a deployment request for domain, authorized by a server proof.
func (c *Client) RequestProxy(ctx context.Context, domain string, serverHash [32]byte, serverProof []byte) (*Receipt, error) {
	factory, err := c.factory()
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, "requestProxy", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return factory.RequestProxy(opts, domain, serverHash, serverProof)
	})
}

// FinalizeProxyWithRequest completes a fulfilled request for domain.
func (c *Client) FinalizeProxyWithRequest(ctx context.Context, domain string) (*Receipt, error) {
	factory, err := c.factory()
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, "finalizeProxyWithRequest", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return factory.FinalizeProxyWithRequest(opts, domain)
	})
}
