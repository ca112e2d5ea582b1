// Package chain holds the static table of chains the middleware is configured for.
package chain

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/fusion-middleware/pkg/config"
)

// Well-known contract names in a chain's address book.
const (
	FusionProxyFactory  = "FusionProxyFactory"
	Forwarder           = "Forwarder"
	BalanceHandler      = "BalanceHandler"
	IndexerProxyFactory = "IndexerProxyFactory"
)

var (
	ErrChainNotFound           = errors.New("chain not found")
	ErrBaseChainNotFound       = errors.New("base chain not found")
	ErrSettlementChainNotFound = errors.New("settlement chain not found")
	ErrContractNotConfigured   = errors.New("contract not configured")
)

// Descriptor is the immutable connection and contract metadata of one chain.
type Descriptor struct {
	ChainID        uint64
	Name           string
	RPCURL         string
	IsBase         bool
	IsSettlement   bool
	Contracts      map[string]common.Address
	CallTimeout    time.Duration
	ReceiptTimeout time.Duration
	GasLimit       uint64
	MaxGasPrice    *big.Int
}

// Contract returns the configured address of the named contract.
func (d Descriptor) Contract(name string) (common.Address, error) {
	addr, ok := d.Contracts[name]
	if !ok || addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: %s on chain %d", ErrContractNotConfigured, name, d.ChainID)
	}
	return addr, nil
}

// Registry maps chain identifiers to descriptors. It is never mutated after New.
type Registry struct {
	chains     map[uint64]Descriptor
	base       uint64
	settlement uint64
	hasSettle  bool
}

// New builds a registry. Exactly one descriptor must be the base chain and at
// most one may be the settlement chain.
func New(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{chains: make(map[uint64]Descriptor, len(descriptors))}

	var bases int
	for _, d := range descriptors {
		if _, dup := r.chains[d.ChainID]; dup {
			return nil, fmt.Errorf("duplicate chain id %d", d.ChainID)
		}
		if d.IsBase {
			bases++
			r.base = d.ChainID
		}
		if d.IsSettlement {
			if r.hasSettle {
				return nil, fmt.Errorf("more than one settlement chain (%d, %d)", r.settlement, d.ChainID)
			}
			r.hasSettle = true
			r.settlement = d.ChainID
		}
		if !d.IsSettlement || d.IsBase {
			if _, err := d.Contract(FusionProxyFactory); err != nil {
				return nil, err
			}
		}
		r.chains[d.ChainID] = copyDescriptor(d)
	}

	if bases != 1 {
		return nil, fmt.Errorf("%w: expected exactly one base chain, got %d", ErrBaseChainNotFound, bases)
	}
	return r, nil
}

// FromConfig builds a registry from the chain section of the configuration.
func FromConfig(chains []config.ChainConfig) (*Registry, error) {
	descriptors := make([]Descriptor, 0, len(chains))
	for _, c := range chains {
		d := Descriptor{
			ChainID:        c.ChainID,
			Name:           c.Name,
			RPCURL:         c.RPCURL,
			IsBase:         c.IsBase,
			IsSettlement:   c.IsSettlement,
			Contracts:      make(map[string]common.Address, len(c.Contracts)),
			CallTimeout:    c.CallTimeout,
			ReceiptTimeout: c.ReceiptTimeout,
			GasLimit:       c.GasLimit,
		}
		for name, addr := range c.Contracts {
			if !common.IsHexAddress(addr) {
				return nil, fmt.Errorf("chain %d: invalid %s address %q", c.ChainID, name, addr)
			}
			d.Contracts[name] = common.HexToAddress(addr)
		}
		if c.MaxGasPrice != "" {
			maxGasPrice, ok := new(big.Int).SetString(c.MaxGasPrice, 10)
			if !ok {
				return nil, fmt.Errorf("chain %d: invalid max_gas_price %q", c.ChainID, c.MaxGasPrice)
			}
			d.MaxGasPrice = maxGasPrice
		}
		descriptors = append(descriptors, d)
	}
	return New(descriptors...)
}

// Resolve returns a copy of the descriptor for chainID.
func (r *Registry) Resolve(chainID uint64) (Descriptor, error) {
	d, ok := r.chains[chainID]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %d", ErrChainNotFound, chainID)
	}
	return copyDescriptor(d), nil
}

// Base returns the base chain descriptor.
func (r *Registry) Base() (Descriptor, error) {
	d, ok := r.chains[r.base]
	if !ok || !d.IsBase {
		return Descriptor{}, ErrBaseChainNotFound
	}
	return copyDescriptor(d), nil
}

// Settlement returns the chain hosting the balance handler and indexers.
func (r *Registry) Settlement() (Descriptor, error) {
	if !r.hasSettle {
		return Descriptor{}, ErrSettlementChainNotFound
	}
	return copyDescriptor(r.chains[r.settlement]), nil
}

// All returns copies of every descriptor ordered by chain id.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.chains))
	for _, d := range r.chains {
		out = append(out, copyDescriptor(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChainID < out[j].ChainID })
	return out
}

func copyDescriptor(d Descriptor) Descriptor {
	contracts := make(map[string]common.Address, len(d.Contracts))
	for k, v := range d.Contracts {
		contracts[k] = v
	}
	d.Contracts = contracts
	if d.MaxGasPrice != nil {
		d.MaxGasPrice = new(big.Int).Set(d.MaxGasPrice)
	}
	return d
}
