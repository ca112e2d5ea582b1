package service

import (
	"github.com/chainsafe/fusion-middleware/pkg/ethereum"
)

type poolClients struct {
	pool *ethereum.Pool
}

// FromPool exposes an ethereum.Pool as Clients.
func FromPool(pool *ethereum.Pool) Clients {
	return &poolClients{pool: pool}
}

func (p *poolClients) Client(chainID uint64) (ChainClient, error) {
	c, err := p.pool.Client(chainID)
	if err != nil {
		return nil, err
	}
	return c, nil
}
