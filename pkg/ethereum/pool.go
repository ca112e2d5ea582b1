package ethereum

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/chainsafe/fusion-middleware/pkg/chain"
)

// Pool holds one client per configured chain, all sharing the server signer.
type Pool struct {
	clients map[uint64]*Client
}

// NewPool dials every chain in the registry.
func NewPool(registry *chain.Registry, key *ecdsa.PrivateKey, logger *zap.Logger) (*Pool, error) {
	p := &Pool{clients: make(map[uint64]*Client)}
	for _, desc := range registry.All() {
		c, err := Dial(desc, key, logger)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.clients[desc.ChainID] = c
	}
	return p, nil
}

// NewPoolFromClients builds a pool from already constructed clients.
func NewPoolFromClients(clients ...*Client) *Pool {
	p := &Pool{clients: make(map[uint64]*Client, len(clients))}
	for _, c := range clients {
		p.clients[c.ChainID()] = c
	}
	return p
}

// Client returns the client for chainID.
func (p *Pool) Client(chainID uint64) (*Client, error) {
	c, ok := p.clients[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: no client for chain %d", chain.ErrChainNotFound, chainID)
	}
	return c, nil
}

// Close closes every connection in the pool
func (p *Pool) Close() {
	for _, c := range p.clients {
		c.Close()
	}
}

// LoadPrivateKey reads a hex-encoded secp256k1 key from the named environment variable.
func LoadPrivateKey(envName string) (*ecdsa.PrivateKey, error) {
	raw := strings.TrimSpace(os.Getenv(envName))
	if raw == "" {
		return nil, fmt.Errorf("environment variable %s is not set", envName)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to load private key from %s: %w", envName, err)
	}
	return key, nil
}
