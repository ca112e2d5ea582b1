package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
server:
  port: 9000
circuits:
  url: http://localhost:7000
chains:
  - chain_id: 1
    name: base
    rpc_url: http://localhost:8545
    is_base: true
    contracts:
      FusionProxyFactory: "0x1111111111111111111111111111111111111111"
      Forwarder: "0x2222222222222222222222222222222222222222"
  - chain_id: 2
    rpc_url: http://localhost:9545
    call_timeout: 5s
    contracts:
      FusionProxyFactory: "0x3333333333333333333333333333333333333333"
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "PASSCODE", cfg.ServerProof.PasscodeEnv)
	assert.Equal(t, "remote", cfg.ServerProof.Hasher)
	assert.Equal(t, "PRIVATE_KEY", cfg.Signer.PrivateKeyEnv)

	require.Len(t, cfg.Chains, 2)
	assert.Equal(t, 30*time.Second, cfg.Chains[0].CallTimeout)
	assert.Equal(t, 5*time.Second, cfg.Chains[1].CallTimeout)
	assert.Equal(t, uint64(2000000), cfg.Chains[1].GasLimit)
	assert.Equal(t, 3*time.Minute, cfg.Chains[1].ReceiptTimeout)
}

func TestParse_RequiresExactlyOneBaseChain(t *testing.T) {
	raw := `
circuits:
  url: http://localhost:7000
chains:
  - chain_id: 1
    rpc_url: http://localhost:8545
    contracts:
      FusionProxyFactory: "0x1111111111111111111111111111111111111111"
`
	_, err := Parse([]byte(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one base chain")
}

func TestParse_RejectsDuplicateChainIDs(t *testing.T) {
	raw := `
circuits:
  url: http://localhost:7000
chains:
  - chain_id: 1
    rpc_url: http://localhost:8545
    is_base: true
    contracts:
      FusionProxyFactory: "0x1111111111111111111111111111111111111111"
  - chain_id: 1
    rpc_url: http://localhost:9545
    contracts:
      FusionProxyFactory: "0x1111111111111111111111111111111111111111"
`
	_, err := Parse([]byte(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate chain_id 1")
}

func TestParse_RejectsMalformedContractAddress(t *testing.T) {
	raw := `
circuits:
  url: http://localhost:7000
chains:
  - chain_id: 1
    rpc_url: http://localhost:8545
    is_base: true
    contracts:
      FusionProxyFactory: "not-an-address"
`
	_, err := Parse([]byte(raw))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:7000", cfg.Circuits.URL)
}
