package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the fusion middleware configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Logging     LoggingConfig     `yaml:"logging"`
	Signer      SignerConfig      `yaml:"signer"`
	ServerProof ServerProofConfig `yaml:"server_proof"`
	Circuits    CircuitsConfig    `yaml:"circuits"`
	Auth        AuthConfig        `yaml:"auth"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Chains      []ChainConfig     `yaml:"chains" validate:"required,min=1,dive"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"110s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"fusion"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// SignerConfig names the environment variable holding the hex-encoded key
// used for every server-initiated transaction.
type SignerConfig struct {
	PrivateKeyEnv string `yaml:"private_key_env" default:"PRIVATE_KEY" validate:"required"`
}

// ServerProofConfig configures server hash derivation.
type ServerProofConfig struct {
	PasscodeEnv string `yaml:"passcode_env" default:"PASSCODE" validate:"required"`
	// Hasher selects the commitment construction: "remote" uses the circuit
	// runner's pedersen endpoint, "mimc" computes a bn254 MiMC commitment locally.
	Hasher    string `yaml:"hasher" default:"remote" validate:"oneof=remote mimc"`
	CacheSize int    `yaml:"cache_size" default:"64" validate:"min=1"`
}

// CircuitsConfig points at the circuit runner that verifies claimant proofs
// and produces deployment proofs.
type CircuitsConfig struct {
	URL     string        `yaml:"url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" default:"60s"`
}

// AuthConfig contains operator authentication settings
type AuthConfig struct {
	JWTSecretEnv string `yaml:"jwt_secret_env" default:"OPERATOR_JWT_SECRET"`
	Issuer       string `yaml:"issuer"`
}

// RateLimitConfig contains per-IP rate limiting settings
type RateLimitConfig struct {
	Enabled        bool `yaml:"enabled"`
	RequestsPerMin int  `yaml:"requests_per_min" default:"120" validate:"min=1"`
	BurstSize      int  `yaml:"burst_size" default:"20" validate:"min=1"`
}

// ChainConfig describes one chain the middleware talks to.
type ChainConfig struct {
	ChainID        uint64            `yaml:"chain_id" validate:"required"`
	Name           string            `yaml:"name"`
	RPCURL         string            `yaml:"rpc_url" validate:"required,url"`
	IsBase         bool              `yaml:"is_base"`
	IsSettlement   bool              `yaml:"is_settlement"`
	Contracts      map[string]string `yaml:"contracts" validate:"required,dive,keys,required,endkeys,eth_addr"`
	CallTimeout    time.Duration     `yaml:"call_timeout" default:"30s"`
	ReceiptTimeout time.Duration     `yaml:"receipt_timeout" default:"3m"`
	GasLimit       uint64            `yaml:"gas_limit" default:"2000000"`
	MaxGasPrice    string            `yaml:"max_gas_price"`
}

// Load reads the YAML file at configPath, applies defaults and validates the result.
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML document into a validated Config.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	for i := range cfg.Chains {
		if err := defaults.Set(&cfg.Chains[i]); err != nil {
			return nil, fmt.Errorf("failed to apply defaults for chain %d: %w", cfg.Chains[i].ChainID, err)
		}
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}

	var bases, settlements int
	seen := make(map[uint64]struct{}, len(cfg.Chains))
	for _, c := range cfg.Chains {
		if _, dup := seen[c.ChainID]; dup {
			return fmt.Errorf("chains: duplicate chain_id %d", c.ChainID)
		}
		seen[c.ChainID] = struct{}{}
		if c.IsBase {
			bases++
		}
		if c.IsSettlement {
			settlements++
		}
	}
	if bases != 1 {
		return fmt.Errorf("chains: exactly one base chain is required, got %d", bases)
	}
	if settlements > 1 {
		return fmt.Errorf("chains: at most one settlement chain is allowed, got %d", settlements)
	}
	return nil
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
