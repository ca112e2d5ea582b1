// Package api implements app.Runner for the fusion middleware HTTP server.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/fusion-middleware/pkg/app/errors"
	apphttp "github.com/chainsafe/fusion-middleware/pkg/app/http"
	"github.com/chainsafe/fusion-middleware/pkg/auth"
	"github.com/chainsafe/fusion-middleware/pkg/chain"
	"github.com/chainsafe/fusion-middleware/pkg/circuits"
	claimservice "github.com/chainsafe/fusion-middleware/pkg/claim/service"
	"github.com/chainsafe/fusion-middleware/pkg/config"
	depositservice "github.com/chainsafe/fusion-middleware/pkg/deposit/service"
	"github.com/chainsafe/fusion-middleware/pkg/ethereum"
	"github.com/chainsafe/fusion-middleware/pkg/pgutil"
	"github.com/chainsafe/fusion-middleware/pkg/serverproof"
	"github.com/chainsafe/fusion-middleware/pkg/submission"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting fusion middleware",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Int("chains", len(cfg.Chains)),
	)

	registry, err := chain.FromConfig(cfg.Chains)
	if err != nil {
		return fmt.Errorf("build chain registry: %w", err)
	}

	signerKey, err := ethereum.LoadPrivateKey(cfg.Signer.PrivateKeyEnv)
	if err != nil {
		return fmt.Errorf("load signer key: %w", err)
	}

	pool, err := ethereum.NewPool(registry, signerKey, logger)
	if err != nil {
		return fmt.Errorf("dial chains: %w", err)
	}
	defer pool.Close()

	for _, desc := range registry.All() {
		logger.Info("Connected to chain",
			zap.Uint64("chain_id", desc.ChainID),
			zap.String("name", desc.Name),
			zap.Bool("base", desc.IsBase),
			zap.Bool("settlement", desc.IsSettlement),
		)
	}

	circuitClient := circuits.NewClient(cfg.Circuits.URL, cfg.Circuits.Timeout, logger)
	gateway := circuits.NewGateway(circuitClient.PasswordVerifier(), circuitClient.SignatureVerifier(), logger)

	issuer, err := s.newIssuer(circuitClient, logger)
	if err != nil {
		return err
	}

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	journal := submission.NewStore(db)

	claimService := claimservice.NewLog(
		claimservice.NewService(registry, claimservice.FromPool(pool), gateway, issuer, journal, logger),
		logger,
	)

	depositService, err := s.newDepositService(registry, pool, journal, logger)
	if err != nil {
		return err
	}

	router := s.setupRouter(ctx, db, claimService, depositService, journal, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) newIssuer(circuitClient *circuits.Client, logger *zap.Logger) (*serverproof.Issuer, error) {
	passcode, err := serverproof.LoadPasscode(s.cfg.ServerProof.PasscodeEnv)
	if err != nil {
		return nil, fmt.Errorf("load server passcode: %w", err)
	}

	var hasher circuits.Hasher = circuitClient
	if s.cfg.ServerProof.Hasher == "mimc" {
		hasher = circuits.NewMiMCHasher()
	}
	logger.Info("Server proof issuer configured", zap.String("hasher", s.cfg.ServerProof.Hasher))

	issuer, err := serverproof.NewIssuer(passcode, hasher, circuitClient, s.cfg.ServerProof.CacheSize, logger)
	if err != nil {
		return nil, fmt.Errorf("create server proof issuer: %w", err)
	}
	return issuer, nil
}

// newDepositService returns nil when no settlement chain is configured.
func (s *Server) newDepositService(
	registry *chain.Registry,
	pool *ethereum.Pool,
	journal submission.Store,
	logger *zap.Logger,
) (depositservice.Service, error) {
	settlement, err := registry.Settlement()
	if err != nil {
		logger.Info("No settlement chain configured, deposit endpoints disabled")
		return nil, nil
	}

	client, err := pool.Client(settlement.ChainID)
	if err != nil {
		return nil, fmt.Errorf("settlement client: %w", err)
	}

	return depositservice.NewLog(depositservice.NewService(client, journal, logger), logger), nil
}

func (s *Server) operatorAuth(logger *zap.Logger) func(http.Handler) http.Handler {
	secret, err := auth.LoadSecret(s.cfg.Auth.JWTSecretEnv)
	if err != nil {
		logger.Warn("Operator secret not configured, operator endpoints will reject all requests",
			zap.String("env", s.cfg.Auth.JWTSecretEnv))
		return denyAll
	}
	return auth.OperatorMiddleware(auth.NewJWTValidator(secret, s.cfg.Auth.Issuer), logger)
}

func denyAll(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apphttp.DefaultErrorHandler(w, apperrors.ForbiddenError(nil, "operator endpoints are disabled"))
	})
}

func (s *Server) setupRouter(
	ctx context.Context,
	db *bun.DB,
	claimService claimservice.Service,
	depositService depositservice.Service,
	journal submission.Store,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	r.Use(apphttp.RateLimit(ctx, s.cfg.RateLimit))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			apphttp.DefaultErrorHandler(w, apperrors.DependencyError(err, "database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	claimservice.RegisterRoutes(r, claimService, logger)
	submission.RegisterRoutes(r, journal, logger)

	if depositService != nil {
		depositservice.RegisterRoutes(r, depositService, s.operatorAuth(logger), logger)
	}

	return r
}
