package pgutil

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"

	"github.com/chainsafe/fusion-middleware/pkg/config"
)

const (
	testImage        = "postgres:15-alpine"
	testConnAttempts = 8
)

// SetupTestDB starts a PostgreSQL testcontainer and returns a connection to it
// together with a function that closes the connection and stops the container.
func SetupTestDB(t *testing.T) (*bun.DB, func()) {
	t.Helper()
	ctx := context.Background()

	cfg := &config.DatabaseConfig{
		User:     "fusion_test",
		Password: "fusion_test",
		Database: "fusion_test",
		SSLMode:  "disable",
	}

	container, err := postgres.Run(ctx,
		testImage,
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.User),
		postgres.WithPassword(cfg.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	terminate := func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	if cfg.Host, err = container.Host(ctx); err != nil {
		terminate()
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		t.Fatalf("failed to get container port: %v", err)
	}
	cfg.Port = port.Int()

	db, err := connectWithRetry(cfg)
	if err != nil {
		terminate()
		t.Fatalf("failed to connect to test database: %v", err)
	}

	return db, func() {
		_ = db.Close()
		terminate()
	}
}

// connectWithRetry backs off 100ms, 200ms, 400ms... between attempts.
func connectWithRetry(cfg *config.DatabaseConfig) (*bun.DB, error) {
	var lastErr error
	for i := 0; i < testConnAttempts; i++ {
		db, err := ConnectDB(cfg)
		if err == nil {
			return db, nil
		}
		lastErr = err
		time.Sleep(time.Duration(100<<uint(i)) * time.Millisecond)
	}
	return nil, lastErr
}

const (
	tableExistsQuery = "EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?)"
	indexExistsQuery = "EXISTS (SELECT 1 FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)"
)

func exists(t *testing.T, db *bun.DB, query, name string) bool {
	t.Helper()

	var ok bool
	if err := db.NewSelect().ColumnExpr(query, name).Scan(context.Background(), &ok); err != nil {
		t.Fatalf("failed to look up %s: %v", name, err)
	}
	return ok
}

// AssertTableExists fails the test if tableName is missing
func AssertTableExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if !exists(t, db, tableExistsQuery, tableName) {
		t.Errorf("table %s does not exist", tableName)
	}
}

// AssertTableNotExists fails the test if tableName is present
func AssertTableNotExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if exists(t, db, tableExistsQuery, tableName) {
		t.Errorf("table %s should not exist but it does", tableName)
	}
}

// AssertIndexExists fails the test if indexName is missing
func AssertIndexExists(t *testing.T, db *bun.DB, indexName string) {
	t.Helper()
	if !exists(t, db, indexExistsQuery, indexName) {
		t.Errorf("index %s does not exist", indexName)
	}
}

// AssertIndexNotExists fails the test if indexName is present
func AssertIndexNotExists(t *testing.T, db *bun.DB, indexName string) {
	t.Helper()
	if exists(t, db, indexExistsQuery, indexName) {
		t.Errorf("index %s should not exist but it does", indexName)
	}
}

// AssertRowCount fails the test unless tableName holds expected rows
func AssertRowCount(t *testing.T, db *bun.DB, tableName string, expected int) {
	t.Helper()

	var count int
	err := db.NewSelect().
		TableExpr("?", bun.Ident(tableName)).
		ColumnExpr("COUNT(*)").
		Scan(context.Background(), &count)
	if err != nil {
		t.Fatalf("failed to count rows in table %s: %v", tableName, err)
	}
	if count != expected {
		t.Errorf("table %s: expected %d rows, got %d", tableName, expected, count)
	}
}
