package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"

	"github.com/chainsafe/fusion-middleware/pkg/config"
	"github.com/chainsafe/fusion-middleware/pkg/pgutil"
)

type ledgerDao struct {
	bun.BaseModel `bun:"table:ledger_entries"`
	ID            int64  `bun:",pk,autoincrement"`
	ChainID       int64  `bun:"chain_id,notnull"`
	TxHash        string `bun:"tx_hash,nullzero,type:varchar(66)"`
	Kind          string `bun:"kind,notnull,type:varchar(32)"`
}

func TestConnectDB_Success(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()

	if err := db.Ping(); err != nil {
		t.Errorf("Ping() failed: %v", err)
	}
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(cfg)
	if err == nil {
		db.Close()
		t.Error("ConnectDB() should fail with invalid host")
	}
}

func TestCreateSchemaAndDropTables(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &ledgerDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "ledger_entries")

	// Second call is a no-op
	if err := CreateSchema(ctx, db, &ledgerDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &ledgerDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "ledger_entries")

	if err := DropTables(ctx, db, &ledgerDao{}); err != nil {
		t.Errorf("DropTables() second call failed: %v", err)
	}
}

func TestCreateModelIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &ledgerDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}

	if err := CreateModelIndexes(ctx, db, &ledgerDao{}, "chain_id", "tx_hash"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_ledger_entries_chain_id")
	pgutil.AssertIndexExists(t, db, "idx_ledger_entries_tx_hash")

	if err := CreateModelIndexes(ctx, db, &ledgerDao{}, "chain_id"); err != nil {
		t.Errorf("CreateModelIndexes() second call failed: %v", err)
	}
}

func TestCreateModelUniqueIndex(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &ledgerDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateModelUniqueIndex(ctx, db, &ledgerDao{}, "chain_id", "tx_hash", "kind"); err != nil {
		t.Fatalf("CreateModelUniqueIndex() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_ledger_entries_chain_id_tx_hash_kind")

	insert := func(e *ledgerDao) error {
		_, err := db.NewInsert().Model(e).Exec(ctx)
		return err
	}

	if err := insert(&ledgerDao{ChainID: 1, TxHash: "0xaa", Kind: "deposit"}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if err := insert(&ledgerDao{ChainID: 1, TxHash: "0xaa", Kind: "deposit"}); err == nil {
		t.Error("expected unique violation on duplicate (chain_id, tx_hash, kind)")
	}
	if err := insert(&ledgerDao{ChainID: 2, TxHash: "0xaa", Kind: "deposit"}); err != nil {
		t.Errorf("insert on another chain failed: %v", err)
	}

	// NULL tx hashes are distinct
	for i := 0; i < 2; i++ {
		if err := insert(&ledgerDao{ChainID: 1, Kind: "deposit"}); err != nil {
			t.Errorf("insert without tx hash failed: %v", err)
		}
	}
	pgutil.AssertRowCount(t, db, "ledger_entries", 4)
}

func TestCreateModelUniqueIndex_RequiresColumns(t *testing.T) {
	if err := CreateModelUniqueIndex(context.Background(), nil, &ledgerDao{}); err == nil {
		t.Error("expected error without columns")
	}
}

func TestDropModelIndex(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &ledgerDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateModelUniqueIndex(ctx, db, &ledgerDao{}, "chain_id", "tx_hash", "kind"); err != nil {
		t.Fatalf("CreateModelUniqueIndex() failed: %v", err)
	}

	if err := DropModelIndex(ctx, db, &ledgerDao{}, "chain_id", "tx_hash", "kind"); err != nil {
		t.Fatalf("DropModelIndex() failed: %v", err)
	}

	pgutil.AssertIndexNotExists(t, db, "idx_ledger_entries_chain_id_tx_hash_kind")

	// Dropping a missing index is a no-op
	if err := DropModelIndex(ctx, db, &ledgerDao{}, "chain_id", "tx_hash", "kind"); err != nil {
		t.Errorf("DropModelIndex() second call failed: %v", err)
	}
}
