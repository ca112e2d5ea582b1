package submission

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/chainsafe/fusion-middleware/pkg/pgutil"
	mghelper "github.com/chainsafe/fusion-middleware/pkg/pgutil/migrations"
)

func setupStore(t *testing.T) (context.Context, *bun.DB, Store) {
	t.Helper()
	requireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	require.NoError(t, mghelper.CreateSchema(ctx, db, &RecordDao{}))
	require.NoError(t, mghelper.CreateModelUniqueIndex(ctx, db, &RecordDao{}, "chain_id", "tx_hash", "kind"))
	return ctx, db, NewStore(db)
}

func requireDockerAccess(t *testing.T) {
	t.Helper()

	candidates := []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	}

	for _, sock := range candidates {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed submission tests")
}

func TestPGStore_RecordAndList(t *testing.T) {
	ctx, db, store := setupStore(t)

	first := NewRecord(2, "alice.eth", KindRequest, "0xaaaa", StatusConfirmed, "")
	first.CreatedAt = time.Now().UTC().Add(-time.Minute)
	second := NewRecord(2, "alice.eth", KindFinalize, "", StatusFailed, "Request not fulfilled")
	other := NewRecord(2, "bob.eth", KindDeployExternal, "0xbbbb", StatusConfirmed, "")

	require.NoError(t, store.Record(ctx, first))
	require.NoError(t, store.Record(ctx, second))
	require.NoError(t, store.Record(ctx, other))
	pgutil.AssertRowCount(t, db, "submissions", 3)

	got, err := store.ListByDomain(ctx, "alice.eth", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, KindFinalize, got[0].Kind)
	assert.Equal(t, StatusFailed, got[0].Status)
	assert.Empty(t, got[0].TxHash)
	assert.Equal(t, "Request not fulfilled", got[0].Error)

	assert.Equal(t, first.ID, got[1].ID)
	assert.Equal(t, "0xaaaa", got[1].TxHash)
	assert.Equal(t, uint64(2), got[1].ChainID)
}

func TestPGStore_ListRespectsLimit(t *testing.T) {
	ctx, db, store := setupStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Record(ctx, NewRecord(1, "carol.eth", KindDeployBase, "", StatusConfirmed, "")))
	}

	pgutil.AssertRowCount(t, db, "submissions", 3)

	got, err := store.ListByDomain(ctx, "carol.eth", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = store.ListByDomain(ctx, "unknown.eth", 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPGStore_RejectsDuplicateTransaction(t *testing.T) {
	ctx, db, store := setupStore(t)

	require.NoError(t, store.Record(ctx, NewRecord(5, "dave.eth", KindDeposit, "0xcccc", StatusConfirmed, "")))

	err := store.Record(ctx, NewRecord(5, "dave.eth", KindDeposit, "0xcccc", StatusConfirmed, ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSubmission)

	// same hash under another kind or chain is a different submission
	require.NoError(t, store.Record(ctx, NewRecord(5, "dave.eth", KindWithdrawFees, "0xcccc", StatusConfirmed, "")))
	require.NoError(t, store.Record(ctx, NewRecord(6, "dave.eth", KindDeposit, "0xcccc", StatusConfirmed, "")))

	// failures without a hash never collide
	require.NoError(t, store.Record(ctx, NewRecord(5, "dave.eth", KindDeposit, "", StatusFailed, "reverted")))
	require.NoError(t, store.Record(ctx, NewRecord(5, "dave.eth", KindDeposit, "", StatusFailed, "reverted")))

	pgutil.AssertRowCount(t, db, "submissions", 5)
}
