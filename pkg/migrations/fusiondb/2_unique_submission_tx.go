package fusiondb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/fusion-middleware/pkg/pgutil/migrations"
	"github.com/chainsafe/fusion-middleware/pkg/submission"
)

// One journal entry per (chain, transaction, kind). Failed submissions carry
// no tx hash and are not constrained.
var submissionTxColumns = []string{"chain_id", "tx_hash", "kind"}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating unique submission tx index...")
		return mghelper.CreateModelUniqueIndex(ctx, db, &submission.RecordDao{}, submissionTxColumns...)
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping unique submission tx index...")
		return mghelper.DropModelIndex(ctx, db, &submission.RecordDao{}, submissionTxColumns...)
	})
}
