package fusiondb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/fusion-middleware/pkg/pgutil/migrations"
	"github.com/chainsafe/fusion-middleware/pkg/submission"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating submissions table...")
		if err := mghelper.CreateSchema(ctx, db, &submission.RecordDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &submission.RecordDao{}, "domain", "tx_hash")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping submissions table...")
		return mghelper.DropTables(ctx, db, &submission.RecordDao{})
	})
}
