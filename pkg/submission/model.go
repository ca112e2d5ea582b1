package submission

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RecordDao maps to the 'submissions' table in PostgreSQL.
type RecordDao struct {
	bun.BaseModel `bun:"table:submissions,alias:s"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	ChainID       int64     `bun:"chain_id,notnull"`
	Domain        string    `bun:"domain,notnull,type:varchar(255)"`
	Kind          string    `bun:"kind,notnull,type:varchar(32)"`
	TxHash        *string   `bun:"tx_hash,type:varchar(66)"`
	Status        string    `bun:"status,notnull,type:varchar(16)"`
	Error         *string   `bun:"error,type:text"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toRecordDao(r *Record) *RecordDao {
	dao := &RecordDao{
		ID:        r.ID,
		ChainID:   int64(r.ChainID),
		Domain:    r.Domain,
		Kind:      string(r.Kind),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
	if r.TxHash != "" {
		dao.TxHash = &r.TxHash
	}
	if r.Error != "" {
		dao.Error = &r.Error
	}
	return dao
}

func fromRecordDao(dao *RecordDao) *Record {
	r := &Record{
		ID:        dao.ID,
		ChainID:   uint64(dao.ChainID),
		Domain:    dao.Domain,
		Kind:      Kind(dao.Kind),
		Status:    Status(dao.Status),
		CreatedAt: dao.CreatedAt,
	}
	if dao.TxHash != nil {
		r.TxHash = *dao.TxHash
	}
	if dao.Error != nil {
		r.Error = *dao.Error
	}
	return r
}
