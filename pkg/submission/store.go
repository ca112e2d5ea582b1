package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	defaultListLimit = 100

	uniqueViolation = "23505"
)

// ErrDuplicateSubmission is returned when a transaction is already journaled
// for the same chain and kind.
var ErrDuplicateSubmission = errors.New("submission already recorded")

// Store persists submission records.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Record(ctx context.Context, rec *Record) error
	ListByDomain(ctx context.Context, domain string, limit int) ([]*Record, error)
}

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the submission store
func NewStore(db *bun.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Record(ctx context.Context, rec *Record) error {
	_, err := s.db.NewInsert().
		Model(toRecordDao(rec)).
		Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation {
			return fmt.Errorf("%w: %s on chain %d", ErrDuplicateSubmission, rec.TxHash, rec.ChainID)
		}
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// ListByDomain returns the newest records for domain first.
func (s *pgStore) ListByDomain(ctx context.Context, domain string, limit int) ([]*Record, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	var daos []RecordDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("domain = ?", domain).
		OrderExpr("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	out := make([]*Record, 0, len(daos))
	for i := range daos {
		out = append(out, fromRecordDao(&daos[i]))
	}
	return out, nil
}
