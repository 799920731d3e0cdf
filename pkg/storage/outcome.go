package storage

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yurykabanov/rotator/pkg/domain"
)

const (
	outcomeInsertQuery = `
		INSERT INTO outcomes (
			pass_started_at, rule_source,
			path, kind, status, reason, entry_age, recorded_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
)

// OutcomeRepository journals rotation outcomes for post-hoc auditing. It is
// append-only: the rotation pass never reads it back, entries are always
// discovered fresh from the filesystem.
type OutcomeRepository struct {
	db *sqlx.DB
}

func NewOutcomeRepository(db *sqlx.DB) *OutcomeRepository {
	return &OutcomeRepository{
		db: db,
	}
}

func (r *OutcomeRepository) RecordPass(ctx context.Context, startedAt time.Time, outcomes []domain.Outcome) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	now := time.Now()

	for _, outcome := range outcomes {
		var age *time.Time
		if !outcome.Age.IsZero() {
			entryAge := outcome.Age
			age = &entryAge
		}

		_, err = tx.ExecContext(
			ctx,
			outcomeInsertQuery,
			startedAt, outcome.RuleSource,
			outcome.Path, string(outcome.Kind), string(outcome.Status), outcome.Reason, age, now,
		)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
