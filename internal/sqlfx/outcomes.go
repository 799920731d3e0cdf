package sqlfx

import (
	"github.com/jmoiron/sqlx"

	"github.com/yurykabanov/rotator/pkg/domain"
	"github.com/yurykabanov/rotator/pkg/storage"
)

func OutcomesRepository(db *sqlx.DB) (
	*storage.OutcomeRepository,
	domain.OutcomeRepository,
) {
	repo := storage.NewOutcomeRepository(db)

	return repo, repo
}
