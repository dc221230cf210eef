package repository

import (
	"fmt"
	"time"

	"smartmoney/internal/db/models/postgres/public/model"
	"smartmoney/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ConfluenceScoreRepository interface {
	AddMany(db qrm.Executable, in []*model.ConfluenceScore) error
	Latest(db qrm.Queryable, strategy string, limit int64) ([]model.ConfluenceScore, error)
}

type confluenceScoreRepositoryHandler struct{}

func NewConfluenceScoreRepository() ConfluenceScoreRepository {
	return confluenceScoreRepositoryHandler{}
}

func (h confluenceScoreRepositoryHandler) AddMany(db qrm.Executable, in []*model.ConfluenceScore) error {
	if len(in) == 0 {
		return nil
	}

	for _, x := range in {
		x.ScoreID = uuid.New()
		x.CreatedAt = time.Now().UTC()
		x.UpdatedAt = time.Now().UTC()
	}

	query := table.ConfluenceScore.
		INSERT(table.ConfluenceScore.MutableColumns).
		MODELS(in).
		ON_CONFLICT(
			table.ConfluenceScore.Ticker,
			table.ConfluenceScore.Strategy,
			table.ConfluenceScore.ScoredAt,
		).
		DO_UPDATE(
			postgres.SET(
				table.ConfluenceScore.TotalScore.SET(table.ConfluenceScore.EXCLUDED.TotalScore),
				table.ConfluenceScore.Confidence.SET(table.ConfluenceScore.EXCLUDED.Confidence),
				table.ConfluenceScore.UpdatedAt.SET(table.ConfluenceScore.EXCLUDED.UpdatedAt),
			),
		)

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to create confluence scores in db: %w", err)
	}

	return nil
}

func (h confluenceScoreRepositoryHandler) Latest(db qrm.Queryable, strategy string, limit int64) ([]model.ConfluenceScore, error) {
	query := table.ConfluenceScore.
		SELECT(table.ConfluenceScore.AllColumns).
		WHERE(table.ConfluenceScore.Strategy.EQ(postgres.String(strategy))).
		ORDER_BY(
			table.ConfluenceScore.ScoredAt.DESC(),
			table.ConfluenceScore.TotalScore.DESC(),
		).
		LIMIT(limit)

	out := []model.ConfluenceScore{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list confluence scores: %w", err)
	}

	return out, nil
}
