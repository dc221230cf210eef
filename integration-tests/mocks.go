package integration_tests

import (
	"context"
	"sort"
	"time"

	"smartmoney/internal/db/models/postgres/public/model"
	"smartmoney/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// inMemorySignalRepository keeps signals in a slice so the API can run
// end to end without a database.
type inMemorySignalRepository struct {
	signals []domain.Signal
}

func (r *inMemorySignalRepository) AddMany(db qrm.Executable, signals []domain.Signal) error {
	r.signals = append(r.signals, signals...)
	return nil
}

func (r *inMemorySignalRepository) ListSince(db qrm.Queryable, since time.Time) ([]domain.Signal, error) {
	out := []domain.Signal{}
	for _, s := range r.signals {
		if s.Date.IsZero() || s.Date.Before(since) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type inMemoryConfluenceScoreRepository struct {
	scores []model.ConfluenceScore
}

func (r *inMemoryConfluenceScoreRepository) AddMany(db qrm.Executable, in []*model.ConfluenceScore) error {
	for _, m := range in {
		m.ScoreID = uuid.New()
		r.scores = append(r.scores, *m)
	}
	return nil
}

func (r *inMemoryConfluenceScoreRepository) Latest(db qrm.Queryable, strategy string, limit int64) ([]model.ConfluenceScore, error) {
	out := []model.ConfluenceScore{}
	for _, m := range r.scores {
		if m.Strategy == strategy {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScoredAt.Equal(out[j].ScoredAt) {
			return out[i].ScoredAt.After(out[j].ScoredAt)
		}
		return out[i].TotalScore > out[j].TotalScore
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// noopApiRequestRepository satisfies the request-logging middleware
// without touching storage.
type noopApiRequestRepository struct{}

func (r noopApiRequestRepository) Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error) {
	ar.RequestID = uuid.New()
	return &ar, nil
}

func (r noopApiRequestRepository) Update(db qrm.Executable, ar model.APIRequest) error {
	return nil
}

// stubSignalCollectionService exists so the scoring pass app can be
// constructed; the tests always run with SkipCollection set.
type stubSignalCollectionService struct{}

func (s stubSignalCollectionService) CollectSignals(ctx context.Context, asOf time.Time) ([]domain.Signal, error) {
	return nil, nil
}

type stubExcessReturnService struct {
	returns map[string]float64
}

func (s stubExcessReturnService) ExcessReturns(ctx context.Context, tickers []string, windowDays int) (map[string]float64, error) {
	return s.returns, nil
}
