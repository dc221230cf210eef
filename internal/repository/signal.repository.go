package repository

import (
	"fmt"
	"time"

	"smartmoney/internal/db/models/postgres/public/model"
	"smartmoney/internal/db/models/postgres/public/table"
	"smartmoney/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SignalRepository interface {
	AddMany(db qrm.Executable, signals []domain.Signal) error
	ListSince(db qrm.Queryable, since time.Time) ([]domain.Signal, error)
}

type signalRepositoryHandler struct{}

func NewSignalRepository() SignalRepository {
	return signalRepositoryHandler{}
}

func (h signalRepositoryHandler) AddMany(db qrm.Executable, signals []domain.Signal) error {
	if len(signals) == 0 {
		return nil
	}

	models := make([]*model.SmartMoneySignal, 0, len(signals))
	for _, s := range signals {
		m := &model.SmartMoneySignal{
			SignalID:  uuid.New(),
			Source:    string(s.Source),
			Actor:     s.Actor,
			Ticker:    s.Ticker,
			Action:    string(s.Action),
			CreatedAt: time.Now().UTC(),
		}
		if !s.Date.IsZero() {
			d := s.Date
			m.EventDate = &d
		}
		if s.Amount != nil {
			amount := s.Amount.InexactFloat64()
			m.Amount = &amount
		}
		m.WeightPct = s.WeightPct
		models = append(models, m)
	}

	query := table.SmartMoneySignal.
		INSERT(table.SmartMoneySignal.MutableColumns).
		MODELS(models)

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert signals: %w", err)
	}

	return nil
}

func (h signalRepositoryHandler) ListSince(db qrm.Queryable, since time.Time) ([]domain.Signal, error) {
	query := table.SmartMoneySignal.
		SELECT(table.SmartMoneySignal.AllColumns).
		WHERE(table.SmartMoneySignal.EventDate.GT_EQ(postgres.DateT(since))).
		ORDER_BY(table.SmartMoneySignal.CreatedAt.ASC())

	out := []model.SmartMoneySignal{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list signals: %w", err)
	}

	signals := make([]domain.Signal, 0, len(out))
	for _, m := range out {
		s := domain.Signal{
			Source: domain.SignalSource(m.Source),
			Actor:  m.Actor,
			Ticker: m.Ticker,
			Action: domain.SignalAction(m.Action),
		}
		if m.EventDate != nil {
			s.Date = *m.EventDate
		}
		if m.Amount != nil {
			amount := decimal.NewFromFloat(*m.Amount)
			s.Amount = &amount
		}
		s.WeightPct = m.WeightPct
		signals = append(signals, s)
	}

	return signals, nil
}
