package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smartmoney/internal"
	"smartmoney/internal/calculator"
	"smartmoney/internal/db/models/postgres/public/model"
	"smartmoney/internal/domain"
	"smartmoney/internal/logger"
	"smartmoney/internal/repository"
	"smartmoney/internal/service"
)

// signals older than this trip a staleness warning on the pass - the
// feeds publish daily, so a quiet week usually means a broken collector
const staleSignalWarningDays = 7

// ScoringPassApp orchestrates one end-to-end scoring pass:
// 1. Collect fresh signals from every feed
// 2. Load the full lookback window from storage
// 3. Score each ticker group under the chosen strategy
// 4. Snapshot the ranked results
type ScoringPassApp interface {
	RunScoringPass(ctx context.Context, in RunScoringPassInput) (*domain.ScoredAt, error)
}

type RunScoringPassInput struct {
	// StrategyName selects the scorer: "heuristic" (default) or
	// "formula".
	StrategyName string
	// LookbackDays bounds which signals participate. Also used as the
	// formula strategy's scoring window.
	LookbackDays int
	// SkipCollection scores whatever is already stored, without
	// hitting the upstream feeds. Used for re-scoring after a
	// calibration change.
	SkipCollection bool
}

type scoringPassAppHandler struct {
	Db                        *sql.DB
	SignalCollectionService   service.SignalCollectionService
	ExcessReturnService       service.ExcessReturnService
	SignalRepository          repository.SignalRepository
	ConfluenceScoreRepository repository.ConfluenceScoreRepository
}

func NewScoringPassApp(
	db *sql.DB,
	signalCollectionService service.SignalCollectionService,
	excessReturnService service.ExcessReturnService,
	signalRepository repository.SignalRepository,
	confluenceScoreRepository repository.ConfluenceScoreRepository,
) ScoringPassApp {
	return &scoringPassAppHandler{
		Db:                        db,
		SignalCollectionService:   signalCollectionService,
		ExcessReturnService:       excessReturnService,
		SignalRepository:          signalRepository,
		ConfluenceScoreRepository: confluenceScoreRepository,
	}
}

func (h *scoringPassAppHandler) RunScoringPass(ctx context.Context, in RunScoringPassInput) (*domain.ScoredAt, error) {
	log := logger.FromContext(ctx)

	if in.LookbackDays <= 0 {
		in.LookbackDays = 45
	}
	now := time.Now().UTC()

	profile, endProfile := domain.NewProfile()
	defer endProfile()

	if !in.SkipCollection {
		_, endSpan := profile.StartNewSpan("collect signals")
		_, err := h.SignalCollectionService.CollectSignals(ctx, now)
		endSpan()
		if err != nil {
			return nil, fmt.Errorf("signal collection failed: %w", err)
		}
	}

	_, endSpan := profile.StartNewSpan("load signal window")
	cutoff := now.AddDate(0, 0, -in.LookbackDays)
	signals, err := h.SignalRepository.ListSince(h.Db, cutoff)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to load signals: %w", err)
	}
	if len(signals) == 0 {
		return nil, fmt.Errorf("no signals in the last %d days", in.LookbackDays)
	}

	h.warnIfStale(ctx, signals, now)

	strategy, err := h.buildStrategy(ctx, in, signals)
	if err != nil {
		return nil, err
	}

	_, endSpan = profile.StartNewSpan("score")
	scored, err := strategy.Score(signals, now)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("scoring failed under %s strategy: %w", strategy.Name(), err)
	}

	_, endSpan = profile.StartNewSpan("persist scores")
	err = h.persistScores(strategy.Name(), scored, now)
	endSpan()
	if err != nil {
		return nil, err
	}

	if stats, err := calculator.ScoreStats(scored); err == nil {
		log.Infof("scored %d tickers under %s strategy: mean=%.2f median=%.2f stdev=%.2f max=%.2f",
			stats.Count, strategy.Name(), stats.Mean, stats.Median, stats.Stdev, stats.Max)
	}
	if spans, err := profile.ToJsonBytes(); err == nil {
		log.Debugf("scoring pass timing: %s", string(spans))
	}

	return &domain.ScoredAt{Tickers: scored, Now: now}, nil
}

func (h *scoringPassAppHandler) buildStrategy(ctx context.Context, in RunScoringPassInput, signals []domain.Signal) (internal.ScoringStrategy, error) {
	if in.StrategyName != "formula" {
		return internal.StrategyByName(in.StrategyName)
	}

	seen := map[string]bool{}
	tickers := []string{}
	for _, s := range signals {
		if !seen[s.Ticker] {
			seen[s.Ticker] = true
			tickers = append(tickers, s.Ticker)
		}
	}

	excessReturns, err := h.ExcessReturnService.ExcessReturns(ctx, tickers, in.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("failed to compute excess returns: %w", err)
	}

	return internal.NewFormulaStrategy(in.LookbackDays, excessReturns), nil
}

func (h *scoringPassAppHandler) warnIfStale(ctx context.Context, signals []domain.Signal, now time.Time) {
	log := logger.FromContext(ctx)

	newest := time.Time{}
	for _, s := range signals {
		if s.Date.After(newest) {
			newest = s.Date
		}
	}
	if newest.IsZero() {
		log.Warnf("no signal in the window has a parseable date")
		return
	}
	if now.Sub(newest) > staleSignalWarningDays*24*time.Hour {
		log.Warnf("newest signal is from %s - collectors may be broken", newest.Format(time.DateOnly))
	}
}

func (h *scoringPassAppHandler) persistScores(strategyName string, scored []domain.ScoredTicker, now time.Time) error {
	models := make([]*model.ConfluenceScore, 0, len(scored))
	for _, st := range scored {
		m := &model.ConfluenceScore{
			Ticker:      st.Ticker,
			Strategy:    strategyName,
			TotalScore:  domain.Round2(st.TotalScore),
			Confidence:  string(st.Confidence),
			SignalCount: int32(len(st.Signals)),
			ScoredAt:    now,
		}
		if st.Formula != nil {
			base := domain.Round2(st.Formula.BaseScore)
			recency := domain.Round4(st.Formula.RecencyMultiplier)
			countBonus := domain.Round2(st.Formula.SignalCountBonus)
			erBonus := domain.Round2(st.Formula.ExcessReturnBonus)
			m.BaseScore = &base
			m.RecencyMultiplier = &recency
			m.SignalCountBonus = &countBonus
			m.ExcessReturnBonus = &erBonus
		}
		models = append(models, m)
	}

	err := h.ConfluenceScoreRepository.AddMany(h.Db, models)
	if err != nil {
		return fmt.Errorf("failed to snapshot scores: %w", err)
	}

	return nil
}
