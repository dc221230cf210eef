package internal

import (
	"errors"
	"fmt"
	"time"

	"smartmoney/internal/domain"
)

// ScoringStrategy is the capability both scorers sit behind. The two
// strategies compute conceptually the same thing with independently
// calibrated constants, so callers select one explicitly - there is no
// blended or "best of" mode.
type ScoringStrategy interface {
	Name() string
	Score(signals []domain.Signal, now time.Time) ([]domain.ScoredTicker, error)
}

type HeuristicStrategy struct {
	scorer HeuristicScorer
}

func NewHeuristicStrategy() HeuristicStrategy {
	return HeuristicStrategy{scorer: NewHeuristicScorer()}
}

func (s HeuristicStrategy) Name() string { return "heuristic" }

func (s HeuristicStrategy) Score(signals []domain.Signal, now time.Time) ([]domain.ScoredTicker, error) {
	return s.scorer.Score(signals, now), nil
}

// FormulaStrategy adapts the formula-based scorer to the common
// capability. Excess returns are computed upstream (price data never
// enters the engine) and passed per ticker; tickers without an entry
// score with a zero excess-return bonus.
type FormulaStrategy struct {
	WindowDays    int
	ExcessReturns map[string]float64
}

func NewFormulaStrategy(windowDays int, excessReturns map[string]float64) FormulaStrategy {
	return FormulaStrategy{
		WindowDays:    windowDays,
		ExcessReturns: excessReturns,
	}
}

func (s FormulaStrategy) Name() string { return "formula" }

func (s FormulaStrategy) Score(signals []domain.Signal, now time.Time) ([]domain.ScoredTicker, error) {
	if s.WindowDays <= 0 {
		return nil, fmt.Errorf("formula strategy window must be positive, got %d days", s.WindowDays)
	}

	groups := groupByTicker(signals)

	scored := make([]domain.ScoredTicker, 0, len(groups))
	for _, g := range groups {
		result, err := ScoreFormula(FormulaInput{
			Ticker:       g.ticker,
			Signals:      g.signals,
			WindowDays:   s.WindowDays,
			ExcessReturn: s.ExcessReturns[g.ticker],
			Now:          now,
		})
		if errors.Is(err, ErrNoSignalsInWindow) {
			// a group whose signals all fall outside the window isn't a
			// caller error at this level - it just doesn't rank
			continue
		}
		if err != nil {
			return nil, err
		}
		scored = append(scored, domain.ScoredTicker{
			Ticker:     g.ticker,
			Signals:    g.signals,
			TotalScore: result.NormalizedScore,
			Confidence: result.Confidence,
			Formula:    result,
		})
	}

	RankScoredTickers(scored)
	return scored, nil
}

// StrategyByName resolves a caller-supplied strategy name. The formula
// strategy needs its window and excess returns, so it's constructed by
// the caller; this helper only covers the no-argument case plus
// validation of the name itself.
func StrategyByName(name string) (ScoringStrategy, error) {
	switch name {
	case "", "heuristic":
		return NewHeuristicStrategy(), nil
	case "formula":
		return nil, fmt.Errorf("formula strategy requires a window and excess returns; construct it directly")
	default:
		return nil, fmt.Errorf("unknown scoring strategy %q", name)
	}
}
