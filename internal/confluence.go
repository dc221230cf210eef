package internal

import (
	"math"
	"sort"
	"time"

	"smartmoney/internal/domain"
)

// mix weights for the heuristic aggregator. These and the x2 rescale were
// tuned together so the practical ceiling of the weighted sum lands on a
// 0-10 scale; do not adjust one without the other or historical scores
// stop being comparable.
const (
	authorityMix = 0.35
	strengthMix  = 0.25
	consensusMix = 0.25
	freshnessMix = 0.15

	maxTotalScore = 10.0
)

// heuristic confidence tier cutoffs. The formula variant has its own,
// numerically different set - they are calibrated independently.
const (
	heuristicHighCutoff   = 7.0
	heuristicMediumCutoff = 4.0
)

// HeuristicScorer reduces each ticker's signal group along four axes and
// mixes them into one 0-10 score. Pure function of its inputs plus the
// injected clock; safe for concurrent use.
type HeuristicScorer struct {
	Weights SourceWeightTable
}

func NewHeuristicScorer() HeuristicScorer {
	return HeuristicScorer{Weights: NewSourceWeightTable()}
}

// Score groups signals by ticker, scores each group, and returns the
// groups ranked. Signal order within a group is preserved exactly as
// supplied for audit trails.
func (h HeuristicScorer) Score(signals []domain.Signal, now time.Time) []domain.ScoredTicker {
	groups := groupByTicker(signals)

	scored := make([]domain.ScoredTicker, 0, len(groups))
	for _, g := range groups {
		scored = append(scored, h.scoreGroup(g, now))
	}

	RankScoredTickers(scored)
	return scored
}

func (h HeuristicScorer) scoreGroup(g tickerGroup, now time.Time) domain.ScoredTicker {
	dims := domain.DimensionScores{
		Authority: authorityScore(h.Weights, g.signals),
		Strength:  strengthScore(g.signals),
		Consensus: consensusScore(g.signals),
		Freshness: freshnessScore(g.signals, now),
	}

	raw := dims.Authority*authorityMix +
		dims.Strength*strengthMix +
		dims.Consensus*consensusMix +
		dims.Freshness*freshnessMix
	total := math.Min(maxTotalScore, raw*2)

	return domain.ScoredTicker{
		Ticker:     g.ticker,
		Signals:    g.signals,
		Dimensions: dims,
		TotalScore: total,
		Confidence: heuristicTier(total),
	}
}

func heuristicTier(total float64) domain.ConfidenceTier {
	switch {
	case total >= heuristicHighCutoff:
		return domain.ConfidenceHigh
	case total >= heuristicMediumCutoff:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

type tickerGroup struct {
	ticker  string
	signals []domain.Signal
}

// groupByTicker preserves first-seen ticker order and within-ticker
// signal order. Groups always hold at least one signal - an empty group
// is not a representable scoring input.
func groupByTicker(signals []domain.Signal) []tickerGroup {
	index := map[string]int{}
	groups := []tickerGroup{}
	for _, s := range signals {
		i, ok := index[s.Ticker]
		if !ok {
			i = len(groups)
			index[s.Ticker] = i
			groups = append(groups, tickerGroup{ticker: s.Ticker})
		}
		groups[i].signals = append(groups[i].signals, s)
	}
	return groups
}

// RankScoredTickers sorts descending by total score. Equal scores break
// by signal count descending, then ticker ascending - there's no natural
// ordering for exact ties, this one just keeps output deterministic
// regardless of input arrival order.
func RankScoredTickers(scored []domain.ScoredTicker) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].TotalScore != scored[j].TotalScore {
			return scored[i].TotalScore > scored[j].TotalScore
		}
		if len(scored[i].Signals) != len(scored[j].Signals) {
			return len(scored[i].Signals) > len(scored[j].Signals)
		}
		return scored[i].Ticker < scored[j].Ticker
	})
}
