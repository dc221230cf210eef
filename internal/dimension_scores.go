package internal

import (
	"strings"
	"time"

	"smartmoney/internal/domain"

	"github.com/shopspring/decimal"
)

func normalizeActor(actor string) string {
	return strings.ToLower(strings.TrimSpace(actor))
}

/**
each dimension reduces a ticker's whole signal group to one number. three
of the four take the max across signals rather than a sum or mean - one
high-conviction actor shouldn't be diluted by a pile of low-authority
filings on the same name. consensus is the only dimension that counts.
*/

// authorityScore is the maximum per-signal authority weight in the group.
func authorityScore(weights SourceWeightTable, signals []domain.Signal) float64 {
	max := 0.0
	for _, s := range signals {
		if w := weights.WeightFor(s.Source, s.Actor); w > max {
			max = w
		}
	}
	return max
}

var (
	amountTier5M   = decimal.NewFromInt(5_000_000)
	amountTier1M   = decimal.NewFromInt(1_000_000)
	amountTier500K = decimal.NewFromInt(500_000)
	amountTier100K = decimal.NewFromInt(100_000)
)

// neutralStrength applies when a signal reports neither a dollar amount
// nor a position weight - strength shouldn't punish sources that simply
// don't disclose magnitude.
const neutralStrength = 1.0

// signalStrength maps trade magnitude onto a step scale. Dollar amount
// is preferred; position weight percent is the fallback for sources that
// report relative sizing only (ETF tapes).
func signalStrength(s domain.Signal) float64 {
	if s.Amount != nil {
		switch {
		case s.Amount.GreaterThanOrEqual(amountTier5M):
			return 2.0
		case s.Amount.GreaterThanOrEqual(amountTier1M):
			return 1.5
		case s.Amount.GreaterThanOrEqual(amountTier500K):
			return 1.2
		case s.Amount.GreaterThanOrEqual(amountTier100K):
			return 1.0
		default:
			return 0.5
		}
	}
	if s.WeightPct != nil {
		switch {
		case *s.WeightPct >= 5:
			return 1.8
		case *s.WeightPct >= 2:
			return 1.3
		default:
			return 1.0
		}
	}
	return neutralStrength
}

func strengthScore(signals []domain.Signal) float64 {
	max := 0.0
	for _, s := range signals {
		if v := signalStrength(s); v > max {
			max = v
		}
	}
	return max
}

// maxConsensus caps corroboration so one widely-reported event with many
// duplicate disclosures can't inflate the score arbitrarily.
const maxConsensus = 2.0

// consensusScore measures independent corroboration: distinct source
// classes count more than distinct actors, actors are deduped
// case-insensitively because feeds disagree on capitalization.
func consensusScore(signals []domain.Signal) float64 {
	sources := map[domain.SignalSource]bool{}
	actors := map[string]bool{}
	for _, s := range signals {
		sources[s.Source] = true
		actors[normalizeActor(s.Actor)] = true
	}

	score := 0.5*float64(len(sources)) + 0.3*float64(len(actors))
	if score > maxConsensus {
		score = maxConsensus
	}
	return score
}

type freshnessStep struct {
	maxAgeDays int
	decay      float64
}

// evaluated in ascending threshold order; first step the elapsed days do
// not exceed wins.
var freshnessSteps = []freshnessStep{
	{1, 1.0},
	{3, 0.9},
	{7, 0.7},
	{14, 0.5},
	{30, 0.3},
	{45, 0.1},
}

const (
	staleDecay = 0.05
	// unknownDateDecay is the fallback when a collector couldn't parse
	// the event date. Freshness uncertainty degrades the score, it never
	// aborts the pass.
	unknownDateDecay = 0.5
)

// signalFreshness returns the decay coefficient for one signal's age
// relative to the injected reference clock.
func signalFreshness(s domain.Signal, now time.Time) float64 {
	if s.Date.IsZero() {
		return unknownDateDecay
	}
	age := elapsedWholeDays(s.Date, now)
	for _, step := range freshnessSteps {
		if age <= step.maxAgeDays {
			return step.decay
		}
	}
	return staleDecay
}

// freshnessScore for a group is the max across signals - the most recent
// signal dominates.
func freshnessScore(signals []domain.Signal, now time.Time) float64 {
	max := 0.0
	for _, s := range signals {
		if v := signalFreshness(s, now); v > max {
			max = v
		}
	}
	return max
}

// elapsedWholeDays floors to whole days. Dates slightly in the future
// (clock skew between the disclosure feed and our reference clock) count
// as zero rather than erroring.
func elapsedWholeDays(from, to time.Time) int {
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
