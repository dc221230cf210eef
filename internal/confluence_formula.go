package internal

import (
	"errors"
	"fmt"
	"math"
	"time"

	"smartmoney/internal/domain"
)

// ErrNoSignalsInWindow reports that every signal in a group fell outside
// the scoring window. Callers scoring many groups treat this as "doesn't
// rank" rather than a failure.
var ErrNoSignalsInWindow = errors.New("no signals within scoring window")

// per-source weights for the formula-based (public API) confluence score.
// These come from the product spec and are deliberately not the same
// table the heuristic scorer uses - the two scores were calibrated
// against different histories and are exposed to different callers.
var formulaSourceWeights = map[domain.SignalSource]float64{
	domain.SourceLegislative:     1.0,
	domain.SourceEtfManager:      1.0,
	domain.SourceDarkPool:        0.8,
	domain.SourceQuarterlyFiling: 0.6,
}

// sources the product spec doesn't assign a weight (insider, options)
// still contribute, just below the weakest listed class.
const formulaDefaultSourceWeight = 0.5

const (
	recencyHorizonDays  = 30.0
	perSignalBonus      = 0.5
	excessReturnDivisor = 10.0
	maxExcessBonus      = 2.0
	normalizeDivisor    = 5.0

	formulaHighCutoff   = 8.0
	formulaMediumCutoff = 6.0
)

// FormulaInput is one ticker's time-windowed signal group plus the
// externally computed excess return vs the benchmark, in percent.
type FormulaInput struct {
	Ticker       string
	Signals      []domain.Signal
	WindowDays   int
	ExcessReturn float64
	Now          time.Time
}

// ScoreFormula computes the formula-based confluence score and retains
// every intermediate for downstream audit. Malformed input is rejected
// up front; the clamps on recency, excess-return bonus, and the final
// normalized score are deliberate ceiling/floor policy, not error
// recovery.
func ScoreFormula(in FormulaInput) (*domain.ConfluenceScoreResult, error) {
	if in.WindowDays <= 0 {
		return nil, fmt.Errorf("window must be positive, got %d days", in.WindowDays)
	}
	if math.IsNaN(in.ExcessReturn) || math.IsInf(in.ExcessReturn, 0) {
		return nil, fmt.Errorf("excess return must be a finite percent, got %f", in.ExcessReturn)
	}

	window := signalsInWindow(in.Signals, in.Now, in.WindowDays)
	if len(window) == 0 {
		return nil, fmt.Errorf("%w: %s over %d days", ErrNoSignalsInWindow, in.Ticker, in.WindowDays)
	}

	baseScore := 0.0
	var lastSignal time.Time
	for _, s := range window {
		baseScore += formulaSourceWeight(s.Source)
		if s.Date.After(lastSignal) {
			lastSignal = s.Date
		}
	}

	daysSinceLast := elapsedWholeDays(lastSignal, in.Now)
	recency := clamp(1.0-float64(daysSinceLast)/recencyHorizonDays, 0, 1)

	countBonus := perSignalBonus * float64(len(window)-1)
	excessBonus := clamp(in.ExcessReturn/excessReturnDivisor, 0, maxExcessBonus)

	confluence := baseScore*recency + countBonus + excessBonus
	normalized := clamp(confluence/normalizeDivisor*10, 0, 10)

	return &domain.ConfluenceScoreResult{
		Ticker:            in.Ticker,
		SignalCount:       len(window),
		WindowDays:        in.WindowDays,
		BaseScore:         baseScore,
		RecencyMultiplier: recency,
		SignalCountBonus:  countBonus,
		ExcessReturnBonus: excessBonus,
		ConfluenceScore:   confluence,
		NormalizedScore:   normalized,
		Confidence:        formulaTier(normalized),
	}, nil
}

func formulaSourceWeight(source domain.SignalSource) float64 {
	if w, ok := formulaSourceWeights[source]; ok {
		return w
	}
	return formulaDefaultSourceWeight
}

func formulaTier(normalized float64) domain.ConfidenceTier {
	switch {
	case normalized >= formulaHighCutoff:
		return domain.ConfidenceHigh
	case normalized >= formulaMediumCutoff:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// signalsInWindow keeps signals whose event date falls within the window
// ending at now. Signals with an unknown date are excluded here - unlike
// the heuristic scorer's freshness fallback, the formula's recency math
// needs a real date to work with.
func signalsInWindow(signals []domain.Signal, now time.Time, windowDays int) []domain.Signal {
	cutoff := now.AddDate(0, 0, -windowDays)
	out := []domain.Signal{}
	for _, s := range signals {
		if s.Date.IsZero() {
			continue
		}
		if s.Date.Before(cutoff) || s.Date.After(now) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
