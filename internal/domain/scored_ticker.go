package domain

import (
	"encoding/json"
	"math"
	"time"
)

type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "HIGH"
	ConfidenceMedium ConfidenceTier = "MEDIUM"
	ConfidenceLow    ConfidenceTier = "LOW"
)

// DimensionScores is the heuristic scorer's per-axis breakdown for one
// ticker's signal group.
type DimensionScores struct {
	Authority float64 `json:"authority"`
	Strength  float64 `json:"strength"`
	Consensus float64 `json:"consensus"`
	Freshness float64 `json:"freshness"`
}

// ScoredTicker is the output of one scoring pass for one ticker. It only
// lives for the duration of the pass - persistence snapshots a flattened
// copy, never this struct.
type ScoredTicker struct {
	Ticker string `json:"ticker"`
	// Signals preserves the caller's ordering for audit trails.
	Signals    []Signal        `json:"signals"`
	Dimensions DimensionScores `json:"dimensions"`
	// TotalScore is 0-10 under either strategy.
	TotalScore float64        `json:"totalScore"`
	Confidence ConfidenceTier `json:"confidence"`
	// Formula carries the decomposition when the formula strategy
	// produced this record; nil under the heuristic strategy.
	Formula *ConfluenceScoreResult `json:"formula,omitempty"`
}

// ScoredAt pairs a scoring pass output with the reference clock it was
// computed against, so persisted snapshots stay reproducible.
type ScoredAt struct {
	Tickers []ScoredTicker `json:"tickers"`
	Now     time.Time      `json:"now"`
}

// MarshalJSON rounds score fields to two decimals before transmission.
// Downstream consumers compare these values across runs, so the rounding
// has to happen once, at the wire boundary.
func (s ScoredTicker) MarshalJSON() ([]byte, error) {
	type alias ScoredTicker
	a := alias(s)
	a.TotalScore = Round2(s.TotalScore)
	a.Dimensions = DimensionScores{
		Authority: Round2(s.Dimensions.Authority),
		Strength:  Round2(s.Dimensions.Strength),
		Consensus: Round2(s.Dimensions.Consensus),
		Freshness: Round2(s.Dimensions.Freshness),
	}
	return json.Marshal(a)
}

func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func Round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
