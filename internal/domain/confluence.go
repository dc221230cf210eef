package domain

import "encoding/json"

// ConfluenceScoreResult is the formula-based confluence score plus every
// intermediate it was computed from. Consumers audit the decomposition,
// so intermediates are first-class fields, not discarded locals.
type ConfluenceScoreResult struct {
	Ticker      string `json:"ticker"`
	SignalCount int    `json:"signalCount"`
	WindowDays  int    `json:"windowDays"`

	BaseScore         float64 `json:"baseScore"`
	RecencyMultiplier float64 `json:"recencyMultiplier"`
	SignalCountBonus  float64 `json:"signalCountBonus"`
	ExcessReturnBonus float64 `json:"excessReturnBonus"`
	ConfluenceScore   float64 `json:"confluenceScore"`
	NormalizedScore   float64 `json:"normalizedScore"`

	Confidence ConfidenceTier `json:"confidence"`
}

// MarshalJSON rounds scores and bonuses to two decimals and the recency
// multiplier to four, matching the precision the decomposition is quoted
// at everywhere downstream.
func (r ConfluenceScoreResult) MarshalJSON() ([]byte, error) {
	type alias ConfluenceScoreResult
	a := alias(r)
	a.BaseScore = Round2(r.BaseScore)
	a.RecencyMultiplier = Round4(r.RecencyMultiplier)
	a.SignalCountBonus = Round2(r.SignalCountBonus)
	a.ExcessReturnBonus = Round2(r.ExcessReturnBonus)
	a.ConfluenceScore = Round2(r.ConfluenceScore)
	a.NormalizedScore = Round2(r.NormalizedScore)
	return json.Marshal(a)
}
