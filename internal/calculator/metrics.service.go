package calculator

import (
	"fmt"

	"smartmoney/internal/domain"

	"github.com/montanaflynn/stats"
)

type ScoreDistribution struct {
	Count  int
	Mean   float64
	Median float64
	Stdev  float64
	Max    float64
}

// ScoreStats summarizes the distribution of composite scores across a
// scored universe. Useful for spotting days where everything scores
// high (usually a data problem, not a market one).
func ScoreStats(scored []domain.ScoredTicker) (*ScoreDistribution, error) {
	if len(scored) < 2 {
		return nil, fmt.Errorf("cannot compute score stats on < 2 scored tickers")
	}

	scores := make([]float64, 0, len(scored))
	for _, st := range scored {
		scores = append(scores, st.TotalScore)
	}

	mean, err := stats.Mean(scores)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(scores)
	if err != nil {
		return nil, err
	}
	stdev, err := stats.StandardDeviationSample(scores)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(scores)
	if err != nil {
		return nil, err
	}

	return &ScoreDistribution{
		Count:  len(scores),
		Mean:   domain.Round2(mean),
		Median: domain.Round2(median),
		Stdev:  domain.Round2(stdev),
		Max:    domain.Round2(max),
	}, nil
}

// DarkPoolZScores converts per-ticker dark pool short volume ratios
// into z-scores against the day's cross-sectional distribution.
// Tickers with a z-score above the anomaly threshold become dark-pool
// signals upstream.
func DarkPoolZScores(ratios map[string]float64) (map[string]float64, error) {
	if len(ratios) < 2 {
		return nil, fmt.Errorf("cannot compute z-scores on < 2 tickers")
	}

	values := make([]float64, 0, len(ratios))
	for _, r := range ratios {
		values = append(values, r)
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}
	stdev, err := stats.StandardDeviationSample(values)
	if err != nil {
		return nil, err
	}
	if stdev == 0 {
		return nil, fmt.Errorf("cannot compute z-scores with 0 stdev")
	}

	out := make(map[string]float64, len(ratios))
	for ticker, r := range ratios {
		out[ticker] = domain.Round2((r - mean) / stdev)
	}

	return out, nil
}
