package calculator

import (
	"testing"

	"smartmoney/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_ScoreStats(t *testing.T) {
	t.Run("summarizes score distribution", func(t *testing.T) {
		scored := []domain.ScoredTicker{
			{Ticker: "AAA", TotalScore: 2},
			{Ticker: "BBB", TotalScore: 4},
			{Ticker: "CCC", TotalScore: 6},
			{Ticker: "DDD", TotalScore: 8},
		}

		out, err := ScoreStats(scored)
		require.NoError(t, err)

		require.Equal(t, 4, out.Count)
		require.InDelta(t, 5.0, out.Mean, 1e-9)
		require.InDelta(t, 5.0, out.Median, 1e-9)
		require.InDelta(t, 2.58, out.Stdev, 1e-9)
		require.InDelta(t, 8.0, out.Max, 1e-9)
	})

	t.Run("rejects tiny universe", func(t *testing.T) {
		_, err := ScoreStats([]domain.ScoredTicker{{Ticker: "AAA", TotalScore: 5}})
		require.Error(t, err)
	})
}

func Test_DarkPoolZScores(t *testing.T) {
	t.Run("computes cross-sectional z-scores", func(t *testing.T) {
		ratios := map[string]float64{
			"AAA": 0.40,
			"BBB": 0.45,
			"CCC": 0.42,
			"DDD": 0.71,
		}

		out, err := DarkPoolZScores(ratios)
		require.NoError(t, err)
		require.Len(t, out, 4)

		// the outlier should carry the largest z-score
		for ticker, z := range out {
			if ticker == "DDD" {
				continue
			}
			require.Greater(t, out["DDD"], z)
		}
		require.Greater(t, out["DDD"], 1.0)
		require.Less(t, out["AAA"], 0.0)
	})

	t.Run("rejects flat distribution", func(t *testing.T) {
		_, err := DarkPoolZScores(map[string]float64{"AAA": 0.4, "BBB": 0.4})
		require.Error(t, err)
	})
}
