package internal

import (
	"math"
	"testing"

	"smartmoney/internal/domain"
	"smartmoney/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_ScoreFormula(t *testing.T) {
	now := util.NewDate(2024, 6, 30)

	t.Run("three-source confluence", func(t *testing.T) {
		// legislative + etf-manager + dark-pool one day ago, 5.2% excess
		// return: base 2.8, recency 29/30, count bonus 1.0, excess bonus
		// 0.52 -> confluence ~4.2267 -> normalized ~8.45
		out, err := ScoreFormula(FormulaInput{
			Ticker: "NVDA",
			Signals: []domain.Signal{
				{Source: domain.SourceLegislative, Actor: "Nancy Pelosi", Ticker: "NVDA", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -1)},
				{Source: domain.SourceEtfManager, Actor: "ARKK", Ticker: "NVDA", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -1)},
				{Source: domain.SourceDarkPool, Actor: "FINRA ATS", Ticker: "NVDA", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -1)},
			},
			WindowDays:   7,
			ExcessReturn: 5.2,
			Now:          now,
		})
		require.NoError(t, err)

		require.InDelta(t, 2.8, out.BaseScore, 1e-9)
		require.InDelta(t, 1.0-1.0/30.0, out.RecencyMultiplier, 1e-9)
		require.InDelta(t, 1.0, out.SignalCountBonus, 1e-9)
		require.InDelta(t, 0.52, out.ExcessReturnBonus, 1e-9)
		require.InDelta(t, 4.2267, out.ConfluenceScore, 1e-4)
		require.Equal(t, 8.45, domain.Round2(out.NormalizedScore))
		require.Equal(t, domain.ConfidenceHigh, out.Confidence)
	})

	t.Run("signals outside the window don't count", func(t *testing.T) {
		out, err := ScoreFormula(FormulaInput{
			Ticker: "AAPL",
			Signals: []domain.Signal{
				{Source: domain.SourceLegislative, Ticker: "AAPL", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -2)},
				{Source: domain.SourceQuarterlyFiling, Ticker: "AAPL", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -40)},
			},
			WindowDays:   7,
			ExcessReturn: 0,
			Now:          now,
		})
		require.NoError(t, err)
		require.Equal(t, 1, out.SignalCount)
		require.InDelta(t, 1.0, out.BaseScore, 1e-9)
		require.Equal(t, 0.0, out.SignalCountBonus)
	})

	t.Run("empty window is an error", func(t *testing.T) {
		_, err := ScoreFormula(FormulaInput{
			Ticker: "AAPL",
			Signals: []domain.Signal{
				{Source: domain.SourceLegislative, Ticker: "AAPL", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -40)},
			},
			WindowDays:   7,
			ExcessReturn: 0,
			Now:          now,
		})
		require.Error(t, err)
	})

	t.Run("invalid window rejected at the boundary", func(t *testing.T) {
		_, err := ScoreFormula(FormulaInput{Ticker: "AAPL", WindowDays: 0, Now: now})
		require.Error(t, err)

		_, err = ScoreFormula(FormulaInput{Ticker: "AAPL", WindowDays: 7, ExcessReturn: math.NaN(), Now: now})
		require.Error(t, err)
	})

	t.Run("bonus and multiplier clamps", func(t *testing.T) {
		base := FormulaInput{
			Ticker: "AAPL",
			Signals: []domain.Signal{
				{Source: domain.SourceLegislative, Ticker: "AAPL", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -29)},
			},
			WindowDays: 30,
			Now:        now,
		}

		base.ExcessReturn = 35.0
		out, err := ScoreFormula(base)
		require.NoError(t, err)
		require.Equal(t, 2.0, out.ExcessReturnBonus)

		base.ExcessReturn = -12.0
		out, err = ScoreFormula(base)
		require.NoError(t, err)
		require.Equal(t, 0.0, out.ExcessReturnBonus)

		require.GreaterOrEqual(t, out.RecencyMultiplier, 0.0)
		require.LessOrEqual(t, out.RecencyMultiplier, 1.0)
	})

	t.Run("normalized score clamped to 0-10", func(t *testing.T) {
		// five heavy sources, same-day, max excess return
		signals := []domain.Signal{}
		for _, src := range []domain.SignalSource{
			domain.SourceLegislative, domain.SourceLegislative, domain.SourceLegislative,
			domain.SourceEtfManager, domain.SourceEtfManager, domain.SourceDarkPool,
		} {
			signals = append(signals, domain.Signal{Source: src, Ticker: "NVDA", Action: domain.ActionBuy, Date: now})
		}
		out, err := ScoreFormula(FormulaInput{
			Ticker:       "NVDA",
			Signals:      signals,
			WindowDays:   7,
			ExcessReturn: 100,
			Now:          now,
		})
		require.NoError(t, err)
		require.Equal(t, 10.0, out.NormalizedScore)
		require.Equal(t, domain.ConfidenceHigh, out.Confidence)
	})

	t.Run("unlisted sources contribute the default weight", func(t *testing.T) {
		out, err := ScoreFormula(FormulaInput{
			Ticker: "TSLA",
			Signals: []domain.Signal{
				{Source: domain.SourceInsider, Ticker: "TSLA", Action: domain.ActionBuy, Date: now},
				{Source: domain.SourceOptions, Ticker: "TSLA", Action: domain.ActionBuy, Date: now},
			},
			WindowDays: 7,
			Now:        now,
		})
		require.NoError(t, err)
		require.InDelta(t, 1.0, out.BaseScore, 1e-9)
	})
}

func Test_FormulaStrategy(t *testing.T) {
	now := util.NewDate(2024, 6, 30)

	signals := []domain.Signal{
		{Source: domain.SourceLegislative, Actor: "Nancy Pelosi", Ticker: "NVDA", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -1)},
		{Source: domain.SourceEtfManager, Actor: "ARKK", Ticker: "NVDA", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -1)},
		{Source: domain.SourceQuarterlyFiling, Actor: "Some Fund", Ticker: "AAPL", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -3)},
		{Source: domain.SourceLegislative, Actor: "Dan Crenshaw", Ticker: "OLD", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -90)},
	}

	strategy := NewFormulaStrategy(30, map[string]float64{"NVDA": 5.2})
	out, err := strategy.Score(signals, now)
	require.NoError(t, err)

	// OLD falls entirely outside the window and doesn't rank
	require.Len(t, out, 2)
	require.Equal(t, "NVDA", out[0].Ticker)
	require.NotNil(t, out[0].Formula)
	require.Equal(t, out[0].TotalScore, out[0].Formula.NormalizedScore)

	// AAPL had no excess-return entry; bonus degrades to zero
	require.Equal(t, "AAPL", out[1].Ticker)
	require.Equal(t, 0.0, out[1].Formula.ExcessReturnBonus)
}

func Test_FormulaStrategy_RejectsBadWindow(t *testing.T) {
	now := util.NewDate(2024, 6, 30)
	signals := []domain.Signal{
		{Source: domain.SourceLegislative, Actor: "Nancy Pelosi", Ticker: "NVDA", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -1)},
	}

	// a non-positive window is a caller contract violation, not an
	// empty result
	_, err := NewFormulaStrategy(0, nil).Score(signals, now)
	require.ErrorContains(t, err, "window must be positive")

	_, err = NewFormulaStrategy(-5, nil).Score(signals, now)
	require.ErrorContains(t, err, "window must be positive")
}

func Test_ScoreFormula_EmptyWindowSentinel(t *testing.T) {
	now := util.NewDate(2024, 6, 30)

	_, err := ScoreFormula(FormulaInput{
		Ticker: "OLD",
		Signals: []domain.Signal{
			{Source: domain.SourceLegislative, Ticker: "OLD", Action: domain.ActionBuy, Date: now.AddDate(0, 0, -90)},
		},
		WindowDays: 30,
		Now:        now,
	})
	require.ErrorIs(t, err, ErrNoSignalsInWindow)
}
