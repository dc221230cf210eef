package api

import (
	"testing"

	"smartmoney/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_parseSignalInputs(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		amount := 2_000_000.0
		signals, err := parseSignalInputs([]SignalInput{
			{
				Source: "legislative",
				Actor:  "Nancy Pelosi",
				Ticker: "nvda",
				Action: "BUY",
				Date:   "2026-02-10",
				Amount: &amount,
			},
		})
		require.NoError(t, err)
		require.Len(t, signals, 1)

		require.Equal(t, domain.SourceLegislative, signals[0].Source)
		require.Equal(t, "NVDA", signals[0].Ticker)
		require.Equal(t, "2000000", signals[0].Amount.String())
	})

	t.Run("missing date is allowed", func(t *testing.T) {
		signals, err := parseSignalInputs([]SignalInput{
			{Source: "options", Actor: "whale", Ticker: "TSLA", Action: "BUY"},
		})
		require.NoError(t, err)
		require.True(t, signals[0].Date.IsZero())
	})

	t.Run("empty list rejected", func(t *testing.T) {
		_, err := parseSignalInputs(nil)
		require.Error(t, err)
	})

	t.Run("bad source rejected with index", func(t *testing.T) {
		_, err := parseSignalInputs([]SignalInput{
			{Source: "legislative", Actor: "a", Ticker: "AAPL", Action: "BUY"},
			{Source: "astrology", Actor: "b", Ticker: "AAPL", Action: "BUY"},
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "signal 1")
	})

	t.Run("bad date format rejected", func(t *testing.T) {
		_, err := parseSignalInputs([]SignalInput{
			{Source: "legislative", Actor: "a", Ticker: "AAPL", Action: "BUY", Date: "02/10/2026"},
		})
		require.Error(t, err)
	})
}
