package arkfunds

import (
	"testing"
	"time"

	"smartmoney/internal/domain"

	"github.com/stretchr/testify/require"
)

const sampleHoldingsCsv = `date,fund,company,ticker,cusip,shares,market value ($),weight (%)
2026-02-10,ARKK,TESLA INC,TSLA,88160R101,2500000,612500000.00,9.85
2026-02-10,ARKK,ROKU INC,ROKU,77543R102,8000000,520000000.00,8.36
2026-02-10,ARKK,MONEY MARKET FUND,,,,12000000.00,0.19
`

func Test_ParseHoldingsCsv(t *testing.T) {
	holdings, err := ParseHoldingsCsv([]byte(sampleHoldingsCsv))
	require.NoError(t, err)

	// the cash row has no ticker and should be dropped
	require.Len(t, holdings, 2)

	require.Equal(t, "TSLA", holdings[0].Ticker)
	require.Equal(t, "ARKK", holdings[0].Fund)
	require.InDelta(t, 9.85, holdings[0].Weight, 1e-9)
	require.InDelta(t, 2500000.0, holdings[0].Shares, 1e-9)
}

func Test_Trade_ToSignal(t *testing.T) {
	trade := Trade{
		Fund:       "ARKK",
		Date:       "2026-02-10",
		Direction:  "Buy",
		Ticker:     "TSLA",
		Shares:     120000,
		EtfPercent: 0.31,
	}

	t.Run("prefers holdings weight over traded percent", func(t *testing.T) {
		signal, err := trade.ToSignal(map[string]float64{"TSLA": 9.85})
		require.NoError(t, err)
		require.NotNil(t, signal)

		require.Equal(t, domain.SourceEtfManager, signal.Source)
		require.Equal(t, "ARKK", signal.Actor)
		require.Equal(t, domain.ActionBuy, signal.Action)
		require.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), signal.Date)
		require.NotNil(t, signal.WeightPct)
		require.InDelta(t, 9.85, *signal.WeightPct, 1e-9)
	})

	t.Run("falls back to traded percent", func(t *testing.T) {
		signal, err := trade.ToSignal(nil)
		require.NoError(t, err)
		require.NotNil(t, signal.WeightPct)
		require.InDelta(t, 0.31, *signal.WeightPct, 1e-9)
	})

	t.Run("sell direction", func(t *testing.T) {
		sell := trade
		sell.Direction = "Sell"

		signal, err := sell.ToSignal(nil)
		require.NoError(t, err)
		require.Equal(t, domain.ActionSell, signal.Action)
	})
}
