package edgar

import (
	"testing"
	"time"

	"smartmoney/internal/domain"

	"github.com/stretchr/testify/require"
)

const sampleInfoTable = `<?xml version="1.0" encoding="UTF-8"?>
<informationTable xmlns="http://www.sec.gov/edgar/document/thirteenf/informationtable">
  <infoTable>
    <nameOfIssuer>APPLE INC</nameOfIssuer>
    <cusip>037833100</cusip>
    <value>915000000</value>
    <shrsOrPrnAmt>
      <sshPrnamt>4000000</sshPrnamt>
      <sshPrnamtType>SH</sshPrnamtType>
    </shrsOrPrnAmt>
  </infoTable>
  <infoTable>
    <nameOfIssuer>NVIDIA CORP</nameOfIssuer>
    <cusip>67066G104</cusip>
    <value>420000000</value>
    <shrsOrPrnAmt>
      <sshPrnamt>3000000</sshPrnamt>
      <sshPrnamtType>SH</sshPrnamtType>
    </shrsOrPrnAmt>
  </infoTable>
</informationTable>`

func Test_ParseInfoTable(t *testing.T) {
	entries, err := ParseInfoTable([]byte(sampleInfoTable))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "APPLE INC", entries[0].NameOfIssuer)
	require.Equal(t, "037833100", entries[0].Cusip)
	require.Equal(t, int64(915000000), entries[0].Value)
	require.Equal(t, int64(4000000), entries[0].Shares)
}

func Test_DiffHoldings(t *testing.T) {
	tickerByCusip := map[string]string{
		"037833100": "AAPL",
		"67066G104": "NVDA",
		"594918104": "MSFT",
	}
	filingDate := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)

	previous := []InfoTableEntry{
		{Cusip: "037833100", Value: 900000000},
		{Cusip: "594918104", Value: 100000000},
	}
	current := []InfoTableEntry{
		{Cusip: "037833100", Value: 915000000},
		{Cusip: "67066G104", Value: 420000000},
	}

	signals, err := DiffHoldings("Berkshire Hathaway", filingDate, current, previous, tickerByCusip)
	require.NoError(t, err)
	require.Len(t, signals, 3)

	// sorted by ticker: AAPL increase, MSFT exit, NVDA new position
	require.Equal(t, "AAPL", signals[0].Ticker)
	require.Equal(t, domain.ActionBuy, signals[0].Action)
	require.Equal(t, "15000000", signals[0].Amount.String())

	require.Equal(t, "MSFT", signals[1].Ticker)
	require.Equal(t, domain.ActionSell, signals[1].Action)
	require.Equal(t, "100000000", signals[1].Amount.String())

	require.Equal(t, "NVDA", signals[2].Ticker)
	require.Equal(t, domain.ActionBuy, signals[2].Action)
	require.Equal(t, "420000000", signals[2].Amount.String())

	for _, s := range signals {
		require.Equal(t, domain.SourceQuarterlyFiling, s.Source)
		require.Equal(t, "Berkshire Hathaway", s.Actor)
		require.Equal(t, filingDate, s.Date)
	}
}

func Test_DiffHoldings_SkipsUnknownCusips(t *testing.T) {
	current := []InfoTableEntry{{Cusip: "999999999", Value: 1000000}}

	signals, err := DiffHoldings("Some Fund", time.Now(), current, nil, map[string]string{})
	require.NoError(t, err)
	require.Empty(t, signals)
}

func Test_InfoTableURL(t *testing.T) {
	filing := Filing{
		AccessionNumber: "0000950123-26-001234",
		Form:            "13F-HR",
		FilingDate:      "2026-02-05",
		PrimaryDocument: "infotable.xml",
	}

	url := InfoTableURL("0001067983", filing)
	require.Equal(t, "https://www.sec.gov/Archives/edgar/data/1067983/000095012326001234/infotable.xml", url)
}
