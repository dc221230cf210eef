package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"smartmoney/internal/domain"
	mock_repository "smartmoney/internal/repository/mocks"
	"smartmoney/pkg/arkfunds"
	"smartmoney/pkg/edgar"
	"smartmoney/pkg/finra"
	"smartmoney/pkg/quiverquant"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubCongressSource struct {
	trades []quiverquant.CongressTrade
	err    error
}

func (s stubCongressSource) GetCongressTrades() ([]quiverquant.CongressTrade, error) {
	return s.trades, s.err
}

type stubArkSource struct {
	trades   []arkfunds.Trade
	holdings []arkfunds.Holding
	err      error
}

func (s stubArkSource) GetTrades(fund string) ([]arkfunds.Trade, error) {
	return s.trades, s.err
}

func (s stubArkSource) GetHoldings(csvURL string) ([]arkfunds.Holding, error) {
	return s.holdings, nil
}

type stubShortVolumeSource struct {
	records []finra.ShortVolumeRecord
	err     error
}

func (s stubShortVolumeSource) GetDailyShortVolume(date time.Time) ([]finra.ShortVolumeRecord, error) {
	return s.records, s.err
}

type stubFilingSource struct {
	filings    []edgar.Filing
	infoTables map[string][]edgar.InfoTableEntry
	err        error
}

func (s stubFilingSource) GetRecent13FFilings(cik string) ([]edgar.Filing, error) {
	return s.filings, s.err
}

func (s stubFilingSource) GetInfoTable(url string) ([]edgar.InfoTableEntry, error) {
	table, ok := s.infoTables[url]
	if !ok {
		return nil, fmt.Errorf("no info table at %s", url)
	}
	return table, nil
}

func Test_signalCollectionHandler_CollectSignals(t *testing.T) {
	asOf := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	congressTrades := []quiverquant.CongressTrade{
		{Representative: "Nancy Pelosi", Ticker: "NVDA", Transaction: "Purchase", TransactionDate: "2026-02-09", Range: "$1,000,001 - $5,000,000"},
		{Representative: "Some Rep", Transaction: "Purchase", TransactionDate: "2026-02-09"}, // no ticker, dropped
	}
	arkTrades := []arkfunds.Trade{
		{Fund: "ARKK", Date: "2026-02-09", Direction: "Buy", Ticker: "TSLA", EtfPercent: 0.31},
	}
	arkHoldings := []arkfunds.Holding{
		{Ticker: "TSLA", Weight: 9.85},
	}

	berkshire := TrackedInstitution{CIK: "0001067983", Name: "Berkshire Hathaway"}
	filings := []edgar.Filing{
		{AccessionNumber: "0000950123-26-001234", Form: "13F-HR", FilingDate: "2026-02-05", PrimaryDocument: "infotable.xml"},
		{AccessionNumber: "0000950123-25-009876", Form: "13F-HR", FilingDate: "2025-11-14", PrimaryDocument: "infotable.xml"},
	}
	infoTables := map[string][]edgar.InfoTableEntry{
		edgar.InfoTableURL(berkshire.CIK, filings[0]): {
			{NameOfIssuer: "APPLE INC", Cusip: "037833100", Value: 70_000_000_000, Shares: 300_000_000},
		},
		edgar.InfoTableURL(berkshire.CIK, filings[1]): {
			{NameOfIssuer: "APPLE INC", Cusip: "037833100", Value: 60_000_000_000, Shares: 280_000_000},
		},
	}
	tickerByCusip := map[string]string{"037833100": "AAPL"}

	// 5 quiet symbols and one outlier, so only the outlier clears the
	// z-score threshold
	shortVolumeRecords := []finra.ShortVolumeRecord{}
	for i := 0; i < 5; i++ {
		shortVolumeRecords = append(shortVolumeRecords, finra.ShortVolumeRecord{
			Date: asOf, Symbol: fmt.Sprintf("QUIET%d", i), ShortVolume: 400_000, TotalVolume: 1_000_000,
		})
	}
	shortVolumeRecords = append(shortVolumeRecords, finra.ShortVolumeRecord{
		Date: asOf, Symbol: "GME", ShortVolume: 900_000, TotalVolume: 1_000_000,
	})

	t.Run("collects and persists from all feeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		signalRepository := mock_repository.NewMockSignalRepository(ctrl)

		h := &signalCollectionHandler{
			SignalRepository:    signalRepository,
			CongressSource:      stubCongressSource{trades: congressTrades},
			ArkSource:           stubArkSource{trades: arkTrades, holdings: arkHoldings},
			ShortVolumeSource:   stubShortVolumeSource{records: shortVolumeRecords},
			FilingSource:        stubFilingSource{filings: filings, infoTables: infoTables},
			ArkHoldingsURLs:     map[string]string{"ARKK": "https://example.com/arkk.csv"},
			TrackedInstitutions: []TrackedInstitution{berkshire},
			TickerByCusip:       tickerByCusip,
			DarkPoolMinVolume:   500_000,
			DarkPoolZThreshold:  2.0,
		}

		signalRepository.EXPECT().AddMany(gomock.Any(), gomock.Any()).Return(nil)

		signals, err := h.CollectSignals(context.Background(), asOf)
		require.NoError(t, err)
		require.Len(t, signals, 4)

		bySource := map[domain.SignalSource][]domain.Signal{}
		for _, s := range signals {
			bySource[s.Source] = append(bySource[s.Source], s)
		}

		require.Len(t, bySource[domain.SourceLegislative], 1)
		require.Equal(t, "NVDA", bySource[domain.SourceLegislative][0].Ticker)

		require.Len(t, bySource[domain.SourceEtfManager], 1)
		require.NotNil(t, bySource[domain.SourceEtfManager][0].WeightPct)
		require.InDelta(t, 9.85, *bySource[domain.SourceEtfManager][0].WeightPct, 1e-9)

		require.Len(t, bySource[domain.SourceDarkPool], 1)
		require.Equal(t, "GME", bySource[domain.SourceDarkPool][0].Ticker)

		require.Len(t, bySource[domain.SourceQuarterlyFiling], 1)
		filing := bySource[domain.SourceQuarterlyFiling][0]
		require.Equal(t, "AAPL", filing.Ticker)
		require.Equal(t, "Berkshire Hathaway", filing.Actor)
		require.Equal(t, domain.ActionBuy, filing.Action)
		require.Equal(t, "10000000000", filing.Amount.String())
	})

	t.Run("one failing feed doesn't sink the pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		signalRepository := mock_repository.NewMockSignalRepository(ctrl)

		h := &signalCollectionHandler{
			SignalRepository:    signalRepository,
			CongressSource:      stubCongressSource{err: fmt.Errorf("quiver is down")},
			ArkSource:           stubArkSource{trades: arkTrades},
			ShortVolumeSource:   stubShortVolumeSource{err: fmt.Errorf("finra is down")},
			FilingSource:        stubFilingSource{err: fmt.Errorf("edgar is down")},
			ArkHoldingsURLs:     map[string]string{"ARKK": "https://example.com/arkk.csv"},
			TrackedInstitutions: []TrackedInstitution{berkshire},
			DarkPoolMinVolume:   500_000,
			DarkPoolZThreshold:  2.0,
		}

		signalRepository.EXPECT().AddMany(gomock.Any(), gomock.Any()).Return(nil)

		signals, err := h.CollectSignals(context.Background(), asOf)
		require.NoError(t, err)
		require.Len(t, signals, 1)
		require.Equal(t, domain.SourceEtfManager, signals[0].Source)
	})

	t.Run("errors when every feed fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		signalRepository := mock_repository.NewMockSignalRepository(ctrl)

		h := &signalCollectionHandler{
			SignalRepository:   signalRepository,
			CongressSource:     stubCongressSource{err: fmt.Errorf("down")},
			ArkSource:          stubArkSource{err: fmt.Errorf("down")},
			ShortVolumeSource:  stubShortVolumeSource{err: fmt.Errorf("down")},
			ArkHoldingsURLs:    map[string]string{"ARKK": "https://example.com/arkk.csv"},
			DarkPoolMinVolume:  500_000,
			DarkPoolZThreshold: 2.0,
		}

		_, err := h.CollectSignals(context.Background(), asOf)
		require.Error(t, err)
	})
}
