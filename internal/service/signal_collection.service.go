package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"smartmoney/internal/calculator"
	"smartmoney/internal/domain"
	"smartmoney/internal/logger"
	"smartmoney/internal/repository"
	"smartmoney/internal/util"
	"smartmoney/pkg/arkfunds"
	"smartmoney/pkg/edgar"
	"smartmoney/pkg/finra"
	"smartmoney/pkg/quiverquant"
)

const darkPoolActor = "FINRA consolidated tape"

// feed interfaces are narrowed here so the service can be tested
// without hitting the real endpoints.

type congressTradeSource interface {
	GetCongressTrades() ([]quiverquant.CongressTrade, error)
}

type arkTradeSource interface {
	GetTrades(fund string) ([]arkfunds.Trade, error)
	GetHoldings(csvURL string) ([]arkfunds.Holding, error)
}

type shortVolumeSource interface {
	GetDailyShortVolume(date time.Time) ([]finra.ShortVolumeRecord, error)
}

type filingSource interface {
	GetRecent13FFilings(cik string) ([]edgar.Filing, error)
	GetInfoTable(url string) ([]edgar.InfoTableEntry, error)
}

// TrackedInstitution is a 13F filer whose holdings we diff quarter over
// quarter.
type TrackedInstitution struct {
	// CIK is the zero-padded 10 digit EDGAR central index key.
	CIK  string
	Name string
}

// SignalCollectionService pulls raw events from every tracked feed,
// normalizes them into signals, and persists them. Each feed fails
// independently - one upstream outage shouldn't blank the whole day.
type SignalCollectionService interface {
	CollectSignals(ctx context.Context, asOf time.Time) ([]domain.Signal, error)
}

type signalCollectionHandler struct {
	Db               *sql.DB
	SignalRepository repository.SignalRepository

	CongressSource    congressTradeSource
	ArkSource         arkTradeSource
	ShortVolumeSource shortVolumeSource
	FilingSource      filingSource

	// ArkHoldingsURLs maps fund symbol to its official holdings CSV.
	ArkHoldingsURLs map[string]string

	// TrackedInstitutions are the 13F filers to diff; TickerByCusip
	// resolves their holdings, which EDGAR reports by CUSIP only.
	TrackedInstitutions []TrackedInstitution
	TickerByCusip       map[string]string

	// Dark pool records below this consolidated volume are ignored,
	// and a symbol only becomes a signal when its short ratio z-score
	// clears the threshold.
	DarkPoolMinVolume  int64
	DarkPoolZThreshold float64
}

func NewSignalCollectionService(
	db *sql.DB,
	signalRepository repository.SignalRepository,
	quiverClient *quiverquant.Client,
	arkClient *arkfunds.Client,
	finraClient *finra.Client,
	edgarClient *edgar.Client,
	arkHoldingsURLs map[string]string,
	trackedInstitutions []TrackedInstitution,
	tickerByCusip map[string]string,
) SignalCollectionService {
	return &signalCollectionHandler{
		Db:                  db,
		SignalRepository:    signalRepository,
		CongressSource:      quiverClient,
		ArkSource:           arkClient,
		ShortVolumeSource:   finraClient,
		FilingSource:        edgarClient,
		ArkHoldingsURLs:     arkHoldingsURLs,
		TrackedInstitutions: trackedInstitutions,
		TickerByCusip:       tickerByCusip,
		DarkPoolMinVolume:   500_000,
		DarkPoolZThreshold:  2.0,
	}
}

func (h *signalCollectionHandler) CollectSignals(ctx context.Context, asOf time.Time) ([]domain.Signal, error) {
	log := logger.FromContext(ctx)

	signals := []domain.Signal{}

	congressSignals, err := h.collectCongressTrades()
	if err != nil {
		log.Warnf("skipping legislative signals: %s", err.Error())
	} else {
		signals = append(signals, congressSignals...)
	}

	arkSignals, err := h.collectArkTrades(ctx)
	if err != nil {
		log.Warnf("skipping etf-manager signals: %s", err.Error())
	} else {
		signals = append(signals, arkSignals...)
	}

	filingSignals, err := h.collect13FChanges(ctx)
	if err != nil {
		log.Warnf("skipping quarterly-filing signals: %s", err.Error())
	} else {
		signals = append(signals, filingSignals...)
	}

	darkPoolSignals, err := h.collectDarkPoolAnomalies(ctx, asOf)
	if err != nil {
		log.Warnf("skipping dark-pool signals: %s", err.Error())
	} else {
		signals = append(signals, darkPoolSignals...)
	}

	if len(signals) == 0 {
		return nil, fmt.Errorf("every signal feed failed or returned nothing")
	}

	err = h.SignalRepository.AddMany(h.Db, signals)
	if err != nil {
		return nil, fmt.Errorf("failed to persist collected signals: %w", err)
	}

	log.Infof("collected %d signals across feeds", len(signals))

	return signals, nil
}

func (h *signalCollectionHandler) collectCongressTrades() ([]domain.Signal, error) {
	trades, err := h.CongressSource.GetCongressTrades()
	if err != nil {
		return nil, err
	}

	out := []domain.Signal{}
	for _, t := range trades {
		signal, err := t.ToSignal()
		if err != nil || signal == nil {
			// unparseable rows are common in the congressional feed
			continue
		}
		out = append(out, *signal)
	}

	return out, nil
}

func (h *signalCollectionHandler) collectArkTrades(ctx context.Context) ([]domain.Signal, error) {
	log := logger.FromContext(ctx)

	out := []domain.Signal{}
	for fund, holdingsURL := range h.ArkHoldingsURLs {
		weights := map[string]float64{}
		holdings, err := h.ArkSource.GetHoldings(holdingsURL)
		if err != nil {
			log.Warnf("failed to load %s holdings, trades will use traded percent: %s", fund, err.Error())
		} else {
			for _, holding := range holdings {
				weights[strings.ToUpper(holding.Ticker)] = holding.Weight
			}
		}

		trades, err := h.ArkSource.GetTrades(fund)
		if err != nil {
			return nil, err
		}
		for _, t := range trades {
			signal, err := t.ToSignal(weights)
			if err != nil || signal == nil {
				continue
			}
			out = append(out, *signal)
		}
	}

	return out, nil
}

func (h *signalCollectionHandler) collect13FChanges(ctx context.Context) ([]domain.Signal, error) {
	log := logger.FromContext(ctx)

	if h.FilingSource == nil || len(h.TrackedInstitutions) == 0 {
		return nil, fmt.Errorf("no 13F filers configured")
	}

	out := []domain.Signal{}
	for _, inst := range h.TrackedInstitutions {
		filings, err := h.FilingSource.GetRecent13FFilings(inst.CIK)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s filings: %w", inst.Name, err)
		}
		// EDGAR lists filings newest first; diffing needs two quarters
		if len(filings) < 2 {
			log.Warnf("%s has %d 13F filings on record, need 2 to diff", inst.Name, len(filings))
			continue
		}

		current, err := h.FilingSource.GetInfoTable(edgar.InfoTableURL(inst.CIK, filings[0]))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s current holdings: %w", inst.Name, err)
		}
		previous, err := h.FilingSource.GetInfoTable(edgar.InfoTableURL(inst.CIK, filings[1]))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s prior holdings: %w", inst.Name, err)
		}

		filingDate, err := util.ParseDate(filings[0].FilingDate)
		if err != nil {
			return nil, fmt.Errorf("bad filing date %q for %s: %w", filings[0].FilingDate, inst.Name, err)
		}

		changes, err := edgar.DiffHoldings(inst.Name, filingDate, current, previous, h.TickerByCusip)
		if err != nil {
			return nil, err
		}
		out = append(out, changes...)
	}

	return out, nil
}

func (h *signalCollectionHandler) collectDarkPoolAnomalies(ctx context.Context, asOf time.Time) ([]domain.Signal, error) {
	records, err := h.ShortVolumeSource.GetDailyShortVolume(asOf)
	if err != nil {
		return nil, err
	}

	ratios := finra.ShortRatiosBySymbol(records, h.DarkPoolMinVolume)
	zScores, err := calculator.DarkPoolZScores(ratios)
	if err != nil {
		return nil, err
	}

	out := []domain.Signal{}
	for symbol, z := range zScores {
		if z < h.DarkPoolZThreshold {
			continue
		}
		signal, err := domain.NewSignal(
			domain.SourceDarkPool,
			darkPoolActor,
			symbol,
			domain.ActionBuy,
			asOf,
			nil,
			nil,
		)
		if err != nil {
			continue
		}
		out = append(out, *signal)
	}

	return out, nil
}
