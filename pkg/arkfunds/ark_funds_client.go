package arkfunds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"smartmoney/internal/domain"
	"smartmoney/internal/util"

	"github.com/gocarina/gocsv"
)

// Client pulls ARK Invest ETF activity. Trade disclosures come from the
// arkfunds.io community API; fund weights come from ARK's official
// daily holdings CSV.
type Client struct {
	HttpClient *http.Client
}

type Trade struct {
	Fund       string  `json:"fund"`
	Date       string  `json:"date"`
	Direction  string  `json:"direction"`
	Ticker     string  `json:"ticker"`
	Company    string  `json:"company"`
	Shares     int64   `json:"shares"`
	EtfPercent float64 `json:"etf_percent"`
}

type tradesResponse struct {
	Symbol string  `json:"symbol"`
	Trades []Trade `json:"trades"`
}

func (c Client) GetTrades(fund string) ([]Trade, error) {
	url := fmt.Sprintf("https://arkfunds.io/api/v2/etf/trades?symbol=%s", fund)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("ark trades request failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	out := tradesResponse{}
	err = json.Unmarshal(responseBytes, &out)
	if err != nil {
		return nil, err
	}

	return out.Trades, nil
}

type Holding struct {
	Date        string  `csv:"date"`
	Fund        string  `csv:"fund"`
	Company     string  `csv:"company"`
	Ticker      string  `csv:"ticker"`
	Cusip       string  `csv:"cusip"`
	Shares      float64 `csv:"shares"`
	MarketValue float64 `csv:"market value ($)"`
	Weight      float64 `csv:"weight (%)"`
}

// GetHoldings downloads and parses the official daily holdings CSV for
// a fund, e.g. ARKK. Weights from here fill in WeightPct on trade
// signals since the trade feed only reports percent of ETF traded.
func (c Client) GetHoldings(csvURL string) ([]Holding, error) {
	req, err := http.NewRequest(http.MethodGet, csvURL, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("ark holdings request failed with status code %d", response.StatusCode)
	}

	return ParseHoldingsCsv(responseBytes)
}

// ParseHoldingsCsv parses ARK's holdings CSV. The file ends with a few
// disclaimer lines that aren't rows, so rows without a ticker are
// skipped.
func ParseHoldingsCsv(contents []byte) ([]Holding, error) {
	rows := []Holding{}
	err := gocsv.UnmarshalBytes(bytes.TrimSpace(contents), &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse holdings csv: %w", err)
	}

	out := []Holding{}
	for _, row := range rows {
		if strings.TrimSpace(row.Ticker) == "" {
			continue
		}
		out = append(out, row)
	}

	return out, nil
}

// ToSignal converts an ARK trade into an etf-manager signal.
// holdingWeights maps ticker to current fund weight percent, and may
// be nil.
func (t Trade) ToSignal(holdingWeights map[string]float64) (*domain.Signal, error) {
	if strings.TrimSpace(t.Ticker) == "" {
		return nil, nil
	}

	action := domain.ActionBuy
	if strings.EqualFold(t.Direction, "Sell") {
		action = domain.ActionSell
	}

	date, err := util.ParseDate(t.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse trade date %q: %w", t.Date, err)
	}

	var weightPct *float64
	if w, ok := holdingWeights[strings.ToUpper(t.Ticker)]; ok && w > 0 {
		weightPct = &w
	} else if t.EtfPercent > 0 {
		w := t.EtfPercent
		weightPct = &w
	}

	return domain.NewSignal(
		domain.SourceEtfManager,
		t.Fund,
		t.Ticker,
		action,
		date,
		nil,
		weightPct,
	)
}
