package quiverquant

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"smartmoney/internal/domain"
	"smartmoney/internal/logger"
	"smartmoney/internal/util"

	"github.com/shopspring/decimal"
)

// Client wraps the Quiver Quantitative congressional trading API.
type Client struct {
	HttpClient *http.Client
	ApiKey     string
}

type CongressTrade struct {
	Representative  string  `json:"Representative"`
	Ticker          string  `json:"Ticker"`
	Transaction     string  `json:"Transaction"`
	TransactionDate string  `json:"TransactionDate"`
	Range           string  `json:"Range"`
	Amount          float64 `json:"Amount"`
}

func (c Client) GetCongressTrades() ([]CongressTrade, error) {
	url := "https://api.quiverquant.com/beta/live/congresstrading"
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Token %s", c.ApiKey))

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == 429 {
		logger.Debug("hit quiver rate limit. sleeping...")
		time.Sleep(60 * time.Second)
		return c.GetCongressTrades()
	} else if response.StatusCode != 200 {
		return nil, fmt.Errorf("quiver request failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	trades := []CongressTrade{}
	err = json.Unmarshal(responseBytes, &trades)
	if err != nil {
		return nil, err
	}

	return trades, nil
}

// ToSignal converts a congressional trade into a legislative signal.
// Trades without a listed ticker (bonds, munis) return nil.
func (t CongressTrade) ToSignal() (*domain.Signal, error) {
	if strings.TrimSpace(t.Ticker) == "" {
		return nil, nil
	}

	action := domain.ActionBuy
	if strings.EqualFold(t.Transaction, "Sale") || strings.HasPrefix(strings.ToLower(t.Transaction), "sale") {
		action = domain.ActionSell
	}

	date, err := util.ParseDate(t.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction date %q: %w", t.TransactionDate, err)
	}

	amount := t.Amount
	if amount == 0 {
		amount = rangeLowerBound(t.Range)
	}

	var amountDecimal *decimal.Decimal
	if amount > 0 {
		d := decimal.NewFromFloat(amount)
		amountDecimal = &d
	}

	return domain.NewSignal(
		domain.SourceLegislative,
		t.Representative,
		t.Ticker,
		action,
		date,
		amountDecimal,
		nil,
	)
}

// rangeLowerBound parses the lower bound out of a congressional
// disclosure range like "$100,001 - $250,000". Returns 0 if the range
// is malformed.
func rangeLowerBound(r string) float64 {
	parts := strings.Split(r, "-")
	if len(parts) == 0 {
		return 0
	}

	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(parts[0])
	if cleaned == "" {
		return 0
	}

	out, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return out
}
