package api

import (
	"fmt"
	"time"

	"smartmoney/internal"
	"smartmoney/internal/domain"
	"smartmoney/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SignalInput struct {
	Source    string   `json:"source"`
	Actor     string   `json:"actor"`
	Ticker    string   `json:"ticker"`
	Action    string   `json:"action"`
	Date      string   `json:"date"`
	Amount    *float64 `json:"amount"`
	WeightPct *float64 `json:"weightPct"`
}

func (in SignalInput) toDomain() (*domain.Signal, error) {
	date := time.Time{}
	if in.Date != "" {
		parsed, err := util.ParseDate(in.Date)
		if err != nil {
			return nil, fmt.Errorf("date must be YYYY-MM-DD, got %q", in.Date)
		}
		date = parsed
	}

	var amount *decimal.Decimal
	if in.Amount != nil {
		d := decimal.NewFromFloat(*in.Amount)
		amount = &d
	}

	return domain.NewSignal(
		domain.SignalSource(in.Source),
		in.Actor,
		in.Ticker,
		domain.SignalAction(in.Action),
		date,
		amount,
		in.WeightPct,
	)
}

func parseSignalInputs(inputs []SignalInput) ([]domain.Signal, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("at least one signal is required")
	}

	out := make([]domain.Signal, 0, len(inputs))
	for i, in := range inputs {
		signal, err := in.toDomain()
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", i, err)
		}
		out = append(out, *signal)
	}

	return out, nil
}

type ScoreRequest struct {
	Signals  []SignalInput `json:"signals"`
	Strategy string        `json:"strategy"`
	// WindowDays and ExcessReturns only apply to the formula strategy.
	WindowDays    int                `json:"windowDays"`
	ExcessReturns map[string]float64 `json:"excessReturns"`
}

type ScoreResponse struct {
	Strategy string                `json:"strategy"`
	Tickers  []domain.ScoredTicker `json:"tickers"`
}

// score runs a scoring pass over caller-supplied signals without
// touching storage. This is the "what would these events score"
// endpoint the UI calls while composing scenarios.
func (h ApiHandler) score(c *gin.Context) {
	var requestBody ScoreRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	signals, err := parseSignalInputs(requestBody.Signals)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var strategy internal.ScoringStrategy
	if requestBody.Strategy == "formula" {
		windowDays := requestBody.WindowDays
		if windowDays <= 0 {
			windowDays = 30
		}
		strategy = internal.NewFormulaStrategy(windowDays, requestBody.ExcessReturns)
	} else {
		strategy, err = internal.StrategyByName(requestBody.Strategy)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
	}

	scored, err := strategy.Score(signals, time.Now().UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, ScoreResponse{
		Strategy: strategy.Name(),
		Tickers:  scored,
	})
}
