package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SignalSource identifies the class of tracked "smart money" activity a
// signal came from. This is a closed set - collectors map whatever the
// upstream feed calls itself onto one of these.
type SignalSource string

const (
	SourceLegislative     SignalSource = "legislative"
	SourceEtfManager      SignalSource = "etf-manager"
	SourceQuarterlyFiling SignalSource = "quarterly-filing"
	SourceInsider         SignalSource = "insider"
	SourceOptions         SignalSource = "options"
	SourceDarkPool        SignalSource = "dark-pool"
)

var knownSources = map[SignalSource]bool{
	SourceLegislative:     true,
	SourceEtfManager:      true,
	SourceQuarterlyFiling: true,
	SourceInsider:         true,
	SourceOptions:         true,
	SourceDarkPool:        true,
}

type SignalAction string

const (
	ActionBuy  SignalAction = "BUY"
	ActionSell SignalAction = "SELL"
)

// Signal is one observed trade/ownership event from a tracked source.
// Richer per-source actions (exercise, partial sale, etc) are collapsed
// to BUY/SELL by the collectors before they get here.
type Signal struct {
	Source SignalSource `json:"source"`
	// Actor is the person or fund that originated the event. Only used
	// for weight lookup - two signals from the same actor are still two
	// signals.
	Actor  string       `json:"actor"`
	Ticker string       `json:"ticker"`
	Action SignalAction `json:"action"`
	// Date is the calendar date of the underlying event, not the
	// disclosure date. Zero value means the collector couldn't parse it.
	Date time.Time `json:"date"`
	// Amount is the dollar magnitude of the trade, when the source
	// reports one.
	Amount *decimal.Decimal `json:"amount,omitempty"`
	// WeightPct is the event's share of the actor's total reported
	// position, when the source reports one instead of (or alongside)
	// a dollar amount.
	WeightPct *float64 `json:"weightPct,omitempty"`
}

// NewSignal validates caller-supplied fields at the boundary. Missing
// optional fields are fine (scoring degrades to neutral values), but
// fields that are present and nonsensical are rejected here rather than
// silently clamped downstream.
func NewSignal(
	source SignalSource,
	actor string,
	ticker string,
	action SignalAction,
	date time.Time,
	amount *decimal.Decimal,
	weightPct *float64,
) (*Signal, error) {
	if !knownSources[source] {
		return nil, fmt.Errorf("unknown signal source %q", source)
	}
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if len(ticker) < 1 || len(ticker) > 10 {
		return nil, fmt.Errorf("ticker must be 1-10 characters, got %q", ticker)
	}
	if action != ActionBuy && action != ActionSell {
		return nil, fmt.Errorf("action must be BUY or SELL, got %q", action)
	}
	if amount != nil && amount.IsNegative() {
		return nil, fmt.Errorf("amount cannot be negative, got %s", amount.String())
	}
	if weightPct != nil && *weightPct < 0 {
		return nil, fmt.Errorf("weightPct cannot be negative, got %f", *weightPct)
	}

	return &Signal{
		Source:    source,
		Actor:     actor,
		Ticker:    ticker,
		Action:    action,
		Date:      date,
		Amount:    amount,
		WeightPct: weightPct,
	}, nil
}
