package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"smartmoney/internal/logger"
	"smartmoney/internal/repository"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

const benchmarkSymbol = "SPY"

// ExcessReturnService computes how much a ticker has outperformed the
// benchmark over a trailing window. Results are in percentage points,
// e.g. 5.2 means the ticker returned 5.2pp more than SPY.
type ExcessReturnService interface {
	ExcessReturns(ctx context.Context, tickers []string, windowDays int) (map[string]float64, error)
}

type excessReturnServiceHandler struct {
	AlpacaRepository repository.AlpacaRepository
}

func NewExcessReturnService(alpacaRepository repository.AlpacaRepository) ExcessReturnService {
	return &excessReturnServiceHandler{
		AlpacaRepository: alpacaRepository,
	}
}

func (h excessReturnServiceHandler) ExcessReturns(ctx context.Context, tickers []string, windowDays int) (map[string]float64, error) {
	log := logger.FromContext(ctx)

	if windowDays <= 0 {
		return nil, fmt.Errorf("window must be positive, got %d", windowDays)
	}
	if len(tickers) == 0 {
		return map[string]float64{}, nil
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -windowDays)

	benchmarkReturn, err := benchmarkPercentReturn(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to compute benchmark return: %w", err)
	}

	out := map[string]float64{}
	mu := sync.Mutex{}

	numGoroutines := 5
	inputCh := make(chan string, len(tickers))
	for _, t := range tickers {
		inputCh <- t
	}
	close(inputCh)

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case ticker, ok := <-inputCh:
					if !ok {
						return
					}
					ret, err := h.tickerPercentReturn(ctx, ticker, start, end)
					if err != nil {
						// a missing return just means no bonus for the ticker
						log.Warnf("failed to compute return for %s: %s", ticker, err.Error())
						continue
					}
					mu.Lock()
					out[ticker] = ret - benchmarkReturn
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	return out, nil
}

func (h excessReturnServiceHandler) tickerPercentReturn(ctx context.Context, ticker string, start, end time.Time) (float64, error) {
	bars, err := h.AlpacaRepository.GetDailyBars(ctx, ticker, start, end)
	if err != nil {
		return 0, err
	}
	if len(bars) < 2 {
		return 0, fmt.Errorf("need at least 2 bars to compute a return, got %d", len(bars))
	}

	first := bars[0].Close
	last := bars[len(bars)-1].Close
	if first == 0 {
		return 0, fmt.Errorf("got 0 starting price for %s", ticker)
	}

	return 100 * (last - first) / first, nil
}

func benchmarkPercentReturn(start, end time.Time) (float64, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   benchmarkSymbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	first := 0.0
	last := 0.0
	for iter.Next() {
		adjClose := iter.Bar().AdjClose.InexactFloat64()
		if first == 0 {
			first = adjClose
		}
		last = adjClose
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to get prices for %s: %w", benchmarkSymbol, err)
	}
	if first == 0 {
		return 0, fmt.Errorf("no usable %s prices in window", benchmarkSymbol)
	}

	return 100 * (last - first) / first, nil
}
