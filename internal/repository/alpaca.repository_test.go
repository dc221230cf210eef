package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func initializeHandler() (AlpacaRepository, error) {
	secretsFile := "../../secrets-dev.json"
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open secrets-dev.json: %w", err)
	}

	type secrets struct {
		Alpaca struct {
			ApiKey    string `json:"apiKey"`
			ApiSecret string `json:"apiSecret"`
		} `json:"alpaca"`
	}

	s := secrets{}
	err = json.Unmarshal(f, &s)
	if err != nil {
		return nil, err
	}

	return NewAlpacaRepository(s.Alpaca.ApiKey, s.Alpaca.ApiSecret), nil
}

func Test_alpacaRepositoryHandler_GetDailyBars(t *testing.T) {
	if true {
		t.Skip()
	}

	handler, err := initializeHandler()
	require.NoError(t, err)

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -45)

	bars, err := handler.GetDailyBars(context.Background(), "AAPL", start, end)
	require.NoError(t, err)
	require.NotEmpty(t, bars)

	fmt.Println(len(bars))
	fmt.Println(bars[0].Timestamp, bars[0].Close)
	fmt.Println(bars[len(bars)-1].Timestamp, bars[len(bars)-1].Close)
}

func Test_alpacaRepositoryHandler_GetLatestPrices(t *testing.T) {
	if true {
		t.Skip()
	}

	handler, err := initializeHandler()
	require.NoError(t, err)

	prices, err := handler.GetLatestPrices(context.Background(), []string{"AAPL", "NVDA", "SPY"})
	require.NoError(t, err)

	for symbol, price := range prices {
		fmt.Println(symbol, price.String())
	}
}
