package service

import (
	"testing"
	"time"

	"smartmoney/internal/db/models/postgres/public/model"
	"smartmoney/internal/domain"
	mock_repository "smartmoney/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleDigestScores() []domain.ScoredTicker {
	return []domain.ScoredTicker{
		{
			Ticker: "NVDA",
			Signals: []domain.Signal{
				{Source: domain.SourceLegislative, Actor: "Nancy Pelosi", Ticker: "NVDA", Action: domain.ActionBuy},
				{Source: domain.SourceEtfManager, Actor: "ARKK", Ticker: "NVDA", Action: domain.ActionBuy},
			},
			TotalScore: 8.45,
			Confidence: domain.ConfidenceHigh,
		},
		{
			Ticker: "AAPL",
			Signals: []domain.Signal{
				{Source: domain.SourceQuarterlyFiling, Actor: "Berkshire Hathaway", Ticker: "AAPL", Action: domain.ActionBuy},
			},
			TotalScore: 6.10,
			Confidence: domain.ConfidenceMedium,
		},
	}
}

func Test_emailServiceHandler_GenerateDigestEmail(t *testing.T) {
	t.Run("renders ranked tickers and commentary", func(t *testing.T) {
		svc := NewEmailService(nil)
		asOf := time.Date(2026, 2, 13, 12, 0, 0, 0, time.UTC)

		subject, body, err := svc.GenerateDigestEmail(sampleDigestScores(), "NVDA saw overlapping buys.", asOf)
		require.NoError(t, err)

		require.Equal(t, "Smart Money Digest for Feb 13, 2026", subject)
		require.Contains(t, body, "NVDA")
		require.Contains(t, body, "8.45")
		require.Contains(t, body, "HIGH")
		require.Contains(t, body, "AAPL")
		require.Contains(t, body, "NVDA saw overlapping buys.")
		require.Contains(t, body, "Friday, February 13, 2026")
	})

	t.Run("empty commentary omitted", func(t *testing.T) {
		svc := NewEmailService(nil)

		_, body, err := svc.GenerateDigestEmail(sampleDigestScores(), "", time.Now())
		require.NoError(t, err)
		require.NotContains(t, body, "<p></p>")
	})

	t.Run("errors with no scored tickers", func(t *testing.T) {
		svc := NewEmailService(nil)

		_, _, err := svc.GenerateDigestEmail(nil, "", time.Now())
		require.Error(t, err)
	})
}

func Test_emailServiceHandler_SendDigestEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	emailRepository := mock_repository.NewMockEmailRepository(ctrl)
	svc := NewEmailService(emailRepository)

	subscriber := model.DigestSubscriber{
		SubscriberID: uuid.New(),
		Email:        "reader@example.com",
		Active:       true,
	}
	asOf := time.Date(2026, 2, 13, 12, 0, 0, 0, time.UTC)

	emailRepository.EXPECT().
		SendEmail("reader@example.com", "Smart Money Digest for Feb 13, 2026", gomock.Any()).
		Return(nil)

	err := svc.SendDigestEmail(subscriber, sampleDigestScores(), "", asOf)
	require.NoError(t, err)
}
