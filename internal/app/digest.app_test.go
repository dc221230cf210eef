package app

import (
	"context"
	"fmt"
	"testing"

	"smartmoney/internal/db/models/postgres/public/model"
	"smartmoney/internal/domain"
	mock_repository "smartmoney/internal/repository/mocks"
	mock_service "smartmoney/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubScoringPassApp struct {
	result *domain.ScoredAt
	err    error
}

func (s stubScoringPassApp) RunScoringPass(ctx context.Context, in RunScoringPassInput) (*domain.ScoredAt, error) {
	return s.result, s.err
}

func digestScoredTickers(n int) []domain.ScoredTicker {
	out := []domain.ScoredTicker{}
	for i := 0; i < n; i++ {
		out = append(out, domain.ScoredTicker{
			Ticker:     fmt.Sprintf("TK%02d", i),
			TotalScore: float64(10 - i),
			Confidence: domain.ConfidenceMedium,
		})
	}
	return out
}

func Test_digestAppHandler_SendDailyDigest(t *testing.T) {
	subscribers := []model.DigestSubscriber{
		{SubscriberID: uuid.New(), Email: "a@example.com", Active: true},
		{SubscriberID: uuid.New(), Email: "b@example.com", Active: true},
	}

	t.Run("sends top N with commentary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		emailService := mock_service.NewMockEmailService(ctrl)
		subscriberRepository := mock_repository.NewMockDigestSubscriberRepository(ctrl)

		h := NewDigestApp(nil, stubScoringPassApp{result: &domain.ScoredAt{Tickers: digestScoredTickers(12)}}, gptRepository, emailService, subscriberRepository)

		gptRepository.EXPECT().
			ConstructDigestCommentary(gomock.Any(), gomock.Len(5)).
			Return("busy day for TK00", nil)
		subscriberRepository.EXPECT().ListActive(gomock.Any()).Return(subscribers, nil)
		emailService.EXPECT().
			SendDigestEmail(subscribers[0], gomock.Len(5), "busy day for TK00", gomock.Any()).
			Return(nil)
		emailService.EXPECT().
			SendDigestEmail(subscribers[1], gomock.Len(5), "busy day for TK00", gomock.Any()).
			Return(nil)

		err := h.SendDailyDigest(context.Background(), SendDailyDigestInput{TopN: 5})
		require.NoError(t, err)
	})

	t.Run("commentary failure still sends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		emailService := mock_service.NewMockEmailService(ctrl)
		subscriberRepository := mock_repository.NewMockDigestSubscriberRepository(ctrl)

		h := NewDigestApp(nil, stubScoringPassApp{result: &domain.ScoredAt{Tickers: digestScoredTickers(3)}}, gptRepository, emailService, subscriberRepository)

		gptRepository.EXPECT().ConstructDigestCommentary(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("gpt is down"))
		subscriberRepository.EXPECT().ListActive(gomock.Any()).Return(subscribers[:1], nil)
		emailService.EXPECT().SendDigestEmail(subscribers[0], gomock.Any(), "", gomock.Any()).Return(nil)

		err := h.SendDailyDigest(context.Background(), SendDailyDigestInput{})
		require.NoError(t, err)
	})

	t.Run("partial send failures tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		emailService := mock_service.NewMockEmailService(ctrl)
		subscriberRepository := mock_repository.NewMockDigestSubscriberRepository(ctrl)

		h := NewDigestApp(nil, stubScoringPassApp{result: &domain.ScoredAt{Tickers: digestScoredTickers(3)}}, gptRepository, emailService, subscriberRepository)

		gptRepository.EXPECT().ConstructDigestCommentary(gomock.Any(), gomock.Any()).Return("ok", nil)
		subscriberRepository.EXPECT().ListActive(gomock.Any()).Return(subscribers, nil)
		emailService.EXPECT().SendDigestEmail(subscribers[0], gomock.Any(), "ok", gomock.Any()).Return(fmt.Errorf("bounced"))
		emailService.EXPECT().SendDigestEmail(subscribers[1], gomock.Any(), "ok", gomock.Any()).Return(nil)

		err := h.SendDailyDigest(context.Background(), SendDailyDigestInput{})
		require.NoError(t, err)
	})

	t.Run("all sends failing errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		emailService := mock_service.NewMockEmailService(ctrl)
		subscriberRepository := mock_repository.NewMockDigestSubscriberRepository(ctrl)

		h := NewDigestApp(nil, stubScoringPassApp{result: &domain.ScoredAt{Tickers: digestScoredTickers(3)}}, gptRepository, emailService, subscriberRepository)

		gptRepository.EXPECT().ConstructDigestCommentary(gomock.Any(), gomock.Any()).Return("ok", nil)
		subscriberRepository.EXPECT().ListActive(gomock.Any()).Return(subscribers[:1], nil)
		emailService.EXPECT().SendDigestEmail(subscribers[0], gomock.Any(), "ok", gomock.Any()).Return(fmt.Errorf("bounced"))

		err := h.SendDailyDigest(context.Background(), SendDailyDigestInput{})
		require.Error(t, err)
	})

	t.Run("scoring pass failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		emailService := mock_service.NewMockEmailService(ctrl)
		subscriberRepository := mock_repository.NewMockDigestSubscriberRepository(ctrl)

		h := NewDigestApp(nil, stubScoringPassApp{err: fmt.Errorf("no signals")}, gptRepository, emailService, subscriberRepository)

		err := h.SendDailyDigest(context.Background(), SendDailyDigestInput{})
		require.Error(t, err)
	})
}
