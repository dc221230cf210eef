package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smartmoney/internal/logger"
	"smartmoney/internal/repository"
	"smartmoney/internal/service"
)

// DigestApp assembles and sends the daily digest email: top ranked
// tickers from a scoring pass, with optional LLM commentary on top.
type DigestApp interface {
	SendDailyDigest(ctx context.Context, in SendDailyDigestInput) error
}

type SendDailyDigestInput struct {
	// TopN caps how many tickers make the email. Defaults to 10.
	TopN int
	// StrategyName and LookbackDays are passed through to the scoring
	// pass.
	StrategyName string
	LookbackDays int
	// SkipCollection reuses already-stored signals, for when the digest
	// runs right after a collection pass.
	SkipCollection bool
}

type digestAppHandler struct {
	Db                         *sql.DB
	ScoringPassApp             ScoringPassApp
	GptRepository              repository.GptRepository
	EmailService               service.EmailService
	DigestSubscriberRepository repository.DigestSubscriberRepository
}

func NewDigestApp(
	db *sql.DB,
	scoringPassApp ScoringPassApp,
	gptRepository repository.GptRepository,
	emailService service.EmailService,
	digestSubscriberRepository repository.DigestSubscriberRepository,
) DigestApp {
	return &digestAppHandler{
		Db:                         db,
		ScoringPassApp:             scoringPassApp,
		GptRepository:              gptRepository,
		EmailService:               emailService,
		DigestSubscriberRepository: digestSubscriberRepository,
	}
}

func (h *digestAppHandler) SendDailyDigest(ctx context.Context, in SendDailyDigestInput) error {
	log := logger.FromContext(ctx)

	if in.TopN <= 0 {
		in.TopN = 10
	}

	result, err := h.ScoringPassApp.RunScoringPass(ctx, RunScoringPassInput{
		StrategyName:   in.StrategyName,
		LookbackDays:   in.LookbackDays,
		SkipCollection: in.SkipCollection,
	})
	if err != nil {
		return fmt.Errorf("digest scoring pass failed: %w", err)
	}

	scored := result.Tickers
	if len(scored) > in.TopN {
		scored = scored[:in.TopN]
	}
	if len(scored) == 0 {
		return fmt.Errorf("scoring pass produced no tickers to digest")
	}

	// commentary is a nice-to-have; the digest still goes out without it
	commentary, err := h.GptRepository.ConstructDigestCommentary(ctx, scored)
	if err != nil {
		log.Warnf("sending digest without commentary: %s", err.Error())
		commentary = ""
	}

	subscribers, err := h.DigestSubscriberRepository.ListActive(h.Db)
	if err != nil {
		return fmt.Errorf("failed to list digest subscribers: %w", err)
	}
	if len(subscribers) == 0 {
		log.Info("no active digest subscribers, nothing to send")
		return nil
	}

	sent := 0
	for _, subscriber := range subscribers {
		err = h.EmailService.SendDigestEmail(subscriber, scored, commentary, time.Now().UTC())
		if err != nil {
			log.Errorf("failed to send digest to %s: %s", subscriber.Email, err.Error())
			continue
		}
		sent++
	}
	if sent == 0 {
		return fmt.Errorf("failed to send digest to any of %d subscribers", len(subscribers))
	}

	log.Infof("sent digest to %d/%d subscribers", sent, len(subscribers))

	return nil
}
