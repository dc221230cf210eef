package repository

import (
	"context"
	"fmt"
	"strings"

	"smartmoney/internal/domain"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	ConstructDigestCommentary(ctx context.Context, scored []domain.ScoredTicker) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const digestPrompt = `
You are writing a short market commentary for a daily "smart money" digest email. The reader follows trades made by legislators, ETF managers, institutional 13F filers, and unusual dark pool activity.

You will be given a ranked list of tickers. Each entry includes a composite confluence score (0-10), a confidence tier, and the underlying signals (who acted, through what channel, and when).

Write 2-3 sentences summarizing the day's most notable overlaps. Mention tickers by symbol. Do not give financial advice, price targets, or predictions. Do not invent signals that are not in the list.
`

func (h gptRepositoryHandler) ConstructDigestCommentary(ctx context.Context, scored []domain.ScoredTicker) (string, error) {
	if len(scored) == 0 {
		return "", fmt.Errorf("cannot construct commentary without scored tickers")
	}

	sb := strings.Builder{}
	sb.WriteString(digestPrompt)
	sb.WriteString("\nToday's ranked tickers:\n")
	for i, st := range scored {
		sb.WriteString(fmt.Sprintf("%d. %s score=%.2f confidence=%s\n", i+1, st.Ticker, st.TotalScore, st.Confidence))
		for _, s := range st.Signals {
			sb.WriteString(fmt.Sprintf("  - %s via %s (%s)\n", s.Actor, s.Source, s.Action))
		}
	}

	resp, err := h.GptClient.SimpleSend(ctx, sb.String())
	if err != nil {
		return "", fmt.Errorf("failed to get digest commentary: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("gpt response contained no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
