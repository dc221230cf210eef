package service

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"smartmoney/internal/db/models/postgres/public/model"
	"smartmoney/internal/domain"
	"smartmoney/internal/repository"
)

// EmailService is responsible for the business logic around emails.
// It handles template rendering and formatting, but does NOT compute
// scores - those are passed in as domain objects.
type EmailService interface {
	// SendDigestEmail sends the daily digest to a subscriber. The scored
	// tickers are pre-computed and already ranked.
	SendDigestEmail(
		subscriber model.DigestSubscriber,
		scored []domain.ScoredTicker,
		commentary string,
		asOf time.Time,
	) error

	// GenerateDigestEmail generates the digest content. Returns the
	// subject and HTML body. Used internally by SendDigestEmail but can
	// also be called separately for previewing.
	GenerateDigestEmail(
		scored []domain.ScoredTicker,
		commentary string,
		asOf time.Time,
	) (string, string, error)
}

type emailServiceHandler struct {
	EmailRepository repository.EmailRepository
}

func NewEmailService(
	emailRepository repository.EmailRepository,
) EmailService {
	return &emailServiceHandler{
		EmailRepository: emailRepository,
	}
}

const digestTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #1a1a1a;">
	<h2>Smart Money Digest</h2>
	<p>{{ .Date }}</p>
	{{ if .Commentary }}<p>{{ .Commentary }}</p>{{ end }}
	<table cellpadding="6" cellspacing="0" border="1" style="border-collapse: collapse;">
		<tr>
			<th>Ticker</th>
			<th>Score</th>
			<th>Confidence</th>
			<th>Signals</th>
		</tr>
		{{ range .Rows }}
		<tr>
			<td>{{ .Ticker }}</td>
			<td>{{ .Score }}</td>
			<td>{{ .Confidence }}</td>
			<td>{{ .Signals }}</td>
		</tr>
		{{ end }}
	</table>
	<p style="font-size: 11px; color: #888;">This digest summarizes publicly disclosed trading activity. It is not investment advice.</p>
</body>
</html>`

type digestTemplateRow struct {
	Ticker     string
	Score      string
	Confidence string
	Signals    int
}

type digestTemplateData struct {
	Date       string
	Commentary string
	Rows       []digestTemplateRow
}

func (h *emailServiceHandler) SendDigestEmail(
	subscriber model.DigestSubscriber,
	scored []domain.ScoredTicker,
	commentary string,
	asOf time.Time,
) error {
	subject, body, err := h.GenerateDigestEmail(scored, commentary, asOf)
	if err != nil {
		return fmt.Errorf("failed to generate digest email: %w", err)
	}

	err = h.EmailRepository.SendEmail(subscriber.Email, subject, body)
	if err != nil {
		return fmt.Errorf("failed to send digest to %s: %w", subscriber.Email, err)
	}

	return nil
}

func (h *emailServiceHandler) GenerateDigestEmail(
	scored []domain.ScoredTicker,
	commentary string,
	asOf time.Time,
) (string, string, error) {
	if len(scored) == 0 {
		return "", "", fmt.Errorf("cannot generate digest without scored tickers")
	}

	tmpl, err := template.New("digest").Parse(digestTemplate)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse digest template: %w", err)
	}

	data := digestTemplateData{
		Date:       asOf.Format("Monday, January 2, 2006"),
		Commentary: commentary,
	}
	for _, st := range scored {
		data.Rows = append(data.Rows, digestTemplateRow{
			Ticker:     st.Ticker,
			Score:      fmt.Sprintf("%.2f", st.TotalScore),
			Confidence: string(st.Confidence),
			Signals:    len(st.Signals),
		})
	}

	buf := bytes.Buffer{}
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", "", fmt.Errorf("failed to render digest template: %w", err)
	}

	subject := fmt.Sprintf("Smart Money Digest for %s", asOf.Format("Jan 2, 2006"))

	return subject, buf.String(), nil
}
