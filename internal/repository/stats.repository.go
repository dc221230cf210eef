package repository

import (
	"database/sql"
	"fmt"
)

type UsageStats struct {
	SignalsStored  int `json:"signalsStored"`
	TrackedTickers int `json:"trackedTickers"`
	ScoringPasses  int `json:"scoringPasses"`
}

func GetUsageStats(tx *sql.DB) (*UsageStats, error) {
	query := `select
	(select count(*) from smart_money_signal) as "signals_stored",
	(select count(distinct ticker) from smart_money_signal) as "tracked_tickers",
	(select count(distinct scored_at) from confluence_score) as "scoring_passes";`

	row := tx.QueryRow(query)

	out := UsageStats{}

	err := row.Scan(&out.SignalsStored, &out.TrackedTickers, &out.ScoringPasses)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage stats: %w", err)
	}

	return &out, nil
}
