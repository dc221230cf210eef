package api

import (
	"fmt"
	"strconv"
	"time"

	"smartmoney/internal"

	"github.com/gin-gonic/gin"
)

type ConfluenceRequest struct {
	Ticker       string        `json:"ticker"`
	Signals      []SignalInput `json:"signals"`
	WindowDays   int           `json:"windowDays"`
	ExcessReturn float64       `json:"excessReturn"`
}

// confluence returns the full formula decomposition for one ticker:
// base score, recency multiplier, and each bonus term. Callers who
// only want the composite use /score instead.
func (h ApiHandler) confluence(c *gin.Context) {
	var requestBody ConfluenceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	signals, err := parseSignalInputs(requestBody.Signals)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	for _, s := range signals {
		if s.Ticker != requestBody.Ticker {
			returnErrorJsonCode(fmt.Errorf("signal ticker %s does not match %s", s.Ticker, requestBody.Ticker), c, 400)
			return
		}
	}

	windowDays := requestBody.WindowDays
	if windowDays <= 0 {
		windowDays = 30
	}

	result, err := internal.ScoreFormula(internal.FormulaInput{
		Ticker:       requestBody.Ticker,
		Signals:      signals,
		WindowDays:   windowDays,
		ExcessReturn: requestBody.ExcessReturn,
		Now:          time.Now().UTC(),
	})
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, result)
}

// latestScores returns the most recent persisted snapshot for a
// strategy, ranked by score.
func (h ApiHandler) latestScores(c *gin.Context) {
	strategy := c.DefaultQuery("strategy", "heuristic")
	limitStr := c.DefaultQuery("limit", "25")
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit <= 0 || limit > 500 {
		returnErrorJsonCode(fmt.Errorf("limit must be a positive integer up to 500"), c, 400)
		return
	}

	scores, err := h.ConfluenceScoreRepository.Latest(h.Db, strategy, limit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"strategy": strategy,
		"scores":   scores,
	})
}
