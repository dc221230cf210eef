package api

import (
	"fmt"
	"strconv"
	"time"

	"smartmoney/internal"

	"github.com/gin-gonic/gin"
)

type AddSignalsRequest struct {
	Signals []SignalInput `json:"signals"`
}

// addSignals ingests operator-supplied signals, for feeds we don't
// collect automatically (insider filings, options flow).
func (h ApiHandler) addSignals(c *gin.Context) {
	var requestBody AddSignalsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	signals, err := parseSignalInputs(requestBody.Signals)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	err = h.SignalRepository.AddMany(h.Db, signals)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"added": len(signals),
	})
}

// topSignals scores the stored signal window under the heuristic
// strategy and returns the top ranked tickers.
func (h ApiHandler) topSignals(c *gin.Context) {
	lookbackStr := c.DefaultQuery("lookbackDays", "45")
	lookbackDays, err := strconv.Atoi(lookbackStr)
	if err != nil || lookbackDays <= 0 || lookbackDays > 365 {
		returnErrorJsonCode(fmt.Errorf("lookbackDays must be between 1 and 365"), c, 400)
		return
	}
	limitStr := c.DefaultQuery("limit", "25")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 500 {
		returnErrorJsonCode(fmt.Errorf("limit must be a positive integer up to 500"), c, 400)
		return
	}

	now := time.Now().UTC()
	signals, err := h.SignalRepository.ListSince(h.Db, now.AddDate(0, 0, -lookbackDays))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	strategy := internal.NewHeuristicStrategy()
	scored, err := strategy.Score(signals, now)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}

	c.JSON(200, ScoreResponse{
		Strategy: strategy.Name(),
		Tickers:  scored,
	})
}
