package api

import (
	"fmt"
	"time"

	"smartmoney/internal"

	"github.com/gin-gonic/gin"
)

type ScreenRequest struct {
	// Expression filters scored tickers, e.g.
	// "totalScore >= 7 && consensus >= 1.5"
	Expression string        `json:"expression"`
	Signals    []SignalInput `json:"signals"`
}

// screen scores caller-supplied signals under the heuristic strategy
// and filters the result through a boolean expression.
func (h ApiHandler) screen(c *gin.Context) {
	var requestBody ScreenRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Expression == "" {
		returnErrorJsonCode(fmt.Errorf("expression is required"), c, 400)
		return
	}

	signals, err := parseSignalInputs(requestBody.Signals)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	strategy := internal.NewHeuristicStrategy()
	scored, err := strategy.Score(signals, time.Now().UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	filtered, err := internal.FilterScoredTickers(requestBody.Expression, scored)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, ScoreResponse{
		Strategy: strategy.Name(),
		Tickers:  filtered,
	})
}
