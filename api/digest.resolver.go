package api

import (
	"context"

	"smartmoney/internal/app"

	"github.com/gin-gonic/gin"
)

type RunScoringPassRequest struct {
	Strategy       string `json:"strategy"`
	LookbackDays   int    `json:"lookbackDays"`
	SkipCollection bool   `json:"skipCollection"`
}

// runScoringPass triggers a full collect-and-score pass. Normally this
// runs on a schedule; the endpoint exists for reruns after calibration
// changes or feed outages.
func (h ApiHandler) runScoringPass(c *gin.Context) {
	var requestBody RunScoringPassRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := h.ScoringPassApp.RunScoringPass(context.Background(), app.RunScoringPassInput{
		StrategyName:   requestBody.Strategy,
		LookbackDays:   requestBody.LookbackDays,
		SkipCollection: requestBody.SkipCollection,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}

type SendDigestRequest struct {
	TopN           int    `json:"topN"`
	Strategy       string `json:"strategy"`
	LookbackDays   int    `json:"lookbackDays"`
	SkipCollection bool   `json:"skipCollection"`
}

func (h ApiHandler) sendDigest(c *gin.Context) {
	var requestBody SendDigestRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	err := h.DigestApp.SendDailyDigest(context.Background(), app.SendDailyDigestInput{
		TopN:           requestBody.TopN,
		StrategyName:   requestBody.Strategy,
		LookbackDays:   requestBody.LookbackDays,
		SkipCollection: requestBody.SkipCollection,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"status": "sent"})
}
