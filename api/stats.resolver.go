package api

import (
	"net/http"

	"smartmoney/internal/repository"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) usageStats(c *gin.Context) {
	stats, err := repository.GetUsageStats(m.Db)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, stats)
}
