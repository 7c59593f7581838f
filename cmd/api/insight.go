package main

import (
	"net/http"

	"paradecast/internal/insight"
	"paradecast/internal/types"

	"github.com/gin-gonic/gin"
)

// InsightInput defines the request body for the insight endpoint. The
// likelihoods come from the client's last prediction; the server keeps no
// per-session result state.
type InsightInput struct {
	Likelihoods         types.LikelihoodResult `json:"likelihoods" binding:"required"`
	Location            string                 `json:"location" binding:"required"`
	StartDate           string                 `json:"start_date" binding:"required"`
	EndDate             string                 `json:"end_date" binding:"required"`
	DiscomfortThreshold float64                `json:"discomfort_threshold"`
}

// handleInsight godoc
// @Summary Generate a natural-language insight
// @Description Ask the language model to summarize a likelihood result. A failed upstream call yields a fixed apology text rather than an error status.
// @Tags prediction
// @Accept json
// @Produce json
// @Param request body InsightInput true "Likelihoods and request context"
// @Success 200 {object} insight.Response
// @Failure 400 {object} map[string]string
// @Router /insight [post]
func (app *App) handleInsight(c *gin.Context) {
	var input InsightInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dates, err := types.NewDateRange(input.StartDate, input.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := app.insightService.GetInsight(c.Request.Context(), insight.Request{
		Likelihoods:         input.Likelihoods,
		Location:            input.Location,
		Dates:               dates,
		DiscomfortThreshold: input.DiscomfortThreshold,
	})

	c.JSON(http.StatusOK, resp)
}
