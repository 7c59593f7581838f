package main

import (
	"errors"
	"net/http"

	"paradecast/internal/forecast"
	"paradecast/internal/types"

	"github.com/gin-gonic/gin"
)

// DegradedNotice labels predictions computed from fallback data
const DegradedNotice = "using estimated data: live forecast was unavailable"

// PredictInput defines the query parameters for the predict endpoint
type PredictInput struct {
	Latitude  float64 `form:"latitude" binding:"required"`   // Latitude in decimal degrees
	Longitude float64 `form:"longitude" binding:"required"`  // Longitude in decimal degrees
	StartDate string  `form:"start_date" binding:"required"` // Window start, YYYY-MM-DD
	EndDate   string  `form:"end_date" binding:"required"`   // Window end, YYYY-MM-DD
	Threshold float64 `form:"threshold"`                     // Discomfort threshold in °C, metadata only
}

// PredictResponse wraps a prediction with a user-facing notice when the
// result was computed from fallback data
type PredictResponse struct {
	forecast.Prediction
	Notice string `json:"notice,omitempty" example:"using estimated data: live forecast was unavailable"`
}

// handlePredict godoc
// @Summary Compute adverse-condition likelihoods
// @Description Fetch forecast metrics for a point and date range and derive the five likelihood scores. When the upstream provider fails, a fallback sample is scored and the response is marked degraded.
// @Tags prediction
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(39.11539)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-107.65840)
// @Param start_date query string true "Window start (YYYY-MM-DD)" example(2024-06-01)
// @Param end_date query string true "Window end (YYYY-MM-DD)" example(2024-06-02)
// @Param threshold query number false "Discomfort threshold in Celsius" example(30)
// @Success 200 {object} PredictResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /predict [get]
func (app *App) handlePredict(c *gin.Context) {
	var input PredictInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dates, err := types.NewDateRange(input.StartDate, input.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := types.PredictionRequest{
		Coordinates:         types.NewCoords(input.Latitude, input.Longitude),
		Dates:               dates,
		DiscomfortThreshold: input.Threshold,
	}

	// Delegate to business layer
	prediction, err := app.forecastService.Predict(c.Request.Context(), req)
	if err != nil {
		// Check if it's a validation error from business layer
		if errors.Is(err, types.ErrInvalidLatitude) || errors.Is(err, types.ErrInvalidLongitude) || errors.Is(err, types.ErrMissingDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Other errors are internal server errors
		app.logger.Error("failed to compute prediction",
			"latitude", input.Latitude,
			"longitude", input.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute prediction"})
		return
	}

	resp := PredictResponse{Prediction: *prediction}
	if prediction.Degraded {
		resp.Notice = DegradedNotice
	}

	c.JSON(http.StatusOK, resp)
}
