package main

import (
	"errors"
	"net/http"

	"github.com/AjayAntoIsDev/SafeRoute/internal/types"

	"github.com/gin-gonic/gin"
)

const analysisSourceHeader = "X-Analysis-Source"

// PredictInput is the request body for the predict endpoint
type PredictInput struct {
	Latitude  *float64 `json:"latitude" binding:"required" example:"19.076"`   // Latitude in decimal degrees
	Longitude *float64 `json:"longitude" binding:"required" example:"72.8777"` // Longitude in decimal degrees
}

// handlePredict godoc
// @Summary Assess disaster risk
// @Description Combine live weather, geography and location data for a coordinate in India into a six-category disaster risk analysis. The X-Analysis-Source header reports whether the analysis came from the language model (llm) or the rule engine (rule_based).
// @Tags prediction
// @Accept json
// @Produce json
// @Param request body PredictInput true "Coordinates inside India (latitude 6-37, longitude 68-97)"
// @Success 200 {object} types.Prediction
// @Header 200 {string} X-Analysis-Source "llm or rule_based"
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /predict [post]
func (app *App) handlePredict(c *gin.Context) {
	var input PredictInput

	// Bind and validate the request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delegate to business layer
	coords := types.NewCoords(*input.Latitude, *input.Longitude)
	prediction, err := app.assessments.Assess(c.Request.Context(), coords)
	if err != nil {
		if errors.Is(err, types.ErrOutOfBounds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Other errors are internal server errors
		app.logger.Error("failed to assess risk",
			"request_id", c.GetString(requestIDKey),
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assess disaster risk"})
		return
	}

	c.Header(analysisSourceHeader, prediction.AnalysisSource)
	c.JSON(http.StatusOK, prediction)
}
