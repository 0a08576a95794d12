package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// HealthResponse represents the response for the health endpoint
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"SafeRoute API"`
}

// WelcomeResponse represents the response for the root endpoint
type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to SafeRoute API"`
}

// handleRoot godoc
// @Summary Welcome message
// @Tags health
// @Produce json
// @Success 200 {object} WelcomeResponse
// @Router / [get]
func (app *App) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeResponse{
		Message: "Welcome to SafeRoute API",
	})
}

// handleHealth godoc
// @Summary Service health
// @Description Report that the service is up
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (app *App) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "SafeRoute API",
	})
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}
