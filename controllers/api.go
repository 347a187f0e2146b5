package controllers

import (
	"fastos/services"

	"github.com/gin-gonic/gin"
)

type APIController struct {
	system *services.System
}

/**
 * Create new API controller instance
 * @param {*services.System} system - System wiring (registry/runner/sink)
 * @returns {*APIController} New API controller instance
 */
func NewAPIController(system *services.System) *APIController {
	return &APIController{
		system: system,
	}
}

func (a *APIController) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", a.Healthz)
}

// Healthz reports readiness, version and request counters
//
//	@Summary		Health probe
//	@Description	Returns service version, start time, uptime and key request counters
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	models.HealthResponse
//	@Router			/healthz [get]
func (a *APIController) Healthz(c *gin.Context) {
	c.JSON(200, a.system.GetHealthz())
}
