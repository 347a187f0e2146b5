package controllers

import (
	"strconv"

	"fastos/internal/models"
	"fastos/services"

	"github.com/gin-gonic/gin"
)

type SystemController struct {
	system *services.System
}

func NewSystemController(system *services.System) *SystemController {
	return &SystemController{
		system: system,
	}
}

/**
 * Register all system API routes to Gin engine
 * @param {*gin.Engine} r - Gin router instance
 * @description
 * - Registers routes for:
 *   - System lifecycle (boot/shutdown/state)
 *   - Console commands
 *   - Log sink snapshots
 */
func (s *SystemController) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/fastos/api/v1")
	api.POST("/system/boot", s.Boot)
	api.POST("/system/shutdown", s.Shutdown)
	api.GET("/system/state", s.GetState)
	api.POST("/command", s.ExecuteCommand)
	api.GET("/logs", s.GetLogs)
}

// Boot starts all services in parallel
//
//	@Summary		Boot the system
//	@Description	Start all registered services concurrently; completes when every service is Running
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	models.SystemDetail		"System detail after boot"
//	@Failure		409	{object}	models.ErrorResponse	"Boot rejected in current state"
//	@Router			/fastos/api/v1/system/boot [post]
func (s *SystemController) Boot(c *gin.Context) {
	if !s.system.Runner.Boot(c.Request.Context()) {
		c.JSON(409, &models.ErrorResponse{
			Code:  "system.not_off",
			Error: "boot ignored: system is " + s.system.Runner.State().String(),
		})
		return
	}
	c.JSON(200, s.system.GetDetail())
}

// Shutdown stops all services in parallel
//
//	@Summary		Shut the system down
//	@Description	Stop all running services concurrently; completes when every service is Stopped
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	models.SystemDetail		"System detail after shutdown"
//	@Failure		409	{object}	models.ErrorResponse	"Shutdown rejected in current state"
//	@Router			/fastos/api/v1/system/shutdown [post]
func (s *SystemController) Shutdown(c *gin.Context) {
	if !s.system.Runner.Shutdown(c.Request.Context()) {
		c.JSON(409, &models.ErrorResponse{
			Code:  "system.not_on",
			Error: "shutdown ignored: system is " + s.system.Runner.State().String(),
		})
		return
	}
	c.JSON(200, s.system.GetDetail())
}

// GetState reports the current system state
//
//	@Summary		System state
//	@Description	Current system state, boot time, uptime and per-service statuses
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	models.SystemDetail
//	@Router			/fastos/api/v1/system/state [get]
func (s *SystemController) GetState(c *gin.Context) {
	c.JSON(200, s.system.GetDetail())
}

// ExecuteCommand runs one console command line
//
//	@Summary		Execute console command
//	@Description	Interpret a command line (status/services/uptime/help) and return the response
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.CommandRequest	true	"Command line"
//	@Success		200		{object}	models.CommandResponse
//	@Failure		400		{object}	models.ErrorResponse	"Malformed request body"
//	@Router			/fastos/api/v1/command [post]
func (s *SystemController) ExecuteCommand(c *gin.Context) {
	var req models.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, &models.ErrorResponse{
			Code:  "command.bad_request",
			Error: err.Error(),
		})
		return
	}
	c.JSON(200, &models.CommandResponse{
		Line:     req.Line,
		Response: s.system.Interpreter.Execute(req.Line),
	})
}

// GetLogs returns the log sink snapshot
//
//	@Summary		Log snapshot
//	@Description	Full append-ordered log history, or entries after ?since=<seq>
//	@Tags			System
//	@Produce		json
//	@Param			since	query		int	false	"Return entries with sequence number greater than this"
//	@Success		200		{array}		models.LogEntry
//	@Failure		400		{object}	models.ErrorResponse	"Malformed since parameter"
//	@Router			/fastos/api/v1/logs [get]
func (s *SystemController) GetLogs(c *gin.Context) {
	raw := c.Query("since")
	if raw == "" {
		c.JSON(200, s.system.Sink.Snapshot())
		return
	}
	since, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(400, &models.ErrorResponse{
			Code:  "logs.bad_since",
			Error: "since must be an integer: " + raw,
		})
		return
	}
	c.JSON(200, s.system.Sink.Since(since))
}
