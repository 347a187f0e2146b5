package controllers

import (
	"fmt"

	"fastos/internal/models"
	"fastos/services"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	system *services.System
}

/**
 * Create new Service controller instance
 * @param {*services.System} system - System wiring owning the registry
 * @returns {*ServiceController} New Service controller instance
 */
func NewServiceController(system *services.System) *ServiceController {
	return &ServiceController{
		system: system,
	}
}

func (s *ServiceController) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/fastos/api/v1")
	api.GET("/services", s.ListServices)
	api.GET("/services/:name", s.GetService)
}

// ListServices lists all registered services
//
//	@Summary		List all services
//	@Description	Get every registered service with its current status, in registry order
//	@Tags			Services
//	@Produce		json
//	@Success		200	{array}	models.ServiceDetail	"List of service details"
//	@Router			/fastos/api/v1/services [get]
func (s *ServiceController) ListServices(c *gin.Context) {
	c.JSON(200, s.system.Registry.Details())
}

// GetService returns one service by name
//
//	@Summary		Get service
//	@Description	Get one registered service by its name
//	@Tags			Services
//	@Produce		json
//	@Param			name	path		string					true	"Service name"
//	@Success		200		{object}	models.ServiceDetail
//	@Failure		404		{object}	models.ErrorResponse	"Service not found error response"
//	@Router			/fastos/api/v1/services/{name} [get]
func (s *ServiceController) GetService(c *gin.Context) {
	name := c.Param("name")

	detail, ok := s.system.Registry.GetDetail(name)
	if !ok {
		c.JSON(404, &models.ErrorResponse{
			Code:  "service.notexist",
			Error: fmt.Sprintf("service [%s] isn't exist", name),
		})
		return
	}
	c.JSON(200, detail)
}
