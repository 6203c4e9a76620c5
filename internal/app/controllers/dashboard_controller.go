package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepam/hostelmess/internal/app/models/dto"
	"github.com/deepam/hostelmess/internal/app/services"
	"github.com/deepam/hostelmess/internal/middleware"
)

// DashboardController serves the admin landing page snapshot
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetOverview returns the aggregate dashboard counters
// @Summary Dashboard overview
// @Description Active student, menu and complaint counters for the admin landing page
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardOverviewResponse}
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /dashboard/overview [get]
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	overview, err := c.dashboardService.GetOverview(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(overview))
}

// GetHealth reports service liveness for the dashboard
// @Summary Dashboard health
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /dashboard/health [get]
func (c *DashboardController) GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"status":  "UP",
		"service": "Hostel Mess Management System",
	}))
}
