package controllers

import (
	"net/http"

	"jewelry-shop/models"
	"jewelry-shop/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboardService *services.DashboardService
}

func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// @Summary Dashboard
// @Description Revenue and order totals, low-stock products, recent orders and monthly sales (Admin)
// @Tags Admin - Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	dashboard, err := ctrl.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve dashboard")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Dashboard retrieved successfully",
		Data:    dashboard,
	})
}
