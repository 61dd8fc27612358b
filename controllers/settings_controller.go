package controllers

import (
	"net/http"

	"jewelry-shop/models"
	"jewelry-shop/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settingsService *services.SettingsService
}

func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

// @Summary List settings
// @Tags Admin - Settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/settings [get]
func (ctrl *SettingsController) GetAllSettings(c *gin.Context) {
	settings, err := ctrl.settingsService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve settings")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Settings retrieved successfully",
		Data:    settings,
	})
}

// @Summary Get setting
// @Tags Admin - Settings
// @Security BearerAuth
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/settings/{key} [get]
func (ctrl *SettingsController) GetSetting(c *gin.Context) {
	setting, err := ctrl.settingsService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err, "Failed to retrieve setting")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Setting retrieved successfully",
		Data:    setting,
	})
}

// @Summary Upsert setting
// @Tags Admin - Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param setting body models.UpsertSettingRequest true "Setting value"
// @Success 200 {object} models.Response
// @Router /admin/settings/{key} [put]
func (ctrl *SettingsController) UpsertSetting(c *gin.Context) {
	var req models.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	setting, err := ctrl.settingsService.Upsert(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		respondError(c, err, "Failed to save setting")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Setting saved successfully",
		Data:    setting,
	})
}
