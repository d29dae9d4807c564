package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/handlers/dto"
	"github.com/rafabene/casadf-backend/internal/services"
)

// SettingsHandler lida com as configurações do site
type SettingsHandler struct {
	settingsService *services.SettingsService
	logger          ports.Logger
}

// NewSettingsHandler cria um novo SettingsHandler
func NewSettingsHandler(settingsService *services.SettingsService, logger ports.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetSettings retorna as configurações atuais
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings grava os campos enviados
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var patch entities.SiteSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		dto.BadRequest(c)
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
