package handlers

import (
	"errors"
	"net/http"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/common"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/models"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SettingsHandlers handles the composite account settings endpoints.
type SettingsHandlers struct {
	settingsService services.SettingsService
}

func NewSettingsHandlers(settingsService services.SettingsService) *SettingsHandlers {
	return &SettingsHandlers{settingsService: settingsService}
}

// GetSettings assembles the settings view with defaults for absent sub-fields.
func (h *SettingsHandlers) GetSettings(c echo.Context) error {
	slug := c.Param("client")

	settings, err := h.settingsService.Get(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return common.SendNotFound(c, "Cliente não encontrado")
		}
		zap.L().Error("failed to get settings", zap.String("client", slug), zap.Error(err))
		return common.SendInternalError(c)
	}

	return common.SendSuccess(c, settings, "")
}

// UpdateSettings persists the profile and notification/privacy subsets.
func (h *SettingsHandlers) UpdateSettings(c echo.Context) error {
	slug := c.Param("client")

	var settings models.SettingsView
	if err := c.Bind(&settings); err != nil {
		return common.SendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Formato de requisição inválido")
	}

	if err := h.settingsService.Put(c.Request().Context(), slug, &settings); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return common.SendNotFound(c, "Cliente não encontrado")
		}
		zap.L().Error("failed to update settings", zap.String("client", slug), zap.Error(err))
		return common.SendInternalError(c)
	}

	return common.SendSuccess(c, settings, "Configurações salvas com sucesso")
}
