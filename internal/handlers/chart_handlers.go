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

// ChartHandlers handles the custom chart endpoints.
type ChartHandlers struct {
	chartService services.ChartService
}

func NewChartHandlers(chartService services.ChartService) *ChartHandlers {
	return &ChartHandlers{chartService: chartService}
}

// ListCharts returns the client's chart sequence verbatim.
func (h *ChartHandlers) ListCharts(c echo.Context) error {
	slug := c.Param("client")

	charts, err := h.chartService.List(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return common.SendNotFound(c, "Cliente não encontrado")
		}
		zap.L().Error("failed to list charts", zap.String("client", slug), zap.Error(err))
		return common.SendInternalError(c)
	}

	return common.SendSuccess(c, charts, "")
}

// SaveChart upserts a chart configuration onto the client record.
func (h *ChartHandlers) SaveChart(c echo.Context) error {
	slug := c.Param("client")

	var chart models.CustomChart
	if err := c.Bind(&chart); err != nil {
		return common.SendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Formato de requisição inválido")
	}

	saved, err := h.chartService.Upsert(c.Request().Context(), slug, chart)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return common.SendNotFound(c, "Cliente não encontrado")
		}
		zap.L().Error("failed to save chart", zap.String("client", slug), zap.Error(err))
		return common.SendInternalError(c)
	}

	return common.SendSuccess(c, saved, "Gráfico salvo com sucesso")
}

// DeleteChart removes one chart by id; unknown ids are a 404 and leave the
// sequence untouched.
func (h *ChartHandlers) DeleteChart(c echo.Context) error {
	slug := c.Param("client")
	chartID := c.Param("chartId")

	if err := h.chartService.Delete(c.Request().Context(), slug, chartID); err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound):
			return common.SendNotFound(c, "Cliente não encontrado")
		case errors.Is(err, services.ErrChartNotFound):
			return common.SendNotFound(c, "Gráfico não encontrado")
		default:
			zap.L().Error("failed to delete chart", zap.String("client", slug), zap.String("chart_id", chartID), zap.Error(err))
			return common.SendInternalError(c)
		}
	}

	return common.SendSuccess(c, nil, "Gráfico excluído com sucesso")
}
