package handlers

import (
	"errors"
	"net/http"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/common"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ReportHandlers handles report listing, generation and export.
type ReportHandlers struct {
	reportService services.ReportService
}

func NewReportHandlers(reportService services.ReportService) *ReportHandlers {
	return &ReportHandlers{reportService: reportService}
}

// ListReports returns the client's reports, newest first.
func (h *ReportHandlers) ListReports(c echo.Context) error {
	slug := c.Param("client")

	reports, err := h.reportService.List(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return common.SendNotFound(c, "Cliente não encontrado")
		}
		zap.L().Error("failed to list reports", zap.String("client", slug), zap.Error(err))
		return common.SendInternalError(c)
	}

	return common.SendSuccessWithCount(c, reports, "", len(reports))
}

// GenerateReportRequest is the generation payload.
type GenerateReportRequest struct {
	Type   string `json:"type"`
	Period struct {
		Days *int `json:"days"`
	} `json:"period"`
}

// GenerateReport creates a new report for the requested period. Every call
// creates a new row.
func (h *ReportHandlers) GenerateReport(c echo.Context) error {
	slug := c.Param("client")

	var req GenerateReportRequest
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Formato de requisição inválido")
	}

	report, err := h.reportService.Generate(c.Request().Context(), slug, req.Type, req.Period.Days)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return common.SendNotFound(c, "Cliente não encontrado")
		}
		zap.L().Error("failed to generate report", zap.String("client", slug), zap.Error(err))
		return common.SendInternalError(c)
	}

	return common.SendSuccess(c, report, "Relatório gerado com sucesso")
}

// ExportReport returns a presigned download URL for the archived snapshot.
func (h *ReportHandlers) ExportReport(c echo.Context) error {
	slug := c.Param("client")
	reportID := c.Param("id")

	url, err := h.reportService.ExportURL(c.Request().Context(), slug, reportID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound):
			return common.SendNotFound(c, "Cliente não encontrado")
		case errors.Is(err, services.ErrReportNotFound):
			return common.SendNotFound(c, "Relatório não encontrado")
		default:
			zap.L().Error("failed to export report", zap.String("client", slug), zap.String("report_id", reportID), zap.Error(err))
			return common.SendInternalError(c)
		}
	}

	return common.SendSuccess(c, map[string]string{"url": url}, "")
}
