package handlers

import (
	"net/http"
	"time"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/repositories"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthHandlers handles liveness and readiness endpoints.
type HealthHandlers struct {
	db      repositories.Database
	storage services.StorageService
	version string
}

func NewHealthHandlers(db repositories.Database, storage services.StorageService, version string) *HealthHandlers {
	return &HealthHandlers{
		db:      db,
		storage: storage,
		version: version,
	}
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version"`
}

// HealthCheck is a plain liveness probe.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// ReadinessCheck probes the database and object storage. A broken database
// makes the service not ready; storage is best-effort and only degrades.
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	ctx := c.Request().Context()
	health := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string),
		Version:   h.version,
	}

	statusCode := http.StatusOK
	if _, err := h.db.Exec(ctx, "SELECT 1"); err != nil {
		health.Services["database"] = "unhealthy"
		health.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	} else {
		health.Services["database"] = "healthy"
	}

	if h.storage != nil {
		if err := h.storage.Ping(ctx); err != nil {
			health.Services["storage"] = "unhealthy"
			if health.Status == "healthy" {
				health.Status = "degraded"
			}
		} else {
			health.Services["storage"] = "healthy"
		}
	}

	return c.JSON(statusCode, health)
}
