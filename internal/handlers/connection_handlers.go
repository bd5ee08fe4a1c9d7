package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/common"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ConnectionHandlers handles the external credential test endpoints.
type ConnectionHandlers struct {
	googleAds services.GoogleAdsService
}

func NewConnectionHandlers(googleAds services.GoogleAdsService) *ConnectionHandlers {
	return &ConnectionHandlers{googleAds: googleAds}
}

// TestGoogleAdsRequest carries the customer id, either at the top level or
// nested the way the dashboard's integrations screen sends it. Server-side
// credentials are never read from this payload.
type TestGoogleAdsRequest struct {
	CustomerID  string `json:"customerId"`
	Credentials struct {
		CustomerID string `json:"customerId"`
	} `json:"credentials"`
}

// TestGoogleAds runs the two-step handshake against the Google Ads API.
func (h *ConnectionHandlers) TestGoogleAds(c echo.Context) error {
	var req TestGoogleAdsRequest
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Formato de requisição inválido")
	}

	customerID := strings.TrimSpace(req.CustomerID)
	if customerID == "" {
		customerID = strings.TrimSpace(req.Credentials.CustomerID)
	}
	if customerID == "" {
		return common.SendErrorDetails(c, http.StatusBadRequest, "MISSING_CUSTOMER_ID",
			"Customer ID é obrigatório", "Informe o Customer ID do Google Ads")
	}

	result, err := h.googleAds.TestConnection(c.Request().Context(), customerID)
	if err != nil {
		zap.L().Error("google ads connection test failed", zap.String("customer_id", customerID), zap.Error(err))
		switch {
		case errors.Is(err, services.ErrGoogleAdsNotConfigured):
			return common.SendErrorDetails(c, http.StatusInternalServerError, "CREDENTIALS_NOT_CONFIGURED",
				"Credenciais do Google Ads não configuradas", "Configure GOOGLE_ADS_* no ambiente")
		case errors.Is(err, services.ErrGoogleAdsToken):
			return common.SendErrorDetails(c, http.StatusInternalServerError, "TOKEN_EXCHANGE_FAILED",
				"Erro ao conectar com Google Ads", err.Error())
		default:
			return common.SendErrorDetails(c, http.StatusInternalServerError, "GOOGLE_ADS_ERROR",
				"Erro ao conectar com Google Ads", err.Error())
		}
	}

	return common.SendSuccess(c, result, "Conexão com Google Ads estabelecida com sucesso")
}

// TestGoogleAdsInfo answers GET with usage information.
func (h *ConnectionHandlers) TestGoogleAdsInfo(c echo.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, map[string]interface{}{
		"message":        "Use POST para testar conexão Google Ads",
		"requiredFields": []string{"developerToken", "clientId", "clientSecret", "refreshToken"},
		"optionalFields": []string{"customerId"},
	})
}
