package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/common"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/models"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SettingsHandlersTestSuite struct {
	suite.Suite
	settingsService *MockSettingsService
	handlers        *SettingsHandlers
	echo            *echo.Echo
}

func (s *SettingsHandlersTestSuite) SetupTest() {
	s.settingsService = new(MockSettingsService)
	s.handlers = NewSettingsHandlers(s.settingsService)
	s.echo = echo.New()
}

func (s *SettingsHandlersTestSuite) newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("client")
	c.SetParamValues("acme")
	return c, rec
}

func (s *SettingsHandlersTestSuite) decode(rec *httptest.ResponseRecorder) common.APIResponse {
	var resp common.APIResponse
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *SettingsHandlersTestSuite) TestGetSettings() {
	view := &models.SettingsView{
		Profile:       models.ProfileSettings{Name: "ACME", Company: "ACME"},
		Notifications: models.DefaultNotificationSettings(),
		Privacy:       models.DefaultPrivacySettings(),
	}
	s.settingsService.On("Get", mock.Anything, "acme").Return(view, nil)

	c, rec := s.newContext(http.MethodGet, "")
	require.NoError(s.T(), s.handlers.GetSettings(c))

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	resp := s.decode(rec)
	assert.True(s.T(), resp.Success)
	data := resp.Data.(map[string]interface{})
	profile := data["profile"].(map[string]interface{})
	assert.Equal(s.T(), "ACME", profile["company"])
	privacy := data["privacy"].(map[string]interface{})
	assert.Equal(s.T(), "12months", privacy["dataRetention"])
}

func (s *SettingsHandlersTestSuite) TestGetSettingsUnknownClient() {
	s.settingsService.On("Get", mock.Anything, "acme").Return(nil, services.ErrClientNotFound)

	c, rec := s.newContext(http.MethodGet, "")
	require.NoError(s.T(), s.handlers.GetSettings(c))

	assert.Equal(s.T(), http.StatusNotFound, rec.Code)
	assert.Equal(s.T(), "Cliente não encontrado", s.decode(rec).Message)
}

func (s *SettingsHandlersTestSuite) TestUpdateSettings() {
	s.settingsService.On("Put", mock.Anything, "acme", mock.MatchedBy(func(view *models.SettingsView) bool {
		return view.Profile.Email == "novo@acme.com" && !view.Notifications.WeeklyDigest
	})).Return(nil)

	body := `{"profile":{"email":"novo@acme.com"},"notifications":{"weeklyDigest":false}}`
	c, rec := s.newContext(http.MethodPut, body)
	require.NoError(s.T(), s.handlers.UpdateSettings(c))

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	resp := s.decode(rec)
	assert.Equal(s.T(), "Configurações salvas com sucesso", resp.Message)
	s.settingsService.AssertExpectations(s.T())
}

func TestSettingsHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlersTestSuite))
}
