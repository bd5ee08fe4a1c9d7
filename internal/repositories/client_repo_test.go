package repositories

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ClientRepoTestSuite struct {
	suite.Suite
	mock     pgxmock.PgxPoolIface
	repo     ClientRepository
	clientID uuid.UUID
	context  context.Context
}

func (suite *ClientRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewClientRepository(mock)
	suite.clientID = uuid.New()
	suite.context = context.Background()
}

func (suite *ClientRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestClientRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ClientRepoTestSuite))
}

func (suite *ClientRepoTestSuite) clientRow(slug string, tags []string, charts, settings []byte) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "slug", "name", "email", "phone", "website", "address", "description",
		"tags", "custom_charts", "settings", "google_ads", "facebook_ads", "google_analytics",
		"created_at", "updated_at",
	}).AddRow(
		suite.clientID, slug, "Acme", nil, nil, nil, nil, nil,
		tags, charts, settings, nil, nil, nil,
		now, now,
	)
}

func (suite *ClientRepoTestSuite) TestFindBySlug_Success() {
	charts, _ := json.Marshal([]models.CustomChart{{ID: "chart_1", Config: map[string]interface{}{"metric": "clicks"}}})

	suite.mock.ExpectQuery(`SELECT .+ FROM clients WHERE slug = \$1`).
		WithArgs("acme").
		WillReturnRows(suite.clientRow("acme", []string{"vip", "ecommerce"}, charts, nil))

	client, err := suite.repo.FindBySlug(suite.context, "acme")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.clientID, client.ID)
	assert.Equal(suite.T(), []string{"vip", "ecommerce"}, client.Tags)
	assert.Len(suite.T(), client.CustomCharts, 1)
	assert.Equal(suite.T(), "chart_1", client.CustomCharts[0].ID)
	assert.Nil(suite.T(), client.Settings)
}

func (suite *ClientRepoTestSuite) TestFindBySlug_ParsesSettings() {
	settings, _ := json.Marshal(models.ClientSettings{
		Privacy: &models.PrivacySettings{DataRetention: "24months"},
	})

	suite.mock.ExpectQuery(`SELECT .+ FROM clients WHERE slug = \$1`).
		WithArgs("acme").
		WillReturnRows(suite.clientRow("acme", nil, nil, settings))

	client, err := suite.repo.FindBySlug(suite.context, "acme")
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), client.Settings)
	assert.Equal(suite.T(), "24months", client.Settings.Privacy.DataRetention)
	assert.Nil(suite.T(), client.Settings.Notifications)
}

func (suite *ClientRepoTestSuite) TestGetAll_ReturnsEveryClient() {
	rows := pgxmock.NewRows([]string{
		"id", "slug", "name", "email", "phone", "website", "address", "description",
		"tags", "custom_charts", "settings", "google_ads", "facebook_ads", "google_analytics",
		"created_at", "updated_at",
	}).
		AddRow(uuid.New(), "acme", "Acme", nil, nil, nil, nil, nil, []string{"vip"}, nil, nil, nil, nil, nil, time.Now(), time.Now()).
		AddRow(uuid.New(), "globex", "Globex", nil, nil, nil, nil, nil, []string{}, nil, nil, nil, nil, nil, time.Now(), time.Now())

	suite.mock.ExpectQuery(`SELECT .+ FROM clients ORDER BY created_at DESC`).
		WillReturnRows(rows)

	clients, err := suite.repo.GetAll(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), clients, 2)
	assert.Equal(suite.T(), "acme", clients[0].Slug)
	assert.Equal(suite.T(), "globex", clients[1].Slug)
}

func (suite *ClientRepoTestSuite) TestUpdateTags() {
	tags := []string{"premium", "ecommerce"}

	suite.mock.ExpectExec(`UPDATE clients SET tags = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(tags, suite.clientID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdateTags(suite.context, suite.clientID, tags)
	assert.NoError(suite.T(), err)
}

func (suite *ClientRepoTestSuite) TestUpdateCharts_MarshalsSequence() {
	charts := []models.CustomChart{{ID: "chart_1", Config: map[string]interface{}{"metric": "cpc"}}}
	payload, _ := json.Marshal(charts)

	suite.mock.ExpectExec(`UPDATE clients SET custom_charts = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(payload, suite.clientID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdateCharts(suite.context, suite.clientID, charts)
	assert.NoError(suite.T(), err)
}

func (suite *ClientRepoTestSuite) TestUpdateProfileAndSettings() {
	profile := models.ProfileSettings{
		Name:    "Acme Ltda",
		Email:   "novo@acme.com.br",
		Phone:   "+55 11 99999-0000",
		Website: "https://acme.com.br",
	}
	notifications := models.DefaultNotificationSettings()
	settings := &models.ClientSettings{Notifications: &notifications}
	payload, _ := json.Marshal(settings)

	suite.mock.ExpectExec(`UPDATE clients`).
		WithArgs(profile.Name, profile.Email, profile.Phone, profile.Website, profile.Description, payload, suite.clientID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdateProfileAndSettings(suite.context, suite.clientID, profile, settings)
	assert.NoError(suite.T(), err)
}
