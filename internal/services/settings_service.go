package services

import (
	"context"
	"errors"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/models"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/repositories"

	"github.com/jackc/pgx/v5"
)

// SettingsService assembles and persists the composite settings document.
type SettingsService interface {
	Get(ctx context.Context, slug string) (*models.SettingsView, error)
	Put(ctx context.Context, slug string, view *models.SettingsView) error
}

type settingsService struct {
	clientRepo repositories.ClientRepository
}

func NewSettingsService(clientRepo repositories.ClientRepository) SettingsService {
	return &settingsService{clientRepo: clientRepo}
}

func (s *settingsService) findClient(ctx context.Context, slug string) (*models.Client, error) {
	client, err := s.clientRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func integrationStatus(status *models.IntegrationStatus) models.IntegrationStatus {
	if status == nil {
		return models.IntegrationStatus{}
	}
	return *status
}

// Get builds the settings view from the client's columns and its settings
// blob, applying the documented defaults for absent sub-objects.
func (s *settingsService) Get(ctx context.Context, slug string) (*models.SettingsView, error) {
	client, err := s.findClient(ctx, slug)
	if err != nil {
		return nil, err
	}

	view := &models.SettingsView{
		Profile: models.ProfileSettings{
			Name:        client.Name,
			Email:       stringValue(client.Email),
			Phone:       stringValue(client.Phone),
			Company:     client.Name,
			Website:     stringValue(client.Website),
			Address:     stringValue(client.Address),
			Description: stringValue(client.Description),
		},
		Notifications: models.DefaultNotificationSettings(),
		Privacy:       models.DefaultPrivacySettings(),
		Integrations: models.IntegrationsSettings{
			GoogleAds:       integrationStatus(client.GoogleAds),
			FacebookAds:     integrationStatus(client.FacebookAds),
			GoogleAnalytics: integrationStatus(client.GoogleAnalytics),
		},
	}

	if client.Settings != nil {
		if client.Settings.Notifications != nil {
			view.Notifications = *client.Settings.Notifications
		}
		if client.Settings.Privacy != nil {
			view.Privacy = *client.Settings.Privacy
		}
	}

	return view, nil
}

// Put persists the profile subset onto the client columns and the
// notification/privacy subsets into the settings blob. Integrations in the
// payload are ignored: connection state belongs to the integration flows.
func (s *settingsService) Put(ctx context.Context, slug string, view *models.SettingsView) error {
	client, err := s.findClient(ctx, slug)
	if err != nil {
		return err
	}

	notifications := view.Notifications
	privacy := view.Privacy
	settings := &models.ClientSettings{
		Notifications: &notifications,
		Privacy:       &privacy,
	}

	return s.clientRepo.UpdateProfileAndSettings(ctx, client.ID, view.Profile, settings)
}
