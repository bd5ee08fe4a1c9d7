package services

import (
	"context"
	"time"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindBySlug(ctx context.Context, slug string) (*models.Client, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientRepository) GetAll(ctx context.Context) ([]*models.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateTags(ctx context.Context, id uuid.UUID, tags []string) error {
	args := m.Called(ctx, id, tags)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateCharts(ctx context.Context, id uuid.UUID, charts []models.CustomChart) error {
	args := m.Called(ctx, id, charts)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateProfileAndSettings(ctx context.Context, id uuid.UUID, profile models.ProfileSettings, settings *models.ClientSettings) error {
	args := m.Called(ctx, id, profile, settings)
	return args.Error(0)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *models.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*models.Report, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Report), args.Error(1)
}

func (m *MockReportRepository) GetByID(ctx context.Context, clientID uuid.UUID, id string) (*models.Report, error) {
	args := m.Called(ctx, clientID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) UploadJSON(ctx context.Context, objectName string, payload interface{}) error {
	args := m.Called(ctx, objectName, payload)
	return args.Error(0)
}

func (m *MockStorageService) PresignedURL(objectName string, expiry time.Duration) (string, error) {
	args := m.Called(objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockStorageService) EnsureBucketExists(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStorageService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
