package handlers

import (
	"context"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/models"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) Update(ctx context.Context, id, name, color string) (*models.Tag, error) {
	args := m.Called(ctx, id, name, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) Delete(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) List(ctx context.Context, slug string) ([]models.CustomChart, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomChart), args.Error(1)
}

func (m *MockChartService) Upsert(ctx context.Context, slug string, chart models.CustomChart) (*models.CustomChart, error) {
	args := m.Called(ctx, slug, chart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomChart), args.Error(1)
}

func (m *MockChartService) Delete(ctx context.Context, slug, chartID string) error {
	args := m.Called(ctx, slug, chartID)
	return args.Error(0)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) List(ctx context.Context, slug string) ([]*models.Report, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Report), args.Error(1)
}

func (m *MockReportService) Generate(ctx context.Context, slug, reportType string, days *int) (*models.Report, error) {
	args := m.Called(ctx, slug, reportType, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportService) ExportURL(ctx context.Context, slug, reportID string) (string, error) {
	args := m.Called(ctx, slug, reportID)
	return args.String(0), args.Error(1)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context, slug string) (*models.SettingsView, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SettingsView), args.Error(1)
}

func (m *MockSettingsService) Put(ctx context.Context, slug string, view *models.SettingsView) error {
	args := m.Called(ctx, slug, view)
	return args.Error(0)
}

type MockGoogleAdsService struct {
	mock.Mock
}

func (m *MockGoogleAdsService) TestConnection(ctx context.Context, customerID string) (*services.ConnectionTestResult, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ConnectionTestResult), args.Error(1)
}
