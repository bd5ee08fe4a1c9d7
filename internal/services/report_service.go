package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/models"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/repositories"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	periodDateLayout  = "2006-01-02"
	reportNameLayout  = "02/01/2006"
	exportURLValidity = 15 * time.Minute
)

// ReportService lists and generates performance reports. Generation is not
// idempotent: every call creates a new immutable row.
type ReportService interface {
	List(ctx context.Context, slug string) ([]*models.Report, error)
	Generate(ctx context.Context, slug, reportType string, days *int) (*models.Report, error)
	ExportURL(ctx context.Context, slug, reportID string) (string, error)
}

type reportService struct {
	clientRepo repositories.ClientRepository
	reportRepo repositories.ReportRepository
	metrics    MetricsSource
	storage    StorageService
	now        func() time.Time
}

// NewReportService wires the report pipeline. storage may be nil, in which
// case generated reports are not archived and export always misses.
func NewReportService(clientRepo repositories.ClientRepository, reportRepo repositories.ReportRepository, metrics MetricsSource, storage StorageService) ReportService {
	return &reportService{
		clientRepo: clientRepo,
		reportRepo: reportRepo,
		metrics:    metrics,
		storage:    storage,
		now:        time.Now,
	}
}

func (s *reportService) findClient(ctx context.Context, slug string) (*models.Client, error) {
	client, err := s.clientRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *reportService) List(ctx context.Context, slug string) ([]*models.Report, error) {
	client, err := s.findClient(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.reportRepo.ListByClient(ctx, client.ID)
}

// defaultPeriodDays resolves the period length when the request omits days.
// The original produced a zero-width period here; defaulting by type gives
// every report a meaningful range.
func defaultPeriodDays(reportType string) int {
	if reportType == models.ReportTypeWeekly {
		return 7
	}
	return 30
}

func (s *reportService) Generate(ctx context.Context, slug, reportType string, days *int) (*models.Report, error) {
	client, err := s.findClient(ctx, slug)
	if err != nil {
		return nil, err
	}

	periodDays := defaultPeriodDays(reportType)
	if days != nil && *days > 0 {
		periodDays = *days
	}

	now := s.now()
	start := now.AddDate(0, 0, -periodDays)
	period := models.ReportPeriod{
		Start: start.Format(periodDateLayout),
		End:   now.Format(periodDateLayout),
	}

	summary, err := s.metrics.Summarize(ctx, client, reportType, period)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		ID:        fmt.Sprintf("report-%s-%d", reportType, now.UnixMilli()),
		ClientID:  client.ID,
		Name:      fmt.Sprintf("Relatório %s - %s", models.ReportTypeName(reportType), now.Format(reportNameLayout)),
		Type:      reportType,
		Period:    period,
		Status:    models.ReportStatusReady,
		Summary:   summary,
		CreatedAt: now,
	}

	// Archive the snapshot before the insert so the row can carry the key.
	// Archive failures are logged, not fatal: the report itself still exists.
	if s.storage != nil {
		objectKey := fmt.Sprintf("reports/%s/%s.json", slug, report.ID)
		if err := s.storage.UploadJSON(ctx, objectKey, report); err != nil {
			zap.L().Warn("failed to archive report snapshot",
				zap.String("report_id", report.ID),
				zap.Error(err),
			)
		} else {
			report.ObjectKey = objectKey
		}
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) ExportURL(ctx context.Context, slug, reportID string) (string, error) {
	client, err := s.findClient(ctx, slug)
	if err != nil {
		return "", err
	}

	report, err := s.reportRepo.GetByID(ctx, client.ID, reportID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrReportNotFound
		}
		return "", err
	}
	if s.storage == nil || report.ObjectKey == "" {
		return "", ErrReportNotFound
	}

	return s.storage.PresignedURL(report.ObjectKey, exportURLValidity)
}
