package services

import (
	"context"
	"math/rand"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/models"
)

// MetricsSource computes the summary metrics of a generated report. In a
// complete deployment this aggregates ad-platform data for the period; the
// placeholder implementation below generates plausible values. Keeping it an
// injected strategy lets tests use a deterministic double.
type MetricsSource interface {
	Summarize(ctx context.Context, client *models.Client, reportType string, period models.ReportPeriod) (models.ReportSummary, error)
}

type placeholderMetricsSource struct{}

// NewPlaceholderMetricsSource returns a MetricsSource producing pseudo-random
// metrics in the ranges the dashboard expects.
func NewPlaceholderMetricsSource() MetricsSource {
	return placeholderMetricsSource{}
}

func (placeholderMetricsSource) Summarize(ctx context.Context, client *models.Client, reportType string, period models.ReportPeriod) (models.ReportSummary, error) {
	return models.ReportSummary{
		TotalInvestment:  rand.Float64()*10000 + 5000,
		TotalLeads:       rand.Intn(50) + 20,
		TotalConversions: rand.Intn(20) + 5,
		AverageCPC:       rand.Float64()*20 + 10,
		AverageCTR:       rand.Float64()*3 + 0.5,
		ROAS:             rand.Float64()*2 + 1,
	}, nil
}
