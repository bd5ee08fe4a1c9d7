package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/models"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/repositories"

	"github.com/jackc/pgx/v5"
)

// ChartService manages the chart definitions embedded in a client record.
// Charts are not individually addressable rows: every mutation rewrites the
// whole sequence back onto the client.
type ChartService interface {
	List(ctx context.Context, slug string) ([]models.CustomChart, error)
	Upsert(ctx context.Context, slug string, chart models.CustomChart) (*models.CustomChart, error)
	Delete(ctx context.Context, slug, chartID string) error
}

type chartService struct {
	clientRepo repositories.ClientRepository
	now        func() time.Time
}

func NewChartService(clientRepo repositories.ClientRepository) ChartService {
	return &chartService{
		clientRepo: clientRepo,
		now:        time.Now,
	}
}

func (s *chartService) findClient(ctx context.Context, slug string) (*models.Client, error) {
	client, err := s.clientRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *chartService) List(ctx context.Context, slug string) ([]models.CustomChart, error) {
	client, err := s.findClient(ctx, slug)
	if err != nil {
		return nil, err
	}
	if client.CustomCharts == nil {
		return []models.CustomChart{}, nil
	}
	return client.CustomCharts, nil
}

// Upsert replaces an existing chart in place when the payload carries a known
// id (order preserved), otherwise assigns a time-derived id and appends.
func (s *chartService) Upsert(ctx context.Context, slug string, chart models.CustomChart) (*models.CustomChart, error) {
	client, err := s.findClient(ctx, slug)
	if err != nil {
		return nil, err
	}

	now := s.now()
	chart.CreatedAt = now
	chart.UpdatedAt = now

	charts := client.CustomCharts
	replaced := false
	if chart.ID != "" {
		for i, existing := range charts {
			if existing.ID == chart.ID {
				charts[i] = chart
				replaced = true
				break
			}
		}
	}
	if !replaced {
		if chart.ID == "" {
			chart.ID = fmt.Sprintf("chart_%d", now.UnixMilli())
		}
		charts = append(charts, chart)
	}

	if err := s.clientRepo.UpdateCharts(ctx, client.ID, charts); err != nil {
		return nil, err
	}
	return &chart, nil
}

// Delete filters the chart out of the sequence; an unchanged length means the
// id was unknown and nothing is written.
func (s *chartService) Delete(ctx context.Context, slug, chartID string) error {
	client, err := s.findClient(ctx, slug)
	if err != nil {
		return err
	}

	charts := client.CustomCharts
	updated := make([]models.CustomChart, 0, len(charts))
	for _, chart := range charts {
		if chart.ID != chartID {
			updated = append(updated, chart)
		}
	}
	if len(updated) == len(charts) {
		return ErrChartNotFound
	}

	return s.clientRepo.UpdateCharts(ctx, client.ID, updated)
}
