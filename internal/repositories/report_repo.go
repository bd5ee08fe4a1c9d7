package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*models.Report, error)
	GetByID(ctx context.Context, clientID uuid.UUID, id string) (*models.Report, error)
}

type reportRepo struct {
	db Database
}

func NewReportRepository(db Database) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, report *models.Report) error {
	summary, err := json.Marshal(report.Summary)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO reports (id, client_id, name, type, period_start, period_end, status, summary, object_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`
	_, err = r.db.Exec(ctx, query, report.ID, report.ClientID, report.Name, report.Type,
		report.Period.Start, report.Period.End, report.Status, summary, report.ObjectKey)
	return err
}

func (r *reportRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*models.Report, error) {
	query := `
		SELECT id, client_id, name, type, period_start, period_end, status, summary, object_key, created_at
		FROM reports
		WHERE client_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (r *reportRepo) GetByID(ctx context.Context, clientID uuid.UUID, id string) (*models.Report, error) {
	query := `
		SELECT id, client_id, name, type, period_start, period_end, status, summary, object_key, created_at
		FROM reports
		WHERE client_id = $1 AND id = $2
	`
	return scanReport(r.db.QueryRow(ctx, query, clientID, id))
}

func scanReport(row pgx.Row) (*models.Report, error) {
	report := &models.Report{}
	var summary []byte

	err := row.Scan(
		&report.ID, &report.ClientID, &report.Name, &report.Type,
		&report.Period.Start, &report.Period.End, &report.Status,
		&summary, &report.ObjectKey, &report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(summary) > 0 {
		if err := json.Unmarshal(summary, &report.Summary); err != nil {
			return nil, fmt.Errorf("invalid summary for report %s: %w", report.ID, err)
		}
	}

	return report, nil
}
