package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the subset of pgxpool.Pool the repositories use; pgxmock
// satisfies it in tests.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ClientRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Client, error)
	GetAll(ctx context.Context) ([]*models.Client, error)
	UpdateTags(ctx context.Context, id uuid.UUID, tags []string) error
	UpdateCharts(ctx context.Context, id uuid.UUID, charts []models.CustomChart) error
	UpdateProfileAndSettings(ctx context.Context, id uuid.UUID, profile models.ProfileSettings, settings *models.ClientSettings) error
}

type clientRepo struct {
	db Database
}

func NewClientRepository(db Database) ClientRepository {
	return &clientRepo{db: db}
}

const clientColumns = `id, slug, name, email, phone, website, address, description, tags, custom_charts, settings, google_ads, facebook_ads, google_analytics, created_at, updated_at`

func (r *clientRepo) FindBySlug(ctx context.Context, slug string) (*models.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE slug = $1`, clientColumns)
	return scanClient(r.db.QueryRow(ctx, query, slug))
}

func (r *clientRepo) GetAll(ctx context.Context) ([]*models.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients ORDER BY created_at DESC`, clientColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *clientRepo) UpdateTags(ctx context.Context, id uuid.UUID, tags []string) error {
	query := `UPDATE clients SET tags = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, tags, id)
	return err
}

func (r *clientRepo) UpdateCharts(ctx context.Context, id uuid.UUID, charts []models.CustomChart) error {
	payload, err := json.Marshal(charts)
	if err != nil {
		return err
	}
	query := `UPDATE clients SET custom_charts = $1, updated_at = NOW() WHERE id = $2`
	_, err = r.db.Exec(ctx, query, payload, id)
	return err
}

func (r *clientRepo) UpdateProfileAndSettings(ctx context.Context, id uuid.UUID, profile models.ProfileSettings, settings *models.ClientSettings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	query := `
		UPDATE clients
		SET name = $1, email = $2, phone = $3, website = $4, description = $5, settings = $6, updated_at = NOW()
		WHERE id = $7
	`
	_, err = r.db.Exec(ctx, query, profile.Name, profile.Email, profile.Phone, profile.Website, profile.Description, payload, id)
	return err
}

// scanClient reads one clients row. The jsonb columns come back as raw bytes
// and are unmarshalled here; NULLs leave the fields nil.
func scanClient(row pgx.Row) (*models.Client, error) {
	client := &models.Client{}
	var charts, settings, googleAds, facebookAds, googleAnalytics []byte

	err := row.Scan(
		&client.ID, &client.Slug, &client.Name, &client.Email, &client.Phone,
		&client.Website, &client.Address, &client.Description, &client.Tags,
		&charts, &settings, &googleAds, &facebookAds, &googleAnalytics,
		&client.CreatedAt, &client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(charts) > 0 {
		if err := json.Unmarshal(charts, &client.CustomCharts); err != nil {
			return nil, fmt.Errorf("invalid custom_charts for client %s: %w", client.Slug, err)
		}
	}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &client.Settings); err != nil {
			return nil, fmt.Errorf("invalid settings for client %s: %w", client.Slug, err)
		}
	}
	if len(googleAds) > 0 {
		if err := json.Unmarshal(googleAds, &client.GoogleAds); err != nil {
			return nil, fmt.Errorf("invalid google_ads for client %s: %w", client.Slug, err)
		}
	}
	if len(facebookAds) > 0 {
		if err := json.Unmarshal(facebookAds, &client.FacebookAds); err != nil {
			return nil, fmt.Errorf("invalid facebook_ads for client %s: %w", client.Slug, err)
		}
	}
	if len(googleAnalytics) > 0 {
		if err := json.Unmarshal(googleAnalytics, &client.GoogleAnalytics); err != nil {
			return nil, fmt.Errorf("invalid google_analytics for client %s: %w", client.Slug, err)
		}
	}

	return client, nil
}
