package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/service"
)

// createdAtLayout - фиксированная ширина дробной части, чтобы текст сортировался как время
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

const incidentColumns = `id, latitude, longitude, incident_type, severity, description, anonymous, created_at`

type IncidentRepository struct {
	db *sql.DB
}

func NewIncidentRepository(db *sql.DB) service.IncidentRepository {
	return &IncidentRepository{db: db}
}

func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `INSERT INTO incidents (` + incidentColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		incident.ID.String(),
		incident.Latitude,
		incident.Longitude,
		incident.Type,
		incident.Severity,
		incident.Description,
		boolToInt(incident.Anonymous),
		incident.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = ?`

	incident, err := scanIncident(r.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

func (r *IncidentRepository) List(ctx context.Context, limit int) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents ORDER BY created_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

func (r *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM incidents WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("incident with id %s: %w", id, service.ErrIncidentNotFound)
	}
	return nil
}

func (r *IncidentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM incidents`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return count, nil
}

func (r *IncidentRepository) CountBySeverity(ctx context.Context, minSeverity int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM incidents WHERE severity >= ?`, minSeverity).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count incidents by severity: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIncident(row rowScanner) (*models.Incident, error) {
	var (
		incident  models.Incident
		id        string
		anonymous int
		createdAt string
	)
	err := row.Scan(
		&id,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Type,
		&incident.Severity,
		&incident.Description,
		&anonymous,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if incident.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid incident id %q: %w", id, err)
	}
	if incident.CreatedAt, err = time.Parse(createdAtLayout, createdAt); err != nil {
		return nil, fmt.Errorf("invalid incident timestamp %q: %w", createdAt, err)
	}
	incident.Anonymous = anonymous != 0
	return &incident, nil
}
