package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/service"
)

type TollGateRepository struct {
	db *sql.DB
}

func NewTollGateRepository(db *sql.DB) service.TollGateRepository {
	return &TollGateRepository{db: db}
}

func (r *TollGateRepository) Create(ctx context.Context, gate *models.TollGate) error {
	query := `INSERT INTO toll_gates (id, latitude, longitude, name, monitored) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		gate.ID.String(),
		gate.Latitude,
		gate.Longitude,
		gate.Name,
		boolToInt(gate.Monitored),
	)
	if err != nil {
		return fmt.Errorf("failed to create toll gate: %w", err)
	}
	return nil
}

func (r *TollGateRepository) List(ctx context.Context, limit int) ([]*models.TollGate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, latitude, longitude, name, monitored FROM toll_gates ORDER BY name LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list toll gates: %w", err)
	}
	defer rows.Close()

	gates := make([]*models.TollGate, 0)
	for rows.Next() {
		var (
			gate      models.TollGate
			id        string
			monitored int
		)
		if err := rows.Scan(&id, &gate.Latitude, &gate.Longitude, &gate.Name, &monitored); err != nil {
			return nil, fmt.Errorf("failed to scan toll gate row: %w", err)
		}
		if gate.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid toll gate id %q: %w", id, err)
		}
		gate.Monitored = monitored != 0
		gates = append(gates, &gate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return gates, nil
}

func (r *TollGateRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM toll_gates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count toll gates: %w", err)
	}
	return count, nil
}
