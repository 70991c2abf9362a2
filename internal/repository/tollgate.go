package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/service"
)

type TollGateRepository struct {
	db *pgxpool.Pool
}

func NewTollGateRepository(db *pgxpool.Pool) service.TollGateRepository {
	return &TollGateRepository{db: db}
}

// Create добавляет пункт контроля в справочник
func (r *TollGateRepository) Create(ctx context.Context, gate *models.TollGate) error {
	query := `
		INSERT INTO toll_gates (id, latitude, longitude, name, monitored)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query, gate.ID, gate.Latitude, gate.Longitude, gate.Name, gate.Monitored)
	if err != nil {
		return fmt.Errorf("failed to create toll gate: %w", err)
	}
	return nil
}

func (r *TollGateRepository) List(ctx context.Context, limit int) ([]*models.TollGate, error) {
	query := `
		SELECT id, latitude, longitude, name, monitored
		FROM toll_gates
		ORDER BY name
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list toll gates: %w", err)
	}
	defer rows.Close()

	gates := make([]*models.TollGate, 0)
	for rows.Next() {
		gate := &models.TollGate{}
		if err := rows.Scan(&gate.ID, &gate.Latitude, &gate.Longitude, &gate.Name, &gate.Monitored); err != nil {
			return nil, fmt.Errorf("failed to scan toll gate row: %w", err)
		}
		gates = append(gates, gate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return gates, nil
}

func (r *TollGateRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM toll_gates;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count toll gates: %w", err)
	}
	return count, nil
}
