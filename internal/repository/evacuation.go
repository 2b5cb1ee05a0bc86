package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/service"
)

type EvacuationRepository struct {
	db *pgxpool.Pool
}

func NewEvacuationRepository(db *pgxpool.Pool) service.EvacuationRepository {
	return &EvacuationRepository{db: db}
}

func (r *EvacuationRepository) List(ctx context.Context) ([]*models.EvacuationCenter, error) {
	query := `
		SELECT id, name, distance, capacity, status, latitude, longitude
		FROM evacuation_centers
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list evacuation centers: %w", err)
	}
	defer rows.Close()

	centers := make([]*models.EvacuationCenter, 0)
	for rows.Next() {
		center, err := scanEvacuationCenter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evacuation center row: %w", err)
		}
		centers = append(centers, center)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return centers, nil
}

func (r *EvacuationRepository) UpdateStatus(ctx context.Context, id int64, status models.CenterStatus) (*models.EvacuationCenter, error) {
	query := `
		UPDATE evacuation_centers SET status = $1
		WHERE id = $2
		RETURNING id, name, distance, capacity, status, latitude, longitude;
	`
	center, err := scanEvacuationCenter(r.db.QueryRow(ctx, query, string(status), id))
	if err != nil {
		return nil, fmt.Errorf("failed to update evacuation center %d: %w", id, translateError(err))
	}
	return center, nil
}

func scanEvacuationCenter(row pgx.Row) (*models.EvacuationCenter, error) {
	center := &models.EvacuationCenter{}
	var status string
	err := row.Scan(
		&center.ID,
		&center.Name,
		&center.Distance,
		&center.Capacity,
		&status,
		&center.Latitude,
		&center.Longitude,
	)
	center.Status = models.CenterStatus(status)
	return center, err
}
