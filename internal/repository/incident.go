package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/service"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{db: db}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (type, description, location, latitude, longitude, is_anonymous, reported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, reported_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Type,
		incident.Description,
		incident.Location,
		incident.Latitude,
		incident.Longitude,
		incident.IsAnonymous,
		incident.ReportedAt,
	).Scan(&incident.ID, &incident.ReportedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// List возвращает все инциденты по возрастанию времени сообщения
func (r *IncidentRepository) List(ctx context.Context) ([]*models.Incident, error) {
	query := `
		SELECT id, type, description, location, latitude, longitude, is_anonymous, reported_at
		FROM incidents
		ORDER BY reported_at ASC, id ASC;
	`
	rows, err := r.db.Query(ctx, query)
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

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Type,
		&incident.Description,
		&incident.Location,
		&incident.Latitude,
		&incident.Longitude,
		&incident.IsAnonymous,
		&incident.ReportedAt,
	)
	return incident, err
}
