package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/service"
)

type MapRepository struct {
	db *pgxpool.Pool
}

func NewMapRepository(db *pgxpool.Pool) service.MapRepository {
	return &MapRepository{db: db}
}

// ListHazardZones - координаты хранятся в JSONB в порядке обхода полигона
func (r *MapRepository) ListHazardZones(ctx context.Context) ([]*models.HazardZone, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, type, coordinates, severity FROM hazard_zones ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list hazard zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.HazardZone, 0)
	for rows.Next() {
		zone := &models.HazardZone{}
		if err := rows.Scan(&zone.ID, &zone.Name, &zone.Type, &zone.Coordinates, &zone.Severity); err != nil {
			return nil, fmt.Errorf("failed to scan hazard zone row: %w", err)
		}
		if zone.Coordinates == nil {
			zone.Coordinates = []models.Coordinate{}
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return zones, nil
}

// ListPOIs - пустой poiType возвращает все точки
func (r *MapRepository) ListPOIs(ctx context.Context, poiType string) ([]*models.Poi, error) {
	query := `
		SELECT id, name, type, latitude, longitude, address, available
		FROM pois
		WHERE ($1 = '' OR type = $1)
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, poiType)
	if err != nil {
		return nil, fmt.Errorf("failed to list POIs: %w", err)
	}
	defer rows.Close()

	pois := make([]*models.Poi, 0)
	for rows.Next() {
		poi := &models.Poi{}
		err := rows.Scan(&poi.ID, &poi.Name, &poi.Type, &poi.Latitude, &poi.Longitude, &poi.Address, &poi.Available)
		if err != nil {
			return nil, fmt.Errorf("failed to scan POI row: %w", err)
		}
		pois = append(pois, poi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return pois, nil
}
