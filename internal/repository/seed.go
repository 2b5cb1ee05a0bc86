package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/service"
)

// SeedRepository вставляет справочные записи по seed_key, существующие строки не трогает,
// поэтому отметки пользователя и обновленные статусы переживают перезапуск.
type SeedRepository struct {
	db *pgxpool.Pool
}

func NewSeedRepository(db *pgxpool.Pool) service.SeedRepository {
	return &SeedRepository{db: db}
}

func seedKey(parts ...string) string {
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, ":")
}

func (r *SeedRepository) SeedGoBagItems(ctx context.Context, items []*models.GoBagItem) (int, error) {
	query := `
		INSERT INTO go_bag_items (category, name, checked, seed_key)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (seed_key) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.Category, item.Name, item.Checked, seedKey("gobag", item.Category, item.Name))
	}
	return r.runBatch(ctx, "go bag items", batch)
}

func (r *SeedRepository) SeedEvacuationCenters(ctx context.Context, centers []*models.EvacuationCenter) (int, error) {
	query := `
		INSERT INTO evacuation_centers (name, distance, capacity, status, latitude, longitude, seed_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (seed_key) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, c := range centers {
		batch.Queue(query, c.Name, c.Distance, c.Capacity, string(c.Status), c.Latitude, c.Longitude, seedKey("center", c.Name))
	}
	return r.runBatch(ctx, "evacuation centers", batch)
}

// SeedHousehold создает домохозяйство (или находит ранее созданное) и добавляет недостающих членов
func (r *SeedRepository) SeedHousehold(ctx context.Context, household *models.Household, members []*models.Member) (int, error) {
	inserted := 0
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		householdKey := seedKey("household", household.Name)

		err := tx.QueryRow(ctx, `
			INSERT INTO households (name, seed_key) VALUES ($1, $2)
			ON CONFLICT (seed_key) DO NOTHING
			RETURNING id;`,
			household.Name, householdKey,
		).Scan(&household.ID)
		switch {
		case err == nil:
			inserted++
		case errors.Is(err, pgx.ErrNoRows):
			if err := tx.QueryRow(ctx, `SELECT id FROM households WHERE seed_key = $1;`, householdKey).Scan(&household.ID); err != nil {
				return fmt.Errorf("lookup seeded household: %w", err)
			}
		default:
			return fmt.Errorf("insert household: %w", err)
		}

		for _, m := range members {
			tag, err := tx.Exec(ctx, `
				INSERT INTO members (household_id, name, contact, last_known_location, status, seed_key)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (seed_key) DO NOTHING;`,
				household.ID, m.Name, m.Contact, m.LastKnownLocation, string(m.Status),
				seedKey("member", household.Name, m.Name),
			)
			if err != nil {
				return fmt.Errorf("insert member %q: %w", m.Name, err)
			}
			m.HouseholdID = household.ID
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed household: %w", err)
	}
	return inserted, nil
}

func (r *SeedRepository) SeedHazardZones(ctx context.Context, zones []*models.HazardZone) (int, error) {
	query := `
		INSERT INTO hazard_zones (name, type, coordinates, severity, seed_key)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (seed_key) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, z := range zones {
		coordinates := z.Coordinates
		if coordinates == nil {
			coordinates = []models.Coordinate{}
		}
		batch.Queue(query, z.Name, z.Type, coordinates, z.Severity, seedKey("hazard", z.Name))
	}
	return r.runBatch(ctx, "hazard zones", batch)
}

func (r *SeedRepository) SeedPOIs(ctx context.Context, pois []*models.Poi) (int, error) {
	query := `
		INSERT INTO pois (name, type, latitude, longitude, address, available, seed_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (seed_key) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, p := range pois {
		batch.Queue(query, p.Name, p.Type, p.Latitude, p.Longitude, p.Address, p.Available, seedKey("poi", p.Type, p.Name))
	}
	return r.runBatch(ctx, "POIs", batch)
}

// runBatch выполняет пакет в одной транзакции и суммирует вставленные строки
func (r *SeedRepository) runBatch(ctx context.Context, dataset string, batch *pgx.Batch) (int, error) {
	inserted := 0
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			tag, err := results.Exec()
			if err != nil {
				results.Close()
				return err
			}
			inserted += int(tag.RowsAffected())
		}
		return results.Close()
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed %s: %w", dataset, err)
	}
	return inserted, nil
}
