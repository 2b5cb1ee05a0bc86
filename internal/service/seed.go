package service

//go:generate mockgen -source=seed.go -destination=mocks/mock_seed.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/observability"
	"github.com/sirupsen/logrus"
)

// SeedRepository вставляет только отсутствующие записи (по уникальному seed_key)
// и возвращает число реально добавленных строк.
type SeedRepository interface {
	SeedGoBagItems(ctx context.Context, items []*models.GoBagItem) (int, error)
	SeedEvacuationCenters(ctx context.Context, centers []*models.EvacuationCenter) (int, error)
	SeedHousehold(ctx context.Context, household *models.Household, members []*models.Member) (int, error)
	SeedHazardZones(ctx context.Context, zones []*models.HazardZone) (int, error)
	SeedPOIs(ctx context.Context, pois []*models.Poi) (int, error)
}

// Seeder заполняет справочные данные. Безопасен при повторном и параллельном запуске.
type Seeder struct {
	repo    SeedRepository
	metrics *observability.Metrics
	logger  *logrus.Logger
}

func NewSeeder(repo SeedRepository, metrics *observability.Metrics, logger *logrus.Logger) *Seeder {
	return &Seeder{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Initialize записывает все наборы данных по умолчанию
func (s *Seeder) Initialize(ctx context.Context) error {
	steps := []struct {
		dataset string
		run     func(context.Context) (int, error)
	}{
		{"go_bag_items", func(ctx context.Context) (int, error) {
			return s.repo.SeedGoBagItems(ctx, DefaultGoBagItems())
		}},
		{"evacuation_centers", func(ctx context.Context) (int, error) {
			return s.repo.SeedEvacuationCenters(ctx, DefaultEvacuationCenters())
		}},
		{"households", func(ctx context.Context) (int, error) {
			household, members := DefaultHousehold()
			return s.repo.SeedHousehold(ctx, household, members)
		}},
		{"hazard_zones", func(ctx context.Context) (int, error) {
			return s.repo.SeedHazardZones(ctx, DefaultHazardZones())
		}},
		{"pois", func(ctx context.Context) (int, error) {
			return s.repo.SeedPOIs(ctx, DefaultPOIs())
		}},
	}

	for _, step := range steps {
		log := s.logger.WithFields(logrus.Fields{
			"service": "seed",
			"dataset": step.dataset,
		})

		inserted, err := step.run(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to seed dataset")
			return fmt.Errorf("service: could not seed %s: %w", step.dataset, err)
		}

		s.metrics.SeededRows.WithLabelValues(step.dataset).Add(float64(inserted))
		if inserted > 0 {
			log.WithField("inserted", inserted).Info("Dataset seeded")
		} else {
			log.Debug("Dataset already present")
		}
	}
	return nil
}
