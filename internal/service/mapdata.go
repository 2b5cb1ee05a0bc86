package service

//go:generate mockgen -source=mapdata.go -destination=mocks/mock_mapdata.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/sirupsen/logrus"
)

// MapRepository - слои карты: опасные зоны и точки интереса
type MapRepository interface {
	ListHazardZones(ctx context.Context) ([]*models.HazardZone, error)
	ListPOIs(ctx context.Context, poiType string) ([]*models.Poi, error)
}

type MapService interface {
	ListHazardZones(ctx context.Context) ([]*models.HazardZone, error)
	ListPOIs(ctx context.Context, poiType string) ([]*models.Poi, error)
}

type mapService struct {
	repo   MapRepository
	logger *logrus.Logger
}

func NewMapService(repo MapRepository, logger *logrus.Logger) MapService {
	return &mapService{
		repo:   repo,
		logger: logger,
	}
}

func (s *mapService) ListHazardZones(ctx context.Context) ([]*models.HazardZone, error) {
	zones, err := s.repo.ListHazardZones(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "map",
			"method":  "ListHazardZones",
		}).WithError(err).Error("Failed to list hazard zones from repository")
		return nil, fmt.Errorf("service: could not list hazard zones: %w", err)
	}
	return zones, nil
}

// ListPOIs возвращает точки интереса; пустой тип - без фильтра
func (s *mapService) ListPOIs(ctx context.Context, poiType string) ([]*models.Poi, error) {
	poiType = strings.TrimSpace(poiType)

	pois, err := s.repo.ListPOIs(ctx, poiType)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":  "map",
			"method":   "ListPOIs",
			"poi_type": poiType,
		}).WithError(err).Error("Failed to list POIs from repository")
		return nil, fmt.Errorf("service: could not list POIs: %w", err)
	}
	return pois, nil
}
