package service

//go:generate mockgen -source=evacuation.go -destination=mocks/mock_evacuation.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/sirupsen/logrus"
)

type EvacuationRepository interface {
	List(ctx context.Context) ([]*models.EvacuationCenter, error)
	UpdateStatus(ctx context.Context, id int64, status models.CenterStatus) (*models.EvacuationCenter, error)
}

type EvacuationService interface {
	ListCenters(ctx context.Context) ([]*models.EvacuationCenter, error)
	UpdateCenterStatus(ctx context.Context, id int64, status models.CenterStatus) (*models.EvacuationCenter, error)
}

type evacuationService struct {
	repo   EvacuationRepository
	logger *logrus.Logger
}

func NewEvacuationService(repo EvacuationRepository, logger *logrus.Logger) EvacuationService {
	return &evacuationService{
		repo:   repo,
		logger: logger,
	}
}

func (s *evacuationService) ListCenters(ctx context.Context) ([]*models.EvacuationCenter, error) {
	centers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "evacuation",
			"method":  "ListCenters",
		}).WithError(err).Error("Failed to list evacuation centers from repository")
		return nil, fmt.Errorf("service: could not list evacuation centers: %w", err)
	}
	return centers, nil
}

// UpdateCenterStatus меняет статус пункта эвакуации (open/limited/full/closed)
func (s *evacuationService) UpdateCenterStatus(ctx context.Context, id int64, status models.CenterStatus) (*models.EvacuationCenter, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "evacuation",
		"method":    "UpdateCenterStatus",
		"center_id": id,
		"status":    status,
	})
	log.Info("Attempting to update evacuation center status")

	center, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Warn("Failed to update evacuation center status")
		return nil, fmt.Errorf("service: could not update evacuation center %d: %w", id, err)
	}

	log.Info("Evacuation center status updated")
	return center, nil
}
