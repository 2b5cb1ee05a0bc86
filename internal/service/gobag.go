package service

//go:generate mockgen -source=gobag.go -destination=mocks/mock_gobag.go -package=mocks

import (
	"context"
	"fmt"
	"math"

	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/sirupsen/logrus"
)

type GoBagRepository interface {
	List(ctx context.Context) ([]*models.GoBagItem, error)
	UpdateChecked(ctx context.Context, id int64, checked bool) (*models.GoBagItem, error)
}

type GoBagService interface {
	ListItems(ctx context.Context) ([]*models.GoBagItem, error)
	SetChecked(ctx context.Context, id int64, checked bool) (*models.GoBagItem, error)
	Progress(ctx context.Context) (*models.GoBagProgress, error)
}

type goBagService struct {
	repo   GoBagRepository
	logger *logrus.Logger
}

func NewGoBagService(repo GoBagRepository, logger *logrus.Logger) GoBagService {
	return &goBagService{
		repo:   repo,
		logger: logger,
	}
}

func (s *goBagService) ListItems(ctx context.Context) ([]*models.GoBagItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "gobag",
			"method":  "ListItems",
		}).WithError(err).Error("Failed to list go-bag items from repository")
		return nil, fmt.Errorf("service: could not list go-bag items: %w", err)
	}
	return items, nil
}

// SetChecked отмечает/снимает отметку с пункта чек-листа
func (s *goBagService) SetChecked(ctx context.Context, id int64, checked bool) (*models.GoBagItem, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "gobag",
		"method":  "SetChecked",
		"item_id": id,
		"checked": checked,
	})

	item, err := s.repo.UpdateChecked(ctx, id, checked)
	if err != nil {
		log.WithError(err).Warn("Failed to update go-bag item")
		return nil, fmt.Errorf("service: could not update go-bag item %d: %w", id, err)
	}

	log.Info("Go-bag item updated")
	return item, nil
}

// Progress считает долю собранных пунктов в процентах
func (s *goBagService) Progress(ctx context.Context) (*models.GoBagProgress, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	progress := &models.GoBagProgress{Total: len(items)}
	for _, item := range items {
		if item.Checked {
			progress.Checked++
		}
	}
	if progress.Total > 0 {
		progress.Percent = int(math.Round(float64(progress.Checked) * 100 / float64(progress.Total)))
	}
	return progress, nil
}
