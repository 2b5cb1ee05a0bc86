package service

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	List(ctx context.Context) ([]*models.Incident, error)
}

// IncidentService определяет контракт для бизнес-логики сообщений об инцидентах
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
}

type incidentService struct {
	repo   IncidentRepository
	logger *logrus.Logger
	clock  clockwork.Clock
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, clock clockwork.Clock) IncidentService {
	return &incidentService{
		repo:   repo,
		logger: logger,
		clock:  clock,
	}
}

// CreateIncident сохраняет сообщение об инциденте; время создания ставит сервис
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "CreateIncident",
		"type":      incident.Type,
		"anonymous": incident.IsAnonymous,
	})
	log.Info("Attempting to create a new incident")

	incident.ReportedAt = s.clock.Now().UTC()
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// ListIncidents возвращает все инциденты в порядке поступления
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	incidents, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}
