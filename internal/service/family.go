package service

//go:generate mockgen -source=family.go -destination=mocks/mock_family.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/webhook"
	"github.com/sirupsen/logrus"
)

// FamilyRepository - домохозяйства, члены семьи и их отметки
type FamilyRepository interface {
	CreateHousehold(ctx context.Context, household *models.Household) error
	ListHouseholds(ctx context.Context) ([]*models.Household, error)
	CreateMember(ctx context.Context, member *models.Member) error
	ListMembersByHousehold(ctx context.Context, householdID int64) ([]*models.Member, error)
	UpdateMemberStatus(ctx context.Context, id int64, status models.MemberStatus, location *string) (*models.Member, error)
	CreateCheckIn(ctx context.Context, checkIn *models.CheckIn) error
	ListCheckInsByMember(ctx context.Context, memberID int64) ([]*models.CheckIn, error)
}

type FamilyService interface {
	CreateHousehold(ctx context.Context, household *models.Household) error
	ListHouseholds(ctx context.Context) ([]*models.Household, error)
	ListMembers(ctx context.Context, householdID int64) ([]*models.Member, error)
	CreateMember(ctx context.Context, member *models.Member) error
	UpdateMemberStatus(ctx context.Context, id int64, status models.MemberStatus, location *string) (*models.Member, error)
	ListCheckIns(ctx context.Context, memberID int64) ([]*models.CheckIn, error)
	CreateCheckIn(ctx context.Context, checkIn *models.CheckIn) error
}

type familyService struct {
	repo      FamilyRepository
	logger    *logrus.Logger
	clock     clockwork.Clock
	publisher webhook.WebhookPublisher
}

func NewFamilyService(repo FamilyRepository, logger *logrus.Logger, clock clockwork.Clock, publisher webhook.WebhookPublisher) FamilyService {
	return &familyService{
		repo:      repo,
		logger:    logger,
		clock:     clock,
		publisher: publisher,
	}
}

func (s *familyService) CreateHousehold(ctx context.Context, household *models.Household) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "family",
		"method":  "CreateHousehold",
		"name":    household.Name,
	})

	if err := s.repo.CreateHousehold(ctx, household); err != nil {
		log.WithError(err).Error("Failed to create household in repository")
		return fmt.Errorf("service: could not create household: %w", err)
	}

	log.WithField("household_id", household.ID).Info("Household created successfully")
	return nil
}

func (s *familyService) ListHouseholds(ctx context.Context) ([]*models.Household, error) {
	households, err := s.repo.ListHouseholds(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "family",
			"method":  "ListHouseholds",
		}).WithError(err).Error("Failed to list households from repository")
		return nil, fmt.Errorf("service: could not list households: %w", err)
	}
	return households, nil
}

func (s *familyService) ListMembers(ctx context.Context, householdID int64) ([]*models.Member, error) {
	members, err := s.repo.ListMembersByHousehold(ctx, householdID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":      "family",
			"method":       "ListMembers",
			"household_id": householdID,
		}).WithError(err).Error("Failed to list members from repository")
		return nil, fmt.Errorf("service: could not list members of household %d: %w", householdID, err)
	}
	return members, nil
}

// CreateMember добавляет члена семьи; статус по умолчанию - unknown
func (s *familyService) CreateMember(ctx context.Context, member *models.Member) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "family",
		"method":       "CreateMember",
		"household_id": member.HouseholdID,
	})

	if member.Status == "" {
		member.Status = models.MemberStatusUnknown
	}

	if err := s.repo.CreateMember(ctx, member); err != nil {
		log.WithError(err).Warn("Failed to create member in repository")
		return fmt.Errorf("service: could not create member: %w", err)
	}

	log.WithField("member_id", member.ID).Info("Member created successfully")
	return nil
}

// UpdateMemberStatus - last-write-wins, без версий и проверки конфликтов
func (s *familyService) UpdateMemberStatus(ctx context.Context, id int64, status models.MemberStatus, location *string) (*models.Member, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "family",
		"method":    "UpdateMemberStatus",
		"member_id": id,
		"status":    status,
	})
	log.Info("Attempting to update member status")

	member, err := s.repo.UpdateMemberStatus(ctx, id, status, location)
	if err != nil {
		log.WithError(err).Warn("Failed to update member status")
		return nil, fmt.Errorf("service: could not update status of member %d: %w", id, err)
	}

	s.publish(ctx, log, webhook.FamilyEvent{
		Kind:        webhook.EventMemberStatus,
		HouseholdID: member.HouseholdID,
		MemberID:    member.ID,
		MemberName:  member.Name,
		Status:      member.Status,
		Location:    member.LastKnownLocation,
		Timestamp:   s.clock.Now().UTC(),
	})

	log.Info("Member status updated")
	return member, nil
}

func (s *familyService) ListCheckIns(ctx context.Context, memberID int64) ([]*models.CheckIn, error) {
	checkIns, err := s.repo.ListCheckInsByMember(ctx, memberID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":   "family",
			"method":    "ListCheckIns",
			"member_id": memberID,
		}).WithError(err).Error("Failed to list check-ins from repository")
		return nil, fmt.Errorf("service: could not list check-ins of member %d: %w", memberID, err)
	}
	return checkIns, nil
}

// CreateCheckIn сохраняет отметку; время ставит сервис
func (s *familyService) CreateCheckIn(ctx context.Context, checkIn *models.CheckIn) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "family",
		"method":    "CreateCheckIn",
		"member_id": checkIn.MemberID,
		"is_safe":   checkIn.IsSafe,
	})

	checkIn.Timestamp = s.clock.Now().UTC()
	if err := s.repo.CreateCheckIn(ctx, checkIn); err != nil {
		log.WithError(err).Warn("Failed to create check-in in repository")
		return fmt.Errorf("service: could not create check-in: %w", err)
	}

	isSafe := checkIn.IsSafe
	s.publish(ctx, log, webhook.FamilyEvent{
		Kind:      webhook.EventCheckIn,
		MemberID:  checkIn.MemberID,
		IsSafe:    &isSafe,
		Location:  checkIn.Location,
		Timestamp: checkIn.Timestamp,
	})

	log.WithField("check_in_id", checkIn.ID).Info("Check-in created successfully")
	return nil
}

// publish не влияет на результат запроса: ошибка очереди только логируется
func (s *familyService) publish(ctx context.Context, log *logrus.Entry, event webhook.FamilyEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish family event")
	}
}
