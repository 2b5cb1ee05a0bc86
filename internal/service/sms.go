package service

//go:generate mockgen -source=sms.go -destination=mocks/mock_sms.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/sirupsen/logrus"
)

// SMSSender - оператор SMS; возвращает идентификатор сообщения
type SMSSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

type SMSService interface {
	SendSMS(ctx context.Context, to, message string) (string, error)
}

type smsService struct {
	sender SMSSender
	logger *logrus.Logger
}

// NewSMSService принимает nil, если оператор не настроен
func NewSMSService(sender SMSSender, logger *logrus.Logger) SMSService {
	return &smsService{
		sender: sender,
		logger: logger,
	}
}

func (s *smsService) SendSMS(ctx context.Context, to, message string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sms",
		"method":  "SendSMS",
	})

	if s.sender == nil {
		log.Warn("SMS provider is not configured")
		return "", fmt.Errorf("service: sms: %w", models.ErrProviderNotConfigured)
	}

	sid, err := s.sender.Send(ctx, to, message)
	if err != nil {
		log.WithError(err).Error("Failed to send SMS")
		return "", fmt.Errorf("service: could not send sms: %w", err)
	}

	log.WithField("sid", sid).Info("SMS sent")
	return sid, nil
}
