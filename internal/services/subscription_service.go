package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"huurly_backend/internal/config"
	"huurly_backend/internal/logger"
	"huurly_backend/internal/models"
	"huurly_backend/internal/repositories"
	"huurly_backend/internal/services/dto"
	"huurly_backend/pkg/apperrors"
)

type SubscriptionService interface {
	Start(db *gorm.DB, userID string) (*dto.SubscriptionResponse, error)
	GetCurrent(db *gorm.DB, userID string) (*dto.SubscriptionResponse, error)
	Cancel(db *gorm.DB, userID string) (*dto.SubscriptionResponse, error)
	HandlePaymentWebhook(db *gorm.DB, req *dto.PaymentWebhookRequest) error
	ExpireOverdue(db *gorm.DB) (int, error)
}

type subscriptionService struct {
	subscriptionRepo    repositories.SubscriptionRepository
	notificationService NotificationService
	cfg                 *config.Config
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	notificationService NotificationService,
	cfg *config.Config,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo:    subscriptionRepo,
		notificationService: notificationService,
		cfg:                 cfg,
	}
}

// Start opens a pending subscription at the configured price. It stays
// pending until the payment relay confirms the checkout.
func (s *subscriptionService) Start(db *gorm.DB, userID string) (*dto.SubscriptionResponse, error) {
	current, err := s.subscriptionRepo.FindByUser(db, userID)
	if err != nil && !errors.Is(err, repositories.ErrSubscriptionNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if current != nil &&
		(current.Status == models.SubscriptionStatusActive || current.Status == models.SubscriptionStatusPending) {
		return nil, apperrors.ErrInvalidOperation("subscription",
			"Er loopt al een abonnement voor deze gebruiker")
	}

	sub := &models.UserSubscription{
		UserID:     userID,
		Status:     models.SubscriptionStatusPending,
		PriceCents: s.cfg.Subscription.PriceCents,
		Currency:   s.cfg.Subscription.Currency,
	}
	if err := s.subscriptionRepo.Create(db, sub); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewSubscriptionResponse(sub)
	return &resp, nil
}

func (s *subscriptionService) GetCurrent(db *gorm.DB, userID string) (*dto.SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.FindByUser(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewSubscriptionResponse(sub)
	return &resp, nil
}

// Cancel turns auto-renew off and marks the subscription cancelled.
// Access runs until the paid-for end date; the expiry worker does the
// final demotion.
func (s *subscriptionService) Cancel(db *gorm.DB, userID string) (*dto.SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.FindByUser(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if sub.Status != models.SubscriptionStatusActive && sub.Status != models.SubscriptionStatusPending {
		return nil, apperrors.ErrInvalidStatus("subscription",
			fmt.Sprintf("Abonnement kan niet worden opgezegd vanuit status %s", sub.Status))
	}

	now := time.Now()
	sub.Status = models.SubscriptionStatusCancelled
	sub.AutoRenew = false
	sub.CancelledAt = &now
	if err := s.subscriptionRepo.Update(db, sub); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewSubscriptionResponse(sub)
	return &resp, nil
}

// HandlePaymentWebhook records the relay's verdict. A paid checkout
// activates the pending subscription for the configured duration.
// Webhooks are retried by the relay, so a replayed external id is
// acknowledged without side effects.
func (s *subscriptionService) HandlePaymentWebhook(db *gorm.DB, req *dto.PaymentWebhookRequest) error {
	if existing, err := s.subscriptionRepo.FindPaymentByExternalID(db, req.ExternalID); err == nil && existing != nil {
		return nil
	}

	sub, err := s.subscriptionRepo.FindByID(db, req.SubscriptionID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	status := models.PaymentStatus(req.Status)
	now := time.Now()
	payment := &models.PaymentTransaction{
		UserID:         sub.UserID,
		SubscriptionID: sub.ID,
		AmountCents:    req.AmountCents,
		Currency:       req.Currency,
		Status:         status,
		ExternalID:     req.ExternalID,
	}
	if status == models.PaymentStatusPaid {
		payment.PaidAt = &now
	}
	if err := s.subscriptionRepo.CreatePayment(db, payment); err != nil {
		return apperrors.InternalError(err)
	}

	if status != models.PaymentStatusPaid {
		return nil
	}

	if sub.Status != models.SubscriptionStatusPending {
		logger.Warn("Paid webhook for non-pending subscription",
			"subscription_id", sub.ID,
			"status", string(sub.Status),
		)
		return nil
	}

	sub.Status = models.SubscriptionStatusActive
	sub.StartDate = now
	sub.EndDate = now.AddDate(0, 0, s.cfg.Subscription.DurationDays)
	if err := s.subscriptionRepo.Update(db, sub); err != nil {
		return apperrors.InternalError(err)
	}

	err = s.notificationService.Notify(db, sub.UserID, models.NotificationTypeSubscription,
		"Abonnement actief",
		fmt.Sprintf("Je abonnement loopt tot %s.", sub.EndDate.Format("02-01-2006")),
		map[string]string{"subscription_id": sub.ID})
	if err != nil {
		logger.WithError(err).Warn("Failed to notify subscriber", "subscription_id", sub.ID)
	}
	return nil
}

// ExpireOverdue flips active subscriptions past their end date to
// expired and notifies their owners. Called by the expiry worker.
func (s *subscriptionService) ExpireOverdue(db *gorm.DB) (int, error) {
	subs, err := s.subscriptionRepo.FindExpired(db, time.Now())
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	expired := 0
	for i := range subs {
		sub := &subs[i]
		sub.Status = models.SubscriptionStatusExpired
		if err := s.subscriptionRepo.Update(db, sub); err != nil {
			logger.WithError(err).Error("Failed to expire subscription", "subscription_id", sub.ID)
			continue
		}
		expired++

		err = s.notificationService.Notify(db, sub.UserID, models.NotificationTypeSubscription,
			"Abonnement verlopen",
			"Je abonnement is verlopen. Verleng om zichtbaar te blijven voor verhuurders.",
			map[string]string{"subscription_id": sub.ID})
		if err != nil {
			logger.WithError(err).Warn("Failed to notify subscriber", "subscription_id", sub.ID)
		}
	}
	return expired, nil
}
