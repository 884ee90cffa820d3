package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"huurly_backend/internal/logger"
	"huurly_backend/internal/models"
	"huurly_backend/internal/repositories"
	"huurly_backend/pkg/apperrors"
)

// RealtimePusher delivers a notification to a user's open websocket
// connections. A nil pusher means realtime delivery is off; stored
// notifications are unaffected.
type RealtimePusher interface {
	Push(userID string, notification *models.Notification)
}

type NotificationService interface {
	Notify(db *gorm.DB, userID string, nType models.NotificationType, title, message string, payload any) error
	List(db *gorm.DB, userID string, page, pageSize int) ([]models.Notification, int64, error)
	CountUnread(db *gorm.DB, userID string) (int64, error)
	MarkRead(db *gorm.DB, userID, notificationID string) error
	MarkAllRead(db *gorm.DB, userID string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	pusher           RealtimePusher
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	pusher RealtimePusher,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

// Notify stores the notification and, when a pusher is attached,
// forwards it to the user's live connections. Push failures are the
// pusher's problem; storage is the source of truth.
func (s *notificationService) Notify(db *gorm.DB, userID string, nType models.NotificationType, title, message string, payload any) error {
	n := &models.Notification{
		UserID:  userID,
		Type:    nType,
		Title:   title,
		Message: message,
	}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return apperrors.InternalError(err)
		}
		n.Payload = datatypes.JSON(raw)
	}

	if err := s.notificationRepo.Create(db, n); err != nil {
		return apperrors.InternalError(err)
	}

	if s.pusher != nil {
		s.pusher.Push(userID, n)
	}

	logger.Debug("Notification created",
		"user_id", userID,
		"type", string(nType),
	)
	return nil
}

func (s *notificationService) List(db *gorm.DB, userID string, page, pageSize int) ([]models.Notification, int64, error) {
	notifications, total, err := s.notificationRepo.FindByUser(db, userID, page, pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return notifications, total, nil
}

func (s *notificationService) CountUnread(db *gorm.DB, userID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *notificationService) MarkRead(db *gorm.DB, userID, notificationID string) error {
	err := s.notificationRepo.MarkRead(db, userID, notificationID)
	if errors.Is(err, repositories.ErrNotificationNotFound) {
		return apperrors.ErrNotFound(err)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(db *gorm.DB, userID string) (int64, error) {
	count, err := s.notificationRepo.MarkAllRead(db, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
