package services

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"contala_backend/internal/email"
	"contala_backend/internal/logger"
	"contala_backend/internal/models"
	"contala_backend/internal/repositories"
	"contala_backend/internal/services/dto"
	"contala_backend/pkg/apperrors"
)

type NotificationService interface {
	// Dispatch persists an in-app notification and sends a best-effort
	// email copy. It never fails the calling operation.
	Dispatch(db *gorm.DB, userID string, typ models.NotificationType, title, message string, data map[string]any)

	ListMine(db *gorm.DB, userID string) (*dto.NotificationListResponse, error)
	UnreadCount(db *gorm.DB, userID string) (int64, error)
	MarkRead(db *gorm.DB, userID, notificationID string) error
	MarkAllRead(db *gorm.DB, userID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
	}
}

func (s *notificationService) Dispatch(db *gorm.DB, userID string, typ models.NotificationType, title, message string, data map[string]any) {
	var payload datatypes.JSON
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			logger.Error("failed to marshal notification data", "error", err, "type", typ)
		} else {
			payload = datatypes.JSON(raw)
		}
	}

	notification := &models.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
		Data:    payload,
	}
	if err := s.notificationRepo.Create(db, notification); err != nil {
		logger.Error("failed to persist notification", "error", err, "user_id", userID, "type", typ)
		return
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		logger.Error("failed to load notification recipient", "error", err, "user_id", userID)
		return
	}

	if err := s.emailProvider.Send(&email.Email{
		To:      []string{user.Email},
		Subject: title,
		Body:    message,
	}); err != nil {
		logger.Warn("failed to send notification email", "error", err, "user_id", userID, "type", typ)
	}
}

func (s *notificationService) ListMine(db *gorm.DB, userID string) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	unread, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewNotificationListResponse(notifications, unread)
	return &resp, nil
}

func (s *notificationService) UnreadCount(db *gorm.DB, userID string) (int64, error) {
	unread, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return unread, nil
}

func (s *notificationService) MarkRead(db *gorm.DB, userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(db, notificationID)
	if err != nil {
		if err == repositories.ErrNotificationNotFound {
			return apperrors.NewNotFoundError("notification not found")
		}
		return apperrors.InternalError(err)
	}
	if notification.UserID != userID {
		return apperrors.ErrInsufficientPermissions
	}
	if err := s.notificationRepo.MarkRead(db, notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(db *gorm.DB, userID string) error {
	if err := s.notificationRepo.MarkAllRead(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
