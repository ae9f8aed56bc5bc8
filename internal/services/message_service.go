package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"contala_backend/internal/auth"
	"contala_backend/internal/models"
	"contala_backend/internal/policy"
	"contala_backend/internal/repositories"
	"contala_backend/internal/services/dto"
	"contala_backend/pkg/apperrors"
)

const messagePreviewLimit = 100

type MessageService interface {
	Send(db *gorm.DB, actor auth.Actor, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	List(db *gorm.DB, actor auth.Actor) ([]dto.MessageResponse, error)
	MarkAsRead(db *gorm.DB, actor auth.Actor, messageID string) (*dto.MessageResponse, error)
}

type messageService struct {
	messageRepo   repositories.MessageRepository
	projectRepo   repositories.ProjectRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) MessageService {
	return &messageService{
		messageRepo:   messageRepo,
		projectRepo:   projectRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// Send records a message in a project conversation. The sender is
// always the authenticated actor, whatever the request claims.
func (s *messageService) Send(db *gorm.DB, actor auth.Actor, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	project, err := s.projectRepo.FindByIDScoped(db, policy.ProjectScope(actor), req.ProjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	receiver, err := s.userRepo.FindByID(db, req.ReceiverID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("receiver not found")
		}
		return nil, apperrors.InternalError(err)
	}

	message := &models.ProjectMessage{
		ProjectID:  project.ID,
		SenderID:   actor.ID,
		ReceiverID: receiver.ID,
		Content:    req.Content,
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	senderName := actor.ID
	if sender, err := s.userRepo.FindByID(db, actor.ID); err == nil {
		senderName = sender.FullName()
		message.Sender = sender
	}
	message.Receiver = receiver

	s.notifications.Dispatch(db, receiver.ID, models.NotificationTypeNewMessage,
		fmt.Sprintf("New message from %s", senderName),
		preview(req.Content),
		map[string]any{"project_id": project.ID, "message_id": message.ID},
	)

	resp := dto.NewMessageResponse(message)
	return &resp, nil
}

func (s *messageService) List(db *gorm.DB, actor auth.Actor) ([]dto.MessageResponse, error) {
	messages, err := s.messageRepo.List(db, policy.MessageScope(actor))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewMessageResponseList(messages), nil
}

// MarkAsRead is idempotent. Only the receiver may mark a message read.
func (s *messageService) MarkAsRead(db *gorm.DB, actor auth.Actor, messageID string) (*dto.MessageResponse, error) {
	message, err := s.messageRepo.FindByID(db, messageID)
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.NewNotFoundError("message not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if message.ReceiverID != actor.ID && !actor.IsStaff() {
		return nil, apperrors.ErrOnlyReceiverCanMarkRead
	}

	if !message.Read {
		if err := s.messageRepo.MarkRead(db, message.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		message.Read = true
	}

	resp := dto.NewMessageResponse(message)
	return &resp, nil
}

// preview truncates notification bodies to the first 100 characters.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= messagePreviewLimit {
		return content
	}
	return string(runes[:messagePreviewLimit]) + "..."
}
