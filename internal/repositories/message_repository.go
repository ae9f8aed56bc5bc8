package repositories

import (
	"errors"

	"contala_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(db *gorm.DB, message *models.ProjectMessage) error
	FindByID(db *gorm.DB, id string) (*models.ProjectMessage, error)
	List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.ProjectMessage, error)
	ListByProject(db *gorm.DB, scope func(*gorm.DB) *gorm.DB, projectID string) ([]models.ProjectMessage, error)
	MarkRead(db *gorm.DB, messageID string) error
}

type messageRepository struct{}

func NewMessageRepository() MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(db *gorm.DB, message *models.ProjectMessage) error {
	return db.Create(message).Error
}

func (r *messageRepository) FindByID(db *gorm.DB, id string) (*models.ProjectMessage, error) {
	var message models.ProjectMessage
	err := db.Preload("Sender").Preload("Receiver").First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Conversation order, oldest first.
func (r *messageRepository) List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.ProjectMessage, error) {
	var messages []models.ProjectMessage
	err := db.Scopes(scope).Preload("Sender").Preload("Receiver").
		Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) ListByProject(db *gorm.DB, scope func(*gorm.DB) *gorm.DB, projectID string) ([]models.ProjectMessage, error) {
	var messages []models.ProjectMessage
	err := db.Scopes(scope).Where("project_id = ?", projectID).
		Preload("Sender").Preload("Receiver").
		Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) MarkRead(db *gorm.DB, messageID string) error {
	return db.Model(&models.ProjectMessage{}).Where("id = ?", messageID).
		Update("read", true).Error
}
