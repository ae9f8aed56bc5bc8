package repositories

import (
	"errors"

	"contala_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrInvitationAlreadyExists = errors.New("invitation already exists for this project and creator")
)

type InvitationRepository interface {
	Create(db *gorm.DB, invitation *models.ProjectInvitation) error
	FindByID(db *gorm.DB, id string) (*models.ProjectInvitation, error)
	List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.ProjectInvitation, error)
	UpdateStatus(db *gorm.DB, invitationID string, status models.InvitationStatus) error

	// HasInvitation reports whether any invitation exists for the pair,
	// regardless of status.
	HasInvitation(db *gorm.DB, projectID, creatorID string) (bool, error)
}

type invitationRepository struct{}

func NewInvitationRepository() InvitationRepository {
	return &invitationRepository{}
}

func (r *invitationRepository) Create(db *gorm.DB, invitation *models.ProjectInvitation) error {
	exists, err := r.HasInvitation(db, invitation.ProjectID, invitation.CreatorID)
	if err != nil {
		return err
	}
	if exists {
		return ErrInvitationAlreadyExists
	}
	return db.Create(invitation).Error
}

func (r *invitationRepository) FindByID(db *gorm.DB, id string) (*models.ProjectInvitation, error) {
	var invitation models.ProjectInvitation
	err := db.Preload("Project").Preload("Creator").First(&invitation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvitationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *invitationRepository) List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.ProjectInvitation, error) {
	var invitations []models.ProjectInvitation
	err := db.Scopes(scope).Order("created_at DESC").Find(&invitations).Error
	return invitations, err
}

func (r *invitationRepository) UpdateStatus(db *gorm.DB, invitationID string, status models.InvitationStatus) error {
	return db.Model(&models.ProjectInvitation{}).Where("id = ?", invitationID).
		Update("status", status).Error
}

func (r *invitationRepository) HasInvitation(db *gorm.DB, projectID, creatorID string) (bool, error) {
	var count int64
	err := db.Model(&models.ProjectInvitation{}).
		Where("project_id = ? AND creator_id = ?", projectID, creatorID).
		Count(&count).Error
	return count > 0, err
}
