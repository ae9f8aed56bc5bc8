package repositories

import (
	"errors"

	"contala_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrProposalAlreadyExists = errors.New("proposal already exists for this project and creator")
)

type ProposalRepository interface {
	Create(db *gorm.DB, proposal *models.ProjectProposal) error
	FindByID(db *gorm.DB, id string) (*models.ProjectProposal, error)
	FindByProjectAndCreator(db *gorm.DB, projectID, creatorID string) (*models.ProjectProposal, error)
	List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.ProjectProposal, error)
	ListByProject(db *gorm.DB, scope func(*gorm.DB) *gorm.DB, projectID string) ([]models.ProjectProposal, error)
	UpdateStatus(db *gorm.DB, proposalID string, status models.ProposalStatus) error
	Save(db *gorm.DB, proposal *models.ProjectProposal) error
}

type proposalRepository struct{}

func NewProposalRepository() ProposalRepository {
	return &proposalRepository{}
}

func (r *proposalRepository) Create(db *gorm.DB, proposal *models.ProjectProposal) error {
	var count int64
	err := db.Model(&models.ProjectProposal{}).
		Where("project_id = ? AND creator_id = ?", proposal.ProjectID, proposal.CreatorID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProposalAlreadyExists
	}
	return db.Create(proposal).Error
}

func (r *proposalRepository) FindByID(db *gorm.DB, id string) (*models.ProjectProposal, error) {
	var proposal models.ProjectProposal
	err := db.Preload("Project").Preload("Creator").First(&proposal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProposalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) FindByProjectAndCreator(db *gorm.DB, projectID, creatorID string) (*models.ProjectProposal, error) {
	var proposal models.ProjectProposal
	err := db.First(&proposal, "project_id = ? AND creator_id = ?", projectID, creatorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProposalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.ProjectProposal, error) {
	var proposals []models.ProjectProposal
	err := db.Scopes(scope).Order("created_at DESC").Find(&proposals).Error
	return proposals, err
}

func (r *proposalRepository) ListByProject(db *gorm.DB, scope func(*gorm.DB) *gorm.DB, projectID string) ([]models.ProjectProposal, error) {
	var proposals []models.ProjectProposal
	err := db.Scopes(scope).Preload("Creator").Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&proposals).Error
	return proposals, err
}

func (r *proposalRepository) UpdateStatus(db *gorm.DB, proposalID string, status models.ProposalStatus) error {
	return db.Model(&models.ProjectProposal{}).Where("id = ?", proposalID).
		Update("status", status).Error
}

func (r *proposalRepository) Save(db *gorm.DB, proposal *models.ProjectProposal) error {
	return db.Save(proposal).Error
}
