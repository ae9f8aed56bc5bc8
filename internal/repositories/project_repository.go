package repositories

import (
	"errors"

	"contala_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindByIDScoped(db *gorm.DB, scope func(*gorm.DB) *gorm.DB, id string) (*models.Project, error)
	List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.Project, error)
	Update(db *gorm.DB, project *models.Project) error
	UpdateStatus(db *gorm.DB, projectID string, status models.ProjectStatus) error

	// Review support: completed projects of a client with no review by that
	// client, newest first.
	FindCompletedUnreviewed(db *gorm.DB, clientID string) ([]models.Project, error)
}

type projectRepository struct{}

func NewProjectRepository() ProjectRepository {
	return &projectRepository{}
}

func (r *projectRepository) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *projectRepository) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.Preload("Client").First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindByIDScoped(db *gorm.DB, scope func(*gorm.DB) *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.Scopes(scope).Preload("Client").First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	err := db.Scopes(scope).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *projectRepository) Update(db *gorm.DB, project *models.Project) error {
	return db.Save(project).Error
}

func (r *projectRepository) UpdateStatus(db *gorm.DB, projectID string, status models.ProjectStatus) error {
	return db.Model(&models.Project{}).Where("id = ?", projectID).
		Update("status", status).Error
}

func (r *projectRepository) FindCompletedUnreviewed(db *gorm.DB, clientID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Where("client_id = ? AND status = ?", clientID, models.ProjectStatusCompleted).
		Where("id NOT IN (SELECT project_id FROM project_reviews WHERE client_id = ?)", clientID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}
