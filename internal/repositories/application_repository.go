package repositories

import (
	"errors"

	"contala_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists for this convocatoria and creator")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.ConvocatoriaApplication) error
	FindByID(db *gorm.DB, id string) (*models.ConvocatoriaApplication, error)
	List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.ConvocatoriaApplication, error)
	ListByConvocatoria(db *gorm.DB, scope func(*gorm.DB) *gorm.DB, convocatoriaID string) ([]models.ConvocatoriaApplication, error)
	UpdateStatus(db *gorm.DB, applicationID string, status models.ApplicationStatus) error
}

type applicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) Create(db *gorm.DB, application *models.ConvocatoriaApplication) error {
	var count int64
	err := db.Model(&models.ConvocatoriaApplication{}).
		Where("convocatoria_id = ? AND creator_id = ?", application.ConvocatoriaID, application.CreatorID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrApplicationAlreadyExists
	}
	return db.Create(application).Error
}

func (r *applicationRepository) FindByID(db *gorm.DB, id string) (*models.ConvocatoriaApplication, error) {
	var application models.ConvocatoriaApplication
	err := db.Preload("Convocatoria").Preload("Creator").First(&application, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.ConvocatoriaApplication, error) {
	var applications []models.ConvocatoriaApplication
	err := db.Scopes(scope).Preload("Convocatoria").Preload("Creator").
		Order("created_at DESC").Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) ListByConvocatoria(db *gorm.DB, scope func(*gorm.DB) *gorm.DB, convocatoriaID string) ([]models.ConvocatoriaApplication, error) {
	var applications []models.ConvocatoriaApplication
	err := db.Scopes(scope).Where("convocatoria_id = ?", convocatoriaID).
		Preload("Creator").Order("created_at DESC").Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) UpdateStatus(db *gorm.DB, applicationID string, status models.ApplicationStatus) error {
	return db.Model(&models.ConvocatoriaApplication{}).Where("id = ?", applicationID).
		Update("status", status).Error
}
