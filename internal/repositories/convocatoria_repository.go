package repositories

import (
	"errors"

	"contala_backend/internal/models"

	"gorm.io/gorm"
)

var ErrConvocatoriaNotFound = errors.New("convocatoria not found")

type ConvocatoriaRepository interface {
	Create(db *gorm.DB, convocatoria *models.Convocatoria) error
	FindByID(db *gorm.DB, id string) (*models.Convocatoria, error)
	FindByIDScoped(db *gorm.DB, scope func(*gorm.DB) *gorm.DB, id string) (*models.Convocatoria, error)
	List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.Convocatoria, error)
	Update(db *gorm.DB, convocatoria *models.Convocatoria) error
}

type convocatoriaRepository struct{}

func NewConvocatoriaRepository() ConvocatoriaRepository {
	return &convocatoriaRepository{}
}

func (r *convocatoriaRepository) Create(db *gorm.DB, convocatoria *models.Convocatoria) error {
	return db.Create(convocatoria).Error
}

func (r *convocatoriaRepository) FindByID(db *gorm.DB, id string) (*models.Convocatoria, error) {
	var convocatoria models.Convocatoria
	err := db.Preload("Client").First(&convocatoria, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConvocatoriaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &convocatoria, nil
}

func (r *convocatoriaRepository) FindByIDScoped(db *gorm.DB, scope func(*gorm.DB) *gorm.DB, id string) (*models.Convocatoria, error) {
	var convocatoria models.Convocatoria
	err := db.Scopes(scope).Preload("Client").First(&convocatoria, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConvocatoriaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &convocatoria, nil
}

func (r *convocatoriaRepository) List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.Convocatoria, error) {
	var convocatorias []models.Convocatoria
	err := db.Scopes(scope).Preload("Client").Order("created_at DESC").Find(&convocatorias).Error
	return convocatorias, err
}

func (r *convocatoriaRepository) Update(db *gorm.DB, convocatoria *models.Convocatoria) error {
	return db.Save(convocatoria).Error
}
