package repositories

import (
	"errors"

	"contala_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this project")
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.ProjectReview) error
	FindByID(db *gorm.DB, id string) (*models.ProjectReview, error)
	List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.ProjectReview, error)
	ListByCreator(db *gorm.DB, creatorID string) ([]models.ProjectReview, error)
}

type reviewRepository struct{}

func NewReviewRepository() ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *models.ProjectReview) error {
	var count int64
	err := db.Model(&models.ProjectReview{}).
		Where("project_id = ? AND client_id = ? AND creator_id = ?",
			review.ProjectID, review.ClientID, review.CreatorID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrReviewAlreadyExists
	}
	return db.Create(review).Error
}

func (r *reviewRepository) FindByID(db *gorm.DB, id string) (*models.ProjectReview, error) {
	var review models.ProjectReview
	err := db.Preload("Project").Preload("Client").Preload("Creator").
		First(&review, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) List(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.ProjectReview, error) {
	var reviews []models.ProjectReview
	err := db.Scopes(scope).Preload("Project").Preload("Client").Preload("Creator").
		Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) ListByCreator(db *gorm.DB, creatorID string) ([]models.ProjectReview, error) {
	var reviews []models.ProjectReview
	err := db.Where("creator_id = ?", creatorID).Preload("Client").
		Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}
