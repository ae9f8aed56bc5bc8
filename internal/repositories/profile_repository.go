package repositories

import (
	"errors"

	"contala_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound       = errors.New("creator profile not found")
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
	ErrSocialLinkNotFound    = errors.New("social network link not found")
)

type ProfileRepository interface {
	CreateProfile(db *gorm.DB, profile *models.CreatorProfile) error
	FindProfileByID(db *gorm.DB, id string) (*models.CreatorProfile, error)
	FindProfileByUserID(db *gorm.DB, userID string) (*models.CreatorProfile, error)
	ListProfiles(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.CreatorProfile, error)
	UpdateProfile(db *gorm.DB, profile *models.CreatorProfile) error

	// Rating aggregates; written only by the review aggregation path.
	RefreshRatingAggregates(db *gorm.DB, creatorUserID string) error

	// Portfolio
	CreatePortfolioItem(db *gorm.DB, item *models.CreatorPortfolioItem) error
	FindPortfolioItemByID(db *gorm.DB, id string) (*models.CreatorPortfolioItem, error)
	ListPortfolioItems(db *gorm.DB, profileID string) ([]models.CreatorPortfolioItem, error)
	UpdatePortfolioItem(db *gorm.DB, item *models.CreatorPortfolioItem) error
	DeletePortfolioItem(db *gorm.DB, id string) error

	// Social network links
	CreateSocialLink(db *gorm.DB, link *models.SocialNetworkLink) error
	FindSocialLinkByID(db *gorm.DB, id string) (*models.SocialNetworkLink, error)
	ListSocialLinks(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.SocialNetworkLink, error)
	UpdateSocialLink(db *gorm.DB, link *models.SocialNetworkLink) error
	DeleteSocialLink(db *gorm.DB, id string) error
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) CreateProfile(db *gorm.DB, profile *models.CreatorProfile) error {
	return db.Create(profile).Error
}

func (r *profileRepository) FindProfileByID(db *gorm.DB, id string) (*models.CreatorProfile, error) {
	var profile models.CreatorProfile
	err := db.Preload("PortfolioItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindProfileByUserID(db *gorm.DB, userID string) (*models.CreatorProfile, error) {
	var profile models.CreatorProfile
	err := db.Preload("PortfolioItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) ListProfiles(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.CreatorProfile, error) {
	var profiles []models.CreatorProfile
	err := db.Scopes(scope).Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) UpdateProfile(db *gorm.DB, profile *models.CreatorProfile) error {
	return db.Save(profile).Error
}

func (r *profileRepository) RefreshRatingAggregates(db *gorm.DB, creatorUserID string) error {
	var stats struct {
		Avg   float64
		Count int64
	}
	err := db.Model(&models.ProjectReview{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("creator_id = ?", creatorUserID).
		Scan(&stats).Error
	if err != nil {
		return err
	}

	return db.Model(&models.CreatorProfile{}).
		Where("user_id = ?", creatorUserID).
		Updates(map[string]interface{}{
			"average_rating": stats.Avg,
			"review_count":   stats.Count,
		}).Error
}

// --- Portfolio ---

func (r *profileRepository) CreatePortfolioItem(db *gorm.DB, item *models.CreatorPortfolioItem) error {
	return db.Create(item).Error
}

func (r *profileRepository) FindPortfolioItemByID(db *gorm.DB, id string) (*models.CreatorPortfolioItem, error) {
	var item models.CreatorPortfolioItem
	err := db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPortfolioItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *profileRepository) ListPortfolioItems(db *gorm.DB, profileID string) ([]models.CreatorPortfolioItem, error) {
	var items []models.CreatorPortfolioItem
	err := db.Where("creator_profile_id = ?", profileID).
		Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *profileRepository) UpdatePortfolioItem(db *gorm.DB, item *models.CreatorPortfolioItem) error {
	return db.Save(item).Error
}

func (r *profileRepository) DeletePortfolioItem(db *gorm.DB, id string) error {
	return db.Delete(&models.CreatorPortfolioItem{}, "id = ?", id).Error
}

// --- Social network links ---

func (r *profileRepository) CreateSocialLink(db *gorm.DB, link *models.SocialNetworkLink) error {
	return db.Create(link).Error
}

func (r *profileRepository) FindSocialLinkByID(db *gorm.DB, id string) (*models.SocialNetworkLink, error) {
	var link models.SocialNetworkLink
	err := db.First(&link, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSocialLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *profileRepository) ListSocialLinks(db *gorm.DB, scope func(*gorm.DB) *gorm.DB) ([]models.SocialNetworkLink, error) {
	var links []models.SocialNetworkLink
	err := db.Scopes(scope).Order("created_at DESC").Find(&links).Error
	return links, err
}

func (r *profileRepository) UpdateSocialLink(db *gorm.DB, link *models.SocialNetworkLink) error {
	return db.Save(link).Error
}

func (r *profileRepository) DeleteSocialLink(db *gorm.DB, id string) error {
	return db.Delete(&models.SocialNetworkLink{}, "id = ?", id).Error
}
