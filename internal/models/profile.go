package models

type CreatorProfile struct {
	BaseModel
	UserID          string  `gorm:"not null;uniqueIndex" json:"user_id"`
	Specialties     string  `json:"specialties"` // comma separated
	ExperienceYears int     `gorm:"default:0" json:"experience_years"`
	Location        string  `json:"location"`
	AverageRating   float64 `gorm:"default:0" json:"average_rating"`
	ReviewCount     int     `gorm:"default:0" json:"review_count"`

	// Relations
	PortfolioItems []CreatorPortfolioItem `gorm:"foreignKey:CreatorProfileID" json:"portfolio_items,omitempty"`
}

type CreatorPortfolioItem struct {
	BaseModel
	CreatorProfileID string            `gorm:"not null;index" json:"creator_profile_id"`
	Type             PortfolioItemType `gorm:"type:varchar(5);not null" json:"type"`
	URL              string            `gorm:"not null" json:"url"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
}
