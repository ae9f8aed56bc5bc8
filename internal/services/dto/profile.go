package dto

import (
	"time"

	"contala_backend/internal/models"
)

type UpdateProfileRequest struct {
	Specialties     *string `json:"specialties,omitempty" validate:"omitempty,max=500"`
	ExperienceYears *int    `json:"experience_years,omitempty" validate:"omitempty,min=0,max=80"`
	Location        *string `json:"location,omitempty" validate:"omitempty,max=200"`
}

type CreatorProfileResponse struct {
	ID              string                  `json:"id"`
	UserID          string                  `json:"user_id"`
	Specialties     string                  `json:"specialties"`
	ExperienceYears int                     `json:"experience_years"`
	Location        string                  `json:"location"`
	AverageRating   float64                 `json:"average_rating"`
	ReviewCount     int                     `json:"review_count"`
	PortfolioItems  []PortfolioItemResponse `json:"portfolio_items"`
}

func NewCreatorProfileResponse(p *models.CreatorProfile) CreatorProfileResponse {
	items := make([]PortfolioItemResponse, 0, len(p.PortfolioItems))
	for i := range p.PortfolioItems {
		items = append(items, NewPortfolioItemResponse(&p.PortfolioItems[i]))
	}
	return CreatorProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Specialties:     p.Specialties,
		ExperienceYears: p.ExperienceYears,
		Location:        p.Location,
		AverageRating:   p.AverageRating,
		ReviewCount:     p.ReviewCount,
		PortfolioItems:  items,
	}
}

type CreatePortfolioItemRequest struct {
	Type        models.PortfolioItemType `json:"type" validate:"required,oneof=image video"`
	URL         string                   `json:"url" validate:"required,url"`
	Title       string                   `json:"title" validate:"max=200"`
	Description string                   `json:"description" validate:"max=2000"`
}

type UpdatePortfolioItemRequest struct {
	URL         *string `json:"url,omitempty" validate:"omitempty,url"`
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

type PortfolioItemResponse struct {
	ID          string                   `json:"id"`
	Type        models.PortfolioItemType `json:"type"`
	URL         string                   `json:"url"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	CreatedAt   time.Time                `json:"created_at"`
}

func NewPortfolioItemResponse(item *models.CreatorPortfolioItem) PortfolioItemResponse {
	return PortfolioItemResponse{
		ID:          item.ID,
		Type:        item.Type,
		URL:         item.URL,
		Title:       item.Title,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}
}

type CreateSocialLinkRequest struct {
	Network  models.SocialNetwork `json:"network" validate:"required,oneof=instagram twitter facebook linkedin tiktok youtube other"`
	URL      string               `json:"url" validate:"required,url"`
	Username string               `json:"username" validate:"max=150"`
}

type UpdateSocialLinkRequest struct {
	URL      *string `json:"url,omitempty" validate:"omitempty,url"`
	Username *string `json:"username,omitempty" validate:"omitempty,max=150"`
}

type SocialLinkResponse struct {
	ID       string               `json:"id"`
	UserID   string               `json:"user_id"`
	Network  models.SocialNetwork `json:"network"`
	URL      string               `json:"url"`
	Username string               `json:"username"`
}

func NewSocialLinkResponse(link *models.SocialNetworkLink) SocialLinkResponse {
	return SocialLinkResponse{
		ID:       link.ID,
		UserID:   link.UserID,
		Network:  link.Network,
		URL:      link.URL,
		Username: link.Username,
	}
}
