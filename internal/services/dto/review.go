package dto

import (
	"time"

	"contala_backend/internal/models"
)

type CreateReviewRequest struct {
	ProjectID      string `json:"project_id" validate:"required,uuid"`
	CreatorID      string `json:"creator_id" validate:"required,uuid"`
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	Comment        string `json:"comment" validate:"max=5000"`
	Recommendation string `json:"recommendation" validate:"max=5000"`
}

type ReviewResponse struct {
	ID             string           `json:"id"`
	ProjectID      string           `json:"project_id"`
	Project        *ProjectResponse `json:"project,omitempty"`
	ClientID       string           `json:"client_id"`
	Client         *UserResponse    `json:"client,omitempty"`
	CreatorID      string           `json:"creator_id"`
	Creator        *UserResponse    `json:"creator,omitempty"`
	Rating         int              `json:"rating"`
	Comment        string           `json:"comment"`
	Recommendation string           `json:"recommendation"`
	CreatedAt      time.Time        `json:"created_at"`
}

func NewReviewResponse(r *models.ProjectReview) ReviewResponse {
	resp := ReviewResponse{
		ID:             r.ID,
		ProjectID:      r.ProjectID,
		ClientID:       r.ClientID,
		CreatorID:      r.CreatorID,
		Rating:         r.Rating,
		Comment:        r.Comment,
		Recommendation: r.Recommendation,
		CreatedAt:      r.CreatedAt,
	}
	if r.Project != nil {
		project := NewProjectResponse(r.Project)
		resp.Project = &project
	}
	if r.Client != nil {
		client := NewUserResponse(r.Client)
		resp.Client = &client
	}
	if r.Creator != nil {
		creator := NewUserResponse(r.Creator)
		resp.Creator = &creator
	}
	return resp
}

func NewReviewResponseList(reviews []models.ProjectReview) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}
