package dto

import (
	"time"

	"contala_backend/internal/models"
)

type CreateProposalRequest struct {
	ProjectID     string  `json:"project_id" validate:"required,uuid"`
	Message       string  `json:"message" validate:"max=5000"`
	Price         float64 `json:"price" validate:"min=0"`
	EstimatedDays int     `json:"estimated_days" validate:"min=0"`
}

type ProposalResponse struct {
	ID            string                `json:"id"`
	ProjectID     string                `json:"project_id"`
	Project       *ProjectResponse      `json:"project,omitempty"`
	CreatorID     string                `json:"creator_id"`
	Creator       *UserResponse         `json:"creator,omitempty"`
	Message       string                `json:"message"`
	Price         float64               `json:"price"`
	EstimatedDays int                   `json:"estimated_days"`
	Status        models.ProposalStatus `json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
}

func NewProposalResponse(p *models.ProjectProposal) ProposalResponse {
	resp := ProposalResponse{
		ID:            p.ID,
		ProjectID:     p.ProjectID,
		CreatorID:     p.CreatorID,
		Message:       p.Message,
		Price:         p.Price,
		EstimatedDays: p.EstimatedDays,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
	if p.Project != nil {
		project := NewProjectResponse(p.Project)
		resp.Project = &project
	}
	if p.Creator != nil {
		creator := NewUserResponse(p.Creator)
		resp.Creator = &creator
	}
	return resp
}

func NewProposalResponseList(proposals []models.ProjectProposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(proposals))
	for i := range proposals {
		out = append(out, NewProposalResponse(&proposals[i]))
	}
	return out
}
