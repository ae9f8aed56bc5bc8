package dto

import (
	"time"

	"contala_backend/internal/models"
)

type CreateInvitationRequest struct {
	ProjectID string `json:"project_id" validate:"required,uuid"`
	CreatorID string `json:"creator_id" validate:"required,uuid"`
	Message   string `json:"message" validate:"max=5000"`
}

type InvitationResponse struct {
	ID        string                  `json:"id"`
	ProjectID string                  `json:"project_id"`
	Project   *ProjectResponse        `json:"project,omitempty"`
	CreatorID string                  `json:"creator_id"`
	Creator   *UserResponse           `json:"creator,omitempty"`
	Message   string                  `json:"message"`
	Status    models.InvitationStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
}

func NewInvitationResponse(inv *models.ProjectInvitation) InvitationResponse {
	resp := InvitationResponse{
		ID:        inv.ID,
		ProjectID: inv.ProjectID,
		CreatorID: inv.CreatorID,
		Message:   inv.Message,
		Status:    inv.Status,
		CreatedAt: inv.CreatedAt,
	}
	if inv.Project != nil {
		project := NewProjectResponse(inv.Project)
		resp.Project = &project
	}
	if inv.Creator != nil {
		creator := NewUserResponse(inv.Creator)
		resp.Creator = &creator
	}
	return resp
}

func NewInvitationResponseList(invitations []models.ProjectInvitation) []InvitationResponse {
	out := make([]InvitationResponse, 0, len(invitations))
	for i := range invitations {
		out = append(out, NewInvitationResponse(&invitations[i]))
	}
	return out
}

// AcceptInvitationResponse returns the invitation together with the
// proposal materialized by accepting it.
type AcceptInvitationResponse struct {
	Invitation InvitationResponse `json:"invitation"`
	Proposal   ProposalResponse   `json:"proposal"`
}
