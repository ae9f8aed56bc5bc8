package dto

import (
	"time"

	"contala_backend/internal/models"
)

type CreateApplicationRequest struct {
	ConvocatoriaID string  `json:"convocatoria_id" validate:"required,uuid"`
	CoverLetter    string  `json:"cover_letter" validate:"max=5000"`
	Price          float64 `json:"price" validate:"min=0"`
	EstimatedDays  int     `json:"estimated_days" validate:"min=0"`
}

type ApplicationResponse struct {
	ID             string                   `json:"id"`
	ConvocatoriaID string                   `json:"convocatoria_id"`
	Convocatoria   *ConvocatoriaResponse    `json:"convocatoria,omitempty"`
	CreatorID      string                   `json:"creator_id"`
	Creator        *UserResponse            `json:"creator,omitempty"`
	CoverLetter    string                   `json:"cover_letter"`
	Price          float64                  `json:"price"`
	EstimatedDays  int                      `json:"estimated_days"`
	Status         models.ApplicationStatus `json:"status"`
	CreatedAt      time.Time                `json:"created_at"`
}

func NewApplicationResponse(a *models.ConvocatoriaApplication) ApplicationResponse {
	resp := ApplicationResponse{
		ID:             a.ID,
		ConvocatoriaID: a.ConvocatoriaID,
		CreatorID:      a.CreatorID,
		CoverLetter:    a.CoverLetter,
		Price:          a.Price,
		EstimatedDays:  a.EstimatedDays,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
	}
	if a.Convocatoria != nil {
		convocatoria := NewConvocatoriaResponse(a.Convocatoria)
		resp.Convocatoria = &convocatoria
	}
	if a.Creator != nil {
		creator := NewUserResponse(a.Creator)
		resp.Creator = &creator
	}
	return resp
}

func NewApplicationResponseList(applications []models.ConvocatoriaApplication) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, NewApplicationResponse(&applications[i]))
	}
	return out
}

// AcceptApplicationResponse returns the application together with the
// project and proposal created by accepting it.
type AcceptApplicationResponse struct {
	Application ApplicationResponse `json:"application"`
	Project     ProjectResponse     `json:"project"`
	Proposal    ProposalResponse    `json:"proposal"`
}
