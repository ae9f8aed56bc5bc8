package dto

import (
	"time"

	"contala_backend/internal/models"
)

type CreateConvocatoriaRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	BudgetMin   *float64   `json:"budget_min,omitempty" validate:"omitempty,min=0"`
	BudgetMax   *float64   `json:"budget_max,omitempty" validate:"omitempty,min=0"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=draft open"`
}

type UpdateConvocatoriaRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	BudgetMin   *float64   `json:"budget_min,omitempty" validate:"omitempty,min=0"`
	BudgetMax   *float64   `json:"budget_max,omitempty" validate:"omitempty,min=0"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=draft open closed"`
}

type ConvocatoriaResponse struct {
	ID          string                    `json:"id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	ClientID    string                    `json:"client_id"`
	Client      *UserResponse             `json:"client,omitempty"`
	BudgetMin   *float64                  `json:"budget_min"`
	BudgetMax   *float64                  `json:"budget_max"`
	Deadline    *time.Time                `json:"deadline"`
	StartDate   *time.Time                `json:"start_date"`
	EndDate     *time.Time                `json:"end_date"`
	Status      models.ConvocatoriaStatus `json:"status"`
	CreatedAt   time.Time                 `json:"created_at"`
}

func NewConvocatoriaResponse(c *models.Convocatoria) ConvocatoriaResponse {
	resp := ConvocatoriaResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ClientID:    c.ClientID,
		BudgetMin:   c.BudgetMin,
		BudgetMax:   c.BudgetMax,
		Deadline:    c.Deadline,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
	if c.Client != nil {
		client := NewUserResponse(c.Client)
		resp.Client = &client
	}
	return resp
}

func NewConvocatoriaResponseList(convocatorias []models.Convocatoria) []ConvocatoriaResponse {
	out := make([]ConvocatoriaResponse, 0, len(convocatorias))
	for i := range convocatorias {
		out = append(out, NewConvocatoriaResponse(&convocatorias[i]))
	}
	return out
}
