package dto

import (
	"time"

	"contala_backend/internal/models"
)

type CreateProjectRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	Budget      *float64   `json:"budget,omitempty" validate:"omitempty,min=0"`
	IsPublic    bool       `json:"is_public"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=draft open"`
}

type UpdateProjectRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Budget      *float64   `json:"budget,omitempty" validate:"omitempty,min=0"`
	IsPublic    *bool      `json:"is_public,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=draft open in_progress completed canceled"`
}

type ProjectResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	ClientID    string               `json:"client_id"`
	Client      *UserResponse        `json:"client,omitempty"`
	Status      models.ProjectStatus `json:"status"`
	Budget      *float64             `json:"budget"`
	IsPublic    bool                 `json:"is_public"`
	Deadline    *time.Time           `json:"deadline"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func NewProjectResponse(p *models.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ClientID:    p.ClientID,
		Status:      p.Status,
		Budget:      p.Budget,
		IsPublic:    p.IsPublic,
		Deadline:    p.Deadline,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Client != nil {
		client := NewUserResponse(p.Client)
		resp.Client = &client
	}
	return resp
}

func NewProjectResponseList(projects []models.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, NewProjectResponse(&projects[i]))
	}
	return out
}
