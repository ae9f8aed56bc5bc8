package dto

import (
	"time"

	"contala_backend/internal/models"
)

type CreateMessageRequest struct {
	ProjectID  string `json:"project_id" validate:"required,uuid"`
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
	Content    string `json:"content" validate:"required,max=10000"`
}

type MessageResponse struct {
	ID         string        `json:"id"`
	ProjectID  string        `json:"project_id"`
	SenderID   string        `json:"sender_id"`
	Sender     *UserResponse `json:"sender,omitempty"`
	ReceiverID string        `json:"receiver_id"`
	Receiver   *UserResponse `json:"receiver,omitempty"`
	Content    string        `json:"content"`
	Read       bool          `json:"read"`
	CreatedAt  time.Time     `json:"created_at"`
}

func NewMessageResponse(m *models.ProjectMessage) MessageResponse {
	resp := MessageResponse{
		ID:         m.ID,
		ProjectID:  m.ProjectID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
	if m.Sender != nil {
		sender := NewUserResponse(m.Sender)
		resp.Sender = &sender
	}
	if m.Receiver != nil {
		receiver := NewUserResponse(m.Receiver)
		resp.Receiver = &receiver
	}
	return resp
}

func NewMessageResponseList(messages []models.ProjectMessage) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, NewMessageResponse(&messages[i]))
	}
	return out
}
