package models

import "time"

type Project struct {
	BaseModel
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description"`
	ClientID    string        `gorm:"not null;index" json:"client_id"`
	Status      ProjectStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`
	Budget      *float64      `json:"budget"`
	IsPublic    bool          `gorm:"default:false" json:"is_public"`
	Deadline    *time.Time    `json:"deadline"`

	// Relations
	Client      *User               `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Proposals   []ProjectProposal   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"proposals,omitempty"`
	Invitations []ProjectInvitation `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"invitations,omitempty"`
	Messages    []ProjectMessage    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
	Reviews     []ProjectReview     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// One proposal per (project, creator).
type ProjectProposal struct {
	BaseModel
	ProjectID     string         `gorm:"not null;uniqueIndex:idx_proposal_project_creator" json:"project_id"`
	CreatorID     string         `gorm:"not null;uniqueIndex:idx_proposal_project_creator" json:"creator_id"`
	Message       string         `json:"message"`
	Price         float64        `json:"price"`
	EstimatedDays int            `json:"estimated_days"`
	Status        ProposalStatus `gorm:"type:varchar(10);default:'pending'" json:"status"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Creator *User    `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}

// One invitation per (project, creator).
type ProjectInvitation struct {
	BaseModel
	ProjectID string           `gorm:"not null;uniqueIndex:idx_invitation_project_creator" json:"project_id"`
	CreatorID string           `gorm:"not null;uniqueIndex:idx_invitation_project_creator" json:"creator_id"`
	Message   string           `json:"message"`
	Status    InvitationStatus `gorm:"type:varchar(10);default:'pending'" json:"status"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Creator *User    `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}

type ProjectMessage struct {
	BaseModel
	ProjectID  string `gorm:"not null;index" json:"project_id"`
	SenderID   string `gorm:"not null;index" json:"sender_id"`
	ReceiverID string `gorm:"not null;index" json:"receiver_id"`
	Content    string `gorm:"not null" json:"content"`
	Read       bool   `gorm:"default:false" json:"read"`

	Project  *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Sender   *User    `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver *User    `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
