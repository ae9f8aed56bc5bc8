package models

import "gorm.io/datatypes"

type NotificationType string

const (
	NotificationTypeNewProposal       NotificationType = "new_proposal"
	NotificationTypeProposalAccepted  NotificationType = "proposal_accepted"
	NotificationTypeInvitation        NotificationType = "invitation"
	NotificationTypeNewApplication    NotificationType = "new_application"
	NotificationTypeApplicationStatus NotificationType = "application_status"
	NotificationTypeNewMessage        NotificationType = "new_message"
	NotificationTypeNewReview         NotificationType = "new_review"
)

// Notification is the persisted in-app copy of a dispatched notification.
// Email delivery is handled separately and is best-effort.
type Notification struct {
	BaseModel
	UserID  string           `gorm:"not null;index" json:"user_id"`
	Type    NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title   string           `gorm:"not null" json:"title"`
	Message string           `json:"message"`
	Data    datatypes.JSON   `json:"data,omitempty"`
	IsRead  bool             `gorm:"default:false" json:"is_read"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
