package models

// One review per (project, client, creator).
type ProjectReview struct {
	BaseModel
	ProjectID      string `gorm:"not null;uniqueIndex:idx_review_project_client_creator" json:"project_id"`
	ClientID       string `gorm:"not null;uniqueIndex:idx_review_project_client_creator" json:"client_id"`
	CreatorID      string `gorm:"not null;uniqueIndex:idx_review_project_client_creator" json:"creator_id"`
	Rating         int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment        string `json:"comment"`
	Recommendation string `json:"recommendation"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Client  *User    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Creator *User    `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}
