package models

import "time"

// Convocatoria is a public open call inviting any creator to apply,
// as opposed to a direct single-creator invitation.
type Convocatoria struct {
	BaseModel
	Title       string             `gorm:"not null" json:"title"`
	Description string             `json:"description"`
	ClientID    string             `gorm:"not null;index" json:"client_id"`
	BudgetMin   *float64           `json:"budget_min"`
	BudgetMax   *float64           `json:"budget_max"`
	Deadline    *time.Time         `json:"deadline"` // last day to apply
	StartDate   *time.Time         `json:"start_date"`
	EndDate     *time.Time         `json:"end_date"`
	Status      ConvocatoriaStatus `gorm:"type:varchar(10);default:'draft'" json:"status"`

	Client       *User                     `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Applications []ConvocatoriaApplication `gorm:"foreignKey:ConvocatoriaID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

// One application per (convocatoria, creator).
type ConvocatoriaApplication struct {
	BaseModel
	ConvocatoriaID string            `gorm:"not null;uniqueIndex:idx_application_convocatoria_creator" json:"convocatoria_id"`
	CreatorID      string            `gorm:"not null;uniqueIndex:idx_application_convocatoria_creator" json:"creator_id"`
	CoverLetter    string            `json:"cover_letter"`
	Price          float64           `json:"price"`
	EstimatedDays  int               `json:"estimated_days"`
	Status         ApplicationStatus `gorm:"type:varchar(15);default:'pending'" json:"status"`

	Convocatoria *Convocatoria `gorm:"foreignKey:ConvocatoriaID" json:"convocatoria,omitempty"`
	Creator      *User         `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}
