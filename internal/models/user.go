package models

type User struct {
	BaseModel
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string `gorm:"not null" json:"-"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profile_picture"`
	IsCreator      bool   `gorm:"default:false" json:"is_creator"`
	IsStaff        bool   `gorm:"default:false" json:"is_staff"`

	// Relations
	CreatorProfile *CreatorProfile     `gorm:"foreignKey:UserID" json:"creator_profile,omitempty"`
	SocialNetworks []SocialNetworkLink `gorm:"foreignKey:UserID" json:"social_networks,omitempty"`
}

// FullName is used in notification texts.
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type SocialNetworkLink struct {
	BaseModel
	UserID   string        `gorm:"not null;index" json:"user_id"`
	Network  SocialNetwork `gorm:"type:varchar(20);not null" json:"network"`
	URL      string        `gorm:"not null" json:"url"`
	Username string        `json:"username"`
}
