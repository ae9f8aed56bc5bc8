package dto

import "contala_backend/internal/models"

type UpdateUserRequest struct {
	FirstName      *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName       *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio            *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	ProfilePicture *string `json:"profile_picture,omitempty" validate:"omitempty,url"`
}

// CreatorListQuery filters the public creators directory.
type CreatorListQuery struct {
	Specialty string `form:"specialty"`
	Location  string `form:"location"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

// CreatorResponse is the directory card: user plus profile aggregate.
type CreatorResponse struct {
	User    UserResponse            `json:"user"`
	Profile *CreatorProfileResponse `json:"profile,omitempty"`
}

func NewCreatorResponse(u *models.User) CreatorResponse {
	resp := CreatorResponse{User: NewUserResponse(u)}
	if u.CreatorProfile != nil {
		p := NewCreatorProfileResponse(u.CreatorProfile)
		resp.Profile = &p
	}
	return resp
}

type CreatorListResponse struct {
	Creators []CreatorResponse `json:"creators"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}
