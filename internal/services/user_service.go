package services

import (
	"errors"

	"gorm.io/gorm"

	"contala_backend/internal/repositories"
	"contala_backend/internal/services/dto"
	"contala_backend/pkg/apperrors"
)

const defaultPageSize = 20
const maxPageSize = 100

type UserService interface {
	UpdateMe(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	ListCreators(db *gorm.DB, query *dto.CreatorListQuery) (*dto.CreatorListResponse, error)
	GetCreator(db *gorm.DB, creatorID string) (*dto.CreatorResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) UpdateMe(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) ListCreators(db *gorm.DB, query *dto.CreatorListQuery) (*dto.CreatorListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	scoped := db
	if query.Specialty != "" {
		scoped = scoped.Where(
			"id IN (SELECT user_id FROM creator_profiles WHERE specialties LIKE ?)",
			"%"+query.Specialty+"%",
		)
	}
	if query.Location != "" {
		scoped = scoped.Where(
			"id IN (SELECT user_id FROM creator_profiles WHERE location LIKE ?)",
			"%"+query.Location+"%",
		)
	}

	users, total, err := s.userRepo.FindCreators(scoped, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	creators := make([]dto.CreatorResponse, 0, len(users))
	for i := range users {
		creators = append(creators, dto.NewCreatorResponse(&users[i]))
	}

	return &dto.CreatorListResponse{
		Creators: creators,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *userService) GetCreator(db *gorm.DB, creatorID string) (*dto.CreatorResponse, error) {
	user, err := s.userRepo.FindCreatorByID(db, creatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("creator not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewCreatorResponse(user)
	return &resp, nil
}
