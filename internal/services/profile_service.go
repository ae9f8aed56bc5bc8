package services

import (
	"errors"

	"gorm.io/gorm"

	"contala_backend/internal/auth"
	"contala_backend/internal/models"
	"contala_backend/internal/repositories"
	"contala_backend/internal/services/dto"
	"contala_backend/pkg/apperrors"
)

type ProfileService interface {
	GetMyProfile(db *gorm.DB, actor auth.Actor) (*dto.CreatorProfileResponse, error)
	UpdateMyProfile(db *gorm.DB, actor auth.Actor, req *dto.UpdateProfileRequest) (*dto.CreatorProfileResponse, error)

	AddPortfolioItem(db *gorm.DB, actor auth.Actor, req *dto.CreatePortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	UpdatePortfolioItem(db *gorm.DB, actor auth.Actor, itemID string, req *dto.UpdatePortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	DeletePortfolioItem(db *gorm.DB, actor auth.Actor, itemID string) error

	AddSocialLink(db *gorm.DB, actor auth.Actor, req *dto.CreateSocialLinkRequest) (*dto.SocialLinkResponse, error)
	UpdateSocialLink(db *gorm.DB, actor auth.Actor, linkID string, req *dto.UpdateSocialLinkRequest) (*dto.SocialLinkResponse, error)
	DeleteSocialLink(db *gorm.DB, actor auth.Actor, linkID string) error
}

type profileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) ownProfile(db *gorm.DB, actor auth.Actor) (*models.CreatorProfile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(db, actor.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNoCreatorProfile
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) GetMyProfile(db *gorm.DB, actor auth.Actor) (*dto.CreatorProfileResponse, error) {
	profile, err := s.ownProfile(db, actor)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCreatorProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) UpdateMyProfile(db *gorm.DB, actor auth.Actor, req *dto.UpdateProfileRequest) (*dto.CreatorProfileResponse, error) {
	profile, err := s.ownProfile(db, actor)
	if err != nil {
		return nil, err
	}

	if req.Specialties != nil {
		profile.Specialties = *req.Specialties
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}

	if err := s.profileRepo.UpdateProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewCreatorProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) AddPortfolioItem(db *gorm.DB, actor auth.Actor, req *dto.CreatePortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	profile, err := s.ownProfile(db, actor)
	if err != nil {
		return nil, err
	}

	item := &models.CreatorPortfolioItem{
		CreatorProfileID: profile.ID,
		Type:             req.Type,
		URL:              req.URL,
		Title:            req.Title,
		Description:      req.Description,
	}
	if err := s.profileRepo.CreatePortfolioItem(db, item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewPortfolioItemResponse(item)
	return &resp, nil
}

func (s *profileService) UpdatePortfolioItem(db *gorm.DB, actor auth.Actor, itemID string, req *dto.UpdatePortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	profile, err := s.ownProfile(db, actor)
	if err != nil {
		return nil, err
	}

	item, err := s.profileRepo.FindPortfolioItemByID(db, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return nil, apperrors.NewNotFoundError("portfolio item not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if item.CreatorProfileID != profile.ID && !actor.IsStaff() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.URL != nil {
		item.URL = *req.URL
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	if err := s.profileRepo.UpdatePortfolioItem(db, item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewPortfolioItemResponse(item)
	return &resp, nil
}

func (s *profileService) DeletePortfolioItem(db *gorm.DB, actor auth.Actor, itemID string) error {
	profile, err := s.ownProfile(db, actor)
	if err != nil {
		return err
	}

	item, err := s.profileRepo.FindPortfolioItemByID(db, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return apperrors.NewNotFoundError("portfolio item not found")
		}
		return apperrors.InternalError(err)
	}
	if item.CreatorProfileID != profile.ID && !actor.IsStaff() {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.profileRepo.DeletePortfolioItem(db, itemID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *profileService) AddSocialLink(db *gorm.DB, actor auth.Actor, req *dto.CreateSocialLinkRequest) (*dto.SocialLinkResponse, error) {
	link := &models.SocialNetworkLink{
		UserID:   actor.ID,
		Network:  req.Network,
		URL:      req.URL,
		Username: req.Username,
	}
	if err := s.profileRepo.CreateSocialLink(db, link); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewSocialLinkResponse(link)
	return &resp, nil
}

func (s *profileService) UpdateSocialLink(db *gorm.DB, actor auth.Actor, linkID string, req *dto.UpdateSocialLinkRequest) (*dto.SocialLinkResponse, error) {
	link, err := s.profileRepo.FindSocialLinkByID(db, linkID)
	if err != nil {
		if errors.Is(err, repositories.ErrSocialLinkNotFound) {
			return nil, apperrors.NewNotFoundError("social network link not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if link.UserID != actor.ID && !actor.IsStaff() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.URL != nil {
		link.URL = *req.URL
	}
	if req.Username != nil {
		link.Username = *req.Username
	}

	if err := s.profileRepo.UpdateSocialLink(db, link); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewSocialLinkResponse(link)
	return &resp, nil
}

func (s *profileService) DeleteSocialLink(db *gorm.DB, actor auth.Actor, linkID string) error {
	link, err := s.profileRepo.FindSocialLinkByID(db, linkID)
	if err != nil {
		if errors.Is(err, repositories.ErrSocialLinkNotFound) {
			return apperrors.NewNotFoundError("social network link not found")
		}
		return apperrors.InternalError(err)
	}
	if link.UserID != actor.ID && !actor.IsStaff() {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.profileRepo.DeleteSocialLink(db, linkID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
