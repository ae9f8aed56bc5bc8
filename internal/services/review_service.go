package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"contala_backend/internal/auth"
	"contala_backend/internal/models"
	"contala_backend/internal/policy"
	"contala_backend/internal/repositories"
	"contala_backend/internal/services/dto"
	"contala_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(db *gorm.DB, actor auth.Actor, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Get(db *gorm.DB, reviewID string) (*dto.ReviewResponse, error)
	List(db *gorm.DB, actor auth.Actor) ([]dto.ReviewResponse, error)
	ListByCreator(db *gorm.DB, creatorID string) ([]dto.ReviewResponse, error)

	// MyPendingReviews lists the caller's completed projects that still
	// lack a review from them.
	MyPendingReviews(db *gorm.DB, actor auth.Actor) ([]dto.ProjectResponse, error)
}

type reviewService struct {
	reviewRepo    repositories.ReviewRepository
	projectRepo   repositories.ProjectRepository
	profileRepo   repositories.ProfileRepository
	notifications NotificationService
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	projectRepo repositories.ProjectRepository,
	profileRepo repositories.ProfileRepository,
	notifications NotificationService,
) ReviewService {
	return &reviewService{
		reviewRepo:    reviewRepo,
		projectRepo:   projectRepo,
		profileRepo:   profileRepo,
		notifications: notifications,
	}
}

// Create stores a review and refreshes the creator's rating aggregates
// in the same transaction.
func (s *reviewService) Create(db *gorm.DB, actor auth.Actor, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if actor.IsCreator() && !actor.IsStaff() {
		return nil, apperrors.ErrOnlyClientsCanReview
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidReviewRating
	}

	project, err := s.projectRepo.FindByID(db, req.ProjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !policy.CanMutate(actor, project.ClientID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	review := &models.ProjectReview{
		ProjectID:      project.ID,
		ClientID:       project.ClientID,
		CreatorID:      req.CreatorID,
		Rating:         req.Rating,
		Comment:        req.Comment,
		Recommendation: req.Recommendation,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Create(tx, review); err != nil {
			return err
		}
		return s.profileRepo.RefreshRatingAggregates(tx, req.CreatorID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrReviewAlreadyExists) {
			return nil, apperrors.NewConflictError("review", "this project is already reviewed")
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Dispatch(db, req.CreatorID, models.NotificationTypeNewReview,
		"New review received",
		fmt.Sprintf("You received a %d-star review for %q", req.Rating, project.Title),
		map[string]any{"project_id": project.ID, "review_id": review.ID},
	)

	review.Project = project
	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

// Get returns a single review. Reviews are public content (they back the
// creators directory), so no visibility scope applies.
func (s *reviewService) Get(db *gorm.DB, reviewID string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) List(db *gorm.DB, actor auth.Actor) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.List(db, policy.ReviewScope(actor))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReviewResponseList(reviews), nil
}

func (s *reviewService) ListByCreator(db *gorm.DB, creatorID string) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.ListByCreator(db, creatorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReviewResponseList(reviews), nil
}

func (s *reviewService) MyPendingReviews(db *gorm.DB, actor auth.Actor) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindCompletedUnreviewed(db, actor.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProjectResponseList(projects), nil
}
