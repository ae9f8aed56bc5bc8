package services

import (
	"errors"

	"gorm.io/gorm"

	"contala_backend/internal/auth"
	"contala_backend/internal/models"
	"contala_backend/internal/policy"
	"contala_backend/internal/repositories"
	"contala_backend/internal/services/dto"
	"contala_backend/pkg/apperrors"
)

type ConvocatoriaService interface {
	Create(db *gorm.DB, actor auth.Actor, req *dto.CreateConvocatoriaRequest) (*dto.ConvocatoriaResponse, error)
	Get(db *gorm.DB, actor auth.Actor, convocatoriaID string) (*dto.ConvocatoriaResponse, error)
	List(db *gorm.DB, actor auth.Actor) ([]dto.ConvocatoriaResponse, error)
	Update(db *gorm.DB, actor auth.Actor, convocatoriaID string, req *dto.UpdateConvocatoriaRequest) (*dto.ConvocatoriaResponse, error)
	ListApplications(db *gorm.DB, actor auth.Actor, convocatoriaID string) ([]dto.ApplicationResponse, error)
}

type convocatoriaService struct {
	convocatoriaRepo repositories.ConvocatoriaRepository
	applicationRepo  repositories.ApplicationRepository
}

func NewConvocatoriaService(
	convocatoriaRepo repositories.ConvocatoriaRepository,
	applicationRepo repositories.ApplicationRepository,
) ConvocatoriaService {
	return &convocatoriaService{
		convocatoriaRepo: convocatoriaRepo,
		applicationRepo:  applicationRepo,
	}
}

func (s *convocatoriaService) Create(db *gorm.DB, actor auth.Actor, req *dto.CreateConvocatoriaRequest) (*dto.ConvocatoriaResponse, error) {
	convocatoria := &models.Convocatoria{
		Title:       req.Title,
		Description: req.Description,
		ClientID:    actor.ID,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		Deadline:    req.Deadline,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      models.ConvocatoriaStatusDraft,
	}
	if req.Status != nil {
		convocatoria.Status = models.ConvocatoriaStatus(*req.Status)
	}

	if err := s.convocatoriaRepo.Create(db, convocatoria); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewConvocatoriaResponse(convocatoria)
	return &resp, nil
}

func (s *convocatoriaService) Get(db *gorm.DB, actor auth.Actor, convocatoriaID string) (*dto.ConvocatoriaResponse, error) {
	convocatoria, err := s.convocatoriaRepo.FindByIDScoped(db, policy.ConvocatoriaScope(actor), convocatoriaID)
	if err != nil {
		if errors.Is(err, repositories.ErrConvocatoriaNotFound) {
			return nil, apperrors.NewNotFoundError("convocatoria not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewConvocatoriaResponse(convocatoria)
	return &resp, nil
}

func (s *convocatoriaService) List(db *gorm.DB, actor auth.Actor) ([]dto.ConvocatoriaResponse, error) {
	convocatorias, err := s.convocatoriaRepo.List(db, policy.ConvocatoriaScope(actor))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewConvocatoriaResponseList(convocatorias), nil
}

func (s *convocatoriaService) Update(db *gorm.DB, actor auth.Actor, convocatoriaID string, req *dto.UpdateConvocatoriaRequest) (*dto.ConvocatoriaResponse, error) {
	convocatoria, err := s.convocatoriaRepo.FindByID(db, convocatoriaID)
	if err != nil {
		if errors.Is(err, repositories.ErrConvocatoriaNotFound) {
			return nil, apperrors.NewNotFoundError("convocatoria not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !policy.CanMutate(actor, convocatoria.ClientID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Title != nil {
		convocatoria.Title = *req.Title
	}
	if req.Description != nil {
		convocatoria.Description = *req.Description
	}
	if req.BudgetMin != nil {
		convocatoria.BudgetMin = req.BudgetMin
	}
	if req.BudgetMax != nil {
		convocatoria.BudgetMax = req.BudgetMax
	}
	if req.Deadline != nil {
		convocatoria.Deadline = req.Deadline
	}
	if req.StartDate != nil {
		convocatoria.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		convocatoria.EndDate = req.EndDate
	}
	if req.Status != nil {
		convocatoria.Status = models.ConvocatoriaStatus(*req.Status)
	}

	if err := s.convocatoriaRepo.Update(db, convocatoria); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewConvocatoriaResponse(convocatoria)
	return &resp, nil
}

func (s *convocatoriaService) ListApplications(db *gorm.DB, actor auth.Actor, convocatoriaID string) ([]dto.ApplicationResponse, error) {
	if _, err := s.convocatoriaRepo.FindByIDScoped(db, policy.ConvocatoriaScope(actor), convocatoriaID); err != nil {
		if errors.Is(err, repositories.ErrConvocatoriaNotFound) {
			return nil, apperrors.NewNotFoundError("convocatoria not found")
		}
		return nil, apperrors.InternalError(err)
	}

	applications, err := s.applicationRepo.ListByConvocatoria(db, policy.ApplicationScope(actor), convocatoriaID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(applications), nil
}
