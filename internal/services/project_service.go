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

type ProjectService interface {
	Create(db *gorm.DB, actor auth.Actor, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	Get(db *gorm.DB, actor auth.Actor, projectID string) (*dto.ProjectResponse, error)
	List(db *gorm.DB, actor auth.Actor) ([]dto.ProjectResponse, error)
	Update(db *gorm.DB, actor auth.Actor, projectID string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)

	ListProposals(db *gorm.DB, actor auth.Actor, projectID string) ([]dto.ProposalResponse, error)
	ListMessages(db *gorm.DB, actor auth.Actor, projectID string) ([]dto.MessageResponse, error)
}

type projectService struct {
	projectRepo  repositories.ProjectRepository
	proposalRepo repositories.ProposalRepository
	messageRepo  repositories.MessageRepository
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	proposalRepo repositories.ProposalRepository,
	messageRepo repositories.MessageRepository,
) ProjectService {
	return &projectService{
		projectRepo:  projectRepo,
		proposalRepo: proposalRepo,
		messageRepo:  messageRepo,
	}
}

func (s *projectService) Create(db *gorm.DB, actor auth.Actor, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		ClientID:    actor.ID,
		Status:      models.ProjectStatusDraft,
		Budget:      req.Budget,
		IsPublic:    req.IsPublic,
		Deadline:    req.Deadline,
	}
	if req.Status != nil {
		project.Status = models.ProjectStatus(*req.Status)
	}

	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (s *projectService) Get(db *gorm.DB, actor auth.Actor, projectID string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDScoped(db, policy.ProjectScope(actor), projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (s *projectService) List(db *gorm.DB, actor auth.Actor) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.List(db, policy.ProjectScope(actor))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProjectResponseList(projects), nil
}

func (s *projectService) Update(db *gorm.DB, actor auth.Actor, projectID string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !policy.CanMutate(actor, project.ClientID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Budget != nil {
		project.Budget = req.Budget
	}
	if req.IsPublic != nil {
		project.IsPublic = *req.IsPublic
	}
	if req.Deadline != nil {
		project.Deadline = req.Deadline
	}
	if req.Status != nil {
		project.Status = models.ProjectStatus(*req.Status)
	}

	if err := s.projectRepo.Update(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (s *projectService) ListProposals(db *gorm.DB, actor auth.Actor, projectID string) ([]dto.ProposalResponse, error) {
	if _, err := s.projectRepo.FindByIDScoped(db, policy.ProjectScope(actor), projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	proposals, err := s.proposalRepo.ListByProject(db, policy.ProposalScope(actor), projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProposalResponseList(proposals), nil
}

func (s *projectService) ListMessages(db *gorm.DB, actor auth.Actor, projectID string) ([]dto.MessageResponse, error) {
	if _, err := s.projectRepo.FindByIDScoped(db, policy.ProjectScope(actor), projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	messages, err := s.messageRepo.ListByProject(db, policy.MessageScope(actor), projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewMessageResponseList(messages), nil
}
