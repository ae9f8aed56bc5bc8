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

type ApplicationService interface {
	Create(db *gorm.DB, actor auth.Actor, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	Get(db *gorm.DB, actor auth.Actor, applicationID string) (*dto.ApplicationResponse, error)
	List(db *gorm.DB, actor auth.Actor) ([]dto.ApplicationResponse, error)
	Shortlist(db *gorm.DB, actor auth.Actor, applicationID string) (*dto.ApplicationResponse, error)
	Accept(db *gorm.DB, actor auth.Actor, applicationID string) (*dto.AcceptApplicationResponse, error)
	Reject(db *gorm.DB, actor auth.Actor, applicationID string) (*dto.ApplicationResponse, error)
}

type applicationService struct {
	applicationRepo  repositories.ApplicationRepository
	convocatoriaRepo repositories.ConvocatoriaRepository
	projectRepo      repositories.ProjectRepository
	userRepo         repositories.UserRepository
	notifications    NotificationService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	convocatoriaRepo repositories.ConvocatoriaRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) ApplicationService {
	return &applicationService{
		applicationRepo:  applicationRepo,
		convocatoriaRepo: convocatoriaRepo,
		projectRepo:      projectRepo,
		userRepo:         userRepo,
		notifications:    notifications,
	}
}

// Create submits an application. A convocatoria that is not open
// rejects applications as invalid input, not as a permission failure.
func (s *applicationService) Create(db *gorm.DB, actor auth.Actor, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if !actor.IsCreator() && !actor.IsStaff() {
		return nil, apperrors.ErrOnlyCreatorsCanApply
	}

	convocatoria, err := s.convocatoriaRepo.FindByID(db, req.ConvocatoriaID)
	if err != nil {
		if errors.Is(err, repositories.ErrConvocatoriaNotFound) {
			return nil, apperrors.NewNotFoundError("convocatoria not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if convocatoria.Status != models.ConvocatoriaStatusOpen {
		return nil, apperrors.ErrConvocatoriaNotOpen
	}

	application := &models.ConvocatoriaApplication{
		ConvocatoriaID: convocatoria.ID,
		CreatorID:      actor.ID,
		CoverLetter:    req.CoverLetter,
		Price:          req.Price,
		EstimatedDays:  req.EstimatedDays,
		Status:         models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(db, application); err != nil {
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.NewConflictError("application", "you already applied to this convocatoria")
		}
		return nil, apperrors.InternalError(err)
	}

	creatorName := actor.ID
	if creator, err := s.userRepo.FindByID(db, actor.ID); err == nil {
		creatorName = creator.FullName()
		application.Creator = creator
	}

	s.notifications.Dispatch(db, convocatoria.ClientID, models.NotificationTypeNewApplication,
		"New application received",
		fmt.Sprintf("%s applied to %q", creatorName, convocatoria.Title),
		map[string]any{"convocatoria_id": convocatoria.ID, "application_id": application.ID},
	)

	application.Convocatoria = convocatoria
	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

func (s *applicationService) Get(db *gorm.DB, actor auth.Actor, applicationID string) (*dto.ApplicationResponse, error) {
	application, err := s.findVisible(db, actor, applicationID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

func (s *applicationService) List(db *gorm.DB, actor auth.Actor) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.List(db, policy.ApplicationScope(actor))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(applications), nil
}

func (s *applicationService) Shortlist(db *gorm.DB, actor auth.Actor, applicationID string) (*dto.ApplicationResponse, error) {
	return s.decide(db, actor, applicationID, models.ApplicationStatusShortlisted)
}

// Accept converts the application into a working engagement: a new
// in_progress project owned by the convocatoria's client, plus an
// accepted proposal binding the applicant to it, all atomically.
func (s *applicationService) Accept(db *gorm.DB, actor auth.Actor, applicationID string) (*dto.AcceptApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	convocatoria := application.Convocatoria
	if convocatoria == nil {
		return nil, apperrors.InternalError(errors.New("application has no convocatoria"))
	}
	if !policy.CanMutate(actor, convocatoria.ClientID) {
		return nil, apperrors.ErrOnlyConvocatoriaOwnerCanDecide
	}

	budget := application.Price
	project := &models.Project{
		Title:       "Proyecto de " + convocatoria.Title,
		Description: convocatoria.Description,
		ClientID:    convocatoria.ClientID,
		Status:      models.ProjectStatusInProgress,
		Budget:      &budget,
		Deadline:    convocatoria.EndDate,
	}
	proposal := &models.ProjectProposal{
		CreatorID:     application.CreatorID,
		Message:       application.CoverLetter,
		Price:         application.Price,
		EstimatedDays: application.EstimatedDays,
		Status:        models.ProposalStatusAccepted,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.UpdateStatus(tx, application.ID, models.ApplicationStatusAccepted); err != nil {
			return err
		}
		if err := s.projectRepo.Create(tx, project); err != nil {
			return err
		}
		proposal.ProjectID = project.ID
		return tx.Create(proposal).Error
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Status = models.ApplicationStatusAccepted

	s.notifications.Dispatch(db, application.CreatorID, models.NotificationTypeApplicationStatus,
		"Application accepted",
		fmt.Sprintf("Your application to %q was accepted", convocatoria.Title),
		map[string]any{"convocatoria_id": convocatoria.ID, "project_id": project.ID},
	)

	return &dto.AcceptApplicationResponse{
		Application: dto.NewApplicationResponse(application),
		Project:     dto.NewProjectResponse(project),
		Proposal:    dto.NewProposalResponse(proposal),
	}, nil
}

func (s *applicationService) Reject(db *gorm.DB, actor auth.Actor, applicationID string) (*dto.ApplicationResponse, error) {
	return s.decide(db, actor, applicationID, models.ApplicationStatusRejected)
}

func (s *applicationService) decide(db *gorm.DB, actor auth.Actor, applicationID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if application.Convocatoria == nil || !policy.CanMutate(actor, application.Convocatoria.ClientID) {
		return nil, apperrors.ErrOnlyConvocatoriaOwnerCanDecide
	}

	if err := s.applicationRepo.UpdateStatus(db, application.ID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	application.Status = status

	s.notifications.Dispatch(db, application.CreatorID, models.NotificationTypeApplicationStatus,
		"Application update",
		fmt.Sprintf("Your application to %q is now %s", application.Convocatoria.Title, status),
		map[string]any{"convocatoria_id": application.ConvocatoriaID, "application_id": application.ID},
	)

	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

func (s *applicationService) findVisible(db *gorm.DB, actor auth.Actor, applicationID string) (*models.ConvocatoriaApplication, error) {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	switch actor.Role {
	case auth.RoleStaff:
	case auth.RoleCreator:
		if application.CreatorID != actor.ID {
			return nil, apperrors.NewNotFoundError("application not found")
		}
	default:
		if application.Convocatoria == nil || application.Convocatoria.ClientID != actor.ID {
			return nil, apperrors.NewNotFoundError("application not found")
		}
	}
	return application, nil
}
