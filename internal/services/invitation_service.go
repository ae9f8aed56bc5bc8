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

// Terms stamped on the proposal materialized by accepting an invitation.
const (
	invitationAcceptEstimatedDays = 30
	invitationAcceptMessage       = "Accepted via invitation"
)

type InvitationService interface {
	Create(db *gorm.DB, actor auth.Actor, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error)
	Get(db *gorm.DB, actor auth.Actor, invitationID string) (*dto.InvitationResponse, error)
	List(db *gorm.DB, actor auth.Actor) ([]dto.InvitationResponse, error)
	Accept(db *gorm.DB, actor auth.Actor, invitationID string) (*dto.AcceptInvitationResponse, error)
	Reject(db *gorm.DB, actor auth.Actor, invitationID string) (*dto.InvitationResponse, error)
}

type invitationService struct {
	invitationRepo repositories.InvitationRepository
	proposalRepo   repositories.ProposalRepository
	projectRepo    repositories.ProjectRepository
	userRepo       repositories.UserRepository
	notifications  NotificationService
}

func NewInvitationService(
	invitationRepo repositories.InvitationRepository,
	proposalRepo repositories.ProposalRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		proposalRepo:   proposalRepo,
		projectRepo:    projectRepo,
		userRepo:       userRepo,
		notifications:  notifications,
	}
}

func (s *invitationService) Create(db *gorm.DB, actor auth.Actor, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	project, err := s.projectRepo.FindByID(db, req.ProjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !policy.CanMutate(actor, project.ClientID) {
		return nil, apperrors.ErrOnlyProjectOwnerCanInvite
	}

	creator, err := s.userRepo.FindCreatorByID(db, req.CreatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("creator not found")
		}
		return nil, apperrors.InternalError(err)
	}

	invitation := &models.ProjectInvitation{
		ProjectID: project.ID,
		CreatorID: creator.ID,
		Message:   req.Message,
		Status:    models.InvitationStatusPending,
	}
	if err := s.invitationRepo.Create(db, invitation); err != nil {
		if errors.Is(err, repositories.ErrInvitationAlreadyExists) {
			return nil, apperrors.NewConflictError("invitation", "creator already invited to this project")
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifications.Dispatch(db, creator.ID, models.NotificationTypeInvitation,
		"Project invitation",
		fmt.Sprintf("You were invited to the project %q", project.Title),
		map[string]any{"project_id": project.ID, "invitation_id": invitation.ID},
	)

	invitation.Project = project
	invitation.Creator = creator
	resp := dto.NewInvitationResponse(invitation)
	return &resp, nil
}

func (s *invitationService) Get(db *gorm.DB, actor auth.Actor, invitationID string) (*dto.InvitationResponse, error) {
	invitation, err := s.findVisible(db, actor, invitationID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewInvitationResponse(invitation)
	return &resp, nil
}

func (s *invitationService) List(db *gorm.DB, actor auth.Actor) ([]dto.InvitationResponse, error) {
	invitations, err := s.invitationRepo.List(db, policy.InvitationScope(actor))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewInvitationResponseList(invitations), nil
}

// Accept marks the invitation accepted, materializes an accepted
// proposal on the invited creator's behalf and moves the project to
// in_progress, all atomically. If the creator already proposed, that
// proposal is upgraded in place instead of duplicated.
func (s *invitationService) Accept(db *gorm.DB, actor auth.Actor, invitationID string) (*dto.AcceptInvitationResponse, error) {
	invitation, err := s.invitationRepo.FindByID(db, invitationID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvitationNotFound) {
			return nil, apperrors.NewNotFoundError("invitation not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if invitation.CreatorID != actor.ID && !actor.IsStaff() {
		return nil, apperrors.ErrOnlyInvitedCreatorCanDecide
	}

	project := invitation.Project
	if project == nil {
		return nil, apperrors.InternalError(errors.New("invitation has no project"))
	}

	price := 0.0
	if project.Budget != nil {
		price = *project.Budget
	}

	var proposal *models.ProjectProposal
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.invitationRepo.UpdateStatus(tx, invitation.ID, models.InvitationStatusAccepted); err != nil {
			return err
		}

		existing, err := s.proposalRepo.FindByProjectAndCreator(tx, invitation.ProjectID, invitation.CreatorID)
		switch {
		case err == nil:
			existing.Status = models.ProposalStatusAccepted
			if err := s.proposalRepo.Save(tx, existing); err != nil {
				return err
			}
			proposal = existing
		case errors.Is(err, repositories.ErrProposalNotFound):
			proposal = &models.ProjectProposal{
				ProjectID:     invitation.ProjectID,
				CreatorID:     invitation.CreatorID,
				Message:       invitationAcceptMessage,
				Price:         price,
				EstimatedDays: invitationAcceptEstimatedDays,
				Status:        models.ProposalStatusAccepted,
			}
			if err := tx.Create(proposal).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return s.projectRepo.UpdateStatus(tx, invitation.ProjectID, models.ProjectStatusInProgress)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	invitation.Status = models.InvitationStatusAccepted
	project.Status = models.ProjectStatusInProgress

	creatorName := invitation.CreatorID
	if invitation.Creator != nil {
		creatorName = invitation.Creator.FullName()
	}
	s.notifications.Dispatch(db, project.ClientID, models.NotificationTypeProposalAccepted,
		"Invitation accepted",
		fmt.Sprintf("%s accepted your invitation to %q", creatorName, project.Title),
		map[string]any{"project_id": project.ID, "invitation_id": invitation.ID},
	)

	return &dto.AcceptInvitationResponse{
		Invitation: dto.NewInvitationResponse(invitation),
		Proposal:   dto.NewProposalResponse(proposal),
	}, nil
}

func (s *invitationService) Reject(db *gorm.DB, actor auth.Actor, invitationID string) (*dto.InvitationResponse, error) {
	invitation, err := s.invitationRepo.FindByID(db, invitationID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvitationNotFound) {
			return nil, apperrors.NewNotFoundError("invitation not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if invitation.CreatorID != actor.ID && !actor.IsStaff() {
		return nil, apperrors.ErrOnlyInvitedCreatorCanDecide
	}

	if err := s.invitationRepo.UpdateStatus(db, invitation.ID, models.InvitationStatusRejected); err != nil {
		return nil, apperrors.InternalError(err)
	}
	invitation.Status = models.InvitationStatusRejected

	resp := dto.NewInvitationResponse(invitation)
	return &resp, nil
}

func (s *invitationService) findVisible(db *gorm.DB, actor auth.Actor, invitationID string) (*models.ProjectInvitation, error) {
	invitation, err := s.invitationRepo.FindByID(db, invitationID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvitationNotFound) {
			return nil, apperrors.NewNotFoundError("invitation not found")
		}
		return nil, apperrors.InternalError(err)
	}

	switch actor.Role {
	case auth.RoleStaff:
	case auth.RoleCreator:
		if invitation.CreatorID != actor.ID {
			return nil, apperrors.NewNotFoundError("invitation not found")
		}
	default:
		if invitation.Project == nil || invitation.Project.ClientID != actor.ID {
			return nil, apperrors.NewNotFoundError("invitation not found")
		}
	}
	return invitation, nil
}
