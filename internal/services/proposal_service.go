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

type ProposalService interface {
	Create(db *gorm.DB, actor auth.Actor, req *dto.CreateProposalRequest) (*dto.ProposalResponse, error)
	Get(db *gorm.DB, actor auth.Actor, proposalID string) (*dto.ProposalResponse, error)
	List(db *gorm.DB, actor auth.Actor) ([]dto.ProposalResponse, error)
	Accept(db *gorm.DB, actor auth.Actor, proposalID string) (*dto.ProposalResponse, error)
	Reject(db *gorm.DB, actor auth.Actor, proposalID string) (*dto.ProposalResponse, error)
}

type proposalService struct {
	proposalRepo   repositories.ProposalRepository
	projectRepo    repositories.ProjectRepository
	invitationRepo repositories.InvitationRepository
	userRepo       repositories.UserRepository
	notifications  NotificationService
}

func NewProposalService(
	proposalRepo repositories.ProposalRepository,
	projectRepo repositories.ProjectRepository,
	invitationRepo repositories.InvitationRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) ProposalService {
	return &proposalService{
		proposalRepo:   proposalRepo,
		projectRepo:    projectRepo,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		notifications:  notifications,
	}
}

// Create submits a proposal. Non-public projects only accept proposals
// from creators holding an invitation, in any status.
func (s *proposalService) Create(db *gorm.DB, actor auth.Actor, req *dto.CreateProposalRequest) (*dto.ProposalResponse, error) {
	if !actor.IsCreator() && !actor.IsStaff() {
		return nil, apperrors.ErrOnlyCreatorsCanPropose
	}

	project, err := s.projectRepo.FindByID(db, req.ProjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !project.IsPublic {
		invited, err := s.invitationRepo.HasInvitation(db, project.ID, actor.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !invited {
			return nil, apperrors.ErrProjectNotOpenToCreator
		}
	}

	proposal := &models.ProjectProposal{
		ProjectID:     project.ID,
		CreatorID:     actor.ID,
		Message:       req.Message,
		Price:         req.Price,
		EstimatedDays: req.EstimatedDays,
		Status:        models.ProposalStatusPending,
	}
	if err := s.proposalRepo.Create(db, proposal); err != nil {
		if errors.Is(err, repositories.ErrProposalAlreadyExists) {
			return nil, apperrors.NewConflictError("proposal", "you already sent a proposal for this project")
		}
		return nil, apperrors.InternalError(err)
	}

	creatorName := actor.ID
	if creator, err := s.userRepo.FindByID(db, actor.ID); err == nil {
		creatorName = creator.FullName()
		proposal.Creator = creator
	}

	s.notifications.Dispatch(db, project.ClientID, models.NotificationTypeNewProposal,
		"New proposal received",
		fmt.Sprintf("%s sent a proposal for %q", creatorName, project.Title),
		map[string]any{"project_id": project.ID, "proposal_id": proposal.ID},
	)

	proposal.Project = project
	resp := dto.NewProposalResponse(proposal)
	return &resp, nil
}

func (s *proposalService) Get(db *gorm.DB, actor auth.Actor, proposalID string) (*dto.ProposalResponse, error) {
	proposal, err := s.findVisible(db, actor, proposalID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewProposalResponse(proposal)
	return &resp, nil
}

func (s *proposalService) List(db *gorm.DB, actor auth.Actor) ([]dto.ProposalResponse, error) {
	proposals, err := s.proposalRepo.List(db, policy.ProposalScope(actor))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProposalResponseList(proposals), nil
}

// Accept marks the proposal accepted and moves the project to
// in_progress, atomically. Only the project owner decides.
func (s *proposalService) Accept(db *gorm.DB, actor auth.Actor, proposalID string) (*dto.ProposalResponse, error) {
	proposal, err := s.proposalRepo.FindByID(db, proposalID)
	if err != nil {
		if errors.Is(err, repositories.ErrProposalNotFound) {
			return nil, apperrors.NewNotFoundError("proposal not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if proposal.Project == nil || !policy.CanMutate(actor, proposal.Project.ClientID) {
		return nil, apperrors.ErrOnlyClientCanDecide
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.proposalRepo.UpdateStatus(tx, proposal.ID, models.ProposalStatusAccepted); err != nil {
			return err
		}
		return s.projectRepo.UpdateStatus(tx, proposal.ProjectID, models.ProjectStatusInProgress)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	proposal.Status = models.ProposalStatusAccepted
	proposal.Project.Status = models.ProjectStatusInProgress

	s.notifications.Dispatch(db, proposal.CreatorID, models.NotificationTypeProposalAccepted,
		"Proposal accepted",
		fmt.Sprintf("Your proposal for %q was accepted", proposal.Project.Title),
		map[string]any{"project_id": proposal.ProjectID, "proposal_id": proposal.ID},
	)

	resp := dto.NewProposalResponse(proposal)
	return &resp, nil
}

func (s *proposalService) Reject(db *gorm.DB, actor auth.Actor, proposalID string) (*dto.ProposalResponse, error) {
	proposal, err := s.proposalRepo.FindByID(db, proposalID)
	if err != nil {
		if errors.Is(err, repositories.ErrProposalNotFound) {
			return nil, apperrors.NewNotFoundError("proposal not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if proposal.Project == nil || !policy.CanMutate(actor, proposal.Project.ClientID) {
		return nil, apperrors.ErrOnlyClientCanDecide
	}

	if err := s.proposalRepo.UpdateStatus(db, proposal.ID, models.ProposalStatusRejected); err != nil {
		return nil, apperrors.InternalError(err)
	}
	proposal.Status = models.ProposalStatusRejected

	resp := dto.NewProposalResponse(proposal)
	return &resp, nil
}

// findVisible loads a proposal and hides its existence from actors
// outside the visibility scope.
func (s *proposalService) findVisible(db *gorm.DB, actor auth.Actor, proposalID string) (*models.ProjectProposal, error) {
	proposal, err := s.proposalRepo.FindByID(db, proposalID)
	if err != nil {
		if errors.Is(err, repositories.ErrProposalNotFound) {
			return nil, apperrors.NewNotFoundError("proposal not found")
		}
		return nil, apperrors.InternalError(err)
	}

	switch actor.Role {
	case auth.RoleStaff:
	case auth.RoleCreator:
		if proposal.CreatorID != actor.ID {
			return nil, apperrors.NewNotFoundError("proposal not found")
		}
	default:
		if proposal.Project == nil || proposal.Project.ClientID != actor.ID {
			return nil, apperrors.NewNotFoundError("proposal not found")
		}
	}
	return proposal, nil
}
