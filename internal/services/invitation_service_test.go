package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contala_backend/internal/models"
	"contala_backend/internal/services/dto"
	"contala_backend/pkg/apperrors"
)

func TestCreateInvitationByNonOwnerForbidden(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	otherActor, _ := env.createClient(t, "other@test.com")
	_, creator := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, false, models.ProjectStatusOpen, nil)

	_, err := env.invitations.Create(env.db, otherActor, &dto.CreateInvitationRequest{
		ProjectID: project.ID,
		CreatorID: creator.ID,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestCreateInvitationTwiceConflicts(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	_, creator := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, false, models.ProjectStatusOpen, nil)

	_, err := env.invitations.Create(env.db, clientActor, &dto.CreateInvitationRequest{
		ProjectID: project.ID,
		CreatorID: creator.ID,
	})
	require.NoError(t, err)

	_, err = env.invitations.Create(env.db, clientActor, &dto.CreateInvitationRequest{
		ProjectID: project.ID,
		CreatorID: creator.ID,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestAcceptInvitationMaterializesProposal(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	creatorActor, creator := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, false, models.ProjectStatusOpen, floatPtr(2500))

	created, err := env.invitations.Create(env.db, clientActor, &dto.CreateInvitationRequest{
		ProjectID: project.ID,
		CreatorID: creator.ID,
	})
	require.NoError(t, err)

	resp, err := env.invitations.Accept(env.db, creatorActor, created.ID)
	require.NoError(t, err)

	assert.Equal(t, models.InvitationStatusAccepted, resp.Invitation.Status)
	assert.Equal(t, models.ProposalStatusAccepted, resp.Proposal.Status)
	assert.Equal(t, 2500.0, resp.Proposal.Price)
	assert.Equal(t, 30, resp.Proposal.EstimatedDays)
	assert.Equal(t, creator.ID, resp.Proposal.CreatorID)

	var reloaded models.Project
	require.NoError(t, env.db.First(&reloaded, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusInProgress, reloaded.Status)
}

func TestAcceptInvitationWithoutBudgetDefaultsPriceZero(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	creatorActor, creator := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, false, models.ProjectStatusOpen, nil)

	created, err := env.invitations.Create(env.db, clientActor, &dto.CreateInvitationRequest{
		ProjectID: project.ID,
		CreatorID: creator.ID,
	})
	require.NoError(t, err)

	resp, err := env.invitations.Accept(env.db, creatorActor, created.ID)
	require.NoError(t, err)
	assert.Zero(t, resp.Proposal.Price)
}

func TestAcceptInvitationUpgradesExistingProposal(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	creatorActor, creator := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusOpen, nil)

	existing, err := env.proposals.Create(env.db, creatorActor, &dto.CreateProposalRequest{
		ProjectID:     project.ID,
		Message:       "original terms",
		Price:         900,
		EstimatedDays: 5,
	})
	require.NoError(t, err)

	created, err := env.invitations.Create(env.db, clientActor, &dto.CreateInvitationRequest{
		ProjectID: project.ID,
		CreatorID: creator.ID,
	})
	require.NoError(t, err)

	resp, err := env.invitations.Accept(env.db, creatorActor, created.ID)
	require.NoError(t, err)

	// Same proposal row, upgraded, terms preserved.
	assert.Equal(t, existing.ID, resp.Proposal.ID)
	assert.Equal(t, models.ProposalStatusAccepted, resp.Proposal.Status)
	assert.Equal(t, 900.0, resp.Proposal.Price)

	var count int64
	env.db.Model(&models.ProjectProposal{}).Where("project_id = ?", project.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAcceptInvitationByWrongCreatorForbidden(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	_, creator := env.createCreator(t, "creator@test.com")
	otherActor, _ := env.createCreator(t, "other@test.com")
	project := env.createProject(t, client.ID, false, models.ProjectStatusOpen, nil)

	created, err := env.invitations.Create(env.db, clientActor, &dto.CreateInvitationRequest{
		ProjectID: project.ID,
		CreatorID: creator.ID,
	})
	require.NoError(t, err)

	_, err = env.invitations.Accept(env.db, otherActor, created.ID)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	var invitation models.ProjectInvitation
	require.NoError(t, env.db.First(&invitation, "id = ?", created.ID).Error)
	assert.Equal(t, models.InvitationStatusPending, invitation.Status)
}

func TestRejectInvitation(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	creatorActor, creator := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, false, models.ProjectStatusOpen, nil)

	created, err := env.invitations.Create(env.db, clientActor, &dto.CreateInvitationRequest{
		ProjectID: project.ID,
		CreatorID: creator.ID,
	})
	require.NoError(t, err)

	resp, err := env.invitations.Reject(env.db, creatorActor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusRejected, resp.Status)

	// Rejecting does not touch the project or create proposals.
	var reloaded models.Project
	require.NoError(t, env.db.First(&reloaded, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusOpen, reloaded.Status)

	var count int64
	env.db.Model(&models.ProjectProposal{}).Count(&count)
	assert.Zero(t, count)
}
