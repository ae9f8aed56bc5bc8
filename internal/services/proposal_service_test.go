package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contala_backend/internal/models"
	"contala_backend/internal/services/dto"
	"contala_backend/pkg/apperrors"
)

func TestCreateProposalOnPublicProject(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusOpen, nil)

	resp, err := env.proposals.Create(env.db, creatorActor, &dto.CreateProposalRequest{
		ProjectID:     project.ID,
		Message:       "I can do this",
		Price:         1500,
		EstimatedDays: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusPending, resp.Status)
	assert.Equal(t, creatorActor.ID, resp.CreatorID)

	// The client gets an in-app notification.
	var count int64
	env.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", client.ID, models.NotificationTypeNewProposal).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateProposalOnPrivateProjectWithoutInvitation(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, false, models.ProjectStatusOpen, nil)

	_, err := env.proposals.Create(env.db, creatorActor, &dto.CreateProposalRequest{
		ProjectID: project.ID,
		Price:     1000,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	var count int64
	env.db.Model(&models.ProjectProposal{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateProposalOnPrivateProjectWithRejectedInvitation(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, false, models.ProjectStatusOpen, nil)

	// Any invitation opens the door, even a rejected one.
	require.NoError(t, env.db.Create(&models.ProjectInvitation{
		ProjectID: project.ID,
		CreatorID: creatorActor.ID,
		Status:    models.InvitationStatusRejected,
	}).Error)

	resp, err := env.proposals.Create(env.db, creatorActor, &dto.CreateProposalRequest{
		ProjectID: project.ID,
		Price:     1000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusPending, resp.Status)
}

func TestCreateProposalByClientForbidden(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusOpen, nil)

	_, err := env.proposals.Create(env.db, clientActor, &dto.CreateProposalRequest{
		ProjectID: project.ID,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestCreateProposalTwiceConflicts(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusOpen, nil)

	_, err := env.proposals.Create(env.db, creatorActor, &dto.CreateProposalRequest{ProjectID: project.ID})
	require.NoError(t, err)

	_, err = env.proposals.Create(env.db, creatorActor, &dto.CreateProposalRequest{ProjectID: project.ID})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestAcceptProposalMovesProjectInProgress(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	creatorActor, creator := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusOpen, nil)

	created, err := env.proposals.Create(env.db, creatorActor, &dto.CreateProposalRequest{ProjectID: project.ID})
	require.NoError(t, err)

	resp, err := env.proposals.Accept(env.db, clientActor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusAccepted, resp.Status)

	var reloaded models.Project
	require.NoError(t, env.db.First(&reloaded, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusInProgress, reloaded.Status)

	var count int64
	env.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", creator.ID, models.NotificationTypeProposalAccepted).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAcceptProposalByNonOwnerForbiddenAndStateUnchanged(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	otherActor, _ := env.createClient(t, "other@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusOpen, nil)

	created, err := env.proposals.Create(env.db, creatorActor, &dto.CreateProposalRequest{ProjectID: project.ID})
	require.NoError(t, err)

	_, err = env.proposals.Accept(env.db, otherActor, created.ID)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	var proposal models.ProjectProposal
	require.NoError(t, env.db.First(&proposal, "id = ?", created.ID).Error)
	assert.Equal(t, models.ProposalStatusPending, proposal.Status)

	var reloaded models.Project
	require.NoError(t, env.db.First(&reloaded, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusOpen, reloaded.Status)
}

func TestAcceptProposalByCreatorForbidden(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusOpen, nil)

	created, err := env.proposals.Create(env.db, creatorActor, &dto.CreateProposalRequest{ProjectID: project.ID})
	require.NoError(t, err)

	_, err = env.proposals.Accept(env.db, creatorActor, created.ID)
	require.Error(t, err)
}

func TestStaffCanAcceptAnyProposal(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	staffActor, _ := env.createStaff(t, "staff@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusOpen, nil)

	created, err := env.proposals.Create(env.db, creatorActor, &dto.CreateProposalRequest{ProjectID: project.ID})
	require.NoError(t, err)

	resp, err := env.proposals.Accept(env.db, staffActor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusAccepted, resp.Status)
}

func TestProposalVisibility(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	strangerActor, _ := env.createCreator(t, "stranger@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusOpen, nil)

	created, err := env.proposals.Create(env.db, creatorActor, &dto.CreateProposalRequest{ProjectID: project.ID})
	require.NoError(t, err)

	// Unrelated creators cannot even learn the proposal exists.
	_, err = env.proposals.Get(env.db, strangerActor, created.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)

	list, err := env.proposals.List(env.db, strangerActor)
	require.NoError(t, err)
	assert.Empty(t, list)

	mine, err := env.proposals.List(env.db, creatorActor)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
