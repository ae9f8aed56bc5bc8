package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contala_backend/internal/models"
	"contala_backend/internal/services/dto"
	"contala_backend/pkg/apperrors"
)

func TestApplyToOpenConvocatoria(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	convocatoria := env.createConvocatoria(t, client.ID, models.ConvocatoriaStatusOpen)

	resp, err := env.applications.Create(env.db, creatorActor, &dto.CreateApplicationRequest{
		ConvocatoriaID: convocatoria.ID,
		CoverLetter:    "count me in",
		Price:          800,
		EstimatedDays:  14,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, resp.Status)

	var count int64
	env.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", client.ID, models.NotificationTypeNewApplication).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestApplyToDraftConvocatoriaIsValidationError(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	convocatoria := env.createConvocatoria(t, client.ID, models.ConvocatoriaStatusDraft)

	_, err := env.applications.Create(env.db, creatorActor, &dto.CreateApplicationRequest{
		ConvocatoriaID: convocatoria.ID,
	})
	require.Error(t, err)

	// Closed-state rejection is invalid input, not a permission failure.
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestApplyByClientIsForbidden(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	convocatoria := env.createConvocatoria(t, client.ID, models.ConvocatoriaStatusOpen)

	_, err := env.applications.Create(env.db, clientActor, &dto.CreateApplicationRequest{
		ConvocatoriaID: convocatoria.ID,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestApplyTwiceConflicts(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	convocatoria := env.createConvocatoria(t, client.ID, models.ConvocatoriaStatusOpen)

	_, err := env.applications.Create(env.db, creatorActor, &dto.CreateApplicationRequest{ConvocatoriaID: convocatoria.ID})
	require.NoError(t, err)

	_, err = env.applications.Create(env.db, creatorActor, &dto.CreateApplicationRequest{ConvocatoriaID: convocatoria.ID})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestAcceptApplicationCreatesProjectAndProposal(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	creatorActor, creator := env.createCreator(t, "creator@test.com")

	convocatoria := env.createConvocatoria(t, client.ID, models.ConvocatoriaStatusOpen)
	endDate := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.db.Model(convocatoria).Update("end_date", endDate).Error)

	created, err := env.applications.Create(env.db, creatorActor, &dto.CreateApplicationRequest{
		ConvocatoriaID: convocatoria.ID,
		CoverLetter:    "my pitch",
		Price:          1200,
		EstimatedDays:  21,
	})
	require.NoError(t, err)

	resp, err := env.applications.Accept(env.db, clientActor, created.ID)
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusAccepted, resp.Application.Status)
	assert.Equal(t, "Proyecto de Summer campaign", resp.Project.Title)
	assert.Equal(t, models.ProjectStatusInProgress, resp.Project.Status)
	require.NotNil(t, resp.Project.Budget)
	assert.Equal(t, 1200.0, *resp.Project.Budget)
	require.NotNil(t, resp.Project.Deadline)
	assert.True(t, resp.Project.Deadline.Equal(endDate))
	assert.Equal(t, client.ID, resp.Project.ClientID)

	assert.Equal(t, models.ProposalStatusAccepted, resp.Proposal.Status)
	assert.Equal(t, creator.ID, resp.Proposal.CreatorID)
	assert.Equal(t, resp.Project.ID, resp.Proposal.ProjectID)
	assert.Equal(t, "my pitch", resp.Proposal.Message)
	assert.Equal(t, 21, resp.Proposal.EstimatedDays)
}

func TestAcceptApplicationByNonOwnerForbidden(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	otherActor, _ := env.createClient(t, "other@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	convocatoria := env.createConvocatoria(t, client.ID, models.ConvocatoriaStatusOpen)

	created, err := env.applications.Create(env.db, creatorActor, &dto.CreateApplicationRequest{ConvocatoriaID: convocatoria.ID})
	require.NoError(t, err)

	_, err = env.applications.Accept(env.db, otherActor, created.ID)
	require.Error(t, err)

	var count int64
	env.db.Model(&models.Project{}).Count(&count)
	assert.Zero(t, count)
}

// Accepting twice is not guarded: each accept spawns its own project.
func TestAcceptApplicationTwiceDuplicatesProject(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")
	convocatoria := env.createConvocatoria(t, client.ID, models.ConvocatoriaStatusOpen)

	created, err := env.applications.Create(env.db, creatorActor, &dto.CreateApplicationRequest{ConvocatoriaID: convocatoria.ID})
	require.NoError(t, err)

	_, err = env.applications.Accept(env.db, clientActor, created.ID)
	require.NoError(t, err)
	_, err = env.applications.Accept(env.db, clientActor, created.ID)
	require.NoError(t, err)

	var count int64
	env.db.Model(&models.Project{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestShortlistAndRejectApplication(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	creatorActor, creator := env.createCreator(t, "creator@test.com")
	convocatoria := env.createConvocatoria(t, client.ID, models.ConvocatoriaStatusOpen)

	created, err := env.applications.Create(env.db, creatorActor, &dto.CreateApplicationRequest{ConvocatoriaID: convocatoria.ID})
	require.NoError(t, err)

	shortlisted, err := env.applications.Shortlist(env.db, clientActor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusShortlisted, shortlisted.Status)

	rejected, err := env.applications.Reject(env.db, clientActor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, rejected.Status)

	var count int64
	env.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", creator.ID, models.NotificationTypeApplicationStatus).
		Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestConvocatoriaVisibilityForCreators(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	creatorActor, _ := env.createCreator(t, "creator@test.com")

	env.createConvocatoria(t, client.ID, models.ConvocatoriaStatusOpen)
	env.createConvocatoria(t, client.ID, models.ConvocatoriaStatusDraft)
	env.createConvocatoria(t, client.ID, models.ConvocatoriaStatusClosed)

	// Creators only see open convocatorias.
	list, err := env.convocatorias.List(env.db, creatorActor)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, models.ConvocatoriaStatusOpen, list[0].Status)
}
