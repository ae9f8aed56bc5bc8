package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contala_backend/internal/models"
	"contala_backend/internal/services/dto"
	"contala_backend/pkg/apperrors"
)

func TestCreateReviewRefreshesAggregates(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	_, creator := env.createCreator(t, "creator@test.com")

	first := env.createProject(t, client.ID, true, models.ProjectStatusCompleted, nil)
	second := env.createProject(t, client.ID, true, models.ProjectStatusCompleted, nil)

	_, err := env.reviews.Create(env.db, clientActor, &dto.CreateReviewRequest{
		ProjectID: first.ID,
		CreatorID: creator.ID,
		Rating:    5,
		Comment:   "great work",
	})
	require.NoError(t, err)

	_, err = env.reviews.Create(env.db, clientActor, &dto.CreateReviewRequest{
		ProjectID: second.ID,
		CreatorID: creator.ID,
		Rating:    2,
	})
	require.NoError(t, err)

	var profile models.CreatorProfile
	require.NoError(t, env.db.Where("user_id = ?", creator.ID).First(&profile).Error)
	assert.Equal(t, 3.5, profile.AverageRating)
	assert.Equal(t, 2, profile.ReviewCount)

	var count int64
	env.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", creator.ID, models.NotificationTypeNewReview).
		Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestCreateReviewByCreatorForbidden(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	creatorActor, creator := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusCompleted, nil)

	_, err := env.reviews.Create(env.db, creatorActor, &dto.CreateReviewRequest{
		ProjectID: project.ID,
		CreatorID: creator.ID,
		Rating:    5,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestCreateReviewInvalidRating(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	_, creator := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusCompleted, nil)

	for _, rating := range []int{0, 6} {
		_, err := env.reviews.Create(env.db, clientActor, &dto.CreateReviewRequest{
			ProjectID: project.ID,
			CreatorID: creator.ID,
			Rating:    rating,
		})
		require.Error(t, err)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	}
}

func TestCreateReviewOnForeignProjectForbidden(t *testing.T) {
	env := newTestEnv(t)
	_, client := env.createClient(t, "client@test.com")
	otherActor, _ := env.createClient(t, "other@test.com")
	_, creator := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusCompleted, nil)

	_, err := env.reviews.Create(env.db, otherActor, &dto.CreateReviewRequest{
		ProjectID: project.ID,
		CreatorID: creator.ID,
		Rating:    4,
	})
	require.Error(t, err)

	var count int64
	env.db.Model(&models.ProjectReview{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateReviewTwiceConflicts(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	_, creator := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusCompleted, nil)

	req := &dto.CreateReviewRequest{ProjectID: project.ID, CreatorID: creator.ID, Rating: 5}
	_, err := env.reviews.Create(env.db, clientActor, req)
	require.NoError(t, err)

	_, err = env.reviews.Create(env.db, clientActor, req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestMyPendingReviews(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	_, creator := env.createCreator(t, "creator@test.com")

	reviewed := env.createProject(t, client.ID, true, models.ProjectStatusCompleted, nil)
	pending := env.createProject(t, client.ID, true, models.ProjectStatusCompleted, nil)
	env.createProject(t, client.ID, true, models.ProjectStatusInProgress, nil)

	_, err := env.reviews.Create(env.db, clientActor, &dto.CreateReviewRequest{
		ProjectID: reviewed.ID,
		CreatorID: creator.ID,
		Rating:    5,
	})
	require.NoError(t, err)

	projects, err := env.reviews.MyPendingReviews(env.db, clientActor)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, pending.ID, projects[0].ID)
}

func TestListReviewsByCreatorIsPublic(t *testing.T) {
	env := newTestEnv(t)
	clientActor, client := env.createClient(t, "client@test.com")
	_, creator := env.createCreator(t, "creator@test.com")
	project := env.createProject(t, client.ID, true, models.ProjectStatusCompleted, nil)

	_, err := env.reviews.Create(env.db, clientActor, &dto.CreateReviewRequest{
		ProjectID:      project.ID,
		CreatorID:      creator.ID,
		Rating:         4,
		Recommendation: "would hire again",
	})
	require.NoError(t, err)

	reviews, err := env.reviews.ListByCreator(env.db, creator.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
	assert.Equal(t, "would hire again", reviews[0].Recommendation)
}
