package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contala_backend/internal/email"
	"contala_backend/internal/models"
	"contala_backend/internal/repositories"
)

type failingProvider struct{}

func (p *failingProvider) Send(*email.Email) error { return errors.New("smtp down") }
func (p *failingProvider) Close() error            { return nil }

func TestDispatchPersistsAndEmails(t *testing.T) {
	env := newTestEnv(t)
	_, user := env.createClient(t, "client@test.com")

	env.notifications.Dispatch(env.db, user.ID, models.NotificationTypeNewProposal,
		"New proposal", "someone proposed", map[string]any{"project_id": "p1"})

	var notification models.Notification
	require.NoError(t, env.db.Where("user_id = ?", user.ID).First(&notification).Error)
	assert.Equal(t, models.NotificationTypeNewProposal, notification.Type)
	assert.False(t, notification.IsRead)

	require.Len(t, env.email.Sent, 1)
	assert.Equal(t, []string{"client@test.com"}, env.email.Sent[0].To)
	assert.Equal(t, "New proposal", env.email.Sent[0].Subject)
}

func TestDispatchSurvivesEmailFailure(t *testing.T) {
	env := newTestEnv(t)
	_, user := env.createClient(t, "client@test.com")

	svc := NewNotificationService(
		repositories.NewNotificationRepository(),
		repositories.NewUserRepository(),
		&failingProvider{},
	)
	svc.Dispatch(env.db, user.ID, models.NotificationTypeNewMessage, "t", "m", nil)

	// The in-app notification lands even when the email sink is down.
	var count int64
	env.db.Model(&models.Notification{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestListMineCountsUnread(t *testing.T) {
	env := newTestEnv(t)
	_, user := env.createClient(t, "client@test.com")

	env.notifications.Dispatch(env.db, user.ID, models.NotificationTypeNewProposal, "a", "m", nil)
	env.notifications.Dispatch(env.db, user.ID, models.NotificationTypeNewMessage, "b", "m", nil)

	resp, err := env.notifications.ListMine(env.db, user.ID)
	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 2)
	assert.Equal(t, int64(2), resp.UnreadCount)

	require.NoError(t, env.notifications.MarkRead(env.db, user.ID, resp.Notifications[0].ID))

	unread, err := env.notifications.UnreadCount(env.db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	require.NoError(t, env.notifications.MarkAllRead(env.db, user.ID))
	unread, err = env.notifications.UnreadCount(env.db, user.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestMarkReadOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	_, owner := env.createClient(t, "owner@test.com")
	_, intruder := env.createClient(t, "intruder@test.com")

	env.notifications.Dispatch(env.db, owner.ID, models.NotificationTypeNewReview, "t", "m", nil)

	resp, err := env.notifications.ListMine(env.db, owner.ID)
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)

	err = env.notifications.MarkRead(env.db, intruder.ID, resp.Notifications[0].ID)
	require.Error(t, err)

	var notification models.Notification
	require.NoError(t, env.db.First(&notification, "id = ?", resp.Notifications[0].ID).Error)
	assert.False(t, notification.IsRead)
}
