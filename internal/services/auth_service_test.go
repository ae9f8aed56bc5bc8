package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contala_backend/internal/auth"
	"contala_backend/internal/models"
	"contala_backend/internal/services/dto"
	"contala_backend/pkg/apperrors"
)

func TestRegisterCreatorGetsProfile(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.Register(env.db, &dto.RegisterRequest{
		Email:     "ana@test.com",
		Password:  "s3cretpass",
		FirstName: "Ana",
		LastName:  "García",
		IsCreator: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Ana García", resp.User.FullName)
	assert.True(t, resp.User.IsCreator)

	var profile models.CreatorProfile
	require.NoError(t, env.db.Where("user_id = ?", resp.User.ID).First(&profile).Error)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegisterClientHasNoProfile(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.Register(env.db, &dto.RegisterRequest{
		Email:     "bob@test.com",
		Password:  "s3cretpass",
		FirstName: "Bob",
	})
	require.NoError(t, err)

	var count int64
	env.db.Model(&models.CreatorProfile{}).Where("user_id = ?", resp.User.ID).Count(&count)
	assert.Zero(t, count)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	env := newTestEnv(t)

	req := &dto.RegisterRequest{Email: "ana@test.com", Password: "s3cretpass", FirstName: "Ana"}
	_, err := env.auth.Register(env.db, req)
	require.NoError(t, err)

	_, err = env.auth.Register(env.db, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(env.db, &dto.RegisterRequest{
		Email:     "ana@test.com",
		Password:  "s3cretpass",
		FirstName: "Ana",
	})
	require.NoError(t, err)

	resp, err := env.auth.Login(env.db, &dto.LoginRequest{Email: "ana@test.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = env.auth.Login(env.db, &dto.LoginRequest{Email: "ana@test.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown accounts get the same error as bad passwords.
	_, err = env.auth.Login(env.db, &dto.LoginRequest{Email: "nobody@test.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)

	registered, err := env.auth.Register(env.db, &dto.RegisterRequest{
		Email:     "ana@test.com",
		Password:  "s3cretpass",
		FirstName: "Ana",
	})
	require.NoError(t, err)

	err = env.auth.ChangePassword(env.db, registered.User.ID, &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newpassword",
	})
	assert.ErrorIs(t, err, apperrors.ErrIncorrectPassword)

	err = env.auth.ChangePassword(env.db, registered.User.ID, &dto.ChangePasswordRequest{
		OldPassword: "s3cretpass",
		NewPassword: "newpassword",
	})
	require.NoError(t, err)

	_, err = env.auth.Login(env.db, &dto.LoginRequest{Email: "ana@test.com", Password: "newpassword"})
	require.NoError(t, err)
	_, err = env.auth.Login(env.db, &dto.LoginRequest{Email: "ana@test.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)

	registered, err := env.auth.Register(env.db, &dto.RegisterRequest{
		Email:     "ana@test.com",
		Password:  "s3cretpass",
		FirstName: "Ana",
	})
	require.NoError(t, err)

	me, err := env.auth.Me(env.db, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@test.com", me.Email)
}
