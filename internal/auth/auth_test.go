package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contala_backend/internal/config"
	"contala_backend/internal/models"
)

func init() {
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)

	assert.True(t, CheckPasswordHash("s3cretpass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestResolveRolePrecedence(t *testing.T) {
	assert.Equal(t, RoleStaff, ResolveRole(true, true))
	assert.Equal(t, RoleStaff, ResolveRole(true, false))
	assert.Equal(t, RoleCreator, ResolveRole(false, true))
	assert.Equal(t, RoleClient, ResolveRole(false, false))
}

func TestActorForUser(t *testing.T) {
	user := &models.User{IsCreator: true}
	user.ID = "u1"

	actor := ActorForUser(user)
	assert.Equal(t, "u1", actor.ID)
	assert.Equal(t, RoleCreator, actor.Role)
	assert.True(t, actor.IsCreator())
	assert.False(t, actor.IsStaff())
}

func TestTokenRoundTrip(t *testing.T) {
	actor := Actor{ID: "u1", Role: RoleCreator}

	token, err := GenerateToken(actor)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, RoleCreator, claims.Role)
	assert.Equal(t, "u1", claims.Subject)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(Actor{ID: "u1", Role: RoleClient})
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)

	_, err = ParseToken("not-a-token")
	assert.Error(t, err)
}
