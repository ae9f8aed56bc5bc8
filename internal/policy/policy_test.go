package policy

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"contala_backend/internal/auth"
	"contala_backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectInvitation{},
		&models.ProjectMessage{},
		&models.Convocatoria{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", FirstName: "u"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestProjectScopeForCreator(t *testing.T) {
	db := newTestDB(t)
	client := createUser(t, db, "client@test.com")
	creator := createUser(t, db, "creator@test.com")

	public := &models.Project{Title: "public", ClientID: client.ID, IsPublic: true, Status: models.ProjectStatusOpen}
	invited := &models.Project{Title: "invited", ClientID: client.ID, IsPublic: false, Status: models.ProjectStatusOpen}
	hidden := &models.Project{Title: "hidden", ClientID: client.ID, IsPublic: false, Status: models.ProjectStatusOpen}
	for _, p := range []*models.Project{public, invited, hidden} {
		require.NoError(t, db.Create(p).Error)
	}

	// A rejected invitation still grants visibility.
	require.NoError(t, db.Create(&models.ProjectInvitation{
		ProjectID: invited.ID,
		CreatorID: creator.ID,
		Status:    models.InvitationStatusRejected,
	}).Error)

	actor := auth.Actor{ID: creator.ID, Role: auth.RoleCreator}

	var projects []models.Project
	require.NoError(t, db.Scopes(ProjectScope(actor)).Find(&projects).Error)

	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{public.ID, invited.ID}, ids)
}

func TestProjectScopeForClientAndStaff(t *testing.T) {
	db := newTestDB(t)
	client := createUser(t, db, "client@test.com")
	other := createUser(t, db, "other@test.com")

	mine := &models.Project{Title: "mine", ClientID: client.ID, IsPublic: true, Status: models.ProjectStatusOpen}
	theirs := &models.Project{Title: "theirs", ClientID: other.ID, IsPublic: true, Status: models.ProjectStatusOpen}
	require.NoError(t, db.Create(mine).Error)
	require.NoError(t, db.Create(theirs).Error)

	var projects []models.Project
	clientActor := auth.Actor{ID: client.ID, Role: auth.RoleClient}
	require.NoError(t, db.Scopes(ProjectScope(clientActor)).Find(&projects).Error)
	require.Len(t, projects, 1)
	assert.Equal(t, mine.ID, projects[0].ID)

	staffActor := auth.Actor{ID: "staff", Role: auth.RoleStaff}
	require.NoError(t, db.Scopes(ProjectScope(staffActor)).Find(&projects).Error)
	assert.Len(t, projects, 2)
}

func TestConvocatoriaScope(t *testing.T) {
	db := newTestDB(t)
	client := createUser(t, db, "client@test.com")
	creator := createUser(t, db, "creator@test.com")

	open := &models.Convocatoria{Title: "open", ClientID: client.ID, Status: models.ConvocatoriaStatusOpen}
	draft := &models.Convocatoria{Title: "draft", ClientID: client.ID, Status: models.ConvocatoriaStatusDraft}
	require.NoError(t, db.Create(open).Error)
	require.NoError(t, db.Create(draft).Error)

	var convocatorias []models.Convocatoria
	creatorActor := auth.Actor{ID: creator.ID, Role: auth.RoleCreator}
	require.NoError(t, db.Scopes(ConvocatoriaScope(creatorActor)).Find(&convocatorias).Error)
	require.Len(t, convocatorias, 1)
	assert.Equal(t, open.ID, convocatorias[0].ID)

	// Owners see their drafts too.
	clientActor := auth.Actor{ID: client.ID, Role: auth.RoleClient}
	require.NoError(t, db.Scopes(ConvocatoriaScope(clientActor)).Find(&convocatorias).Error)
	assert.Len(t, convocatorias, 2)
}

func TestMessageScopeParticipantsOnly(t *testing.T) {
	db := newTestDB(t)
	client := createUser(t, db, "client@test.com")
	creator := createUser(t, db, "creator@test.com")
	stranger := createUser(t, db, "stranger@test.com")

	project := &models.Project{Title: "p", ClientID: client.ID, IsPublic: true, Status: models.ProjectStatusInProgress}
	require.NoError(t, db.Create(project).Error)
	require.NoError(t, db.Create(&models.ProjectMessage{
		ProjectID:  project.ID,
		SenderID:   client.ID,
		ReceiverID: creator.ID,
		Content:    "hola",
	}).Error)

	var messages []models.ProjectMessage
	for _, id := range []string{client.ID, creator.ID} {
		actor := auth.Actor{ID: id, Role: auth.RoleClient}
		require.NoError(t, db.Scopes(MessageScope(actor)).Find(&messages).Error)
		assert.Len(t, messages, 1)
	}

	strangerActor := auth.Actor{ID: stranger.ID, Role: auth.RoleClient}
	require.NoError(t, db.Scopes(MessageScope(strangerActor)).Find(&messages).Error)
	assert.Empty(t, messages)
}

func TestCanMutate(t *testing.T) {
	owner := auth.Actor{ID: "u1", Role: auth.RoleClient}
	other := auth.Actor{ID: "u2", Role: auth.RoleClient}
	staff := auth.Actor{ID: "u3", Role: auth.RoleStaff}

	assert.True(t, CanMutate(owner, "u1"))
	assert.False(t, CanMutate(other, "u1"))
	assert.True(t, CanMutate(staff, "u1"))
}
