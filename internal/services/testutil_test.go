package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"contala_backend/internal/auth"
	"contala_backend/internal/config"
	"contala_backend/internal/email"
	"contala_backend/internal/models"
	"contala_backend/internal/repositories"
)

func init() {
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.CreatorProfile{},
		&models.CreatorPortfolioItem{},
		&models.SocialNetworkLink{},
		&models.Project{},
		&models.ProjectProposal{},
		&models.ProjectInvitation{},
		&models.ProjectMessage{},
		&models.Convocatoria{},
		&models.ConvocatoriaApplication{},
		&models.ProjectReview{},
		&models.Notification{},
	))
	return db
}

// testEnv wires real services over an in-memory database with a mock
// email provider.
type testEnv struct {
	db    *gorm.DB
	email *email.MockProvider

	auth          AuthService
	users         UserService
	profiles      ProfileService
	projects      ProjectService
	proposals     ProposalService
	invitations   InvitationService
	messages      MessageService
	convocatorias ConvocatoriaService
	applications  ApplicationService
	reviews       ReviewService
	notifications NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	mockEmail := email.NewMockProvider()

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	projectRepo := repositories.NewProjectRepository()
	proposalRepo := repositories.NewProposalRepository()
	invitationRepo := repositories.NewInvitationRepository()
	messageRepo := repositories.NewMessageRepository()
	convocatoriaRepo := repositories.NewConvocatoriaRepository()
	applicationRepo := repositories.NewApplicationRepository()
	reviewRepo := repositories.NewReviewRepository()
	notificationRepo := repositories.NewNotificationRepository()

	notificationService := NewNotificationService(notificationRepo, userRepo, mockEmail)

	return &testEnv{
		db:            db,
		email:         mockEmail,
		auth:          NewAuthService(userRepo, profileRepo),
		users:         NewUserService(userRepo),
		profiles:      NewProfileService(profileRepo),
		projects:      NewProjectService(projectRepo, proposalRepo, messageRepo),
		proposals:     NewProposalService(proposalRepo, projectRepo, invitationRepo, userRepo, notificationService),
		invitations:   NewInvitationService(invitationRepo, proposalRepo, projectRepo, userRepo, notificationService),
		messages:      NewMessageService(messageRepo, projectRepo, userRepo, notificationService),
		convocatorias: NewConvocatoriaService(convocatoriaRepo, applicationRepo),
		applications:  NewApplicationService(applicationRepo, convocatoriaRepo, projectRepo, userRepo, notificationService),
		reviews:       NewReviewService(reviewRepo, projectRepo, profileRepo, notificationService),
		notifications: notificationService,
	}
}

func (e *testEnv) createClient(t *testing.T, emailAddr string) (auth.Actor, *models.User) {
	t.Helper()
	user := &models.User{
		Email:        emailAddr,
		PasswordHash: "x",
		FirstName:    "Client",
	}
	require.NoError(t, e.db.Create(user).Error)
	return auth.ActorForUser(user), user
}

func (e *testEnv) createCreator(t *testing.T, emailAddr string) (auth.Actor, *models.User) {
	t.Helper()
	user := &models.User{
		Email:        emailAddr,
		PasswordHash: "x",
		FirstName:    "Creator",
		IsCreator:    true,
	}
	require.NoError(t, e.db.Create(user).Error)
	require.NoError(t, e.db.Create(&models.CreatorProfile{UserID: user.ID}).Error)
	return auth.ActorForUser(user), user
}

func (e *testEnv) createStaff(t *testing.T, emailAddr string) (auth.Actor, *models.User) {
	t.Helper()
	user := &models.User{
		Email:        emailAddr,
		PasswordHash: "x",
		FirstName:    "Staff",
		IsStaff:      true,
	}
	require.NoError(t, e.db.Create(user).Error)
	return auth.ActorForUser(user), user
}

func (e *testEnv) createProject(t *testing.T, clientID string, isPublic bool, status models.ProjectStatus, budget *float64) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:    "Campaign video",
		ClientID: clientID,
		Status:   status,
		IsPublic: isPublic,
		Budget:   budget,
	}
	require.NoError(t, e.db.Create(project).Error)
	return project
}

func (e *testEnv) createConvocatoria(t *testing.T, clientID string, status models.ConvocatoriaStatus) *models.Convocatoria {
	t.Helper()
	convocatoria := &models.Convocatoria{
		Title:    "Summer campaign",
		ClientID: clientID,
		Status:   status,
	}
	require.NoError(t, e.db.Create(convocatoria).Error)
	return convocatoria
}

func floatPtr(v float64) *float64 { return &v }
