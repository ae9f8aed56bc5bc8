package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"contala_backend/internal/models"
)

// Connect opens the postgres connection pool.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate runs the schema migrations for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
	)
}
