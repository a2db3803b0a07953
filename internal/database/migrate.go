package database

import (
	"fmt"

	"github.com/pageza/devconnector/backend/internal/models"
	"gorm.io/gorm"
)

// Models lists every table owned by the application, parents first
var Models = []interface{}{
	&models.User{},
	&models.Profile{},
	&models.Experience{},
	&models.Education{},
}

// RunMigrations brings the schema up to date with the models
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
