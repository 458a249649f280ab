package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/degreeplan-backend/internal/domain/catalog"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		// Catalog reference data
		&catalog.Institution{},
		&catalog.CourseRecord{},
		&catalog.DisciplineMapping{},
		&catalog.CredentialRequirement{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
