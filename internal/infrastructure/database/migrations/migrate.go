package migrations

import (
	"github.com/atlascrm/profiling-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate creates or updates the profiling tables and their join tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Category{},
		&entities.Question{},
		&entities.Answer{},
		&entities.Questionnaire{},
		&entities.Partner{},
		&entities.Segmentation{},
	)
}
