package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&Campus{},
		&KnowledgeArea{},
		&Person{},
		&PersonEmail{},
		&Sponsor{},
		&ResearchGroup{},
		&Leadership{},
		&ImportRun{},
	}
}

// Migrate runs GORM AutoMigrate to create or update the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
