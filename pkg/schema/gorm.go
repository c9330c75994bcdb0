package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Indicator{},
		&Observation{},
		&SchemaVersion{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema and adds
// secondary indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return err
	}
	for _, m := range AllModels() {
		for _, idx := range m.(DDLGenerator).IndexDDL() {
			if err := db.Exec(idx).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
