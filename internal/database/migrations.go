package database

import (
	"github.com/raj2411/MusicPlayerBackend/internal/models"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

// MigrateModels runs GORM AutoMigrate for the storage rows. The canonical
// schema lives in cmd/migration/migrations; this is the development path.
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	if err := db.SQL.AutoMigrate(&models.Document{}); err != nil {
		return log.Err("failed to migrate documents table", err)
	}

	log.Info("Database migration completed successfully")
	return nil
}
