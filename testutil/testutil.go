// Package testutil opens throwaway databases for service and handler tests.
package testutil

import (
	"testing"

	"ecocycle-service/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB returns a fresh in-memory database with the full schema. Each
// call is fully isolated from every other test.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Category{},
		&models.RecyclingItem{},
		&models.User{},
		&models.RecyclingRecord{},
		&models.CommunitySnapshot{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
