package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/socialgraph/friendsdb/internal/models"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenTestDB creates an in-memory SQLite database with the graph schema
// migrated. The pure-Go driver keeps the test suite free of cgo.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Hobby{},
		&models.UserHobby{},
		&models.Friendship{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}
