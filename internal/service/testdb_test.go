package service

import (
	"testing"

	"cmms-backend/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database and migrates the full
// schema. Single connection so every query sees the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.ProductionLine{},
		&model.Machine{},
		&model.Supplier{},
		&model.Part{},
		&model.InventoryLevel{},
		&model.Worksheet{},
		&model.WorksheetPart{},
		&model.PMTask{},
	))
	return db
}

func seedRoles(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&model.Role{Name: model.RoleUser}).Error)
	require.NoError(t, db.Create(&model.Role{Name: model.RoleAdmin}).Error)
}
