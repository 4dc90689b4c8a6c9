package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"datasync-service/internal/store"
)

// OpenTestStore opens an in-memory SQLite-backed record store. The name
// keeps each test's shared-cache database separate. The raw gorm handle
// is returned as well so tests can plant rows that bypass the store's
// own writers.
func OpenTestStore(t *testing.T, name string) (*store.Store, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	st, err := store.New(db)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	return st, db
}
