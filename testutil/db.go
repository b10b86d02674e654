// Package testutil builds isolated stores for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/yeremiapane/vastra-crm/app"
	"github.com/yeremiapane/vastra-crm/config"
	"github.com/yeremiapane/vastra-crm/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory sqlite store private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), config.GormConfig())
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	// a single connection keeps the whole test on one in-memory database
	if err := config.EnableSQLiteForeignKeys(db); err != nil {
		t.Fatal(err)
	}
	if err := app.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// NewEnv wraps NewDB in an application context with a fixed clock.
func NewEnv(t *testing.T, now time.Time) *app.Env {
	t.Helper()

	cfg := config.Default()
	cfg.OrderCodeBackoff = 0
	return &app.Env{
		Config: cfg,
		DB:     NewDB(t),
		Log:    utils.DiscardLogger(),
		Now:    func() time.Time { return now },
	}
}
