package persistence

import (
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kakeibo/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// A single connection keeps every session on the same in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(
		&model.IncomeProfileModel{},
		&model.ExpenseModel{},
		&model.SavingsGoalModel{},
		&model.SavingsPoolModel{},
		&model.TransferReceiptModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		_ = dbSQL.Close()
	})

	return db
}
