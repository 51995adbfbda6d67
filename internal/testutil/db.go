// Package testutil holds fixtures shared by DB-backed tests.
package testutil

import (
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
)

// NewDB opens a private in-memory SQLite database for the calling test and migrates
// every model into it.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := "file:" + name + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// A single connection keeps shared-cache SQLite free of table locks.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// Must fails the test when a fixture insert fails.
func Must(t *testing.T, db *gorm.DB, values ...interface{}) {
	t.Helper()
	for _, v := range values {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed %T: %v", v, err)
		}
	}
}

func Supplier(code, name string) *models.Member {
	return &models.Member{
		LoginID:            "login-" + code,
		PasswordHash:       "x",
		ClassificationCode: code,
		CompanyName:        name,
		Grade:              models.GradeSupplier,
		Withdrawal:         models.WithdrawalActive,
	}
}

func Client(code, motherCode, name string, withdrawal models.Withdrawal) *models.Member {
	return &models.Member{
		LoginID:            "login-" + code,
		PasswordHash:       "x",
		ClassificationCode: code,
		MotherCode:         motherCode,
		CompanyName:        name,
		Grade:              models.GradeClient,
		Withdrawal:         withdrawal,
	}
}
