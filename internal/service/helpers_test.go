package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"kanjiquest/internal/database"
	"kanjiquest/internal/models"
	"kanjiquest/internal/repository"
)

func nullLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}

	db, err := database.Initialize(filepath.Join(t.TempDir(), "service.db"), nullLogger())
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func createPlayer(t *testing.T, db *database.DB, handle, email string) *models.Player {
	t.Helper()
	p, err := repository.NewPlayerRepository(db).CreatePlayer("Hana", handle, email)
	if err != nil {
		t.Fatalf("CreatePlayer() error = %v", err)
	}
	return p
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testDay = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
