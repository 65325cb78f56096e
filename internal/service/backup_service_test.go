package service

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"kanjiquest/internal/catalog"
	"kanjiquest/internal/models"
	"kanjiquest/internal/random"
	"kanjiquest/internal/repository"
	"kanjiquest/internal/rewards"
)

func TestBackupRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	p := createPlayer(t, src, "merry-bee", "parent@example.com")

	engine := rewards.NewEngine(catalog.Default(), random.NewScripted(0), rewards.DefaultConfig())
	rewardSvc := NewRewardService(src, engine, nullLogger())
	rewardSvc.now = fixedClock(testDay)
	summary := models.SessionSummary{Mode: models.ModeReading, StageID: "grade_1_slow", Score: 100, MaxScore: 100, Rank: models.RankS, Cleared: true}
	if _, err := rewardSvc.FinishSession(context.Background(), p.ID, summary); err != nil {
		t.Fatal(err)
	}

	daily := NewDailyService(src, catalog.Default(), nullLogger())
	daily.now = fixedClock(testDay)
	if _, err := daily.Login(p.ID); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := NewBackupService(src, nullLogger()).ExportToWriter(&buf); err != nil {
		t.Fatalf("ExportToWriter() error = %v", err)
	}

	dst := setupTestDB(t)
	restore := NewBackupService(dst, nullLogger())
	if err := restore.ImportFromReader(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("ImportFromReader() error = %v", err)
	}

	players := repository.NewPlayerRepository(dst)
	got, _ := players.GetPlayerByHandle("merry-bee")
	if got == nil {
		t.Fatal("player not restored")
	}
	if got.Coins != 30 || got.Experience != 200 || got.LoginStreak != 1 || got.ParentEmail != "parent@example.com" {
		t.Errorf("restored player = %+v", got)
	}

	results := repository.NewResultRepository(dst)
	list, _ := results.ListResults(got.ID, 0)
	if len(list) != 1 || list[0].Rank != models.RankS {
		t.Fatalf("restored results = %+v", list)
	}
	if grants, _ := results.GetGrants(list[0].ID); len(grants) != 4 {
		t.Errorf("restored %d grants, want 4", len(grants))
	}

	inventory := repository.NewInventoryRepository(dst)
	if c, _ := inventory.GetCharacter(got.ID, "char_003"); c == nil {
		t.Error("character not restored")
	}
	if foods, _ := inventory.ListFoods(got.ID); len(foods) != 1 || foods[0].Amount != 3 {
		t.Errorf("restored foods = %+v", foods)
	}
	if n, _ := repository.NewLedgerRepository(dst).CountLogins(got.ID); n != 1 {
		t.Errorf("restored %d logins, want 1", n)
	}
	if missions, _ := repository.NewMissionRepository(dst).ListAllMissions(got.ID); len(missions) != 3 {
		t.Errorf("restored %d missions, want 3", len(missions))
	}

	if err := restore.ImportFromReader(bytes.NewReader(buf.Bytes())); !errors.Is(err, ErrBackupNotEmpty) {
		t.Errorf("second import error = %v, want ErrBackupNotEmpty", err)
	}
}

func TestBackupFile(t *testing.T) {
	src := setupTestDB(t)
	createPlayer(t, src, "brisk-cat", "")

	path := filepath.Join(t.TempDir(), "backup.json")
	if err := NewBackupService(src, nullLogger()).Export(path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	dst := setupTestDB(t)
	if err := NewBackupService(dst, nullLogger()).Import(path); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	players, _ := repository.NewPlayerRepository(dst).ListPlayers()
	if len(players) != 1 || players[0].Handle != "brisk-cat" {
		t.Errorf("players = %+v", players)
	}
}

func TestImportRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBackupService(db, nullLogger())

	if err := svc.ImportFromReader(strings.NewReader(`{"version":"0.1","players":[]}`)); !errors.Is(err, ErrUnsupportedBackup) {
		t.Errorf("old version error = %v", err)
	}
	if err := svc.ImportFromReader(strings.NewReader(`not json`)); err == nil {
		t.Error("expected an error for malformed input")
	}
}
