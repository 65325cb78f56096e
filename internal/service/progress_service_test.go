package service

import (
	"errors"
	"testing"

	"kanjiquest/internal/catalog"
	"kanjiquest/internal/models"
	"kanjiquest/internal/repository"
)

func TestProgressSummary(t *testing.T) {
	db := setupTestDB(t)
	p := createPlayer(t, db, "sunny-hare", "")

	players := repository.NewPlayerRepository(db)
	results := repository.NewResultRepository(db)
	inventory := repository.NewInventoryRepository(db)
	svc := NewProgressService(catalog.Default(), players, results, inventory)

	empty, err := svc.Summary(p.ID)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if empty.TotalGamesPlayed != 0 || empty.AverageAccuracy != 0 || empty.BestRank != "" {
		t.Errorf("empty summary = %+v", empty)
	}

	for _, s := range []models.SessionSummary{
		{Mode: models.ModeReading, StageID: "grade_1_slow", Score: 80, MaxScore: 100, Rank: models.RankA, Cleared: true},
		{Mode: models.ModeReading, StageID: "grade_1_slow", Score: 40, MaxScore: 100, Rank: models.RankD},
		{Mode: models.ModeWriting, StageID: "set_001", Score: 600, MaxScore: 600, Rank: models.RankS, Cleared: true},
	} {
		if _, err := results.CreateResult(p.ID, s); err != nil {
			t.Fatal(err)
		}
	}
	inventory.AddCharacter(p.ID, "char_001")
	inventory.AddCharacter(p.ID, "char_010")

	got, err := svc.Summary(p.ID)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	want := models.LearningSummary{
		PlayerName:       "Hana",
		TotalGamesPlayed: 3,
		TotalPlayMinutes: 15,
		ClearedCount:     2,
		KanjiMastered:    10,
		ReadingAccuracy:  60,
		WritingAccuracy:  100,
		CharacterCount:   2,
		CollectionRate:   10,
		BestRank:         models.RankS,
	}
	// 720 of 800 points
	want.AverageAccuracy = 90
	if got != want {
		t.Errorf("Summary() = %+v\nwant %+v", got, want)
	}

	history, _ := svc.History(p.ID, 2)
	if len(history) != 2 || history[0].Mode != models.ModeWriting {
		t.Errorf("history = %+v", history)
	}
}

func TestProgressSummaryUnknownPlayer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProgressService(catalog.Default(), repository.NewPlayerRepository(db),
		repository.NewResultRepository(db), repository.NewInventoryRepository(db))

	if _, err := svc.Summary(42); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("error = %v, want ErrPlayerNotFound", err)
	}
}
