package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"kanjiquest/internal/models"
)

func TestWrite(t *testing.T) {
	summary := models.LearningSummary{
		PlayerName:       "Hana",
		TotalGamesPlayed: 2,
		AverageAccuracy:  75,
		BestRank:         models.RankA,
	}
	played := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	history := []models.GameResult{
		{Mode: models.ModeReading, StageID: "grade_1_slow", Score: 90, MaxScore: 100, Rank: models.RankA, Cleared: true, CreatedAt: played},
		{Mode: models.ModeWriting, StageID: "set_001", Score: 300, MaxScore: 600, Rank: models.RankD, CreatedAt: played.Add(time.Hour)},
	}

	var buf bytes.Buffer
	if err := Write(&buf, summary, history); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	tests := []struct {
		sheet string
		cell  string
		want  string
	}{
		{sheet: SummarySheet, cell: "A1", want: "Player"},
		{sheet: SummarySheet, cell: "B1", want: "Hana"},
		{sheet: SummarySheet, cell: "B6", want: "75"},
		{sheet: SummarySheet, cell: "B12", want: "A"},
		{sheet: HistorySheet, cell: "A1", want: "Played"},
		{sheet: HistorySheet, cell: "A2", want: "2026-10-15 09:30"},
		{sheet: HistorySheet, cell: "C2", want: "grade_1_slow"},
		{sheet: HistorySheet, cell: "F3", want: "50"},
		{sheet: HistorySheet, cell: "H3", want: "no"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(tt.sheet, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s) error = %v", tt.sheet, tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("%s!%s = %q, want %q", tt.sheet, tt.cell, got, tt.want)
		}
	}
}

func TestBuildEmptyHistory(t *testing.T) {
	f, err := Build(models.LearningSummary{PlayerName: "Sora"}, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(HistorySheet)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("history rows = %d, want header only", len(rows))
	}
}
