// Package report renders a player's progress as an Excel workbook for parents.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"kanjiquest/internal/models"
)

const (
	SummarySheet = "Summary"
	HistorySheet = "History"

	timeLayout = "2006-01-02 15:04"
)

var historyHeader = []interface{}{"Played", "Mode", "Stage", "Score", "Max", "Accuracy %", "Rank", "Cleared"}

// Build creates the progress workbook: a summary sheet and one history row per game
func Build(summary models.LearningSummary, history []models.GameResult) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", SummarySheet)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	if err := writeSummary(f, summary, bold); err != nil {
		f.Close()
		return nil, err
	}

	if _, err := f.NewSheet(HistorySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("create history sheet: %w", err)
	}
	if err := writeHistory(f, history, bold); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// Write builds the workbook and streams it to w
func Write(w io.Writer, summary models.LearningSummary, history []models.GameResult) error {
	f, err := Build(summary, history)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, s models.LearningSummary, bold int) error {
	rows := [][]interface{}{
		{"Player", s.PlayerName},
		{"Games played", s.TotalGamesPlayed},
		{"Play time (min)", s.TotalPlayMinutes},
		{"Stages cleared", s.ClearedCount},
		{"Kanji mastered", s.KanjiMastered},
		{"Average accuracy %", s.AverageAccuracy},
		{"Reading accuracy %", s.ReadingAccuracy},
		{"Writing accuracy %", s.WritingAccuracy},
		{"Characters", s.CharacterCount},
		{"Collection %", s.CollectionRate},
		{"Login streak", s.LoginStreak},
		{"Best rank", string(s.BestRank)},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	last, _ := excelize.CoordinatesToCellName(1, len(rows))
	if err := f.SetCellStyle(SummarySheet, "A1", last, bold); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "A", "A", 22)
}

func writeHistory(f *excelize.File, history []models.GameResult, bold int) error {
	if err := f.SetSheetRow(HistorySheet, "A1", &historyHeader); err != nil {
		return fmt.Errorf("write history header: %w", err)
	}
	if err := f.SetCellStyle(HistorySheet, "A1", "H1", bold); err != nil {
		return err
	}

	for i, r := range history {
		cleared := "no"
		if r.Cleared {
			cleared = "yes"
		}
		row := []interface{}{
			r.CreatedAt.UTC().Format(timeLayout),
			string(r.Mode),
			r.StageID,
			r.Score,
			r.MaxScore,
			int(r.Accuracy() + 0.5),
			string(r.Rank),
			cleared,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(HistorySheet, cell, &row); err != nil {
			return fmt.Errorf("write history row: %w", err)
		}
	}
	return f.SetColWidth(HistorySheet, "A", "C", 18)
}
