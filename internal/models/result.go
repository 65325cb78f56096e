package models

import "time"

// GameResult is a persisted finished session
type GameResult struct {
	ID           int64     `json:"id"`
	PlayerID     int64     `json:"-"`
	Mode         GameMode  `json:"mode"`
	StageID      string    `json:"stage_id"`
	Score        int       `json:"score"`
	MaxScore     int       `json:"max_score"`
	Rank         Rank      `json:"rank"`
	Cleared      bool      `json:"cleared"`
	CorrectCount int       `json:"correct_count"`
	PerfectCount int       `json:"perfect_count"`
	MaxCombo     int       `json:"max_combo"`
	CreatedAt    time.Time `json:"created_at"`
}

// Accuracy returns the score as a percentage of the maximum
func (r GameResult) Accuracy() float64 {
	if r.MaxScore <= 0 {
		return 0
	}
	return float64(r.Score) / float64(r.MaxScore) * 100
}

// RewardGrant is a persisted reward line tied to a game result
type RewardGrant struct {
	ID       int64      `json:"id"`
	ResultID int64      `json:"result_id"`
	Kind     RewardKind `json:"kind"`
	ItemID   string     `json:"item_id"`
	Amount   int        `json:"amount"`
}

// ModeTotals aggregates scores of one play mode
type ModeTotals struct {
	Games    int
	Score    int
	MaxScore int
}

// Accuracy is the total score as a rounded percentage of the total maximum
func (t ModeTotals) Accuracy() int {
	if t.MaxScore <= 0 {
		return 0
	}
	return (t.Score*100 + t.MaxScore/2) / t.MaxScore
}

// PlayerStats aggregates a player's results
type PlayerStats struct {
	Cleared int
	Reading ModeTotals
	Writing ModeTotals
}

// Total combines both modes
func (s PlayerStats) Total() ModeTotals {
	return ModeTotals{
		Games:    s.Reading.Games + s.Writing.Games,
		Score:    s.Reading.Score + s.Writing.Score,
		MaxScore: s.Reading.MaxScore + s.Writing.MaxScore,
	}
}

// LearningSummary is the parent-facing overview of a player's progress
type LearningSummary struct {
	PlayerName       string `json:"player_name"`
	TotalGamesPlayed int    `json:"total_games_played"`
	TotalPlayMinutes int    `json:"total_play_minutes"`
	ClearedCount     int    `json:"cleared_count"`
	KanjiMastered    int    `json:"kanji_mastered"`
	AverageAccuracy  int    `json:"average_accuracy"`
	ReadingAccuracy  int    `json:"reading_accuracy"`
	WritingAccuracy  int    `json:"writing_accuracy"`
	CharacterCount   int    `json:"character_count"`
	CollectionRate   int    `json:"collection_rate"`
	LoginStreak      int    `json:"login_streak"`
	BestRank         Rank   `json:"best_rank,omitempty"`
}
