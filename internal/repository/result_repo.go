package repository

import (
	"fmt"
	"time"

	"kanjiquest/internal/database"
	"kanjiquest/internal/models"
)

const resultColumns = `id, player_id, mode, stage_id, score, max_score, rank_tier, cleared,
	correct_count, perfect_count, max_combo, created_at`

// ResultRepository stores finished sessions and the rewards they granted
type ResultRepository struct {
	db database.DBTX
}

// NewResultRepository creates a new result repository
func NewResultRepository(db database.DBTX) *ResultRepository {
	return &ResultRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *ResultRepository) WithTx(tx *database.Tx) *ResultRepository {
	return &ResultRepository{db: tx}
}

// CreateResult stores a finished session summary for a player
func (r *ResultRepository) CreateResult(playerID int64, s models.SessionSummary) (*models.GameResult, error) {
	query := `
		INSERT INTO game_results (player_id, mode, stage_id, score, max_score, rank_tier, cleared,
			correct_count, perfect_count, max_combo)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, playerID, string(s.Mode), s.StageID, s.Score, s.MaxScore,
		string(s.Rank), s.Cleared, s.CorrectCount, s.PerfectCount, s.MaxCombo)
	if err != nil {
		return nil, fmt.Errorf("failed to create game result: %w", err)
	}

	return &models.GameResult{
		ID:           id,
		PlayerID:     playerID,
		Mode:         s.Mode,
		StageID:      s.StageID,
		Score:        s.Score,
		MaxScore:     s.MaxScore,
		Rank:         s.Rank,
		Cleared:      s.Cleared,
		CorrectCount: s.CorrectCount,
		PerfectCount: s.PerfectCount,
		MaxCombo:     s.MaxCombo,
		CreatedAt:    time.Now(),
	}, nil
}

// RestoreResult inserts a result with its original timestamp, used by backup import
func (r *ResultRepository) RestoreResult(res models.GameResult) (int64, error) {
	query := `
		INSERT INTO game_results (player_id, mode, stage_id, score, max_score, rank_tier, cleared,
			correct_count, perfect_count, max_combo, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, res.PlayerID, string(res.Mode), res.StageID, res.Score, res.MaxScore,
		string(res.Rank), res.Cleared, res.CorrectCount, res.PerfectCount, res.MaxCombo, res.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to restore game result: %w", err)
	}
	return id, nil
}

// AddGrants stores every line of a reward bundle against a result
func (r *ResultRepository) AddGrants(resultID int64, bundle models.RewardBundle) error {
	query := "INSERT INTO reward_grants (result_id, kind, item_id, amount) VALUES (?, ?, ?, ?)"
	for _, line := range bundle {
		if _, err := r.db.Exec(query, resultID, string(line.Kind), line.ID, line.Amount); err != nil {
			return fmt.Errorf("failed to store reward grant: %w", err)
		}
	}
	return nil
}

// GetGrants returns the reward lines granted for a result
func (r *ResultRepository) GetGrants(resultID int64) ([]models.RewardGrant, error) {
	rows, err := r.db.Query("SELECT id, result_id, kind, item_id, amount FROM reward_grants WHERE result_id = ? ORDER BY id ASC", resultID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reward grants: %w", err)
	}
	defer rows.Close()

	var grants []models.RewardGrant
	for rows.Next() {
		var g models.RewardGrant
		var kind string
		if err := rows.Scan(&g.ID, &g.ResultID, &kind, &g.ItemID, &g.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan reward grant: %w", err)
		}
		g.Kind = models.RewardKind(kind)
		grants = append(grants, g)
	}
	return grants, rows.Err()
}

// ListResults returns a player's most recent results, newest first. A limit
// of zero or less returns all of them.
func (r *ResultRepository) ListResults(playerID int64, limit int) ([]models.GameResult, error) {
	query := "SELECT " + resultColumns + " FROM game_results WHERE player_id = ? ORDER BY created_at DESC, id DESC"
	args := []interface{}{playerID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return r.queryResults(query, args...)
}

// ListResultsSince returns a player's results created at or after since, oldest first
func (r *ResultRepository) ListResultsSince(playerID int64, since time.Time) ([]models.GameResult, error) {
	query := "SELECT " + resultColumns + " FROM game_results WHERE player_id = ? AND created_at >= ? ORDER BY created_at ASC, id ASC"
	return r.queryResults(query, playerID, since.UTC())
}

// GetStats aggregates a player's results per mode
func (r *ResultRepository) GetStats(playerID int64) (models.PlayerStats, error) {
	query := `
		SELECT mode, COUNT(*), COALESCE(SUM(score), 0), COALESCE(SUM(max_score), 0),
			COALESCE(SUM(CASE WHEN cleared THEN 1 ELSE 0 END), 0)
		FROM game_results
		WHERE player_id = ?
		GROUP BY mode
	`
	rows, err := r.db.Query(query, playerID)
	if err != nil {
		return models.PlayerStats{}, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	var stats models.PlayerStats
	for rows.Next() {
		var mode string
		var totals models.ModeTotals
		var cleared int
		if err := rows.Scan(&mode, &totals.Games, &totals.Score, &totals.MaxScore, &cleared); err != nil {
			return models.PlayerStats{}, fmt.Errorf("failed to scan stats: %w", err)
		}
		stats.Cleared += cleared
		switch models.GameMode(mode) {
		case models.ModeReading:
			stats.Reading = totals
		case models.ModeWriting:
			stats.Writing = totals
		}
	}
	return stats, rows.Err()
}

// BestRank returns the best rank a player has reached, or "" with no results
func (r *ResultRepository) BestRank(playerID int64) (models.Rank, error) {
	rows, err := r.db.Query("SELECT DISTINCT rank_tier FROM game_results WHERE player_id = ?", playerID)
	if err != nil {
		return "", fmt.Errorf("failed to query ranks: %w", err)
	}
	defer rows.Close()

	seen := map[models.Rank]bool{}
	for rows.Next() {
		var rank string
		if err := rows.Scan(&rank); err != nil {
			return "", fmt.Errorf("failed to scan rank: %w", err)
		}
		seen[models.Rank(rank)] = true
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	for _, rank := range models.Ranks {
		if seen[rank] {
			return rank, nil
		}
	}
	return "", nil
}

func (r *ResultRepository) queryResults(query string, args ...interface{}) ([]models.GameResult, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	var results []models.GameResult
	for rows.Next() {
		var res models.GameResult
		var mode, rank string
		if err := rows.Scan(
			&res.ID,
			&res.PlayerID,
			&mode,
			&res.StageID,
			&res.Score,
			&res.MaxScore,
			&rank,
			&res.Cleared,
			&res.CorrectCount,
			&res.PerfectCount,
			&res.MaxCombo,
			&res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game result: %w", err)
		}
		res.Mode = models.GameMode(mode)
		res.Rank = models.Rank(rank)
		results = append(results, res)
	}
	return results, rows.Err()
}
