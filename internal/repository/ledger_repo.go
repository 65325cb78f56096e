package repository

import (
	"database/sql"
	"fmt"

	"kanjiquest/internal/database"
	"kanjiquest/internal/models"
)

// LedgerRepository stores one login row per player and calendar day
type LedgerRepository struct {
	db database.DBTX
}

// NewLedgerRepository creates a new login ledger repository
func NewLedgerRepository(db database.DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *LedgerRepository) WithTx(tx *database.Tx) *LedgerRepository {
	return &LedgerRepository{db: tx}
}

// RecordLogin inserts the login row for a day. It reports false when the day
// was already recorded, which is how a repeat visit is detected even when two
// requests race.
func (r *LedgerRepository) RecordLogin(rec models.LoginRecord) (bool, error) {
	query := r.db.GetDialect().InsertIgnore("login_ledger", "player_id", "login_day", "streak", "bonus_coins")
	res, err := r.db.Exec(query, rec.PlayerID, rec.Day, rec.Streak, rec.BonusCoins)
	if err != nil {
		return false, fmt.Errorf("failed to record login: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check recorded login: %w", err)
	}
	return n > 0, nil
}

// GetLogin returns the login row of a day. A day without login yields nil, nil.
func (r *LedgerRepository) GetLogin(playerID int64, day string) (*models.LoginRecord, error) {
	query := "SELECT player_id, login_day, streak, bonus_coins, created_at FROM login_ledger WHERE player_id = ? AND login_day = ?"
	rec := &models.LoginRecord{}
	err := r.db.QueryRow(query, playerID, day).Scan(&rec.PlayerID, &rec.Day, &rec.Streak, &rec.BonusCoins, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get login: %w", err)
	}
	return rec, nil
}

// LastLogin returns the most recent login before day. No earlier login yields nil, nil.
func (r *LedgerRepository) LastLogin(playerID int64, before string) (*models.LoginRecord, error) {
	query := `
		SELECT player_id, login_day, streak, bonus_coins, created_at
		FROM login_ledger
		WHERE player_id = ? AND login_day < ?
		ORDER BY login_day DESC
		LIMIT 1
	`
	rec := &models.LoginRecord{}
	err := r.db.QueryRow(query, playerID, before).Scan(&rec.PlayerID, &rec.Day, &rec.Streak, &rec.BonusCoins, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last login: %w", err)
	}
	return rec, nil
}

// CountLogins returns how many days a player has logged in
func (r *LedgerRepository) CountLogins(playerID int64) (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM login_ledger WHERE player_id = ?", playerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count logins: %w", err)
	}
	return count, nil
}

// ListLogins returns every login row of a player, oldest first
func (r *LedgerRepository) ListLogins(playerID int64) ([]models.LoginRecord, error) {
	query := "SELECT player_id, login_day, streak, bonus_coins, created_at FROM login_ledger WHERE player_id = ? ORDER BY login_day ASC"
	rows, err := r.db.Query(query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query logins: %w", err)
	}
	defer rows.Close()

	var logins []models.LoginRecord
	for rows.Next() {
		var rec models.LoginRecord
		if err := rows.Scan(&rec.PlayerID, &rec.Day, &rec.Streak, &rec.BonusCoins, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan login: %w", err)
		}
		logins = append(logins, rec)
	}
	return logins, rows.Err()
}
