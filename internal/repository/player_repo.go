package repository

import (
	"database/sql"
	"fmt"
	"time"

	"kanjiquest/internal/database"
	"kanjiquest/internal/models"
)

const playerColumns = `id, name, handle, parent_email, parent_pin, coins, experience,
	login_streak, last_login_day, created_at, updated_at`

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db database.DBTX
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db database.DBTX) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *PlayerRepository) WithTx(tx *database.Tx) *PlayerRepository {
	return &PlayerRepository{db: tx}
}

// CreatePlayer inserts a new player profile
func (r *PlayerRepository) CreatePlayer(name, handle, parentEmail string) (*models.Player, error) {
	query := "INSERT INTO players (name, handle, parent_email) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, name, handle, parentEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	now := time.Now()
	return &models.Player{
		ID:          id,
		Name:        name,
		Handle:      handle,
		ParentEmail: parentEmail,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetPlayerByID retrieves a player by ID. A missing player yields nil, nil.
func (r *PlayerRepository) GetPlayerByID(id int64) (*models.Player, error) {
	query := "SELECT " + playerColumns + " FROM players WHERE id = ?"
	p, err := scanPlayer(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

// GetPlayerByHandle retrieves a player by login handle
func (r *PlayerRepository) GetPlayerByHandle(handle string) (*models.Player, error) {
	query := "SELECT " + playerColumns + " FROM players WHERE handle = ?"
	p, err := scanPlayer(r.db.QueryRow(query, handle))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

// HandleExists reports whether a handle is taken
func (r *PlayerRepository) HandleExists(handle string) (bool, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM players WHERE handle = ?", handle).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check handle: %w", err)
	}
	return count > 0, nil
}

// ListPlayers returns every player ordered by ID
func (r *PlayerRepository) ListPlayers() ([]models.Player, error) {
	rows, err := r.db.Query("SELECT " + playerColumns + " FROM players ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// ListPlayersWithParentEmail returns players whose parent receives reports
func (r *PlayerRepository) ListPlayersWithParentEmail() ([]models.Player, error) {
	rows, err := r.db.Query("SELECT " + playerColumns + " FROM players WHERE parent_email <> '' ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// AddCurrency adds coins and experience to a player's totals
func (r *PlayerRepository) AddCurrency(playerID int64, coins, experience int) error {
	query := `
		UPDATE players
		SET coins = coins + ?, experience = experience + ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	if _, err := r.db.Exec(query, coins, experience, playerID); err != nil {
		return fmt.Errorf("failed to add currency: %w", err)
	}
	return nil
}

// UpdateLoginStreak stores the current streak and the day it was computed for
func (r *PlayerRepository) UpdateLoginStreak(playerID int64, streak int, day string) error {
	query := "UPDATE players SET login_streak = ?, last_login_day = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, streak, day, playerID); err != nil {
		return fmt.Errorf("failed to update login streak: %w", err)
	}
	return nil
}

// SetParentPIN stores the bcrypt hash of the parent PIN
func (r *PlayerRepository) SetParentPIN(playerID int64, pinHash string) error {
	query := "UPDATE players SET parent_pin = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, pinHash, playerID); err != nil {
		return fmt.Errorf("failed to set parent PIN: %w", err)
	}
	return nil
}

// SetParentEmail changes where weekly reports are sent
func (r *PlayerRepository) SetParentEmail(playerID int64, email string) error {
	query := "UPDATE players SET parent_email = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, email, playerID); err != nil {
		return fmt.Errorf("failed to set parent email: %w", err)
	}
	return nil
}

// RestorePlayer inserts a player with all its stored fields, used by backup import
func (r *PlayerRepository) RestorePlayer(p models.Player) (int64, error) {
	query := `
		INSERT INTO players (name, handle, parent_email, parent_pin, coins, experience,
			login_streak, last_login_day, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, p.Name, p.Handle, p.ParentEmail, p.ParentPIN, p.Coins,
		p.Experience, p.LoginStreak, p.LastLoginDay, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to restore player: %w", err)
	}
	return id, nil
}

// DeletePlayer removes a player and, through cascades, all their progress
func (r *PlayerRepository) DeletePlayer(playerID int64) error {
	if _, err := r.db.Exec("DELETE FROM players WHERE id = ?", playerID); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	p := &models.Player{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Handle,
		&p.ParentEmail,
		&p.ParentPIN,
		&p.Coins,
		&p.Experience,
		&p.LoginStreak,
		&p.LastLoginDay,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
