package repository

import (
	"database/sql"
	"fmt"
	"time"

	"kanjiquest/internal/database"
	"kanjiquest/internal/models"
)

// InventoryRepository handles a player's food stock and collected characters
type InventoryRepository struct {
	db database.DBTX
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db database.DBTX) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *InventoryRepository) WithTx(tx *database.Tx) *InventoryRepository {
	return &InventoryRepository{db: tx}
}

// AddFood increases the stock of a food. The row is created empty first so
// concurrent first grants both land on the same row.
func (r *InventoryRepository) AddFood(playerID int64, foodID string, amount int) error {
	if amount <= 0 {
		return nil
	}

	query := r.db.GetDialect().InsertIgnore("inventory", "player_id", "food_id", "amount")
	if _, err := r.db.Exec(query, playerID, foodID, 0); err != nil {
		return fmt.Errorf("failed to create inventory row: %w", err)
	}

	res, err := r.db.Exec("UPDATE inventory SET amount = amount + ? WHERE player_id = ? AND food_id = ?", amount, playerID, foodID)
	if err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check inventory update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("inventory row missing for food %s", foodID)
	}
	return nil
}

// ConsumeFood removes amount of a food. The update only applies when the
// stock covers it, so concurrent feeds cannot go negative.
func (r *InventoryRepository) ConsumeFood(playerID int64, foodID string, amount int) error {
	query := "UPDATE inventory SET amount = amount - ? WHERE player_id = ? AND food_id = ? AND amount >= ?"
	res, err := r.db.Exec(query, amount, playerID, foodID, amount)
	if err != nil {
		return fmt.Errorf("failed to consume food: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check consumed food: %w", err)
	}
	if n == 0 {
		return ErrInsufficientFood
	}
	return nil
}

// ListFoods returns the foods a player holds, skipping empty stacks
func (r *InventoryRepository) ListFoods(playerID int64) ([]models.InventoryItem, error) {
	rows, err := r.db.Query("SELECT player_id, food_id, amount FROM inventory WHERE player_id = ? AND amount > 0 ORDER BY food_id ASC", playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.PlayerID, &item.FoodID, &item.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan inventory: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AddCharacter records a collected character. It reports false when the
// player already owned it.
func (r *InventoryRepository) AddCharacter(playerID int64, characterID string) (bool, error) {
	query := r.db.GetDialect().InsertIgnore("player_characters", "player_id", "character_id")
	res, err := r.db.Exec(query, playerID, characterID)
	if err != nil {
		return false, fmt.Errorf("failed to add character: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check added character: %w", err)
	}
	return n > 0, nil
}

// RestoreCharacter inserts an owned character with its growth, used by backup import
func (r *InventoryRepository) RestoreCharacter(c models.OwnedCharacter) error {
	query := `
		INSERT INTO player_characters (player_id, character_id, level, experience, friendship, obtained_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, c.PlayerID, c.CharacterID, c.Level, c.Experience, c.Friendship, c.ObtainedAt); err != nil {
		return fmt.Errorf("failed to restore character: %w", err)
	}
	return nil
}

// GetCharacter returns one owned character. A character not owned yields nil, nil.
func (r *InventoryRepository) GetCharacter(playerID int64, characterID string) (*models.OwnedCharacter, error) {
	query := `
		SELECT player_id, character_id, level, experience, friendship, obtained_at
		FROM player_characters
		WHERE player_id = ? AND character_id = ?
	`
	c := &models.OwnedCharacter{}
	err := r.db.QueryRow(query, playerID, characterID).Scan(
		&c.PlayerID, &c.CharacterID, &c.Level, &c.Experience, &c.Friendship, &c.ObtainedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return c, nil
}

// ListCharacters returns every character a player has collected, oldest first
func (r *InventoryRepository) ListCharacters(playerID int64) ([]models.OwnedCharacter, error) {
	query := `
		SELECT player_id, character_id, level, experience, friendship, obtained_at
		FROM player_characters
		WHERE player_id = ?
		ORDER BY obtained_at ASC, character_id ASC
	`
	rows, err := r.db.Query(query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query characters: %w", err)
	}
	defer rows.Close()

	var chars []models.OwnedCharacter
	for rows.Next() {
		var c models.OwnedCharacter
		if err := rows.Scan(&c.PlayerID, &c.CharacterID, &c.Level, &c.Experience, &c.Friendship, &c.ObtainedAt); err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		chars = append(chars, c)
	}
	return chars, rows.Err()
}

// CountCharacters returns how many distinct characters a player owns
func (r *InventoryRepository) CountCharacters(playerID int64) (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM player_characters WHERE player_id = ?", playerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count characters: %w", err)
	}
	return count, nil
}

// UpdateCharacterGrowth stores a character's level, experience and friendship
func (r *InventoryRepository) UpdateCharacterGrowth(c models.OwnedCharacter) error {
	query := `
		UPDATE player_characters
		SET level = ?, experience = ?, friendship = ?
		WHERE player_id = ? AND character_id = ?
	`
	res, err := r.db.Exec(query, c.Level, c.Experience, c.Friendship, c.PlayerID, c.CharacterID)
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCharacterNotOwned
	}
	return nil
}

// ReplaceCharacter swaps an owned character for its evolved form, keeping its growth
func (r *InventoryRepository) ReplaceCharacter(playerID int64, fromID, toID string, obtainedAt time.Time) error {
	query := "UPDATE player_characters SET character_id = ?, obtained_at = ? WHERE player_id = ? AND character_id = ?"
	res, err := r.db.Exec(query, toID, obtainedAt, playerID, fromID)
	if err != nil {
		return fmt.Errorf("failed to evolve character: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCharacterNotOwned
	}
	return nil
}
