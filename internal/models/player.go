package models

import "time"

// Player represents a child profile
type Player struct {
	ID           int64
	Name         string
	Handle       string
	ParentEmail  string
	ParentPIN    string // bcrypt hash, empty until the parent sets one
	Coins        int
	Experience   int
	LoginStreak  int
	LastLoginDay string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasParentPIN reports whether the parent gate is configured
func (p *Player) HasParentPIN() bool {
	return p.ParentPIN != ""
}

// InventoryItem is a stack of food items owned by a player
type InventoryItem struct {
	PlayerID int64  `json:"-"`
	FoodID   string `json:"food_id"`
	Amount   int    `json:"amount"`
}

// OwnedCharacter is a collected character and its growth
type OwnedCharacter struct {
	PlayerID    int64     `json:"-"`
	CharacterID string    `json:"character_id"`
	Level       int       `json:"level"`
	Experience  int       `json:"experience"`
	Friendship  int       `json:"friendship"`
	ObtainedAt  time.Time `json:"obtained_at"`
}

// Inventory combines a player's currency and collections
type Inventory struct {
	Coins      int              `json:"coins"`
	Experience int              `json:"experience"`
	Foods      []InventoryItem  `json:"foods"`
	Characters []OwnedCharacter `json:"characters"`
}
