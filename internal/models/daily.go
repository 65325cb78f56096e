package models

import "time"

// MissionType identifies what a daily mission counts
type MissionType string

const (
	MissionPlayGame      MissionType = "play_game"
	MissionClearStage    MissionType = "clear_stage"
	MissionFeedCharacter MissionType = "feed_character"
	MissionGetCharacter  MissionType = "get_character"
)

// Mission is one daily mission for a player
type Mission struct {
	ID           int64       `json:"id"`
	PlayerID     int64       `json:"player_id"`
	Date         string      `json:"date"` // YYYY-MM-DD
	Type         MissionType `json:"type"`
	Title        string      `json:"title"`
	TargetCount  int         `json:"target_count"`
	CurrentCount int         `json:"current_count"`
	RewardCoins  int         `json:"reward_coins"`
	RewardFoodID string      `json:"reward_food_id,omitempty"`
	Claimed      bool        `json:"claimed"`
}

// MissionStatus is the derived completion state of a mission
type MissionStatus struct {
	Completed bool `json:"completed"`
	Claimable bool `json:"claimable"`
}

// FoodRewardLine is a food item handed out by the daily ledger
type FoodRewardLine struct {
	FoodID string `json:"food_id"`
	Name   string `json:"name"`
	Emoji  string `json:"emoji"`
	Amount int    `json:"amount"`
}

// StreakLedgerEntry is the outcome of a daily login check
type StreakLedgerEntry struct {
	LoginStreakDays  int             `json:"login_streak"`
	IsNewCalendarDay bool            `json:"is_new_day"`
	BonusCoins       int             `json:"bonus_coins"`
	BonusFood        *FoodRewardLine `json:"bonus_food,omitempty"`
}

// LoginRecord is the persisted login ledger row for one player and day
type LoginRecord struct {
	PlayerID   int64
	Day        string
	Streak     int
	BonusCoins int
	CreatedAt  time.Time
}
