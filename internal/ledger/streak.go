// Package ledger holds the daily engagement rules: login streak bonuses and
// mission progress. It only decides; storing the outcome is up to the caller.
package ledger

import (
	"kanjiquest/internal/catalog"
	"kanjiquest/internal/models"
)

const (
	coinsPerStreakDay = 10
	maxStreakCoins    = 100
	bonusFoodEvery    = 7

	// BonusFoodID is the food handed out on every seventh consecutive day
	BonusFoodID = "food_010"
)

// ComputeLoginBonus decides the bonus for a login.
//
// A repeat visit on the same calendar day keeps the streak and grants
// nothing. On a new day the streak grows by one when continued is true and
// restarts at 1 otherwise; whether yesterday was played is the caller's
// call.
func ComputeLoginBonus(previousStreak int, isNewCalendarDay, continued bool) models.StreakLedgerEntry {
	if !isNewCalendarDay {
		streak := previousStreak
		if streak < 1 {
			streak = 1
		}
		return models.StreakLedgerEntry{LoginStreakDays: streak}
	}

	streak := 1
	if continued && previousStreak > 0 {
		streak = previousStreak + 1
	}

	entry := models.StreakLedgerEntry{
		LoginStreakDays:  streak,
		IsNewCalendarDay: true,
		BonusCoins:       min(streak*coinsPerStreakDay, maxStreakCoins),
	}
	if streak%bonusFoodEvery == 0 {
		entry.BonusFood = bonusFood()
	}
	return entry
}

func bonusFood() *models.FoodRewardLine {
	line := &models.FoodRewardLine{FoodID: BonusFoodID, Amount: 1}
	if f, ok := catalog.Default().Food(BonusFoodID); ok {
		line.Name = f.Name
		line.Emoji = f.Emoji
	}
	return line
}
