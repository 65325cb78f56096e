package ledger

import (
	"errors"

	"kanjiquest/internal/models"
)

var (
	ErrAlreadyClaimed = errors.New("mission reward already claimed")
	ErrNotCompleted   = errors.New("mission not completed")
)

// MissionProgress derives whether a mission is done and can be claimed
func MissionProgress(m models.Mission) models.MissionStatus {
	completed := m.CurrentCount >= m.TargetCount
	return models.MissionStatus{
		Completed: completed,
		Claimable: completed && !m.Claimed,
	}
}

// Claim marks a completed mission as claimed. The input is not modified.
func Claim(m models.Mission) (models.Mission, error) {
	if m.Claimed {
		return m, ErrAlreadyClaimed
	}
	if !MissionProgress(m).Completed {
		return m, ErrNotCompleted
	}
	m.Claimed = true
	return m, nil
}

// Increment adds progress to a mission. Claimed missions and non-positive
// amounts leave it unchanged.
func Increment(m models.Mission, by int) models.Mission {
	if m.Claimed || by <= 0 {
		return m
	}
	m.CurrentCount += by
	return m
}

// DefaultDailyMissions returns the missions every player gets each day
func DefaultDailyMissions(date string) []models.Mission {
	return []models.Mission{
		{
			Date:        date,
			Type:        models.MissionPlayGame,
			Title:       "ゲームを 3かい あそぼう",
			TargetCount: 3,
			RewardCoins: 50,
		},
		{
			Date:        date,
			Type:        models.MissionClearStage,
			Title:       "ステージを 1つ クリアしよう",
			TargetCount: 1,
			RewardCoins: 100,
		},
		{
			Date:         date,
			Type:         models.MissionFeedCharacter,
			Title:        "キャラクターに 2かい ごはんを あげよう",
			TargetCount:  2,
			RewardCoins:  30,
			RewardFoodID: "food_006",
		},
	}
}
