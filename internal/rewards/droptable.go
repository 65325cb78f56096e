package rewards

import "kanjiquest/internal/models"

// DropRate is one row of the drop table
type DropRate struct {
	CharacterDropRate    float64 `mapstructure:"character_drop_rate"` // percent
	FoodDropRate         float64 `mapstructure:"food_drop_rate"`      // percent
	CoinMultiplier       float64 `mapstructure:"coin_multiplier"`
	ExperienceMultiplier float64 `mapstructure:"experience_multiplier"`
}

// DropTable maps a rank to its drop parameters
type DropTable map[models.Rank]DropRate

// Row returns the row for rank, falling back to the D row
func (t DropTable) Row(rank models.Rank) DropRate {
	if row, ok := t[rank]; ok {
		return row
	}
	return t[models.RankD]
}

// RarityWeights are the relative odds of each rarity in a weighted roll
type RarityWeights map[models.Rarity]float64

// Config holds every tunable number of the reward engine
type Config struct {
	Drops             DropTable                     `mapstructure:"drops"`
	CharacterWeights  map[models.Rank]RarityWeights `mapstructure:"character_weights"`
	FoodWeights       map[models.Rank]RarityWeights `mapstructure:"food_weights"`
	FoodAmounts       map[models.Rank]int           `mapstructure:"food_amounts"`
	ClearedExperience int                           `mapstructure:"cleared_experience"`
	FailedExperience  int                           `mapstructure:"failed_experience"`
}

// DefaultConfig returns the stock reward tuning
func DefaultConfig() Config {
	return Config{
		Drops: DropTable{
			models.RankS: {CharacterDropRate: 80, FoodDropRate: 100, CoinMultiplier: 2.0, ExperienceMultiplier: 2.0},
			models.RankA: {CharacterDropRate: 60, FoodDropRate: 90, CoinMultiplier: 1.5, ExperienceMultiplier: 1.5},
			models.RankB: {CharacterDropRate: 40, FoodDropRate: 80, CoinMultiplier: 1.2, ExperienceMultiplier: 1.2},
			models.RankC: {CharacterDropRate: 20, FoodDropRate: 60, CoinMultiplier: 1.0, ExperienceMultiplier: 1.0},
			models.RankD: {CharacterDropRate: 10, FoodDropRate: 40, CoinMultiplier: 0.8, ExperienceMultiplier: 0.8},
		},
		CharacterWeights: map[models.Rank]RarityWeights{
			models.RankS: {models.RarityLegendary: 5, models.RarityEpic: 15, models.RarityRare: 30, models.RarityUncommon: 30, models.RarityCommon: 20},
			models.RankA: {models.RarityLegendary: 2, models.RarityEpic: 10, models.RarityRare: 25, models.RarityUncommon: 33, models.RarityCommon: 30},
			models.RankB: {models.RarityLegendary: 1, models.RarityEpic: 5, models.RarityRare: 19, models.RarityUncommon: 35, models.RarityCommon: 40},
			models.RankC: {models.RarityLegendary: 0, models.RarityEpic: 2, models.RarityRare: 13, models.RarityUncommon: 35, models.RarityCommon: 50},
			models.RankD: {models.RarityLegendary: 0, models.RarityEpic: 0, models.RarityRare: 10, models.RarityUncommon: 30, models.RarityCommon: 60},
		},
		FoodWeights: map[models.Rank]RarityWeights{
			models.RankS: {models.RarityRare: 40, models.RarityUncommon: 40, models.RarityCommon: 20},
			models.RankA: {models.RarityRare: 25, models.RarityUncommon: 45, models.RarityCommon: 30},
			models.RankB: {models.RarityRare: 15, models.RarityUncommon: 45, models.RarityCommon: 40},
			models.RankC: {models.RarityRare: 5, models.RarityUncommon: 35, models.RarityCommon: 60},
			models.RankD: {models.RarityRare: 0, models.RarityUncommon: 30, models.RarityCommon: 70},
		},
		FoodAmounts: map[models.Rank]int{
			models.RankS: 3,
			models.RankA: 2,
		},
		ClearedExperience: 100,
		FailedExperience:  50,
	}
}
