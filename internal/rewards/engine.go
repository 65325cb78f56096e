// Package rewards turns a finished session into coins, experience and
// randomly dropped characters and food.
package rewards

import (
	"math"

	"kanjiquest/internal/game"
	"kanjiquest/internal/models"
	"kanjiquest/internal/random"
)

const (
	coinID       = "coin"
	experienceID = "experience"
)

// Catalog is the part of the game catalog the engine draws items from
type Catalog interface {
	CharactersByRarity(rarity models.Rarity) []models.CharacterDescriptor
	FoodByRarity(rarity models.Rarity) []models.FoodDescriptor
}

// Engine resolves reward bundles. It is not safe for concurrent use unless
// its random source is.
type Engine struct {
	catalog Catalog
	rng     random.Source
	cfg     Config
}

// NewEngine creates a reward engine
func NewEngine(catalog Catalog, rng random.Source, cfg Config) *Engine {
	return &Engine{catalog: catalog, rng: rng, cfg: cfg}
}

// Resolve computes the rewards for summary. The bundle always holds one coin
// line and one experience line, followed by at most one character and one
// food line.
func (e *Engine) Resolve(summary models.SessionSummary) models.RewardBundle {
	row := e.cfg.Drops.Row(summary.Rank)

	bundle := models.RewardBundle{
		{Kind: models.RewardCoin, ID: coinID, DisplayName: "コイン", Emoji: "🪙", Amount: e.coins(summary.Score, row)},
		{Kind: models.RewardExperience, ID: experienceID, DisplayName: "けいけんち", Emoji: "⭐", Amount: e.experience(summary.Cleared, row)},
	}

	if summary.Cleared {
		if line, ok := e.dropCharacter(summary.Rank, row); ok {
			bundle = append(bundle, line)
		}
	}
	if line, ok := e.dropFood(summary.Rank, row); ok {
		bundle = append(bundle, line)
	}

	return bundle
}

func (e *Engine) coins(score int, row DropRate) int {
	if score < 0 {
		score = 0
	}
	return floorTimes(score/10, row.CoinMultiplier)
}

func (e *Engine) experience(cleared bool, row DropRate) int {
	base := e.cfg.FailedExperience
	if cleared {
		base = e.cfg.ClearedExperience
	}
	return floorTimes(base, row.ExperienceMultiplier)
}

func (e *Engine) dropCharacter(rank models.Rank, row DropRate) (models.RewardLine, bool) {
	if !e.roll(row.CharacterDropRate) {
		return models.RewardLine{}, false
	}

	rarity, ok := game.WeightedPick(e.rng, weighted(models.CharacterRarities, e.cfg.CharacterWeights[rank]))
	if !ok {
		return models.RewardLine{}, false
	}
	c, ok := game.UniformPick(e.rng, e.catalog.CharactersByRarity(rarity))
	if !ok {
		return models.RewardLine{}, false
	}

	return models.RewardLine{
		Kind:        models.RewardCharacter,
		ID:          c.ID,
		DisplayName: c.Name,
		Emoji:       c.Emoji,
		Amount:      1,
		Rarity:      c.Rarity,
	}, true
}

func (e *Engine) dropFood(rank models.Rank, row DropRate) (models.RewardLine, bool) {
	if !e.roll(row.FoodDropRate) {
		return models.RewardLine{}, false
	}

	rarity, ok := game.WeightedPick(e.rng, weighted(models.FoodRarities, e.cfg.FoodWeights[rank]))
	if !ok {
		return models.RewardLine{}, false
	}
	f, ok := game.UniformPick(e.rng, e.catalog.FoodByRarity(rarity))
	if !ok {
		return models.RewardLine{}, false
	}

	amount := e.cfg.FoodAmounts[rank]
	if amount <= 0 {
		amount = 1
	}

	return models.RewardLine{
		Kind:        models.RewardFood,
		ID:          f.ID,
		DisplayName: f.Name,
		Emoji:       f.Emoji,
		Amount:      amount,
		Rarity:      f.Rarity,
	}, true
}

// roll is a Bernoulli trial with the given success percentage
func (e *Engine) roll(percent float64) bool {
	return e.rng.Float64()*100 < percent
}

// weighted lays weights out in the fixed rarity order
func weighted(order []models.Rarity, weights RarityWeights) []game.Weighted[models.Rarity] {
	opts := make([]game.Weighted[models.Rarity], 0, len(order))
	for _, r := range order {
		opts = append(opts, game.Weighted[models.Rarity]{Item: r, Weight: weights[r]})
	}
	return opts
}

// floorTimes multiplies and rounds down, absorbing float error such as 10*1.2
func floorTimes(n int, multiplier float64) int {
	v := math.Floor(float64(n)*multiplier + 1e-9)
	if v < 0 {
		return 0
	}
	return int(v)
}
