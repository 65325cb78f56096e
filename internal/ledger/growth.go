package ledger

import "kanjiquest/internal/models"

const (
	ExperiencePerLevel = 100
	MaxFriendship      = 100
)

// FeedOutcome describes what one feeding did to a character
type FeedOutcome struct {
	ExperienceGained int  `json:"experience_gained"`
	FriendshipGained int  `json:"friendship_gained"`
	LeveledUp        bool `json:"leveled_up"`
	CanEvolve        bool `json:"can_evolve"`
}

// LevelFor returns the level reached with exp experience. Levels start at 1
// and go up every ExperiencePerLevel points.
func LevelFor(exp int) int {
	if exp < 0 {
		exp = 0
	}
	return 1 + exp/ExperiencePerLevel
}

// Feed applies a food to an owned character. The input is not modified.
func Feed(c models.OwnedCharacter, food models.FoodDescriptor, desc models.CharacterDescriptor) (models.OwnedCharacter, FeedOutcome) {
	before := c.Level

	c.Experience += food.Experience
	c.Level = LevelFor(c.Experience)

	friendship := min(c.Friendship+food.Friendship, MaxFriendship)
	out := FeedOutcome{
		ExperienceGained: food.Experience,
		FriendshipGained: friendship - c.Friendship,
		LeveledUp:        c.Level > before,
	}
	c.Friendship = friendship
	out.CanEvolve = CanEvolve(c, desc)
	return c, out
}

// CanEvolve reports whether c meets the level and friendship its form asks for
func CanEvolve(c models.OwnedCharacter, desc models.CharacterDescriptor) bool {
	if desc.EvolutionTo == "" {
		return false
	}
	return c.Level >= desc.EvolveLevel && c.Friendship >= desc.EvolveFriend
}
