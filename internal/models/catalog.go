package models

// Rarity classifies collectible rewards from common to legendary
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// CharacterRarities lists character rarities from rarest to most common.
// Weighted rolls walk this order.
var CharacterRarities = []Rarity{RarityLegendary, RarityEpic, RarityRare, RarityUncommon, RarityCommon}

// FoodRarities lists food rarities from rarest to most common
var FoodRarities = []Rarity{RarityRare, RarityUncommon, RarityCommon}

// Prompt is a single reading-mode question: a kanji and its reading
type Prompt struct {
	ID          string
	Glyph       string
	Answer      string
	Distractors []string
	Meaning     string
	Grade       int
}

// Stroke is one stroke of a character as an SVG path
type Stroke struct {
	Path       string
	DurationMs int
}

// StrokeDefinition describes how a character is written
type StrokeDefinition struct {
	ID      string
	Glyph   string
	Reading string
	Meaning string
	Grade   int
	Strokes []Stroke
}

// StrokeCount returns the expected number of strokes
func (s StrokeDefinition) StrokeCount() int {
	return len(s.Strokes)
}

// StrokeSet is an ordered group of characters practiced together in writing mode
type StrokeSet struct {
	ID           string
	Name         string
	Description  string
	CharacterIDs []string
	Difficulty   string
}

// StageSpeed is the initial fall speed preset of a reading stage
type StageSpeed string

const (
	SpeedSlow   StageSpeed = "slow"
	SpeedNormal StageSpeed = "normal"
	SpeedFast   StageSpeed = "fast"
)

// Stage is a reading-mode level: one grade at one speed
type Stage struct {
	ID          string
	Name        string
	Grade       int
	Speed       StageSpeed
	FallSeconds float64
}

// CharacterDescriptor is a collectible companion character
type CharacterDescriptor struct {
	ID             string
	Name           string
	Description    string
	Emoji          string
	Rarity         Rarity
	Type           string
	EvolutionStage int
	EvolutionFrom  string
	EvolutionTo    string
	EvolveLevel    int
	EvolveFriend   int
}

// FoodDescriptor is a food item that can be fed to a character
type FoodDescriptor struct {
	ID         string
	Name       string
	Emoji      string
	Experience int
	Friendship int
	Rarity     Rarity
}
