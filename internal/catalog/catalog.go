// Package catalog holds the static game data: reading prompts, stroke
// definitions, collectible characters, foods and stages. Everything is built
// once at package init and never mutated afterwards.
package catalog

import (
	"fmt"
	"sort"

	"kanjiquest/internal/models"
)

// Provider is the read-only lookup surface used by the game engine and services
type Provider interface {
	PromptsForTier(tier int) []models.Prompt
	CharactersForSet(setID string) []models.StrokeDefinition
	CharactersByRarity(rarity models.Rarity) []models.CharacterDescriptor
	FoodByRarity(rarity models.Rarity) []models.FoodDescriptor

	Character(id string) (models.CharacterDescriptor, bool)
	Food(id string) (models.FoodDescriptor, bool)
	Stage(id string) (models.Stage, bool)
	Stages() []models.Stage
	StrokeSet(id string) (models.StrokeSet, bool)
	StrokeSets() []models.StrokeSet
	Characters() []models.CharacterDescriptor
	EvolutionChain(id string) []models.CharacterDescriptor
	CollectionRate(owned int) int
}

// Grades is the range of difficulty tiers
const (
	MinGrade = 1
	MaxGrade = 6
)

// Fall durations per stage speed, in seconds
var speedFallSeconds = map[models.StageSpeed]float64{
	models.SpeedSlow:   8,
	models.SpeedNormal: 5,
	models.SpeedFast:   3,
}

var speedLabels = map[models.StageSpeed]string{
	models.SpeedSlow:   "ゆっくり",
	models.SpeedNormal: "ふつう",
	models.SpeedFast:   "はやい",
}

// Static is the built-in catalog
type Static struct {
	promptsByTier   map[int][]models.Prompt
	strokesByID     map[string]models.StrokeDefinition
	setsByID        map[string]models.StrokeSet
	characterByID   map[string]models.CharacterDescriptor
	characterByRank map[models.Rarity][]models.CharacterDescriptor
	foodByID        map[string]models.FoodDescriptor
	foodByRarity    map[models.Rarity][]models.FoodDescriptor
	stages          []models.Stage
	stageByID       map[string]models.Stage
}

var defaultCatalog = build()

// Default returns the shared built-in catalog
func Default() *Static {
	return defaultCatalog
}

func build() *Static {
	s := &Static{
		promptsByTier:   make(map[int][]models.Prompt),
		strokesByID:     make(map[string]models.StrokeDefinition),
		setsByID:        make(map[string]models.StrokeSet),
		characterByID:   make(map[string]models.CharacterDescriptor),
		characterByRank: make(map[models.Rarity][]models.CharacterDescriptor),
		foodByID:        make(map[string]models.FoodDescriptor),
		foodByRarity:    make(map[models.Rarity][]models.FoodDescriptor),
		stageByID:       make(map[string]models.Stage),
	}

	for _, p := range prompts {
		s.promptsByTier[p.Grade] = append(s.promptsByTier[p.Grade], p)
	}
	for _, d := range strokeDefinitions {
		s.strokesByID[d.ID] = d
	}
	for _, set := range strokeSets {
		s.setsByID[set.ID] = set
	}
	for _, c := range characters {
		s.characterByID[c.ID] = c
		s.characterByRank[c.Rarity] = append(s.characterByRank[c.Rarity], c)
	}
	for _, f := range foods {
		s.foodByID[f.ID] = f
		s.foodByRarity[f.Rarity] = append(s.foodByRarity[f.Rarity], f)
	}

	for grade := MinGrade; grade <= MaxGrade; grade++ {
		for _, speed := range []models.StageSpeed{models.SpeedSlow, models.SpeedNormal, models.SpeedFast} {
			stage := models.Stage{
				ID:          StageID(grade, speed),
				Name:        fmt.Sprintf("%dねんせい（%s）", grade, speedLabels[speed]),
				Grade:       grade,
				Speed:       speed,
				FallSeconds: speedFallSeconds[speed],
			}
			s.stages = append(s.stages, stage)
			s.stageByID[stage.ID] = stage
		}
	}

	return s
}

// StageID formats the identifier of a reading stage
func StageID(grade int, speed models.StageSpeed) string {
	return fmt.Sprintf("grade_%d_%s", grade, speed)
}

// PromptsForTier returns the reading prompts of a grade. Unknown grades yield nil.
func (s *Static) PromptsForTier(tier int) []models.Prompt {
	return clonePrompts(s.promptsByTier[tier])
}

// CharactersForSet resolves a stroke set into its ordered stroke definitions
func (s *Static) CharactersForSet(setID string) []models.StrokeDefinition {
	set, ok := s.setsByID[setID]
	if !ok {
		return nil
	}
	defs := make([]models.StrokeDefinition, 0, len(set.CharacterIDs))
	for _, id := range set.CharacterIDs {
		if d, ok := s.strokesByID[id]; ok {
			defs = append(defs, d)
		}
	}
	return defs
}

func (s *Static) CharactersByRarity(rarity models.Rarity) []models.CharacterDescriptor {
	return append([]models.CharacterDescriptor(nil), s.characterByRank[rarity]...)
}

func (s *Static) FoodByRarity(rarity models.Rarity) []models.FoodDescriptor {
	return append([]models.FoodDescriptor(nil), s.foodByRarity[rarity]...)
}

func (s *Static) Character(id string) (models.CharacterDescriptor, bool) {
	c, ok := s.characterByID[id]
	return c, ok
}

func (s *Static) Food(id string) (models.FoodDescriptor, bool) {
	f, ok := s.foodByID[id]
	return f, ok
}

func (s *Static) Stage(id string) (models.Stage, bool) {
	st, ok := s.stageByID[id]
	return st, ok
}

// Stages returns all stages ordered by grade, then slow to fast
func (s *Static) Stages() []models.Stage {
	return append([]models.Stage(nil), s.stages...)
}

func (s *Static) StrokeSet(id string) (models.StrokeSet, bool) {
	set, ok := s.setsByID[id]
	return set, ok
}

func (s *Static) StrokeSets() []models.StrokeSet {
	sets := make([]models.StrokeSet, 0, len(s.setsByID))
	for _, set := range s.setsByID {
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].ID < sets[j].ID })
	return sets
}

// Characters returns every collectible character in catalog order
func (s *Static) Characters() []models.CharacterDescriptor {
	return append([]models.CharacterDescriptor(nil), characters...)
}

// EvolutionChain walks back to the first form of id and then forward to its
// final form. An unknown id yields nil.
func (s *Static) EvolutionChain(id string) []models.CharacterDescriptor {
	c, ok := s.characterByID[id]
	if !ok {
		return nil
	}

	seen := map[string]bool{c.ID: true}
	for c.EvolutionFrom != "" {
		prev, ok := s.characterByID[c.EvolutionFrom]
		if !ok || seen[prev.ID] {
			break
		}
		seen[prev.ID] = true
		c = prev
	}

	chain := []models.CharacterDescriptor{c}
	visited := map[string]bool{c.ID: true}
	for c.EvolutionTo != "" {
		next, ok := s.characterByID[c.EvolutionTo]
		if !ok || visited[next.ID] {
			break
		}
		visited[next.ID] = true
		chain = append(chain, next)
		c = next
	}
	return chain
}

// CollectionRate is the share of the character catalog owned, as a rounded percentage
func (s *Static) CollectionRate(owned int) int {
	total := len(s.characterByID)
	if total == 0 || owned <= 0 {
		return 0
	}
	if owned > total {
		owned = total
	}
	return (owned*100 + total/2) / total
}

func clonePrompts(in []models.Prompt) []models.Prompt {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.Prompt, len(in))
	copy(out, in)
	return out
}
