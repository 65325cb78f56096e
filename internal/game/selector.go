// Package game implements the reading and writing session state machines.
//
// Every operation takes a state value and returns a new one. Calls that are
// not valid for the current state return the input unchanged.
package game

import (
	"kanjiquest/internal/models"
	"kanjiquest/internal/random"
)

// PromptSource supplies the prompts of a difficulty tier
type PromptSource interface {
	PromptsForTier(tier int) []models.Prompt
}

// ChoiceSet is the shuffled list of answers shown for one prompt
type ChoiceSet []string

// Contains reports whether answer is one of the choices
func (c ChoiceSet) Contains(answer string) bool {
	for _, choice := range c {
		if choice == answer {
			return true
		}
	}
	return false
}

// Selector picks prompts and builds their choice sets
type Selector struct {
	prompts PromptSource
	rng     random.Source
}

// NewSelector creates a selector drawing from prompts with rng
func NewSelector(prompts PromptSource, rng random.Source) *Selector {
	return &Selector{prompts: prompts, rng: rng}
}

// Choices returns the answer and distractors of p in a fresh random order
func (s *Selector) Choices(p models.Prompt) ChoiceSet {
	choices := make(ChoiceSet, 0, len(p.Distractors)+1)
	choices = append(choices, p.Answer)
	choices = append(choices, p.Distractors...)
	random.Shuffle(s.rng, len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

// Deck returns up to n distinct prompts of tier in random order. A
// non-positive n returns the whole tier.
func (s *Selector) Deck(tier, n int) []models.Prompt {
	pool := append([]models.Prompt(nil), s.prompts.PromptsForTier(tier)...)
	random.Shuffle(s.rng, len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n > 0 && n < len(pool) {
		pool = pool[:n]
	}
	return pool
}

// DeckAfter deals a deck like Deck but never opens with the prompt last, so
// the same glyph is not shown twice in a row when a round deals again.
func (s *Selector) DeckAfter(tier, n int, last string) []models.Prompt {
	pool := s.Deck(tier, 0)
	if len(pool) > 1 && pool[0].ID == last {
		pool[0], pool[len(pool)-1] = pool[len(pool)-1], pool[0]
	}
	if n > 0 && n < len(pool) {
		pool = pool[:n]
	}
	return pool
}
