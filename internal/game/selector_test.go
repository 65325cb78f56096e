package game

import (
	"testing"

	"kanjiquest/internal/models"
	"kanjiquest/internal/random"
)

// fakePrompts serves a fixed prompt list per tier
type fakePrompts map[int][]models.Prompt

func (f fakePrompts) PromptsForTier(tier int) []models.Prompt {
	return append([]models.Prompt(nil), f[tier]...)
}

func testPrompts() fakePrompts {
	return fakePrompts{
		1: {
			{ID: "p1", Glyph: "一", Answer: "いち", Distractors: []string{"に", "さん"}, Grade: 1},
			{ID: "p2", Glyph: "二", Answer: "に", Distractors: []string{"いち", "さん"}, Grade: 1},
			{ID: "p3", Glyph: "三", Answer: "さん", Distractors: []string{"に", "し"}, Grade: 1},
		},
		2: {
			{ID: "solo", Glyph: "春", Answer: "はる", Distractors: []string{"なつ", "あき"}, Grade: 2},
		},
	}
}

func TestSelectorDeckAfter(t *testing.T) {
	tests := []struct {
		name    string
		tier    int
		n       int
		last    string
		wantLen int
	}{
		{name: "never opens with the last prompt", tier: 1, n: 3, last: "p1", wantLen: 3},
		{name: "trims to n", tier: 1, n: 2, last: "p2", wantLen: 2},
		{name: "non-positive n deals the whole tier", tier: 1, n: 0, last: "p3", wantLen: 3},
		{name: "single prompt repeats", tier: 2, n: 5, last: "solo", wantLen: 1},
		{name: "empty tier", tier: 9, n: 3, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 30; seed++ {
				sel := NewSelector(testPrompts(), random.NewSeeded(seed))
				deck := sel.DeckAfter(tt.tier, tt.n, tt.last)
				if len(deck) != tt.wantLen {
					t.Fatalf("seed %d: len = %d, want %d", seed, len(deck), tt.wantLen)
				}
				if len(deck) > 0 && len(testPrompts()[tt.tier]) > 1 && deck[0].ID == tt.last {
					t.Fatalf("seed %d: deck opens with %s", seed, tt.last)
				}
			}
		})
	}
}

func TestSelectorChoices(t *testing.T) {
	sel := NewSelector(testPrompts(), random.NewSeeded(3))
	p := testPrompts()[1][0]

	for i := 0; i < 10; i++ {
		choices := sel.Choices(p)
		if len(choices) != 3 {
			t.Fatalf("Choices() len = %d, want 3", len(choices))
		}
		if !choices.Contains(p.Answer) {
			t.Errorf("choices %v missing answer %q", choices, p.Answer)
		}
		for _, d := range p.Distractors {
			if !choices.Contains(d) {
				t.Errorf("choices %v missing distractor %q", choices, d)
			}
		}
	}
}

func TestSelectorChoicesFreshSlice(t *testing.T) {
	sel := NewSelector(testPrompts(), random.NewSeeded(3))
	p := testPrompts()[1][0]

	a := sel.Choices(p)
	b := sel.Choices(p)
	a[0] = "changed"
	if b.Contains("changed") {
		t.Error("choice sets share storage")
	}
}

func TestSelectorDeck(t *testing.T) {
	sel := NewSelector(testPrompts(), random.NewSeeded(5))

	deck := sel.Deck(1, 2)
	if len(deck) != 2 {
		t.Fatalf("Deck(1, 2) len = %d, want 2", len(deck))
	}
	if deck[0].ID == deck[1].ID {
		t.Errorf("deck repeats %s", deck[0].ID)
	}

	if got := sel.Deck(1, 10); len(got) != 3 {
		t.Errorf("Deck(1, 10) len = %d, want 3", len(got))
	}
	if got := sel.Deck(1, 0); len(got) != 3 {
		t.Errorf("Deck(1, 0) len = %d, want the whole tier", len(got))
	}
	if got := sel.Deck(9, 3); len(got) != 0 {
		t.Errorf("Deck of empty tier len = %d, want 0", len(got))
	}
}
