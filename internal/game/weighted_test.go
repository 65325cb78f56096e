package game

import (
	"testing"

	"kanjiquest/internal/models"
	"kanjiquest/internal/random"
)

func TestWeightedPick(t *testing.T) {
	tests := []struct {
		name    string
		options []Weighted[string]
		draw    float64
		want    string
		wantOK  bool
	}{
		{
			name:    "first option at low draw",
			options: []Weighted[string]{{"a", 1}, {"b", 1}},
			draw:    0.25,
			want:    "a",
			wantOK:  true,
		},
		{
			name:    "second option at high draw",
			options: []Weighted[string]{{"a", 1}, {"b", 1}},
			draw:    0.75,
			want:    "b",
			wantOK:  true,
		},
		{
			name:    "draw landing exactly on a boundary picks the earlier option",
			options: []Weighted[string]{{"a", 1}, {"b", 1}},
			draw:    0.5,
			want:    "a",
			wantOK:  true,
		},
		{
			name:    "zero weight is skipped at draw zero",
			options: []Weighted[string]{{"legendary", 0}, {"epic", 0}, {"rare", 10}},
			draw:    0,
			want:    "rare",
			wantOK:  true,
		},
		{
			name:    "top of range lands on last positive option",
			options: []Weighted[string]{{"a", 3}, {"b", 2}, {"c", 0}},
			draw:    0.999999,
			want:    "b",
			wantOK:  true,
		},
		{
			name:    "all zero weights",
			options: []Weighted[string]{{"a", 0}, {"b", 0}},
			draw:    0.5,
			wantOK:  false,
		},
		{
			name:    "negative weights are ignored",
			options: []Weighted[string]{{"a", -5}, {"b", 1}},
			draw:    0,
			want:    "b",
			wantOK:  true,
		},
		{
			name:   "no options",
			draw:   0.5,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WeightedPick(random.NewScripted(tt.draw), tt.options)
			if ok != tt.wantOK {
				t.Fatalf("WeightedPick() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("WeightedPick() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWeightedPickNeverChoosesZeroWeight(t *testing.T) {
	options := []Weighted[models.Rarity]{
		{models.RarityLegendary, 0},
		{models.RarityEpic, 0},
		{models.RarityRare, 10},
		{models.RarityUncommon, 30},
		{models.RarityCommon, 60},
	}

	src := random.NewSeeded(99)
	counts := map[models.Rarity]int{}
	for i := 0; i < 2000; i++ {
		r, ok := WeightedPick(src, options)
		if !ok {
			t.Fatal("expected a pick")
		}
		counts[r]++
	}

	if counts[models.RarityLegendary] != 0 || counts[models.RarityEpic] != 0 {
		t.Errorf("zero weight rarities were picked: %v", counts)
	}
	if counts[models.RarityCommon] <= counts[models.RarityRare] {
		t.Errorf("common should dominate rare: %v", counts)
	}
}

func TestUniformPick(t *testing.T) {
	items := []string{"x", "y", "z"}

	got, ok := UniformPick(random.NewScripted(0.5), items)
	if !ok || got != "y" {
		t.Errorf("UniformPick() = %q, %v, want y, true", got, ok)
	}

	if _, ok := UniformPick[string](random.NewScripted(0.5), nil); ok {
		t.Error("UniformPick(nil) should report no pick")
	}
}
