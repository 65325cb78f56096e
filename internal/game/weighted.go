package game

import "kanjiquest/internal/random"

// Weighted is one option of a weighted pick
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// WeightedPick selects one option with probability proportional to its weight.
//
// It draws a uniform value in [0, total) and subtracts weights in the given
// order until the running value is no longer positive. Options with a
// weight of zero or less are skipped and can never be chosen. When no option
// has a positive weight it returns false.
func WeightedPick[T any](src random.Source, options []Weighted[T]) (T, bool) {
	var zero T

	total := 0.0
	last := -1
	for i, opt := range options {
		if opt.Weight > 0 {
			total += opt.Weight
			last = i
		}
	}
	if last < 0 {
		return zero, false
	}

	draw := src.Float64() * total
	for _, opt := range options {
		if opt.Weight <= 0 {
			continue
		}
		draw -= opt.Weight
		if draw <= 0 {
			return opt.Item, true
		}
	}

	// float rounding can leave a tiny remainder
	return options[last].Item, true
}

// UniformPick returns a uniformly chosen element of items
func UniformPick[T any](src random.Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[src.Intn(len(items))], true
}
