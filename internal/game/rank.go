package game

import "kanjiquest/internal/models"

// RankThresholds are the minimum score percentages for each rank.
// Anything below C is rank D.
type RankThresholds struct {
	S float64 `mapstructure:"s"`
	A float64 `mapstructure:"a"`
	B float64 `mapstructure:"b"`
	C float64 `mapstructure:"c"`
}

var (
	ReadingThresholds = RankThresholds{S: 90, A: 80, B: 70, C: 60}
	WritingThresholds = RankThresholds{S: 95, A: 85, B: 70, C: 50}
)

// RankFor grades score as a percentage of max
func RankFor(score, max int, t RankThresholds) models.Rank {
	if max <= 0 || score <= 0 {
		return models.RankD
	}
	pct := float64(score*100) / float64(max)

	switch {
	case pct >= t.S:
		return models.RankS
	case pct >= t.A:
		return models.RankA
	case pct >= t.B:
		return models.RankB
	case pct >= t.C:
		return models.RankC
	default:
		return models.RankD
	}
}
