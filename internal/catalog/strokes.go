package catalog

import "kanjiquest/internal/models"

var strokeDefinitions = []models.StrokeDefinition{
	{
		ID: "stroke_001", Glyph: "一", Reading: "いち", Meaning: "数字の1", Grade: 1,
		Strokes: []models.Stroke{
			{Path: "M 20 50 L 180 50", DurationMs: 800},
		},
	},
	{
		ID: "stroke_002", Glyph: "二", Reading: "に", Meaning: "数字の2", Grade: 1,
		Strokes: []models.Stroke{
			{Path: "M 20 30 L 180 30", DurationMs: 800},
			{Path: "M 20 70 L 180 70", DurationMs: 800},
		},
	},
	{
		ID: "stroke_003", Glyph: "三", Reading: "さん", Meaning: "数字の3", Grade: 1,
		Strokes: []models.Stroke{
			{Path: "M 20 20 L 180 20", DurationMs: 800},
			{Path: "M 20 50 L 180 50", DurationMs: 800},
			{Path: "M 20 80 L 180 80", DurationMs: 800},
		},
	},
	{
		ID: "stroke_004", Glyph: "十", Reading: "じゅう", Meaning: "数字の10", Grade: 1,
		Strokes: []models.Stroke{
			{Path: "M 100 20 L 100 80", DurationMs: 800},
			{Path: "M 40 50 L 160 50", DurationMs: 800},
		},
	},
	{
		ID: "stroke_005", Glyph: "口", Reading: "くち", Meaning: "口", Grade: 1,
		Strokes: []models.Stroke{
			{Path: "M 60 30 L 60 80", DurationMs: 600},
			{Path: "M 60 80 L 140 80", DurationMs: 600},
			{Path: "M 140 80 L 140 30 L 60 30", DurationMs: 800},
		},
	},
	{
		ID: "stroke_006", Glyph: "日", Reading: "ひ", Meaning: "太陽、日", Grade: 1,
		Strokes: []models.Stroke{
			{Path: "M 50 20 L 50 90", DurationMs: 700},
			{Path: "M 50 20 L 150 20", DurationMs: 600},
			{Path: "M 150 20 L 150 90", DurationMs: 700},
			{Path: "M 50 90 L 150 90", DurationMs: 600},
		},
	},
	{
		ID: "stroke_007", Glyph: "月", Reading: "つき", Meaning: "月", Grade: 1,
		Strokes: []models.Stroke{
			{Path: "M 50 20 L 50 90", DurationMs: 700},
			{Path: "M 50 20 L 150 20 Q 155 25 155 30 L 155 85 Q 155 90 150 90 L 50 90", DurationMs: 1000},
			{Path: "M 50 45 L 155 45", DurationMs: 600},
			{Path: "M 50 70 L 155 70", DurationMs: 600},
		},
	},
	{
		ID: "stroke_008", Glyph: "木", Reading: "き", Meaning: "木", Grade: 1,
		Strokes: []models.Stroke{
			{Path: "M 100 20 L 100 95", DurationMs: 800},
			{Path: "M 30 50 L 170 50", DurationMs: 700},
			{Path: "M 60 70 L 100 95", DurationMs: 600},
			{Path: "M 140 70 L 100 95", DurationMs: 600},
		},
	},
	{
		ID: "stroke_009", Glyph: "山", Reading: "やま", Meaning: "山", Grade: 1,
		Strokes: []models.Stroke{
			{Path: "M 100 30 L 100 80", DurationMs: 600},
			{Path: "M 40 60 L 100 30 L 160 60", DurationMs: 800},
			{Path: "M 20 80 L 180 80", DurationMs: 700},
		},
	},
	{
		ID: "stroke_010", Glyph: "川", Reading: "かわ", Meaning: "川", Grade: 1,
		Strokes: []models.Stroke{
			{Path: "M 50 30 L 50 80", DurationMs: 600},
			{Path: "M 100 20 L 100 90", DurationMs: 700},
			{Path: "M 150 30 L 150 80", DurationMs: 600},
		},
	},
	{
		ID: "stroke_011", Glyph: "人", Reading: "ひと", Meaning: "人", Grade: 1,
		Strokes: []models.Stroke{
			{Path: "M 70 30 L 100 90", DurationMs: 700},
			{Path: "M 130 30 L 100 90", DurationMs: 700},
		},
	},
	{
		ID: "stroke_012", Glyph: "大", Reading: "だい", Meaning: "大きい", Grade: 1,
		Strokes: []models.Stroke{
			{Path: "M 100 20 L 100 90", DurationMs: 700},
			{Path: "M 40 40 L 160 40", DurationMs: 700},
			{Path: "M 50 90 L 100 50", DurationMs: 600},
		},
	},
}

var strokeSets = []models.StrokeSet{
	{
		ID:           "set_001",
		Name:         "かずの かんじ",
		Description:  "かずを あらわす かんじだよ",
		CharacterIDs: []string{"stroke_001", "stroke_002", "stroke_003", "stroke_004"},
		Difficulty:   "easy",
	},
	{
		ID:           "set_002",
		Name:         "しぜんの かんじ",
		Description:  "しぜんに かんけいする かんじだよ",
		CharacterIDs: []string{"stroke_006", "stroke_007", "stroke_008", "stroke_009", "stroke_010"},
		Difficulty:   "normal",
	},
	{
		ID:           "set_003",
		Name:         "ひとの かんじ",
		Description:  "ひとに かんけいする かんじだよ",
		CharacterIDs: []string{"stroke_005", "stroke_011", "stroke_012"},
		Difficulty:   "normal",
	},
}
