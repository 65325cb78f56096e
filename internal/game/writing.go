package game

import "kanjiquest/internal/models"

// WritingMode is how the current character is being practiced
type WritingMode string

const (
	ModeDemo       WritingMode = "demo"
	ModeTrace      WritingMode = "trace"
	ModeSelfReport WritingMode = "self_report"
)

// Valid reports whether m is a known writing mode
func (m WritingMode) Valid() bool {
	switch m {
	case ModeDemo, ModeTrace, ModeSelfReport:
		return true
	}
	return false
}

// WritingConfig tunes writing scores
type WritingConfig struct {
	ScorePerCharacter int `mapstructure:"score_per_character"`
	PerfectBonus      int `mapstructure:"perfect_bonus"`
}

// DefaultWritingConfig returns the stock writing tuning
func DefaultWritingConfig() WritingConfig {
	return WritingConfig{ScorePerCharacter: 100, PerfectBonus: 50}
}

// WritingState is one writing session over a fixed list of characters
type WritingState struct {
	Index        int                      `json:"index"`
	Total        int                      `json:"total"`
	Score        int                      `json:"score"`
	Mode         WritingMode              `json:"mode"`
	Playing      bool                     `json:"is_playing"`
	Cleared      bool                     `json:"is_cleared"`
	Character    *models.StrokeDefinition `json:"character,omitempty"`
	PerfectCount int                      `json:"perfect_count"`
	StrokeCount  int                      `json:"stroke_count"`
	// Scored is set once the current character has earned its points
	Scored bool `json:"scored"`
}

// TraceResult is the outcome of a trace evaluation
type TraceResult struct {
	Perfect    bool `json:"perfect"`
	ScoreDelta int  `json:"score_delta"`
}

// NewWriting builds a not started session over characters
func NewWriting(characters []models.StrokeDefinition) WritingState {
	s := WritingState{Total: len(characters), Mode: ModeDemo}
	if len(characters) > 0 {
		c := characters[0]
		s.Character = &c
	}
	return s
}

// RetryWriting starts the same list over
func RetryWriting(characters []models.StrokeDefinition) WritingState {
	return NewWriting(characters)
}

// StartWriting begins play on the first character in demo mode
func StartWriting(s WritingState) WritingState {
	if s.Playing || s.Cleared || s.Character == nil {
		return s
	}
	s.Playing = true
	s.Mode = ModeDemo
	return s
}

// SwitchMode changes the practice mode and resets the stroke counter
func SwitchMode(s WritingState, mode WritingMode) WritingState {
	if !s.Playing || !mode.Valid() {
		return s
	}
	s.Mode = mode
	s.StrokeCount = 0
	return s
}

// RecordStroke counts one stroke drawn while tracing
func RecordStroke(s WritingState) WritingState {
	if !s.Playing || s.Mode != ModeTrace {
		return s
	}
	s.StrokeCount++
	return s
}

// EvaluateTrace scores a traced character. A stroke count matching the
// expected count is perfect and earns the bonus; any other count still earns
// the base score. Only trace mode scores.
func EvaluateTrace(s WritingState, submitted, expected int, cfg WritingConfig) (WritingState, TraceResult) {
	if !s.Playing || s.Scored || s.Mode != ModeTrace {
		return s, TraceResult{}
	}

	res := TraceResult{Perfect: submitted == expected, ScoreDelta: cfg.ScorePerCharacter}
	if res.Perfect {
		res.ScoreDelta += cfg.PerfectBonus
		s.PerfectCount++
	}
	s.Score += res.ScoreDelta
	s.Scored = true
	return s, res
}

// ReportSuccess awards the base score for a character written off screen.
// Only self report mode scores.
func ReportSuccess(s WritingState, cfg WritingConfig) (WritingState, TraceResult) {
	if !s.Playing || s.Scored || s.Mode != ModeSelfReport {
		return s, TraceResult{}
	}
	s.Score += cfg.ScorePerCharacter
	s.Scored = true
	return s, TraceResult{ScoreDelta: cfg.ScorePerCharacter}
}

// Advance moves to the next character, or clears the session after the last one
func Advance(s WritingState, characters []models.StrokeDefinition) WritingState {
	if !s.Playing {
		return s
	}

	s.Index++
	s.Mode = ModeDemo
	s.StrokeCount = 0
	s.Scored = false

	if s.Index >= s.Total || s.Index >= len(characters) {
		s.Index = s.Total
		s.Playing = false
		s.Cleared = true
		s.Character = nil
		return s
	}

	c := characters[s.Index]
	s.Character = &c
	return s
}

// MaxWritingScore is the best possible score over n characters
func MaxWritingScore(n int, cfg WritingConfig) int {
	return n * (cfg.ScorePerCharacter + cfg.PerfectBonus)
}

// WritingSummary builds the reward engine input for a finished session
func WritingSummary(s WritingState, setID string, cfg WritingConfig, t RankThresholds) models.SessionSummary {
	max := MaxWritingScore(s.Total, cfg)
	return models.SessionSummary{
		Mode:         models.ModeWriting,
		StageID:      setID,
		Score:        s.Score,
		MaxScore:     max,
		Rank:         RankFor(s.Score, max, t),
		Cleared:      s.Cleared,
		PerfectCount: s.PerfectCount,
	}
}
