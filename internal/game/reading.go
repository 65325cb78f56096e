package game

import (
	"fmt"
	"math"

	"kanjiquest/internal/models"
)

// MissPolicy decides what happens to the pending prompt after a wrong answer
type MissPolicy int

const (
	// MissKeepPrompt leaves the same prompt pending so the child can try again
	MissKeepPrompt MissPolicy = iota
	// MissAdvance draws a new prompt after every wrong answer
	MissAdvance
)

var missPolicyNames = map[MissPolicy]string{
	MissKeepPrompt: "keep",
	MissAdvance:    "advance",
}

func (p MissPolicy) String() string {
	if name, ok := missPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("MissPolicy(%d)", int(p))
}

// MarshalText writes the policy as "keep" or "advance"
func (p MissPolicy) MarshalText() ([]byte, error) {
	name, ok := missPolicyNames[p]
	if !ok {
		return nil, fmt.Errorf("unknown miss policy %d", int(p))
	}
	return []byte(name), nil
}

// UnmarshalText accepts the policy names and their numeric values
func (p *MissPolicy) UnmarshalText(text []byte) error {
	for policy, name := range missPolicyNames {
		if string(text) == name || string(text) == fmt.Sprint(int(policy)) {
			*p = policy
			return nil
		}
	}
	return fmt.Errorf("unknown miss policy %q", text)
}

// ReadingConfig tunes a reading session
type ReadingConfig struct {
	MaxLives           int        `mapstructure:"max_lives"`
	TimeLimitSeconds   int        `mapstructure:"time_limit_seconds"`
	ScorePerCorrect    int        `mapstructure:"score_per_correct"`
	InitialFallSeconds float64    `mapstructure:"initial_fall_seconds"`
	SpeedIncrement     float64    `mapstructure:"speed_increment"`
	MinFallSeconds     float64    `mapstructure:"min_fall_seconds"`
	PromptsPerRound    int        `mapstructure:"prompts_per_round"`
	MissPolicy         MissPolicy `mapstructure:"miss_policy"`
}

// DefaultReadingConfig returns the stock reading tuning
func DefaultReadingConfig() ReadingConfig {
	return ReadingConfig{
		MaxLives:           3,
		TimeLimitSeconds:   60,
		ScorePerCorrect:    10,
		InitialFallSeconds: 5,
		SpeedIncrement:     0.25,
		MinFallSeconds:     2,
		PromptsPerRound:    10,
		MissPolicy:         MissKeepPrompt,
	}
}

// ForStage returns a copy of c whose initial fall speed matches stage
func (c ReadingConfig) ForStage(stage models.Stage) ReadingConfig {
	if stage.FallSeconds > 0 {
		c.InitialFallSeconds = stage.FallSeconds
	}
	return c
}

// Phase is the lifecycle position of a session
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhasePlaying    Phase = "playing"
	PhaseGameOver   Phase = "game_over"
	PhaseCleared    Phase = "cleared"
)

// ReadingState is one reading session. Treat it as a value: operations
// return a new state and never modify the one passed in.
type ReadingState struct {
	Tier          int             `json:"tier"`
	Score         int             `json:"score"`
	Lives         int             `json:"lives"`
	TimeRemaining int             `json:"time_remaining"`
	Playing       bool            `json:"is_playing"`
	GameOver      bool            `json:"is_game_over"`
	Cleared       bool            `json:"is_cleared"`
	Prompt        *models.Prompt  `json:"prompt,omitempty"`
	Deck          []models.Prompt `json:"-"`
	Choices       ChoiceSet       `json:"choices"`
	FallSeconds   float64         `json:"fall_seconds"`
	CorrectCount  int             `json:"correct_count"`
	Answered      int             `json:"answered"`
	Combo         int             `json:"combo"`
	MaxCombo      int             `json:"max_combo"`
}

// Phase derives the lifecycle phase from the state flags
func (s ReadingState) Phase() Phase {
	switch {
	case s.Playing:
		return PhasePlaying
	case s.Cleared:
		return PhaseCleared
	case s.GameOver:
		return PhaseGameOver
	default:
		return PhaseNotStarted
	}
}

// Terminal reports whether the session has ended
func (s ReadingState) Terminal() bool {
	return s.GameOver || s.Cleared
}

// Evaluation is the outcome of one answer or miss
type Evaluation struct {
	Correct    bool `json:"correct"`
	ScoreDelta int  `json:"score_delta"`
	LivesLost  int  `json:"lives_lost"`
	Terminal   bool `json:"terminal"`
}

// NewReading builds a fresh, not yet started session with its first prompt.
// An empty tier leaves Prompt nil and the session can never start.
func NewReading(tier int, cfg ReadingConfig, sel *Selector) ReadingState {
	s := ReadingState{
		Tier:          tier,
		Lives:         cfg.MaxLives,
		TimeRemaining: cfg.TimeLimitSeconds,
		FallSeconds:   cfg.InitialFallSeconds,
	}
	return loadPrompt(s, cfg, sel)
}

// RetryReading discards a finished session by starting over
func RetryReading(tier int, cfg ReadingConfig, sel *Selector) ReadingState {
	return NewReading(tier, cfg, sel)
}

// Start moves a not started session into play
func Start(s ReadingState) ReadingState {
	if s.Phase() != PhaseNotStarted || s.Prompt == nil || s.Lives <= 0 || s.TimeRemaining <= 0 {
		return s
	}
	s.Playing = true
	return s
}

// Tick consumes one second of the session's time budget
func Tick(s ReadingState) ReadingState {
	if !s.Playing {
		return s
	}
	s.TimeRemaining--
	if s.TimeRemaining <= 0 {
		s.TimeRemaining = 0
		s = endGame(s)
	}
	return s
}

// SubmitAnswer evaluates answer against the pending prompt
func SubmitAnswer(s ReadingState, answer string, cfg ReadingConfig, sel *Selector) (ReadingState, Evaluation) {
	if !s.Playing || s.Prompt == nil {
		return s, Evaluation{Terminal: s.Terminal()}
	}

	if answer == s.Prompt.Answer {
		s.Score += cfg.ScorePerCorrect
		s.CorrectCount++
		s.Combo++
		if s.Combo > s.MaxCombo {
			s.MaxCombo = s.Combo
		}
		s.FallSeconds = math.Max(s.FallSeconds-cfg.SpeedIncrement, cfg.MinFallSeconds)
		s = advance(s, cfg, sel)
		return s, Evaluation{Correct: true, ScoreDelta: cfg.ScorePerCorrect, Terminal: s.Terminal()}
	}

	return miss(s, cfg, sel, cfg.MissPolicy == MissAdvance)
}

// HandleMiss is called when the pending prompt finished falling without an
// answer. It costs a life like a wrong answer and always moves on.
func HandleMiss(s ReadingState, cfg ReadingConfig, sel *Selector) (ReadingState, Evaluation) {
	if !s.Playing || s.Prompt == nil {
		return s, Evaluation{Terminal: s.Terminal()}
	}
	return miss(s, cfg, sel, true)
}

func miss(s ReadingState, cfg ReadingConfig, sel *Selector, next bool) (ReadingState, Evaluation) {
	s.Lives--
	s.Combo = 0
	if s.Lives <= 0 {
		s.Lives = 0
		s = endGame(s)
		return s, Evaluation{LivesLost: 1, Terminal: true}
	}
	if next {
		s = advance(s, cfg, sel)
	}
	return s, Evaluation{LivesLost: 1, Terminal: s.Terminal()}
}

// advance retires the pending prompt and either clears the round or loads
// the next one.
func advance(s ReadingState, cfg ReadingConfig, sel *Selector) ReadingState {
	s.Answered++
	if cfg.PromptsPerRound > 0 && s.Answered >= cfg.PromptsPerRound {
		s.Playing = false
		s.Cleared = true
		s.Prompt = nil
		s.Choices = nil
		s.Deck = nil
		return s
	}
	return loadPrompt(s, cfg, sel)
}

// loadPrompt takes the next prompt off the round's deck. A round longer than
// the tier deals a fresh deck once the current one runs out.
func loadPrompt(s ReadingState, cfg ReadingConfig, sel *Selector) ReadingState {
	if len(s.Deck) == 0 {
		last := ""
		if s.Prompt != nil {
			last = s.Prompt.ID
		}
		s.Deck = sel.DeckAfter(s.Tier, cfg.PromptsPerRound-s.Answered, last)
	}
	if len(s.Deck) == 0 {
		s.Prompt = nil
		s.Choices = nil
		if s.Playing {
			s = endGame(s)
		}
		return s
	}
	p := s.Deck[0]
	s.Deck = s.Deck[1:]
	s.Prompt = &p
	s.Choices = sel.Choices(p)
	return s
}

func endGame(s ReadingState) ReadingState {
	s.Playing = false
	s.GameOver = true
	return s
}

// MaxReadingScore is the best possible score over n prompts
func MaxReadingScore(n int, cfg ReadingConfig) int {
	return n * cfg.ScorePerCorrect
}

// ReadingSummary builds the reward engine input for a finished session
func ReadingSummary(s ReadingState, stageID string, cfg ReadingConfig, t RankThresholds) models.SessionSummary {
	max := MaxReadingScore(cfg.PromptsPerRound, cfg)
	return models.SessionSummary{
		Mode:         models.ModeReading,
		StageID:      stageID,
		Tier:         s.Tier,
		Score:        s.Score,
		MaxScore:     max,
		Rank:         RankFor(s.Score, max, t),
		Cleared:      s.Cleared,
		CorrectCount: s.CorrectCount,
		MaxCombo:     s.MaxCombo,
	}
}
