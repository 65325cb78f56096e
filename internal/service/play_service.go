package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"kanjiquest/internal/catalog"
	"kanjiquest/internal/game"
	"kanjiquest/internal/models"
)

// SessionFinisher stores a finished session and returns its rewards
type SessionFinisher interface {
	FinishSession(ctx context.Context, playerID int64, summary models.SessionSummary) (models.RewardBundle, error)
}

// PlayTuning is the gameplay tuning the play service runs sessions with
type PlayTuning struct {
	Reading           game.ReadingConfig
	Writing           game.WritingConfig
	ReadingThresholds game.RankThresholds
	WritingThresholds game.RankThresholds
}

// SessionView is what a client sees of a live session after an operation
type SessionView struct {
	ID         string                 `json:"id"`
	Mode       models.GameMode        `json:"mode"`
	StageID    string                 `json:"stage_id"`
	Phase      game.Phase             `json:"phase"`
	Reading    *game.ReadingState     `json:"reading,omitempty"`
	Writing    *game.WritingState     `json:"writing,omitempty"`
	Evaluation *game.Evaluation       `json:"evaluation,omitempty"`
	Trace      *game.TraceResult      `json:"trace,omitempty"`
	Summary    *models.SessionSummary `json:"summary,omitempty"`
	Rewards    models.RewardBundle    `json:"rewards,omitempty"`
}

type liveSession struct {
	mu         sync.Mutex
	id         string
	playerID   int64
	mode       models.GameMode
	stageID    string
	readingCfg game.ReadingConfig
	reading    game.ReadingState
	characters []models.StrokeDefinition
	writing    game.WritingState
	summary    *models.SessionSummary
	rewards    models.RewardBundle
	lastActive time.Time
}

// PlayService hosts live reading and writing sessions in memory and hands
// finished ones to the reward side exactly once
type PlayService struct {
	catalog  catalog.Provider
	selector *game.Selector
	finisher SessionFinisher
	tuning   PlayTuning
	now      func() time.Time
	log      logrus.FieldLogger

	mu       sync.Mutex
	sessions map[string]*liveSession
}

// NewPlayService creates a new play service
func NewPlayService(cat catalog.Provider, selector *game.Selector, finisher SessionFinisher, tuning PlayTuning, log logrus.FieldLogger) *PlayService {
	return &PlayService{
		catalog:  cat,
		selector: selector,
		finisher: finisher,
		tuning:   tuning,
		now:      time.Now,
		log:      log,
		sessions: make(map[string]*liveSession),
	}
}

// NewReadingSession opens a reading session on a stage
func (s *PlayService) NewReadingSession(playerID int64, stageID string) (*SessionView, error) {
	stage, ok := s.catalog.Stage(stageID)
	if !ok {
		return nil, ErrUnknownStage
	}

	cfg := s.tuning.Reading.ForStage(stage)
	ls := &liveSession{
		id:         uuid.New().String(),
		playerID:   playerID,
		mode:       models.ModeReading,
		stageID:    stageID,
		readingCfg: cfg,
		reading:    game.NewReading(stage.Grade, cfg, s.selector),
	}
	s.add(ls)
	return ls.view(), nil
}

// NewWritingSession opens a writing session on a stroke set
func (s *PlayService) NewWritingSession(playerID int64, setID string) (*SessionView, error) {
	if _, ok := s.catalog.StrokeSet(setID); !ok {
		return nil, ErrUnknownStrokeSet
	}
	chars := s.catalog.CharactersForSet(setID)

	ls := &liveSession{
		id:         uuid.New().String(),
		playerID:   playerID,
		mode:       models.ModeWriting,
		stageID:    setID,
		characters: chars,
		writing:    game.NewWriting(chars),
	}
	s.add(ls)
	return ls.view(), nil
}

// Get returns the current view of a session
func (s *PlayService) Get(ctx context.Context, playerID int64, id string) (*SessionView, error) {
	return s.apply(ctx, playerID, id, "", func(*liveSession, *SessionView) {})
}

// Start begins play
func (s *PlayService) Start(ctx context.Context, playerID int64, id string) (*SessionView, error) {
	return s.apply(ctx, playerID, id, "", func(ls *liveSession, _ *SessionView) {
		switch ls.mode {
		case models.ModeReading:
			ls.reading = game.Start(ls.reading)
		case models.ModeWriting:
			ls.writing = game.StartWriting(ls.writing)
		}
	})
}

// Retry throws the session away and starts it over, not yet started
func (s *PlayService) Retry(ctx context.Context, playerID int64, id string) (*SessionView, error) {
	return s.apply(ctx, playerID, id, "", func(ls *liveSession, _ *SessionView) {
		switch ls.mode {
		case models.ModeReading:
			ls.reading = game.RetryReading(ls.reading.Tier, ls.readingCfg, s.selector)
		case models.ModeWriting:
			ls.writing = game.RetryWriting(ls.characters)
		}
		ls.summary = nil
		ls.rewards = nil
	})
}

// Tick consumes one second of a reading session
func (s *PlayService) Tick(ctx context.Context, playerID int64, id string) (*SessionView, error) {
	return s.apply(ctx, playerID, id, models.ModeReading, func(ls *liveSession, _ *SessionView) {
		ls.reading = game.Tick(ls.reading)
	})
}

// Answer submits a reading answer
func (s *PlayService) Answer(ctx context.Context, playerID int64, id, answer string) (*SessionView, error) {
	return s.apply(ctx, playerID, id, models.ModeReading, func(ls *liveSession, v *SessionView) {
		var ev game.Evaluation
		ls.reading, ev = game.SubmitAnswer(ls.reading, answer, ls.readingCfg, s.selector)
		v.Evaluation = &ev
	})
}

// Miss reports that the falling prompt reached the bottom unanswered
func (s *PlayService) Miss(ctx context.Context, playerID int64, id string) (*SessionView, error) {
	return s.apply(ctx, playerID, id, models.ModeReading, func(ls *liveSession, v *SessionView) {
		var ev game.Evaluation
		ls.reading, ev = game.HandleMiss(ls.reading, ls.readingCfg, s.selector)
		v.Evaluation = &ev
	})
}

// SwitchMode changes how the current writing character is practiced
func (s *PlayService) SwitchMode(ctx context.Context, playerID int64, id string, mode game.WritingMode) (*SessionView, error) {
	return s.apply(ctx, playerID, id, models.ModeWriting, func(ls *liveSession, _ *SessionView) {
		ls.writing = game.SwitchMode(ls.writing, mode)
	})
}

// Stroke records one traced stroke
func (s *PlayService) Stroke(ctx context.Context, playerID int64, id string) (*SessionView, error) {
	return s.apply(ctx, playerID, id, models.ModeWriting, func(ls *liveSession, _ *SessionView) {
		ls.writing = game.RecordStroke(ls.writing)
	})
}

// Trace scores the current character. A nil strokes uses the strokes
// recorded so far.
func (s *PlayService) Trace(ctx context.Context, playerID int64, id string, strokes *int) (*SessionView, error) {
	return s.apply(ctx, playerID, id, models.ModeWriting, func(ls *liveSession, v *SessionView) {
		if ls.writing.Character == nil {
			return
		}
		submitted := ls.writing.StrokeCount
		if strokes != nil {
			submitted = *strokes
		}
		var res game.TraceResult
		ls.writing, res = game.EvaluateTrace(ls.writing, submitted, ls.writing.Character.StrokeCount(), s.tuning.Writing)
		v.Trace = &res
	})
}

// Report scores a character the player wrote on paper
func (s *PlayService) Report(ctx context.Context, playerID int64, id string) (*SessionView, error) {
	return s.apply(ctx, playerID, id, models.ModeWriting, func(ls *liveSession, v *SessionView) {
		var res game.TraceResult
		ls.writing, res = game.ReportSuccess(ls.writing, s.tuning.Writing)
		v.Trace = &res
	})
}

// Advance moves to the next writing character
func (s *PlayService) Advance(ctx context.Context, playerID int64, id string) (*SessionView, error) {
	return s.apply(ctx, playerID, id, models.ModeWriting, func(ls *liveSession, _ *SessionView) {
		ls.writing = game.Advance(ls.writing, ls.characters)
	})
}

// Sweep drops sessions idle for longer than ttl and returns how many went
func (s *PlayService) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, ls := range s.sessions {
		ls.mu.Lock()
		idle := ls.lastActive.Before(cutoff)
		ls.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.log.WithField("removed", removed).Info("idle sessions swept")
	}
	return removed
}

// Count returns how many sessions are live
func (s *PlayService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *PlayService) add(ls *liveSession) {
	ls.lastActive = s.now()

	s.mu.Lock()
	s.sessions[ls.id] = ls
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"player_id":  ls.playerID,
		"session_id": ls.id,
		"mode":       ls.mode,
		"stage_id":   ls.stageID,
	}).Debug("session opened")
}

func (s *PlayService) lookup(playerID int64, id string) (*liveSession, error) {
	s.mu.Lock()
	ls, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok || ls.playerID != playerID {
		return nil, ErrSessionNotFound
	}
	return ls, nil
}

// apply runs op on a session under its lock and settles it once it ends.
// A mode other than "" restricts op to sessions of that mode.
func (s *PlayService) apply(ctx context.Context, playerID int64, id string, mode models.GameMode, op func(*liveSession, *SessionView)) (*SessionView, error) {
	ls, err := s.lookup(playerID, id)
	if err != nil {
		return nil, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	if mode != "" && ls.mode != mode {
		return nil, ErrWrongMode
	}

	extra := &SessionView{}
	op(ls, extra)
	ls.lastActive = s.now()

	if err := s.settle(ctx, ls); err != nil {
		return nil, err
	}

	v := ls.view()
	v.Evaluation = extra.Evaluation
	v.Trace = extra.Trace
	return v, nil
}

// settle hands a session that just ended to the finisher. A failed finish
// is retried on the next call.
func (s *PlayService) settle(ctx context.Context, ls *liveSession) error {
	if ls.summary != nil || !ls.ended() {
		return nil
	}

	var summary models.SessionSummary
	switch ls.mode {
	case models.ModeReading:
		summary = game.ReadingSummary(ls.reading, ls.stageID, ls.readingCfg, s.tuning.ReadingThresholds)
	case models.ModeWriting:
		summary = game.WritingSummary(ls.writing, ls.stageID, s.tuning.Writing, s.tuning.WritingThresholds)
	}

	bundle, err := s.finisher.FinishSession(ctx, ls.playerID, summary)
	if err != nil {
		s.log.WithError(err).WithField("session_id", ls.id).Error("failed to settle session")
		return err
	}
	ls.summary = &summary
	ls.rewards = bundle
	return nil
}

func (ls *liveSession) ended() bool {
	switch ls.mode {
	case models.ModeReading:
		return ls.reading.Terminal()
	case models.ModeWriting:
		return ls.writing.Cleared
	}
	return false
}

func (ls *liveSession) view() *SessionView {
	v := &SessionView{
		ID:      ls.id,
		Mode:    ls.mode,
		StageID: ls.stageID,
		Summary: ls.summary,
		Rewards: ls.rewards,
	}
	switch ls.mode {
	case models.ModeReading:
		r := ls.reading
		v.Reading = &r
		v.Phase = r.Phase()
	case models.ModeWriting:
		w := ls.writing
		v.Writing = &w
		v.Phase = writingPhase(w)
	}
	return v
}

func writingPhase(w game.WritingState) game.Phase {
	switch {
	case w.Cleared:
		return game.PhaseCleared
	case w.Playing:
		return game.PhasePlaying
	}
	return game.PhaseNotStarted
}
