package game

import (
	"fmt"
	"reflect"
	"testing"

	"kanjiquest/internal/models"
	"kanjiquest/internal/random"
)

func checkReadingInvariants(t *testing.T, s ReadingState) {
	t.Helper()
	if s.Playing && (s.Prompt == nil || s.Lives <= 0 || s.TimeRemaining <= 0) {
		t.Fatalf("playing state breaks invariant: %+v", s)
	}
	if s.GameOver && s.Playing {
		t.Fatalf("game over state is still playing: %+v", s)
	}
	if s.Score < 0 || s.Lives < 0 || s.TimeRemaining < 0 {
		t.Fatalf("negative counter: %+v", s)
	}
}

func newTestReading(t *testing.T, cfg ReadingConfig) (ReadingState, *Selector) {
	t.Helper()
	sel := NewSelector(testPrompts(), random.NewSeeded(11))
	s := NewReading(1, cfg, sel)
	if s.Phase() != PhaseNotStarted {
		t.Fatalf("new session phase = %s", s.Phase())
	}
	return Start(s), sel
}

func wrongAnswer(s ReadingState) string {
	return s.Prompt.Distractors[0]
}

func TestReadingStart(t *testing.T) {
	cfg := DefaultReadingConfig()
	sel := NewSelector(testPrompts(), random.NewSeeded(1))
	s := NewReading(1, cfg, sel)

	if s.Prompt == nil || len(s.Choices) != 3 {
		t.Fatalf("new session has no prompt: %+v", s)
	}

	started := Start(s)
	if !started.Playing {
		t.Fatal("Start() did not begin play")
	}
	// only the playing flag changes
	started.Playing = false
	if !reflect.DeepEqual(started, s) {
		t.Errorf("Start() changed more than the playing flag:\n got %+v\nwant %+v", started, s)
	}

	again := Start(Start(s))
	if !again.Playing {
		t.Error("second Start() should keep playing")
	}
}

func TestReadingStartEmptyTier(t *testing.T) {
	sel := NewSelector(testPrompts(), random.NewSeeded(1))
	s := NewReading(9, DefaultReadingConfig(), sel)

	if s.Prompt != nil {
		t.Fatal("empty tier should leave no prompt")
	}
	if Start(s).Playing {
		t.Error("a session without a prompt must not start")
	}
}

func TestReadingAllCorrect(t *testing.T) {
	cfg := DefaultReadingConfig()
	s, sel := newTestReading(t, cfg)

	prevFall := s.FallSeconds
	for i := 0; i < cfg.PromptsPerRound; i++ {
		var ev Evaluation
		s, ev = SubmitAnswer(s, s.Prompt.Answer, cfg, sel)
		checkReadingInvariants(t, s)

		if !ev.Correct || ev.ScoreDelta != cfg.ScorePerCorrect {
			t.Fatalf("answer %d: evaluation = %+v", i, ev)
		}
		if s.Score != (i+1)*cfg.ScorePerCorrect {
			t.Fatalf("answer %d: score = %d", i, s.Score)
		}
		if s.FallSeconds >= prevFall {
			t.Fatalf("answer %d: fall %.2f did not drop below %.2f", i, s.FallSeconds, prevFall)
		}
		prevFall = s.FallSeconds
		if i < cfg.PromptsPerRound-1 && s.Prompt == nil {
			t.Fatalf("answer %d: no next prompt", i)
		}
	}

	if !s.Cleared || s.Playing || s.GameOver {
		t.Fatalf("round should be cleared: %+v", s)
	}
	if s.Score != 100 || s.CorrectCount != 10 || s.MaxCombo != 10 {
		t.Errorf("final score=%d correct=%d combo=%d", s.Score, s.CorrectCount, s.MaxCombo)
	}
	if s.Lives != cfg.MaxLives {
		t.Errorf("lives = %d, want %d", s.Lives, cfg.MaxLives)
	}

	summary := ReadingSummary(s, "grade_1_slow", cfg, ReadingThresholds)
	if summary.Rank != models.RankS || !summary.Cleared || summary.MaxScore != 100 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestReadingFallFloor(t *testing.T) {
	cfg := DefaultReadingConfig()
	cfg.InitialFallSeconds = 2.2
	s, sel := newTestReading(t, cfg)

	s, _ = SubmitAnswer(s, s.Prompt.Answer, cfg, sel)
	if s.FallSeconds != cfg.MinFallSeconds {
		t.Fatalf("fall = %.2f, want floor %.2f", s.FallSeconds, cfg.MinFallSeconds)
	}
	s, _ = SubmitAnswer(s, s.Prompt.Answer, cfg, sel)
	if s.FallSeconds != cfg.MinFallSeconds {
		t.Errorf("fall went below floor: %.2f", s.FallSeconds)
	}
}

func TestReadingLosingAllLives(t *testing.T) {
	tests := []struct {
		name   string
		policy MissPolicy
		miss   bool
	}{
		{name: "wrong answers keep prompt", policy: MissKeepPrompt},
		{name: "wrong answers advance", policy: MissAdvance},
		{name: "missed prompts", policy: MissKeepPrompt, miss: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultReadingConfig()
			cfg.MissPolicy = tt.policy
			s, sel := newTestReading(t, cfg)

			var ev Evaluation
			for i := 0; i < cfg.MaxLives; i++ {
				if tt.miss {
					s, ev = HandleMiss(s, cfg, sel)
				} else {
					s, ev = SubmitAnswer(s, wrongAnswer(s), cfg, sel)
				}
				checkReadingInvariants(t, s)
				if ev.Correct || ev.LivesLost != 1 {
					t.Fatalf("miss %d evaluation = %+v", i, ev)
				}
			}

			if !s.GameOver || s.Playing {
				t.Fatalf("expected game over: %+v", s)
			}
			if !ev.Terminal {
				t.Error("last evaluation should be terminal")
			}
			if s.TimeRemaining != cfg.TimeLimitSeconds {
				t.Errorf("time changed: %d", s.TimeRemaining)
			}
		})
	}
}

func TestReadingMissPolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   MissPolicy
		wantSame bool
	}{
		{name: "keep prompt", policy: MissKeepPrompt, wantSame: true},
		{name: "advance", policy: MissAdvance, wantSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultReadingConfig()
			cfg.MissPolicy = tt.policy
			s, sel := newTestReading(t, cfg)

			before := s.Prompt.ID
			s, _ = SubmitAnswer(s, wrongAnswer(s), cfg, sel)

			if same := s.Prompt.ID == before; same != tt.wantSame {
				t.Errorf("prompt %s -> %s, want same=%v", before, s.Prompt.ID, tt.wantSame)
			}
			if s.Lives != cfg.MaxLives-1 || s.Combo != 0 {
				t.Errorf("lives=%d combo=%d", s.Lives, s.Combo)
			}
		})
	}
}

func TestMissPolicyText(t *testing.T) {
	tests := []struct {
		text    string
		want    MissPolicy
		wantErr bool
	}{
		{text: "keep", want: MissKeepPrompt},
		{text: "advance", want: MissAdvance},
		{text: "0", want: MissKeepPrompt},
		{text: "1", want: MissAdvance},
		{text: "Advance", wantErr: true},
		{text: "skip", wantErr: true},
		{text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var got MissPolicy
			err := got.UnmarshalText([]byte(tt.text))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, got, tt.want)
			}
			text, err := got.MarshalText()
			if err != nil || string(text) != got.String() {
				t.Errorf("MarshalText() = %q, %v", text, err)
			}
		})
	}

	if _, err := MissPolicy(7).MarshalText(); err == nil {
		t.Error("MarshalText() accepted an unknown policy")
	}
}

func TestReadingHandleMissAdvances(t *testing.T) {
	cfg := DefaultReadingConfig()
	s, sel := newTestReading(t, cfg)

	before := s.Prompt.ID
	s, ev := HandleMiss(s, cfg, sel)
	if ev.Correct || ev.LivesLost != 1 || ev.Terminal {
		t.Fatalf("evaluation = %+v", ev)
	}
	if s.Prompt == nil || s.Prompt.ID == before {
		t.Errorf("HandleMiss did not load a new prompt")
	}
	if s.Answered != 1 {
		t.Errorf("answered = %d, want 1", s.Answered)
	}
}

func TestReadingTick(t *testing.T) {
	cfg := DefaultReadingConfig()
	cfg.TimeLimitSeconds = 3
	s, _ := newTestReading(t, cfg)

	for i := 0; i < 3; i++ {
		s = Tick(s)
		checkReadingInvariants(t, s)
	}
	if !s.GameOver || s.Playing || s.TimeRemaining != 0 {
		t.Fatalf("expected timeout: %+v", s)
	}

	if again := Tick(s); !reflect.DeepEqual(again, s) {
		t.Errorf("Tick at zero changed state:\n got %+v\nwant %+v", again, s)
	}
}

func TestReadingNoOpsWhenNotPlaying(t *testing.T) {
	cfg := DefaultReadingConfig()
	sel := NewSelector(testPrompts(), random.NewSeeded(1))
	s := NewReading(1, cfg, sel)

	if got := Tick(s); !reflect.DeepEqual(got, s) {
		t.Error("Tick on a not started session changed it")
	}
	got, ev := SubmitAnswer(s, s.Prompt.Answer, cfg, sel)
	if !reflect.DeepEqual(got, s) || ev.ScoreDelta != 0 {
		t.Error("SubmitAnswer on a not started session changed it")
	}
	got, _ = HandleMiss(s, cfg, sel)
	if !reflect.DeepEqual(got, s) {
		t.Error("HandleMiss on a not started session changed it")
	}
}

func TestReadingOperationsDoNotMutateInput(t *testing.T) {
	cfg := DefaultReadingConfig()
	s, sel := newTestReading(t, cfg)

	snapshot := s
	snapshotChoices := append(ChoiceSet(nil), s.Choices...)
	_, _ = SubmitAnswer(s, s.Prompt.Answer, cfg, sel)
	_, _ = HandleMiss(s, cfg, sel)
	_ = Tick(s)

	if !reflect.DeepEqual(s, snapshot) || !reflect.DeepEqual(s.Choices, snapshotChoices) {
		t.Error("operations mutated their input state")
	}
}

func TestRetryReading(t *testing.T) {
	cfg := DefaultReadingConfig()
	s, sel := newTestReading(t, cfg)
	for i := 0; i < cfg.MaxLives; i++ {
		s, _ = SubmitAnswer(s, wrongAnswer(s), cfg, sel)
	}

	fresh := RetryReading(1, cfg, sel)
	if fresh.Phase() != PhaseNotStarted || fresh.Score != 0 || fresh.Lives != cfg.MaxLives {
		t.Errorf("retry state = %+v", fresh)
	}
	if !s.GameOver {
		t.Error("retry touched the old state")
	}
}

func TestReadingConfigForStage(t *testing.T) {
	cfg := DefaultReadingConfig().ForStage(models.Stage{FallSeconds: 8})
	if cfg.InitialFallSeconds != 8 {
		t.Errorf("InitialFallSeconds = %.1f, want 8", cfg.InitialFallSeconds)
	}
}

func TestMaxReadingScore(t *testing.T) {
	if got := MaxReadingScore(10, DefaultReadingConfig()); got != 100 {
		t.Errorf("MaxReadingScore(10) = %d, want 100", got)
	}
}

func twelvePrompts() fakePrompts {
	glyphs := []string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十", "百", "千"}
	tier := make([]models.Prompt, len(glyphs))
	for i, g := range glyphs {
		tier[i] = models.Prompt{
			ID:          fmt.Sprintf("k%02d", i+1),
			Glyph:       g,
			Answer:      g + "-yomi",
			Distractors: []string{"x", "y"},
			Grade:       1,
		}
	}
	return fakePrompts{1: tier}
}

func TestReadingRoundDealsDistinctPrompts(t *testing.T) {
	cfg := DefaultReadingConfig()

	for seed := int64(1); seed <= 50; seed++ {
		sel := NewSelector(twelvePrompts(), random.NewSeeded(seed))
		s := Start(NewReading(1, cfg, sel))

		seen := make(map[string]bool)
		for s.Playing {
			if seen[s.Prompt.ID] {
				t.Fatalf("seed %d: prompt %s shown twice in one round", seed, s.Prompt.ID)
			}
			seen[s.Prompt.ID] = true
			s, _ = SubmitAnswer(s, s.Prompt.Answer, cfg, sel)
		}

		if !s.Cleared || len(seen) != cfg.PromptsPerRound {
			t.Fatalf("seed %d: cleared=%v distinct=%d, want %d", seed, s.Cleared, len(seen), cfg.PromptsPerRound)
		}
	}
}

func TestReadingRoundLongerThanTier(t *testing.T) {
	cfg := DefaultReadingConfig()

	for seed := int64(1); seed <= 20; seed++ {
		sel := NewSelector(testPrompts(), random.NewSeeded(seed))
		s := Start(NewReading(1, cfg, sel))

		prev := ""
		for s.Playing {
			if s.Prompt.ID == prev {
				t.Fatalf("seed %d: prompt %s shown twice in a row", seed, prev)
			}
			prev = s.Prompt.ID
			s, _ = SubmitAnswer(s, s.Prompt.Answer, cfg, sel)
		}
		if !s.Cleared || s.CorrectCount != cfg.PromptsPerRound {
			t.Fatalf("seed %d: round over a small tier did not clear: %+v", seed, s)
		}
	}
}
