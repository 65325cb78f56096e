package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"kanjiquest/internal/game"
	"kanjiquest/internal/models"
	"kanjiquest/internal/rewards"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerPort != "8080" || cfg.DatabaseType != "sqlite" || cfg.TokenTTL != 720*time.Hour {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.RateLimit != 20 || cfg.RateWindow != time.Minute || cfg.SessionIdleTTL != 2*time.Hour || cfg.BadWordsURL == "" {
		t.Errorf("unexpected limiter or sweep defaults: %+v", cfg)
	}
	if cfg.IsProduction() {
		t.Error("default environment should not be production")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name: "overrides",
			env:  map[string]string{"PORT": "9000", "TOKEN_TTL": "1h", "RANDOM_SEED": "42", "APP_ENV": "production"},
			check: func(t *testing.T, c *Config) {
				if c.ServerPort != "9000" || c.TokenTTL != time.Hour || c.RandomSeed != 42 || !c.IsProduction() {
					t.Errorf("overrides not applied: %+v", c)
				}
			},
		},
		{
			name:    "unknown database type",
			env:     map[string]string{"DB_TYPE": "oracle"},
			wantErr: true,
		},
		{
			name:    "postgres needs a url",
			env:     map[string]string{"DB_TYPE": "postgres"},
			wantErr: true,
		},
		{
			name:    "bad duration",
			env:     map[string]string{"TOKEN_TTL": "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	tuning, err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadTuning() error = %v", err)
	}
	if tuning.Reading.MaxLives != 3 || tuning.Writing.ScorePerCharacter != 100 {
		t.Errorf("expected defaults, got %+v", tuning)
	}
}

func TestLoadTuningOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	content := `
reading:
  max_lives: 5
  prompts_per_round: 20
reading_thresholds:
  s: 95
rewards:
  drops:
    S:
      character_drop_rate: 100
      food_drop_rate: 100
      coin_multiplier: 3
      experience_multiplier: 3
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning() error = %v", err)
	}

	if tuning.Reading.MaxLives != 5 || tuning.Reading.PromptsPerRound != 20 {
		t.Errorf("reading overrides not applied: %+v", tuning.Reading)
	}
	if tuning.Reading.TimeLimitSeconds != 60 {
		t.Errorf("unset field lost its default: %d", tuning.Reading.TimeLimitSeconds)
	}
	if tuning.ReadingThresholds.S != 95 || tuning.ReadingThresholds.A != 80 {
		t.Errorf("thresholds = %+v", tuning.ReadingThresholds)
	}
	if row := tuning.Rewards.Drops.Row(models.RankS); row.CoinMultiplier != 3 {
		t.Errorf("S row = %+v", row)
	}
	if _, ok := tuning.Rewards.Drops["s"]; ok {
		t.Error("lowercase rank key left in drop table")
	}
	if row := tuning.Rewards.Drops.Row(models.RankD); row.CharacterDropRate != 10 {
		t.Errorf("D row should keep its default: %+v", row)
	}
}

func TestLoadTuningPartialRanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	content := `
rewards:
  drops:
    S:
      character_drop_rate: 100
  character_weights:
    C:
      legendary: 1
  food_weights:
    d:
      rare: 5
  food_amounts:
    B: 2
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning() error = %v", err)
	}
	defaults := DefaultTuning().Rewards

	s := tuning.Rewards.Drops.Row(models.RankS)
	want := defaults.Drops[models.RankS]
	want.CharacterDropRate = 100
	if s != want {
		t.Errorf("S row = %+v, want %+v", s, want)
	}

	tests := []struct {
		name   string
		table  map[models.Rank]rewards.RarityWeights
		rank   models.Rank
		rarity models.Rarity
		want   float64
	}{
		{name: "named weight", table: tuning.Rewards.CharacterWeights, rank: models.RankC, rarity: models.RarityLegendary, want: 1},
		{name: "unnamed weight keeps default", table: tuning.Rewards.CharacterWeights, rank: models.RankC, rarity: models.RarityCommon, want: 50},
		{name: "other rank untouched", table: tuning.Rewards.CharacterWeights, rank: models.RankD, rarity: models.RarityLegendary, want: 0},
		{name: "lowercase rank key", table: tuning.Rewards.FoodWeights, rank: models.RankD, rarity: models.RarityRare, want: 5},
		{name: "lowercase rank keeps defaults", table: tuning.Rewards.FoodWeights, rank: models.RankD, rarity: models.RarityCommon, want: 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table[tt.rank][tt.rarity]; got != tt.want {
				t.Errorf("%s/%s = %v, want %v", tt.rank, tt.rarity, got, tt.want)
			}
		})
	}

	if len(tuning.Rewards.CharacterWeights[models.RankC]) != len(defaults.CharacterWeights[models.RankC]) {
		t.Errorf("C weights = %v", tuning.Rewards.CharacterWeights[models.RankC])
	}
	if tuning.Rewards.FoodAmounts[models.RankB] != 2 || tuning.Rewards.FoodAmounts[models.RankS] != 3 {
		t.Errorf("food amounts = %v", tuning.Rewards.FoodAmounts)
	}
	for _, table := range []map[models.Rank]rewards.RarityWeights{tuning.Rewards.CharacterWeights, tuning.Rewards.FoodWeights} {
		for rank := range table {
			if rank != models.Rank(strings.ToUpper(string(rank))) {
				t.Errorf("lowercase rank key %q left in weights", rank)
			}
		}
	}
}

func TestLoadTuningMissPolicy(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    game.MissPolicy
		wantErr bool
	}{
		{name: "named keep", value: "keep", want: game.MissKeepPrompt},
		{name: "named advance", value: "advance", want: game.MissAdvance},
		{name: "numeric", value: "1", want: game.MissAdvance},
		{name: "unknown name", value: "retry", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			content := "reading:\n  max_lives: 4\n  miss_policy: " + tt.value + "\n"
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatal(err)
			}

			tuning, err := LoadTuning(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadTuning() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tuning.Reading.MissPolicy != tt.want || tuning.Reading.MaxLives != 4 {
				t.Errorf("reading = %+v, want miss policy %v", tuning.Reading, tt.want)
			}
		})
	}
}

func TestLoadTuningMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("reading: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTuning(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
