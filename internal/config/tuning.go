package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"kanjiquest/internal/game"
	"kanjiquest/internal/models"
	"kanjiquest/internal/rewards"
)

// Tuning holds every gameplay number that can be overridden from YAML
type Tuning struct {
	Reading           game.ReadingConfig  `mapstructure:"reading"`
	Writing           game.WritingConfig  `mapstructure:"writing"`
	ReadingThresholds game.RankThresholds `mapstructure:"reading_thresholds"`
	WritingThresholds game.RankThresholds `mapstructure:"writing_thresholds"`
	Rewards           rewards.Config      `mapstructure:"rewards"`
}

// DefaultTuning returns the stock gameplay numbers
func DefaultTuning() Tuning {
	return Tuning{
		Reading:           game.DefaultReadingConfig(),
		Writing:           game.DefaultWritingConfig(),
		ReadingThresholds: game.ReadingThresholds,
		WritingThresholds: game.WritingThresholds,
		Rewards:           rewards.DefaultConfig(),
	}
}

// LoadTuning reads a YAML tuning file over the defaults.
// An empty path or a missing file yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	tuning := DefaultTuning()
	if path == "" {
		return tuning, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return tuning, nil
		}
		return tuning, fmt.Errorf("read tuning file: %w", err)
	}

	// viper's stock hooks plus text unmarshalers for named values like miss_policy
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&tuning, hooks); err != nil {
		return DefaultTuning(), fmt.Errorf("decode tuning file: %w", err)
	}
	if err := overlayRewards(v, &tuning.Rewards); err != nil {
		return DefaultTuning(), fmt.Errorf("decode tuning file: %w", err)
	}
	return tuning, nil
}

// overlayRewards rebuilds the per-rank tables from fresh defaults with each
// rank named in the file laid over its default entry. viper lowercases keys
// and decodes map values from zero, so "s" would otherwise replace the
// whole default S row.
func overlayRewards(v *viper.Viper, cfg *rewards.Config) error {
	defaults := rewards.DefaultConfig()

	cfg.Drops = defaults.Drops
	for _, key := range rankKeys(v, "rewards.drops") {
		rank := models.Rank(strings.ToUpper(key))
		row := cfg.Drops[rank]
		sub := v.Sub("rewards.drops." + key)
		if sub == nil {
			return fmt.Errorf("rewards.drops.%s must be a mapping", key)
		}
		if err := sub.Unmarshal(&row); err != nil {
			return fmt.Errorf("rewards.drops.%s: %w", key, err)
		}
		cfg.Drops[rank] = row
	}

	cfg.CharacterWeights = overlayWeights(v, "rewards.character_weights", defaults.CharacterWeights)
	cfg.FoodWeights = overlayWeights(v, "rewards.food_weights", defaults.FoodWeights)

	cfg.FoodAmounts = defaults.FoodAmounts
	for _, key := range rankKeys(v, "rewards.food_amounts") {
		cfg.FoodAmounts[models.Rank(strings.ToUpper(key))] = v.GetInt("rewards.food_amounts." + key)
	}
	return nil
}

func overlayWeights(v *viper.Viper, path string, weights map[models.Rank]rewards.RarityWeights) map[models.Rank]rewards.RarityWeights {
	for _, key := range rankKeys(v, path) {
		rank := models.Rank(strings.ToUpper(key))
		merged := rewards.RarityWeights{}
		for rarity, w := range weights[rank] {
			merged[rarity] = w
		}
		for rarity := range v.GetStringMap(path + "." + key) {
			merged[models.Rarity(rarity)] = v.GetFloat64(path + "." + key + "." + rarity)
		}
		weights[rank] = merged
	}
	return weights
}

func rankKeys(v *viper.Viper, path string) []string {
	raw := v.GetStringMap(path)
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	return keys
}
