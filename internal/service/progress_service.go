package service

import (
	"time"

	"kanjiquest/internal/catalog"
	"kanjiquest/internal/models"
	"kanjiquest/internal/repository"
)

const (
	minutesPerGame = 5
	kanjiPerClear  = 5
)

// ProgressService builds the parent facing view of a player's learning
type ProgressService struct {
	catalog   catalog.Provider
	players   *repository.PlayerRepository
	results   *repository.ResultRepository
	inventory *repository.InventoryRepository
}

// NewProgressService creates a new progress service
func NewProgressService(cat catalog.Provider, players *repository.PlayerRepository, results *repository.ResultRepository, inventory *repository.InventoryRepository) *ProgressService {
	return &ProgressService{
		catalog:   cat,
		players:   players,
		results:   results,
		inventory: inventory,
	}
}

// Summary aggregates a player's results into the learning overview.
// Play time and kanji mastered are estimates per game and per clear.
func (s *ProgressService) Summary(playerID int64) (models.LearningSummary, error) {
	p, err := s.players.GetPlayerByID(playerID)
	if err != nil {
		return models.LearningSummary{}, err
	}
	if p == nil {
		return models.LearningSummary{}, ErrPlayerNotFound
	}

	stats, err := s.results.GetStats(playerID)
	if err != nil {
		return models.LearningSummary{}, err
	}
	owned, err := s.inventory.CountCharacters(playerID)
	if err != nil {
		return models.LearningSummary{}, err
	}
	best, err := s.results.BestRank(playerID)
	if err != nil {
		return models.LearningSummary{}, err
	}

	total := stats.Total()
	return models.LearningSummary{
		PlayerName:       p.Name,
		TotalGamesPlayed: total.Games,
		TotalPlayMinutes: total.Games * minutesPerGame,
		ClearedCount:     stats.Cleared,
		KanjiMastered:    stats.Cleared * kanjiPerClear,
		AverageAccuracy:  total.Accuracy(),
		ReadingAccuracy:  stats.Reading.Accuracy(),
		WritingAccuracy:  stats.Writing.Accuracy(),
		CharacterCount:   owned,
		CollectionRate:   s.catalog.CollectionRate(owned),
		LoginStreak:      p.LoginStreak,
		BestRank:         best,
	}, nil
}

// History returns the latest results, newest first
func (s *ProgressService) History(playerID int64, limit int) ([]models.GameResult, error) {
	return s.results.ListResults(playerID, limit)
}

// Since returns the results played at or after since, oldest first
func (s *ProgressService) Since(playerID int64, since time.Time) ([]models.GameResult, error) {
	return s.results.ListResultsSince(playerID, since)
}
