package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"kanjiquest/internal/database"
	"kanjiquest/internal/ledger"
	"kanjiquest/internal/models"
	"kanjiquest/internal/repository"
	"kanjiquest/internal/rewards"
)

const dayLayout = "2006-01-02"

// calendar days are UTC
func dayOf(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// RewardService turns finished sessions into stored results and granted rewards
type RewardService struct {
	db        *database.DB
	players   *repository.PlayerRepository
	results   *repository.ResultRepository
	inventory *repository.InventoryRepository
	missions  *repository.MissionRepository
	engine    *rewards.Engine
	now       func() time.Time
	log       logrus.FieldLogger
}

// NewRewardService creates a new reward service
func NewRewardService(db *database.DB, engine *rewards.Engine, log logrus.FieldLogger) *RewardService {
	return &RewardService{
		db:        db,
		players:   repository.NewPlayerRepository(db),
		results:   repository.NewResultRepository(db),
		inventory: repository.NewInventoryRepository(db),
		missions:  repository.NewMissionRepository(db),
		engine:    engine,
		now:       time.Now,
		log:       log,
	}
}

// FinishSession resolves the rewards for a summary and stores the result,
// its grants, the player's new balances and inventory, and the mission
// progress it earns, all in one transaction
func (s *RewardService) FinishSession(ctx context.Context, playerID int64, summary models.SessionSummary) (models.RewardBundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bundle := s.engine.Resolve(summary)
	day := dayOf(s.now())

	var resultID int64
	err := s.db.WithTx(func(tx *database.Tx) error {
		results := s.results.WithTx(tx)
		inventory := s.inventory.WithTx(tx)
		missions := s.missions.WithTx(tx)

		res, err := results.CreateResult(playerID, summary)
		if err != nil {
			return err
		}
		resultID = res.ID

		if err := results.AddGrants(res.ID, bundle); err != nil {
			return err
		}

		var coins, exp int
		newCharacters := 0
		for _, line := range bundle {
			switch line.Kind {
			case models.RewardCoin:
				coins += line.Amount
			case models.RewardExperience:
				exp += line.Amount
			case models.RewardFood:
				if err := inventory.AddFood(playerID, line.ID, line.Amount); err != nil {
					return err
				}
			case models.RewardCharacter:
				added, err := inventory.AddCharacter(playerID, line.ID)
				if err != nil {
					return err
				}
				if added {
					newCharacters++
				}
			}
		}

		if err := s.players.WithTx(tx).AddCurrency(playerID, coins, exp); err != nil {
			return err
		}

		if err := missions.EnsureMissions(playerID, ledger.DefaultDailyMissions(day)); err != nil {
			return err
		}
		if err := missions.IncrementProgress(playerID, day, models.MissionPlayGame, 1); err != nil {
			return err
		}
		if summary.Cleared {
			if err := missions.IncrementProgress(playerID, day, models.MissionClearStage, 1); err != nil {
				return err
			}
		}
		if newCharacters > 0 {
			return missions.IncrementProgress(playerID, day, models.MissionGetCharacter, newCharacters)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to finish session: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"player_id": playerID,
		"result_id": resultID,
		"mode":      summary.Mode,
		"stage_id":  summary.StageID,
		"rank":      summary.Rank,
		"cleared":   summary.Cleared,
		"lines":     len(bundle),
	}).Info("session finished")

	return bundle, nil
}
