package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"kanjiquest/internal/catalog"
	"kanjiquest/internal/database"
	"kanjiquest/internal/ledger"
	"kanjiquest/internal/models"
	"kanjiquest/internal/repository"
)

// MissionView is a mission with its derived status
type MissionView struct {
	models.Mission
	models.MissionStatus
}

// FeedResult is a fed character and what the food did
type FeedResult struct {
	Character models.OwnedCharacter `json:"character"`
	Outcome   ledger.FeedOutcome    `json:"outcome"`
}

// DailyService runs the daily engagement loop: login bonuses, missions,
// feeding and evolving characters
type DailyService struct {
	db        *database.DB
	catalog   catalog.Provider
	players   *repository.PlayerRepository
	inventory *repository.InventoryRepository
	missions  *repository.MissionRepository
	logins    *repository.LedgerRepository
	now       func() time.Time
	log       logrus.FieldLogger
}

// NewDailyService creates a new daily service
func NewDailyService(db *database.DB, cat catalog.Provider, log logrus.FieldLogger) *DailyService {
	return &DailyService{
		db:        db,
		catalog:   cat,
		players:   repository.NewPlayerRepository(db),
		inventory: repository.NewInventoryRepository(db),
		missions:  repository.NewMissionRepository(db),
		logins:    repository.NewLedgerRepository(db),
		now:       time.Now,
		log:       log,
	}
}

// Login records today's visit and grants the streak bonus on the first
// visit of the day. Later visits return the streak without a bonus.
func (s *DailyService) Login(playerID int64) (models.StreakLedgerEntry, error) {
	now := s.now()
	today := dayOf(now)
	yesterday := dayOf(now.UTC().AddDate(0, 0, -1))

	var entry models.StreakLedgerEntry
	err := s.db.WithTx(func(tx *database.Tx) error {
		logins := s.logins.WithTx(tx)
		players := s.players.WithTx(tx)

		p, err := players.GetPlayerByID(playerID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrPlayerNotFound
		}

		existing, err := logins.GetLogin(playerID, today)
		if err != nil {
			return err
		}
		if existing != nil {
			entry = ledger.ComputeLoginBonus(existing.Streak, false, false)
			return nil
		}

		last, err := logins.LastLogin(playerID, today)
		if err != nil {
			return err
		}
		previous, continued := 0, false
		if last != nil {
			previous = last.Streak
			continued = last.Day == yesterday
		}

		entry = ledger.ComputeLoginBonus(previous, true, continued)
		inserted, err := logins.RecordLogin(models.LoginRecord{
			PlayerID:   playerID,
			Day:        today,
			Streak:     entry.LoginStreakDays,
			BonusCoins: entry.BonusCoins,
		})
		if err != nil {
			return err
		}
		if !inserted {
			// a concurrent request got there first
			entry = ledger.ComputeLoginBonus(entry.LoginStreakDays, false, false)
			return nil
		}

		if err := players.AddCurrency(playerID, entry.BonusCoins, 0); err != nil {
			return err
		}
		if entry.BonusFood != nil {
			if err := s.inventory.WithTx(tx).AddFood(playerID, entry.BonusFood.FoodID, entry.BonusFood.Amount); err != nil {
				return err
			}
		}
		return players.UpdateLoginStreak(playerID, entry.LoginStreakDays, today)
	})
	if err != nil {
		return models.StreakLedgerEntry{}, fmt.Errorf("failed to record login: %w", err)
	}

	if entry.IsNewCalendarDay {
		s.log.WithFields(logrus.Fields{
			"player_id": playerID,
			"streak":    entry.LoginStreakDays,
			"coins":     entry.BonusCoins,
		}).Info("login bonus granted")
	}
	return entry, nil
}

// Missions returns today's missions, creating the defaults on first look
func (s *DailyService) Missions(playerID int64) ([]MissionView, error) {
	today := dayOf(s.now())
	if err := s.missions.EnsureMissions(playerID, ledger.DefaultDailyMissions(today)); err != nil {
		return nil, err
	}

	missions, err := s.missions.ListMissions(playerID, today)
	if err != nil {
		return nil, err
	}

	views := make([]MissionView, 0, len(missions))
	for _, m := range missions {
		views = append(views, MissionView{Mission: m, MissionStatus: ledger.MissionProgress(m)})
	}
	return views, nil
}

// ClaimMission pays out a completed mission. Only one of several concurrent
// claims succeeds.
func (s *DailyService) ClaimMission(playerID, missionID int64) (models.Mission, error) {
	var claimed models.Mission
	err := s.db.WithTx(func(tx *database.Tx) error {
		missions := s.missions.WithTx(tx)

		m, err := missions.GetMission(playerID, missionID)
		if err != nil {
			return err
		}
		if m == nil {
			return ErrMissionNotFound
		}

		claimed, err = ledger.Claim(*m)
		if err != nil {
			return err
		}
		if err := missions.MarkClaimed(playerID, missionID); err != nil {
			if errors.Is(err, repository.ErrMissionNotClaimable) {
				return ledger.ErrAlreadyClaimed
			}
			return err
		}

		if err := s.players.WithTx(tx).AddCurrency(playerID, claimed.RewardCoins, 0); err != nil {
			return err
		}
		if claimed.RewardFoodID != "" {
			return s.inventory.WithTx(tx).AddFood(playerID, claimed.RewardFoodID, 1)
		}
		return nil
	})
	if err != nil {
		return models.Mission{}, err
	}

	s.log.WithFields(logrus.Fields{
		"player_id":  playerID,
		"mission_id": missionID,
		"type":       claimed.Type,
	}).Info("mission claimed")
	return claimed, nil
}

// Inventory returns a player's balances, foods and characters
func (s *DailyService) Inventory(playerID int64) (models.Inventory, error) {
	p, err := s.players.GetPlayerByID(playerID)
	if err != nil {
		return models.Inventory{}, err
	}
	if p == nil {
		return models.Inventory{}, ErrPlayerNotFound
	}

	foods, err := s.inventory.ListFoods(playerID)
	if err != nil {
		return models.Inventory{}, err
	}
	chars, err := s.inventory.ListCharacters(playerID)
	if err != nil {
		return models.Inventory{}, err
	}

	return models.Inventory{
		Coins:      p.Coins,
		Experience: p.Experience,
		Foods:      foods,
		Characters: chars,
	}, nil
}

// Feed gives one food item to an owned character
func (s *DailyService) Feed(playerID int64, characterID, foodID string) (FeedResult, error) {
	food, ok := s.catalog.Food(foodID)
	if !ok {
		return FeedResult{}, ErrUnknownFood
	}
	desc, ok := s.catalog.Character(characterID)
	if !ok {
		return FeedResult{}, ErrUnknownCharacter
	}

	var result FeedResult
	err := s.db.WithTx(func(tx *database.Tx) error {
		inventory := s.inventory.WithTx(tx)

		c, err := inventory.GetCharacter(playerID, characterID)
		if err != nil {
			return err
		}
		if c == nil {
			return repository.ErrCharacterNotOwned
		}

		if err := inventory.ConsumeFood(playerID, foodID, 1); err != nil {
			return err
		}

		fed, outcome := ledger.Feed(*c, food, desc)
		if err := inventory.UpdateCharacterGrowth(fed); err != nil {
			return err
		}

		missions := s.missions.WithTx(tx)
		today := dayOf(s.now())
		if err := missions.EnsureMissions(playerID, ledger.DefaultDailyMissions(today)); err != nil {
			return err
		}
		if err := missions.IncrementProgress(playerID, today, models.MissionFeedCharacter, 1); err != nil {
			return err
		}

		result = FeedResult{Character: fed, Outcome: outcome}
		return nil
	})
	if err != nil {
		return FeedResult{}, err
	}

	s.log.WithFields(logrus.Fields{
		"player_id":    playerID,
		"character_id": characterID,
		"food_id":      foodID,
		"level":        result.Character.Level,
	}).Info("character fed")
	return result, nil
}

// Evolve turns an owned character into its next form, keeping its growth.
// Evolving into a form the player already owns is refused.
func (s *DailyService) Evolve(playerID int64, characterID string) (models.CharacterDescriptor, error) {
	desc, ok := s.catalog.Character(characterID)
	if !ok {
		return models.CharacterDescriptor{}, ErrUnknownCharacter
	}
	next, ok := s.catalog.Character(desc.EvolutionTo)
	if !ok {
		return models.CharacterDescriptor{}, ErrCannotEvolve
	}

	err := s.db.WithTx(func(tx *database.Tx) error {
		inventory := s.inventory.WithTx(tx)

		c, err := inventory.GetCharacter(playerID, characterID)
		if err != nil {
			return err
		}
		if c == nil {
			return repository.ErrCharacterNotOwned
		}
		if !ledger.CanEvolve(*c, desc) {
			return ErrCannotEvolve
		}

		owned, err := inventory.GetCharacter(playerID, next.ID)
		if err != nil {
			return err
		}
		if owned != nil {
			return ErrCannotEvolve
		}
		return inventory.ReplaceCharacter(playerID, characterID, next.ID, s.now().UTC())
	})
	if err != nil {
		return models.CharacterDescriptor{}, err
	}

	s.log.WithFields(logrus.Fields{
		"player_id": playerID,
		"from":      characterID,
		"to":        next.ID,
	}).Info("character evolved")
	return next, nil
}
