package service

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"kanjiquest/internal/database"
	"kanjiquest/internal/models"
	"kanjiquest/internal/repository"
)

const backupVersion = "1.0"

// BackupData represents the complete database backup structure
type BackupData struct {
	Version    string         `json:"version"`
	ExportedAt time.Time      `json:"exported_at"`
	Players    []PlayerBackup `json:"players"`
}

// PlayerBackup is one player with everything they earned
type PlayerBackup struct {
	Name         string                  `json:"name"`
	Handle       string                  `json:"handle"`
	ParentEmail  string                  `json:"parent_email"`
	ParentPIN    string                  `json:"parent_pin"`
	Coins        int                     `json:"coins"`
	Experience   int                     `json:"experience"`
	LoginStreak  int                     `json:"login_streak"`
	LastLoginDay string                  `json:"last_login_day"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
	Results      []ResultBackup          `json:"results"`
	Foods        []models.InventoryItem  `json:"foods"`
	Characters   []models.OwnedCharacter `json:"characters"`
	Logins       []LoginBackup           `json:"logins"`
	Missions     []models.Mission        `json:"missions"`
}

// ResultBackup is a game result with its reward lines
type ResultBackup struct {
	models.GameResult
	Grants []models.RewardGrant `json:"grants"`
}

// LoginBackup is one login ledger row
type LoginBackup struct {
	Day        string `json:"day"`
	Streak     int    `json:"streak"`
	BonusCoins int    `json:"bonus_coins"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db        *database.DB
	players   *repository.PlayerRepository
	results   *repository.ResultRepository
	inventory *repository.InventoryRepository
	logins    *repository.LedgerRepository
	missions  *repository.MissionRepository
	log       logrus.FieldLogger
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB, log logrus.FieldLogger) *BackupService {
	return &BackupService{
		db:        db,
		players:   repository.NewPlayerRepository(db),
		results:   repository.NewResultRepository(db),
		inventory: repository.NewInventoryRepository(db),
		logins:    repository.NewLedgerRepository(db),
		missions:  repository.NewMissionRepository(db),
		log:       log,
	}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	s.log.WithField("path", outputPath).Info("Database exported successfully")
	return nil
}

// ExportToWriter writes the backup as indented JSON to w
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup, err := s.collect()
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a backup into an empty database. Player ids are
// reassigned; everything is written in one transaction.
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.Version != backupVersion {
		return fmt.Errorf("%w: %q", ErrUnsupportedBackup, backup.Version)
	}

	existing, err := s.players.ListPlayers()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return ErrBackupNotEmpty
	}

	err = s.db.WithTx(func(tx *database.Tx) error {
		for _, pb := range backup.Players {
			if err := s.restorePlayer(tx, pb); err != nil {
				return fmt.Errorf("player %s: %w", pb.Handle, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to import backup: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"version":     backup.Version,
		"exported_at": backup.ExportedAt,
		"players":     len(backup.Players),
	}).Info("Database imported successfully")
	return nil
}

func (s *BackupService) collect() (*BackupData, error) {
	players, err := s.players.ListPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to export players: %w", err)
	}

	backup := &BackupData{
		Version:    backupVersion,
		ExportedAt: time.Now().UTC(),
		Players:    make([]PlayerBackup, 0, len(players)),
	}
	for _, p := range players {
		pb, err := s.collectPlayer(p)
		if err != nil {
			return nil, fmt.Errorf("failed to export player %d: %w", p.ID, err)
		}
		backup.Players = append(backup.Players, pb)
	}
	return backup, nil
}

func (s *BackupService) collectPlayer(p models.Player) (PlayerBackup, error) {
	pb := PlayerBackup{
		Name:         p.Name,
		Handle:       p.Handle,
		ParentEmail:  p.ParentEmail,
		ParentPIN:    p.ParentPIN,
		Coins:        p.Coins,
		Experience:   p.Experience,
		LoginStreak:  p.LoginStreak,
		LastLoginDay: p.LastLoginDay,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	results, err := s.results.ListResults(p.ID, 0)
	if err != nil {
		return pb, err
	}
	for _, r := range results {
		grants, err := s.results.GetGrants(r.ID)
		if err != nil {
			return pb, err
		}
		pb.Results = append(pb.Results, ResultBackup{GameResult: r, Grants: grants})
	}

	if pb.Foods, err = s.inventory.ListFoods(p.ID); err != nil {
		return pb, err
	}
	if pb.Characters, err = s.inventory.ListCharacters(p.ID); err != nil {
		return pb, err
	}

	logins, err := s.logins.ListLogins(p.ID)
	if err != nil {
		return pb, err
	}
	for _, l := range logins {
		pb.Logins = append(pb.Logins, LoginBackup{Day: l.Day, Streak: l.Streak, BonusCoins: l.BonusCoins})
	}

	pb.Missions, err = s.missions.ListAllMissions(p.ID)
	return pb, err
}

func (s *BackupService) restorePlayer(tx *database.Tx, pb PlayerBackup) error {
	id, err := s.players.WithTx(tx).RestorePlayer(models.Player{
		Name:         pb.Name,
		Handle:       pb.Handle,
		ParentEmail:  pb.ParentEmail,
		ParentPIN:    pb.ParentPIN,
		Coins:        pb.Coins,
		Experience:   pb.Experience,
		LoginStreak:  pb.LoginStreak,
		LastLoginDay: pb.LastLoginDay,
		CreatedAt:    pb.CreatedAt,
		UpdatedAt:    pb.UpdatedAt,
	})
	if err != nil {
		return err
	}

	results := s.results.WithTx(tx)
	for _, rb := range pb.Results {
		res := rb.GameResult
		res.PlayerID = id
		resultID, err := results.RestoreResult(res)
		if err != nil {
			return err
		}
		bundle := make(models.RewardBundle, 0, len(rb.Grants))
		for _, g := range rb.Grants {
			bundle = append(bundle, models.RewardLine{Kind: g.Kind, ID: g.ItemID, Amount: g.Amount})
		}
		if err := results.AddGrants(resultID, bundle); err != nil {
			return err
		}
	}

	inventory := s.inventory.WithTx(tx)
	for _, f := range pb.Foods {
		if err := inventory.AddFood(id, f.FoodID, f.Amount); err != nil {
			return err
		}
	}
	for _, c := range pb.Characters {
		c.PlayerID = id
		if err := inventory.RestoreCharacter(c); err != nil {
			return err
		}
	}

	logins := s.logins.WithTx(tx)
	for _, l := range pb.Logins {
		if _, err := logins.RecordLogin(models.LoginRecord{PlayerID: id, Day: l.Day, Streak: l.Streak, BonusCoins: l.BonusCoins}); err != nil {
			return err
		}
	}

	missions := s.missions.WithTx(tx)
	for _, m := range pb.Missions {
		m.PlayerID = id
		if err := missions.RestoreMission(m); err != nil {
			return err
		}
	}
	return nil
}
