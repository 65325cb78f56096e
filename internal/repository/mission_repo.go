package repository

import (
	"database/sql"
	"fmt"

	"kanjiquest/internal/database"
	"kanjiquest/internal/models"
)

const missionColumns = `id, player_id, mission_date, mission_type, title, target_count, current_count,
	reward_coins, reward_food_id, claimed`

// MissionRepository handles daily missions
type MissionRepository struct {
	db database.DBTX
}

// NewMissionRepository creates a new mission repository
func NewMissionRepository(db database.DBTX) *MissionRepository {
	return &MissionRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *MissionRepository) WithTx(tx *database.Tx) *MissionRepository {
	return &MissionRepository{db: tx}
}

// EnsureMissions creates the given missions for a player's day. Missions that
// already exist for that day and type are left alone.
func (r *MissionRepository) EnsureMissions(playerID int64, missions []models.Mission) error {
	query := r.db.GetDialect().InsertIgnore("daily_missions",
		"player_id", "mission_date", "mission_type", "title", "target_count", "reward_coins", "reward_food_id")
	for _, m := range missions {
		if _, err := r.db.Exec(query, playerID, m.Date, string(m.Type), m.Title, m.TargetCount, m.RewardCoins, m.RewardFoodID); err != nil {
			return fmt.Errorf("failed to create mission: %w", err)
		}
	}
	return nil
}

// ListMissions returns a player's missions for one day
func (r *MissionRepository) ListMissions(playerID int64, date string) ([]models.Mission, error) {
	query := "SELECT " + missionColumns + " FROM daily_missions WHERE player_id = ? AND mission_date = ? ORDER BY id ASC"
	return r.queryMissions(query, playerID, date)
}

// ListAllMissions returns every mission a player ever had, oldest day first
func (r *MissionRepository) ListAllMissions(playerID int64) ([]models.Mission, error) {
	query := "SELECT " + missionColumns + " FROM daily_missions WHERE player_id = ? ORDER BY mission_date ASC, id ASC"
	return r.queryMissions(query, playerID)
}

// RestoreMission inserts a mission with its progress, used by backup import
func (r *MissionRepository) RestoreMission(m models.Mission) error {
	query := `
		INSERT INTO daily_missions (player_id, mission_date, mission_type, title, target_count,
			current_count, reward_coins, reward_food_id, claimed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, m.PlayerID, m.Date, string(m.Type), m.Title, m.TargetCount,
		m.CurrentCount, m.RewardCoins, m.RewardFoodID, m.Claimed); err != nil {
		return fmt.Errorf("failed to restore mission: %w", err)
	}
	return nil
}

func (r *MissionRepository) queryMissions(query string, args ...interface{}) ([]models.Mission, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query missions: %w", err)
	}
	defer rows.Close()

	var missions []models.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		missions = append(missions, *m)
	}
	return missions, rows.Err()
}

// GetMission returns one of a player's missions. A missing mission yields nil, nil.
func (r *MissionRepository) GetMission(playerID, missionID int64) (*models.Mission, error) {
	query := "SELECT " + missionColumns + " FROM daily_missions WHERE id = ? AND player_id = ?"
	m, err := scanMission(r.db.QueryRow(query, missionID, playerID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return m, nil
}

// IncrementProgress adds progress to the unclaimed mission of a type for a day
func (r *MissionRepository) IncrementProgress(playerID int64, date string, missionType models.MissionType, by int) error {
	if by <= 0 {
		return nil
	}
	query := `
		UPDATE daily_missions
		SET current_count = current_count + ?
		WHERE player_id = ? AND mission_date = ? AND mission_type = ? AND claimed = FALSE
	`
	if _, err := r.db.Exec(query, by, playerID, date, string(missionType)); err != nil {
		return fmt.Errorf("failed to update mission progress: %w", err)
	}
	return nil
}

// MarkClaimed flips claimed to true only if the mission is still unclaimed
// and complete. Of two racing claims exactly one succeeds.
func (r *MissionRepository) MarkClaimed(playerID, missionID int64) error {
	query := `
		UPDATE daily_missions
		SET claimed = TRUE
		WHERE id = ? AND player_id = ? AND claimed = FALSE AND current_count >= target_count
	`
	res, err := r.db.Exec(query, missionID, playerID)
	if err != nil {
		return fmt.Errorf("failed to claim mission: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check claimed mission: %w", err)
	}
	if n == 0 {
		return ErrMissionNotClaimable
	}
	return nil
}

func scanMission(row rowScanner) (*models.Mission, error) {
	m := &models.Mission{}
	var missionType string
	err := row.Scan(
		&m.ID,
		&m.PlayerID,
		&m.Date,
		&missionType,
		&m.Title,
		&m.TargetCount,
		&m.CurrentCount,
		&m.RewardCoins,
		&m.RewardFoodID,
		&m.Claimed,
	)
	if err != nil {
		return nil, err
	}
	m.Type = models.MissionType(missionType)
	return m, nil
}
