package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"kanjiquest/internal/credentials"
	"kanjiquest/internal/database"
	"kanjiquest/internal/models"
	"kanjiquest/internal/repository"
	"kanjiquest/internal/security"
	"kanjiquest/internal/validation"
)

// ParentTokenTTL bounds how long a passed parent gate stays open
const ParentTokenTTL = 15 * time.Minute

// AuthService registers players, issues their tokens and guards the
// parent area with a PIN
type AuthService struct {
	db      *database.DB
	players *repository.PlayerRepository
	tokens  *security.TokenIssuer
	log     logrus.FieldLogger
}

// NewAuthService creates a new auth service
func NewAuthService(db *database.DB, players *repository.PlayerRepository, tokens *security.TokenIssuer, log logrus.FieldLogger) *AuthService {
	return &AuthService{
		db:      db,
		players: players,
		tokens:  tokens,
		log:     log,
	}
}

// Register creates a player profile with a generated handle and returns it
// with a play token
func (s *AuthService) Register(name, parentEmail string) (*models.Player, string, error) {
	name = strings.TrimSpace(name)
	parentEmail = strings.TrimSpace(parentEmail)

	if err := validation.ValidateName(name); err != nil {
		return nil, "", err
	}
	if parentEmail != "" {
		if err := validation.ValidateEmail(parentEmail); err != nil {
			return nil, "", err
		}
	}

	bad, err := s.db.ContainsBadWord(name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to screen name: %w", err)
	}
	if bad {
		return nil, "", ErrNameNotAllowed
	}

	handle, err := credentials.GenerateHandle(s.players.HandleExists)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate handle: %w", err)
	}

	player, err := s.players.CreatePlayer(name, handle, parentEmail)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(player.ID, false, 0)
	if err != nil {
		return nil, "", err
	}

	s.log.WithFields(logrus.Fields{"player_id": player.ID, "handle": handle}).Info("player registered")
	return player, token, nil
}

// Authenticate verifies a bearer token and returns its claims
func (s *AuthService) Authenticate(token string) (*security.Claims, error) {
	return s.tokens.Verify(token)
}

// Player loads a player, mapping a missing row to ErrPlayerNotFound
func (s *AuthService) Player(playerID int64) (*models.Player, error) {
	p, err := s.players.GetPlayerByID(playerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

// SetParentPIN sets or changes the parent PIN. Changing an existing PIN
// requires the current one.
func (s *AuthService) SetParentPIN(playerID int64, currentPIN, newPIN string) error {
	if err := validation.ValidatePIN(newPIN); err != nil {
		return err
	}

	p, err := s.Player(playerID)
	if err != nil {
		return err
	}
	if p.HasParentPIN() && !security.CheckPIN(currentPIN, p.ParentPIN) {
		return ErrInvalidPIN
	}

	hash, err := security.HashPIN(newPIN)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	if err := s.players.SetParentPIN(playerID, hash); err != nil {
		return err
	}

	s.log.WithField("player_id", playerID).Info("parent PIN updated")
	return nil
}

// VerifyParentPIN opens the parent gate and returns a short lived parent token
func (s *AuthService) VerifyParentPIN(playerID int64, pin string) (string, error) {
	p, err := s.Player(playerID)
	if err != nil {
		return "", err
	}
	if !p.HasParentPIN() {
		return "", ErrPINNotSet
	}
	if !security.CheckPIN(pin, p.ParentPIN) {
		s.log.WithField("player_id", playerID).Warn("parent PIN rejected")
		return "", ErrInvalidPIN
	}
	return s.tokens.Issue(playerID, true, ParentTokenTTL)
}

// SetParentEmail changes where weekly reports go; the parent gate must be open
func (s *AuthService) SetParentEmail(playerID int64, email string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	return s.players.SetParentEmail(playerID, strings.TrimSpace(email))
}
