package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"kanjiquest/internal/catalog"
	"kanjiquest/internal/service"
	"kanjiquest/internal/validation"
)

// PlayerHandler handles registration and the public catalog
type PlayerHandler struct {
	auth     *service.AuthService
	catalog  catalog.Provider
	validate *validation.Validator
	log      logrus.FieldLogger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(auth *service.AuthService, cat catalog.Provider, validate *validation.Validator, log logrus.FieldLogger) *PlayerHandler {
	return &PlayerHandler{
		auth:     auth,
		catalog:  cat,
		validate: validate,
		log:      log,
	}
}

// Register creates a player and returns its token
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}

	p, token, err := h.auth.Register(req.Name, req.ParentEmail)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, registerResponse{
		PlayerID: p.ID,
		Name:     p.Name,
		Handle:   p.Handle,
		Token:    token,
	})
}

// Me returns the authenticated player
func (h *PlayerHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	p, err := h.auth.Player(id)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, playerResponse{
		ID:           p.ID,
		Name:         p.Name,
		Handle:       p.Handle,
		HasParentPIN: p.HasParentPIN(),
		HasEmail:     p.ParentEmail != "",
		Coins:        p.Coins,
		Experience:   p.Experience,
		LoginStreak:  p.LoginStreak,
	})
}

// Stages lists the reading stages
func (h *PlayerHandler) Stages(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Stages())
}

// StrokeSets lists the writing sets
func (h *PlayerHandler) StrokeSets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.StrokeSets())
}

// Characters lists every collectible character
func (h *PlayerHandler) Characters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Characters())
}

// EvolutionChain lists a character's forms from first to last
func (h *PlayerHandler) EvolutionChain(w http.ResponseWriter, r *http.Request) {
	chain := h.catalog.EvolutionChain(r.PathValue("id"))
	if len(chain) == 0 {
		respondWithServiceError(w, h.log, service.ErrUnknownCharacter)
		return
	}
	respondJSON(w, http.StatusOK, chain)
}
