package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"kanjiquest/internal/service"
	"kanjiquest/internal/validation"
)

// DailyHandler handles login bonuses, missions and the character collection
type DailyHandler struct {
	daily    *service.DailyService
	validate *validation.Validator
	log      logrus.FieldLogger
}

// NewDailyHandler creates a new daily handler
func NewDailyHandler(daily *service.DailyService, validate *validation.Validator, log logrus.FieldLogger) *DailyHandler {
	return &DailyHandler{
		daily:    daily,
		validate: validate,
		log:      log,
	}
}

// Login records today's visit
func (h *DailyHandler) Login(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	entry, err := h.daily.Login(pid)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// Missions lists today's missions
func (h *DailyHandler) Missions(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	missions, err := h.daily.Missions(pid)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, missions)
}

// Claim pays out a completed mission
func (h *DailyHandler) Claim(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	missionID, err := pathInt64(r, "id")
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	m, err := h.daily.ClaimMission(pid, missionID)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

// Inventory returns balances, foods and characters
func (h *DailyHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	inv, err := h.daily.Inventory(pid)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, inv)
}

// Feed gives a food to an owned character
func (h *DailyHandler) Feed(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	var req feedRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	res, err := h.daily.Feed(pid, r.PathValue("id"), req.FoodID)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Evolve turns an owned character into its next form
func (h *DailyHandler) Evolve(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	next, err := h.daily.Evolve(pid, r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, next)
}
