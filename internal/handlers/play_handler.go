package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"kanjiquest/internal/game"
	"kanjiquest/internal/service"
	"kanjiquest/internal/validation"
)

// PlayHandler exposes live reading and writing sessions
type PlayHandler struct {
	play     *service.PlayService
	validate *validation.Validator
	log      logrus.FieldLogger
}

// NewPlayHandler creates a new play handler
func NewPlayHandler(play *service.PlayService, validate *validation.Validator, log logrus.FieldLogger) *PlayHandler {
	return &PlayHandler{
		play:     play,
		validate: validate,
		log:      log,
	}
}

type sessionOp func(ctx context.Context, playerID int64, id string) (*service.SessionView, error)

// session adapts a body-less session operation to a handler
func (h *PlayHandler) session(op sessionOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pid, err := playerID(r)
		if err != nil {
			respondWithServiceError(w, h.log, err)
			return
		}
		v, err := op(r.Context(), pid, r.PathValue("id"))
		h.respond(w, v, err)
	}
}

func (h *PlayHandler) respond(w http.ResponseWriter, v *service.SessionView, err error) {
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// NewReading opens a reading session
func (h *PlayHandler) NewReading(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	var req readingRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}

	v, err := h.play.NewReadingSession(pid, req.StageID)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

// NewWriting opens a writing session
func (h *PlayHandler) NewWriting(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	var req writingRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}

	v, err := h.play.NewWritingSession(pid, req.SetID)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

// Get returns a session's current state
func (h *PlayHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.session(h.play.Get)(w, r)
}

// Start begins play
func (h *PlayHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.session(h.play.Start)(w, r)
}

// Retry starts a session over
func (h *PlayHandler) Retry(w http.ResponseWriter, r *http.Request) {
	h.session(h.play.Retry)(w, r)
}

// Tick consumes one second of a reading session
func (h *PlayHandler) Tick(w http.ResponseWriter, r *http.Request) {
	h.session(h.play.Tick)(w, r)
}

// Miss reports a prompt that fell unanswered
func (h *PlayHandler) Miss(w http.ResponseWriter, r *http.Request) {
	h.session(h.play.Miss)(w, r)
}

// Answer submits a reading answer
func (h *PlayHandler) Answer(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	var req answerRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	v, err := h.play.Answer(r.Context(), pid, r.PathValue("id"), req.Answer)
	h.respond(w, v, err)
}

// Mode switches how the current writing character is practiced
func (h *PlayHandler) Mode(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	var req modeRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	v, err := h.play.SwitchMode(r.Context(), pid, r.PathValue("id"), game.WritingMode(req.Mode))
	h.respond(w, v, err)
}

// Stroke records one traced stroke
func (h *PlayHandler) Stroke(w http.ResponseWriter, r *http.Request) {
	h.session(h.play.Stroke)(w, r)
}

// Trace scores the current character, from the body's stroke count when
// given and from the recorded strokes otherwise
func (h *PlayHandler) Trace(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	var req traceRequest
	if err := decodeOptionalJSON(w, r, h.validate, &req); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	v, err := h.play.Trace(r.Context(), pid, r.PathValue("id"), req.Strokes)
	h.respond(w, v, err)
}

// Report scores a character written on paper
func (h *PlayHandler) Report(w http.ResponseWriter, r *http.Request) {
	h.session(h.play.Report)(w, r)
}

// Advance moves to the next writing character
func (h *PlayHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.session(h.play.Advance)(w, r)
}
