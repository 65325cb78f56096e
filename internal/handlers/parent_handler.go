package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"kanjiquest/internal/report"
	"kanjiquest/internal/service"
	"kanjiquest/internal/validation"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

// ParentHandler handles the PIN gate and the parent reports
type ParentHandler struct {
	auth     *service.AuthService
	progress *service.ProgressService
	reporter *service.WeeklyReporter
	validate *validation.Validator
	log      logrus.FieldLogger
}

// NewParentHandler creates a new parent handler
func NewParentHandler(auth *service.AuthService, progress *service.ProgressService, reporter *service.WeeklyReporter, validate *validation.Validator, log logrus.FieldLogger) *ParentHandler {
	return &ParentHandler{
		auth:     auth,
		progress: progress,
		reporter: reporter,
		validate: validate,
		log:      log,
	}
}

// SetPIN sets or changes the parent PIN
func (h *ParentHandler) SetPIN(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	var req pinRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	if err := h.auth.SetParentPIN(pid, req.CurrentPIN, req.PIN); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Verify checks the PIN and returns a parent token
func (h *ParentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	var req verifyRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	token, err := h.auth.VerifyParentPIN(pid, req.PIN)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// SetEmail changes where the weekly report goes
func (h *ParentHandler) SetEmail(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	var req emailRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	if err := h.auth.SetParentEmail(pid, req.Email); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Summary returns the learning overview
func (h *ParentHandler) Summary(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	summary, err := h.progress.Summary(pid)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// History returns the latest results. ?limit= caps the count.
func (h *ParentHandler) History(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	history, err := h.progress.History(pid, historyLimit(r))
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}

// Workbook downloads the summary and history as an Excel file
func (h *ParentHandler) Workbook(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	summary, err := h.progress.Summary(pid)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	history, err := h.progress.History(pid, 0)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, summary, history); err != nil {
		respondWithError(w, h.log, http.StatusInternalServerError, ErrInternalServerError, "Failed to build workbook", err)
		return
	}

	filename := fmt.Sprintf("kanjiquest_report_%s.xlsx", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	_, _ = w.Write(buf.Bytes())
}

// SendReport mails the weekly report right away
func (h *ParentHandler) SendReport(w http.ResponseWriter, r *http.Request) {
	pid, err := playerID(r)
	if err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	if err := h.reporter.SendFor(r.Context(), pid); err != nil {
		respondWithServiceError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func historyLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return defaultHistoryLimit
	}
	return min(limit, maxHistoryLimit)
}
