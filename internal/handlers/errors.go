package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"kanjiquest/internal/ledger"
	"kanjiquest/internal/repository"
	"kanjiquest/internal/security"
	"kanjiquest/internal/service"
	"kanjiquest/internal/validation"
)

var errBadJSON = errors.New("malformed request body")

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, log logrus.FieldLogger, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.WithError(err).Error(logMsg)
	}

	respondJSON(w, status, errorResponse{Error: userMsg})
}

// respondWithServiceError maps a domain error to its status. Anything it
// does not know is logged and reported as a 500.
func respondWithServiceError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	var fields *validation.FieldsError
	if errors.As(err, &fields) {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: fields.Error(), Fields: fields.Fields})
		return
	}
	var invalid validation.ValidationError
	if errors.As(err, &invalid) {
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Error:  invalid.Error(),
			Fields: map[string]string{invalid.Field: invalid.Message},
		})
		return
	}

	status, ok := errorStatus(err)
	if !ok {
		respondWithError(w, log, http.StatusInternalServerError, ErrInternalServerError, "Unhandled service error", err)
		return
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

func errorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, errBadJSON):
		return http.StatusBadRequest, true
	case errors.Is(err, security.ErrInvalidToken):
		return http.StatusUnauthorized, true
	case errors.Is(err, service.ErrInvalidPIN):
		return http.StatusForbidden, true
	case errors.Is(err, service.ErrNameNotAllowed):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, service.ErrPlayerNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrMissionNotFound),
		errors.Is(err, service.ErrUnknownStage),
		errors.Is(err, service.ErrUnknownStrokeSet),
		errors.Is(err, service.ErrUnknownFood),
		errors.Is(err, service.ErrUnknownCharacter),
		errors.Is(err, repository.ErrCharacterNotOwned):
		return http.StatusNotFound, true
	case errors.Is(err, service.ErrWrongMode),
		errors.Is(err, service.ErrCannotEvolve),
		errors.Is(err, service.ErrPINNotSet),
		errors.Is(err, service.ErrNoParentEmail),
		errors.Is(err, ledger.ErrAlreadyClaimed),
		errors.Is(err, ledger.ErrNotCompleted),
		errors.Is(err, repository.ErrInsufficientFood):
		return http.StatusConflict, true
	case errors.Is(err, service.ErrEmailDisabled):
		return http.StatusServiceUnavailable, true
	}
	return 0, false
}
