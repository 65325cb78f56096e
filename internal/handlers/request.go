package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"kanjiquest/internal/validation"
)

// decodeJSON reads a size limited JSON body into dst and validates its tags
func decodeJSON(w http.ResponseWriter, r *http.Request, v *validation.Validator, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errBadJSON, err)
	}
	return v.Struct(dst)
}

// decodeOptionalJSON is decodeJSON for bodies that may be left out entirely
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v *validation.Validator, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", errBadJSON, err)
	}
	return v.Struct(dst)
}

func pathInt64(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s", errBadJSON, name)
	}
	return id, nil
}

type registerRequest struct {
	Name        string `json:"name" validate:"required"`
	ParentEmail string `json:"parent_email" validate:"omitempty,email"`
}

type registerResponse struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Token    string `json:"token"`
}

type readingRequest struct {
	StageID string `json:"stage_id" validate:"required"`
}

type writingRequest struct {
	SetID string `json:"set_id" validate:"required"`
}

type answerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

type modeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=demo trace self_report"`
}

type traceRequest struct {
	Strokes *int `json:"strokes" validate:"omitempty,min=0"`
}

type feedRequest struct {
	FoodID string `json:"food_id" validate:"required"`
}

type pinRequest struct {
	CurrentPIN string `json:"current_pin"`
	PIN        string `json:"pin" validate:"required"`
}

type verifyRequest struct {
	PIN string `json:"pin" validate:"required"`
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type playerResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Handle       string `json:"handle"`
	HasParentPIN bool   `json:"has_parent_pin"`
	HasEmail     bool   `json:"has_parent_email"`
	Coins        int    `json:"coins"`
	Experience   int    `json:"experience"`
	LoginStreak  int    `json:"login_streak"`
}
