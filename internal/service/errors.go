package service

import "errors"

var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrNameNotAllowed    = errors.New("name is not allowed")
	ErrInvalidPIN        = errors.New("invalid parent PIN")
	ErrPINNotSet         = errors.New("parent PIN not set")
	ErrSessionNotFound   = errors.New("session not found")
	ErrWrongMode         = errors.New("operation does not match the session mode")
	ErrUnknownStage      = errors.New("unknown stage")
	ErrUnknownStrokeSet  = errors.New("unknown stroke set")
	ErrUnknownFood       = errors.New("unknown food")
	ErrUnknownCharacter  = errors.New("unknown character")
	ErrCannotEvolve      = errors.New("character cannot evolve yet")
	ErrMissionNotFound   = errors.New("mission not found")
	ErrNoParentEmail     = errors.New("player has no parent email")
	ErrEmailDisabled     = errors.New("email service disabled")
	ErrUnsupportedBackup = errors.New("unsupported backup version")
	ErrBackupNotEmpty    = errors.New("database already holds players")
)
