package repository

import "errors"

var (
	// ErrInsufficientFood is returned when a player does not hold enough of a food
	ErrInsufficientFood = errors.New("not enough food in inventory")
	// ErrMissionNotClaimable is returned when the conditional claim update matched no row
	ErrMissionNotClaimable = errors.New("mission is not claimable")
	// ErrCharacterNotOwned is returned when updating a character the player has not collected
	ErrCharacterNotOwned = errors.New("character not owned")
)
