package model

import "errors"

// Common errors used across the application
var (
	// Configuration errors
	ErrConfig = errors.New("invalid configuration")

	// Board errors
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidBoard    = errors.New("invalid board notation")

	// Game errors
	ErrInvalidState = errors.New("invalid game state")
)
