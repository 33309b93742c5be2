package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound   = "account not found"
	ErrMsgAccountExists     = "account already exists"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Spin errors
	ErrMsgInvalidBet     = "invalid bet"
	ErrMsgConcurrentSpin = "a spin is already in progress"
	ErrMsgMaintenance    = "game is under maintenance"

	// Autoplay errors
	ErrMsgSessionAlreadyActive = "autoplay session already active"
	ErrMsgSessionNotFound      = "autoplay session not found"
	ErrMsgInvalidStrategy      = "invalid betting strategy"

	// Bonus errors
	ErrMsgBonusAlreadyClaimed = "daily bonus already claimed"

	// Configuration errors
	ErrMsgConfiguration = "invalid configuration"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrAccountNotFound   = errors.New(ErrMsgAccountNotFound)
	ErrAccountExists     = errors.New(ErrMsgAccountExists)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Spin errors
	ErrInvalidBet     = errors.New(ErrMsgInvalidBet)
	ErrConcurrentSpin = errors.New(ErrMsgConcurrentSpin)
	ErrMaintenance    = errors.New(ErrMsgMaintenance)

	// Autoplay errors
	ErrSessionAlreadyActive = errors.New(ErrMsgSessionAlreadyActive)
	ErrSessionNotFound      = errors.New(ErrMsgSessionNotFound)
	ErrInvalidStrategy      = errors.New(ErrMsgInvalidStrategy)

	// Bonus errors
	ErrBonusAlreadyClaimed = errors.New(ErrMsgBonusAlreadyClaimed)

	// ErrConfiguration is returned at construction time for invalid symbol tables,
	// multiplier tiers or jackpot bounds.
	ErrConfiguration = errors.New(ErrMsgConfiguration)

	// Database errors
	ErrDatabase = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
