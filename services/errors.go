package services

import "errors"

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")

	ErrValidationFailed        = errors.New("validation failed")
	ErrInvalidScore            = errors.New("score must be a non-negative integer on both sides")
	ErrNotEnoughQualifiers     = errors.New("at least two qualified teams are required for a knockout round")
	ErrSnapshotStorageDisabled = errors.New("snapshot storage is not configured")
	ErrMatchConflict           = errors.New("match already exists")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbiddenOperation = errors.New("operation not allowed for the current user")
)
