// Package apperrors defines the sentinel errors shared by the repository and
// service layers. Handlers match them with errors.Is to pick HTTP statuses.
package apperrors

import "errors"

// Not-found errors (HTTP 404)
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrIslandNotFound  = errors.New("island not found")
	ErrBedNotFound     = errors.New("bed not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrNurseNotFound   = errors.New("nurse not found")
	ErrCallNotFound    = errors.New("call not found")
)

// Conflict errors (HTTP 409)
var (
	ErrNoNurseAssigned = errors.New("no nurse assigned to this bed")
	ErrCooldownActive  = errors.New("a call was already raised for this bed, try again later")
	ErrCallNotActive   = errors.New("call is not active")
	ErrBedOccupied     = errors.New("bed is already occupied")
	ErrIslandNotEmpty  = errors.New("island still has beds")
	ErrUsernameTaken   = errors.New("username already exists")
)

// Auth errors (HTTP 401)
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid or revoked refresh token")
)
