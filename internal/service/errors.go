package service

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingToken        = errors.New("access token required")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrInvariantViolated is returned when a Faulty asset carries an
	// assignee.
	ErrInvariantViolated = errors.New("faulty assets cannot be allocated")

	ErrSeedingUser           = errors.New("seeding user failed")
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// ErrServerFailure is returned by the client services when the server
// answers with an internal error.
var ErrServerFailure = errors.New("server failure")
