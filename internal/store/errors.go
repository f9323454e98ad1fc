package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same username already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup by username matches no
	// user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDuplicateAssetID is returned when an insert or update would give two
	// assets the same business identifier.
	ErrDuplicateAssetID = errors.New("asset id already exists")

	// ErrAssetNotFound is returned when an update or delete targets a row id
	// that does not exist.
	ErrAssetNotFound = errors.New("asset was not found")

	// ErrConstraintViolated is returned when the database rejects a row with
	// a CHECK constraint, e.g. a Faulty asset that still has an assignee.
	ErrConstraintViolated = errors.New("asset violates a table constraint")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
