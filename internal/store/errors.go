package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user insert collides with an
	// existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when a user insert collides with
	// an existing username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrAlreadyExists is returned for any other unique violation.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set, or when a post references a user
	// that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPostNotFound is returned when a post lookup, update or delete
	// targets an id that does not exist.
	ErrPostNotFound = errors.New("post was not found")

	// ErrUnsupportedDriver is returned when the configured driver is neither
	// postgres nor sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
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

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
