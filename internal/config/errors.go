package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrMissingTokenSignKey indicates that no session token signing secret
	// was configured. The server cannot issue or verify sessions without it.
	ErrMissingTokenSignKey = errors.New("token sign key is not set (APP_TOKEN_SIGN_KEY or JWT_SECRET)")
	// ErrMissingDSN indicates an empty database connection string.
	ErrMissingDSN = errors.New("database DSN is not set")
	// ErrUnsupportedDriver indicates a database driver other than
	// postgres or sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a bcrypt cost out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, an empty base URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
