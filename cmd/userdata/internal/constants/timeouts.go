package constants

import "time"

// Timeout and duration constants used throughout the application.
const (
	// ConnectTimeout is the maximum time allowed to open and ping the database.
	// Used in: main.go
	// Default: 10 seconds
	ConnectTimeout = 10 * time.Second

	// QueryTimeout bounds the users table dump.
	// Used in: config/config.go (default for database.query_timeout)
	// Default: 30 seconds
	QueryTimeout = 30 * time.Second

	// ShutdownTimeout is the maximum time allowed for cleanup functions to run.
	// Used in: shutdown/shutdown.go
	// Default: 5 seconds
	ShutdownTimeout = 5 * time.Second
)
