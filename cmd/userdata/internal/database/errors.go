package database

import "errors"

var (
	// ErrNotConnected is returned when a query is issued before Connect
	ErrNotConnected = errors.New("database is not connected")

	// ErrInvalidTableName is returned for table names that are not plain identifiers
	ErrInvalidTableName = errors.New("invalid table name")

	// ErrTableNotFound is returned when the requested table does not exist
	ErrTableNotFound = errors.New("table not found")
)
