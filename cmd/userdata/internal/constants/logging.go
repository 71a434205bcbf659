package constants

// Logging constants for the redacting log pipeline.
const (
	// ProductTag prefixes every formatted log line.
	// Used in: logging/formatter.go
	ProductTag = "HOLBERTON"

	// UserDataLogger is the name of the logger the entry point writes rows to.
	// Used in: main.go
	UserDataLogger = "user_data"

	// TimestampLayout renders record times as "2019-11-19 18:24:25,105".
	// Used in: logging/formatter.go
	TimestampLayout = "2006-01-02 15:04:05,000"

	// ValueTimeLayout renders DATETIME column values in row lines.
	// Used in: database/row.go
	ValueTimeLayout = "2006-01-02 15:04:05"

	// NullValue is how SQL NULL column values appear in row lines.
	// Used in: database/row.go
	NullValue = "NULL"
)
