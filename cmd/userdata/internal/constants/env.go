package constants

// Environment variables read when building the database connection.
const (
	EnvDBUsername   = "PERSONAL_DATA_DB_USERNAME"
	EnvDBPassword   = "PERSONAL_DATA_DB_PASSWORD"
	EnvDBHost       = "PERSONAL_DATA_DB_HOST"
	EnvDBName       = "PERSONAL_DATA_DB_NAME"
	EnvDBConnection = "PERSONAL_DATA_DB_CONNECTION"
)
