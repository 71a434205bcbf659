// Package database provides database abstraction and connection management.
// It supports multiple database dialects (MySQL, PostgreSQL, SQLite) with
// automatic dialect detection from connection strings.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/thalib/personaldata/cmd/userdata/internal/config"
)

// DialectType represents the type of database dialect
type DialectType string

const (
	DialectPostgres DialectType = "postgres"
	DialectMySQL    DialectType = "mysql"
	DialectSQLite   DialectType = "sqlite"
)

const defaultMySQLPort = "3306"

// Driver defines the interface for database operations
type Driver interface {
	// Connect establishes a connection to the database
	Connect(ctx context.Context) error

	// Close closes the database connection
	Close() error

	// Query executes a query that returns rows
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)

	// Ping verifies the connection to the database is still alive
	Ping(ctx context.Context) error

	// Dialect returns the database dialect type
	Dialect() DialectType

	// DB returns the underlying *sql.DB instance
	DB() *sql.DB

	// ListTables returns a list of all user tables in the database
	ListTables(ctx context.Context) ([]string, error)

	// TableExists checks if a table exists in the database
	TableExists(ctx context.Context, tableName string) (bool, error)

	// ReadTable streams every row of a table to fn in result order
	ReadTable(ctx context.Context, tableName string, fn func(Row) error) error
}

// Config holds database connection configuration
type Config struct {
	ConnectionString string
	MaxOpenConns     int
	MaxIdleConns     int
}

// baseDriver implements common functionality for all database drivers
type baseDriver struct {
	db      *sql.DB
	dialect DialectType
	dsn     string
	config  Config
}

// Connect establishes a connection to the database
func (d *baseDriver) Connect(ctx context.Context) error {
	db, err := sql.Open(string(d.dialect), d.dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(d.config.MaxOpenConns)
	db.SetMaxIdleConns(d.config.MaxIdleConns)

	// Verify connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	d.db = db
	return nil
}

// Close closes the database connection
func (d *baseDriver) Close() error {
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

// Query executes a query that returns rows
func (d *baseDriver) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if d.db == nil {
		return nil, ErrNotConnected
	}
	return d.db.QueryContext(ctx, query, args...)
}

// Ping verifies the connection to the database is still alive
func (d *baseDriver) Ping(ctx context.Context) error {
	if d.db == nil {
		return ErrNotConnected
	}
	return d.db.PingContext(ctx)
}

// Dialect returns the database dialect type
func (d *baseDriver) Dialect() DialectType {
	return d.dialect
}

// DB returns the underlying *sql.DB instance
func (d *baseDriver) DB() *sql.DB {
	return d.db
}

// NewDriver creates a new database driver based on the connection string
func NewDriver(cfg Config) (Driver, error) {
	dialect, dsn, err := detectDialect(cfg.ConnectionString)
	if err != nil {
		return nil, err
	}

	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = 2
	}

	driver := &baseDriver{
		dialect: dialect,
		dsn:     dsn,
		config:  cfg,
	}

	return driver, nil
}

// BuildConnectionString creates a database connection string from DatabaseConfig.
// It fails with config.ErrMissingDatabaseName when no database is named.
func BuildConnectionString(db config.DatabaseConfig) (string, error) {
	if err := db.Validate(); err != nil {
		return "", err
	}

	switch db.Connection {
	case "sqlite":
		return "sqlite://" + db.Database, nil
	case "postgres":
		u := url.URL{
			Scheme: "postgres",
			Host:   db.Host,
			Path:   "/" + db.Database,
		}
		if db.User != "" {
			if db.Password != "" {
				u.User = url.UserPassword(db.User, db.Password)
			} else {
				u.User = url.User(db.User)
			}
		}
		return u.String(), nil
	case "mysql", "":
		mc := mysql.NewConfig()
		mc.User = db.User
		mc.Passwd = db.Password
		mc.Net = "tcp"
		mc.Addr = mysqlAddr(db.Host)
		mc.DBName = db.Database
		mc.ParseTime = true
		return "mysql://" + mc.FormatDSN(), nil
	default:
		return "", fmt.Errorf("unsupported database connection: %s", db.Connection)
	}
}

// mysqlAddr appends the default port when host has none
func mysqlAddr(host string) string {
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, defaultMySQLPort)
}

// detectDialect detects the database dialect from the connection string
func detectDialect(connectionString string) (DialectType, string, error) {
	if connectionString == "" {
		return "", "", fmt.Errorf("connection string is empty")
	}

	lower := strings.ToLower(connectionString)

	// Check for URL-style connection strings
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres, connectionString, nil
	}

	if strings.HasPrefix(lower, "mysql://") {
		dsn := connectionString[len("mysql://"):]
		if _, err := mysql.ParseDSN(dsn); err != nil {
			return "", "", fmt.Errorf("invalid mysql connection string: %w", err)
		}
		return DialectMySQL, dsn, nil
	}

	if strings.HasPrefix(lower, "sqlite://") {
		dsn := connectionString[len("sqlite://"):]

		// Share one in-memory database between pooled connections
		if dsn == ":memory:" {
			dsn = "file::memory:?mode=memory&cache=shared"
		}

		return DialectSQLite, dsn, nil
	}

	// Check for standard MySQL DSN (user:password@tcp(host:port)/database)
	if strings.Contains(lower, "@tcp(") || strings.Contains(lower, "charset=") {
		return DialectMySQL, connectionString, nil
	}

	// Check for file-based connection strings (SQLite)
	if lower == ":memory:" || strings.HasSuffix(lower, ".db") || strings.HasSuffix(lower, ".sqlite") || strings.HasSuffix(lower, ".sqlite3") {
		return DialectSQLite, connectionString, nil
	}

	// PostgreSQL keyword/value DSN
	if strings.Contains(lower, "host=") || strings.Contains(lower, "dbname=") {
		return DialectPostgres, connectionString, nil
	}

	return "", "", fmt.Errorf("unable to detect database dialect from connection string")
}
