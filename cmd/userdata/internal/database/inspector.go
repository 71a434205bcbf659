package database

import (
	"context"
	"fmt"

	"github.com/thalib/personaldata/cmd/userdata/internal/constants"
)

// catalog holds the system-catalog queries for one dialect. lookup takes the
// table name as its only argument and returns a row count.
type catalog struct {
	list   string
	lookup string
}

var catalogs = map[DialectType]catalog{
	DialectSQLite: {
		list:   `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`,
		lookup: `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`,
	},
	DialectMySQL: {
		list:   `SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE' ORDER BY table_name`,
		lookup: `SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE' AND table_name = ?`,
	},
	DialectPostgres: {
		list:   `SELECT tablename FROM pg_catalog.pg_tables WHERE schemaname = 'public' ORDER BY tablename`,
		lookup: `SELECT COUNT(*) FROM pg_catalog.pg_tables WHERE schemaname = 'public' AND tablename = $1`,
	},
}

func (d *baseDriver) catalog() (catalog, error) {
	c, ok := catalogs[d.dialect]
	if !ok {
		return catalog{}, fmt.Errorf("unsupported database dialect: %s", d.dialect)
	}
	return c, nil
}

// ListTables returns the user tables in the database, excluding system tables
func (d *baseDriver) ListTables(ctx context.Context) ([]string, error) {
	c, err := d.catalog()
	if err != nil {
		return nil, err
	}

	rows, err := d.Query(ctx, c.list)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	return tables, nil
}

// TableExists looks tableName up in the system catalog
func (d *baseDriver) TableExists(ctx context.Context, tableName string) (bool, error) {
	c, err := d.catalog()
	if err != nil {
		return false, err
	}

	rows, err := d.Query(ctx, c.lookup, tableName)
	if err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", tableName, err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return false, fmt.Errorf("failed to scan table count: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", tableName, err)
	}

	return n > 0, nil
}

// isValidIdentifier accepts ASCII letters, digits and underscores, not
// starting with a digit, up to constants.MaxIdentifierLength bytes.
func isValidIdentifier(name string) bool {
	if name == "" || len(name) > constants.MaxIdentifierLength {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}
