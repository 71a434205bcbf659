package database

import (
	"context"
	"fmt"
)

// ReadTable runs SELECT * against tableName and passes each row to fn.
// Iteration stops at the first error returned by fn, which is returned as is.
func (d *baseDriver) ReadTable(ctx context.Context, tableName string, fn func(Row) error) error {
	if !isValidIdentifier(tableName) {
		return fmt.Errorf("%w: %q", ErrInvalidTableName, tableName)
	}

	rows, err := d.Query(ctx, "SELECT * FROM "+d.quoteIdentifier(tableName))
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", tableName, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("failed to read columns of %s: %w", tableName, err)
	}

	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("failed to scan row of %s: %w", tableName, err)
		}

		row := make(Row, len(columns))
		for i, name := range columns {
			v := values[i]
			// Drivers reuse byte buffers between rows
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[i] = Field{Name: name, Value: v}
		}

		if err := fn(row); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating %s: %w", tableName, err)
	}

	return nil
}

// quoteIdentifier quotes a validated identifier for the driver's dialect
func (d *baseDriver) quoteIdentifier(name string) string {
	if d.dialect == DialectMySQL {
		return "`" + name + "`"
	}
	return `"` + name + `"`
}
