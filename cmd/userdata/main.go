// Command userdata logs every row of the users table with personal data
// redacted. Connection settings come from the PERSONAL_DATA_DB_* environment
// variables and an optional YAML file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/thalib/personaldata/cmd/userdata/internal/config"
	"github.com/thalib/personaldata/cmd/userdata/internal/constants"
	"github.com/thalib/personaldata/cmd/userdata/internal/database"
	"github.com/thalib/personaldata/cmd/userdata/internal/logging"
	"github.com/thalib/personaldata/cmd/userdata/internal/shutdown"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML configuration file")
	flag.Parse()

	if err := run(*configPath, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "userdata: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and logs the users table.
// Row lines go to stdout; diagnostics go to stderr.
func run(configPath string, stdout, stderr io.Writer) (err error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := logging.ParseLevel(cfg.Logging.Level)
	fields := cfg.Logging.SensitiveFields(constants.EntryPointFields)

	rows := logging.NewRegistry(logging.RegistryConfig{
		Output:          stdout,
		Level:           level,
		ProductTag:      cfg.Logging.ProductTag,
		SensitiveFields: fields,
	})
	diag := logging.NewRegistry(logging.RegistryConfig{
		Output:          stderr,
		Level:           level,
		ProductTag:      cfg.Logging.ProductTag,
		SensitiveFields: fields,
	})
	logger := rows.GetLogger(constants.UserDataLogger)
	sysLogger := diag.GetLogger("userdata")

	connStr, err := database.BuildConnectionString(cfg.Database)
	if err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	// The dump is sequential; one connection is enough.
	driver, err := database.NewDriver(database.Config{
		ConnectionString: connStr,
		MaxOpenConns:     1,
	})
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}

	shutdownCfg := shutdown.DefaultConfig()
	shutdownCfg.Logger = diag.GetLogger("shutdown")
	handler := shutdown.NewHandler(shutdownCfg)
	ctx := handler.Start(context.Background())
	defer func() {
		handler.Trigger()
		if werr := handler.Wait(); werr != nil && err == nil {
			err = fmt.Errorf("cleanup failed: %w", werr)
		}
	}()

	connectCtx, cancel := context.WithTimeout(ctx, constants.ConnectTimeout)
	defer cancel()
	if err := driver.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	handler.RegisterCloser("database", driver)
	sysLogger.Debugf("Connected to %s database", driver.Dialect())

	queryCtx, cancelQuery := context.WithTimeout(ctx, time.Duration(cfg.Database.QueryTimeout)*time.Second)
	defer cancelQuery()

	n, err := dumpTable(queryCtx, driver, constants.UsersTable, logger)
	if err != nil {
		return err
	}
	sysLogger.Debugf("Logged %d row(s) from %s", n, constants.UsersTable)

	return nil
}

// dumpTable logs each row of table as one key=value line and returns the row count.
func dumpTable(ctx context.Context, driver database.Driver, table string, logger *logging.Logger) (int, error) {
	exists, err := driver.TableExists(ctx, table)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect tables: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: %s", database.ErrTableNotFound, table)
	}

	count := 0
	err = driver.ReadTable(ctx, table, func(row database.Row) error {
		logger.Info(row.String())
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("failed to read %s: %w", table, err)
	}

	return count, nil
}
