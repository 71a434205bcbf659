package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// clearEnv unsets the database variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PERSONAL_DATA_DB_USERNAME",
		"PERSONAL_DATA_DB_PASSWORD",
		"PERSONAL_DATA_DB_HOST",
		"PERSONAL_DATA_DB_NAME",
		"PERSONAL_DATA_DB_CONNECTION",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Database.User != "root" {
		t.Errorf("Expected default user root, got %q", cfg.Database.User)
	}
	if cfg.Database.Password != "" {
		t.Errorf("Expected empty default password, got %q", cfg.Database.Password)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Expected default host localhost, got %q", cfg.Database.Host)
	}
	if cfg.Database.Database != "" {
		t.Errorf("Expected no default database name, got %q", cfg.Database.Database)
	}
	if cfg.Database.Connection != "mysql" {
		t.Errorf("Expected default connection mysql, got %q", cfg.Database.Connection)
	}
	if cfg.Database.QueryTimeout != 30 {
		t.Errorf("Expected default query timeout 30, got %d", cfg.Database.QueryTimeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default level info, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.ProductTag != "HOLBERTON" {
		t.Errorf("Expected default product tag HOLBERTON, got %q", cfg.Logging.ProductTag)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PERSONAL_DATA_DB_USERNAME", "holberton")
	t.Setenv("PERSONAL_DATA_DB_PASSWORD", "s3cret")
	t.Setenv("PERSONAL_DATA_DB_HOST", "db.internal:3307")
	t.Setenv("PERSONAL_DATA_DB_NAME", "my_db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Database.User != "holberton" {
		t.Errorf("Expected user holberton, got %q", cfg.Database.User)
	}
	if cfg.Database.Password != "s3cret" {
		t.Errorf("Expected password from env, got %q", cfg.Database.Password)
	}
	if cfg.Database.Host != "db.internal:3307" {
		t.Errorf("Expected host from env, got %q", cfg.Database.Host)
	}
	if cfg.Database.Database != "my_db" {
		t.Errorf("Expected database my_db, got %q", cfg.Database.Database)
	}
	if err := cfg.Database.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_FromYAML(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `database:
  connection: sqlite
  database: /tmp/users.db
  query_timeout: 5
logging:
  level: debug
  product_tag: ACME
  additional_sensitive_fields:
    - ip
    - phone
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Database.Connection != "sqlite" {
		t.Errorf("Expected sqlite connection, got %q", cfg.Database.Connection)
	}
	if cfg.Database.Database != "/tmp/users.db" {
		t.Errorf("Expected database path from file, got %q", cfg.Database.Database)
	}
	if cfg.Database.QueryTimeout != 5 {
		t.Errorf("Expected query timeout 5, got %d", cfg.Database.QueryTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected level debug, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.ProductTag != "ACME" {
		t.Errorf("Expected product tag ACME, got %q", cfg.Logging.ProductTag)
	}
	if len(cfg.Logging.AdditionalSensitiveFields) != 2 {
		t.Errorf("Expected 2 additional fields, got %v", cfg.Logging.AdditionalSensitiveFields)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `database:
  database: from_file
  user: file_user
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("PERSONAL_DATA_DB_NAME", "from_env")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Database.Database != "from_env" {
		t.Errorf("Expected env to win, got %q", cfg.Database.Database)
	}
	if cfg.Database.User != "file_user" {
		t.Errorf("Expected user from file, got %q", cfg.Database.User)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestLoad_UnsupportedConnection(t *testing.T) {
	clearEnv(t)
	t.Setenv("PERSONAL_DATA_DB_CONNECTION", "oracle")

	if _, err := Load(""); err == nil {
		t.Fatal("Expected error for unsupported connection")
	}
}

func TestDatabaseConfig_Validate(t *testing.T) {
	err := DatabaseConfig{User: "root", Host: "localhost"}.Validate()
	if !errors.Is(err, ErrMissingDatabaseName) {
		t.Errorf("Expected ErrMissingDatabaseName, got %v", err)
	}

	if err := (DatabaseConfig{Database: "my_db"}).Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestLoggingConfig_SensitiveFields(t *testing.T) {
	cfg := LoggingConfig{AdditionalSensitiveFields: []string{"ip", " name ", "", "phone"}}

	got := cfg.SensitiveFields([]string{"name", "email", "phone"})
	want := []string{"name", "email", "phone", "ip"}

	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SensitiveFields()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
