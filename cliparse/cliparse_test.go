// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

var envKeys = []string{
	"PORT", "DATABASE_URL", "DATABASE_TYPE", "CORS_ORIGIN", "MAX_BODY_BYTES",
	"IP_HASH_SALT", "USER_FULL_NAME", "USER_EMAIL", "USER_ROLL_NUMBER", "USER_DATE_OF_BIRTH",
}

// unsetEnv removes every config variable for the duration of the test
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func noEnvFile(t *testing.T) string {
	return "-env-file=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestParseFlags_Defaults(t *testing.T) {
	unsetEnv(t)

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.HistoryEnabled() {
		t.Error("history should be disabled without DATABASE_URL")
	}
	if cfg.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Errorf("expected max body %d, got %d", DefaultMaxBodyBytes, cfg.MaxBodyBytes)
	}
	if cfg.Identity != DefaultIdentity {
		t.Errorf("expected default identity, got %+v", cfg.Identity)
	}
	if cfg.Identity.UserID() != "john_doe_17091999" {
		t.Errorf("unexpected user id %s", cfg.Identity.UserID())
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	unsetEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("USER_FULL_NAME", "Jane_Roe")
	t.Setenv("USER_DATE_OF_BIRTH", "01012000")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if !cfg.HistoryEnabled() || cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres history, got %q %q", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.MaxBodyBytes != 2048 {
		t.Errorf("expected max body 2048, got %d", cfg.MaxBodyBytes)
	}
	if cfg.Identity.UserID() != "jane_roe_01012000" {
		t.Errorf("expected jane_roe_01012000, got %s", cfg.Identity.UserID())
	}
	if cfg.Identity.Email != DefaultIdentity.Email {
		t.Errorf("unset email should fall back to default, got %s", cfg.Identity.Email)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	unsetEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("USER_EMAIL", "env@xyz.com")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-email", "cli@xyz.com", noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Identity.Email != "cli@xyz.com" {
		t.Errorf("CLI should override env: expected cli@xyz.com, got %s", cfg.Identity.Email)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	unsetEnv(t)
	t.Setenv("USER_ROLL_NUMBER", "FROMENV")

	path := filepath.Join(t.TempDir(), ".env")
	content := "USER_FULL_NAME=File_User\nUSER_ROLL_NUMBER=FROMFILE\nCORS_ORIGIN=https://example.com\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Identity.FullName != "File_User" {
		t.Errorf("expected name from .env, got %s", cfg.Identity.FullName)
	}
	// Real environment wins over the file
	if cfg.Identity.RollNumber != "FROMENV" {
		t.Errorf("expected env to win over .env, got %s", cfg.Identity.RollNumber)
	}
	if cfg.CORSOrigin != "https://example.com" {
		t.Errorf("expected CORS origin from .env, got %s", cfg.CORSOrigin)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad PORT", map[string]string{"PORT": "abc"}, nil},
		{"bad MAX_BODY_BYTES", map[string]string{"MAX_BODY_BYTES": "lots"}, nil},
		{"unknown database type", map[string]string{"DATABASE_TYPE": "mysql"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"negative body limit", nil, []string{"-max-body", "-1"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			unsetEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			args := append([]string{noEnvFile(t)}, tc.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
