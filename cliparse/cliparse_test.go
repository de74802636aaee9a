// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3001 {
		t.Errorf("expected default port 3001, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreMemory {
		t.Errorf("expected default store %q, got %q", StoreMemory, cfg.StoreType)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("expected default redis addr localhost:6379, got %q", cfg.RedisAddr)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("STORE_TYPE", "postgres")
	os.Setenv("DATABASE_URL", "postgres://test")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StoreType != StorePostgres {
		t.Errorf("expected store postgres, got %q", cfg.StoreType)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected DATABASE_URL passthrough, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("STORE_TYPE", "memory")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-s", "sqlite", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreSQLite {
		t.Errorf("CLI should override env: expected sqlite, got %q", cfg.StoreType)
	}
}

func TestParseFlags_SQLStoreRequiresDatabaseURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-s", "sqlite"}); err == nil {
		t.Error("expected error for sqlite store without database URL")
	}
	if _, err := ParseFlags([]string{"-s", "postgres"}); err == nil {
		t.Error("expected error for postgres store without database URL")
	}
}

func TestParseFlags_UnknownStoreType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-s", "cassandra"}); err == nil {
		t.Error("expected error for unknown store type")
	}
}

func TestParseFlags_RedisConfig(t *testing.T) {
	os.Setenv("REDIS_PASSWORD", "hunter2")
	os.Setenv("REDIS_DB", "3")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-s", "redis", "-r", "redis.internal:6380"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.RedisAddr != "redis.internal:6380" {
		t.Errorf("expected redis addr redis.internal:6380, got %q", cfg.RedisAddr)
	}
	if cfg.RedisPassword != "hunter2" {
		t.Errorf("expected redis password from env, got %q", cfg.RedisPassword)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("expected redis db 3, got %d", cfg.RedisDB)
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	os.Setenv("PORT", "not-a-number")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for non-numeric PORT")
	}
}
