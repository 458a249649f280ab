package db

import (
	"testing"

	"github.com/yungbote/degreeplan-backend/internal/domain/catalog"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

func TestSQLiteServiceMigrates(t *testing.T) {
	svc, err := NewService(logger.NewNop(), Config{Driver: "sqlite", SQLitePath: "file::memory:"})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	if err := svc.AutoMigrateAll(); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	for _, model := range []any{&catalog.Institution{}, &catalog.CourseRecord{}, &catalog.DisciplineMapping{}, &catalog.CredentialRequirement{}} {
		if !svc.DB().Migrator().HasTable(model) {
			t.Fatalf("expected table for %T", model)
		}
	}
}

func TestUnsupportedDriver(t *testing.T) {
	if _, err := NewService(logger.NewNop(), Config{Driver: "oracle"}); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	cfg := ConfigFromEnv()
	if cfg.Driver != "sqlite" || cfg.SQLitePath != "/tmp/x.db" {
		t.Fatalf("unexpected cfg %+v", cfg)
	}
}
