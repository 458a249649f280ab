package app

import (
	"fmt"
	"strings"
	"time"

	dbpkg "github.com/yungbote/degreeplan-backend/internal/data/db"
	httpMW "github.com/yungbote/degreeplan-backend/internal/http/middleware"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/curation"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/synth"
	"github.com/yungbote/degreeplan-backend/internal/platform/envutil"
)

type Config struct {
	LogMode     string
	Port        string
	ServiceName string
	Environment string
	Version     string

	DB          dbpkg.Config
	AutoMigrate bool
	// CatalogSeedFile is applied at startup when set.
	CatalogSeedFile string
	SeedConcurrency int
	// DisciplineTablesFile replaces the built-in discipline tables when set.
	DisciplineTablesFile string

	RedisAddr    string
	RedisChannel string
	EventHistory int

	CORSOrigins   []string
	ShutdownGrace time.Duration

	Curation curation.Config
	Synth    synth.Config
}

func LoadConfig() (Config, error) {
	cur, err := curation.ConfigFromEnv()
	if err != nil {
		return Config{}, fmt.Errorf("curation config: %w", err)
	}
	cfg := Config{
		LogMode:     envutil.String("LOG_MODE", "development"),
		Port:        envutil.String("PORT", "8080"),
		ServiceName: envutil.String("OTEL_SERVICE_NAME", "degreeplan-api"),
		Environment: envutil.String("ENVIRONMENT", "local"),
		Version:     envutil.String("SERVICE_VERSION", "dev"),

		DB:                   dbpkg.ConfigFromEnv(),
		AutoMigrate:          envutil.Bool("DB_AUTO_MIGRATE", true),
		CatalogSeedFile:      envutil.String("CATALOG_SEED_FILE", ""),
		SeedConcurrency:      envutil.Int("CATALOG_SEED_CONCURRENCY", 4),
		DisciplineTablesFile: envutil.String("DISCIPLINE_TABLES_FILE", ""),

		RedisAddr:    envutil.String("REDIS_ADDR", ""),
		RedisChannel: envutil.String("REDIS_CHANNEL", "plan_events"),
		EventHistory: envutil.Int("PLAN_EVENT_HISTORY", 256),

		CORSOrigins:   httpMW.AllowedOrigins(),
		ShutdownGrace: envutil.Seconds("SHUTDOWN_GRACE_SECONDS", 15*time.Second),

		Curation: cur,
		Synth:    synth.ConfigFromEnv(),
	}
	if cfg.DB.Driver == "sqlite" {
		// sqlite serialises writers; parallel seeding only produces lock errors.
		cfg.SeedConcurrency = 1
	}
	if cfg.SeedConcurrency < 1 {
		cfg.SeedConcurrency = 1
	}
	return cfg, nil
}

func (c Config) Addr() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
