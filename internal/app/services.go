package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/degreeplan-backend/internal/catalog"
	"github.com/yungbote/degreeplan-backend/internal/data/repos"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/curation"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/discipline"
	"github.com/yungbote/degreeplan-backend/internal/modules/planning/synth"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

type Services struct {
	Catalog  *catalog.RepoProvider
	Seeder   *catalog.Seeder
	Resolver *discipline.Resolver
	Curator  *curation.Curator
	// Synth and Pipeline are nil when no generator is configured.
	Synth    *synth.Synthesizer
	Pipeline *planning.Pipeline
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet repos.Catalog, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	provider := catalog.NewProvider(db, log, reposet)
	seeder := catalog.NewSeeder(db, log, reposet)
	seeder.Concurrency = cfg.SeedConcurrency

	var fallback discipline.Lookup = discipline.StaticTables()
	if cfg.DisciplineTablesFile != "" {
		tables, err := discipline.LoadYAMLTables(cfg.DisciplineTablesFile)
		if err != nil {
			return Services{}, fmt.Errorf("discipline tables: %w", err)
		}
		fallback = tables
	}
	resolver := discipline.NewResolver(log, discipline.NewCatalogLookup(provider, fallback))
	curator := curation.NewCurator(log, cfg.Curation)

	out := Services{
		Catalog:  provider,
		Seeder:   seeder,
		Resolver: resolver,
		Curator:  curator,
	}
	if clients.OpenAI == nil {
		return out, nil
	}

	out.Synth = synth.NewSynthesizer(log, clients.OpenAI, cfg.Synth)
	pipeline, err := planning.NewPipeline(planning.Deps{
		Log:          log,
		Catalog:      provider,
		Requirements: provider,
		Resolver:     resolver,
		Curator:      curator,
		Synth:        out.Synth,
		Bus:          clients.Bus,
	})
	if err != nil {
		return Services{}, fmt.Errorf("init pipeline: %w", err)
	}
	out.Pipeline = pipeline
	return out, nil
}
