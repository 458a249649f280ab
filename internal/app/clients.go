package app

import (
	"fmt"

	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
	"github.com/yungbote/degreeplan-backend/internal/platform/openai"
	"github.com/yungbote/degreeplan-backend/internal/realtime/bus"
)

type Clients struct {
	// OpenAI is nil when the app was built without a generator.
	OpenAI openai.Client
	Bus    bus.Bus
}

func wireClients(log *logger.Logger, cfg Config, withGenerator bool) (Clients, error) {
	log.Info("Wiring clients...")
	var out Clients

	if withGenerator {
		oaCfg, err := openai.ConfigFromEnv()
		if err != nil {
			return Clients{}, fmt.Errorf("openai config: %w", err)
		}
		oa, err := openai.NewClient(log, oaCfg)
		if err != nil {
			return Clients{}, fmt.Errorf("init openai: %w", err)
		}
		out.OpenAI = oa
	}

	if cfg.RedisAddr != "" {
		b, err := bus.NewRedisBus(log, cfg.RedisAddr, cfg.RedisChannel)
		if err != nil {
			log.Warn("Redis plan bus unavailable, using in-memory bus", "addr", cfg.RedisAddr, "error", err)
		} else {
			out.Bus = b
		}
	}
	if out.Bus == nil {
		out.Bus = bus.NewMemoryBus(cfg.EventHistory)
	}
	return out, nil
}
