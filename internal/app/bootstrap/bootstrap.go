package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	campaignservice "adtrack/contexts/campaign-ops/campaign-service"
	eventsadapter "adtrack/contexts/campaign-ops/campaign-service/adapters/events"
	postgresadapter "adtrack/contexts/campaign-ops/campaign-service/adapters/postgres"
	"adtrack/contexts/campaign-ops/campaign-service/application/workers"
	"adtrack/internal/platform/config"
	"adtrack/internal/platform/db"
	"adtrack/internal/platform/httpserver"
	"adtrack/internal/platform/messaging"
	"adtrack/internal/shared/events"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	bus      *messaging.Kafka
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres  *db.Postgres
	sweeper   workers.WeeklySweeper
	sweepHour int
	enabled   bool
	logger    *slog.Logger
}

func buildModule(pg *db.Postgres, cfg config.Config, bus *messaging.Kafka, logger *slog.Logger) campaignservice.Module {
	repo := postgresadapter.NewRepository(pg.DB, logger)
	audit := eventsadapter.AuditPublisher{
		Next:   repo,
		Bus:    bus,
		IDGen:  postgresadapter.UUIDGenerator{},
		Logger: logger,
	}
	return campaignservice.NewModule(campaignservice.Dependencies{
		Campaigns:         repo,
		Creatives:         repo,
		Tasks:             repo,
		History:           repo,
		Audit:             audit,
		Clock:             postgresadapter.SystemClock{},
		IDGenerator:       postgresadapter.UUIDGenerator{},
		MarketingContact:  cfg.MarketingContact,
		TraffickerContact: cfg.TraffickerContact,
		Logger:            logger,
	})
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus, err := messaging.NewKafka(nil, logger)
	if err != nil {
		return nil, err
	}
	module := buildModule(pg, cfg, bus, logger)
	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		bus:      bus,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus, err := messaging.NewKafka(nil, logger)
	if err != nil {
		return nil, err
	}
	module := buildModule(pg, cfg, bus, logger)
	return &WorkerApp{
		postgres:  pg,
		sweeper:   module.Sweeper,
		sweepHour: cfg.SweepHour,
		enabled:   cfg.EnableWeeklySweep,
		logger:    logger,
	}, nil
}

func (a *APIApp) Run(ctx context.Context) error {
	if a.bus != nil {
		err := a.bus.Subscribe(ctx, eventsadapter.AuditTopic, "campaign-ops-audit-log", func(_ context.Context, event events.Envelope) error {
			if a.logger != nil {
				a.logger.Info("audit event observed",
					"event", "audit_event_observed",
					"module", "internal/app/bootstrap",
					"layer", "platform",
					"event_type", event.EventType,
					"entity_id", event.EntityID,
				)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

// Run executes the sweep once at startup, then sleeps until the next
// Monday sweep hour. The sweep is idempotent so the extra startup run
// is harmless.
func (w *WorkerApp) Run(ctx context.Context) error {
	if !w.enabled {
		w.logger.Info("weekly sweep disabled",
			"event", "bootstrap_worker_idle",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		<-ctx.Done()
		return nil
	}

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"sweep_hour", w.sweepHour,
	)

	for {
		if err := w.sweeper.RunOnce(ctx); err != nil {
			return err
		}
		next := workers.NextMonday(time.Now().UTC(), w.sweepHour)
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
