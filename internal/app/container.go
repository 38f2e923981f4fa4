// Package app wires configuration, storage, the data source, caching,
// insights and the alert bus into a single container.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/ivkhv/daybook/internal/eventbus"
	goalsDomain "github.com/ivkhv/daybook/internal/goals/domain"
	"github.com/ivkhv/daybook/internal/goals/persistence"
	"github.com/ivkhv/daybook/internal/insights"
	"github.com/ivkhv/daybook/internal/journal"
	"github.com/ivkhv/daybook/internal/journal/cache"
	"github.com/ivkhv/daybook/internal/journal/notion"
	"github.com/ivkhv/daybook/internal/storage"
	"github.com/ivkhv/daybook/pkg/config"
	"github.com/ivkhv/daybook/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database
	DB       *sql.DB
	DBDriver storage.Driver

	// Record cache (Redis when configured, in-memory otherwise)
	Cache cache.Store

	// Repositories
	GoalRepo goalsDomain.Repository

	// Services
	Journal  *journal.Service
	Insights *insights.Service

	// Alert publisher
	Alerts eventbus.Publisher

	// Component health checks
	Health *observability.HealthRegistry
}

// NewContainer assembles all dependencies from configuration. Optional
// backends (Redis, OpenAI, RabbitMQ) degrade to local fallbacks when not
// configured; the Notion source and the database are required.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
		Health: observability.NewHealthRegistry(),
	}

	// Database (goal store)
	db, driver, err := storage.Open(ctx, storage.Config{
		Driver:      cfg.DatabaseDriver,
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	c.DB = db
	c.DBDriver = driver
	c.Health.Register("database", observability.DatabaseHealthChecker(db.PingContext))
	logger.Info("database ready", "driver", driver)

	switch driver {
	case storage.DriverPostgres:
		c.GoalRepo = persistence.NewPostgresGoalRepository(db)
	default:
		c.GoalRepo = persistence.NewSQLiteGoalRepository(db)
	}

	// Record cache
	if cfg.RedisURL != "" {
		store, err := cache.NewRedisStore(cfg.RedisURL, cfg.CacheTTL)
		if err == nil {
			err = store.Ping(ctx)
		}
		if err != nil {
			if !cfg.IsDevelopment() {
				c.Close()
				return nil, fmt.Errorf("failed to connect to Redis: %w", err)
			}
			logger.Warn("Redis not available, using in-memory cache", "error", err)
			c.Cache = cache.NewMemoryStore(cfg.CacheTTL)
		} else {
			c.Cache = store
			c.Health.Register("cache", observability.RedisHealthChecker(store.Ping))
			logger.Info("connected to Redis")
		}
	} else {
		c.Cache = cache.NewMemoryStore(cfg.CacheTTL)
	}

	// Notion source
	if cfg.NotionToken == "" || cfg.NotionDatabaseID == "" {
		c.Close()
		return nil, fmt.Errorf("NOTION_TOKEN and NOTION_DATABASE_ID are required")
	}
	source := notion.NewClient(notion.Config{
		Token:      cfg.NotionToken,
		DatabaseID: cfg.NotionDatabaseID,
		Timeout:    30 * time.Second,
	}, logger)

	c.Journal = journal.NewService(source, c.Cache, logger)
	c.Journal.SetDefaultWindow(cfg.FetchWindowDays)

	// AI commentary (optional)
	if cfg.OpenAIAPIKey != "" {
		generator := insights.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		c.Insights = insights.NewService(generator, logger)
	} else {
		logger.Info("OPENAI_API_KEY not set, AI commentary disabled")
		c.Insights = insights.NewService(nil, logger)
	}

	// Alert publisher (optional; in-process bus when RabbitMQ is absent)
	if cfg.RabbitMQURL != "" {
		publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
		if err != nil {
			if !cfg.IsDevelopment() {
				c.Close()
				return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
			}
			logger.Warn("RabbitMQ not available, alerts stay local", "error", err)
			c.Alerts = eventbus.NewInProcessBus(logger)
		} else {
			c.Alerts = publisher
			logger.Info("connected to RabbitMQ")
		}
	} else {
		c.Alerts = eventbus.NewInProcessBus(logger)
	}

	return c, nil
}

// Close releases all held resources.
func (c *Container) Close() {
	if c.Alerts != nil {
		if err := c.Alerts.Close(); err != nil {
			c.Logger.Warn("error closing alert publisher", "error", err)
		}
	}

	if closer, ok := c.Cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			c.Logger.Warn("error closing cache", "error", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.Logger.Warn("error closing database", "error", err)
		}
	}
}
