package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/disaster-response/internal/adapters/clients"
	"github.com/jsamuelsen/disaster-response/internal/adapters/clients/acl"
	"github.com/jsamuelsen/disaster-response/internal/adapters/events"
	"github.com/jsamuelsen/disaster-response/internal/adapters/flags"
	"github.com/jsamuelsen/disaster-response/internal/adapters/http"
	"github.com/jsamuelsen/disaster-response/internal/adapters/http/handlers"
	"github.com/jsamuelsen/disaster-response/internal/adapters/memstore"
	"github.com/jsamuelsen/disaster-response/internal/adapters/postgres"
	"github.com/jsamuelsen/disaster-response/internal/app"
	"github.com/jsamuelsen/disaster-response/internal/platform/config"
	"github.com/jsamuelsen/disaster-response/internal/platform/metrics"
	"github.com/jsamuelsen/disaster-response/internal/platform/telemetry"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

func serveCmd(profile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(*profile)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

// storage is the persistence selected at startup: Postgres when a database
// URL is configured, otherwise the in-memory store.
type storage struct {
	disasters ports.DisasterRepository
	resources ports.ResourceRepository
	reports   ports.ReportRepository
	cache     ports.LookupCache

	// purge deletes expired cache rows; nil when the cache expires lazily.
	purge func(ctx context.Context) (int64, error)
	close func()
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	clock := clockwork.NewRealClock()
	m := metrics.New()
	healthRegistry := ports.NewHealthRegistry(ports.WithHealthClock(clock))

	store, err := openStorage(ctx, cfg, healthRegistry, clock, logger)
	if err != nil {
		return err
	}
	defer store.close()

	// Upstream adapters behind the shared retrying, circuit-broken client.
	geminiCfg := clientConfig(cfg, logger, cfg.Gemini.Name, cfg.Gemini.BaseURL)
	geminiCfg.AuthFunc = acl.GeminiAuth(cfg.Gemini.APIKey)
	geminiClient, err := clients.New(geminiCfg)
	if err != nil {
		return fmt.Errorf("creating gemini client: %w", err)
	}
	mapboxClient, err := clients.New(clientConfig(cfg, logger, cfg.Mapbox.Name, cfg.Mapbox.BaseURL))
	if err != nil {
		return fmt.Errorf("creating mapbox client: %w", err)
	}
	blueskyClient, err := clients.New(clientConfig(cfg, logger, cfg.Bluesky.Name, cfg.Bluesky.BaseURL))
	if err != nil {
		return fmt.Errorf("creating bluesky client: %w", err)
	}
	imageCfg := clientConfig(cfg, logger, cfg.Images.Name, "")
	imageCfg.CircuitPerHost = true
	imageClient, err := clients.New(imageCfg)
	if err != nil {
		return fmt.Errorf("creating image client: %w", err)
	}

	gemini := acl.NewGeminiAdapter(geminiClient, cfg.Gemini.Model, logger)
	mapbox := acl.NewMapboxAdapter(mapboxClient, cfg.Mapbox.Token, logger)
	bluesky := acl.NewBlueskyAdapter(blueskyClient, acl.BlueskyCredentials{
		Identifier:  cfg.Bluesky.Identifier,
		AppPassword: cfg.Bluesky.AppPassword,
	}, logger)
	images := acl.NewImageFetcher(imageClient, cfg.Images.MaxBytes, logger)

	// Image hosts come from requests, so they stay out of readiness.
	for _, checker := range []ports.HealthChecker{gemini, mapbox, bluesky} {
		if err := healthRegistry.Register(checker); err != nil {
			return fmt.Errorf("registering %s health check: %w", checker.Name(), err)
		}
	}

	if cfg.Gemini.APIKey == "" {
		logger.Warn("gemini.api_key is not set; location extraction and image verification will fail")
	}
	if cfg.Mapbox.Token == "" {
		logger.Warn("mapbox.token is not set; geocoding will fail")
	}

	extractor := acl.NewCachedLocationExtractor(gemini, store.cache, cfg.Cache.TTL, m, logger)
	geocoder := acl.NewCachedGeocoder(mapbox, store.cache, cfg.Cache.TTL, m, logger)

	// Events go to connected stream clients and, when enabled, Kafka.
	hub := events.NewHub(cfg.Broadcast.BufferSize, m, logger)
	sinks := []events.Sink{hub}

	var kafka *events.KafkaPublisher
	if cfg.Events.Kafka.Enabled {
		kafka = events.NewKafkaPublisher(cfg.Events.Kafka, logger)
		sinks = append(sinks, kafka)
		logger.Info("publishing events to kafka",
			slog.Any("brokers", cfg.Events.Kafka.Brokers),
			slog.String("topic", cfg.Events.Kafka.Topic),
		)
	}
	publisher := events.NewFanOut(m, sinks...)

	featureFlags := flags.NewStatic(cfg.Features)
	logger.Info("feature flags loaded", slog.Any("flags", featureFlags.Snapshot()))

	// Application services.
	locator := app.NewGeocodeService(app.GeocodeServiceConfig{
		Extractor: extractor,
		Geocoder:  geocoder,
		Logger:    logger,
	})
	disasterService := app.NewDisasterService(app.DisasterServiceConfig{
		Disasters: store.disasters,
		Resources: store.resources,
		Locator:   locator,
		Events:    publisher,
		Flags:     featureFlags,
		Metrics:   m,
		Clock:     clock,
		Logger:    logger,
	})
	resourceService := app.NewResourceService(app.ResourceServiceConfig{
		Resources: store.resources,
		Locator:   locator,
		Events:    publisher,
		Clock:     clock,
		Logger:    logger,
	})
	socialService := app.NewSocialService(app.SocialServiceConfig{
		Disasters:       store.disasters,
		Reports:         store.reports,
		Feed:            bluesky,
		Events:          publisher,
		Flags:           featureFlags,
		Metrics:         m,
		Clock:           clock,
		Logger:          logger,
		MaxKeywords:     cfg.Social.MaxKeywords,
		PostsPerKeyword: cfg.Social.PostsPerKeyword,
		Concurrency:     cfg.Social.Concurrency,
	})
	reportService := app.NewReportService(app.ReportServiceConfig{
		Disasters: store.disasters,
		Reports:   store.reports,
		Events:    publisher,
		Clock:     clock,
		Logger:    logger,
	})
	verificationService := app.NewVerificationService(app.VerificationServiceConfig{
		Reports:  store.reports,
		Fetcher:  images,
		Analyzer: gemini,
		Events:   publisher,
		Metrics:  m,
		Clock:    clock,
		Logger:   logger,
	})

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		ServiceName: cfg.App.Name,
		Auth:        cfg.Auth,
		CORS:        cfg.CORS,
		Timeout:     cfg.Server.RequestTimeout,
		Handlers: http.Handlers{
			Health:       handlers.NewHealthHandler(cfg.App.Name, healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime)),
			Disasters:    handlers.NewDisasterHandler(disasterService),
			Geocode:      handlers.NewGeocodeHandler(locator),
			Resources:    handlers.NewResourceHandler(resourceService),
			Social:       handlers.NewSocialHandler(socialService),
			Reports:      handlers.NewReportHandler(reportService),
			Verification: handlers.NewVerificationHandler(verificationService),
			Events:       handlers.NewEventStreamHandler(hub, cfg.Broadcast.Keepalive),
		},
	})

	purgeCtx, stopPurge := context.WithCancel(ctx)
	defer stopPurge()
	if store.purge != nil {
		go purgeExpired(purgeCtx, clock, cfg.Cache.TTL, store.purge, logger)
	}

	// Ends open event streams so the server can drain.
	beforeDrain := hub.Close
	afterDrain := func() {
		stopPurge()
		if kafka != nil {
			if err := kafka.Close(); err != nil {
				logger.Error("kafka writer close error", slog.Any("error", err))
			}
		}
	}

	serverErr, err := server.Start()
	if err != nil {
		beforeDrain()
		afterDrain()
		return err
	}

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout, beforeDrain, afterDrain)
}

// openStorage selects Postgres or the in-memory store and registers the
// database readiness check.
func openStorage(
	ctx context.Context,
	cfg *config.Config,
	registry ports.HealthRegistry,
	clock clockwork.Clock,
	logger *slog.Logger,
) (*storage, error) {
	if !cfg.DatabaseEnabled() {
		logger.Warn("database.url is not set; using the in-memory store")

		mem := memstore.NewStore(clock)
		return &storage{
			disasters: memstore.NewDisasterRepo(mem),
			resources: memstore.NewResourceRepo(mem),
			reports:   memstore.NewReportRepo(mem),
			cache:     memstore.NewCache(cfg.Cache.MaxEntries, clock),
			close:     func() {},
		}, nil
	}

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.URL, postgres.MigrateUp, logger); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := registry.Register(postgres.NewHealthChecker(pool)); err != nil {
		pool.Close()
		return nil, fmt.Errorf("registering database health check: %w", err)
	}

	cache := postgres.NewCacheStore(pool)
	return &storage{
		disasters: postgres.NewDisasterRepo(pool),
		resources: postgres.NewResourceRepo(pool),
		reports:   postgres.NewReportRepo(pool),
		cache:     cache,
		purge:     cache.PurgeExpired,
		close:     pool.Close,
	}, nil
}

// clientConfig builds the downstream client settings shared by every
// upstream adapter.
func clientConfig(cfg *config.Config, logger *slog.Logger, name, baseURL string) *clients.Config {
	return &clients.Config{
		BaseURL:     baseURL,
		ServiceName: name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	}
}

// purgeExpired deletes expired cache rows every interval until ctx ends.
func purgeExpired(
	ctx context.Context,
	clock clockwork.Clock,
	interval time.Duration,
	purge func(context.Context) (int64, error),
	logger *slog.Logger,
) {
	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			n, err := purge(ctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.Warn("cache purge failed", slog.Any("error", err))
				}
				continue
			}
			if n > 0 {
				logger.Debug("expired cache entries purged", slog.Int64("count", n))
			}
		}
	}
}

// waitForShutdown blocks until a shutdown signal is received or the server
// fails. beforeDrain runs before the HTTP server stops accepting requests;
// afterDrain runs once in-flight requests have finished.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
	beforeDrain func(),
	afterDrain func(),
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			beforeDrain()
			afterDrain()
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	beforeDrain()
	err := server.Shutdown(shutdownCtx)
	afterDrain()
	if err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
