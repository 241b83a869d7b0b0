package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/templatehub/docs"
	"github.com/aaravmahajanofficial/templatehub/internal/api"
	"github.com/aaravmahajanofficial/templatehub/internal/api/handlers"
	"github.com/aaravmahajanofficial/templatehub/internal/api/middleware"
	"github.com/aaravmahajanofficial/templatehub/internal/cache"
	"github.com/aaravmahajanofficial/templatehub/internal/config"
	"github.com/aaravmahajanofficial/templatehub/internal/events"
	"github.com/aaravmahajanofficial/templatehub/internal/health"
	repository "github.com/aaravmahajanofficial/templatehub/internal/repositories"
	service "github.com/aaravmahajanofficial/templatehub/internal/services"
	"github.com/aaravmahajanofficial/templatehub/internal/storage"
	"github.com/aaravmahajanofficial/templatehub/internal/storage/jsonfile"
	"github.com/aaravmahajanofficial/templatehub/internal/storage/postgres"
	"github.com/aaravmahajanofficial/templatehub/internal/tracing"
	"github.com/aaravmahajanofficial/templatehub/pkg/sendgrid"
	stripeClient "github.com/aaravmahajanofficial/templatehub/pkg/stripe"
	"github.com/redis/go-redis/v9"
)

//	@title						TemplateHub API
//	@version					1.0
//	@description				Website template marketplace: catalog, cart, Stripe checkout and admin dashboard.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT token.
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, &cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Storage setup
	engine, err := openEngine(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error opening the storage engine", slog.String("driver", cfg.Storage.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}

	store := repository.NewStore()
	if err := restoreState(ctx, engine, store); err != nil {
		slog.Error("❌ Error restoring stored state", slog.String("error", err.Error()))
		os.Exit(1)
	}

	writer := storage.NewWriter(engine, store.Snapshot, logger.With(slog.String("component", "snapshot-writer")))
	store.OnChange(func(repository.Change) { writer.Notify() })

	// Bootstrap mutations are persisted as a single snapshot.
	writer.Hold()
	err = store.Bootstrap(ctx, repository.BootstrapOptions{
		AdminUsername: cfg.Security.AdminUsername,
		AdminPassword: cfg.Security.AdminPassword,
		SeedCatalog:   cfg.Seed.Enabled,
	})
	writer.Release()
	if err != nil {
		slog.Error("❌ Error bootstrapping the store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	var (
		redisClient *redis.Client
		appCache    cache.Cache
		rateLimiter repository.RateLimitRepository
	)
	if cfg.RedisConnect.Enabled() {
		redisClient, err = repository.NewRedisClient(&cfg.RedisConnect)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}
		appCache = cache.NewRedisCache(redisClient, &cfg.Cache)
		rateLimiter = repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)
	} else {
		slog.Warn("⚠️ Redis not configured, using in-process cache without login rate limiting")
		appCache = cache.NewMemoryCache(&cfg.Cache)
		rateLimiter = repository.NewNoopRateLimitRepo()
	}

	// Third-party clients stay nil when not configured.
	var payments stripeClient.Client
	if cfg.Stripe.Enabled() {
		payments = stripeClient.NewStripeClient(cfg.Stripe.APIKey)
	} else {
		slog.Warn("⚠️ Stripe not configured, checkout is disabled")
	}

	var email sendgrid.EmailService
	if cfg.SendGrid.Enabled() {
		email = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	jwtKey := []byte(cfg.Security.JWTKey)

	templateService := service.NewTemplateService(store)
	cartService := service.NewCartService(store)
	checkoutService := service.NewCheckoutService(store, store, payments, appCache, email, cfg.Stripe.Currency)
	orderService := service.NewOrderService(store)
	userService := service.NewUserService(store, rateLimiter, jwtKey, cfg.Security.JWTExpiry())
	uploadService, err := service.NewUploadService(&cfg.Uploads)
	if err != nil {
		slog.Error("❌ Error preparing the uploads directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	broker := events.NewStatsBroker()
	statsService := service.NewStatsService(store, broker, logger.With(slog.String("component", "stats")))
	statsService.Start(store)

	healthChecks, err := health.NewHealthHandler(cfg, &health.Endpoints{Storage: engine, Stripe: payments})
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handler := api.NewRouter(&api.Handlers{
		Auth:      handlers.NewAuthHandler(userService, cfg.Security.CookieSecure),
		Templates: handlers.NewTemplateHandler(templateService),
		Cart:      handlers.NewCartHandler(cartService),
		Checkout:  handlers.NewCheckoutHandler(checkoutService, cfg.HTTPServer.PublicBaseURL),
		Admin:     handlers.NewAdminHandler(statsService, orderService, userService),
		Uploads:   handlers.NewUploadHandler(uploadService, &cfg.Uploads),
		Health:    healthChecks.Handler(),
	}, api.Options{
		Auth:         middleware.NewAuthMiddleware(jwtKey),
		CookieSecure: cfg.Security.CookieSecure,
		ServiceName:  cfg.Otel.ServiceName,
	})

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("driver", cfg.Storage.Driver), slog.String("version", "1.0.0"))

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Open stats streams block Shutdown until the broker closes them.
	broker.Close()
	statsService.Stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := writer.Close(shutdownCtx); err != nil {
		slog.Error("⚠️ Final snapshot was not written", slog.String("error", err.Error()))
	}

	if err := engine.Close(); err != nil {
		slog.Error("⚠️ Error closing storage engine", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Storage engine closed")
	}

	if err := appCache.Close(); err != nil {
		slog.Error("⚠️ Error closing cache", slog.String("error", err.Error()))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}

func openEngine(ctx context.Context, cfg *config.Config) (storage.Engine, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		return postgres.Open(ctx, &cfg.Database)
	case "file":
		return jsonfile.New(cfg.Storage.Path), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

// restoreState loads the last snapshot into store. A missing or outdated
// snapshot means a cold start with an empty store.
func restoreState(ctx context.Context, engine storage.Engine, store *repository.Store) error {
	snap, err := engine.Load(ctx)
	if err == nil {
		err = store.Restore(snap)
	}

	switch {
	case errors.Is(err, storage.ErrNoSnapshot):
		slog.Info("No stored snapshot found, starting empty")
		return nil
	case errors.Is(err, storage.ErrVersionMismatch):
		slog.Warn("⚠️ Stored snapshot has an unknown version, starting empty")
		return nil
	case err != nil:
		return err
	}

	slog.Info("✅ State restored from snapshot",
		slog.Int("templates", len(snap.Templates)),
		slog.Int("orders", len(snap.Orders)),
		slog.Int("users", len(snap.Users)),
	)
	return nil
}
