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

	"adsight/internal/adapter/http"
	"adsight/internal/adapter/memory"
	"adsight/internal/adapter/openai"
	"adsight/internal/adapter/password"
	"adsight/internal/adapter/postgres"
	"adsight/internal/adapter/token"
	"adsight/internal/adapter/usecase"
	"adsight/internal/config"
	"adsight/internal/core/port"
	"adsight/internal/db"
)

// stores groups the repositories of one driver.
type stores struct {
	users        port.UserRepository
	campaigns    port.CampaignRepository
	alerts       port.AlertRepository
	interactions port.InteractionRepository
	health       func(ctx context.Context) error
	close        func()
}

// main loads configuration, opens the configured store, optionally runs
// migrations and seeds the demo account, then serves the API until a
// termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		}
		os.Exit(exitCode)
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("store init error", slog.String("driver", cfg.StoreDriver), slog.Any("error", err))
		return
	}
	defer st.close()

	hasher := password.BcryptHasher{Cost: cfg.Auth.BcryptCost}
	if cfg.SeedDemo {
		seeded, err := db.Seed(ctx, db.SeedStores{Users: st.users, Campaigns: st.campaigns, Alerts: st.alerts}, hasher, cfg.DemoPassword)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		if seeded {
			logger.Info("demo account seeded", slog.String("email", db.DemoEmail))
		}
	}

	tokens, err := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Error("token manager error", slog.Any("error", err))
		return
	}

	var advisor port.Advisor = openai.Disabled{}
	if cfg.Advisor.Enabled() {
		advisor = openai.NewClient(cfg.Advisor, nil, logger)
		logger.Info("ai advisor enabled", slog.String("model", cfg.Advisor.Model))
	} else {
		logger.Warn("ai advisor disabled, serving fallback replies")
	}

	var policy port.StatusPolicy = usecase.PermissivePolicy{}
	if cfg.Campaign.StrictTransitions {
		policy = usecase.NewAdjacencyPolicy()
	}

	svc := httpadapter.Services{
		Auth:      usecase.NewAuthUseCase(st.users, hasher, tokens, logger),
		Campaigns: usecase.NewCampaignUseCase(st.campaigns, policy),
		Alerts:    usecase.NewAlertUseCase(st.alerts),
		Dashboard: usecase.NewDashboardUseCase(st.campaigns, st.alerts, usecase.NewAggregator(nil, nil)),
		Insights:  usecase.NewInsightUseCase(st.campaigns, st.alerts, st.interactions, advisor, cfg.Advisor.Timeout, logger),
	}
	opts := httpadapter.Options{
		CookieSecure:   cfg.Auth.CookieSecure,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		CORSMaxAge:     cfg.CORS.MaxAge,
		Health:         st.health,
	}
	if !cfg.Rate.Disabled {
		opts.AuthRateLimit = cfg.Rate.AuthRequests
		opts.AuthRateWindow = cfg.Rate.AuthWindow
	}
	handler := httpadapter.NewHandler(svc, opts, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return
		}
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
		return
	}
	logger.Info("server gracefully stopped")
}

func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (*stores, error) {
	if cfg.StoreDriver == "memory" {
		logger.Warn("using in-memory store, data is lost on restart")
		return &stores{
			users:        memory.NewUserRepository(),
			campaigns:    memory.NewCampaignRepository(),
			alerts:       memory.NewAlertRepository(),
			interactions: memory.NewInteractionRepository(),
			close:        func() {},
		}, nil
	}

	if cfg.Psql.RunMigrations {
		if _, err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, err
	}
	return &stores{
		users:        postgres.NewUserRepository(pool),
		campaigns:    postgres.NewCampaignRepository(pool),
		alerts:       postgres.NewAlertRepository(pool),
		interactions: postgres.NewInteractionRepository(pool),
		health:       pool.Ping,
		close:        pool.Close,
	}, nil
}
