package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/locale"
	"resume-builder/internal/metrics"
	"resume-builder/internal/render"
	"resume-builder/internal/style"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// infra setup
	pool, err := infra.NewExportsPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Warn("exports DB not available, export history disabled", "error", err)
		pool = nil
	}
	if pool != nil {
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool); err != nil {
			slog.Warn("migrations failed, continuing", "error", err)
		}
	}

	locales, err := locale.NewTable()
	if err != nil {
		slog.Error("load locales", "error", err)
		os.Exit(1)
	}
	registry := style.Default()
	if _, err := registry.Lookup(cfg.DefaultStyle); err != nil {
		slog.Error("invalid DEFAULT_STYLE", "style", cfg.DefaultStyle, "error", err)
		os.Exit(1)
	}
	set, err := render.NewSet(registry, locales)
	if err != nil {
		slog.Error("parse templates", "error", err)
		os.Exit(1)
	}

	exportsRepo := repo.NewExportsRepo(pool)
	store := usecase.NewStore()
	go store.RunSweeper(ctx, sweepInterval(cfg.SessionIdleTTL), cfg.SessionIdleTTL)
	editor := usecase.NewEditor(set, store, cfg.DefaultStyle, cfg.DefaultLanguage)
	exporter := usecase.NewExporter(
		infra.NewChromedpRenderer(cfg.ChromePath),
		infra.NewDocxRenderer(),
		exportsRepo,
		cfg.ExportTimeout,
	)

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := metrics.Register(promReg); err != nil {
		slog.Error("register metrics", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{ErrorHandler: httpadapter.ErrorHandler})
	app.Use(recover.New(), requestid.New())
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(promReg)))
	httpadapter.NewHandler(editor, exporter, exportsRepo).Register(app)

	go func() {
		slog.Info("listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}

func sweepInterval(ttl time.Duration) time.Duration {
	return max(ttl/4, time.Minute)
}
