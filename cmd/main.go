package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"kp_generator/internal/config"
	"kp_generator/internal/documents"
	"kp_generator/internal/domain/service/pricing"
	"kp_generator/internal/domain/service/quote"
	"kp_generator/internal/server"
	"kp_generator/pkg/application/modules"
	"kp_generator/pkg/contextx"
	"kp_generator/pkg/logx"
	"kp_generator/pkg/middlewarex"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := run(ctx, log); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}

func run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	if cfg.HTTP.SecretKey == config.InsecureDefaultSecretKey {
		log.Warn("SECRET_KEY is the insecure default, override it in production")
	}

	// 2. Pricing constants
	constants, err := pricing.ByMode(pricing.Mode(cfg.Pricing.Mode))
	if err != nil {
		return fmt.Errorf("pricing.ByMode: %w", err)
	}

	if err := constants.Validate(); err != nil {
		return fmt.Errorf("constants.Validate: %w", err)
	}

	log.Info("pricing configured", slog.String("mode", cfg.Pricing.Mode))

	// 3. Document templates
	if err := os.MkdirAll(cfg.Documents.TemplatesDir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}

	store := documents.NewTemplateStore(cfg.Documents.ExcelPath(), cfg.Documents.WordPath())

	// Отсутствие шаблонов не валит процесс: их можно доложить на диск позже,
	// до тех пор пользователь получает понятное сообщение.
	if err := store.Verify(); err != nil {
		log.Warn("document templates are not ready", logx.Error(err))
	}

	// 4. Domain services
	quoteService := quote.NewService(
		constants,
		documents.NewExcelFiller(store),
		documents.NewWordFiller(store),
	)

	// 5. HTTP server
	renderer, err := server.NewRenderer(cfg.Documents.WebDir)
	if err != nil {
		return fmt.Errorf("server.NewRenderer: %w", err)
	}

	srv := server.NewServer(server.NewQuotationServer(
		quoteService,
		renderer,
		cfg.HTTP.SecretKey,
		cfg.Documents.StaticDir,
	))

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.Recovery(srv.InternalErrorHandler()),
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	// 6. Application modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g)
	modules.MetricServer{ListenAddress: cfg.Metrics.ListenAddress}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
