package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/Isaiahshap/pulse/internal/catalog"
	"github.com/Isaiahshap/pulse/internal/config"
	"github.com/Isaiahshap/pulse/internal/database"
	"github.com/Isaiahshap/pulse/internal/middleware"
	"github.com/Isaiahshap/pulse/internal/repository"
	"github.com/Isaiahshap/pulse/internal/routes"
	"github.com/Isaiahshap/pulse/internal/services"
	inboxws "github.com/Isaiahshap/pulse/internal/websocket"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openContactStore(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to open contact store", zap.Error(err))
	}
	defer closeStore()

	var hub *inboxws.Hub
	if cfg.StaffEnabled() {
		hub = inboxws.NewHub(zl)
		go hub.Run(ctx)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Pulse Gym",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID(zl))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(compress.New())
	app.Use(etag.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	if err := routes.RegisterRoutes(app, cfg, routes.Dependencies{
		Catalog:      catalog.Default(),
		ContactStore: store,
		Hub:          hub,
		Logger:       zl,
	}); err != nil {
		zl.Fatal("failed to register routes", zap.Error(err))
	}

	go func() {
		<-ctx.Done()
		zl.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zl.Error("shutdown failed", zap.Error(err))
		}
	}()

	zl.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
		zap.Bool("staff", cfg.StaffEnabled()),
		zap.Bool("docs", cfg.DocsEnabled()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatal("server failed to start", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// openContactStore prefers Postgres and falls back to the embedded store.
func openContactStore(ctx context.Context, cfg *config.Config, zl *zap.Logger) (services.ContactStore, func(), error) {
	if cfg.DBUrl != "" {
		pool, err := database.Connect(ctx, cfg.DBUrl, zl)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewContactRepository(pool), pool.Close, nil
	}

	bunt, err := repository.NewBuntContactRepository(cfg.ContactStorePath)
	if err != nil {
		return nil, nil, err
	}
	zl.Info("using embedded contact store", zap.String("path", cfg.ContactStorePath))
	return bunt, func() {
		if err := bunt.Close(); err != nil {
			zl.Warn("close contact store", zap.Error(err))
		}
	}, nil
}
