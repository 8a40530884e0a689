package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcastro/licita-pro/internal/application/notify"
	"github.com/jcastro/licita-pro/internal/application/usecase"
	"github.com/jcastro/licita-pro/internal/infrastructure/postgres"
	httpRouter "github.com/jcastro/licita-pro/internal/interfaces/http"
	"github.com/jcastro/licita-pro/pkg/config"
	"github.com/jcastro/licita-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	tenderRepo := postgres.NewTenderRepository(pool)
	bidRepo := postgres.NewBidRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	notifier := notify.NewLogNotifier(log)
	tenderUC := usecase.NewTenderUseCase(tenderRepo, notifier)
	bidUC := usecase.NewBidUseCase(bidRepo, tenderRepo, notifier)
	dashboardUC := usecase.NewDashboardUseCase(statsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "LicitaPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TenderUC:    tenderUC,
		BidUC:       bidUC,
		DashboardUC: dashboardUC,
		Users:       userRepo,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
	})

	// Shutdown ordenado: cerrar el listener antes que el pool.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("apagando servidor")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	if err := app.Listen(cfg.HTTP.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
	log.Info().Msg("servidor detenido")
}
