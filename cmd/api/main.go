package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/gestion-pro/internal/application/balance"
	"github.com/tu-usuario/gestion-pro/internal/application/finance"
	"github.com/tu-usuario/gestion-pro/internal/application/stock"
	"github.com/tu-usuario/gestion-pro/internal/application/summary"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/backend"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/notifier"
	httpRouter "github.com/tu-usuario/gestion-pro/internal/interfaces/http"
	"github.com/tu-usuario/gestion-pro/pkg/config"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	// Gateway hacia el backend del libro mayor (stateless, una instancia)
	gateway := backend.NewClient(backend.Config{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.Timeout,
		AuthToken: cfg.Backend.AuthToken,
	}, log)

	sink := notifier.NewLogNotifier(log)

	stockCoord := stock.NewCoordinator(gateway, sink, log, cfg.Sync.MovementCap)
	balanceCoord := balance.NewCoordinator(gateway, sink, log)
	aggregator := summary.NewAggregator(gateway, stockCoord)
	financeUC := finance.NewUseCase(gateway, sink, log)

	// Sondeo de movimientos: tick pasivo, se cancela junto con el proceso
	pollCtx, stopPolling := context.WithCancel(context.Background())
	defer stopPolling()
	go stockCoord.RunMovementPoller(pollCtx, cfg.Sync.PollInterval)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockCoordinator:   stockCoord,
		BalanceCoordinator: balanceCoord,
		SummaryAggregator:  aggregator,
		FinanceUC:          financeUC,
		JWTSecret:          cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// Primero detener el poller para que no dispare llamadas durante el cierre
	stopPolling()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
