package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/gestion-ti/internal/application/analytics"
	"github.com/tu-usuario/gestion-ti/internal/application/auth"
	"github.com/tu-usuario/gestion-ti/internal/application/billing"
	"github.com/tu-usuario/gestion-ti/internal/application/usecase"
	infraemail "github.com/tu-usuario/gestion-ti/internal/infrastructure/email"
	infrapdf "github.com/tu-usuario/gestion-ti/internal/infrastructure/pdf"
	"github.com/tu-usuario/gestion-ti/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gestion-ti/internal/interfaces/http"
	"github.com/tu-usuario/gestion-ti/pkg/config"
	"github.com/tu-usuario/gestion-ti/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	servicioRepo := postgres.NewServicioRepository(pool)
	cotizacionRepo := postgres.NewCotizacionRepository(pool)
	facturaRepo := postgres.NewFacturaRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Infraestructura de documentos
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(infrapdf.EmpresaEmisora{
		RazonSocial: cfg.App.Name,
		RUT:         os.Getenv("EMPRESA_RUT"),
		Email:       cfg.Email.From,
	})
	emailSender := infraemail.NewResendService(cfg.Email.ResendAPIKey, cfg.Email.From, log)

	// Casos de uso
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	servicioUC := usecase.NewServicioUseCase(servicioRepo)
	pagoUC := usecase.NewPagoUseCase(pagoRepo, facturaRepo)
	gastoUC := usecase.NewGastoUseCase(gastoRepo)
	cotizacionUC := billing.NewCotizacionUseCase(cotizacionRepo, clienteRepo)
	convertirUC := billing.NewConvertirUseCase(cotizacionRepo, txRunner)
	facturaUC := billing.NewFacturaUseCase(facturaRepo)
	enviarUC := billing.NewEnviarUseCase(cotizacionRepo, facturaRepo, clienteRepo, pdfGenerator, emailSender)
	pdfUC := billing.NewPDFUseCase(cotizacionRepo, facturaRepo, clienteRepo, pdfGenerator)
	flujoCajaUC := analytics.NewFlujoCajaUseCase(analyticsRepo)

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
		ClienteUC:    clienteUC,
		ServicioUC:   servicioUC,
		PagoUC:       pagoUC,
		GastoUC:      gastoUC,
		CotizacionUC: cotizacionUC,
		ConvertirUC:  convertirUC,
		FacturaUC:    facturaUC,
		EnviarUC:     enviarUC,
		PDFUC:        pdfUC,
		FlujoCajaUC:  flujoCajaUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
