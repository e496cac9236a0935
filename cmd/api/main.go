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
	"github.com/tu-usuario/sastre-api/internal/application/admin"
	"github.com/tu-usuario/sastre-api/internal/application/auth"
	"github.com/tu-usuario/sastre-api/internal/application/order"
	"github.com/tu-usuario/sastre-api/internal/application/ports"
	"github.com/tu-usuario/sastre-api/internal/application/tailor"
	inframedia "github.com/tu-usuario/sastre-api/internal/infrastructure/media"
	"github.com/tu-usuario/sastre-api/internal/infrastructure/notify"
	"github.com/tu-usuario/sastre-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/sastre-api/internal/interfaces/http"
	"github.com/tu-usuario/sastre-api/pkg/config"
	"github.com/tu-usuario/sastre-api/pkg/logger"
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

	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)

	// Cola de notificaciones: un worker, encolado sin bloqueo.
	dispatcher := notify.NewDispatcher(
		notify.NewSMTPMailer(cfg.SMTP),
		notify.NewPushClient(cfg.Push.GatewayURL, cfg.Push.APIKey),
		256,
		log,
	)
	dispatcher.Start()
	defer dispatcher.Close()

	// Almacenamiento de fotos: S3 real con bucket configurado, mock en memoria
	// para desarrollo local.
	var mediaStorage ports.MediaStorage
	if cfg.Media.Bucket != "" {
		mediaStorage, err = inframedia.NewS3Storage(ctx, cfg.Media)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente S3")
		}
	} else {
		log.Warn().Msg("AWS_S3_BUCKET no configurado, usando almacenamiento en memoria")
		mediaStorage = inframedia.NewMockStorage()
	}

	authUC := auth.NewAuthUseCase(userRepo, customerRepo, roleRepo, dispatcher, auth.JWTConfig{
		Secret:           cfg.JWT.Secret,
		AccessExpMinutes: cfg.JWT.AccessExpMinutes,
		RefreshExpHours:  cfg.JWT.RefreshExpHours,
		Issuer:           cfg.JWT.Issuer,
	}, log)
	roleUC := admin.NewRoleUseCase(roleRepo)
	verifyUC := tailor.NewVerificationUseCase(userRepo, dispatcher, log)
	orderUC := order.NewUseCase(orderRepo, serviceRepo, dispatcher, order.Config{
		StrictTransitions: cfg.Orders.StrictTransitions,
	}, log)

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
		Title:    "Sastre API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:   authUC,
		RoleUC:   roleUC,
		VerifyUC: verifyUC,
		OrderUC:  orderUC,
		Media:    mediaStorage,
		JWT:      cfg.JWT,
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
