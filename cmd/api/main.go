package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	"github.com/ccl-sistemas/inventario-api/internal/application/auth"
	"github.com/ccl-sistemas/inventario-api/internal/application/inventory"
	"github.com/ccl-sistemas/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/ccl-sistemas/inventario-api/internal/interfaces/http"
	"github.com/ccl-sistemas/inventario-api/pkg/config"
	pkgjwt "github.com/ccl-sistemas/inventario-api/pkg/jwt"
	"github.com/ccl-sistemas/inventario-api/pkg/logger"
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

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	jwtOpt := pkgjwt.Options{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		ExpMinutes: cfg.JWT.Expiration,
	}

	// La credencial se compara siempre vía bcrypt: si solo hay password en texto
	// plano (entornos locales), se hashea aquí una única vez.
	passwordHash := cfg.Auth.AdminPasswordHash
	if passwordHash == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear credencial de admin")
		}
		passwordHash = string(hash)
		log.Warn().Msg("AUTH_ADMIN_PASSWORD en texto plano; usa AUTH_ADMIN_PASSWORD_HASH en producción")
	}
	authUC := auth.NewAuthUseCase(auth.Credential{
		User:         cfg.Auth.AdminUser,
		PasswordHash: passwordHash,
	}, jwtOpt)

	productoRepo := postgres.NewProductoRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	inventoryUC := inventory.NewInventoryUseCase(txRunner, productoRepo, movRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		JWT:         jwtOpt,
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
