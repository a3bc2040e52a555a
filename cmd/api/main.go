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

	"github.com/mvdigital/negocioweb-api/internal/application/auth"
	"github.com/mvdigital/negocioweb-api/internal/application/usecase"
	"github.com/mvdigital/negocioweb-api/internal/infrastructure/localstore"
	httpRouter "github.com/mvdigital/negocioweb-api/internal/interfaces/http"
	"github.com/mvdigital/negocioweb-api/pkg/config"
	"github.com/mvdigital/negocioweb-api/pkg/logger"
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
		Str("store", cfg.Store.Path).
		Msg("iniciando aplicación")

	store, err := localstore.NewBoltStore(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer store.Close()

	contentRepo := localstore.NewContentRepository(store, log)
	catalogRepo := localstore.NewCatalogRepository(store, log)
	transactionRepo := localstore.NewTransactionRepository(store, log)
	inventoryRepo := localstore.NewInventoryRepository(store, log)

	contentUC := usecase.NewContentUseCase(contentRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	summaryUC := usecase.NewSummaryUseCase(transactionRepo)
	authUC := auth.NewAuthUseCase(cfg.Admin.PasswordHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	mountSwagger(app, "./docs/swagger.json", log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ContentUC:     contentUC,
		CatalogUC:     catalogUC,
		TransactionUC: transactionUC,
		InventoryUC:   inventoryUC,
		SummaryUC:     summaryUC,
		AuthUC:        authUC,
		JWTExpMinutes: cfg.JWT.Expiration,
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

// mountSwagger monta la UI de swagger en /docs si el archivo de
// especificación generado existe. swagger.New entra en pánico con un archivo
// ausente, así que sin especificación la API arranca igual, solo sin la UI.
func mountSwagger(app *fiber.App, filePath string, log *logger.Logger) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("path", filePath).
			Msg("especificación swagger no encontrada, UI deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "NegocioWeb API",
	}))
}
