package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvdigital/negocioweb-api/internal/application/auth"
	"github.com/mvdigital/negocioweb-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ContentUC     *usecase.ContentUseCase
	CatalogUC     *usecase.CatalogUseCase
	TransactionUC *usecase.TransactionUseCase
	InventoryUC   *usecase.InventoryUseCase
	SummaryUC     *usecase.SummaryUseCase
	AuthUC        *auth.AuthUseCase
	JWTExpMinutes int
}

// Router registra las rutas de la API. Las lecturas son públicas; toda
// mutación pasa por EditMiddleware y además por la verificación de
// capability dentro del caso de uso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	edit := EditMiddleware(deps.AuthUC)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTExpMinutes)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Contenido editable por variante
	content := api.Group("/content/:business")
	contentHandler := NewContentHandler(deps.ContentUC)
	content.Get("/", contentHandler.Get)
	content.Patch("/", edit, contentHandler.Update)

	// Catálogo de servicios por variante
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	content.Get("/services", catalogHandler.List)
	content.Post("/services", edit, catalogHandler.Create)
	content.Put("/services/:id", edit, catalogHandler.Update)
	content.Delete("/services/:id", edit, catalogHandler.Delete)

	// Transacciones financieras
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", edit, transactionHandler.Create)
	transactions.Put("/:id", edit, transactionHandler.Update)
	transactions.Delete("/:id", edit, transactionHandler.Delete)

	// Inventario
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/low-stock", inventoryHandler.LowStock)
	inventory.Post("/", edit, inventoryHandler.Create)
	inventory.Put("/:id", edit, inventoryHandler.Update)
	inventory.Delete("/:id", edit, inventoryHandler.Delete)

	// Resumen financiero
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	api.Get("/summary", summaryHandler.Get)
}
