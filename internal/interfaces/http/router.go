package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ccl-sistemas/inventario-api/internal/application/auth"
	"github.com/ccl-sistemas/inventario-api/internal/application/inventory"
	pkgjwt "github.com/ccl-sistemas/inventario-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.InventoryUseCase
	JWT         pkgjwt.Options
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/login", authHandler.Login)

	productoHandler := NewProductoHandler(deps.InventoryUC)
	productos := app.Group("/api/productos")

	// Ping exento del gate de autenticación
	productos.Get("/ping", productoHandler.Ping)

	// Rutas protegidas (requieren Bearer Token)
	protegido := productos.Group("/", AuthMiddleware(deps.JWT))
	protegido.Get("/inventario", productoHandler.Inventario)
	protegido.Post("/movimiento", productoHandler.Movimiento)
	protegido.Get("/:id/movimientos", productoHandler.Movimientos)
}
