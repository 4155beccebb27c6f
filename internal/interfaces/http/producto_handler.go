package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ccl-sistemas/inventario-api/internal/application/dto"
	"github.com/ccl-sistemas/inventario-api/internal/application/inventory"
	"github.com/ccl-sistemas/inventario-api/internal/domain"
)

// ProductoHandler maneja las peticiones HTTP de inventario y movimientos (protegido).
type ProductoHandler struct {
	uc *inventory.InventoryUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *inventory.InventoryUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Inventario godoc
// @Summary      Consultar inventario
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductoResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/productos/inventario [get]
func (h *ProductoHandler) Inventario(c *fiber.Ctx) error {
	out, err := h.uc.ListInventario(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Movimiento godoc
// @Summary      Registrar entrada o salida de un producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimientoRequest  true  "productId, kind (entrada|salida), amount"
// @Success      200   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/movimiento [post]
func (h *ProductoHandler) Movimiento(c *fiber.Ctx) error {
	var in dto.MovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarMovimiento(c.Context(), GetUsuario(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de movimiento inválido: usa 'entrada' o 'salida' con cantidad positiva"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "no hay suficiente stock disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Movimientos godoc
// @Summary      Historial de movimientos de un producto
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {array}   dto.MovimientoHistorialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/movimientos [get]
func (h *ProductoHandler) Movimientos(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	out, err := h.uc.ListMovimientos(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Ping godoc
// @Summary      Verificar que la API responde (sin autenticación)
// @Tags         productos
// @Produce      plain
// @Success      200  {string}  string  "Pong"
// @Router       /api/productos/ping [get]
func (h *ProductoHandler) Ping(c *fiber.Ctx) error {
	return c.SendString("Pong")
}
