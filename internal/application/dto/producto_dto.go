package dto

import "time"

// ProductoResponse salida de un producto de inventario.
type ProductoResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Cantidad int64  `json:"cantidad"`
}

// MovimientoRequest entrada para registrar un movimiento de inventario.
// Tipo se compara sin distinguir mayúsculas ("entrada" | "salida").
type MovimientoRequest struct {
	ProductoID int64  `json:"productId" validate:"required,gt=0"`
	Tipo       string `json:"kind" validate:"required,oneof=entrada salida"`
	Cantidad   int64  `json:"amount" validate:"required,gt=0"`
}

// MovimientoResponse salida de un movimiento aplicado: mensaje + producto actualizado.
type MovimientoResponse struct {
	Message  string           `json:"message"`
	Producto ProductoResponse `json:"producto"`
}

// MovimientoHistorialResponse una fila del historial de movimientos de un producto.
type MovimientoHistorialResponse struct {
	ID            string    `json:"id"`
	ProductoID    int64     `json:"productoId"`
	Tipo          string    `json:"tipo"`
	Cantidad      int64     `json:"cantidad"`
	StockAnterior int64     `json:"stockAnterior"`
	StockNuevo    int64     `json:"stockNuevo"`
	CreadoPor     string    `json:"creadoPor"`
	CreatedAt     time.Time `json:"createdAt"`
}
