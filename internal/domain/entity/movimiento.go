package entity

import "time"

// Tipos de movimiento de inventario.
const (
	TipoEntrada = "entrada"
	TipoSalida  = "salida"
)

// Movimiento registra cada cambio de stock aplicado a un producto.
// StockAnterior y StockNuevo dejan rastro auditable de la transición.
type Movimiento struct {
	ID            string // uuid
	ProductoID    int64
	Tipo          string // entrada | salida
	Cantidad      int64
	StockAnterior int64
	StockNuevo    int64
	CreadoPor     string // subject del token que registró el movimiento
	CreatedAt     time.Time
}
