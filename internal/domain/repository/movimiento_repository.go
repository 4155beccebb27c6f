package repository

import (
	"context"

	"github.com/ccl-sistemas/inventario-api/internal/domain/entity"
)

// MovimientoRepository puerto de persistencia para el historial de movimientos.
type MovimientoRepository interface {
	Create(ctx context.Context, mov *entity.Movimiento) error
	// ListByProducto devuelve los movimientos de un producto, del más reciente al más antiguo.
	ListByProducto(ctx context.Context, productoID int64) ([]*entity.Movimiento, error)
}
