package repository

import (
	"context"

	"github.com/ccl-sistemas/inventario-api/internal/domain/entity"
)

// ProductoRepository puerto de persistencia para productos.
// GetByID/GetForUpdate devuelven (nil, nil) cuando el producto no existe.
type ProductoRepository interface {
	// List devuelve todos los productos en orden natural (id ascendente).
	List(ctx context.Context) ([]*entity.Producto, error)
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Producto, error)
	UpdateCantidad(ctx context.Context, id, cantidad int64) error
}
