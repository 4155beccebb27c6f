package inventory

import (
	"context"

	"github.com/ccl-sistemas/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que la verificación de stock y la escritura sean atómicas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}
