package postgres

import (
	"context"
	"fmt"

	"github.com/ccl-sistemas/inventario-api/internal/domain/entity"
	"github.com/ccl-sistemas/inventario-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento aplicado.
func (r *MovimientoRepo) Create(ctx context.Context, mov *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, producto_id, tipo, cantidad, stock_anterior, stock_nuevo, creado_por, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.ProductoID, mov.Tipo, mov.Cantidad,
		mov.StockAnterior, mov.StockNuevo, mov.CreadoPor, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListByProducto devuelve los movimientos de un producto, del más reciente al más antiguo.
func (r *MovimientoRepo) ListByProducto(ctx context.Context, productoID int64) ([]*entity.Movimiento, error) {
	query := `
		SELECT id, producto_id, tipo, cantidad, stock_anterior, stock_nuevo, creado_por, created_at
		FROM movimientos WHERE producto_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, productoID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(&m.ID, &m.ProductoID, &m.Tipo, &m.Cantidad,
			&m.StockAnterior, &m.StockNuevo, &m.CreadoPor, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
