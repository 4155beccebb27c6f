package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ccl-sistemas/inventario-api/internal/domain/entity"
	"github.com/ccl-sistemas/inventario-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// List devuelve todos los productos en orden natural (id ascendente).
func (r *ProductoRepo) List(ctx context.Context) ([]*entity.Producto, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, cantidad FROM productos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Cantidad); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	return r.get(ctx, `SELECT id, nombre, cantidad FROM productos WHERE id = $1`, id)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *ProductoRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Producto, error) {
	return r.get(ctx, `SELECT id, nombre, cantidad FROM productos WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductoRepo) get(ctx context.Context, query string, id int64) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Nombre, &p.Cantidad)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// UpdateCantidad actualiza solo la cantidad del producto (usado por el motor de movimientos).
func (r *ProductoRepo) UpdateCantidad(ctx context.Context, id, cantidad int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE productos SET cantidad = $2 WHERE id = $1`, id, cantidad)
	if err != nil {
		return fmt.Errorf("update cantidad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update cantidad: producto %d no existe", id)
	}
	return nil
}
