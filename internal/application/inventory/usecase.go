package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ccl-sistemas/inventario-api/internal/application/dto"
	"github.com/ccl-sistemas/inventario-api/internal/domain"
	"github.com/ccl-sistemas/inventario-api/internal/domain/entity"
	"github.com/ccl-sistemas/inventario-api/internal/domain/repository"
)

// InventoryUseCase consulta de inventario y registro transaccional de movimientos
// (entrada/salida) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type InventoryUseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
	movRepo      repository.MovimientoRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(txRunner TxRunner, productoRepo repository.ProductoRepository, movRepo repository.MovimientoRepository) *InventoryUseCase {
	return &InventoryUseCase{txRunner: txRunner, productoRepo: productoRepo, movRepo: movRepo}
}

// ListInventario devuelve todos los productos en orden natural (id ascendente).
// Un inventario vacío es un resultado válido: lista vacía, no error.
func (uc *InventoryUseCase) ListInventario(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// RegistrarMovimiento aplica una entrada o salida sobre un producto.
// La verificación de stock y la escritura ocurren dentro de la misma transacción,
// con la fila del producto bloqueada: dos salidas concurrentes sobre el mismo
// producto nunca pueden dejar la cantidad negativa.
func (uc *InventoryUseCase) RegistrarMovimiento(ctx context.Context, usuario string, in dto.MovimientoRequest) (*dto.MovimientoResponse, error) {
	tipo := strings.ToLower(strings.TrimSpace(in.Tipo))
	if tipo != entity.TipoEntrada && tipo != entity.TipoSalida {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductoID <= 0 || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var actualizado *entity.Producto
	err := uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
	) error {
		// Bloquea la fila del producto (SELECT FOR UPDATE) para evitar lost updates
		producto, err := productoRepo.GetForUpdate(ctx, in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}

		anterior := producto.Cantidad
		switch tipo {
		case entity.TipoEntrada:
			producto.Cantidad = anterior + in.Cantidad
		case entity.TipoSalida:
			if anterior < in.Cantidad {
				return domain.ErrInsufficientStock
			}
			producto.Cantidad = anterior - in.Cantidad
		}

		if err := productoRepo.UpdateCantidad(ctx, producto.ID, producto.Cantidad); err != nil {
			return err
		}
		mov := &entity.Movimiento{
			ID:            uuid.New().String(),
			ProductoID:    producto.ID,
			Tipo:          tipo,
			Cantidad:      in.Cantidad,
			StockAnterior: anterior,
			StockNuevo:    producto.Cantidad,
			CreadoPor:     usuario,
			CreatedAt:     time.Now(),
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		actualizado = producto
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovimientoResponse{
		Message:  "Movimiento registrado correctamente.",
		Producto: toProductoResponse(actualizado),
	}, nil
}

// ListMovimientos devuelve el historial de movimientos de un producto, del más
// reciente al más antiguo. Producto inexistente es ErrNotFound.
func (uc *InventoryUseCase) ListMovimientos(ctx context.Context, productoID int64) ([]dto.MovimientoHistorialResponse, error) {
	producto, err := uc.productoRepo.GetByID(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movRepo.ListByProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoHistorialResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimientoHistorialResponse{
			ID:            m.ID,
			ProductoID:    m.ProductoID,
			Tipo:          m.Tipo,
			Cantidad:      m.Cantidad,
			StockAnterior: m.StockAnterior,
			StockNuevo:    m.StockNuevo,
			CreadoPor:     m.CreadoPor,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out, nil
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{ID: p.ID, Nombre: p.Nombre, Cantidad: p.Cantidad}
}
