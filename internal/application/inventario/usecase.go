package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

// MovimientoUseCase registra movimientos de inventario (entrada, salida,
// devolucion) ajustando el stock del producto en la misma transacción.
type MovimientoUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovimientoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(txRunner TxRunner, movRepo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{txRunner: txRunner, movRepo: movRepo}
}

// Registrar valida el movimiento y lo aplica: entrada y devolucion suman
// stock, salida resta y falla con stock insuficiente. El movimiento y el
// nuevo stock se escriben en la misma transacción.
func (uc *MovimientoUseCase) Registrar(ctx context.Context, in dto.CreateMovimientoRequest) (*dto.MovimientoResponse, error) {
	switch in.Tipo {
	case entity.MovimientoEntrada, entity.MovimientoSalida, entity.MovimientoDevolucion:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.ProductoID == "" || in.UsuarioID == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.MovimientoResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		producto, err := productoRepo.GetByID(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		switch in.Tipo {
		case entity.MovimientoSalida:
			if producto.Stock < in.Cantidad {
				return domain.ErrInsufficientStock
			}
			producto.Stock -= in.Cantidad
		default:
			producto.Stock += in.Cantidad
		}
		producto.UpdatedAt = time.Now()
		if err := productoRepo.Update(producto); err != nil {
			return err
		}
		mov := &entity.MovimientoInventario{
			ID:         uuid.New().String(),
			ProductoID: in.ProductoID,
			Tipo:       in.Tipo,
			Cantidad:   in.Cantidad,
			UsuarioID:  in.UsuarioID,
			Motivo:     in.Motivo,
			Fecha:      time.Now(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		resp = toMovimientoResponse(mov, producto.Stock)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetByID obtiene un movimiento por ID.
func (uc *MovimientoUseCase) GetByID(id string) (*dto.MovimientoResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return toMovimientoResponse(mov, 0), nil
}

// List lista todos los movimientos.
func (uc *MovimientoUseCase) List() ([]dto.MovimientoResponse, error) {
	movs, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, *toMovimientoResponse(m, 0))
	}
	return items, nil
}

// ActualizarMotivo corrige el motivo de un movimiento ya registrado. La
// cantidad y el tipo son inmutables: un error se corrige con otro movimiento.
func (uc *MovimientoUseCase) ActualizarMotivo(id string, in dto.UpdateMovimientoRequest) (*dto.MovimientoResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	mov.Motivo = in.Motivo
	if err := uc.movRepo.Update(mov); err != nil {
		return nil, err
	}
	return toMovimientoResponse(mov, 0), nil
}

func toMovimientoResponse(m *entity.MovimientoInventario, stockActual int) *dto.MovimientoResponse {
	if m == nil {
		return nil
	}
	return &dto.MovimientoResponse{
		ID:          m.ID,
		ProductoID:  m.ProductoID,
		Tipo:        m.Tipo,
		Cantidad:    m.Cantidad,
		UsuarioID:   m.UsuarioID,
		Motivo:      m.Motivo,
		Fecha:       m.Fecha,
		StockActual: stockActual,
	}
}
