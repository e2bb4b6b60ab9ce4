package pagos

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

// Confirmar cierra el pago de una orden: verifica la captura contra PayPal,
// descuenta stock revalidando disponibilidad y marca la orden como pagada, todo
// en una transacción. Es idempotente sobre órdenes ya pagadas. Si algún
// producto quedó sin stock entre el checkout y la confirmación, la orden pasa
// a error_stock y no se descuenta nada.
func (uc *OrdenUseCase) Confirmar(ctx context.Context, in dto.ConfirmarPagoRequest) (*dto.ConfirmarPagoResponse, error) {
	orden, err := uc.ordenRepo.GetByID(in.OrdenID)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	switch orden.Status {
	case entity.OrdenPagada:
		// Confirmación repetida: misma respuesta, sin tocar stock
		return &dto.ConfirmarPagoResponse{
			Message:      "La orden ya estaba pagada",
			Orden:        *toOrdenResponse(orden),
			StockUpdates: []dto.StockUpdate{},
		}, nil
	case entity.OrdenCancelada:
		return nil, domain.ErrConflict
	}

	captura, err := uc.gateway.ObtenerCaptura(ctx, in.Detalle.ID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(captura.Status, "COMPLETED") {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	updates := []dto.StockUpdate{}
	err = uc.txRunner.Run(ctx, func(
		ordenRepo repository.OrdenRepository,
		productoRepo repository.ProductoRepository,
	) error {
		for _, item := range orden.Items {
			producto, err := productoRepo.GetByID(item.ProductoID)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrNotFound
			}
			if producto.Stock < item.Cantidad {
				return domain.ErrInsufficientStock
			}
			anterior := producto.Stock
			producto.Stock -= item.Cantidad
			producto.Ventas += item.Cantidad
			producto.UpdatedAt = now
			if err := productoRepo.Update(producto); err != nil {
				return err
			}
			updates = append(updates, dto.StockUpdate{
				Producto:        producto.Nombre,
				StockAnterior:   anterior,
				StockNuevo:      producto.Stock,
				CantidadVendida: item.Cantidad,
			})
		}
		orden.Status = entity.OrdenPagada
		orden.Pago = &entity.DetallePago{
			PayPalOrderID:   captura.OrderID,
			PayPalPaymentID: captura.CaptureID,
			PayerEmail:      captura.PayerEmail,
			PayerName:       captura.PayerName,
			AmountPaid:      captura.Amount,
			Currency:        captura.Currency,
			PaymentTime:     now,
		}
		orden.UpdatedAt = now
		return ordenRepo.Update(orden)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			uc.marcarErrorStock(orden)
		}
		return nil, err
	}

	uc.enviarConfirmacion(orden)

	return &dto.ConfirmarPagoResponse{
		Message:      "Pago confirmado",
		Orden:        *toOrdenResponse(orden),
		StockUpdates: updates,
	}, nil
}

// marcarErrorStock deja constancia de que la confirmación encontró stock
// insuficiente. Corre fuera de la transacción abortada.
func (uc *OrdenUseCase) marcarErrorStock(orden *entity.Orden) {
	orden.Status = entity.OrdenErrorStock
	orden.UpdatedAt = time.Now()
	if err := uc.ordenRepo.Update(orden); err != nil {
		uc.log.Error().Err(err).Str("orden", orden.ID).Msg("no se pudo marcar error_stock")
	}
}

// enviarConfirmacion genera el recibo PDF y envía el correo. Un fallo aquí no
// revierte el pago, solo se loguea.
func (uc *OrdenUseCase) enviarConfirmacion(orden *entity.Orden) {
	if uc.mailer == nil {
		return
	}
	usuario, err := uc.usuarioRepo.GetByID(orden.UsuarioID)
	if err != nil || usuario == nil {
		uc.log.Warn().Str("orden", orden.ID).Msg("usuario no disponible para correo de confirmación")
		return
	}
	var pdf []byte
	if uc.recibo != nil {
		productos := make(map[string]*entity.Producto, len(orden.Items))
		for _, item := range orden.Items {
			p, err := uc.productoRepo.GetByID(item.ProductoID)
			if err == nil && p != nil {
				productos[item.ProductoID] = p
			}
		}
		pdf, err = uc.recibo.Generar(orden, usuario, productos)
		if err != nil {
			uc.log.Warn().Err(err).Str("orden", orden.ID).Msg("no se pudo generar el recibo PDF")
			pdf = nil
		}
	}
	if err := uc.mailer.EnviarConfirmacion(usuario.Email, usuario.Name, orden, pdf); err != nil {
		uc.log.Warn().Err(err).Str("orden", orden.ID).Msg("no se pudo enviar el correo de confirmación")
	}
}
