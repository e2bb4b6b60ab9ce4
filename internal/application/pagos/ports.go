package pagos

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

// CapturaVerificada resultado de consultar una orden PayPal ya capturada.
type CapturaVerificada struct {
	OrderID    string
	CaptureID  string
	Status     string // esperado: COMPLETED
	Amount     decimal.Decimal
	Currency   string
	PayerEmail string
	PayerName  string
}

// PayPalGateway consulta el estado real de una orden en PayPal. La confirmación
// nunca confía en el detalle que manda el frontend sin verificarlo aquí.
type PayPalGateway interface {
	ObtenerCaptura(ctx context.Context, paypalOrderID string) (*CapturaVerificada, error)
}

// Mailer envía el correo de confirmación de compra con el recibo adjunto.
// adjuntoPDF puede ser nil si la generación del recibo falló.
type Mailer interface {
	EnviarConfirmacion(destinatario, nombre string, orden *entity.Orden, adjuntoPDF []byte) error
}

// GeneradorRecibo produce el PDF del recibo de una orden pagada.
type GeneradorRecibo interface {
	Generar(orden *entity.Orden, usuario *entity.Usuario, productos map[string]*entity.Producto) ([]byte, error)
}

// TxRunner ejecuta el cierre de la orden (descuento de stock + cambio de
// estado) en una sola transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ordenRepo repository.OrdenRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
