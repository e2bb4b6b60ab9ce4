package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrdenPendiente  = "pendiente"
	OrdenPagada     = "pagado"
	OrdenCancelada  = "cancelado"
	OrdenErrorStock = "error_stock"
)

// OrdenItem línea de una orden. Precio es el precio unitario al momento de la
// compra (ya con descuento de oferta si aplicaba).
type OrdenItem struct {
	ProductoID string
	Cantidad   int
	Precio     decimal.Decimal
}

// InfoEnvio datos de envío capturados en el checkout.
type InfoEnvio struct {
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	City       string
	State      string
	Country    string
	PostalCode string
	Notes      string
}

// DetallePago datos registrados al confirmar el pago con PayPal.
type DetallePago struct {
	PayPalOrderID   string
	PayPalPaymentID string
	PayerEmail      string
	PayerName       string
	AmountPaid      decimal.Decimal
	Currency        string
	PaymentTime     time.Time
}

// Orden de compra. Pasa de pendiente a pagado al confirmar el pago; error_stock
// marca una confirmación que encontró stock insuficiente.
type Orden struct {
	ID        string
	UsuarioID string
	Items     []OrdenItem
	Total     decimal.Decimal
	Status    string
	Envio     InfoEnvio
	Pago      *DetallePago
	CreatedAt time.Time
	UpdatedAt time.Time
}
