package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrdenItemRequest línea del carrito en el checkout.
type OrdenItemRequest struct {
	ProductoID string          `json:"productId" validate:"required"`
	Cantidad   int             `json:"quantity" validate:"min=1"`
	Precio     decimal.Decimal `json:"price"`
}

// InfoEnvioRequest datos de envío del checkout.
type InfoEnvioRequest struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
	Notes      string `json:"notes"`
}

// CreateOrdenRequest entrada para crear una orden previa al pago.
type CreateOrdenRequest struct {
	UsuarioID string             `json:"usuarioId" validate:"required"`
	Products  []OrdenItemRequest `json:"products" validate:"required,min=1"`
	Total     decimal.Decimal    `json:"total"`
	Envio     InfoEnvioRequest   `json:"shippingInfo"`
}

// ConfirmarPagoRequest confirmación de captura PayPal enviada por el frontend.
type ConfirmarPagoRequest struct {
	OrdenID string        `json:"orderId" validate:"required"`
	Detalle PayPalCaptura `json:"paymentDetails" validate:"required"`
}

// PayPalCaptura subconjunto de la respuesta de captura de PayPal que registramos.
type PayPalCaptura struct {
	ID            string `json:"id"`
	PurchaseUnits []struct {
		Amount struct {
			Value        string `json:"value"`
			CurrencyCode string `json:"currency_code"`
		} `json:"amount"`
		Payments struct {
			Captures []struct {
				ID string `json:"id"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
	Payer struct {
		EmailAddress string `json:"email_address"`
		Name         struct {
			GivenName string `json:"given_name"`
			Surname   string `json:"surname"`
		} `json:"name"`
	} `json:"payer"`
}

// OrdenItemResponse línea de orden en respuestas.
type OrdenItemResponse struct {
	ProductoID string          `json:"productId"`
	Cantidad   int             `json:"quantity"`
	Precio     decimal.Decimal `json:"price"`
}

// OrdenResponse salida de una orden.
type OrdenResponse struct {
	ID        string              `json:"id"`
	UsuarioID string              `json:"usuarioId"`
	Products  []OrdenItemResponse `json:"products"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

// StockUpdate cambio de stock aplicado al confirmar un pago.
type StockUpdate struct {
	Producto        string `json:"producto"`
	StockAnterior   int    `json:"stockAnterior"`
	StockNuevo      int    `json:"stockNuevo"`
	CantidadVendida int    `json:"cantidadVendida"`
}

// ConfirmarPagoResponse resultado de la confirmación del pago.
type ConfirmarPagoResponse struct {
	Message      string        `json:"message"`
	Orden        OrdenResponse `json:"order"`
	StockUpdates []StockUpdate `json:"stockUpdates"`
}
