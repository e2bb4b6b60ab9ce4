package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

var _ repository.OrdenRepository = (*OrdenRepo)(nil)

const columnasOrden = `id, usuario_id, total, status,
	envio_first_name, envio_last_name, envio_phone, envio_address, envio_city, envio_state, envio_country, envio_postal_code, envio_notes,
	pago_paypal_order_id, pago_paypal_payment_id, pago_payer_email, pago_payer_name, pago_amount, pago_currency, pago_paid_at,
	created_at, updated_at`

// OrdenRepo implementación del puerto OrdenRepository sobre PostgreSQL. Las
// líneas viven en orden_items; los datos de envío y pago, aplanados en ordenes.
// Una orden sin pago registrado tiene pago_paypal_order_id NULL.
type OrdenRepo struct {
	q Querier
}

// NewOrdenRepository construye el adaptador de persistencia para órdenes.
func NewOrdenRepository(q Querier) *OrdenRepo {
	return &OrdenRepo{q: q}
}

// Create persiste la orden y sus líneas.
func (r *OrdenRepo) Create(o *entity.Orden) error {
	ctx := context.Background()
	query := `
		INSERT INTO ordenes (` + columnasOrden + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	args := []any{
		o.ID, o.UsuarioID, o.Total, o.Status,
		o.Envio.FirstName, o.Envio.LastName, o.Envio.Phone, o.Envio.Address, o.Envio.City,
		o.Envio.State, o.Envio.Country, o.Envio.PostalCode, o.Envio.Notes,
	}
	args = append(args, argumentosPago(o.Pago)...)
	args = append(args, o.CreatedAt, o.UpdatedAt)
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert orden: %w", err)
	}
	for _, item := range o.Items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO orden_items (orden_id, producto_id, cantidad, precio) VALUES ($1, $2, $3, $4)`,
			o.ID, item.ProductoID, item.Cantidad, item.Precio,
		)
		if err != nil {
			return fmt.Errorf("insert orden item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden con sus líneas.
func (r *OrdenRepo) GetByID(id string) (*entity.Orden, error) {
	query := `SELECT ` + columnasOrden + ` FROM ordenes WHERE id = $1`
	o, err := escanearOrden(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden: %w", err)
	}
	if err := r.cargarItems(o); err != nil {
		return nil, err
	}
	return o, nil
}

// ListByUsuario lista las órdenes de un usuario, la más reciente primero.
func (r *OrdenRepo) ListByUsuario(usuarioID string) ([]*entity.Orden, error) {
	query := `SELECT ` + columnasOrden + ` FROM ordenes WHERE usuario_id = $1 ORDER BY created_at DESC`
	return r.listar(query, usuarioID)
}

// List lista todas las órdenes, la más reciente primero.
func (r *OrdenRepo) List() ([]*entity.Orden, error) {
	query := `SELECT ` + columnasOrden + ` FROM ordenes ORDER BY created_at DESC`
	return r.listar(query)
}

func (r *OrdenRepo) listar(query string, args ...any) ([]*entity.Orden, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()

	var ordenes []*entity.Orden
	for rows.Next() {
		o, err := escanearOrden(rows)
		if err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		ordenes = append(ordenes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range ordenes {
		if err := r.cargarItems(o); err != nil {
			return nil, err
		}
	}
	return ordenes, nil
}

// Update actualiza estado y datos de pago; las líneas son inmutables.
func (r *OrdenRepo) Update(o *entity.Orden) error {
	query := `
		UPDATE ordenes
		SET status = $2, pago_paypal_order_id = $3, pago_paypal_payment_id = $4, pago_payer_email = $5,
			pago_payer_name = $6, pago_amount = $7, pago_currency = $8, pago_paid_at = $9, updated_at = $10
		WHERE id = $1`
	args := []any{o.ID, o.Status}
	args = append(args, argumentosPago(o.Pago)...)
	args = append(args, o.UpdatedAt)
	tag, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("update orden: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrdenRepo) cargarItems(o *entity.Orden) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT producto_id, cantidad, precio FROM orden_items WHERE orden_id = $1`, o.ID)
	if err != nil {
		return fmt.Errorf("cargar items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.OrdenItem
		if err := rows.Scan(&item.ProductoID, &item.Cantidad, &item.Precio); err != nil {
			return fmt.Errorf("scan item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	return rows.Err()
}

// argumentosPago aplana el detalle de pago (o NULLs si la orden no está pagada)
// en el mismo orden de las columnas pago_*.
func argumentosPago(pago *entity.DetallePago) []any {
	if pago == nil {
		return []any{nil, nil, nil, nil, nil, nil, nil}
	}
	return []any{
		pago.PayPalOrderID, pago.PayPalPaymentID, pago.PayerEmail, pago.PayerName,
		pago.AmountPaid, pago.Currency, pago.PaymentTime,
	}
}

func escanearOrden(row pgx.Row) (*entity.Orden, error) {
	var o entity.Orden
	var orderID, paymentID, payerEmail, payerName, currency *string
	var amount *decimal.Decimal
	var paidAt *time.Time

	err := row.Scan(
		&o.ID, &o.UsuarioID, &o.Total, &o.Status,
		&o.Envio.FirstName, &o.Envio.LastName, &o.Envio.Phone, &o.Envio.Address, &o.Envio.City,
		&o.Envio.State, &o.Envio.Country, &o.Envio.PostalCode, &o.Envio.Notes,
		&orderID, &paymentID, &payerEmail, &payerName,
		&amount, &currency, &paidAt,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if orderID != nil && *orderID != "" {
		pago := &entity.DetallePago{PayPalOrderID: *orderID}
		if paymentID != nil {
			pago.PayPalPaymentID = *paymentID
		}
		if payerEmail != nil {
			pago.PayerEmail = *payerEmail
		}
		if payerName != nil {
			pago.PayerName = *payerName
		}
		if amount != nil {
			pago.AmountPaid = *amount
		}
		if currency != nil {
			pago.Currency = *currency
		}
		if paidAt != nil {
			pago.PaymentTime = *paidAt
		}
		o.Pago = pago
	}
	return &o, nil
}
