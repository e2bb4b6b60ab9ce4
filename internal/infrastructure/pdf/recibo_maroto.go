// Package pdf genera el recibo de compra que se adjunta al correo de
// confirmación de una orden pagada.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda CCL  │  N° Orden + Fecha de pago            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COMPRADOR: nombre + email + dirección de envío             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL PAGADO + referencia PayPal                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ccltech/tienda-api/internal/application/pagos"
	"github.com/ccltech/tienda-api/internal/domain/entity"
)

var (
	colorPrimario = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ pagos.GeneradorRecibo = (*ReciboMaroto)(nil)

// ReciboMaroto implementa pagos.GeneradorRecibo usando Maroto v2.
type ReciboMaroto struct {
	tienda string
}

// NewReciboMaroto construye el generador. tienda es el nombre comercial
// que encabeza el recibo.
func NewReciboMaroto(tienda string) *ReciboMaroto {
	return &ReciboMaroto{tienda: tienda}
}

// Generar produce el PDF del recibo y devuelve sus bytes. productos mapea
// ID de producto a su entidad para resolver los nombres de las líneas.
func (g *ReciboMaroto) Generar(orden *entity.Orden, usuario *entity.Usuario, productos map[string]*entity.Producto) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de compra", true).
		WithAuthor(g.tienda, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.encabezado(orden))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(compradorRow(orden, usuario))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))

	m.AddRows(cabeceraTablaRow())
	for _, r := range lineasRows(orden, productos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(totalRow(orden))
	m.AddRows(pagoRows(orden)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// encabezado: nombre de la tienda (izq) y N° de orden + fecha de pago (der).
func (g *ReciboMaroto) encabezado(orden *entity.Orden) core.Row {
	fecha := orden.UpdatedAt.Format("02/01/2006")
	if orden.Pago != nil && !orden.Pago.PaymentTime.IsZero() {
		fecha = orden.Pago.PaymentTime.Format("02/01/2006 15:04")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.tienda, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
			text.New("Recibo de compra", props.Text{
				Size: 9, Top: 9, Color: colorGris,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimario, Top: 1,
			}),
			text.New(orden.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Pagada: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGris,
			}),
		),
	)
}

// compradorRow: nombre, email y dirección de envío.
func compradorRow(orden *entity.Orden, usuario *entity.Usuario) core.Row {
	direccion := fmt.Sprintf("%s, %s, %s", orden.Envio.Address, orden.Envio.City, orden.Envio.Country)
	return row.New(14).Add(
		col.New(12).Add(
			text.New("COMPRADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1,
			}),
			text.New(usuario.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Envío: %s   |   Tel: %s",
				usuario.Email, direccion, orden.Envio.Phone,
			), props.Text{Size: 8, Top: 12, Color: colorGris}),
		),
	)
}

func cabeceraTablaRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// lineasRows: una fila por línea de la orden. Si el producto ya no existe,
// la fila muestra su ID como descripción.
func lineasRows(orden *entity.Orden, productos map[string]*entity.Producto) []core.Row {
	result := make([]core.Row, 0, len(orden.Items))
	for _, item := range orden.Items {
		nombre := item.ProductoID
		if p, ok := productos[item.ProductoID]; ok && p != nil {
			nombre = p.Nombre
		}
		subtotal := item.Precio.Mul(decimalDesdeInt(item.Cantidad))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatearMiles(item.Precio.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatearMiles(subtotal.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total pagado, alineado a la derecha.
func totalRow(orden *entity.Orden) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL PAGADO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("$"+formatearMiles(orden.Total.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Top: 2, Right: 1,
		})),
	)
}

// pagoRows: referencia del pago PayPal, si la orden la tiene registrada.
func pagoRows(orden *entity.Orden) []core.Row {
	if orden.Pago == nil {
		return nil
	}
	return []core.Row{
		row.New(3),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Pago procesado por PayPal. Referencia: %s / %s",
				orden.Pago.PayPalOrderID, orden.Pago.PayPalPaymentID,
			), props.Text{Size: 7, Color: colorGris, Top: 1}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Conserve este recibo como soporte de su compra.", props.Text{
				Size: 6.5, Color: colorGris, Top: 1,
			}),
		)),
	}
}
