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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const columnasProducto = `id, nombre, descripcion, precio, marca_id, imagenes, categoria_id, subcategoria_id,
	especificaciones, stock, ventas, state, en_oferta, descuento, precio_oferta, oferta_inicio, oferta_fin,
	promedio_calificacion, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL
// (usable con pool o tx). Las especificaciones viven en una columna JSONB.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + columnasProducto + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Precio, p.MarcaID, p.Imagenes, p.CategoriaID, p.SubcategoriaID,
		p.Especificaciones, p.Stock, p.Ventas, p.State, p.EnOferta, p.Descuento, p.PrecioOferta,
		p.OfertaInicio, p.OfertaFin, p.PromedioCalificacion, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE id = $1`
	p, err := escanearProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetVarios obtiene varios productos por ID; los inexistentes se omiten.
func (r *ProductoRepo) GetVarios(ids []string) ([]*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get varios productos: %w", err)
	}
	defer rows.Close()
	return escanearProductos(rows)
}

// Update actualiza todos los campos mutables del producto.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, precio = $4, marca_id = $5, imagenes = $6,
			especificaciones = $7, stock = $8, ventas = $9, state = $10, en_oferta = $11,
			descuento = $12, precio_oferta = $13, oferta_inicio = $14, oferta_fin = $15,
			promedio_calificacion = $16, updated_at = $17
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Precio, p.MarcaID, p.Imagenes,
		p.Especificaciones, p.Stock, p.Ventas, p.State, p.EnOferta,
		p.Descuento, p.PrecioOferta, p.OfertaInicio, p.OfertaFin,
		p.PromedioCalificacion, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Listar ejecuta el listado filtrado con orden y paginación.
func (r *ProductoRepo) Listar(ctx context.Context, f repository.FiltroProductos, orden string, limit, offset int) ([]*entity.Producto, error) {
	where, args := construirWhere(f)
	query := fmt.Sprintf(`SELECT %s FROM productos WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		columnasProducto, where, ordenSQL(orden), len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()
	return escanearProductos(rows)
}

// Contar cuenta los productos que matchean el mismo filtro del listado. El
// total sale de esta consulta aparte, nunca del cursor del listado.
func (r *ProductoRepo) Contar(ctx context.Context, f repository.FiltroProductos) (int, error) {
	where, args := construirWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM productos WHERE `+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("contar productos: %w", err)
	}
	return total, nil
}

// ValoresDistintos agrega los valores presentes de un atributo entre los
// productos activos de la categoría. Los atributos array se despliegan
// elemento a elemento; el resultado va ordenado ascendente.
func (r *ProductoRepo) ValoresDistintos(ctx context.Context, categoriaID, campo string) ([]string, error) {
	query := `
		SELECT DISTINCT valor FROM (
			SELECT especificaciones->>$2 AS valor
			FROM productos
			WHERE categoria_id = $1 AND state = '1'
				AND jsonb_typeof(especificaciones->$2) <> 'array'
			UNION ALL
			SELECT jsonb_array_elements_text(especificaciones->$2)
			FROM productos
			WHERE categoria_id = $1 AND state = '1'
				AND jsonb_typeof(especificaciones->$2) = 'array'
		) valores
		WHERE valor IS NOT NULL AND valor <> ''
		ORDER BY valor ASC`
	rows, err := r.q.Query(ctx, query, categoriaID, campo)
	if err != nil {
		return nil, fmt.Errorf("valores distintos: %w", err)
	}
	defer rows.Close()

	var valores []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan valor: %w", err)
		}
		valores = append(valores, v)
	}
	return valores, rows.Err()
}

// RangoPrecios devuelve min/max de precio entre los productos activos de la
// categoría. ok=false cuando no hay ninguno.
func (r *ProductoRepo) RangoPrecios(ctx context.Context, categoriaID string) (min, max decimal.Decimal, ok bool, err error) {
	query := `
		SELECT COALESCE(MIN(precio), 0), COALESCE(MAX(precio), 0), COUNT(*)
		FROM productos
		WHERE categoria_id = $1 AND state = '1'`
	var total int
	if err = r.q.QueryRow(ctx, query, categoriaID).Scan(&min, &max, &total); err != nil {
		return decimal.Zero, decimal.Zero, false, fmt.Errorf("rango precios: %w", err)
	}
	return min, max, total > 0, nil
}

// PrimerasLetras devuelve las primeras letras (en mayúscula) observadas para
// un atributo entre los productos activos de la categoría.
func (r *ProductoRepo) PrimerasLetras(ctx context.Context, categoriaID, campo string) ([]string, error) {
	query := `
		SELECT DISTINCT UPPER(LEFT(especificaciones->>$2, 1)) AS letra
		FROM productos
		WHERE categoria_id = $1 AND state = '1' AND COALESCE(especificaciones->>$2, '') <> ''
		ORDER BY letra ASC`
	rows, err := r.q.Query(ctx, query, categoriaID, campo)
	if err != nil {
		return nil, fmt.Errorf("primeras letras: %w", err)
	}
	defer rows.Close()

	var letras []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("scan letra: %w", err)
		}
		letras = append(letras, l)
	}
	return letras, rows.Err()
}

// ListarPorLetra filtra los productos activos cuyo atributo empieza por la letra.
func (r *ProductoRepo) ListarPorLetra(ctx context.Context, categoriaID, campo, letra string) ([]*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + `
		FROM productos
		WHERE categoria_id = $1 AND state = '1' AND UPPER(LEFT(especificaciones->>$2, 1)) = $3
		ORDER BY nombre ASC`
	rows, err := r.q.Query(ctx, query, categoriaID, campo, letra)
	if err != nil {
		return nil, fmt.Errorf("listar por letra: %w", err)
	}
	defer rows.Close()
	return escanearProductos(rows)
}

// ListarElegiblesOferta devuelve productos activos sin oferta vigente, con
// stock suficiente y creados antes del corte.
func (r *ProductoRepo) ListarElegiblesOferta(ctx context.Context, stockMin int, antesDe time.Time) ([]*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + `
		FROM productos
		WHERE state = '1' AND en_oferta = FALSE AND stock >= $1 AND created_at < $2`
	rows, err := r.q.Query(ctx, query, stockMin, antesDe)
	if err != nil {
		return nil, fmt.Errorf("listar elegibles oferta: %w", err)
	}
	defer rows.Close()
	return escanearProductos(rows)
}

// ExpirarOfertas apaga las ofertas cuya fecha fin ya pasó y devuelve cuántas.
func (r *ProductoRepo) ExpirarOfertas(ctx context.Context, ahora time.Time) (int, error) {
	query := `
		UPDATE productos
		SET en_oferta = FALSE, precio_oferta = precio, oferta_inicio = NULL, oferta_fin = NULL, updated_at = $1
		WHERE en_oferta = TRUE AND oferta_fin IS NOT NULL AND oferta_fin < $1`
	tag, err := r.q.Exec(ctx, query, ahora)
	if err != nil {
		return 0, fmt.Errorf("expirar ofertas: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func escanearProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.MarcaID, &p.Imagenes, &p.CategoriaID, &p.SubcategoriaID,
		&p.Especificaciones, &p.Stock, &p.Ventas, &p.State, &p.EnOferta, &p.Descuento, &p.PrecioOferta,
		&p.OfertaInicio, &p.OfertaFin, &p.PromedioCalificacion, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func escanearProductos(rows pgx.Rows) ([]*entity.Producto, error) {
	var productos []*entity.Producto
	for rows.Next() {
		p, err := escanearProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		productos = append(productos, p)
	}
	return productos, rows.Err()
}
