package ofertas_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccltech/tienda-api/internal/application/ofertas"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
	"github.com/ccltech/tienda-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de ProductoRepository: solo implementa lo que usa el barrido
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func newFakeProductoRepo(ps ...*entity.Producto) *fakeProductoRepo {
	repo := &fakeProductoRepo{productos: make(map[string]*entity.Producto)}
	for _, p := range ps {
		repo.productos[p.ID] = p
	}
	return repo
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error {
	f.productos[p.ID] = p
	return nil
}

func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return f.productos[id], nil
}

func (f *fakeProductoRepo) GetVarios(ids []string) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, id := range ids {
		if p, ok := f.productos[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductoRepo) Update(p *entity.Producto) error {
	f.productos[p.ID] = p
	return nil
}

func (f *fakeProductoRepo) Listar(context.Context, repository.FiltroProductos, string, int, int) ([]*entity.Producto, error) {
	return nil, nil
}

func (f *fakeProductoRepo) Contar(context.Context, repository.FiltroProductos) (int, error) {
	return 0, nil
}

func (f *fakeProductoRepo) ValoresDistintos(context.Context, string, string) ([]string, error) {
	return nil, nil
}

func (f *fakeProductoRepo) RangoPrecios(context.Context, string) (decimal.Decimal, decimal.Decimal, bool, error) {
	return decimal.Zero, decimal.Zero, false, nil
}

func (f *fakeProductoRepo) PrimerasLetras(context.Context, string, string) ([]string, error) {
	return nil, nil
}

func (f *fakeProductoRepo) ListarPorLetra(context.Context, string, string, string) ([]*entity.Producto, error) {
	return nil, nil
}

func (f *fakeProductoRepo) ListarElegiblesOferta(_ context.Context, stockMin int, antesDe time.Time) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range f.productos {
		if p.State == entity.EstadoActivo && !p.EnOferta && p.Stock >= stockMin && p.CreatedAt.Before(antesDe) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductoRepo) ExpirarOfertas(_ context.Context, ahora time.Time) (int, error) {
	n := 0
	for _, p := range f.productos {
		if p.EnOferta && p.OfertaFin != nil && p.OfertaFin.Before(ahora) {
			p.EnOferta = false
			p.OfertaInicio = nil
			p.OfertaFin = nil
			p.RecalcularPrecioOferta()
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del barrido de ofertas
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func productoViejo(id string, stock int, precio int64) *entity.Producto {
	p := &entity.Producto{
		ID:        id,
		Nombre:    "Producto " + id,
		Precio:    decimal.NewFromInt(precio),
		Stock:     stock,
		State:     entity.EstadoActivo,
		CreatedAt: time.Now().AddDate(0, 0, -60),
	}
	p.RecalcularPrecioOferta()
	return p
}

// El producto elegible queda en oferta con el precio descontado:
// 100000 con 15% debe quedar en 85000.
func TestSweep_MarcaElegiblesYCalculaPrecio(t *testing.T) {
	repo := newFakeProductoRepo(productoViejo("p1", 50, 100_000))
	sweep := ofertas.NewSweep(repo, ofertas.Params{
		StockMinimo:    10,
		AntiguedadDias: 30,
		Descuento:      decimal.NewFromInt(15),
		DuracionDias:   7,
	}, testLogger())

	reporte, err := sweep.Ejecutar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, reporte.Marcadas)

	p, _ := repo.GetByID("p1")
	assert.True(t, p.EnOferta)
	assert.True(t, decimal.NewFromInt(85_000).Equal(p.PrecioOferta),
		"precio de oferta esperado 85000, fue %s", p.PrecioOferta)
	require.NotNil(t, p.OfertaFin)
}

// Correr el barrido dos veces seguidas no vuelve a marcar nada: los productos
// ya en oferta no son elegibles.
func TestSweep_EsIdempotente(t *testing.T) {
	repo := newFakeProductoRepo(
		productoViejo("p1", 50, 100_000),
		productoViejo("p2", 20, 200_000),
	)
	sweep := ofertas.NewSweep(repo, ofertas.Params{
		StockMinimo:    10,
		AntiguedadDias: 30,
		Descuento:      decimal.NewFromInt(10),
		DuracionDias:   7,
	}, testLogger())

	primero, err := sweep.Ejecutar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, primero.Marcadas)

	segundo, err := sweep.Ejecutar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, segundo.Marcadas, "la segunda pasada no debe marcar nada")
}

// Los productos con poco stock o demasiado recientes no se tocan.
func TestSweep_RespetaUmbrales(t *testing.T) {
	pocoStock := productoViejo("p1", 5, 100_000)
	reciente := productoViejo("p2", 50, 100_000)
	reciente.CreatedAt = time.Now().AddDate(0, 0, -3)
	repo := newFakeProductoRepo(pocoStock, reciente)

	sweep := ofertas.NewSweep(repo, ofertas.Params{
		StockMinimo:    10,
		AntiguedadDias: 30,
		Descuento:      decimal.NewFromInt(10),
		DuracionDias:   7,
	}, testLogger())

	reporte, err := sweep.Ejecutar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, reporte.Marcadas)
	assert.False(t, pocoStock.EnOferta)
	assert.False(t, reciente.EnOferta)
}

// Las ofertas vencidas se apagan y el precio de oferta vuelve al precio base.
func TestSweep_ExpiraOfertasVencidas(t *testing.T) {
	vencido := productoViejo("p1", 50, 100_000)
	vencido.EnOferta = true
	vencido.Descuento = decimal.NewFromInt(20)
	inicio := time.Now().AddDate(0, 0, -10)
	fin := time.Now().AddDate(0, 0, -2)
	vencido.OfertaInicio = &inicio
	vencido.OfertaFin = &fin
	vencido.RecalcularPrecioOferta()
	repo := newFakeProductoRepo(vencido)

	sweep := ofertas.NewSweep(repo, ofertas.Params{
		StockMinimo:    1000, // nada vuelve a ser elegible en este test
		AntiguedadDias: 30,
		Descuento:      decimal.NewFromInt(10),
		DuracionDias:   7,
	}, testLogger())

	reporte, err := sweep.Ejecutar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, reporte.Expiradas)

	p, _ := repo.GetByID("p1")
	assert.False(t, p.EnOferta)
	assert.True(t, p.Precio.Equal(p.PrecioOferta), "sin oferta el precio de oferta iguala al base")
}
