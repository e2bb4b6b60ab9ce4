package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccltech/tienda-api/internal/application/usecase"
	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/pkg/logger"
)

func facetasLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func nuevaFacetasUC(productoRepo *fakeProductoRepo, categorias ...*entity.Categoria) *usecase.FacetasUseCase {
	return usecase.NewFacetasUseCase(newFakeCategoriaRepo(categorias...), productoRepo, nil, facetasLogger())
}

// ──────────────────────────────────────────────────────────────────────────────
// Facetas
// ──────────────────────────────────────────────────────────────────────────────

// Cada campo declarado en el esquema aparece como clave, aun sin productos que
// lo tengan (slice vacío, nunca clave omitida); label y value son idénticos.
func TestFiltrosDisponibles_TodasLasClavesPresentes(t *testing.T) {
	repo := newFakeProductoRepo()
	repo.distintos["ram"] = []string{"16GB", "8GB"}
	uc := nuevaFacetasUC(repo, categoriaPortatiles())

	resp, err := uc.FiltrosDisponibles(context.Background(), catID)
	require.NoError(t, err)
	assert.Equal(t, "Portátiles", resp.Categoria)

	// el esquema estático de portatiles declara ram entre sus campos
	ram, ok := resp.Filters["ram"]
	require.True(t, ok)
	require.Len(t, ram, 2)
	assert.Equal(t, "16GB", ram[0].Label)
	assert.Equal(t, "16GB", ram[0].Value)

	// un campo sin productos queda como slice vacío, la clave no se omite
	for campo, opciones := range resp.Filters {
		if campo == "ram" {
			continue
		}
		assert.NotNil(t, opciones, "campo %s debe estar presente aunque vacío", campo)
		assert.Empty(t, opciones)
	}
}

// Una categoría sin esquema estático ni dinámico produce un mapa vacío, no un error.
func TestFiltrosDisponibles_SinEsquemaMapaVacio(t *testing.T) {
	sinEsquema := &entity.Categoria{
		ID:     "33333333-3333-3333-3333-333333333333",
		Codigo: "libros",
		Name:   "Libros",
		State:  entity.EstadoActivo,
	}
	uc := nuevaFacetasUC(newFakeProductoRepo(), sinEsquema)

	resp, err := uc.FiltrosDisponibles(context.Background(), sinEsquema.ID)
	require.NoError(t, err)
	assert.Empty(t, resp.Filters)
}

// Una categoría fuera del registro pero con esquema dinámico almacenado usa
// ese esquema para decidir qué campos facetar.
func TestFiltrosDisponibles_EsquemaDinamico(t *testing.T) {
	dinamica := &entity.Categoria{
		ID:      "44444444-4444-4444-4444-444444444444",
		Codigo:  "camaras",
		Name:    "Cámaras",
		Esquema: []byte(`{"sensor":{"type":"string","required":true}}`),
		State:   entity.EstadoActivo,
	}
	repo := newFakeProductoRepo()
	repo.distintos["sensor"] = []string{"APS-C", "Full Frame"}
	uc := nuevaFacetasUC(repo, dinamica)

	resp, err := uc.FiltrosDisponibles(context.Background(), dinamica.ID)
	require.NoError(t, err)
	require.Contains(t, resp.Filters, "sensor")
	assert.Len(t, resp.Filters["sensor"], 2)
}

// Categoría inexistente responde not found.
func TestFiltrosDisponibles_CategoriaInexistente(t *testing.T) {
	uc := nuevaFacetasUC(newFakeProductoRepo())

	_, err := uc.FiltrosDisponibles(context.Background(), catID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rango de precios
// ──────────────────────────────────────────────────────────────────────────────

// El mínimo se redondea hacia abajo y el máximo hacia arriba al múltiplo de
// 10.000 más cercano; ambos límites encierran todos los precios activos.
func TestRangoPrecios_RedondeaADiezMil(t *testing.T) {
	repo := newFakeProductoRepo()
	repo.rangoMin = decimal.NewFromInt(123_456)
	repo.rangoMax = decimal.NewFromInt(987_654)
	repo.rangoOK = true
	uc := nuevaFacetasUC(repo, categoriaPortatiles())

	resp, err := uc.RangoPrecios(context.Background(), catID)
	require.NoError(t, err)
	assert.Equal(t, int64(120_000), resp.Min)
	assert.Equal(t, int64(990_000), resp.Max)
	assert.Zero(t, resp.Min%10_000)
	assert.Zero(t, resp.Max%10_000)
	assert.LessOrEqual(t, resp.Min, int64(123_456))
	assert.GreaterOrEqual(t, resp.Max, int64(987_654))
}

// Un precio ya múltiplo de 10.000 no se mueve.
func TestRangoPrecios_MultiploExactoNoCambia(t *testing.T) {
	repo := newFakeProductoRepo()
	repo.rangoMin = decimal.NewFromInt(120_000)
	repo.rangoMax = decimal.NewFromInt(980_000)
	repo.rangoOK = true
	uc := nuevaFacetasUC(repo, categoriaPortatiles())

	resp, err := uc.RangoPrecios(context.Background(), catID)
	require.NoError(t, err)
	assert.Equal(t, int64(120_000), resp.Min)
	assert.Equal(t, int64(980_000), resp.Max)
}

// Sin productos activos el rango cae al valor por defecto {0, 1000000}.
func TestRangoPrecios_SinProductosUsaFallback(t *testing.T) {
	uc := nuevaFacetasUC(newFakeProductoRepo(), categoriaPortatiles())

	resp, err := uc.RangoPrecios(context.Background(), catID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Min)
	assert.Equal(t, int64(1_000_000), resp.Max)
}
