package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccltech/tienda-api/internal/domain/catalogo"
	"github.com/ccltech/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────
// construirWhere
// ──────────────────────────────────────────────

func TestConstruirWhere_SinFiltrosSoloEstado(t *testing.T) {
	where, args := construirWhere(repository.FiltroProductos{})

	assert.Equal(t, "state = '1'", where)
	assert.Empty(t, args)
}

func TestConstruirWhere_FiltrosBase(t *testing.T) {
	min := decimal.NewFromInt(100_000)
	max := decimal.NewFromInt(500_000)
	f := repository.FiltroProductos{
		CategoriaID: "11111111-1111-1111-1111-111111111111",
		MarcaID:     "22222222-2222-2222-2222-222222222222",
		PrecioMin:   &min,
		PrecioMax:   &max,
	}

	where, args := construirWhere(f)

	assert.Contains(t, where, "state = '1'")
	assert.Contains(t, where, "categoria_id = $1")
	assert.Contains(t, where, "marca_id = $2")
	assert.Contains(t, where, "precio >= $3")
	assert.Contains(t, where, "precio <= $4")
	require.Len(t, args, 4)
	assert.Equal(t, f.CategoriaID, args[0])
	assert.Equal(t, min, args[2])
}

func TestConstruirWhere_BusquedaUnSoloArgumento(t *testing.T) {
	f := repository.FiltroProductos{Busqueda: "lenovo"}

	where, args := construirWhere(f)

	// Las cuatro ramas del ILIKE comparten el mismo placeholder.
	assert.Contains(t, where, "nombre ILIKE $1")
	assert.Contains(t, where, "descripcion ILIKE $1")
	assert.Contains(t, where, "especificaciones->>'modelo' ILIKE $1")
	require.Len(t, args, 1)
	assert.Equal(t, "%lenovo%", args[0])
}

func TestConstruirWhere_AtributoEscalar(t *testing.T) {
	f := repository.FiltroProductos{
		Atributos: []catalogo.Condicion{{Campo: "ram", Valores: []string{"16GB"}}},
	}

	where, args := construirWhere(f)

	assert.Contains(t, where, "especificaciones->>$1 = $2")
	assert.Contains(t, where, "especificaciones->$1 @> to_jsonb($2::text)")
	require.Len(t, args, 2)
	assert.Equal(t, "ram", args[0])
	assert.Equal(t, "16GB", args[1])
}

func TestConstruirWhere_AtributoConVariosValores(t *testing.T) {
	f := repository.FiltroProductos{
		Atributos: []catalogo.Condicion{{Campo: "color", Valores: []string{"negro", "gris"}}},
	}

	where, args := construirWhere(f)

	assert.Contains(t, where, "especificaciones->>$1 = ANY($2)")
	assert.Contains(t, where, "especificaciones->$1 ?| $2")
	require.Len(t, args, 2)
	assert.Equal(t, "color", args[0])
	assert.Equal(t, []string{"negro", "gris"}, args[1])
}

func TestConstruirWhere_AtributoSinValoresSeOmite(t *testing.T) {
	f := repository.FiltroProductos{
		Atributos: []catalogo.Condicion{{Campo: "ram"}},
	}

	where, args := construirWhere(f)

	assert.Equal(t, "state = '1'", where)
	assert.Empty(t, args)
}

func TestConstruirWhere_NumeracionContinuaEntreFiltros(t *testing.T) {
	f := repository.FiltroProductos{
		CategoriaID: "11111111-1111-1111-1111-111111111111",
		Atributos: []catalogo.Condicion{
			{Campo: "marca", Valores: []string{"Asus"}},
			{Campo: "ram", Valores: []string{"8GB", "16GB"}},
		},
	}

	where, args := construirWhere(f)

	assert.Contains(t, where, "categoria_id = $1")
	assert.Contains(t, where, "especificaciones->>$2 = $3")
	assert.Contains(t, where, "especificaciones->>$4 = ANY($5)")
	assert.Len(t, args, 5)
}

// ──────────────────────────────────────────────
// ordenSQL
// ──────────────────────────────────────────────

func TestOrdenSQL_Mapeo(t *testing.T) {
	casos := []struct {
		orden    string
		esperado string
	}{
		{repository.OrdenPrecioAsc, "precio ASC"},
		{repository.OrdenPrecioDesc, "precio DESC"},
		{repository.OrdenPopulares, "ventas DESC, created_at DESC"},
		{repository.OrdenNombreAZ, "nombre ASC"},
		{repository.OrdenNombreZA, "nombre DESC"},
		{repository.OrdenNuevos, "created_at DESC"},
		{repository.OrdenRelevancia, "created_at DESC"},
		{"cualquier_cosa", "created_at DESC"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, ordenSQL(c.orden), "orden %q", c.orden)
	}
}
