package catalogo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccltech/tienda-api/internal/domain/catalogo"
)

func TestConstruirFiltro_ClaveDesconocidaEscalar(t *testing.T) {
	// ?ram=16GB con "storage" ausente: una sola condición de igualdad sobre
	// especificaciones.ram y ninguna restricción sobre storage.
	params := map[string][]string{
		"ram":      {"16GB"},
		"category": {"abc"}, // conocida: no genera condición de atributo
		"page":     {"2"},
	}
	cond := catalogo.ConstruirFiltro(params, catalogo.ParamsConocidos)

	require.Len(t, cond, 1)
	assert.Equal(t, "ram", cond[0].Campo)
	assert.Equal(t, []string{"16GB"}, cond[0].Valores)
}

func TestConstruirFiltro_ClaveDesconocidaLista(t *testing.T) {
	params := map[string][]string{
		"tipoPanel": {"IPS", "OLED"},
	}
	cond := catalogo.ConstruirFiltro(params, catalogo.ParamsConocidos)

	require.Len(t, cond, 1)
	assert.Equal(t, "tipoPanel", cond[0].Campo)
	assert.Equal(t, []string{"IPS", "OLED"}, cond[0].Valores,
		"valores múltiples se traducen a pertenencia al conjunto")
}

func TestConstruirFiltro_ValoresVaciosSeOmiten(t *testing.T) {
	params := map[string][]string{
		"ram":            {""},
		"almacenamiento": {"", "512GB"},
	}
	cond := catalogo.ConstruirFiltro(params, catalogo.ParamsConocidos)

	require.Len(t, cond, 1, "un valor vacío no debe generar predicado")
	assert.Equal(t, "almacenamiento", cond[0].Campo)
	assert.Equal(t, []string{"512GB"}, cond[0].Valores)
}

func TestConstruirFiltro_TodosLosConocidosSeOmiten(t *testing.T) {
	params := map[string][]string{}
	for _, k := range catalogo.ParamsConocidos {
		params[k] = []string{"x"}
	}
	assert.Empty(t, catalogo.ConstruirFiltro(params, catalogo.ParamsConocidos))
}

func TestConstruirFiltro_SalidaDeterminista(t *testing.T) {
	// El orden de iteración de un map es aleatorio; las condiciones deben salir
	// ordenadas por campo para que la consulta generada sea estable.
	params := map[string][]string{
		"zeta": {"1"}, "alfa": {"2"}, "medio": {"3"},
	}
	cond := catalogo.ConstruirFiltro(params, catalogo.ParamsConocidos)
	require.Len(t, cond, 3)
	assert.Equal(t, "alfa", cond[0].Campo)
	assert.Equal(t, "medio", cond[1].Campo)
	assert.Equal(t, "zeta", cond[2].Campo)
}

func TestConstruirFiltro_NoConsultaElRegistro(t *testing.T) {
	// Filtrar por una clave que ningún esquema declara es válido: el builder
	// construye predicados para lo que el cliente envíe.
	params := map[string][]string{"claveInventada": {"valor"}}
	cond := catalogo.ConstruirFiltro(params, catalogo.ParamsConocidos)
	require.Len(t, cond, 1)
	assert.Equal(t, "claveInventada", cond[0].Campo)
}

func TestResolver_CodigoNoRegistrado(t *testing.T) {
	assert.Nil(t, catalogo.Resolver("electrodomesticos"),
		"códigos fuera del conjunto fijo devuelven nil; el llamador cae al esquema dinámico")
	assert.False(t, catalogo.EsCodigoConocido("electrodomesticos"))
	assert.True(t, catalogo.EsCodigoConocido("portatiles"))
}
