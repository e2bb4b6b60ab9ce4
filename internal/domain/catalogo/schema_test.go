package catalogo_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccltech/tienda-api/internal/domain/catalogo"
)

// ──────────────────────────────────────────────────────────────────────────────
// DescribirCampos: derivación de descriptores de UI desde un esquema
// ──────────────────────────────────────────────────────────────────────────────

func TestDescribirCampos_UnDescriptorPorCampo(t *testing.T) {
	// Todas las categorías registradas deben producir exactamente un descriptor
	// por campo declarado, con un uiType del conjunto soportado.
	validos := map[string]bool{
		catalogo.UITexto: true, catalogo.UINumero: true, catalogo.UIBooleano: true,
		catalogo.UISelect: true, catalogo.UIMultiselect: true,
	}
	for _, codigo := range catalogo.CodigosConocidos {
		schema := catalogo.Resolver(codigo)
		require.NotNil(t, schema, "el código %q debe tener esquema estático", codigo)

		descriptores := catalogo.DescribirCampos(schema)
		assert.Len(t, descriptores, len(schema.Campos),
			"categoría %q: un descriptor por campo declarado", codigo)
		for _, d := range descriptores {
			assert.True(t, validos[d.UIType],
				"categoría %q campo %q: uiType %q fuera del conjunto soportado", codigo, d.Key, d.UIType)
		}
	}
}

func TestDescribirCampos_LabelHumanizado(t *testing.T) {
	schema := &catalogo.Schema{Campos: []catalogo.Campo{
		{Nombre: "sistemaOperativo", Tipo: catalogo.TipoString, Requerido: true},
		{Nombre: "ram", Tipo: catalogo.TipoString},
		{Nombre: "camaraPrincipal", Tipo: catalogo.TipoString},
	}}
	desc := catalogo.DescribirCampos(schema)
	require.Len(t, desc, 3)

	assert.Equal(t, "Sistema Operativo", desc[0].Label)
	assert.True(t, desc[0].Requerido)
	assert.Equal(t, "Ram", desc[1].Label)
	assert.Equal(t, "Camara Principal", desc[2].Label)
}

func TestDescribirCampos_SelectConOpciones(t *testing.T) {
	schema := catalogo.Resolver("celulares")
	require.NotNil(t, schema)

	desc := catalogo.DescribirCampos(schema)
	porClave := map[string]catalogo.Descriptor{}
	for _, d := range desc {
		porClave[d.Key] = d
	}

	// sistemaOperativo declara conjunto cerrado -> select con pares label/value
	so := porClave["sistemaOperativo"]
	assert.Equal(t, catalogo.UISelect, so.UIType)
	require.Len(t, so.Opciones, 3)
	assert.Equal(t, catalogo.Opcion{Label: "Android", Value: "Android"}, so.Opciones[0])

	// modelo no declara opciones -> text
	assert.Equal(t, catalogo.UITexto, porClave["modelo"].UIType)
}

func TestDescribirCampos_ArrayDeEnumEsMultiselect(t *testing.T) {
	// Un array cuyos elementos son una enumeración cerrada debe salir como
	// multiselect con las opciones del elemento, no como array genérico.
	schema := catalogo.Resolver("pantallas")
	require.NotNil(t, schema)

	var conectores *catalogo.Descriptor
	for _, d := range catalogo.DescribirCampos(schema) {
		if d.Key == "conectores" {
			c := d
			conectores = &c
		}
	}
	require.NotNil(t, conectores)
	assert.Equal(t, catalogo.UIMultiselect, conectores.UIType)
	require.Len(t, conectores.Opciones, 4)
	assert.Equal(t, "HDMI", conectores.Opciones[0].Value)
}

func TestDescribirCampos_ReglasNumericasYPatron(t *testing.T) {
	schema := catalogo.Resolver("mouse")
	require.NotNil(t, schema)

	var dpi *catalogo.Descriptor
	for _, d := range catalogo.DescribirCampos(schema) {
		if d.Key == "dpi" {
			c := d
			dpi = &c
		}
	}
	require.NotNil(t, dpi)
	assert.Equal(t, catalogo.UINumero, dpi.UIType)
	require.NotNil(t, dpi.Reglas)
	assert.Equal(t, 800.0, *dpi.Reglas.Min)
	assert.Equal(t, 16000.0, *dpi.Reglas.Max)

	// El patrón de resolución de pantallas viaja en forma textual.
	pantallas := catalogo.Resolver("pantallas")
	for _, d := range catalogo.DescribirCampos(pantallas) {
		if d.Key == "resolucion" {
			require.NotNil(t, d.Reglas)
			assert.Equal(t, `^\d+x\d+$`, d.Reglas.Patron)
		}
	}
}

func TestDescribirCampos_SchemaNilDevuelveVacio(t *testing.T) {
	assert.Empty(t, catalogo.DescribirCampos(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// SchemaDesdeJSON: esquemas dinámicos autorados por administradores
// ──────────────────────────────────────────────────────────────────────────────

func TestSchemaDesdeJSON_CamposOrdenados(t *testing.T) {
	raw := json.RawMessage(`{
		"voltaje": {"type": "number", "required": true, "min": 100, "max": 240},
		"color": {"type": "string", "options": ["Negro", "Blanco"]},
		"puertos": {"type": "array", "options": ["USB", "HDMI"]}
	}`)
	schema, err := catalogo.SchemaDesdeJSON(raw)
	require.NoError(t, err)
	require.NotNil(t, schema)
	require.Len(t, schema.Campos, 3)

	// JSON no conserva orden: las claves salen alfabéticas.
	assert.Equal(t, []string{"color", "puertos", "voltaje"}, schema.Claves())

	desc := catalogo.DescribirCampos(schema)
	assert.Equal(t, catalogo.UISelect, desc[0].UIType)
	assert.Equal(t, catalogo.UIMultiselect, desc[1].UIType)
	assert.Equal(t, catalogo.UINumero, desc[2].UIType)
	require.Len(t, desc[1].Opciones, 2, "las opciones de un array describen sus elementos")
}

func TestSchemaDesdeJSON_NuloYVacio(t *testing.T) {
	s, err := catalogo.SchemaDesdeJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = catalogo.SchemaDesdeJSON(json.RawMessage("null"))
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSchemaDesdeJSON_TipoInvalido(t *testing.T) {
	_, err := catalogo.SchemaDesdeJSON(json.RawMessage(`{"x": {"type": "datetime"}}`))
	assert.Error(t, err, "un tipo fuera de string/number/boolean/array debe rechazarse")
}
