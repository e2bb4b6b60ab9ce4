package catalogo

// Registro estático de esquemas por código de categoría. Se construye una vez
// al arrancar el proceso y no cambia en runtime; las categorías que no figuran
// aquí dependen de su esquema dinámico almacenado.

// Códigos de categoría con esquema estático registrado.
var CodigosConocidos = []string{
	"portatiles", "pcEscritorio", "celulares", "smartwatch",
	"pantallas", "audifonos", "tablets", "mouse", "teclado", "componentes",
}

var registro = map[string]*Schema{
	"portatiles": {Campos: []Campo{
		{Nombre: "referencia", Tipo: TipoString, Requerido: true},
		{Nombre: "sistemaOperativo", Tipo: TipoString, Requerido: true},
		{Nombre: "almacenamiento", Tipo: TipoString, Requerido: true},
		{Nombre: "marcaProcesador", Tipo: TipoString, Requerido: true},
		{Nombre: "tipoAlmacenamiento", Tipo: TipoString},
		{Nombre: "ram", Tipo: TipoString, Requerido: true},
		{Nombre: "modeloProcesador", Tipo: TipoString},
		{Nombre: "marcaGrafica", Tipo: TipoString},
		{Nombre: "bateria", Tipo: TipoString},
	}},

	"pcEscritorio": {Campos: []Campo{
		{Nombre: "referencia", Tipo: TipoString, Requerido: true},
		{Nombre: "sistemaOperativo", Tipo: TipoString, Requerido: true},
		{Nombre: "almacenamiento", Tipo: TipoString, Requerido: true},
		{Nombre: "ram", Tipo: TipoString, Requerido: true},
		{Nombre: "tipoGabinete", Tipo: TipoString, Requerido: true},
		{Nombre: "fuentePoder", Tipo: TipoString},
		{Nombre: "refrigeracion", Tipo: TipoString},
	}},

	"celulares": {Campos: []Campo{
		{Nombre: "modelo", Tipo: TipoString, Requerido: true},
		{Nombre: "marca", Tipo: TipoString, Requerido: true},
		{Nombre: "sistemaOperativo", Tipo: TipoString, Requerido: true, Opciones: []string{"Android", "iOS", "harmonyOS"}},
		{Nombre: "almacenamiento", Tipo: TipoString, Requerido: true},
		{Nombre: "ram", Tipo: TipoString, Requerido: true},
		{Nombre: "camaraPrincipal", Tipo: TipoString},
		{Nombre: "bateria", Tipo: TipoString},
	}},

	"smartwatch": {Campos: []Campo{
		{Nombre: "modelo", Tipo: TipoString, Requerido: true},
		{Nombre: "compatibilidad", Tipo: TipoString, Requerido: true, Opciones: []string{"iOS", "Android", "Ambos"}},
		{Nombre: "duracionBateria", Tipo: TipoString, Requerido: true},
		{Nombre: "resistenciaAgua", Tipo: TipoString, Opciones: []string{"IP68", "IP67", "No"}},
		{Nombre: "pantalla", Tipo: TipoString},
		{Nombre: "conectividad", Tipo: TipoString, Opciones: []string{"Bluetooth", "WiFi", "Ambos"}},
	}},

	"pantallas": {Campos: []Campo{
		{Nombre: "pulgadas", Tipo: TipoString, Requerido: true, Opciones: []string{"20", "21", "22", "23", "24", "25"}},
		{Nombre: "resolucion", Tipo: TipoString, Requerido: true, Patron: `^\d+x\d+$`},
		{Nombre: "tasaRefresco", Tipo: TipoString, Requerido: true},
		{Nombre: "tipoPanel", Tipo: TipoString, Opciones: []string{"IPS", "VA", "OLED", "TN"}},
		{Nombre: "conectores", Tipo: TipoArray, Elementos: &Campo{Tipo: TipoString, Opciones: []string{"HDMI", "DP", "USB-C", "VGA"}}},
	}},

	"audifonos": {Campos: []Campo{
		{Nombre: "modelo", Tipo: TipoString, Requerido: true},
		{Nombre: "tipo", Tipo: TipoString, Requerido: true, Opciones: []string{"In-ear", "On-ear", "Over-ear"}},
		{Nombre: "conexion", Tipo: TipoString, Requerido: true, Opciones: []string{"Alámbrico", "Bluetooth", "Híbrido"}},
		{Nombre: "cancelacionRuido", Tipo: TipoBoolean},
		{Nombre: "microfono", Tipo: TipoBoolean},
	}},

	"tablets": {Campos: []Campo{
		{Nombre: "modelo", Tipo: TipoString, Requerido: true},
		{Nombre: "sistemaOperativo", Tipo: TipoString, Requerido: true, Opciones: []string{"Android", "iOS", "Windows"}},
		{Nombre: "almacenamiento", Tipo: TipoString, Requerido: true},
		{Nombre: "tamañoPantalla", Tipo: TipoString, Requerido: true},
		{Nombre: "conectividad", Tipo: TipoString, Opciones: []string{"WiFi", "4G", "5G"}},
	}},

	"mouse": {Campos: []Campo{
		{Nombre: "modelo", Tipo: TipoString, Requerido: true},
		{Nombre: "tipo", Tipo: TipoString, Requerido: true, Opciones: []string{"Gaming", "Oficina", "Ergonómico"}},
		{Nombre: "conexion", Tipo: TipoString, Requerido: true, Opciones: []string{"USB", "Bluetooth", "Wireless"}},
		{Nombre: "dpi", Tipo: TipoNumber, Min: f(800), Max: f(16000)},
		{Nombre: "botonesProgramables", Tipo: TipoNumber},
	}},

	"teclado": {Campos: []Campo{
		{Nombre: "modelo", Tipo: TipoString, Requerido: true},
		{Nombre: "tipo", Tipo: TipoString, Requerido: true, Opciones: []string{"Mecánico", "Membrana", "Híbrido"}},
		{Nombre: "conexion", Tipo: TipoString, Requerido: true, Opciones: []string{"USB", "Bluetooth", "Wireless"}},
		{Nombre: "switch", Tipo: TipoString, Opciones: []string{"Red", "Blue", "Brown", "Black"}},
		{Nombre: "retroiluminacion", Tipo: TipoBoolean},
	}},

	"componentes": {Campos: []Campo{
		{Nombre: "tipo", Tipo: TipoString, Requerido: true, Opciones: []string{"RAM", "GPU", "CPU", "Disco Duro", "Fuente"}},
		{Nombre: "modelo", Tipo: TipoString, Requerido: true},
		{Nombre: "especificacionTecnica", Tipo: TipoString, Requerido: true},
		{Nombre: "compatibilidad", Tipo: TipoArray, Elementos: &Campo{Tipo: TipoString}},
	}},
}

func f(v float64) *float64 { return &v }

// Resolver devuelve el esquema estático para un código de categoría, o nil si
// el código no está registrado (el llamador debe caer al esquema dinámico de
// la categoría o a un resultado vacío).
func Resolver(codigo string) *Schema {
	return registro[codigo]
}

// EsCodigoConocido indica si el código pertenece al conjunto fijo de categorías.
func EsCodigoConocido(codigo string) bool {
	_, ok := registro[codigo]
	return ok
}
