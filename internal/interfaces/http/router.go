package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ccltech/tienda-api/internal/application/auth"
	"github.com/ccltech/tienda-api/internal/application/inventario"
	"github.com/ccltech/tienda-api/internal/application/pagos"
	"github.com/ccltech/tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC     *usecase.ProductoUseCase
	FacetasUC      *usecase.FacetasUseCase
	CategoriaUC    *usecase.CategoriaUseCase
	SubcategoriaUC *usecase.SubcategoriaUseCase
	MarcaUC        *usecase.MarcaUseCase
	ResenaUC       *usecase.ResenaUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	MovimientoUC   *inventario.MovimientoUseCase
	OrdenUC        *pagos.OrdenUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. El catálogo es público; la escritura
// requiere admin y el checkout, un usuario autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	autenticado := AuthMiddleware(deps.JWTSecret)
	admin := []fiber.Handler{autenticado, RequireAdmin()}

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Productos: lectura pública, escritura admin. Las rutas de filtros van
	// antes de /:id para que fiber no las capture como parámetro.
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.FacetasUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/filtros/:categoriaId", productoHandler.Filtros)
	productos.Get("/filtros/:categoriaId/precios", productoHandler.RangoPrecios)
	productos.Get("/filtros/:categoriaId/alfabeticos", productoHandler.FiltrosAlfabeticos)
	productos.Get("/filtros/:categoriaId/letra/:campo/:letra", productoHandler.PorLetra)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/", append(admin, productoHandler.Create)...)
	productos.Put("/:id", append(admin, productoHandler.Update)...)
	productos.Patch("/:id/state", append(admin, productoHandler.ToggleState)...)

	// Categorías
	categorias := api.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:codigo/especificaciones", categoriaHandler.Especificaciones)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Post("/", append(admin, categoriaHandler.Create)...)
	categorias.Put("/:id", append(admin, categoriaHandler.Update)...)
	categorias.Patch("/:id/state", append(admin, categoriaHandler.ToggleState)...)

	// Subcategorías
	subcategorias := api.Group("/subcategorias")
	subcategoriaHandler := NewSubcategoriaHandler(deps.SubcategoriaUC)
	subcategorias.Get("/", subcategoriaHandler.List)
	subcategorias.Get("/categoria/:codigo", subcategoriaHandler.ListPorCategoria)
	subcategorias.Post("/init", append(admin, subcategoriaHandler.Inicializar)...)
	subcategorias.Post("/", append(admin, subcategoriaHandler.Create)...)
	subcategorias.Patch("/:id/state", append(admin, subcategoriaHandler.ToggleState)...)

	// Marcas
	marcas := api.Group("/marcas")
	marcaHandler := NewMarcaHandler(deps.MarcaUC)
	marcas.Get("/", marcaHandler.List)
	marcas.Post("/slugs/actualizar", append(admin, marcaHandler.ActualizarSlugs)...)
	marcas.Get("/:idOSlug", marcaHandler.Get)
	marcas.Post("/", append(admin, marcaHandler.Create)...)
	marcas.Put("/:id", append(admin, marcaHandler.Update)...)
	marcas.Patch("/:id/state", append(admin, marcaHandler.ToggleState)...)

	// Reseñas: lectura pública, escritura autenticada
	resenas := api.Group("/resenas")
	resenaHandler := NewResenaHandler(deps.ResenaUC)
	resenas.Get("/producto/:productoId", resenaHandler.ListByProducto)
	resenas.Post("/", autenticado, resenaHandler.Create)
	resenas.Delete("/:id", autenticado, resenaHandler.Delete)

	// Inventario (admin)
	invGroup := api.Group("/inventario", admin...)
	inventarioHandler := NewInventarioHandler(deps.MovimientoUC)
	invGroup.Post("/movimientos", inventarioHandler.Registrar)
	invGroup.Get("/movimientos", inventarioHandler.List)
	invGroup.Get("/movimientos/:id", inventarioHandler.GetByID)
	invGroup.Put("/movimientos/:id", inventarioHandler.ActualizarMotivo)

	// Órdenes y pagos (autenticado; el listado global es admin)
	ordenes := api.Group("/ordenes", autenticado)
	ordenHandler := NewOrdenHandler(deps.OrdenUC)
	ordenes.Post("/", ordenHandler.Crear)
	ordenes.Post("/confirmar", ordenHandler.Confirmar)
	ordenes.Get("/mias", ordenHandler.Mias)
	ordenes.Get("/", RequireAdmin(), ordenHandler.List)
	ordenes.Get("/:id", ordenHandler.GetByID)

	// Usuarios y favoritos (autenticado)
	usuarios := api.Group("/usuarios", autenticado)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/me", usuarioHandler.Perfil)
	usuarios.Get("/favoritos", usuarioHandler.ListFavoritos)
	usuarios.Post("/favoritos/:productoId", usuarioHandler.AgregarFavorito)
	usuarios.Delete("/favoritos/:productoId", usuarioHandler.QuitarFavorito)
}
