package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/application/usecase"
	"github.com/ccltech/tienda-api/internal/domain/catalogo"
)

// ProductoHandler maneja las peticiones HTTP del catálogo de productos.
type ProductoHandler struct {
	uc      *usecase.ProductoUseCase
	facetas *usecase.FacetasUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase, facetas *usecase.FacetasUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc, facetas: facetas}
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if in.Nombre == "" || in.CategoriaID == "" || in.SubcategoriaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, category y subcategory son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos con filtros dinámicos
// @Description  Las claves del query string que no son reconocidas se aplican
// @Description  como filtros sobre especificaciones (ej: ?ram=16GB&color=negro).
// @Tags         productos
// @Produce      json
// @Param        category  query  string  false  "ID de categoría"
// @Param        sort      query  string  false  "price_asc|price_desc|newest|popular|az|za|relevance"
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Tamaño de página"  default(10)
// @Param        format    query  string  false  "detailed|simple"
// @Success      200  {object}  dto.ProductoListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	q := parseListarQuery(c)
	if q.Format == "simple" {
		out, err := h.uc.ListarSimple(c.Context(), q)
		if err != nil {
			return responderError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.Listar(c.Context(), q)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ToggleState godoc
// @Summary      Activar/desactivar producto
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Router       /api/productos/{id}/state [patch]
func (h *ProductoHandler) ToggleState(c *fiber.Ctx) error {
	out, err := h.uc.ToggleState(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Filtros godoc
// @Summary      Facetas disponibles para una categoría
// @Tags         productos
// @Produce      json
// @Param        categoriaId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.FiltrosDisponiblesResponse
// @Router       /api/productos/filtros/{categoriaId} [get]
func (h *ProductoHandler) Filtros(c *fiber.Ctx) error {
	out, err := h.facetas.FiltrosDisponibles(c.Context(), c.Params("categoriaId"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// RangoPrecios godoc
// @Summary      Rango de precios de una categoría (límites del slider)
// @Tags         productos
// @Produce      json
// @Param        categoriaId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.RangoPreciosResponse
// @Router       /api/productos/filtros/{categoriaId}/precios [get]
func (h *ProductoHandler) RangoPrecios(c *fiber.Ctx) error {
	out, err := h.facetas.RangoPrecios(c.Context(), c.Params("categoriaId"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// FiltrosAlfabeticos godoc
// @Summary      Primeras letras por campo filtrable
// @Tags         productos
// @Produce      json
// @Param        categoriaId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.FiltrosAlfabeticosResponse
// @Router       /api/productos/filtros/{categoriaId}/alfabeticos [get]
func (h *ProductoHandler) FiltrosAlfabeticos(c *fiber.Ctx) error {
	out, err := h.uc.FiltrosAlfabeticos(c.Context(), c.Params("categoriaId"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// PorLetra godoc
// @Summary      Productos cuyo atributo empieza por una letra
// @Tags         productos
// @Produce      json
// @Param        categoriaId  path  string  true  "ID de la categoría"
// @Param        campo        path  string  true  "Campo filtrable (marca, modelo)"
// @Param        letra        path  string  true  "Letra inicial"
// @Success      200  {object}  dto.ProductosPorLetraResponse
// @Router       /api/productos/filtros/{categoriaId}/letra/{campo}/{letra} [get]
func (h *ProductoHandler) PorLetra(c *fiber.Ctx) error {
	out, err := h.uc.ListarPorLetra(c.Context(), c.Params("categoriaId"), c.Params("campo"), c.Params("letra"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// parseListarQuery arma la query del listado a partir del query string crudo.
// Se recorre QueryArgs directamente para conservar claves repetidas
// (?color=negro&color=gris), que fiber colapsa en c.Query.
func parseListarQuery(c *fiber.Ctx) dto.ListarProductosQuery {
	params := make(map[string][]string)
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		clave := string(k)
		params[clave] = append(params[clave], string(v))
	})

	return dto.ListarProductosQuery{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Brand:       c.Query("brand"),
		MinPrice:    c.Query("minPrice"),
		MaxPrice:    c.Query("maxPrice"),
		Search:      c.Query("search"),
		Sort:        c.Query("sort"),
		Page:        c.QueryInt("page", 0),
		Limit:       c.QueryInt("limit", 0),
		Format:      c.Query("format"),
		Atributos:   catalogo.ConstruirFiltro(params, catalogo.ParamsConocidos),
	}
}
