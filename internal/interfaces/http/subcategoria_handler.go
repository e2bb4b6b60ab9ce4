package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/application/usecase"
)

// SubcategoriaHandler maneja las peticiones HTTP para subcategorías.
type SubcategoriaHandler struct {
	uc *usecase.SubcategoriaUseCase
}

// NewSubcategoriaHandler construye el handler.
func NewSubcategoriaHandler(uc *usecase.SubcategoriaUseCase) *SubcategoriaHandler {
	return &SubcategoriaHandler{uc: uc}
}

// Inicializar godoc
// @Summary      Reemplazar las subcategorías con el catálogo predefinido
// @Tags         subcategorias
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SubcategoriaListResponse
// @Router       /api/subcategorias/init [post]
func (h *SubcategoriaHandler) Inicializar(c *fiber.Ctx) error {
	out, err := h.uc.Inicializar()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         subcategorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubcategoriaRequest  true  "Datos de la subcategoría"
// @Success      201   {object}  dto.SubcategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/subcategorias [post]
func (h *SubcategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubcategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar subcategorías activas
// @Tags         subcategorias
// @Produce      json
// @Success      200  {object}  dto.SubcategoriaListResponse
// @Router       /api/subcategorias [get]
func (h *SubcategoriaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListActivas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListPorCategoria godoc
// @Summary      Listar subcategorías de una categoría padre
// @Tags         subcategorias
// @Produce      json
// @Param        codigo  path  string  true  "Código de la categoría padre"
// @Success      200  {object}  dto.SubcategoriaListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategorias/categoria/{codigo} [get]
func (h *SubcategoriaHandler) ListPorCategoria(c *fiber.Ctx) error {
	out, err := h.uc.ListPorCategoria(c.Params("codigo"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ToggleState godoc
// @Summary      Activar/desactivar subcategoría
// @Tags         subcategorias
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.SubcategoriaResponse
// @Router       /api/subcategorias/{id}/state [patch]
func (h *SubcategoriaHandler) ToggleState(c *fiber.Ctx) error {
	out, err := h.uc.ToggleState(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
