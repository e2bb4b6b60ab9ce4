package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/application/usecase"
)

// MarcaHandler maneja las peticiones HTTP para marcas.
type MarcaHandler struct {
	uc *usecase.MarcaUseCase
}

// NewMarcaHandler construye el handler.
func NewMarcaHandler(uc *usecase.MarcaUseCase) *MarcaHandler {
	return &MarcaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear marca
// @Tags         marcas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMarcaRequest  true  "Datos de la marca"
// @Success      201   {object}  dto.MarcaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/marcas [post]
func (h *MarcaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMarcaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener marca por ID o slug
// @Tags         marcas
// @Produce      json
// @Param        idOSlug  path  string  true  "ID o slug de la marca"
// @Success      200  {object}  dto.MarcaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/marcas/{idOSlug} [get]
func (h *MarcaHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByIDOSlug(c.Params("idOSlug"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar marcas activas
// @Tags         marcas
// @Produce      json
// @Success      200  {array}  dto.MarcaResponse
// @Router       /api/marcas [get]
func (h *MarcaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListActivas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar marca (un cambio de nombre regenera el slug)
// @Tags         marcas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la marca"
// @Param        body  body  dto.UpdateMarcaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MarcaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/marcas/{id} [put]
func (h *MarcaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMarcaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ToggleState godoc
// @Summary      Activar/desactivar marca
// @Tags         marcas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la marca"
// @Success      200  {object}  dto.MarcaResponse
// @Router       /api/marcas/{id}/state [patch]
func (h *MarcaHandler) ToggleState(c *fiber.Ctx) error {
	out, err := h.uc.ToggleState(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarSlugs godoc
// @Summary      Regenerar los slugs de todas las marcas
// @Tags         marcas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ActualizarSlugsResponse
// @Router       /api/marcas/slugs/actualizar [post]
func (h *MarcaHandler) ActualizarSlugs(c *fiber.Ctx) error {
	out, err := h.uc.ActualizarSlugs()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
