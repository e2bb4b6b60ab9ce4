package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/application/usecase"
)

// ResenaHandler maneja las reseñas de productos.
type ResenaHandler struct {
	uc *usecase.ResenaUseCase
}

// NewResenaHandler construye el handler.
func NewResenaHandler(uc *usecase.ResenaUseCase) *ResenaHandler {
	return &ResenaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear reseña (una por usuario y producto)
// @Tags         resenas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResenaRequest  true  "Calificación y comentario"
// @Success      201   {object}  dto.ResenaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/resenas [post]
func (h *ResenaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResenaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProducto godoc
// @Summary      Listar reseñas de un producto con su promedio
// @Tags         resenas
// @Produce      json
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ResenasProductoResponse
// @Router       /api/resenas/producto/{productoId} [get]
func (h *ResenaHandler) ListByProducto(c *fiber.Ctx) error {
	out, err := h.uc.ListByProducto(c.Params("productoId"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar una reseña propia
// @Tags         resenas
// @Security     Bearer
// @Param        id  path  string  true  "ID de la reseña"
// @Success      204  "Sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resenas/{id} [delete]
func (h *ResenaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
