package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ccltech/tienda-api/internal/application/usecase"
)

// UsuarioHandler maneja el perfil y los favoritos del usuario autenticado.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Perfil godoc
// @Summary      Perfil del usuario autenticado
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UsuarioResponse
// @Router       /api/usuarios/me [get]
func (h *UsuarioHandler) Perfil(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// AgregarFavorito godoc
// @Summary      Agregar un producto a favoritos
// @Tags         usuarios
// @Security     Bearer
// @Param        productoId  path  string  true  "ID del producto"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/favoritos/{productoId} [post]
func (h *UsuarioHandler) AgregarFavorito(c *fiber.Ctx) error {
	if err := h.uc.AgregarFavorito(GetUserID(c), c.Params("productoId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// QuitarFavorito godoc
// @Summary      Quitar un producto de favoritos
// @Tags         usuarios
// @Security     Bearer
// @Param        productoId  path  string  true  "ID del producto"
// @Success      204  "Sin contenido"
// @Router       /api/usuarios/favoritos/{productoId} [delete]
func (h *UsuarioHandler) QuitarFavorito(c *fiber.Ctx) error {
	if err := h.uc.QuitarFavorito(GetUserID(c), c.Params("productoId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListFavoritos godoc
// @Summary      Listar los productos favoritos del usuario
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FavoritosResponse
// @Router       /api/usuarios/favoritos [get]
func (h *UsuarioHandler) ListFavoritos(c *fiber.Ctx) error {
	out, err := h.uc.ListFavoritos(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
