package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/application/inventario"
)

// InventarioHandler maneja los movimientos de inventario (protegido, admin).
type InventarioHandler struct {
	uc *inventario.MovimientoUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.MovimientoUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar movimiento de inventario
// @Description  entrada y devolucion suman stock; salida lo descuenta y falla
// @Description  con 409 si el stock no alcanza.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovimientoRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos [post]
func (h *InventarioHandler) Registrar(c *fiber.Ctx) error {
	var in dto.CreateMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if in.UsuarioID == "" {
		in.UsuarioID = GetUserID(c)
	}
	out, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos/{id} [get]
func (h *InventarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos de inventario
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovimientoResponse
// @Router       /api/inventario/movimientos [get]
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarMotivo godoc
// @Summary      Corregir el motivo de un movimiento
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.UpdateMovimientoRequest  true  "Nuevo motivo"
// @Success      200   {object}  dto.MovimientoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos/{id} [put]
func (h *InventarioHandler) ActualizarMotivo(c *fiber.Ctx) error {
	var in dto.UpdateMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.ActualizarMotivo(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
