package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/application/pagos"
	"github.com/ccltech/tienda-api/internal/domain/entity"
)

// OrdenHandler maneja el checkout y la confirmación de pagos (protegido).
type OrdenHandler struct {
	uc *pagos.OrdenUseCase
}

// NewOrdenHandler construye el handler.
func NewOrdenHandler(uc *pagos.OrdenUseCase) *OrdenHandler {
	return &OrdenHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear orden previa al pago
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrdenRequest  true  "Carrito y datos de envío"
// @Success      201   {object}  dto.OrdenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ordenes [post]
func (h *OrdenHandler) Crear(c *fiber.Ctx) error {
	var in dto.CreateOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	// La orden siempre es del usuario autenticado, sin importar el body.
	in.UsuarioID = GetUserID(c)
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID (dueño o admin)
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id} [get]
func (h *OrdenHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if out.UsuarioID != GetUserID(c) && GetUserRole(c) != entity.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la orden no pertenece al usuario"})
	}
	return c.JSON(out)
}

// Mias godoc
// @Summary      Listar las órdenes del usuario autenticado
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrdenResponse
// @Router       /api/ordenes/mias [get]
func (h *OrdenHandler) Mias(c *fiber.Ctx) error {
	out, err := h.uc.ListByUsuario(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar todas las órdenes (admin)
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrdenResponse
// @Router       /api/ordenes [get]
func (h *OrdenHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Confirmar godoc
// @Summary      Confirmar el pago PayPal de una orden
// @Description  Verifica la captura contra PayPal, descuenta stock en una
// @Description  transacción y marca la orden como pagada. Confirmar una orden
// @Description  ya pagada responde 200 sin repetir el descuento.
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmarPagoRequest  true  "Orden y captura PayPal"
// @Success      200   {object}  dto.ConfirmarPagoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ordenes/confirmar [post]
func (h *OrdenHandler) Confirmar(c *fiber.Ctx) error {
	var in dto.ConfirmarPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if in.OrdenID == "" || in.Detalle.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "orderId y paymentDetails.id son requeridos"})
	}
	out, err := h.uc.Confirmar(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
