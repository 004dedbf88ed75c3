package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reposicion-api/internal/application/dto"
	"github.com/jhoicas/reposicion-api/internal/application/replenishment"
)

// ReplenishmentHandler arma el pedido para un proveedor: mensaje de WhatsApp u orden en PDF.
type ReplenishmentHandler struct {
	service       *replenishment.Service
	purchaseOrder *replenishment.PurchaseOrderUseCase
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(service *replenishment.Service, purchaseOrder *replenishment.PurchaseOrderUseCase) *ReplenishmentHandler {
	return &ReplenishmentHandler{service: service, purchaseOrder: purchaseOrder}
}

// Message godoc
// @Summary      Mensaje de reposición para WhatsApp
// @Description  Valida los ítems, redacta el pedido y devuelve el enlace wa.me listo para abrir.
// @Tags         replenishment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BuildMessageRequest  true  "Proveedor, ítems y notas"
// @Success      200   {object}  dto.ComposedMessageResponse
// @Failure      400   {object}  dto.ErrorResponse  "VALIDATION o NO_CONTACT"
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/replenishment/message [post]
func (h *ReplenishmentHandler) Message(c *fiber.Ctx) error {
	var in dto.BuildMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.service.BuildMessage(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PurchaseOrder godoc
// @Summary      Orden de compra en PDF
// @Description  Mismo cuerpo que /message. Incluye un QR con el enlace wa.me si el proveedor tiene contacto.
// @Tags         replenishment
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.BuildMessageRequest  true  "Proveedor, ítems y notas"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/replenishment/purchase-order [post]
func (h *ReplenishmentHandler) PurchaseOrder(c *fiber.Ctx) error {
	var in dto.BuildMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	pdf, filename, err := h.purchaseOrder.Generate(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
