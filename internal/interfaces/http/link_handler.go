package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reposicion-api/internal/application/dto"
	"github.com/jhoicas/reposicion-api/internal/application/usecase"
)

// LinkHandler administra vínculos producto-proveedor.
type LinkHandler struct {
	uc *usecase.LinkUseCase
}

// NewLinkHandler construye el handler.
func NewLinkHandler(uc *usecase.LinkUseCase) *LinkHandler {
	return &LinkHandler{uc: uc}
}

// Create godoc
// @Summary      Vincular producto y proveedor
// @Tags         links
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLinkRequest  true  "Vínculo"
// @Success      201   {object}  dto.LinkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/links [post]
func (h *LinkHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar vínculo
// @Tags         links
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del vínculo"
// @Param        body  body  dto.UpdateLinkRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LinkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/links/{id} [put]
func (h *LinkHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar vínculo
// @Tags         links
// @Security     Bearer
// @Param        id   path  string  true  "ID del vínculo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/links/{id} [delete]
func (h *LinkHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
