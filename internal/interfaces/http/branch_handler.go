package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/dto"
	"github.com/FLAVIOALFA/stockflow-admin/internal/application/usecase"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
)

// BranchHandler maneja las peticiones HTTP para sucursales (protegido).
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// List godoc
// @Summary      Listar sucursales
// @Tags         branches
// @Produce      json
// @Success      200  {object}  object
// @Router       /api/branches [get]
func (h *BranchHandler) List(c *fiber.Ctx) error {
	page, err := h.uc.List(c.UserContext(), listParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// GetByID godoc
// @Summary      Obtener sucursal
// @Tags         branches
// @Produce      json
// @Param        id  path  string  true  "Referencia"
// @Success      200  {object}  entity.Branch
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{id} [get]
func (h *BranchHandler) GetByID(c *fiber.Ctx) error {
	branch, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if branch == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(branch)
}

// Create godoc
// @Summary      Crear sucursal
// @Tags         branches
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BranchPayload  true  "Datos de la sucursal"
// @Success      201   {object}  entity.Branch
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/branches [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var in dto.BranchPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	branch, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(branch)
}

// Update godoc
// @Summary      Editar sucursal
// @Tags         branches
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Referencia"
// @Param        body  body  dto.BranchPayload  true  "Datos a actualizar"
// @Success      200   {object}  entity.Branch
// @Router       /api/branches/{id} [put]
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	var in dto.BranchPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	branch, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(branch)
}

// Delete godoc
// @Summary      Eliminar sucursal
// @Tags         branches
// @Param        id  path  string  true  "Referencia"
// @Success      204
// @Router       /api/branches/{id} [delete]
func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
