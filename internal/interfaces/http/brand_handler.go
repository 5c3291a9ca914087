package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/dto"
	"github.com/FLAVIOALFA/stockflow-admin/internal/application/usecase"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
)

// BrandHandler maneja las peticiones HTTP para marcas (protegido).
type BrandHandler struct {
	uc *usecase.BrandUseCase
}

// NewBrandHandler construye el handler.
func NewBrandHandler(uc *usecase.BrandUseCase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// List lista marcas.
func (h *BrandHandler) List(c *fiber.Ctx) error {
	page, err := h.uc.List(c.UserContext(), listParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// GetByID obtiene una marca por referencia.
func (h *BrandHandler) GetByID(c *fiber.Ctx) error {
	brand, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if brand == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(brand)
}

// Create crea una marca; deriva el slug del nombre si no viene.
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var in dto.BrandPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	brand, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

// Update edita una marca sin recalcular su slug.
func (h *BrandHandler) Update(c *fiber.Ctx) error {
	var in dto.BrandPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	brand, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(brand)
}

// Delete elimina una marca.
func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
