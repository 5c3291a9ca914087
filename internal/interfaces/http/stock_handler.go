package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/dto"
	"github.com/FLAVIOALFA/stockflow-admin/internal/application/usecase"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
)

// StockHandler maneja las peticiones HTTP de stock, incluida la carga masiva
// (protegido).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List lista registros de stock con sucursal y producto poblados.
func (h *StockHandler) List(c *fiber.Ctx) error {
	page, err := h.uc.List(c.UserContext(), listParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// GetByID obtiene un registro de stock por referencia.
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	st, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if st == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(st)
}

// Create crea un registro de stock individual.
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.StockPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	st, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

// Update edita un registro de stock individual.
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.StockPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	st, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(st)
}

// Delete elimina un registro de stock.
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Bulk godoc
// @Summary      Carga masiva de stock por sucursal
// @Description  Filtra las filas incompletas, valida que ningún producto se repita y aplica todo en una única petición batch.
// @Tags         stocks
// @Accept       json
// @Param        body  body  dto.BulkStockRequest  true  "Sucursal y filas producto/cantidad"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stocks/bulk [post]
func (h *StockHandler) Bulk(c *fiber.Ctx) error {
	var in dto.BulkStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.BulkCreate(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
