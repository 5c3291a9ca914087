package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/dto"
	"github.com/FLAVIOALFA/stockflow-admin/internal/application/usecase"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
)

// MovementHandler maneja las peticiones HTTP de movimientos: CRUD directo y el
// registro de borradores de los formularios (protegido).
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List lista movimientos con origen, destino e ítems poblados.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	page, err := h.uc.List(c.UserContext(), listParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// GetByID obtiene un movimiento por referencia.
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if m == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(m)
}

// Create godoc
// @Summary      Crear movimiento
// @Description  Valida tipo, ubicaciones exigidas e ítems; el movimiento nace siempre en requested.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Borrador completo"
// @Success      201   {object}  entity.Movement
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	m, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// UpdateState godoc
// @Summary      Cambiar el estado de un movimiento
// @Description  La única edición admitida sobre un movimiento existente. Confirmado es terminal: responde 409.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Referencia"
// @Param        body  body  dto.UpdateMovementRequest  true  "Nuevo estado"
// @Success      200   {object}  entity.Movement
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) UpdateState(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	m, err := h.uc.UpdateState(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

// Delete elimina un movimiento.
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Borradores ────────────────────────────────────────────────────────────────

// OpenDraft abre un borrador: en blanco, o de edición si viene movementRef.
func (h *MovementHandler) OpenDraft(c *fiber.Ctx) error {
	var in dto.OpenDraftRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return badBody(c)
	}
	out, err := h.uc.OpenDraft(c.UserContext(), in.MovementRef)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetDraft devuelve el borrador registrado.
func (h *MovementHandler) GetDraft(c *fiber.Ctx) error {
	out, err := h.uc.GetDraft(c.Params("draftId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CloseDraft descarta el borrador sin enviarlo.
func (h *MovementHandler) CloseDraft(c *fiber.Ctx) error {
	if err := h.uc.CloseDraft(c.Params("draftId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetDraftFields actualiza la cabecera del borrador (fecha, tipo, estado, ubicaciones).
func (h *MovementHandler) SetDraftFields(c *fiber.Ctx) error {
	var in dto.DraftFieldsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetDraftFields(c.Params("draftId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddDraftItem agrega una fila vacía al editor de ítems.
func (h *MovementHandler) AddDraftItem(c *fiber.Ctx) error {
	out, err := h.uc.AddDraftItem(c.Params("draftId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveDraftItem quita la fila indicada del editor de ítems.
func (h *MovementHandler) RemoveDraftItem(c *fiber.Ctx) error {
	i, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	out, err := h.uc.RemoveDraftItem(c.Params("draftId"), i)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateDraftItem actualiza un campo (productId o quantity) de la fila indicada.
func (h *MovementHandler) UpdateDraftItem(c *fiber.Ctx) error {
	i, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	var in dto.DraftItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateDraftItem(c.Params("draftId"), i, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SubmitDraft godoc
// @Summary      Enviar el borrador
// @Description  Creación completa, o solo {state} en modo edición. Un envío ya en vuelo responde 409; el fallo conserva el borrador.
// @Tags         movements
// @Produce      json
// @Param        draftId  path  string  true  "Id del borrador"
// @Success      200  {object}  entity.Movement
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/drafts/{draftId}/submit [post]
func (h *MovementHandler) SubmitDraft(c *fiber.Ctx) error {
	m, err := h.uc.SubmitDraft(c.UserContext(), c.Params("draftId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}
