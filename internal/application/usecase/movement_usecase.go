package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/dto"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/movement"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/strapi"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/logger"
)

// draftEntry borrador registrado con su estado original (para validar la
// transición al enviar) y el pestillo de envío en curso.
type draftEntry struct {
	draft         movement.Draft
	originalState string
	submitting    bool
}

// MovementUseCase casos de uso de movimientos de inventario: CRUD directo y el
// registro de borradores que respalda los formularios de creación y edición.
type MovementUseCase struct {
	res *strapi.Resource[entity.Movement]
	log *logger.Logger

	mu     sync.Mutex
	drafts map[string]*draftEntry
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(res *strapi.Resource[entity.Movement], log *logger.Logger) *MovementUseCase {
	return &MovementUseCase{res: res, log: log, drafts: make(map[string]*draftEntry)}
}

// ── CRUD directo ──────────────────────────────────────────────────────────────

// List lista movimientos con origen, destino e ítems poblados.
func (uc *MovementUseCase) List(ctx context.Context, params strapi.Params) (*strapi.Page[entity.Movement], error) {
	return uc.res.List(ctx, params)
}

// GetByID obtiene un movimiento por referencia.
func (uc *MovementUseCase) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	return uc.res.Get(ctx, id, nil)
}

// Create valida el borrador completo y crea el movimiento. Nace siempre en
// requested, con solo las ubicaciones que su tipo exige.
func (uc *MovementUseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (*entity.Movement, error) {
	payload, err := movement.BuildCreatePayload(in.Draft())
	if err != nil {
		return nil, err
	}
	return uc.res.Create(ctx, payload)
}

// UpdateState cambia el estado de un movimiento existente. La carga enviada es
// {state} y nada más; un movimiento confirmado se rechaza sin emitir petición.
func (uc *MovementUseCase) UpdateState(ctx context.Context, id string, in dto.UpdateMovementRequest) (*entity.Movement, error) {
	current, err := uc.res.Get(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	payload, err := movement.BuildUpdatePayload(current, in.State)
	if err != nil {
		return nil, err
	}
	return uc.res.Update(ctx, id, payload)
}

// Delete elimina un movimiento por referencia.
func (uc *MovementUseCase) Delete(ctx context.Context, id string) error {
	return uc.res.Delete(ctx, id)
}

// ── Registro de borradores ────────────────────────────────────────────────────

// OpenDraft abre un borrador y devuelve su id de registro. Sin referencia se
// abre uno en blanco (fecha de hoy, una fila vacía); con referencia se carga el
// movimiento y el borrador queda en modo edición, donde solo el estado es
// enviable.
func (uc *MovementUseCase) OpenDraft(ctx context.Context, movementRef string) (*dto.DraftResponse, error) {
	var entry draftEntry
	if movementRef == "" {
		entry.draft = movement.Draft{
			Date:  time.Now().Format("2006-01-02"),
			State: entity.MovementStateRequested,
			Items: movement.AddItem(nil),
		}
	} else {
		m, err := uc.res.Get(ctx, movementRef, nil)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		entry.draft = movement.DraftFrom(m)
		entry.originalState = m.State
	}

	id := uuid.New().String()
	uc.mu.Lock()
	uc.drafts[id] = &entry
	uc.mu.Unlock()
	return &dto.DraftResponse{ID: id, Draft: entry.draft}, nil
}

// GetDraft devuelve el borrador registrado bajo el id.
func (uc *MovementUseCase) GetDraft(id string) (*dto.DraftResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	entry, ok := uc.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	return &dto.DraftResponse{ID: id, Draft: entry.draft}, nil
}

// CloseDraft descarta el borrador sin enviarlo.
func (uc *MovementUseCase) CloseDraft(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.drafts[id]; !ok {
		return domain.ErrDraftNotFound
	}
	delete(uc.drafts, id)
	return nil
}

// SetDraftFields actualiza los campos de cabecera del borrador. En un borrador
// de edición solo el estado es modificable; el resto del movimiento ya está
// persistido y no viaja en la actualización.
func (uc *MovementUseCase) SetDraftFields(id string, in dto.DraftFieldsRequest) (*dto.DraftResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	entry, ok := uc.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	editing := entry.draft.MovementRef != ""
	if editing && (in.Date != nil || in.Kind != nil || in.OriginID != nil || in.DestinationID != nil) {
		return nil, domain.ErrMovementConfirmed
	}
	if in.Date != nil {
		entry.draft.Date = *in.Date
	}
	if in.Kind != nil {
		entry.draft.Kind = *in.Kind
	}
	if in.State != nil {
		entry.draft.State = *in.State
	}
	if in.OriginID != nil {
		entry.draft.OriginID = *in.OriginID
	}
	if in.DestinationID != nil {
		entry.draft.DestinationID = *in.DestinationID
	}
	return &dto.DraftResponse{ID: id, Draft: entry.draft}, nil
}

// AddDraftItem agrega una fila vacía al editor de ítems del borrador.
func (uc *MovementUseCase) AddDraftItem(id string) (*dto.DraftResponse, error) {
	return uc.editItems(id, func(e *draftEntry) error {
		e.draft.AddItem()
		return nil
	})
}

// RemoveDraftItem quita la fila i del editor de ítems.
func (uc *MovementUseCase) RemoveDraftItem(id string, i int) (*dto.DraftResponse, error) {
	return uc.editItems(id, func(e *draftEntry) error {
		return e.draft.RemoveItem(i)
	})
}

// UpdateDraftItem actualiza un campo de la fila i del editor de ítems.
func (uc *MovementUseCase) UpdateDraftItem(id string, i int, in dto.DraftItemRequest) (*dto.DraftResponse, error) {
	return uc.editItems(id, func(e *draftEntry) error {
		return e.draft.UpdateItem(i, in.Field, in.Value)
	})
}

// Los ítems solo se editan en borradores de creación: en edición el movimiento
// ya existe y sus líneas están congeladas.
func (uc *MovementUseCase) editItems(id string, edit func(*draftEntry) error) (*dto.DraftResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	entry, ok := uc.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	if entry.draft.MovementRef != "" {
		return nil, domain.ErrMovementConfirmed
	}
	if err := edit(entry); err != nil {
		return nil, err
	}
	return &dto.DraftResponse{ID: id, Draft: entry.draft}, nil
}

// SubmitDraft envía el borrador: creación completa o, en modo edición, solo la
// transición de estado. El pestillo garantiza a lo sumo una petición en vuelo
// por borrador; el éxito descarta el borrador y cualquier fallo lo conserva
// intacto para corregir y reintentar.
func (uc *MovementUseCase) SubmitDraft(ctx context.Context, id string) (*entity.Movement, error) {
	uc.mu.Lock()
	entry, ok := uc.drafts[id]
	if !ok {
		uc.mu.Unlock()
		return nil, domain.ErrDraftNotFound
	}
	if entry.submitting {
		uc.mu.Unlock()
		return nil, domain.ErrSubmitInFlight
	}
	entry.submitting = true
	d := entry.draft
	originalState := entry.originalState
	uc.mu.Unlock()

	m, err := uc.submit(ctx, d, originalState)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err != nil {
		entry.submitting = false
		return nil, err
	}
	delete(uc.drafts, id)
	return m, nil
}

func (uc *MovementUseCase) submit(ctx context.Context, d movement.Draft, originalState string) (*entity.Movement, error) {
	if d.MovementRef == "" {
		payload, err := movement.BuildCreatePayload(d)
		if err != nil {
			return nil, err
		}
		uc.log.Info().Str("type", d.Kind).Int("items", len(payload.Items)).Msg("creando movimiento")
		return uc.res.Create(ctx, payload)
	}

	payload, err := movement.BuildUpdatePayload(&entity.Movement{DocumentID: d.MovementRef, State: originalState}, d.State)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("movement", d.MovementRef).Str("state", d.State).Msg("actualizando estado de movimiento")
	return uc.res.Update(ctx, d.MovementRef, payload)
}
