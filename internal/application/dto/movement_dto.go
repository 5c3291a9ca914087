package dto

import "github.com/FLAVIOALFA/stockflow-admin/internal/domain/movement"

// CreateMovementRequest body de creación directa de un movimiento: el borrador
// completo del formulario.
type CreateMovementRequest struct {
	Date          string             `json:"date"`
	Kind          string             `json:"kind"`
	State         string             `json:"state,omitempty"` // se ignora: la creación nace en requested
	OriginID      string             `json:"originId,omitempty"`
	DestinationID string             `json:"destinationId,omitempty"`
	Items         []movement.ItemRow `json:"items"`
}

// Draft convierte el request al borrador de dominio.
func (r CreateMovementRequest) Draft() movement.Draft {
	return movement.Draft{
		Date:          r.Date,
		Kind:          r.Kind,
		State:         r.State,
		OriginID:      r.OriginID,
		DestinationID: r.DestinationID,
		Items:         r.Items,
	}
}

// UpdateMovementRequest body de edición de un movimiento existente: el estado
// y nada más.
type UpdateMovementRequest struct {
	State string `json:"state"`
}

// OpenDraftRequest body para abrir un borrador; MovementRef vacío abre uno en blanco.
type OpenDraftRequest struct {
	MovementRef string `json:"movementRef,omitempty"`
}

// DraftFieldsRequest campos de cabecera del borrador; solo viajan los que se
// quieren cambiar.
type DraftFieldsRequest struct {
	Date          *string `json:"date,omitempty"`
	Kind          *string `json:"kind,omitempty"`
	State         *string `json:"state,omitempty"`
	OriginID      *string `json:"originId,omitempty"`
	DestinationID *string `json:"destinationId,omitempty"`
}

// DraftItemRequest body para actualizar un campo de una fila de ítems.
type DraftItemRequest struct {
	Field string `json:"field"` // productId | quantity
	Value any    `json:"value"`
}

// DraftResponse borrador con su id de registro.
type DraftResponse struct {
	ID    string         `json:"id"`
	Draft movement.Draft `json:"draft"`
}
