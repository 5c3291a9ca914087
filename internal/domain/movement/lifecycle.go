package movement

import (
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
)

// ValidState indica si el estado es uno de los del ciclo de vida.
func ValidState(s string) bool {
	return s == entity.MovementStateRequested || s == entity.MovementStateConfirmed
}

// CanTransition gobierna el ciclo de vida requested -> confirmed.
// Se admite requested -> requested (reenvío sin cambio, como hace el formulario
// original); desde confirmed no hay transición alguna.
func CanTransition(from, to string) bool {
	if !ValidState(from) || !ValidState(to) {
		return false
	}
	return from == entity.MovementStateRequested
}

// UpdatePayload carga de actualización de un movimiento existente: el estado y
// nada más. Tipo, fecha, origen, destino e ítems jamás viajan en un update.
type UpdatePayload struct {
	State string `json:"state"`
}

// BuildUpdatePayload valida la transición contra el movimiento actual y arma la
// carga {state}. Si el movimiento ya está confirmado se rechaza aquí, antes de
// emitir cualquier petición.
func BuildUpdatePayload(current *entity.Movement, newState string) (*UpdatePayload, error) {
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if current.Confirmed() {
		return nil, domain.ErrMovementConfirmed
	}
	if !CanTransition(current.State, newState) {
		return nil, domain.ErrInvalidTransition
	}
	return &UpdatePayload{State: newState}, nil
}
