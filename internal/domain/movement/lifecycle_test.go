package movement_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/movement"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, movement.CanTransition("requested", "confirmed"))
	assert.True(t, movement.CanTransition("requested", "requested"), "reenvío sin cambio permitido")
	assert.False(t, movement.CanTransition("confirmed", "requested"), "confirmed es terminal")
	assert.False(t, movement.CanTransition("confirmed", "confirmed"))
	assert.False(t, movement.CanTransition("requested", "cancelled"), "estado desconocido")
}

// La carga de actualización lleva el estado y nada más: ni tipo, ni fecha, ni
// ubicaciones, ni ítems.
func TestBuildUpdatePayload_SoloEstado(t *testing.T) {
	m := &entity.Movement{
		DocumentID: "MOV-1",
		Date:       "2026-01-10",
		Kind:       movement.KindBuy,
		State:      entity.MovementStateRequested,
		Items:      []entity.MovementItem{{QuantityTotalItems: 3}},
	}
	p, err := movement.BuildUpdatePayload(m, entity.MovementStateConfirmed)
	require.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state": "confirmed"}`, string(raw))
}

// Un movimiento confirmado rechaza cualquier edición antes de emitir petición.
func TestBuildUpdatePayload_ConfirmadoEsSoloLectura(t *testing.T) {
	m := &entity.Movement{DocumentID: "MOV-1", State: entity.MovementStateConfirmed}

	_, err := movement.BuildUpdatePayload(m, entity.MovementStateRequested)
	assert.ErrorIs(t, err, domain.ErrMovementConfirmed)

	_, err = movement.BuildUpdatePayload(m, entity.MovementStateConfirmed)
	assert.ErrorIs(t, err, domain.ErrMovementConfirmed)
}

func TestBuildUpdatePayload_TransicionInvalida(t *testing.T) {
	m := &entity.Movement{DocumentID: "MOV-1", State: entity.MovementStateRequested}
	_, err := movement.BuildUpdatePayload(m, "cancelled")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBuildUpdatePayload_MovimientoNil(t *testing.T) {
	_, err := movement.BuildUpdatePayload(nil, entity.MovementStateConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
