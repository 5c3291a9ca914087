package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrBranchRequired      = errors.New("sucursal requerida")
	ErrOriginRequired      = errors.New("sucursal de origen requerida")
	ErrDestinationRequired = errors.New("sucursal de destino requerida")
	ErrBrandRequired       = errors.New("marca requerida")
	ErrMainImageRequired   = errors.New("imagen principal requerida")
	ErrNoValidItems        = errors.New("se requiere al menos un ítem con producto y cantidad")
	ErrDuplicateProduct    = errors.New("producto repetido en la carga")
	ErrUnknownKind         = errors.New("tipo de movimiento desconocido")
	ErrMovementConfirmed   = errors.New("el movimiento está confirmado y no admite cambios")
	ErrInvalidTransition   = errors.New("transición de estado no permitida")
	ErrSubmitInFlight      = errors.New("el borrador ya se está enviando")
	ErrDraftNotFound       = errors.New("borrador no encontrado")
	ErrSessionExpired      = errors.New("sesión expirada")
	ErrNoSession           = errors.New("no hay sesión activa")
)
