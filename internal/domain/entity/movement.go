package entity

// Estados del ciclo de vida de un movimiento.
const (
	MovementStateRequested = "requested" // inicial
	MovementStateConfirmed = "confirmed" // terminal: congela el registro
)

// Movement representa una transacción de inventario de uno de cuatro tipos
// (compra, transferencia entre sucursales, ajuste, merma). El campo de cable
// del tipo se llama "type" en el content API; aquí el concepto se nombra Kind.
type Movement struct {
	ID          int            `json:"id,omitempty"`
	DocumentID  string         `json:"documentId,omitempty"`
	Date        string         `json:"date"` // YYYY-MM-DD
	Kind        string         `json:"type"`
	State       string         `json:"state"`
	Origin      *Branch        `json:"origin,omitempty"`
	Destination *Branch        `json:"destination,omitempty"`
	Items       []MovementItem `json:"items,omitempty"`
}

// MovementItem línea de un movimiento: producto y cantidad. Es propiedad
// exclusiva de su movimiento; no tiene ciclo de vida propio.
type MovementItem struct {
	ID                 int      `json:"id,omitempty"`
	QuantityTotalItems int      `json:"quantityTotalItems"`
	Product            *Product `json:"product,omitempty"`
}

// Ref devuelve el identificador a usar en relaciones.
func (m *Movement) Ref() string {
	if m == nil {
		return ""
	}
	return refOf(m.DocumentID, m.ID)
}

// Confirmed indica si el movimiento ya está congelado.
func (m *Movement) Confirmed() bool {
	return m != nil && m.State == MovementStateConfirmed
}
