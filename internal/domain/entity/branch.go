package entity

// Tipos de sucursal.
const (
	BranchTypeLocal   = "local"   // punto de venta
	BranchTypeDeposit = "deposit" // depósito / bodega
)

// Branch representa una sucursal (local o depósito). Es origen/destino de
// movimientos y ancla de los registros de stock.
type Branch struct {
	ID         int    `json:"id,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	Name       string `json:"name"`
	Type       string `json:"type"` // local | deposit
	Address    string `json:"address"`
}

// Ref devuelve el identificador a usar en relaciones: documentId si existe, si no el id numérico.
func (b *Branch) Ref() string {
	if b == nil {
		return ""
	}
	return refOf(b.DocumentID, b.ID)
}

// ValidBranchType indica si el tipo de sucursal es uno de los admitidos.
func ValidBranchType(t string) bool {
	return t == BranchTypeLocal || t == BranchTypeDeposit
}
