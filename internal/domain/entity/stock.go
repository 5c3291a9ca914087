package entity

// Stock representa la existencia de un producto en una sucursal.
// Conceptualmente hay una fila por par (producto, sucursal); esa unicidad la
// aproxima el cargador masivo del lado cliente.
type Stock struct {
	ID         int      `json:"id,omitempty"`
	DocumentID string   `json:"documentId,omitempty"`
	Quantity   int      `json:"quantity"`
	Product    *Product `json:"product,omitempty"`
	Branch     *Branch  `json:"branch,omitempty"`
}
