package stock

import (
	"fmt"

	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
)

// Row fila del cargador masivo: producto y cantidad para una sucursal destino.
type Row struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// BulkDraft borrador de carga masiva de stock: muchas filas producto/cantidad
// contra una única sucursal. A diferencia del editor de ítems de movimientos,
// aquí un producto no puede repetirse entre filas (una fila por par
// producto-sucursal).
type BulkDraft struct {
	BranchID string `json:"branchId"`
	Rows     []Row  `json:"rows"`
}

// NewBulkDraft crea el borrador con una fila vacía inicial, como abre el formulario.
func NewBulkDraft() *BulkDraft {
	return &BulkDraft{Rows: []Row{{ProductID: "", Quantity: 1}}}
}

// AddRow agrega una fila vacía al final.
func (d *BulkDraft) AddRow() {
	rows := make([]Row, 0, len(d.Rows)+1)
	rows = append(rows, d.Rows...)
	d.Rows = append(rows, Row{ProductID: "", Quantity: 1})
}

// RemoveRow quita la fila i conservando el orden del resto.
func (d *BulkDraft) RemoveRow(i int) error {
	if i < 0 || i >= len(d.Rows) {
		return fmt.Errorf("índice %d fuera de rango: %w", i, domain.ErrInvalidInput)
	}
	rows := make([]Row, 0, len(d.Rows)-1)
	rows = append(rows, d.Rows[:i]...)
	d.Rows = append(rows, d.Rows[i+1:]...)
	return nil
}

// SetRow reemplaza la fila i de forma inmutable sobre la secuencia.
func (d *BulkDraft) SetRow(i int, row Row) error {
	if i < 0 || i >= len(d.Rows) {
		return fmt.Errorf("índice %d fuera de rango: %w", i, domain.ErrInvalidInput)
	}
	rows := make([]Row, len(d.Rows))
	copy(rows, d.Rows)
	rows[i] = row
	d.Rows = rows
	return nil
}

// UsedProducts devuelve los productos ya elegidos en otras filas distintas de
// except; con esto la UI deshabilita la opción repetida.
func (d *BulkDraft) UsedProducts(except int) []string {
	var used []string
	for i, r := range d.Rows {
		if i != except && r.ProductID != "" {
			used = append(used, r.ProductID)
		}
	}
	return used
}

// ValidItems filtra las filas enviables: producto no vacío y cantidad >= 1.
func (d *BulkDraft) ValidItems() []Row {
	var out []Row
	for _, r := range d.Rows {
		if r.ProductID != "" && r.Quantity >= 1 {
			out = append(out, r)
		}
	}
	return out
}

// Validate rechaza el envío antes de emitir petición alguna si:
// falta la sucursal, no queda ninguna fila válida, o un producto se repite
// entre filas (la deshabilitación de la UI no alcanza: el invariante se
// verifica también aquí).
func (d *BulkDraft) Validate() error {
	if d.BranchID == "" {
		return domain.ErrBranchRequired
	}
	seen := make(map[string]bool, len(d.Rows))
	for _, r := range d.Rows {
		if r.ProductID == "" {
			continue
		}
		if seen[r.ProductID] {
			return fmt.Errorf("producto %s: %w", r.ProductID, domain.ErrDuplicateProduct)
		}
		seen[r.ProductID] = true
	}
	if len(d.ValidItems()) == 0 {
		return domain.ErrNoValidItems
	}
	return nil
}

// ProductQuantity línea de la carga batch tal como la espera el content API.
type ProductQuantity struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// BulkPayload carga del endpoint batch /stocks/bulk-update. Es UNA petición;
// la atomicidad todo-o-nada es responsabilidad del backend.
type BulkPayload struct {
	BranchID string            `json:"branchId"`
	Products []ProductQuantity `json:"products"`
}

// Payload valida el borrador y arma la carga batch con las filas válidas.
func (d *BulkDraft) Payload() (*BulkPayload, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	valid := d.ValidItems()
	products := make([]ProductQuantity, 0, len(valid))
	for _, r := range valid {
		products = append(products, ProductQuantity{ProductID: r.ProductID, Quantity: r.Quantity})
	}
	return &BulkPayload{BranchID: d.BranchID, Products: products}, nil
}
