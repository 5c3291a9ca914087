package movement

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
)

// Campos editables de una fila de ítems.
const (
	ItemFieldProduct  = "productId"
	ItemFieldQuantity = "quantity"
)

// ItemRow fila del editor de ítems: producto y cantidad en estado de borrador.
// Un producto vacío o una cantidad < 1 son estados de borrador válidos que
// recién fallan al enviar.
type ItemRow struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Draft borrador local de un movimiento: lo que el formulario mantiene antes de
// enviar. Si MovementRef no está vacío, el borrador edita un movimiento
// existente y solo su estado es enviable.
type Draft struct {
	MovementRef   string    `json:"movementRef,omitempty"`
	Date          string    `json:"date"`
	Kind          string    `json:"kind"`
	State         string    `json:"state"`
	OriginID      string    `json:"originId,omitempty"`
	DestinationID string    `json:"destinationId,omitempty"`
	Items         []ItemRow `json:"items"`
}

// DraftFrom construye el borrador de edición a partir de un movimiento cargado,
// resolviendo las relaciones a su referencia (documentId o id).
func DraftFrom(m *entity.Movement) Draft {
	d := Draft{
		MovementRef:   m.Ref(),
		Date:          m.Date,
		Kind:          m.Kind,
		State:         m.State,
		OriginID:      m.Origin.Ref(),
		DestinationID: m.Destination.Ref(),
	}
	for _, it := range m.Items {
		d.Items = append(d.Items, ItemRow{ProductID: it.Product.Ref(), Quantity: it.QuantityTotalItems})
	}
	return d
}

// ── Editor de ítems ───────────────────────────────────────────────────────────
// Las tres operaciones son puras: devuelven una secuencia nueva y dejan la
// original intacta, para re-render consistente y deshacer barato.

// AddItem agrega una fila vacía {"", 1} al final.
func AddItem(items []ItemRow) []ItemRow {
	out := make([]ItemRow, 0, len(items)+1)
	out = append(out, items...)
	return append(out, ItemRow{ProductID: "", Quantity: 1})
}

// RemoveItem quita la fila en la posición i conservando el orden del resto.
func RemoveItem(items []ItemRow, i int) ([]ItemRow, error) {
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("índice %d fuera de rango: %w", i, domain.ErrInvalidInput)
	}
	out := make([]ItemRow, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), nil
}

// UpdateItem reemplaza un campo de una fila. La cantidad se coerciona a número;
// valores < 1 se aceptan como borrador.
func UpdateItem(items []ItemRow, i int, field string, value any) ([]ItemRow, error) {
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("índice %d fuera de rango: %w", i, domain.ErrInvalidInput)
	}
	row := items[i]
	switch field {
	case ItemFieldProduct:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("productId debe ser string: %w", domain.ErrInvalidInput)
		}
		row.ProductID = s
	case ItemFieldQuantity:
		q, err := coerceQuantity(value)
		if err != nil {
			return nil, err
		}
		row.Quantity = q
	default:
		return nil, fmt.Errorf("campo %q desconocido: %w", field, domain.ErrInvalidInput)
	}

	out := make([]ItemRow, len(items))
	copy(out, items)
	out[i] = row
	return out, nil
}

// coerceQuantity acepta los tipos con los que la cantidad puede llegar por JSON.
func coerceQuantity(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("cantidad %q no numérica: %w", v, domain.ErrInvalidInput)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cantidad de tipo %T: %w", value, domain.ErrInvalidInput)
	}
}

// AddItem y compañía como métodos del borrador, para el registro de borradores.

// AddItem agrega una fila vacía al borrador.
func (d *Draft) AddItem() {
	d.Items = AddItem(d.Items)
}

// RemoveItem quita la fila i del borrador.
func (d *Draft) RemoveItem(i int) error {
	items, err := RemoveItem(d.Items, i)
	if err != nil {
		return err
	}
	d.Items = items
	return nil
}

// UpdateItem actualiza un campo de la fila i del borrador.
func (d *Draft) UpdateItem(i int, field string, value any) error {
	items, err := UpdateItem(d.Items, i, field, value)
	if err != nil {
		return err
	}
	d.Items = items
	return nil
}
