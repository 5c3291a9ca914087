package movement

import (
	"fmt"

	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
)

// Tipos de movimiento de inventario.
const (
	KindBuy                 = "buy"                  // compra a proveedor: entra a destino
	KindDeliveryToBranch    = "delivery_to_branch"   // transferencia entre sucursales
	KindInventoryAdjustment = "inventory_adjustment" // ajuste de inventario sobre origen
	KindDecrease            = "decrease"             // merma / baja sobre origen
)

// LocationRequirements indica qué sucursales exige un tipo de movimiento.
type LocationRequirements struct {
	Origin      bool
	Destination bool
}

// Requires devuelve los campos de ubicación obligatorios para cada tipo:
//
//	buy                   -> destino
//	delivery_to_branch    -> origen y destino
//	inventory_adjustment  -> origen
//	decrease              -> origen
func Requires(kind string) (LocationRequirements, error) {
	switch kind {
	case KindBuy:
		return LocationRequirements{Destination: true}, nil
	case KindDeliveryToBranch:
		return LocationRequirements{Origin: true, Destination: true}, nil
	case KindInventoryAdjustment, KindDecrease:
		return LocationRequirements{Origin: true}, nil
	default:
		return LocationRequirements{}, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}
}

// ItemPayload línea de la carga de creación tal como la espera el content API.
type ItemPayload struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// CreatePayload carga de creación de un movimiento. El tipo viaja como "type"
// y el estado siempre sale como requested; los campos de ubicación no exigidos
// por el tipo se omiten del JSON.
type CreatePayload struct {
	Date        string        `json:"date"`
	Kind        string        `json:"type"`
	State       string        `json:"state"`
	Origin      string        `json:"origin,omitempty"`
	Destination string        `json:"destination,omitempty"`
	Items       []ItemPayload `json:"items"`
}

// BuildCreatePayload valida el borrador y arma la carga de creación.
// Reglas (solo presencia de campos, §validación del flujo):
//   - el tipo debe ser uno de los cuatro conocidos
//   - las ubicaciones exigidas por el tipo deben estar presentes; las demás se descartan
//   - debe haber al menos un ítem, y cada ítem necesita producto y cantidad >= 1
//   - el estado del llamador se ignora: la creación siempre nace en requested
func BuildCreatePayload(d Draft) (*CreatePayload, error) {
	req, err := Requires(d.Kind)
	if err != nil {
		return nil, err
	}
	if req.Origin && d.OriginID == "" {
		return nil, domain.ErrOriginRequired
	}
	if req.Destination && d.DestinationID == "" {
		return nil, domain.ErrDestinationRequired
	}
	if len(d.Items) == 0 {
		return nil, domain.ErrNoValidItems
	}

	items := make([]ItemPayload, 0, len(d.Items))
	for i, row := range d.Items {
		if row.ProductID == "" {
			return nil, fmt.Errorf("ítem %d sin producto: %w", i, domain.ErrInvalidInput)
		}
		if row.Quantity < 1 {
			return nil, fmt.Errorf("ítem %d con cantidad %d: %w", i, row.Quantity, domain.ErrInvalidInput)
		}
		items = append(items, ItemPayload{Product: row.ProductID, Quantity: row.Quantity})
	}

	p := &CreatePayload{
		Date:  d.Date,
		Kind:  d.Kind,
		State: entity.MovementStateRequested,
		Items: items,
	}
	// Solo se incluyen las ubicaciones que el tipo exige; suministrar las otras
	// no es error, simplemente no viajan.
	if req.Origin {
		p.Origin = d.OriginID
	}
	if req.Destination {
		p.Destination = d.DestinationID
	}
	return p, nil
}
