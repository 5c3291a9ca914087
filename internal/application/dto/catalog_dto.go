package dto

import "github.com/shopspring/decimal"

// BranchPayload body para crear/editar sucursales.
type BranchPayload struct {
	Name    string `json:"name"`
	Type    string `json:"type"` // local | deposit
	Address string `json:"address"`
}

// BrandPayload body para crear/editar marcas. El slug es opcional: al crear se
// deriva del nombre si viene vacío; al editar, un slug vacío no viaja y por lo
// tanto nunca pisa el existente.
type BrandPayload struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// CategoryPayload body para crear/editar categorías.
type CategoryPayload struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// ProductPayload body para crear/editar productos. Las relaciones viajan como
// referencia (documentId o id numérico en string).
type ProductPayload struct {
	Title            string          `json:"title"`
	Slug             string          `json:"slug,omitempty"`
	ShortDescription string          `json:"shortDescription"`
	PriceSell        decimal.Decimal `json:"priceSell"`
	PriceCost        decimal.Decimal `json:"priceCost"`
	UnitsPerPack     int             `json:"unitsPerPack"`
	IsAvailable      bool            `json:"isAvailable"`
	Brand            string          `json:"brand"`
	Categories       []string        `json:"categories,omitempty"`
	MainImage        string          `json:"mainImage"`
}
