package entity

import "github.com/shopspring/decimal"

// Media referencia a un archivo subido al content API (solo los campos que consume el dashboard).
type Media struct {
	ID         int    `json:"id,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	Name       string `json:"name,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Product representa un producto del catálogo. No puede persistirse sin marca
// ni sin imagen principal.
type Product struct {
	ID               int             `json:"id,omitempty"`
	DocumentID       string          `json:"documentId,omitempty"`
	Title            string          `json:"title"`
	Slug             string          `json:"slug"`
	ShortDescription string          `json:"shortDescription"`
	PriceSell        decimal.Decimal `json:"priceSell"`
	PriceCost        decimal.Decimal `json:"priceCost"`
	UnitsPerPack     int             `json:"unitsPerPack"`
	IsAvailable      bool            `json:"isAvailable"`
	Brand            *Brand          `json:"brand,omitempty"`
	Categories       []Category      `json:"categories,omitempty"`
	MainImage        *Media          `json:"mainImage,omitempty"`
}

// Ref devuelve el identificador a usar en relaciones.
func (p *Product) Ref() string {
	if p == nil {
		return ""
	}
	return refOf(p.DocumentID, p.ID)
}
