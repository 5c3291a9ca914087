package entity

// Category representa una categoría de producto.
type Category struct {
	ID         int    `json:"id,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

// Ref devuelve el identificador a usar en relaciones.
func (c *Category) Ref() string {
	if c == nil {
		return ""
	}
	return refOf(c.DocumentID, c.ID)
}
