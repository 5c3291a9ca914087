package entity

// Brand representa una marca de producto. El slug se deriva del nombre al crear
// y nunca se reescribe en silencio al editar.
type Brand struct {
	ID         int    `json:"id,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

// Ref devuelve el identificador a usar en relaciones.
func (b *Brand) Ref() string {
	if b == nil {
		return ""
	}
	return refOf(b.DocumentID, b.ID)
}
