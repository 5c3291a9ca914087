package entity

import "strconv"

// refOf resuelve la referencia de una relación: el content API acepta tanto el
// documentId opaco como el id numérico; se prefiere el documentId.
func refOf(documentID string, id int) string {
	if documentID != "" {
		return documentID
	}
	if id == 0 {
		return ""
	}
	return strconv.Itoa(id)
}
