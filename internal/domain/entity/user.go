package entity

// User usuario autenticado contra el content API (campos que consume el dashboard).
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
