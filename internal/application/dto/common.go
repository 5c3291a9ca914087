package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Login ruta de relogin con returnTo; solo presente en errores de sesión.
	Login string `json:"login,omitempty"`
}
