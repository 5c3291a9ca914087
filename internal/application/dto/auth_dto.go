package dto

import "github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// SessionResponse usuario de la sesión activa.
type SessionResponse struct {
	User entity.User `json:"user"`
}
