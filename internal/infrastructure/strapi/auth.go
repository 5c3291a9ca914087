package strapi

import (
	"context"
	"net/http"

	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
)

// AuthResponse respuesta de los endpoints de autenticación del content API.
// El campo del usuario se llama "user" en la API documentada.
type AuthResponse struct {
	JWT  string      `json:"jwt"`
	User entity.User `json:"user"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Login autentica con usuario/contraseña contra /auth/local. Va sin bearer
// token: un token vencido no debe interferir con el relogin.
func (c *Client) Login(ctx context.Context, identifier, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/local", "", loginRequest{
		Identifier: identifier,
		Password:   password,
	}, false, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ProviderCallback canjea el token del proveedor OAuth por un JWT del content
// API: GET /auth/{provider}/callback con la query tal cual llegó del proveedor.
func (c *Client) ProviderCallback(ctx context.Context, provider, rawQuery string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodGet, "/auth/"+provider+"/callback", rawQuery, nil, false, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
