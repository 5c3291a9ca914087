package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/auth"
	"github.com/FLAVIOALFA/stockflow-admin/internal/application/dto"
)

// AuthHandler maneja las peticiones HTTP del ciclo de vida de la sesión.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión con credenciales
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	user, err := h.uc.Login(c.UserContext(), in.Identifier, in.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SessionResponse{User: *user})
}

// ProviderCallback godoc
// @Summary      Completar login por proveedor externo
// @Tags         auth
// @Produce      json
// @Param        provider  path  string  true  "Proveedor (google, github...)"
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/{provider}/callback [get]
func (h *AuthHandler) ProviderCallback(c *fiber.Ctx) error {
	// La query del callback (access_token y demás) se reenvía cruda al content API.
	user, err := h.uc.HandleProviderCallback(c.UserContext(), c.Params("provider"), string(c.Request().URI().QueryString()))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SessionResponse{User: *user})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Usuario de la sesión activa
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Current()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SessionResponse{User: *user})
}
