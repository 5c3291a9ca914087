package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/dto"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/strapi"
)

// Locals key para la ruta de login que acompaña los errores de sesión.
const LocalLoginPath = "login_path"

// WithLoginPath deja la ruta de login en Locals para que los errores de sesión
// puedan señalar adónde reloguearse.
func WithLoginPath(loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalLoginPath, loginPath)
		return c.Next()
	}
}

// loginRedirect arma la ruta de relogin con returnTo hacia la URL interrumpida.
func loginRedirect(c *fiber.Ctx) string {
	loginPath, _ := c.Locals(LocalLoginPath).(string)
	if loginPath == "" {
		return ""
	}
	return loginPath + "?returnTo=" + url.QueryEscape(c.OriginalURL())
}

// respondError traduce un error de dominio a su respuesta HTTP.
// Validaciones 400, no-encontrado 404, conflictos de estado o de envío 409,
// sesión 401 con la ruta de relogin; los errores del content API conservan su
// status original.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrNoSession):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "SESSION_EXPIRED", Message: err.Error(), Login: loginRedirect(c),
		})
	case errors.Is(err, domain.ErrMovementConfirmed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFIRMED", Message: err.Error()})
	case errors.Is(err, domain.ErrSubmitInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMIT_IN_FLIGHT", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrDraftNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrBranchRequired),
		errors.Is(err, domain.ErrOriginRequired),
		errors.Is(err, domain.ErrDestinationRequired),
		errors.Is(err, domain.ErrBrandRequired),
		errors.Is(err, domain.ErrMainImageRequired),
		errors.Is(err, domain.ErrNoValidItems),
		errors.Is(err, domain.ErrDuplicateProduct),
		errors.Is(err, domain.ErrUnknownKind),
		errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	var apiErr *strapi.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: apiErr.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
