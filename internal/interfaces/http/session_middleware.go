package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/dto"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/session"
)

// SessionGuard exige una sesión activa. Sin sesión responde 401 con la ruta de
// relogin apuntando de vuelta a la URL interrumpida, para retomarla tras el
// login.
func SessionGuard(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sessions.Current() == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SESSION_EXPIRED",
				Message: "se requiere una sesión activa",
				Login:   loginRedirect(c),
			})
		}
		return c.Next()
	}
}
