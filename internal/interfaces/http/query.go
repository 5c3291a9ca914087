package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/strapi"
)

// listParams reenvía la query del llamador (sort, filtros, populate extra...)
// como parámetros del listado; se superponen a los defaults del recurso.
func listParams(c *fiber.Ctx) strapi.Params {
	params := strapi.Params{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		params[k] = append(params[k], string(value))
	})
	return params
}
