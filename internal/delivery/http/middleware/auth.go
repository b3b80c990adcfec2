package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seo-microservice/internal/pkg/errors"
	"github.com/seo-microservice/internal/pkg/utils"
)

const operatorRole = "operator"

// RequireOperator guards curation endpoints. The gateway in front of this
// service authenticates the session and forwards the role header; here we
// only check the role is present.
func RequireOperator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("X-User-Role") != operatorRole {
			return utils.SendError(c, errors.ErrForbidden)
		}
		return c.Next()
	}
}
