package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/rentcare/rentcare-api/internal/application/dto"
)

// HeaderCronSecret cabecera alternativa para planificadores que no permiten Authorization.
const HeaderCronSecret = "X-Cron-Secret"

// CronSecretMiddleware protege el disparador con un secreto compartido
// (Authorization: Bearer <secreto> o X-Cron-Secret). Con secreto vacío la ruta queda abierta.
func CronSecretMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}
		got := c.Get(HeaderCronSecret)
		if got == "" {
			got, _ = bearerToken(c)
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "secreto del cron inválido"})
		}
		return c.Next()
	}
}
