package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ccl-sistemas/inventario-api/internal/application/dto"
	pkgjwt "github.com/ccl-sistemas/inventario-api/pkg/jwt"
)

// Local key para el subject del token en Fiber.
const LocalUsuario = "usuario"

// AuthMiddleware valida el Bearer Token JWT (firma, expiración, issuer y audience)
// y deja el subject en c.Locals. El motivo exacto del rechazo se registra en el log;
// al cliente solo se le devuelve un mensaje genérico.
func AuthMiddleware(jwtOpt pkgjwt.Options) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		usuario, err := pkgjwt.Parse(jwtOpt, tokenString)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("token rechazado")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsuario, usuario)
		return c.Next()
	}
}

// GetUsuario devuelve el subject autenticado del contexto (después del middleware de auth).
func GetUsuario(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuario)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
