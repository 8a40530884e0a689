package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/licita-pro/internal/application/dto"
	"github.com/jcastro/licita-pro/internal/domain/entity"
	"github.com/jcastro/licita-pro/pkg/logger"
	"github.com/jcastro/licita-pro/pkg/token"
)

// LocalUser clave de c.Locals donde el gate deja la identidad autenticada.
const LocalUser = "auth_user"

// Mensajes de error del gate. Son contrato con el frontend: texto exacto.
// Token ausente y token inválido comparten mensaje a propósito — hacia afuera
// son indistinguibles (anti enumeración de cuentas); el log sí los distingue.
const (
	MsgNotAuthorized      = "Not authorized to access this route"
	MsgUserNotFound       = "User not found"
	MsgAccountDeactivated = "Account is deactivated"
	MsgServerError        = "Server error"
)

// identityStore contrato mínimo que el gate necesita para resolver identidad.
// El uso de interfaz local permite sustituir un store falso en tests.
type identityStore interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthMiddleware gate de autenticación: verifica el Bearer token y resuelve la
// identidad contra la base en CADA request (sin cache, para que la
// desactivación de cuenta aplique de inmediato).
//
// Mapeo de fallos:
//   - header ausente o esquema malformado      -> 401 MsgNotAuthorized
//   - firma/estructura/expiración inválida     -> 401 MsgNotAuthorized
//   - subject sin fila en users                -> 401 MsgUserNotFound
//   - is_active = false                        -> 401 MsgAccountDeactivated
//   - fallo del store (pool agotado, red, etc) -> 500 MsgServerError
//
// El 500 nunca se confunde con 401: credencial inválida y base caída son
// problemas distintos y el que llama debe poder diferenciarlos.
func AuthMiddleware(secret string, users identityStore, log *logger.Logger) fiber.Handler {
	authLog := log.Component("auth")
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError(MsgNotAuthorized))
		}

		subject, _, err := token.Parse(secret, tokenString)
		if err != nil {
			authLog.Debug().Err(err).Str("route", c.Path()).Msg("token rechazado")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError(MsgNotAuthorized))
		}

		// Lookup con el context del request: si el cliente corta la conexión,
		// la consulta se cancela y no se adjunta identidad parcial.
		user, err := users.FindByID(c.Context(), subject)
		if err != nil {
			authLog.Error().Err(err).
				Str("route", c.Path()).
				Str("subject", subject).
				Msg("fallo de infraestructura resolviendo identidad")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError(MsgServerError))
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError(MsgUserNotFound))
		}
		if !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError(MsgAccountDeactivated))
		}

		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// bearerToken extrae el token del header Authorization. El esquema es el
// literal "Bearer" seguido de un espacio; cualquier otra forma se rechaza.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}

// GetUser devuelve la identidad autenticada del contexto, o nil si el gate de
// autenticación no corrió o no dejó identidad.
func GetUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetRole devuelve el rol de la identidad autenticada ("" si no hay identidad).
func GetRole(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.Role
	}
	return ""
}
