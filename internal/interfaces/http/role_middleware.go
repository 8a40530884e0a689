package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/licita-pro/internal/application/dto"
	"github.com/jcastro/licita-pro/internal/domain/entity"
)

// RequireRoles gate de autorización. Cada ruta declara su set de roles
// permitidos en el wiring; no hay jerarquía implícita (admin NO pasa por una
// ruta solo-vendor: si debe entrar, la ruta lo lista).
//
// Un set vacío haría la ruta inalcanzable para cualquier identidad, así que es
// error de configuración: panic en el arranque, no un 403 en runtime. Debe
// usarse DESPUÉS de AuthMiddleware; si no hay identidad en el contexto se
// responde 401 (el fallo de autenticación tiene precedencia sobre el de
// autorización).
func RequireRoles(roles ...string) fiber.Handler {
	if len(roles) == 0 {
		panic("http: RequireRoles sin roles — la ruta sería inalcanzable")
	}
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		if !entity.ValidRole(r) {
			panic(fmt.Sprintf("http: rol desconocido %q en el wiring de rutas", r))
		}
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError(MsgNotAuthorized))
		}
		if _, ok := allowed[user.Role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.NewError(
				fmt.Sprintf("User role %s is not authorized to access this route", user.Role),
			))
		}
		return c.Next()
	}
}
