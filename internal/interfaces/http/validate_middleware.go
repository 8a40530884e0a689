package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/licita-pro/internal/application/dto"
	"github.com/jcastro/licita-pro/pkg/validate"
)

// ValidateBody gate de validación para el cuerpo JSON del request. Corre
// después de los gates de auth; si alguna regla falla responde 400 con el set
// COMPLETO de errores acumulados, si no, deja pasar el request sin tocarlo.
func ValidateBody(schema validate.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := make(map[string]interface{})
		if body := c.Body(); len(body) > 0 {
			if err := json.Unmarshal(body, &payload); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError(
					[]validate.FieldError{{Field: "body", Message: "must be a valid JSON object"}},
				))
			}
		}
		// Cuerpo ausente: se evalúa contra el payload vacío, las reglas
		// required del esquema reportan campo por campo.
		if result := schema.Evaluate(payload); !result.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError(result.Errors))
		}
		return c.Next()
	}
}

// ValidateQuery igual que ValidateBody pero sobre los query params. Los valores
// llegan como string; las reglas numéricas hacen la coerción.
func ValidateQuery(schema validate.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		queries := c.Queries()
		payload := make(map[string]interface{}, len(queries))
		for k, v := range queries {
			payload[k] = v
		}
		if result := schema.Evaluate(payload); !result.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError(result.Errors))
		}
		return c.Next()
	}
}
