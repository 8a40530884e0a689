package dto

import "github.com/jcastro/licita-pro/pkg/validate"

// ErrorResponse cuerpo de error HTTP para fallos de autenticación, autorización
// e infraestructura: {"success": false, "error": "<mensaje>"}.
// El dashboard consume esta forma tal cual; es contrato.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewError construye un ErrorResponse (Success siempre false).
func NewError(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// ValidationErrorResponse cuerpo de error HTTP 400 del pipeline de validación:
// el set COMPLETO de errores acumulados va en una sola respuesta, el cliente
// no necesita varios round trips para descubrir todos los campos con problema.
type ValidationErrorResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Errors  []validate.FieldError `json:"errors"`
}

// NewValidationError construye la respuesta 400 con los errores acumulados.
func NewValidationError(errs []validate.FieldError) ValidationErrorResponse {
	return ValidationErrorResponse{Success: false, Message: "Validation failed", Errors: errs}
}

// PageRequest paginación para listados. Todos los campos opcionales.
type PageRequest struct {
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
	Sort  string `query:"sort"`
	Order string `query:"order"`
}

// DefaultPage aplica valores por defecto y acota el límite.
func (p *PageRequest) DefaultPage() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Order == "" {
		p.Order = "desc"
	}
}

// Offset calcula el offset SQL a partir de page/limit.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total,omitempty"`
}
