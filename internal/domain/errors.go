package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los de autenticación y
// autorización son terminales: el gate rechaza el request de inmediato,
// nunca reintenta. Un fallo de infraestructura NUNCA se mapea a estos
// sentinelas: se propaga envuelto y sale como 500.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrAccountDeactivated = errors.New("cuenta desactivada")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrTenderClosed       = errors.New("la licitación ya está cerrada")
	ErrDuplicate          = errors.New("recurso duplicado")
)
