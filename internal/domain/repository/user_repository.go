package repository

import (
	"context"

	"github.com/jcastro/licita-pro/internal/domain/entity"
)

// UserRepository puerto de resolución de identidad (DIP). El gate de
// autenticación depende de esta interfaz, no del pool concreto, para poder
// sustituir un store falso en tests.
//
// FindByID recibe el context del request: si el cliente corta la conexión a
// mitad del lookup, la consulta se cancela sin efectos (no se adjunta
// identidad parcial). (nil, nil) significa cero filas; un error no-nil es
// fallo de infraestructura, nunca "no encontrado".
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
