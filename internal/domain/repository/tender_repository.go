package repository

import (
	"context"

	"github.com/jcastro/licita-pro/internal/domain/entity"
)

// TenderRepository puerto de persistencia para licitaciones.
type TenderRepository interface {
	Create(ctx context.Context, t *entity.Tender) error
	GetByID(ctx context.Context, id string) (*entity.Tender, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Tender, error)
	Update(ctx context.Context, t *entity.Tender) error
}
