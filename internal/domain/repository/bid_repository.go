package repository

import (
	"context"

	"github.com/jcastro/licita-pro/internal/domain/entity"
)

// BidRepository puerto de persistencia para ofertas y sus reviews.
type BidRepository interface {
	Create(ctx context.Context, b *entity.Bid) error
	GetByID(ctx context.Context, id string) (*entity.Bid, error)
	ListByTender(ctx context.Context, tenderID string, limit, offset int) ([]*entity.Bid, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CreateReview(ctx context.Context, r *entity.BidReview) error
	ListReviews(ctx context.Context, bidID string) ([]*entity.BidReview, error)
}
