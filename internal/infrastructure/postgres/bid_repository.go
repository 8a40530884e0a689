package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcastro/licita-pro/internal/domain"
	"github.com/jcastro/licita-pro/internal/domain/entity"
	"github.com/jcastro/licita-pro/internal/domain/repository"
)

var _ repository.BidRepository = (*BidRepo)(nil)

// BidRepo implementación del puerto BidRepository sobre PostgreSQL.
type BidRepo struct {
	pool *pgxpool.Pool
}

// NewBidRepository construye el adaptador de persistencia para ofertas.
func NewBidRepository(pool *pgxpool.Pool) *BidRepo {
	return &BidRepo{pool: pool}
}

// Create persiste una nueva oferta.
func (r *BidRepo) Create(ctx context.Context, b *entity.Bid) error {
	const query = `
		INSERT INTO bids (id, tender_id, vendor_id, amount, proposal, delivery_time_days, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		b.ID, b.TenderID, b.VendorID, b.Amount, b.Proposal, b.DeliveryTimeDays,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bid: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta por ID. (nil, nil) si no existe.
func (r *BidRepo) GetByID(ctx context.Context, id string) (*entity.Bid, error) {
	const query = `
		SELECT id, tender_id, vendor_id, amount, proposal, delivery_time_days, status, created_at, updated_at
		FROM bids WHERE id = $1`
	var b entity.Bid
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.TenderID, &b.VendorID, &b.Amount, &b.Proposal,
		&b.DeliveryTimeDays, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bid by id: %w", err)
	}
	return &b, nil
}

// ListByTender lista las ofertas de una licitación con paginación.
func (r *BidRepo) ListByTender(ctx context.Context, tenderID string, limit, offset int) ([]*entity.Bid, error) {
	const query = `
		SELECT id, tender_id, vendor_id, amount, proposal, delivery_time_days, status, created_at, updated_at
		FROM bids WHERE tender_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, tenderID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bid
	for rows.Next() {
		var b entity.Bid
		if err := rows.Scan(&b.ID, &b.TenderID, &b.VendorID, &b.Amount, &b.Proposal,
			&b.DeliveryTimeDays, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una oferta.
func (r *BidRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bids SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update bid status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateReview persiste una review sobre una oferta.
func (r *BidRepo) CreateReview(ctx context.Context, rv *entity.BidReview) error {
	const query = `
		INSERT INTO bid_reviews (id, bid_id, author_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query, rv.ID, rv.BidID, rv.AuthorID, rv.Description, rv.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert bid review: %w", err)
	}
	return nil
}

// ListReviews lista las reviews de una oferta, más recientes primero.
func (r *BidRepo) ListReviews(ctx context.Context, bidID string) ([]*entity.BidReview, error) {
	const query = `
		SELECT id, bid_id, author_id, description, created_at
		FROM bid_reviews WHERE bid_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, bidID)
	if err != nil {
		return nil, fmt.Errorf("list bid reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.BidReview
	for rows.Next() {
		var rv entity.BidReview
		if err := rows.Scan(&rv.ID, &rv.BidID, &rv.AuthorID, &rv.Description, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bid review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}
