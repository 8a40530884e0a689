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

var _ repository.TenderRepository = (*TenderRepo)(nil)

// TenderRepo implementación del puerto TenderRepository sobre PostgreSQL.
type TenderRepo struct {
	pool *pgxpool.Pool
}

// NewTenderRepository construye el adaptador de persistencia para licitaciones.
func NewTenderRepository(pool *pgxpool.Pool) *TenderRepo {
	return &TenderRepo{pool: pool}
}

// Create persiste una nueva licitación.
func (r *TenderRepo) Create(ctx context.Context, t *entity.Tender) error {
	const query = `
		INSERT INTO tenders (id, name, description, service_type, status, budget, deadline, creator_id, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Name, t.Description, t.ServiceType, t.Status, t.Budget, t.Deadline,
		t.CreatorID, t.Version, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tender: %w", err)
	}
	return nil
}

// GetByID obtiene una licitación por ID. (nil, nil) si no existe.
func (r *TenderRepo) GetByID(ctx context.Context, id string) (*entity.Tender, error) {
	const query = `
		SELECT id, name, description, service_type, status, budget, deadline, creator_id, version, created_at, updated_at
		FROM tenders WHERE id = $1`
	var t entity.Tender
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.ServiceType, &t.Status, &t.Budget,
		&t.Deadline, &t.CreatorID, &t.Version, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tender by id: %w", err)
	}
	return &t, nil
}

// List lista licitaciones con paginación, opcionalmente filtradas por estado.
func (r *TenderRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Tender, error) {
	const query = `
		SELECT id, name, description, service_type, status, budget, deadline, creator_id, version, created_at, updated_at
		FROM tenders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tender
	for rows.Next() {
		var t entity.Tender
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.ServiceType, &t.Status,
			&t.Budget, &t.Deadline, &t.CreatorID, &t.Version, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tender: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una licitación incrementando su versión (optimistic lock simple).
func (r *TenderRepo) Update(ctx context.Context, t *entity.Tender) error {
	const query = `
		UPDATE tenders
		SET name = $2, description = $3, service_type = $4, status = $5, budget = $6,
		    deadline = $7, version = version + 1, updated_at = $8
		WHERE id = $1 AND version = $9`
	tag, err := r.pool.Exec(ctx, query,
		t.ID, t.Name, t.Description, t.ServiceType, t.Status, t.Budget,
		t.Deadline, t.UpdatedAt, t.Version,
	)
	if err != nil {
		return fmt.Errorf("update tender: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}
