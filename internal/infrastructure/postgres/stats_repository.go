package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcastro/licita-pro/internal/domain/entity"
	"github.com/jcastro/licita-pro/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura para el dashboard.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// Summary agrega conteos por estado de licitaciones y ofertas y el número de
// vendors activos. Tres queries cortas sobre el mismo pool; presentacional.
func (r *StatsRepo) Summary(ctx context.Context) (*repository.DashboardSummary, error) {
	out := &repository.DashboardSummary{
		TendersByStatus: make(map[string]int),
		BidsByStatus:    make(map[string]int),
	}

	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM tenders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("stats tenders: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan tender stats: %w", err)
		}
		out.TendersByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stats tenders: %w", err)
	}
	out.OpenTenders = out.TendersByStatus[entity.TenderStatusPublished]

	rows, err = r.pool.Query(ctx, `SELECT status, COUNT(*) FROM bids GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("stats bids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan bid stats: %w", err)
		}
		out.BidsByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stats bids: %w", err)
	}
	out.PendingBids = out.BidsByStatus[entity.BidStatusPending]

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1 AND is_active`, entity.RoleVendor,
	).Scan(&out.ActiveVendors)
	if err != nil {
		return nil, fmt.Errorf("stats vendors: %w", err)
	}

	return out, nil
}
