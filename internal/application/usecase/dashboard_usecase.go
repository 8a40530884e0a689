package usecase

import (
	"context"

	"github.com/jcastro/licita-pro/internal/application/dto"
	"github.com/jcastro/licita-pro/internal/domain/repository"
)

// DashboardUseCase arma el resumen del dashboard administrativo.
type DashboardUseCase struct {
	stats repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

// GetSummary devuelve los agregados de licitaciones, ofertas y vendors.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	s, err := uc.stats.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryResponse{
		TendersByStatus: s.TendersByStatus,
		BidsByStatus:    s.BidsByStatus,
		OpenTenders:     s.OpenTenders,
		PendingBids:     s.PendingBids,
		ActiveVendors:   s.ActiveVendors,
	}, nil
}
