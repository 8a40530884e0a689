package repository

import "context"

// DashboardSummary agregados de solo lectura para el dashboard administrativo.
type DashboardSummary struct {
	TendersByStatus map[string]int
	BidsByStatus    map[string]int
	OpenTenders     int
	PendingBids     int
	ActiveVendors   int
}

// StatsRepository puerto de consultas agregadas (solo lectura, presentacional).
type StatsRepository interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
