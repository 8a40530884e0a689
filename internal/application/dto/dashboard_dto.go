package dto

// DashboardSummaryResponse resumen agregado para el dashboard administrativo.
type DashboardSummaryResponse struct {
	TendersByStatus map[string]int `json:"tenders_by_status"`
	BidsByStatus    map[string]int `json:"bids_by_status"`
	OpenTenders     int            `json:"open_tenders"`
	PendingBids     int            `json:"pending_bids"`
	ActiveVendors   int            `json:"active_vendors"`
}
