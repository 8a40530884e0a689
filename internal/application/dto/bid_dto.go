package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBidRequest cuerpo para ofertar sobre una licitación.
// La forma ya pasó por el esquema "bid-create" al llegar aquí.
type CreateBidRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	Proposal     string          `json:"proposal"`
	DeliveryTime int             `json:"delivery_time"` // días
}

// UpdateBidStatusRequest cambio de estado de una oferta.
type UpdateBidStatusRequest struct {
	Status string `json:"status"` // Approved, Rejected, Canceled
}

// CreateBidReviewRequest cuerpo de una review sobre una oferta.
type CreateBidReviewRequest struct {
	Description string `json:"description"`
}

// BidResponse representación pública de una oferta.
type BidResponse struct {
	ID           string          `json:"id"`
	TenderID     string          `json:"tender_id"`
	VendorID     string          `json:"vendor_id"`
	Amount       decimal.Decimal `json:"amount"`
	Proposal     string          `json:"proposal"`
	DeliveryTime int             `json:"delivery_time"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BidListResponse página de ofertas de una licitación.
type BidListResponse struct {
	Items []BidResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// BidReviewResponse representación pública de una review.
type BidReviewResponse struct {
	ID          string    `json:"id"`
	BidID       string    `json:"bid_id"`
	AuthorID    string    `json:"author_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
