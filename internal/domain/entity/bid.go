package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una oferta.
const (
	BidStatusPending  = "Pending"
	BidStatusApproved = "Approved"
	BidStatusRejected = "Rejected"
	BidStatusCanceled = "Canceled"
)

// Bid una oferta de un vendor sobre una licitación.
type Bid struct {
	ID               string
	TenderID         string
	VendorID         string // User.ID del oferente
	Amount           decimal.Decimal
	Proposal         string // propuesta técnica, mínimo 50 caracteres
	DeliveryTimeDays int
	Status           string // Pending, Approved, Rejected, Canceled
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BidReview retroalimentación del creador de la licitación sobre una oferta.
type BidReview struct {
	ID          string
	BidID       string
	AuthorID    string
	Description string
	CreatedAt   time.Time
}
