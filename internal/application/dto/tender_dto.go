package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTenderRequest cuerpo para crear una licitación.
// La forma ya pasó por el esquema "tender-create" al llegar aquí.
type CreateTenderRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ServiceType string          `json:"service_type"`
	Budget      decimal.Decimal `json:"budget"`
	Deadline    time.Time       `json:"deadline"`
}

// UpdateTenderRequest campos opcionales a actualizar (puntero = enviado).
type UpdateTenderRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	ServiceType *string          `json:"service_type"`
	Status      *string          `json:"status"`
	Budget      *decimal.Decimal `json:"budget"`
	Deadline    *time.Time       `json:"deadline"`
}

// TenderResponse representación pública de una licitación.
type TenderResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ServiceType string          `json:"service_type"`
	Status      string          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	Deadline    time.Time       `json:"deadline"`
	CreatorID   string          `json:"creator_id"`
	Version     int             `json:"version"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TenderListResponse página de licitaciones.
type TenderListResponse struct {
	Items []TenderResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
