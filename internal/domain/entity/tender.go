package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una licitación.
const (
	TenderStatusCreated   = "Created"
	TenderStatusPublished = "Published"
	TenderStatusClosed    = "Closed"
)

// Tipos de servicio licitables.
const (
	ServiceTypeConstruction = "Construction"
	ServiceTypeDelivery     = "Delivery"
	ServiceTypeManufacture  = "Manufacture"
)

// Tender una licitación publicada por un tender-creator.
type Tender struct {
	ID          string
	Name        string
	Description string
	ServiceType string          // Construction, Delivery, Manufacture
	Status      string          // Created, Published, Closed
	Budget      decimal.Decimal // presupuesto máximo
	Deadline    time.Time       // fecha límite para recibir ofertas
	CreatorID   string          // User.ID del creador
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
