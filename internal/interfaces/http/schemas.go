package http

import (
	"time"

	"github.com/jcastro/licita-pro/internal/domain/entity"
	"github.com/jcastro/licita-pro/pkg/validate"
)

// Nombres de los esquemas de validación, uno por forma de endpoint.
const (
	SchemaTenderCreate = "tender-create"
	SchemaTenderUpdate = "tender-update"
	SchemaBidCreate    = "bid-create"
	SchemaBidReview    = "bid-review"
	SchemaPagination   = "pagination"
)

// Schemas registra los esquemas de validación de la API. Se llama una vez en
// el wiring de rutas; un nombre duplicado hace panic en el arranque.
func Schemas() *validate.Registry {
	reg := validate.NewRegistry()

	reg.Register(validate.NewSchema(SchemaTenderCreate,
		validate.NewField("name",
			validate.RequiredString("name is required"),
			validate.MaxLen(100, "name must be at most 100 characters"),
		),
		validate.NewField("description",
			validate.RequiredString("description is required"),
			validate.MaxLen(500, "description must be at most 500 characters"),
		),
		validate.NewField("service_type",
			validate.RequiredString("service_type is required"),
			validate.OneOf("service_type must be one of Construction, Delivery, Manufacture",
				entity.ServiceTypeConstruction, entity.ServiceTypeDelivery, entity.ServiceTypeManufacture),
		),
		validate.NewField("budget",
			validate.Required("budget is required"),
			validate.Numeric("budget must be a number"),
		),
		validate.NewField("deadline",
			validate.RequiredString("deadline is required"),
			validate.DateISO(time.RFC3339, "deadline must be a valid RFC3339 timestamp"),
		),
	))

	reg.Register(validate.NewSchema(SchemaTenderUpdate,
		validate.OptionalField("name",
			validate.MaxLen(100, "name must be at most 100 characters"),
		),
		validate.OptionalField("description",
			validate.MaxLen(500, "description must be at most 500 characters"),
		),
		validate.OptionalField("service_type",
			validate.OneOf("service_type must be one of Construction, Delivery, Manufacture",
				entity.ServiceTypeConstruction, entity.ServiceTypeDelivery, entity.ServiceTypeManufacture),
		),
		validate.OptionalField("status",
			validate.OneOf("status must be one of Created, Published, Closed",
				entity.TenderStatusCreated, entity.TenderStatusPublished, entity.TenderStatusClosed),
		),
		validate.OptionalField("budget",
			validate.Numeric("budget must be a number"),
		),
		validate.OptionalField("deadline",
			validate.DateISO(time.RFC3339, "deadline must be a valid RFC3339 timestamp"),
		),
	))

	reg.Register(validate.NewSchema(SchemaBidCreate,
		validate.NewField("amount",
			validate.Required("amount is required"),
			validate.Numeric("amount must be a number"),
		),
		validate.NewField("proposal",
			validate.RequiredString("proposal is required"),
			validate.MinLen(50, "proposal must be at least 50 characters"),
		),
		validate.NewField("delivery_time",
			validate.IntRange(1, 3650, "delivery_time must be a positive integer"),
		),
	))

	reg.Register(validate.NewSchema(SchemaBidReview,
		validate.NewField("description",
			validate.RequiredString("description is required"),
			validate.MaxLen(1000, "description must be at most 1000 characters"),
		),
	))

	// Paginación: todos los campos opcionales; sin query params no hay errores.
	reg.Register(validate.NewSchema(SchemaPagination,
		validate.OptionalField("page",
			validate.IntRange(1, 1_000_000, "page must be an integer greater than or equal to 1"),
		),
		validate.OptionalField("limit",
			validate.IntRange(1, 100, "limit must be an integer between 1 and 100"),
		),
		validate.OptionalField("sort",
			validate.OneOf("sort must be one of created_at, name, status",
				"created_at", "name", "status"),
		),
		validate.OptionalField("order",
			validate.OneOf("order must be asc or desc", "asc", "desc"),
		),
	))

	return reg
}
