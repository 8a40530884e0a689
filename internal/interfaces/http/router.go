package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/licita-pro/internal/application/usecase"
	"github.com/jcastro/licita-pro/internal/domain/entity"
	"github.com/jcastro/licita-pro/internal/domain/repository"
	"github.com/jcastro/licita-pro/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TenderUC    *usecase.TenderUseCase
	BidUC       *usecase.BidUseCase
	DashboardUC *usecase.DashboardUseCase
	Users       repository.UserRepository
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API. El wiring es estático: cada ruta
// protegida declara aquí su set de roles permitidos y el esquema que valida
// su cuerpo o query. El orden de la cadena es fijo por request:
// autenticación -> autorización -> validación -> handler, cada etapa corta
// en el primer fallo.
func Router(app *fiber.App, deps RouterDeps) {
	schemas := Schemas()
	api := app.Group("/api")

	// Todas las rutas de negocio requieren Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users, deps.Log))

	tenders := protected.Group("/tenders")
	tenderHandler := NewTenderHandler(deps.TenderUC)
	tenders.Get("/",
		RequireRoles(entity.RoleAdmin, entity.RoleTenderCreator, entity.RoleVendor),
		ValidateQuery(schemas.MustGet(SchemaPagination)),
		tenderHandler.List,
	)
	tenders.Post("/",
		RequireRoles(entity.RoleAdmin, entity.RoleTenderCreator),
		ValidateBody(schemas.MustGet(SchemaTenderCreate)),
		tenderHandler.Create,
	)
	tenders.Get("/:id",
		RequireRoles(entity.RoleAdmin, entity.RoleTenderCreator, entity.RoleVendor),
		tenderHandler.GetByID,
	)
	tenders.Put("/:id",
		RequireRoles(entity.RoleAdmin, entity.RoleTenderCreator),
		ValidateBody(schemas.MustGet(SchemaTenderUpdate)),
		tenderHandler.Update,
	)

	bidHandler := NewBidHandler(deps.BidUC)
	tenders.Get("/:id/bids",
		RequireRoles(entity.RoleAdmin, entity.RoleTenderCreator),
		ValidateQuery(schemas.MustGet(SchemaPagination)),
		bidHandler.ListByTender,
	)
	tenders.Post("/:id/bids",
		RequireRoles(entity.RoleVendor),
		ValidateBody(schemas.MustGet(SchemaBidCreate)),
		bidHandler.Create,
	)

	bids := protected.Group("/bids")
	bids.Patch("/:id/status",
		RequireRoles(entity.RoleAdmin, entity.RoleTenderCreator),
		bidHandler.UpdateStatus,
	)
	bids.Post("/:id/reviews",
		RequireRoles(entity.RoleAdmin, entity.RoleTenderCreator),
		ValidateBody(schemas.MustGet(SchemaBidReview)),
		bidHandler.CreateReview,
	)

	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary",
		RequireRoles(entity.RoleAdmin),
		dashboardHandler.GetSummary,
	)
}
