package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/licita-pro/internal/application/dto"
	"github.com/jcastro/licita-pro/internal/application/usecase"
)

// BidHandler maneja las peticiones HTTP para ofertas (protegido).
type BidHandler struct {
	uc *usecase.BidUseCase
}

// NewBidHandler construye el handler.
func NewBidHandler(uc *usecase.BidUseCase) *BidHandler {
	return &BidHandler{uc: uc}
}

// Create godoc
// @Summary      Ofertar sobre una licitación
// @Tags         bids
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la licitación"
// @Param        body  body  dto.CreateBidRequest  true  "Datos de la oferta"
// @Success      201   {object}  dto.BidResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tenders/{id}/bids [post]
func (h *BidHandler) Create(c *fiber.Ctx) error {
	user := GetUser(c)
	var in dto.CreateBidRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("invalid request body"))
	}
	out, err := h.uc.Create(c.Context(), user, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByTender godoc
// @Summary      Listar ofertas de una licitación
// @Tags         bids
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID de la licitación"
// @Param        page   query  int     false  "Página (>=1)"
// @Param        limit  query  int     false  "Tamaño de página (1..100)"
// @Success      200    {object}  dto.BidListResponse
// @Router       /api/tenders/{id}/bids [get]
func (h *BidHandler) ListByTender(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
		Sort:  c.Query("sort"),
		Order: c.Query("order"),
	}
	out, err := h.uc.ListByTender(c.Context(), c.Params("id"), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Aprobar, rechazar o cancelar una oferta
// @Tags         bids
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la oferta"
// @Param        body  body  dto.UpdateBidStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.BidResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bids/{id}/status [patch]
func (h *BidHandler) UpdateStatus(c *fiber.Ctx) error {
	user := GetUser(c)
	var in dto.UpdateBidStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("invalid request body"))
	}
	out, err := h.uc.UpdateStatus(c.Context(), user, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("bid not found"))
	}
	return c.JSON(out)
}

// CreateReview godoc
// @Summary      Dejar una review sobre una oferta
// @Tags         bids
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la oferta"
// @Param        body  body  dto.CreateBidReviewRequest  true  "Contenido de la review"
// @Success      201   {object}  dto.BidReviewResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bids/{id}/reviews [post]
func (h *BidHandler) CreateReview(c *fiber.Ctx) error {
	user := GetUser(c)
	var in dto.CreateBidReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("invalid request body"))
	}
	out, err := h.uc.CreateReview(c.Context(), user, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("bid not found"))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
