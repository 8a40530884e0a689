package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/licita-pro/internal/application/dto"
	"github.com/jcastro/licita-pro/internal/application/usecase"
	"github.com/jcastro/licita-pro/internal/domain"
)

// TenderHandler maneja las peticiones HTTP para licitaciones (protegido).
type TenderHandler struct {
	uc *usecase.TenderUseCase
}

// NewTenderHandler construye el handler.
func NewTenderHandler(uc *usecase.TenderUseCase) *TenderHandler {
	return &TenderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear licitación
// @Tags         tenders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTenderRequest  true  "Datos de la licitación"
// @Success      201   {object}  dto.TenderResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tenders [post]
func (h *TenderHandler) Create(c *fiber.Ctx) error {
	user := GetUser(c)
	var in dto.CreateTenderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("invalid request body"))
	}
	out, err := h.uc.Create(c.Context(), user, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener licitación por ID
// @Tags         tenders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la licitación"
// @Success      200  {object}  dto.TenderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tenders/{id} [get]
func (h *TenderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("tender not found"))
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar licitaciones
// @Tags         tenders
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Página (>=1)"
// @Param        limit   query  int     false  "Tamaño de página (1..100)"
// @Param        status  query  string  false  "Filtro por estado"
// @Success      200     {object}  dto.TenderListResponse
// @Router       /api/tenders [get]
func (h *TenderHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
		Sort:  c.Query("sort"),
		Order: c.Query("order"),
	}
	out, err := h.uc.List(c.Context(), c.Query("status"), page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar licitación
// @Tags         tenders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la licitación"
// @Param        body  body  dto.UpdateTenderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TenderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tenders/{id} [put]
func (h *TenderHandler) Update(c *fiber.Ctx) error {
	user := GetUser(c)
	var in dto.UpdateTenderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("invalid request body"))
	}
	out, err := h.uc.Update(c.Context(), user, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("tender not found"))
	}
	return c.JSON(out)
}

// domainError mapea errores de dominio a HTTP. Todo lo no clasificado sale
// como 500 genérico: el detalle va al log, no al cliente.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("resource not found"))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("invalid input"))
	case errors.Is(err, domain.ErrTenderClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("tender is closed"))
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("conflict with current state"))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError(MsgServerError))
}
