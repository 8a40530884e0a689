package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/licita-pro/internal/application/dto"
	"github.com/jcastro/licita-pro/internal/application/notify"
	"github.com/jcastro/licita-pro/internal/domain"
	"github.com/jcastro/licita-pro/internal/domain/entity"
	"github.com/jcastro/licita-pro/internal/domain/repository"
)

// TenderUseCase casos de uso CRUD para licitaciones. La lógica de negocio es
// deliberadamente delgada: los gates de auth/validación ya corrieron antes.
type TenderUseCase struct {
	repo     repository.TenderRepository
	notifier notify.Notifier
}

// NewTenderUseCase construye el caso de uso.
func NewTenderUseCase(repo repository.TenderRepository, notifier notify.Notifier) *TenderUseCase {
	return &TenderUseCase{repo: repo, notifier: notifier}
}

// Create crea una licitación en estado Created a nombre del usuario autenticado.
func (uc *TenderUseCase) Create(ctx context.Context, creator *entity.User, in dto.CreateTenderRequest) (*dto.TenderResponse, error) {
	now := time.Now()
	t := &entity.Tender{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		ServiceType: in.ServiceType,
		Status:      entity.TenderStatusCreated,
		Budget:      in.Budget,
		Deadline:    in.Deadline,
		CreatorID:   creator.ID,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	notify.Dispatch(uc.notifier, notify.Event{
		Type:       notify.EventTenderCreated,
		ResourceID: t.ID,
		ActorID:    creator.ID,
		Message:    "licitación creada: " + t.Name,
	})
	return toTenderResponse(t), nil
}

// GetByID obtiene una licitación. (nil, nil) si no existe.
func (uc *TenderUseCase) GetByID(ctx context.Context, id string) (*dto.TenderResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toTenderResponse(t), nil
}

// List lista licitaciones paginadas, opcionalmente por estado.
func (uc *TenderUseCase) List(ctx context.Context, status string, page dto.PageRequest) (*dto.TenderListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, status, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.TenderListResponse{
		Items: make([]dto.TenderResponse, 0, len(list)),
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit},
	}
	for _, t := range list {
		out.Items = append(out.Items, *toTenderResponse(t))
	}
	return out, nil
}

// Update actualiza los campos enviados. Una licitación cerrada no se modifica.
func (uc *TenderUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdateTenderRequest) (*dto.TenderResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if t.Status == entity.TenderStatusClosed {
		return nil, domain.ErrTenderClosed
	}
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.ServiceType != nil {
		t.ServiceType = *in.ServiceType
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.Budget != nil {
		t.Budget = *in.Budget
	}
	if in.Deadline != nil {
		t.Deadline = *in.Deadline
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	t.Version++
	notify.Dispatch(uc.notifier, notify.Event{
		Type:       notify.EventTenderUpdated,
		ResourceID: t.ID,
		ActorID:    actor.ID,
		Message:    "licitación actualizada: " + t.Name,
	})
	return toTenderResponse(t), nil
}

func toTenderResponse(t *entity.Tender) *dto.TenderResponse {
	return &dto.TenderResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		ServiceType: t.ServiceType,
		Status:      t.Status,
		Budget:      t.Budget,
		Deadline:    t.Deadline,
		CreatorID:   t.CreatorID,
		Version:     t.Version,
		CreatedAt:   t.CreatedAt,
	}
}
