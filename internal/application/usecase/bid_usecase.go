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

// BidUseCase casos de uso para ofertas y reviews.
type BidUseCase struct {
	bids     repository.BidRepository
	tenders  repository.TenderRepository
	notifier notify.Notifier
}

// NewBidUseCase construye el caso de uso.
func NewBidUseCase(bids repository.BidRepository, tenders repository.TenderRepository, notifier notify.Notifier) *BidUseCase {
	return &BidUseCase{bids: bids, tenders: tenders, notifier: notifier}
}

// Create registra una oferta Pending del vendor sobre una licitación publicada.
func (uc *BidUseCase) Create(ctx context.Context, vendor *entity.User, tenderID string, in dto.CreateBidRequest) (*dto.BidResponse, error) {
	t, err := uc.tenders.GetByID(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if t.Status != entity.TenderStatusPublished {
		return nil, domain.ErrTenderClosed
	}
	now := time.Now()
	b := &entity.Bid{
		ID:               uuid.New().String(),
		TenderID:         tenderID,
		VendorID:         vendor.ID,
		Amount:           in.Amount,
		Proposal:         in.Proposal,
		DeliveryTimeDays: in.DeliveryTime,
		Status:           entity.BidStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.bids.Create(ctx, b); err != nil {
		return nil, err
	}
	notify.Dispatch(uc.notifier, notify.Event{
		Type:       notify.EventBidCreated,
		ResourceID: b.ID,
		ActorID:    vendor.ID,
		Message:    "nueva oferta sobre licitación " + t.Name,
	})
	return toBidResponse(b), nil
}

// ListByTender lista las ofertas de una licitación.
func (uc *BidUseCase) ListByTender(ctx context.Context, tenderID string, page dto.PageRequest) (*dto.BidListResponse, error) {
	page.DefaultPage()
	list, err := uc.bids.ListByTender(ctx, tenderID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.BidListResponse{
		Items: make([]dto.BidResponse, 0, len(list)),
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit},
	}
	for _, b := range list {
		out.Items = append(out.Items, *toBidResponse(b))
	}
	return out, nil
}

// UpdateStatus cambia el estado de una oferta a Approved, Rejected o Canceled.
func (uc *BidUseCase) UpdateStatus(ctx context.Context, actor *entity.User, id string, in dto.UpdateBidStatusRequest) (*dto.BidResponse, error) {
	switch in.Status {
	case entity.BidStatusApproved, entity.BidStatusRejected, entity.BidStatusCanceled:
	default:
		return nil, domain.ErrInvalidInput
	}
	b, err := uc.bids.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	if err := uc.bids.UpdateStatus(ctx, id, in.Status); err != nil {
		return nil, err
	}
	b.Status = in.Status
	notify.Dispatch(uc.notifier, notify.Event{
		Type:       notify.EventBidStatusChange,
		ResourceID: b.ID,
		ActorID:    actor.ID,
		Message:    "oferta en estado " + in.Status,
	})
	return toBidResponse(b), nil
}

// CreateReview agrega retroalimentación sobre una oferta existente.
func (uc *BidUseCase) CreateReview(ctx context.Context, author *entity.User, bidID string, in dto.CreateBidReviewRequest) (*dto.BidReviewResponse, error) {
	b, err := uc.bids.GetByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	rv := &entity.BidReview{
		ID:          uuid.New().String(),
		BidID:       bidID,
		AuthorID:    author.ID,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.bids.CreateReview(ctx, rv); err != nil {
		return nil, err
	}
	notify.Dispatch(uc.notifier, notify.Event{
		Type:       notify.EventBidReviewed,
		ResourceID: rv.BidID,
		ActorID:    author.ID,
		Message:    "oferta revisada",
	})
	return &dto.BidReviewResponse{
		ID:          rv.ID,
		BidID:       rv.BidID,
		AuthorID:    rv.AuthorID,
		Description: rv.Description,
		CreatedAt:   rv.CreatedAt,
	}, nil
}

func toBidResponse(b *entity.Bid) *dto.BidResponse {
	return &dto.BidResponse{
		ID:           b.ID,
		TenderID:     b.TenderID,
		VendorID:     b.VendorID,
		Amount:       b.Amount,
		Proposal:     b.Proposal,
		DeliveryTime: b.DeliveryTimeDays,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}
