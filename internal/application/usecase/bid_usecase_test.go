package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/licita-pro/internal/application/dto"
	"github.com/jcastro/licita-pro/internal/application/usecase"
	"github.com/jcastro/licita-pro/internal/domain"
	"github.com/jcastro/licita-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTenderRepo struct {
	tenders map[string]*entity.Tender
}

func (r *fakeTenderRepo) Create(_ context.Context, t *entity.Tender) error {
	r.tenders[t.ID] = t
	return nil
}

func (r *fakeTenderRepo) GetByID(_ context.Context, id string) (*entity.Tender, error) {
	return r.tenders[id], nil
}

func (r *fakeTenderRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Tender, error) {
	var out []*entity.Tender
	for _, t := range r.tenders {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTenderRepo) Update(_ context.Context, t *entity.Tender) error {
	r.tenders[t.ID] = t
	return nil
}

type fakeBidRepo struct {
	bids    map[string]*entity.Bid
	reviews []*entity.BidReview
}

func (r *fakeBidRepo) Create(_ context.Context, b *entity.Bid) error {
	r.bids[b.ID] = b
	return nil
}

func (r *fakeBidRepo) GetByID(_ context.Context, id string) (*entity.Bid, error) {
	return r.bids[id], nil
}

func (r *fakeBidRepo) ListByTender(_ context.Context, tenderID string, _, _ int) ([]*entity.Bid, error) {
	var out []*entity.Bid
	for _, b := range r.bids {
		if b.TenderID == tenderID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBidRepo) UpdateStatus(_ context.Context, id, status string) error {
	b, ok := r.bids[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBidRepo) CreateReview(_ context.Context, rv *entity.BidReview) error {
	r.reviews = append(r.reviews, rv)
	return nil
}

func (r *fakeBidRepo) ListReviews(_ context.Context, bidID string) ([]*entity.BidReview, error) {
	var out []*entity.BidReview
	for _, rv := range r.reviews {
		if rv.BidID == bidID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func newFixture(tenderStatus string) (*usecase.BidUseCase, *fakeBidRepo) {
	tenders := &fakeTenderRepo{tenders: map[string]*entity.Tender{
		"t1": {
			ID:       "t1",
			Name:     "Puente peatonal",
			Status:   tenderStatus,
			Deadline: time.Now().Add(72 * time.Hour),
		},
	}}
	bids := &fakeBidRepo{bids: make(map[string]*entity.Bid)}
	return usecase.NewBidUseCase(bids, tenders, nil), bids
}

func vendor() *entity.User {
	return &entity.User{ID: "v1", Role: entity.RoleVendor, IsActive: true}
}

var validBid = dto.CreateBidRequest{
	Amount:       decimal.NewFromFloat(19990.50),
	Proposal:     "Una propuesta técnica con el detalle suficiente para cumplir el mínimo requerido.",
	DeliveryTime: 30,
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Ofertar sobre una licitación publicada crea la oferta en Pending.
func TestBidCreate_TenderPublicado_CreaPending(t *testing.T) {
	uc, bids := newFixture(entity.TenderStatusPublished)

	out, err := uc.Create(context.Background(), vendor(), "t1", validBid)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.BidStatusPending, out.Status)
	assert.Equal(t, "v1", out.VendorID)
	assert.Equal(t, "t1", out.TenderID)
	assert.Len(t, bids.bids, 1)
}

// No se puede ofertar sobre una licitación que no está publicada.
func TestBidCreate_TenderNoPublicado_Falla(t *testing.T) {
	for _, status := range []string{entity.TenderStatusCreated, entity.TenderStatusClosed} {
		uc, bids := newFixture(status)

		_, err := uc.Create(context.Background(), vendor(), "t1", validBid)
		assert.ErrorIs(t, err, domain.ErrTenderClosed, "estado %s", status)
		assert.Empty(t, bids.bids)
	}
}

// Licitación inexistente → ErrNotFound.
func TestBidCreate_TenderInexistente_Falla(t *testing.T) {
	uc, _ := newFixture(entity.TenderStatusPublished)

	_, err := uc.Create(context.Background(), vendor(), "no-existe", validBid)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestBidUpdateStatus_EstadoValido(t *testing.T) {
	uc, bids := newFixture(entity.TenderStatusPublished)
	created, err := uc.Create(context.Background(), vendor(), "t1", validBid)
	require.NoError(t, err)

	actor := &entity.User{ID: "c1", Role: entity.RoleTenderCreator, IsActive: true}
	out, err := uc.UpdateStatus(context.Background(), actor, created.ID,
		dto.UpdateBidStatusRequest{Status: entity.BidStatusApproved})
	require.NoError(t, err)

	assert.Equal(t, entity.BidStatusApproved, out.Status)
	assert.Equal(t, entity.BidStatusApproved, bids.bids[created.ID].Status)
}

// Un estado fuera del enum se rechaza sin tocar la oferta.
func TestBidUpdateStatus_EstadoInvalido_Falla(t *testing.T) {
	uc, bids := newFixture(entity.TenderStatusPublished)
	created, err := uc.Create(context.Background(), vendor(), "t1", validBid)
	require.NoError(t, err)

	actor := &entity.User{ID: "c1", Role: entity.RoleTenderCreator, IsActive: true}
	_, err = uc.UpdateStatus(context.Background(), actor, created.ID,
		dto.UpdateBidStatusRequest{Status: "Won"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.BidStatusPending, bids.bids[created.ID].Status)
}

// Oferta inexistente → (nil, nil), el handler lo convierte en 404.
func TestBidUpdateStatus_OfertaInexistente(t *testing.T) {
	uc, _ := newFixture(entity.TenderStatusPublished)

	actor := &entity.User{ID: "c1", Role: entity.RoleTenderCreator, IsActive: true}
	out, err := uc.UpdateStatus(context.Background(), actor, "no-existe",
		dto.UpdateBidStatusRequest{Status: entity.BidStatusRejected})

	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateReview
// ──────────────────────────────────────────────────────────────────────────────

func TestBidCreateReview(t *testing.T) {
	uc, bids := newFixture(entity.TenderStatusPublished)
	created, err := uc.Create(context.Background(), vendor(), "t1", validBid)
	require.NoError(t, err)

	author := &entity.User{ID: "c1", Role: entity.RoleTenderCreator, IsActive: true}
	out, err := uc.CreateReview(context.Background(), author, created.ID,
		dto.CreateBidReviewRequest{Description: "Propuesta sólida, plazos realistas."})
	require.NoError(t, err)

	assert.Equal(t, created.ID, out.BidID)
	assert.Equal(t, "c1", out.AuthorID)
	require.Len(t, bids.reviews, 1)
}
