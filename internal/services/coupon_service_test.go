package services

import (
	"testing"

	"lanchonete/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponRepo struct {
	byID   map[uint]*models.Coupon
	nextID uint
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{byID: map[uint]*models.Coupon{}, nextID: 1}
}

func (r *fakeCouponRepo) Create(coupon *models.Coupon) error {
	coupon.ID = r.nextID
	r.nextID++
	cp := *coupon
	r.byID[coupon.ID] = &cp
	return nil
}

func (r *fakeCouponRepo) GetByID(id uint) (*models.Coupon, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCouponRepo) GetByCode(code string) (*models.Coupon, error) {
	for _, c := range r.byID {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCouponRepo) GetActive() ([]models.Coupon, error) {
	var out []models.Coupon
	for _, c := range r.byID {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCouponRepo) GetAll() ([]models.Coupon, error) {
	var out []models.Coupon
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCouponRepo) Delete(id uint) error {
	delete(r.byID, id)
	return nil
}

func TestCouponServiceCreate(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := NewCouponService(repo, testLogger())

	coupon := &models.Coupon{Code: " bemvindo10 ", DiscountPercent: decimal.NewFromInt(10)}
	require.NoError(t, svc.Create(coupon))
	assert.Equal(t, "BEMVINDO10", coupon.Code)
	assert.True(t, coupon.IsActive)

	dup := &models.Coupon{Code: "BEMVINDO10"}
	err := svc.Create(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "já existe")

	err = svc.Create(&models.Coupon{Code: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "obrigatório")

	err = svc.Create(&models.Coupon{Code: "NEG", DiscountFixed: decimal.NewFromInt(-5)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negativo")

	zero := 0
	err = svc.Create(&models.Coupon{Code: "ZERO", UsageLimit: &zero})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limite de uso")
}

func TestCouponServiceListPublicFiltersExhausted(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := NewCouponService(repo, testLogger())

	one := 1
	require.NoError(t, repo.Create(&models.Coupon{Code: "VIVO", IsActive: true}))
	require.NoError(t, repo.Create(&models.Coupon{Code: "MORTO", IsActive: false}))
	require.NoError(t, repo.Create(&models.Coupon{Code: "GASTO", IsActive: true, UsageLimit: &one, UsedCount: 1}))

	public, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "VIVO", public[0].Code)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCouponServiceDelete(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := NewCouponService(repo, testLogger())

	coupon := &models.Coupon{Code: "DEZ"}
	require.NoError(t, svc.Create(coupon))
	require.NoError(t, svc.Delete(coupon.ID))

	err := svc.Delete(coupon.ID)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.NotFound)
}
