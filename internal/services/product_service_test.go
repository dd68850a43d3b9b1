package services

import (
	"testing"

	"lanchonete/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	byID   map[uint]*models.Product
	nextID uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[uint]*models.Product{}, nextID: 1}
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	product.ID = r.nextID
	r.nextID++
	cp := *product
	r.byID[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetAvailable() ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.byID {
		if p.IsAvailable {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetAll() ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(product *models.Product) error {
	cp := *product
	r.byID[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error {
	delete(r.byID, id)
	return nil
}

func TestProductServiceCreateValidation(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, testLogger())

	valid := &models.Product{Name: "FALCÃO", Price: decimal.NewFromInt(30), IsAvailable: true}
	require.NoError(t, svc.CreateProduct(valid))
	assert.NotNil(t, valid.Details, "details default to an empty catalog")

	err := svc.CreateProduct(&models.Product{Name: "  ", Price: decimal.NewFromInt(10)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nome do produto")

	err = svc.CreateProduct(&models.Product{Name: "X", Price: decimal.NewFromInt(-1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negativo")

	negative := -1
	err = svc.CreateProduct(&models.Product{
		Name: "X", Price: decimal.NewFromInt(1), StockQuantity: &negative,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "estoque")
}

func TestProductServiceMenuOnlyListsAvailable(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, testLogger())

	require.NoError(t, svc.CreateProduct(&models.Product{
		Name: "FALCÃO", Price: decimal.NewFromInt(30), IsAvailable: true,
	}))
	hidden := &models.Product{Name: "ÁGUIA", Price: decimal.NewFromInt(35), IsAvailable: false}
	require.NoError(t, svc.CreateProduct(hidden))

	menu, err := svc.GetMenu()
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "FALCÃO", menu[0].Name)

	all, err := svc.GetAllProducts()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProductServiceSetAvailability(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, testLogger())

	product := &models.Product{Name: "FALCÃO", Price: decimal.NewFromInt(30), IsAvailable: true}
	require.NoError(t, svc.CreateProduct(product))

	updated, err := svc.SetAvailability(product.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)

	_, err = svc.SetAvailability(999, true)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.NotFound)
}

func TestProductServiceDeleteMissing(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, testLogger())

	err := svc.DeleteProduct(42)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
