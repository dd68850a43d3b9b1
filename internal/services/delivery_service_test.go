package services

import (
	"testing"

	"lanchonete/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNeighborhoodRepo struct {
	byID   map[uint]*models.Neighborhood
	nextID uint
}

func newFakeNeighborhoodRepo() *fakeNeighborhoodRepo {
	return &fakeNeighborhoodRepo{byID: map[uint]*models.Neighborhood{}, nextID: 1}
}

func (r *fakeNeighborhoodRepo) Create(n *models.Neighborhood) error {
	n.ID = r.nextID
	r.nextID++
	cp := *n
	r.byID[n.ID] = &cp
	return nil
}

func (r *fakeNeighborhoodRepo) GetByID(id uint) (*models.Neighborhood, error) {
	n, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNeighborhoodRepo) GetByName(name string) (*models.Neighborhood, error) {
	for _, n := range r.byID {
		if n.Name == name {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNeighborhoodRepo) GetActive() ([]models.Neighborhood, error) {
	var out []models.Neighborhood
	for _, n := range r.byID {
		if n.IsActive {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNeighborhoodRepo) GetAll() ([]models.Neighborhood, error) {
	var out []models.Neighborhood
	for _, n := range r.byID {
		out = append(out, *n)
	}
	return out, nil
}

func (r *fakeNeighborhoodRepo) Update(n *models.Neighborhood) error {
	cp := *n
	r.byID[n.ID] = &cp
	return nil
}

func (r *fakeNeighborhoodRepo) Delete(id uint) error {
	delete(r.byID, id)
	return nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestDeliveryServiceAdd(t *testing.T) {
	repo := newFakeNeighborhoodRepo()
	svc := NewDeliveryService(repo, testLogger())

	n, err := svc.Add(NeighborhoodInput{Name: "  Centro  ", Price: decPtr("5.00")})
	require.NoError(t, err)
	assert.Equal(t, "Centro", n.Name)
	assert.True(t, n.IsActive, "new neighborhoods start active")

	_, err = svc.Add(NeighborhoodInput{Name: "Centro", Price: decPtr("6.00")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "já está cadastrado")

	_, err = svc.Add(NeighborhoodInput{Name: "Vila Nova"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "obrigatórios")

	_, err = svc.Add(NeighborhoodInput{Name: "Vila Nova", Price: decPtr("-1.00")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negativo")

	_, err = svc.Add(NeighborhoodInput{Name: "Vila Nova", Price: decPtr("1500.00")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "muito alto")
}

func TestDeliveryServiceUpdatePartial(t *testing.T) {
	repo := newFakeNeighborhoodRepo()
	svc := NewDeliveryService(repo, testLogger())

	n, err := svc.Add(NeighborhoodInput{Name: "Centro", Price: decPtr("5.00")})
	require.NoError(t, err)

	// Only the flag changes; zero-value name and nil price stay untouched.
	inactive := false
	updated, err := svc.Update(n.ID, NeighborhoodInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Centro", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("5.00")))
	assert.False(t, updated.IsActive)

	// Price zero is a legitimate value, distinct from absent.
	updated, err = svc.Update(n.ID, NeighborhoodInput{Price: decPtr("0")})
	require.NoError(t, err)
	assert.True(t, updated.Price.IsZero())

	_, err = svc.Update(999, NeighborhoodInput{Name: "Outro"})
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.NotFound)
}

func TestDeliveryServiceDelete(t *testing.T) {
	repo := newFakeNeighborhoodRepo()
	svc := NewDeliveryService(repo, testLogger())

	n, err := svc.Add(NeighborhoodInput{Name: "Centro", Price: decPtr("5.00")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(n.ID))
	err = svc.Delete(n.ID)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
