package repository

import (
	"errors"

	"lanchonete/internal/models"

	"gorm.io/gorm"
)

type NeighborhoodRepository interface {
	Create(n *models.Neighborhood) error
	GetByID(id uint) (*models.Neighborhood, error)
	GetByName(name string) (*models.Neighborhood, error)
	GetActive() ([]models.Neighborhood, error)
	GetAll() ([]models.Neighborhood, error)
	Update(n *models.Neighborhood) error
	Delete(id uint) error
}

type neighborhoodRepository struct {
	db *gorm.DB
}

func NewNeighborhoodRepository(db *gorm.DB) NeighborhoodRepository {
	return &neighborhoodRepository{db: db}
}

func (r *neighborhoodRepository) Create(n *models.Neighborhood) error {
	return r.db.Create(n).Error
}

func (r *neighborhoodRepository) GetByID(id uint) (*models.Neighborhood, error) {
	var n models.Neighborhood
	err := r.db.First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *neighborhoodRepository) GetByName(name string) (*models.Neighborhood, error) {
	var n models.Neighborhood
	err := r.db.Where("name = ?", name).First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *neighborhoodRepository) GetActive() ([]models.Neighborhood, error) {
	var list []models.Neighborhood
	err := r.db.Where("is_active = ?", true).Order("name").Find(&list).Error
	return list, err
}

func (r *neighborhoodRepository) GetAll() ([]models.Neighborhood, error) {
	var list []models.Neighborhood
	err := r.db.Order("name").Find(&list).Error
	return list, err
}

func (r *neighborhoodRepository) Update(n *models.Neighborhood) error {
	return r.db.Save(n).Error
}

func (r *neighborhoodRepository) Delete(id uint) error {
	return r.db.Delete(&models.Neighborhood{}, id).Error
}
