package services

import (
	"strings"

	"lanchonete/internal/models"
	"lanchonete/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// maxDeliveryFee guards against typos like 1050 instead of 10.50.
var maxDeliveryFee = decimal.NewFromInt(1000)

// NeighborhoodInput uses pointers where "absent" and "zero" must be told
// apart on partial updates.
type NeighborhoodInput struct {
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	IsActive *bool            `json:"is_active"`
}

type DeliveryService interface {
	ListActive() ([]models.Neighborhood, error)
	ListAll() ([]models.Neighborhood, error)
	Add(input NeighborhoodInput) (*models.Neighborhood, error)
	Update(id uint, input NeighborhoodInput) (*models.Neighborhood, error)
	Delete(id uint) error
}

type deliveryService struct {
	neighborhoodRepo repository.NeighborhoodRepository
	log              *logrus.Logger
}

func NewDeliveryService(neighborhoodRepo repository.NeighborhoodRepository, log *logrus.Logger) DeliveryService {
	return &deliveryService{neighborhoodRepo: neighborhoodRepo, log: log}
}

func (s *deliveryService) ListActive() ([]models.Neighborhood, error) {
	return s.neighborhoodRepo.GetActive()
}

func (s *deliveryService) ListAll() ([]models.Neighborhood, error) {
	return s.neighborhoodRepo.GetAll()
}

func (s *deliveryService) Add(input NeighborhoodInput) (*models.Neighborhood, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateNeighborhoodName(name); err != nil {
		return nil, err
	}
	if input.Price == nil {
		return nil, Validationf("Nome e preço são obrigatórios.")
	}
	if err := validateDeliveryFee(*input.Price); err != nil {
		return nil, err
	}

	existing, err := s.neighborhoodRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Validationf("O bairro já está cadastrado.")
	}

	n := &models.Neighborhood{Name: name, Price: *input.Price, IsActive: true}
	if err := s.neighborhoodRepo.Create(n); err != nil {
		return nil, err
	}
	s.log.WithField("neighborhood", name).Info("neighborhood created")
	return n, nil
}

func (s *deliveryService) Update(id uint, input NeighborhoodInput) (*models.Neighborhood, error) {
	n, err := s.neighborhoodRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, NotFoundf("Bairro não encontrado.")
	}

	if input.Name != "" {
		name := strings.TrimSpace(input.Name)
		if err := validateNeighborhoodName(name); err != nil {
			return nil, err
		}
		n.Name = name
	}
	if input.Price != nil {
		if err := validateDeliveryFee(*input.Price); err != nil {
			return nil, err
		}
		n.Price = *input.Price
	}
	if input.IsActive != nil {
		n.IsActive = *input.IsActive
	}

	if err := s.neighborhoodRepo.Update(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *deliveryService) Delete(id uint) error {
	n, err := s.neighborhoodRepo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return NotFoundf("Bairro não encontrado.")
	}
	return s.neighborhoodRepo.Delete(id)
}

func validateNeighborhoodName(name string) error {
	if name == "" {
		return Validationf("O nome do bairro é obrigatório.")
	}
	if len(name) > 100 {
		return Validationf("O nome do bairro é muito grande.")
	}
	return nil
}

func validateDeliveryFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return Validationf("O preço não pode ser negativo.")
	}
	if fee.GreaterThan(maxDeliveryFee) {
		return Validationf("O valor do frete parece muito alto (máx: 1000). Verifique.")
	}
	return nil
}
