package services

import (
	"strings"

	"lanchonete/internal/models"
	"lanchonete/internal/repository"

	"github.com/sirupsen/logrus"
)

type ProductService interface {
	GetMenu() ([]models.Product, error)
	GetAllProducts() ([]models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(product *models.Product) error
	DeleteProduct(id uint) error
	SetAvailability(id uint, available bool) (*models.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	log         *logrus.Logger
}

func NewProductService(productRepo repository.ProductRepository, log *logrus.Logger) ProductService {
	return &productService{productRepo: productRepo, log: log}
}

// GetMenu returns only the products currently offered to customers.
func (s *productService) GetMenu() ([]models.Product, error) {
	return s.productRepo.GetAvailable()
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *productService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, NotFoundf("Produto não encontrado.")
	}
	return product, nil
}

func (s *productService) CreateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if product.Details == nil {
		product.Details = models.CustomizationCatalog{}
	}
	if err := s.productRepo.Create(product); err != nil {
		return err
	}
	s.log.WithField("product_id", product.ID).Info("product created")
	return nil
}

func (s *productService) UpdateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	existing, err := s.productRepo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return NotFoundf("Produto não encontrado.")
	}
	return s.productRepo.Update(product)
}

func (s *productService) DeleteProduct(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return NotFoundf("Produto não encontrado.")
	}
	return s.productRepo.Delete(id)
}

func (s *productService) SetAvailability(id uint, available bool) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	product.IsAvailable = available
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func validateProduct(product *models.Product) error {
	name := strings.TrimSpace(product.Name)
	if name == "" {
		return Validationf("O nome do produto é obrigatório.")
	}
	if len(name) > 100 {
		return Validationf("O nome do produto é muito grande.")
	}
	if product.Price.IsNegative() {
		return Validationf("O preço não pode ser negativo.")
	}
	if product.StockQuantity != nil && *product.StockQuantity < 0 {
		return Validationf("O estoque não pode ser negativo.")
	}
	return nil
}
