package services

import (
	"strings"

	"lanchonete/internal/models"
	"lanchonete/internal/repository"

	"github.com/sirupsen/logrus"
)

type CouponService interface {
	ListPublic() ([]models.Coupon, error)
	ListAll() ([]models.Coupon, error)
	Create(coupon *models.Coupon) error
	Delete(id uint) error
}

type couponService struct {
	couponRepo repository.CouponRepository
	log        *logrus.Logger
}

func NewCouponService(couponRepo repository.CouponRepository, log *logrus.Logger) CouponService {
	return &couponService{couponRepo: couponRepo, log: log}
}

// ListPublic returns the coupons a customer can still redeem: active and
// under their usage limit.
func (s *couponService) ListPublic() ([]models.Coupon, error) {
	coupons, err := s.couponRepo.GetActive()
	if err != nil {
		return nil, err
	}
	valid := make([]models.Coupon, 0, len(coupons))
	for _, c := range coupons {
		if c.Redeemable() {
			valid = append(valid, c)
		}
	}
	return valid, nil
}

func (s *couponService) ListAll() ([]models.Coupon, error) {
	return s.couponRepo.GetAll()
}

func (s *couponService) Create(coupon *models.Coupon) error {
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	if coupon.Code == "" {
		return Validationf("O código do cupom é obrigatório.")
	}
	if coupon.DiscountPercent.IsNegative() || coupon.DiscountFixed.IsNegative() {
		return Validationf("O desconto não pode ser negativo.")
	}
	if coupon.MinPurchase.IsNegative() {
		return Validationf("O valor mínimo de compra não pode ser negativo.")
	}
	if coupon.UsageLimit != nil && *coupon.UsageLimit <= 0 {
		return Validationf("O limite de uso deve ser maior que zero.")
	}

	existing, err := s.couponRepo.GetByCode(coupon.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		return Validationf("Este código de cupom já existe.")
	}

	coupon.IsActive = true
	if err := s.couponRepo.Create(coupon); err != nil {
		return err
	}
	s.log.WithField("coupon", coupon.Code).Info("coupon created")
	return nil
}

func (s *couponService) Delete(id uint) error {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return NotFoundf("Cupom não encontrado.")
	}
	return s.couponRepo.Delete(id)
}
