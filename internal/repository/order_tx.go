package repository

import (
	"context"
	"errors"

	"lanchonete/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderTx exposes the operations the order service performs inside a single
// database transaction. GetProductForUpdate and GetCouponByCodeForUpdate take
// an exclusive row lock; a concurrent transaction touching the same row
// blocks until this one commits or rolls back.
type OrderTx interface {
	GetProductForUpdate(id uint) (*models.Product, error)
	SaveProduct(product *models.Product) error

	GetActiveNeighborhoodByName(name string) (*models.Neighborhood, error)

	GetCouponByCodeForUpdate(code string) (*models.Coupon, error)
	SaveCoupon(coupon *models.Coupon) error

	CreateOrder(order *models.Order) error
	SaveOrder(order *models.Order) error
	CreateOrderItem(item *models.OrderItem) error
	GetOrder(id uint) (*models.Order, error)
}

// TransactionManager runs a unit of work inside one database transaction.
// Any error returned by fn rolls back every mutation made through the OrderTx.
type TransactionManager interface {
	Do(ctx context.Context, fn func(tx OrderTx) error) error
}

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &gormTransactionManager{db: db}
}

func (m *gormTransactionManager) Do(ctx context.Context, fn func(tx OrderTx) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormOrderTx{db: tx})
	})
}

type gormOrderTx struct {
	db *gorm.DB
}

// GetProductForUpdate locks the product row (SELECT ... FOR UPDATE) so that
// concurrent orders against the same product serialize on the stock check.
// Returns (nil, nil) when the product does not exist.
func (t *gormOrderTx) GetProductForUpdate(id uint) (*models.Product, error) {
	var product models.Product
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (t *gormOrderTx) SaveProduct(product *models.Product) error {
	return t.db.Save(product).Error
}

func (t *gormOrderTx) GetActiveNeighborhoodByName(name string) (*models.Neighborhood, error) {
	var n models.Neighborhood
	err := t.db.Where("name = ? AND is_active = ?", name, true).First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetCouponByCodeForUpdate locks the coupon row during the usage check so two
// concurrent orders cannot both pass a nearly exhausted usage limit.
func (t *gormOrderTx) GetCouponByCodeForUpdate(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ?", code).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (t *gormOrderTx) SaveCoupon(coupon *models.Coupon) error {
	return t.db.Save(coupon).Error
}

func (t *gormOrderTx) CreateOrder(order *models.Order) error {
	return t.db.Create(order).Error
}

func (t *gormOrderTx) SaveOrder(order *models.Order) error {
	return t.db.Omit("Items").Save(order).Error
}

func (t *gormOrderTx) CreateOrderItem(item *models.OrderItem) error {
	return t.db.Create(item).Error
}

func (t *gormOrderTx) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	err := t.db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
