package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lanchonete/internal/events"
	"lanchonete/internal/models"
	"lanchonete/internal/repository"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PickupNeighborhood is the sentinel the checkout sends when the customer
// picks the order up at the counter. No delivery fee applies.
const PickupNeighborhood = "Retirada no local"

type CartAddress struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement"`
}

type CartCustomer struct {
	Name    string      `json:"name"`
	Phone   string      `json:"phone"`
	Address CartAddress `json:"address"`
}

type CartItem struct {
	ProductID      uint                        `json:"product_id"`
	Quantity       int                         `json:"quantity"`
	Customizations models.ChosenCustomizations `json:"customizations"`
}

type CartPayload struct {
	Customer      CartCustomer `json:"customer"`
	Items         []CartItem   `json:"items"`
	PaymentMethod string       `json:"payment_method"`
	CouponCode    string       `json:"coupon_code"`
}

// OrderStatusInfo is the lightweight shape returned to the status-polling
// endpoint.
type OrderStatusInfo struct {
	ID            uint                 `json:"id"`
	Status        models.OrderStatus   `json:"status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
}

type OrderService interface {
	PlaceOrder(ctx context.Context, userID uint, cart CartPayload) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetOrdersByUser(userID uint) ([]models.Order, error)
	GetOrderStatus(orderID uint) (*OrderStatusInfo, error)
	GetDailyOrders() ([]models.Order, error)
	UpdateStatus(orderID uint, newStatus models.OrderStatus) (*models.Order, error)
	CancelByCustomer(ctx context.Context, orderID, userID uint) (*models.Order, error)
	CancelByAdmin(orderID uint) (*models.Order, error)
	UpdatePaymentStatus(externalRef string, status models.PaymentStatus) (*models.Order, error)
}

type orderService struct {
	txm       repository.TransactionManager
	orderRepo repository.OrderRepository
	notifier  events.Notifier
	log       *logrus.Logger
}

func NewOrderService(
	txm repository.TransactionManager,
	orderRepo repository.OrderRepository,
	notifier events.Notifier,
	log *logrus.Logger,
) OrderService {
	return &orderService{txm: txm, orderRepo: orderRepo, notifier: notifier, log: log}
}

// PlaceOrder runs the whole checkout pipeline inside one database
// transaction: delivery-fee lookup, per-product row lock + stock decrement,
// server-side price recomputation, coupon check-and-increment, total
// aggregation. Any failure rolls back everything; the "new order" event is
// only published after the commit.
func (s *orderService) PlaceOrder(ctx context.Context, userID uint, cart CartPayload) (*models.Order, error) {
	if err := validateCart(cart); err != nil {
		return nil, err
	}

	var placed *models.Order
	err := s.txm.Do(ctx, func(tx repository.OrderTx) error {
		fee, err := resolveDeliveryFee(tx, cart.Customer.Address.Neighborhood)
		if err != nil {
			return err
		}

		order := &models.Order{
			Status:            models.StatusRecebido,
			TotalPrice:        decimal.Zero,
			DeliveryFee:       fee,
			CustomerName:      cart.Customer.Name,
			CustomerPhone:     cart.Customer.Phone,
			Street:            cart.Customer.Address.Street,
			Number:            cart.Customer.Address.Number,
			Neighborhood:      cart.Customer.Address.Neighborhood,
			Complement:        cart.Customer.Address.Complement,
			PaymentMethod:     cart.PaymentMethod,
			PaymentStatus:     models.PaymentPending,
			ExternalReference: uuid.NewString(),
			Discount:          decimal.Zero,
		}
		if userID != 0 {
			uid := userID
			order.UserID = &uid
		}
		// Flushed (not committed) so the items below can reference its id.
		if err := tx.CreateOrder(order); err != nil {
			return fmt.Errorf("failed to create order header: %w", err)
		}

		subtotal := decimal.Zero
		for _, line := range cart.Items {
			unit, err := s.processLine(tx, order.ID, line)
			if err != nil {
				return err
			}
			subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		discount := decimal.Zero
		if code := strings.ToUpper(strings.TrimSpace(cart.CouponCode)); code != "" {
			discount, err = applyCoupon(tx, code, subtotal)
			if err != nil {
				return err
			}
			order.CouponCode = code
		}

		total := subtotal.Add(fee).Sub(discount)
		if total.IsNegative() {
			total = decimal.Zero
		}
		order.Discount = discount
		order.TotalPrice = total
		if err := tx.SaveOrder(order); err != nil {
			return fmt.Errorf("failed to save order total: %w", err)
		}

		placed, err = tx.GetOrder(order.ID)
		return err
	})
	if err != nil {
		if IsValidation(err) {
			return nil, err
		}
		s.log.WithError(err).Error("order placement failed")
		return nil, fmt.Errorf("order placement failed: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"order_id": placed.ID,
		"total":    placed.TotalPrice,
	}).Info("order placed")
	s.notifier.Publish(events.EventNewOrder, placed)
	return placed, nil
}

// processLine locks the product row, enforces and decrements stock, computes
// the unit price from the catalog and persists the line item. Returns the
// frozen unit price.
func (s *orderService) processLine(tx repository.OrderTx, orderID uint, line CartItem) (decimal.Decimal, error) {
	product, err := tx.GetProductForUpdate(line.ProductID)
	if err != nil {
		return decimal.Zero, err
	}
	if product == nil {
		return decimal.Zero, NotFoundf("Produto %d não encontrado.", line.ProductID)
	}

	// Stock is checked per line: the same product on two lines is locked and
	// decremented twice, each line against whatever the previous one left.
	if product.StockQuantity != nil {
		if *product.StockQuantity < line.Quantity {
			return decimal.Zero, Validationf(
				"Estoque insuficiente para %s. Restam %d.", product.Name, *product.StockQuantity)
		}
		remaining := *product.StockQuantity - line.Quantity
		product.StockQuantity = &remaining
		if remaining <= 0 {
			// Depletion stops further sales without waiting for an admin.
			product.IsAvailable = false
		}
		if err := tx.SaveProduct(product); err != nil {
			return decimal.Zero, fmt.Errorf("failed to update stock: %w", err)
		}
	}

	unit := unitPrice(product, line.Customizations)
	chosen := line.Customizations
	if chosen == nil {
		chosen = models.ChosenCustomizations{}
	}
	item := &models.OrderItem{
		OrderID:        orderID,
		ProductID:      product.ID,
		Quantity:       line.Quantity,
		PriceAtTime:    unit,
		Customizations: chosen,
	}
	if err := tx.CreateOrderItem(item); err != nil {
		return decimal.Zero, fmt.Errorf("failed to create order item: %w", err)
	}
	return unit, nil
}

// unitPrice starts from the product's base price and adds the delta of every
// selection that matches a catalog entry by name within its group. Stale or
// made-up selections match nothing and contribute zero.
func unitPrice(product *models.Product, chosen models.ChosenCustomizations) decimal.Decimal {
	price := product.Price
	for group, names := range chosen {
		options := product.Details.Options(group)
		if len(options) == 0 {
			continue
		}
		for _, name := range names {
			for _, opt := range options {
				if opt.Name == name {
					price = price.Add(opt.Price)
					break
				}
			}
		}
	}
	return price
}

// applyCoupon validates the coupon against the product subtotal (before the
// delivery fee) and increments its usage inside the same transaction, so a
// failed order never consumes a redemption.
func applyCoupon(tx repository.OrderTx, code string, subtotal decimal.Decimal) (decimal.Decimal, error) {
	coupon, err := tx.GetCouponByCodeForUpdate(code)
	if err != nil {
		return decimal.Zero, err
	}
	if coupon == nil || !coupon.IsActive {
		return decimal.Zero, Validationf("Cupom inválido ou inativo.")
	}
	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return decimal.Zero, Validationf("Cupom esgotado.")
	}
	if subtotal.LessThan(coupon.MinPurchase) {
		missing := coupon.MinPurchase.Sub(subtotal)
		return decimal.Zero, Validationf(
			"O pedido mínimo para este cupom é R$ %s. Faltam R$ %s.",
			coupon.MinPurchase.StringFixed(2), missing.StringFixed(2))
	}

	discount := decimal.Zero
	if coupon.DiscountPercent.IsPositive() {
		discount = subtotal.Mul(coupon.DiscountPercent).Div(decimal.NewFromInt(100)).Round(2)
	}
	if coupon.DiscountFixed.IsPositive() {
		discount = discount.Add(coupon.DiscountFixed)
	}
	// Never discount past the subtotal.
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	coupon.UsedCount++
	if err := tx.SaveCoupon(coupon); err != nil {
		return decimal.Zero, fmt.Errorf("failed to update coupon usage: %w", err)
	}
	return discount, nil
}

func resolveDeliveryFee(tx repository.OrderTx, neighborhood string) (decimal.Decimal, error) {
	if isPickup(neighborhood) {
		return decimal.Zero, nil
	}
	n, err := tx.GetActiveNeighborhoodByName(strings.TrimSpace(neighborhood))
	if err != nil {
		return decimal.Zero, err
	}
	if n == nil {
		// Unknown neighborhood: no fee. The client-supplied fee, if any,
		// is never trusted either way.
		return decimal.Zero, nil
	}
	return n.Price, nil
}

func isPickup(neighborhood string) bool {
	trimmed := strings.TrimSpace(neighborhood)
	return trimmed == "" || strings.EqualFold(trimmed, PickupNeighborhood)
}

func validateCart(cart CartPayload) error {
	if len(cart.Items) == 0 {
		return Validationf("O pedido precisa ter pelo menos um item.")
	}

	var merr *multierror.Error
	if strings.TrimSpace(cart.Customer.Name) == "" {
		merr = multierror.Append(merr, errors.New("o nome do cliente é obrigatório"))
	}
	addr := cart.Customer.Address
	if !isPickup(addr.Neighborhood) {
		if strings.TrimSpace(addr.Street) == "" || strings.TrimSpace(addr.Number) == "" {
			merr = multierror.Append(merr, errors.New("endereço e número são obrigatórios"))
		}
	}
	for i, item := range cart.Items {
		if item.ProductID == 0 {
			merr = multierror.Append(merr, fmt.Errorf("item %d: produto inválido", i+1))
		}
		if item.Quantity <= 0 {
			merr = multierror.Append(merr, fmt.Errorf("item %d: a quantidade deve ser maior que zero", i+1))
		}
	}
	if merr != nil {
		return &ValidationError{Message: merr.Error()}
	}
	return nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, NotFoundf("Pedido não encontrado.")
	}
	return order, nil
}

func (s *orderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

func (s *orderService) GetOrderStatus(orderID uint) (*OrderStatusInfo, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	return &OrderStatusInfo{
		ID:            order.ID,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
	}, nil
}

// GetDailyOrders returns today's orders for the kitchen panel.
func (s *orderService) GetDailyOrders() ([]models.Order, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.orderRepo.GetCreatedSince(midnight)
}

// UpdateStatus moves the order along the kitchen flow. Concluído and
// Cancelado are terminal.
func (s *orderService) UpdateStatus(orderID uint, newStatus models.OrderStatus) (*models.Order, error) {
	if !newStatus.Valid() {
		return nil, Validationf("Status inválido: %s", newStatus)
	}
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, Validationf("O pedido já está %s e não pode mudar de status.", order.Status)
	}

	order.Status = newStatus
	if err := s.orderRepo.Update(order); err != nil {
		s.log.WithError(err).WithField("order_id", orderID).Error("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.log.WithFields(logrus.Fields{"order_id": order.ID, "status": newStatus}).Info("order status updated")
	s.notifier.Publish(events.EventOrderStatus, order)
	return order, nil
}

// CancelByCustomer cancels the caller's own order while it is still
// Recebido, restoring every stock decrement in the same transaction.
func (s *orderService) CancelByCustomer(ctx context.Context, orderID, userID uint) (*models.Order, error) {
	var cancelled *models.Order
	err := s.txm.Do(ctx, func(tx repository.OrderTx) error {
		order, err := tx.GetOrder(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return NotFoundf("Pedido não encontrado.")
		}
		if order.UserID == nil || *order.UserID != userID {
			return Validationf("Você não tem permissão para cancelar este pedido.")
		}
		if order.Status != models.StatusRecebido {
			return Validationf("O pedido já está em preparo e não pode mais ser cancelado.")
		}

		for _, item := range order.Items {
			product, err := tx.GetProductForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil || product.StockQuantity == nil {
				continue
			}
			restored := *product.StockQuantity + item.Quantity
			product.StockQuantity = &restored
			if restored > 0 {
				product.IsAvailable = true
			}
			if err := tx.SaveProduct(product); err != nil {
				return fmt.Errorf("failed to restore stock: %w", err)
			}
		}

		order.Status = models.StatusCancelado
		if err := tx.SaveOrder(order); err != nil {
			return fmt.Errorf("failed to cancel order: %w", err)
		}
		cancelled = order
		return nil
	})
	if err != nil {
		if IsValidation(err) {
			return nil, err
		}
		s.log.WithError(err).WithField("order_id", orderID).Error("customer cancellation failed")
		return nil, fmt.Errorf("customer cancellation failed: %w", err)
	}

	s.log.WithField("order_id", orderID).Info("order cancelled by customer")
	s.notifier.Publish(events.EventOrderStatus, cancelled)
	return cancelled, nil
}

// CancelByAdmin soft-cancels unconditionally and does NOT restore stock:
// the admin reconciles physical stock separately.
func (s *orderService) CancelByAdmin(orderID uint) (*models.Order, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	order.Status = models.StatusCancelado
	if err := s.orderRepo.Update(order); err != nil {
		s.log.WithError(err).WithField("order_id", orderID).Error("admin cancellation failed")
		return nil, fmt.Errorf("admin cancellation failed: %w", err)
	}

	s.log.WithField("order_id", orderID).Info("order cancelled by admin")
	s.notifier.Publish(events.EventOrderStatus, order)
	return order, nil
}

// UpdatePaymentStatus is driven by the payment webhook, keyed by the
// external reference sent to the gateway at checkout.
func (s *orderService) UpdatePaymentStatus(externalRef string, status models.PaymentStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, Validationf("Status de pagamento inválido: %s", status)
	}
	order, err := s.orderRepo.GetByExternalReference(externalRef)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, NotFoundf("Pedido não encontrado.")
	}

	order.PaymentStatus = status
	if err := s.orderRepo.Update(order); err != nil {
		s.log.WithError(err).WithField("order_id", order.ID).Error("failed to update payment status")
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	s.log.WithFields(logrus.Fields{"order_id": order.ID, "payment_status": status}).Info("payment status updated")
	s.notifier.Publish(events.EventPaymentUpdated, order)
	return order, nil
}
