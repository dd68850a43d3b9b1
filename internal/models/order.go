package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusRecebido        OrderStatus = "Recebido"
	StatusEmPreparo       OrderStatus = "Em Preparo"
	StatusSaiuParaEntrega OrderStatus = "Saiu para Entrega"
	StatusConcluido       OrderStatus = "Concluído"
	StatusCancelado       OrderStatus = "Cancelado"
)

// Valid reports whether s is one of the enumerated order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusRecebido, StatusEmPreparo, StatusSaiuParaEntrega, StatusConcluido, StatusCancelado:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves the status.
func (s OrderStatus) Terminal() bool {
	return s == StatusConcluido || s == StatusCancelado
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentApproved, PaymentRejected:
		return true
	}
	return false
}

// Order is created exclusively by the order service. The customer contact
// and address fields are a snapshot taken at checkout: later changes to the
// user's saved profile never touch an existing order.
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	DateCreated time.Time       `json:"date_created" gorm:"autoCreateTime"`
	Status      OrderStatus     `json:"status" gorm:"type:varchar(20);default:'Recebido'"`
	TotalPrice  decimal.Decimal `json:"total_price" gorm:"type:numeric(10,2);default:0"`
	DeliveryFee decimal.Decimal `json:"delivery_fee" gorm:"type:numeric(10,2);default:0"`

	CustomerName  string `json:"customer_name" gorm:"size:100"`
	CustomerPhone string `json:"customer_phone" gorm:"size:20"`
	Street        string `json:"street" gorm:"size:200"`
	Number        string `json:"number" gorm:"size:20"`
	Neighborhood  string `json:"neighborhood" gorm:"size:100"`
	Complement    string `json:"complement" gorm:"size:100"`

	UserID *uint `json:"user_id" gorm:"index"` // nil = guest order

	PaymentMethod     string        `json:"payment_method" gorm:"size:50"`
	PaymentStatus     PaymentStatus `json:"payment_status" gorm:"type:varchar(20);default:'pending'"`
	ExternalReference string        `json:"external_reference" gorm:"size:64;uniqueIndex"`

	CouponCode string          `json:"coupon_code,omitempty" gorm:"size:50"`
	Discount   decimal.Decimal `json:"discount" gorm:"type:numeric(10,2);default:0"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}
