package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Neighborhood holds the delivery fee charged for one delivery area.
// Only active neighborhoods are offered at checkout.
type Neighborhood struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	IsActive  bool            `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
