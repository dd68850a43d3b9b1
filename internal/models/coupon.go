package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon supports a percentage discount, a fixed discount, or both.
// UsageLimit nil means unlimited redemptions.
type Coupon struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Code            string          `json:"code" gorm:"size:50;uniqueIndex;not null"`
	DiscountPercent decimal.Decimal `json:"discount_percent" gorm:"type:numeric(5,2);default:0"`
	DiscountFixed   decimal.Decimal `json:"discount_fixed" gorm:"type:numeric(10,2);default:0"`
	MinPurchase     decimal.Decimal `json:"min_purchase" gorm:"type:numeric(10,2);default:0"`
	UsageLimit      *int            `json:"usage_limit"`
	UsedCount       int             `json:"used_count" gorm:"default:0"`
	IsActive        bool            `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Redeemable reports whether the coupon is active and still under its
// usage limit.
func (c *Coupon) Redeemable() bool {
	if !c.IsActive {
		return false
	}
	return c.UsageLimit == nil || c.UsedCount < *c.UsageLimit
}
