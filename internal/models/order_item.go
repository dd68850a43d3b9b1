package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ChosenCustomizations records what the customer actually picked, keyed by
// group name. It is stored with the item so the kitchen can reprint exactly
// what was charged, even if the product's catalog changes later.
type ChosenCustomizations map[string][]string

func (c ChosenCustomizations) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (c *ChosenCustomizations) Scan(value interface{}) error {
	if value == nil {
		*c = ChosenCustomizations{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ChosenCustomizations", value)
	}
	if len(data) == 0 {
		*c = ChosenCustomizations{}
		return nil
	}
	return json.Unmarshal(data, c)
}

// OrderItem is one line of an order. PriceAtTime is the unit price as
// charged, frozen at order time; it is never recalculated.
type OrderItem struct {
	ID             uint                 `json:"id" gorm:"primaryKey"`
	OrderID        uint                 `json:"order_id" gorm:"not null;index"`
	ProductID      uint                 `json:"product_id" gorm:"not null"`
	Quantity       int                  `json:"quantity" gorm:"not null"`
	PriceAtTime    decimal.Decimal      `json:"price_at_time" gorm:"type:numeric(10,2);not null"`
	Customizations ChosenCustomizations `json:"customizations" gorm:"type:text;default:'{}'"`
}
