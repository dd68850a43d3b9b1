package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CustomizationOption is one priced choice inside a customization group
// (e.g. "Bacon" for R$ 3.00 inside "adicionais").
type CustomizationOption struct {
	Name  string          `json:"nome"`
	Price decimal.Decimal `json:"price"`
}

// CustomizationCatalog maps a group name ("carnes", "acompanhamentos",
// "adicionais", ...) to the options the product offers in that group.
// Group names come from the catalog itself, they are not hardcoded rules.
type CustomizationCatalog map[string][]CustomizationOption

func (c CustomizationCatalog) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (c *CustomizationCatalog) Scan(value interface{}) error {
	if value == nil {
		*c = CustomizationCatalog{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into CustomizationCatalog", value)
	}
	if len(data) == 0 {
		*c = CustomizationCatalog{}
		return nil
	}
	return json.Unmarshal(data, c)
}

// Options returns the options of a group, or nil when the group is absent.
func (c CustomizationCatalog) Options(group string) []CustomizationOption {
	if c == nil {
		return nil
	}
	return c[group]
}

type Product struct {
	ID            uint                 `json:"id" gorm:"primaryKey"`
	Name          string               `json:"name" gorm:"size:100;not null"`
	Description   string               `json:"description" gorm:"type:text"`
	Price         decimal.Decimal      `json:"price" gorm:"type:numeric(10,2);not null"`
	ImageURL      string               `json:"image_url" gorm:"size:200"`
	Category      string               `json:"category" gorm:"size:50;default:'Lanche'"`
	Details       CustomizationCatalog `json:"details" gorm:"type:text;default:'{}'"`
	StockQuantity *int                 `json:"stock_quantity"` // nil = unlimited
	IsAvailable   bool                 `json:"is_available" gorm:"default:true"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}
