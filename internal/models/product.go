// internal/models/product.go
package models

import (
	"github.com/google/uuid"
)

type Product struct {
	BaseModel
	Name         string  `json:"name" gorm:"size:255;not null"`
	Description  string  `json:"description" gorm:"type:text"`
	Category     string  `json:"category" gorm:"size:100;index"`
	UnitPrice    float64 `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	CurrentStock int     `json:"current_stock" gorm:"default:0;not null"`
	UnitsPerCase int     `json:"units_per_case" gorm:"default:1"`
	UnitSize     string  `json:"unit_size" gorm:"size:100"`
	TotalUnits   int     `json:"total_units" gorm:"default:0"`
	SoldUnits    int     `json:"sold_units" gorm:"default:0"`
	ImageURL     string  `json:"image_url" gorm:"size:512"`

	// Relationships
	Movements []ProductMovement `json:"movements,omitempty" gorm:"foreignKey:ProductID"`
	Orders    []Order           `json:"orders,omitempty" gorm:"foreignKey:ProductID"`
}

// ProductMovement is the append-only stock audit trail. Rows are never
// updated or deleted once written.
type ProductMovement struct {
	BaseModel
	ProductID    uuid.UUID    `json:"product_id" gorm:"type:uuid;not null;index"`
	MovementType MovementType `json:"movement_type" gorm:"type:varchar(20);not null;index"`
	Quantity     int          `json:"quantity" gorm:"not null"`
	UserID       uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;index"`
	Notes        string       `json:"notes" gorm:"type:text"`

	// Relationships
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// MovementTypeForDelta maps the sign of a stock adjustment to its audit type.
func MovementTypeForDelta(delta int) MovementType {
	if delta >= 0 {
		return MovementTypeStockAdded
	}
	return MovementTypeStockRemoved
}
