// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

// Order snapshots the unit price at creation time; it is never recomputed
// from the product afterwards.
type Order struct {
	BaseModel
	UserID     uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID   `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity   int         `json:"quantity" gorm:"not null"`
	UnitPrice  float64     `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TotalPrice float64     `json:"total_price" gorm:"type:decimal(10,2);not null"`
	Status     OrderStatus `json:"status" gorm:"type:varchar(20);default:'confirmed';not null"`

	// Relationships
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
