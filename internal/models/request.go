// internal/models/request.go
package models

import (
	"github.com/google/uuid"
)

type ProductRequest struct {
	BaseModel
	UserID             uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductName        string        `json:"product_name" gorm:"size:255;not null"`
	Description        string        `json:"description" gorm:"type:text"`
	PriceRange         string        `json:"price_range" gorm:"size:100"`
	EstimatedPrice     *float64      `json:"estimated_price" gorm:"type:decimal(10,2)"`
	SupplierSuggestion string        `json:"supplier_suggestion" gorm:"size:255"`
	AmountWanted       float64       `json:"amount_wanted" gorm:"default:0"`
	Goal               *int          `json:"goal"`
	AdminNotes         string        `json:"admin_notes" gorm:"type:text"`
	Status             RequestStatus `json:"status" gorm:"type:varchar(20);default:'pending';not null;index"`

	// Relationships
	User     *User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Supports []RequestSupport `json:"supports,omitempty" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

// RequestSupport records one member's endorsement of a request. The composite
// unique index is the authority on "one support per user per request"; a race
// between two identical support calls leaves exactly one row.
type RequestSupport struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_supports_user_request"`
	RequestID uuid.UUID `json:"request_id" gorm:"type:uuid;not null;uniqueIndex:idx_supports_user_request"`

	// Relationships
	User    *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Request *ProductRequest `json:"request,omitempty" gorm:"foreignKey:RequestID"`
}

// TotalRequested approximates crowd demand: the requester's own amount plus
// one requester-sized amount per supporter. Individual supporter amounts are
// not tracked.
func (r *ProductRequest) TotalRequested() float64 {
	return r.AmountWanted + float64(len(r.Supports))*r.AmountWanted
}

// ProgressPercentage is capped at 100. A request without an admin-set goal
// reports zero progress.
func (r *ProductRequest) ProgressPercentage() float64 {
	if r.Goal == nil || *r.Goal <= 0 {
		return 0
	}
	pct := r.TotalRequested() / float64(*r.Goal) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

func (r *ProductRequest) RemainingNeeded() float64 {
	if r.Goal == nil || *r.Goal <= 0 {
		return 0
	}
	remaining := float64(*r.Goal) - r.TotalRequested()
	if remaining < 0 {
		return 0
	}
	return remaining
}
