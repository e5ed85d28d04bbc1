// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string     `json:"name" gorm:"size:100;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);default:'member';not null"`
	LastLoginAt  *time.Time `json:"last_login_at"`

	// Relationships
	Orders          []Order          `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	ProductRequests []ProductRequest `json:"product_requests,omitempty" gorm:"foreignKey:UserID"`
	RequestSupports []RequestSupport `json:"request_supports,omitempty" gorm:"foreignKey:UserID"`
	News            []News           `json:"news,omitempty" gorm:"foreignKey:AuthorID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
