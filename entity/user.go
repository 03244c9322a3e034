package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// preload only when needed
	Profile   *Profile  `gorm:"foreignKey:UserID" json:"-"`
	Addresses []Address `gorm:"foreignKey:UserID" json:"-"`
	Orders    []Order   `json:"-"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
