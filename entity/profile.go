package entity

import (
	"gorm.io/gorm"
)

// Profile holds the contact details checkout snapshots into an order.
type Profile struct {
	gorm.Model
	UserID   uint   `gorm:"uniqueIndex" json:"userId"`
	User     User   `json:"-"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// Complete reports whether the profile satisfies the checkout precondition.
func (p *Profile) Complete() bool {
	return p != nil && p.FullName != "" && p.Phone != ""
}
