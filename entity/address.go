package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	UserID      uint   `json:"userId"`
	User        User   `json:"-"`
	Label       string `json:"label"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	Pincode     string `json:"pincode"`
}
