package entity

import (
	"gorm.io/gorm"
)

// MenuItem is a catalog entry. Price is in paise.
type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Available   bool   `gorm:"default:true" json:"available"`

	// image stored as a blob, served via /menu/:id/image
	Image     []byte `gorm:"type:blob" json:"-"`
	ImageType string `json:"-"`
	ImageSize int64  `json:"-"`
	ImageURL  string `json:"imageUrl"`

	OrderItems []OrderItem `json:"-"`
}
