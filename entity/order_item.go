package entity

import (
	"gorm.io/gorm"
)

// OrderItem is immutable once created. PriceAtTime is the menu item's
// price captured at submission; catalog price changes never touch it.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity    int   `json:"quantity"`
	PriceAtTime int64 `json:"priceAtTime"`
}
