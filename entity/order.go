package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	DineIn  = "dine-in"
	DineOut = "dine-out"
)

// Order snapshots the customer's contact details at submission time so
// later profile edits never alter past orders.
type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	TotalAmount int64  `json:"totalAmount"`
	Status      string `gorm:"not null;default:pending" json:"status"`

	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress,omitempty"`

	DiningOption         string     `json:"diningOption"`
	SpecialRequests      string     `json:"specialRequests,omitempty"`
	EstimatedArrivalTime *time.Time `json:"estimatedArrivalTime,omitempty"`

	AddressID *uint `json:"addressId,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}
