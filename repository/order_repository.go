package repository

import (
	"github.com/GermanChai/germanchai/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForUser returns the user's orders newest first with their line items
// and the referenced menu items preloaded for display.
func (r *OrderRepository) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.MenuItem").
		Order("created_at DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// ListAll is the admin view: every order, newest first.
func (r *OrderRepository) ListAll(limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	var out []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.MenuItem").
		Order("created_at DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// UpdateStatusGuard is a compare-and-set: the row moves from -> to only if
// it is still in from. Zero rows affected means the order advanced (or was
// cancelled) underneath the caller.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, to string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", to).Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Preload("MenuItem").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}
