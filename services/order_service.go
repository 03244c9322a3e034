package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/GermanChai/germanchai/entity"
	"github.com/GermanChai/germanchai/pkg/events"
	"github.com/GermanChai/germanchai/repository"

	"gorm.io/gorm"
)

// CancelWindow is how long after creation the owning user may self-cancel
// a still-pending order.
const CancelWindow = 10 * time.Minute

var (
	ErrNotCancellable = errors.New("order can no longer be cancelled")
	ErrCancelExpired  = errors.New("orders can only be cancelled within 10 minutes of placing them")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrTerminalStatus = errors.New("order is already in a final state")
	ErrStatusConflict = errors.New("order status changed, refresh and try again")
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Events   events.Publisher
	Notifier OrderNotifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, pub events.Publisher, notifier OrderNotifier) *OrderService {
	return &OrderService{DB: db, Repo: repo, Events: pub, Notifier: notifier}
}

// ListForUser returns the user's orders, most recent first, with line items.
func (s *OrderService) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID, limit)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// Cancel lets the owner cancel a pending order within the cancel window.
// The window is evaluated against the wall clock at call time, never
// against a cached render. Both checks happen before any write.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID uint) error {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return err
	}
	if o.Status != entity.StatusPending {
		return ErrNotCancellable
	}
	if time.Since(o.CreatedAt) > CancelWindow {
		return ErrCancelExpired
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// guard on pending so a concurrent admin transition wins cleanly
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.StatusPending, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotCancellable
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publishStatus(ctx, o, entity.StatusCancelled)
	return nil
}

// ---------------- Admin ----------------

func (s *OrderService) ListAll(limit int) ([]entity.Order, error) {
	return s.Repo.ListAll(limit)
}

// SetStatus is the admin transition: any valid status, any time, except
// out of a terminal state.
func (s *OrderService) SetStatus(ctx context.Context, orderID uint, status string) error {
	if !entity.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	if o.Status == status {
		return nil
	}
	if !entity.CanTransition(o.Status, status) {
		return ErrTerminalStatus
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, status)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publishStatus(ctx, o, status)
	return nil
}

func (s *OrderService) publishStatus(ctx context.Context, o *entity.Order, status string) {
	evt := events.OrderEvent{
		Type:      events.TypeOrderStatusChanged,
		OrderID:   o.ID,
		UserID:    o.UserID,
		Status:    status,
		Timestamp: time.Now(),
	}
	if err := s.Events.Publish(ctx, evt); err != nil {
		log.Printf("publish status change: %v", err)
	}
	if s.Notifier != nil {
		s.Notifier.NotifyOrder(o.UserID, evt)
	}
}
