package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/GermanChai/germanchai/entity"
	"github.com/GermanChai/germanchai/pkg/events"
	"github.com/GermanChai/germanchai/repository"

	"gorm.io/gorm"
)

// Checkout precondition failures, in the order they are checked. Each maps
// to a distinct client action (login redirect, profile redirect, fix input).
var (
	ErrNotAuthenticated  = errors.New("you must be logged in to checkout")
	ErrProfileIncomplete = errors.New("please complete your profile before placing an order")
	ErrAddressRequired   = errors.New("please select a delivery address")
	ErrCartEmpty         = errors.New("cart is empty")
)

// OrderNotifier pushes a status change to the owning user's live
// connections. Implemented by ws.OrderHub.
type OrderNotifier interface {
	NotifyOrder(userID uint, evt events.OrderEvent)
}

type CheckoutService struct {
	DB       *gorm.DB
	Orders   *repository.OrderRepository
	Menus    *repository.MenuRepository
	Profiles *repository.ProfileRepository
	Carts    CartStore
	Events   events.Publisher
	Notifier OrderNotifier
}

func NewCheckoutService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	menus *repository.MenuRepository,
	profiles *repository.ProfileRepository,
	carts CartStore,
	pub events.Publisher,
	notifier OrderNotifier,
) *CheckoutService {
	return &CheckoutService{
		DB: db, Orders: orders, Menus: menus, Profiles: profiles,
		Carts: carts, Events: pub, Notifier: notifier,
	}
}

type CheckoutReq struct {
	DiningOption     string `json:"diningOption" binding:"required,oneof=dine-in dine-out"`
	AddressID        uint   `json:"addressId"`
	SpecialRequests  string `json:"specialRequests"`
	EstimatedArrival string `json:"estimatedArrival"` // RFC3339, dine-in only
}

type CheckoutRes struct {
	OrderID uint   `json:"orderId"`
	Total   int64  `json:"total"`
	Status  string `json:"status"`
}

// Checkout turns the user's cart into a submitted order. The header and its
// lines are written in one transaction, header strictly first since the
// lines need its id. The cart is cleared only after the transaction
// commits, so a failed submission leaves it intact for retry.
func (s *CheckoutService) Checkout(ctx context.Context, userID uint, req *CheckoutReq) (*CheckoutRes, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	profile, err := s.Profiles.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if !profile.Complete() {
		return nil, ErrProfileIncomplete
	}

	var addr *entity.Address
	if req.DiningOption == entity.DineOut {
		if req.AddressID == 0 {
			return nil, ErrAddressRequired
		}
		addr, err = s.Profiles.GetAddress(userID, req.AddressID)
		if err != nil {
			return nil, ErrAddressRequired
		}
	}

	cart, err := s.Carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.Empty() {
		return nil, ErrCartEmpty
	}

	order := entity.Order{
		UserID:          userID,
		Status:          entity.StatusPending,
		CustomerName:    profile.FullName,
		CustomerPhone:   profile.Phone,
		DiningOption:    req.DiningOption,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	}
	if addr != nil {
		order.CustomerAddress = addr.AddressLine
		order.AddressID = &addr.ID
	}
	if req.DiningOption == entity.DineIn && req.EstimatedArrival != "" {
		t, err := time.Parse(time.RFC3339, req.EstimatedArrival)
		if err != nil {
			return nil, errors.New("invalid estimated arrival time")
		}
		order.EstimatedArrivalTime = &t
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var total int64

		// price each line at its current catalog price
		type priced struct {
			menuItemID uint
			qty        int
			price      int64
		}
		rows := make([]priced, 0, len(cart.Lines))
		for _, l := range cart.Lines {
			m, err := s.Menus.FindBasics(l.MenuItemID)
			if err != nil {
				return errors.New("menu item not found")
			}
			total += m.Price * int64(l.Qty)
			rows = append(rows, priced{menuItemID: m.ID, qty: l.Qty, price: m.Price})
		}
		order.TotalAmount = total

		if err := s.Orders.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, r := range rows {
			oi := entity.OrderItem{
				OrderID:     order.ID,
				MenuItemID:  r.menuItemID,
				Quantity:    r.qty,
				PriceAtTime: r.price,
			}
			if err := s.Orders.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// submission is durable; the cart is no longer the source of truth
	if err := s.Carts.Delete(ctx, userID); err != nil {
		log.Printf("clear cart after checkout: %v", err)
	}

	evt := events.OrderEvent{
		Type:      events.TypeOrderCreated,
		OrderID:   order.ID,
		UserID:    userID,
		Status:    order.Status,
		Total:     order.TotalAmount,
		Timestamp: time.Now(),
	}
	if err := s.Events.Publish(ctx, evt); err != nil {
		log.Printf("publish order created: %v", err)
	}
	if s.Notifier != nil {
		s.Notifier.NotifyOrder(userID, evt)
	}

	return &CheckoutRes{OrderID: order.ID, Total: order.TotalAmount, Status: order.Status}, nil
}

// TimeSlot is one selectable dine-in arrival option.
type TimeSlot struct {
	Value string `json:"value"` // RFC3339, submitted back as estimatedArrival
	Label string `json:"label"`
}

// Slots offers the next 12 hourly arrival slots starting one hour from now.
func Slots(now time.Time) []TimeSlot {
	slots := make([]TimeSlot, 0, 12)
	for i := 1; i <= 12; i++ {
		t := now.Add(time.Duration(i) * time.Hour)
		slots = append(slots, TimeSlot{
			Value: t.Format(time.RFC3339),
			Label: t.Format("3:04 PM, Jan 2"),
		})
	}
	return slots
}
