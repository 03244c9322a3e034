package services

import (
	"context"

	"github.com/GermanChai/germanchai/entity"
	"github.com/GermanChai/germanchai/repository"
)

// CartStore is the durable key-value home of each user's working cart.
type CartStore interface {
	Load(ctx context.Context, userID uint) (*entity.Cart, error)
	Save(ctx context.Context, c *entity.Cart) error
	Delete(ctx context.Context, userID uint) error
}

// CartService orchestrates load -> mutate -> save around the pure cart
// aggregate. The mutations themselves never fail; only the store can.
type CartService struct {
	Store    CartStore
	MenuRepo *repository.MenuRepository
}

func NewCartService(store CartStore, menuRepo *repository.MenuRepository) *CartService {
	return &CartService{Store: store, MenuRepo: menuRepo}
}

type CartView struct {
	Lines []entity.CartLine `json:"lines"`
	Total int64             `json:"total"`
}

func view(c *entity.Cart) *CartView {
	lines := c.Lines
	if lines == nil {
		lines = []entity.CartLine{}
	}
	return &CartView{Lines: lines, Total: c.Total()}
}

func (s *CartService) Get(ctx context.Context, userID uint) (*CartView, error) {
	c, err := s.Store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return view(c), nil
}

// AddItem queues one unit of the menu item. Unavailable items are accepted
// here on purpose; availability is a display and checkout concern.
func (s *CartService) AddItem(ctx context.Context, userID, menuItemID uint) (*CartView, error) {
	item, err := s.MenuRepo.FindBasics(menuItemID)
	if err != nil {
		return nil, err
	}
	c, err := s.Store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.Add(*item)
	if err := s.Store.Save(ctx, c); err != nil {
		return nil, err
	}
	return view(c), nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, menuItemID uint) (*CartView, error) {
	c, err := s.Store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.Remove(menuItemID)
	if err := s.Store.Save(ctx, c); err != nil {
		return nil, err
	}
	return view(c), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, menuItemID uint, qty int) (*CartView, error) {
	c, err := s.Store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.SetQty(menuItemID, qty)
	if err := s.Store.Save(ctx, c); err != nil {
		return nil, err
	}
	return view(c), nil
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	return s.Store.Delete(ctx, userID)
}
