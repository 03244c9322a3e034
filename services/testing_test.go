package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/GermanChai/germanchai/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// one named in-memory database per test, shared across pooled conns
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Profile{}, &entity.Address{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

// memCartStore is an in-memory CartStore for tests.
type memCartStore struct {
	carts map[uint]entity.Cart
	fail  error // when set, every op returns it
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[uint]entity.Cart)}
}

func (s *memCartStore) Load(_ context.Context, userID uint) (*entity.Cart, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	if c, ok := s.carts[userID]; ok {
		cp := c
		cp.Lines = append([]entity.CartLine(nil), c.Lines...)
		return &cp, nil
	}
	return entity.NewCart(userID), nil
}

func (s *memCartStore) Save(_ context.Context, c *entity.Cart) error {
	if s.fail != nil {
		return s.fail
	}
	cp := *c
	cp.Lines = append([]entity.CartLine(nil), c.Lines...)
	s.carts[c.UserID] = cp
	return nil
}

func (s *memCartStore) Delete(_ context.Context, userID uint) error {
	if s.fail != nil {
		return s.fail
	}
	delete(s.carts, userID)
	return nil
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, category string, price int64, available bool) entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{Name: name, Category: category, Price: price, Available: available}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedUserWithProfile(t *testing.T, db *gorm.DB, email string) entity.User {
	t.Helper()
	user := entity.User{Email: email, Password: "x", Role: entity.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&entity.Profile{
		UserID: user.ID, FullName: "Asha Rao", Phone: "9876543210",
	}).Error)
	return user
}
