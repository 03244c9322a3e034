package services

import (
	"context"
	"testing"
	"time"

	"github.com/GermanChai/germanchai/entity"
	"github.com/GermanChai/germanchai/pkg/events"
	"github.com/GermanChai/germanchai/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	db := newTestDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db), events.NopPublisher{}, nil), db
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, status string, age time.Duration) entity.Order {
	t.Helper()
	o := entity.Order{UserID: userID, Status: status, TotalAmount: 4000, DiningOption: entity.DineIn}
	require.NoError(t, db.Create(&o).Error)
	if age > 0 {
		require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", o.ID).
			UpdateColumn("created_at", time.Now().Add(-age)).Error)
		o.CreatedAt = time.Now().Add(-age)
	}
	return o
}

func TestCancel_WithinWindow(t *testing.T) {
	svc, db := newOrderService(t)
	o := seedOrder(t, db, 1, entity.StatusPending, 9*time.Minute+59*time.Second)

	require.NoError(t, svc.Cancel(context.Background(), 1, o.ID))

	var got entity.Order
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.Equal(t, entity.StatusCancelled, got.Status)
}

func TestCancel_WindowExpired(t *testing.T) {
	svc, db := newOrderService(t)
	o := seedOrder(t, db, 1, entity.StatusPending, 10*time.Minute+1*time.Second)

	err := svc.Cancel(context.Background(), 1, o.ID)

	assert.ErrorIs(t, err, ErrCancelExpired)
	var got entity.Order
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.Equal(t, entity.StatusPending, got.Status, "a rejected cancellation must not mutate status")
}

func TestCancel_OnlyPendingOrders(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{name: "preparing", status: entity.StatusPreparing},
		{name: "ready", status: entity.StatusReady},
		{name: "delivered", status: entity.StatusDelivered},
		{name: "already_cancelled", status: entity.StatusCancelled},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, db := newOrderService(t)
			o := seedOrder(t, db, 1, testCase.status, time.Minute)

			err := svc.Cancel(context.Background(), 1, o.ID)

			assert.ErrorIs(t, err, ErrNotCancellable)
			var got entity.Order
			require.NoError(t, db.First(&got, o.ID).Error)
			assert.Equal(t, testCase.status, got.Status)
		})
	}
}

func TestCancel_OnlyOwner(t *testing.T) {
	svc, db := newOrderService(t)
	o := seedOrder(t, db, 1, entity.StatusPending, time.Minute)

	err := svc.Cancel(context.Background(), 2, o.ID)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSetStatus_AdminTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{name: "pending_to_preparing", from: entity.StatusPending, to: entity.StatusPreparing},
		{name: "preparing_to_delivered", from: entity.StatusPreparing, to: entity.StatusDelivered},
		{name: "admin_may_cancel_late", from: entity.StatusProcessing, to: entity.StatusCancelled},
		{name: "unknown_status", from: entity.StatusPending, to: "shipped", wantErr: ErrInvalidStatus},
		{name: "out_of_completed", from: entity.StatusCompleted, to: entity.StatusPending, wantErr: ErrTerminalStatus},
		{name: "out_of_cancelled", from: entity.StatusCancelled, to: entity.StatusReady, wantErr: ErrTerminalStatus},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, db := newOrderService(t)
			o := seedOrder(t, db, 1, testCase.from, time.Hour)

			err := svc.SetStatus(context.Background(), o.ID, testCase.to)

			var got entity.Order
			require.NoError(t, db.First(&got, o.ID).Error)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Equal(t, testCase.from, got.Status)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.to, got.Status)
			}
		})
	}
}

func TestSetStatus_NoTimeWindowForAdmin(t *testing.T) {
	svc, db := newOrderService(t)
	o := seedOrder(t, db, 1, entity.StatusPending, 3*time.Hour)

	require.NoError(t, svc.SetStatus(context.Background(), o.ID, entity.StatusCancelled))
}

func TestListForUser_NewestFirstOwnOnly(t *testing.T) {
	svc, db := newOrderService(t)
	old := seedOrder(t, db, 1, entity.StatusCompleted, 2*time.Hour)
	fresh := seedOrder(t, db, 1, entity.StatusPending, 0)
	seedOrder(t, db, 2, entity.StatusPending, 0) // someone else's

	orders, err := svc.ListForUser(1, 0)
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, fresh.ID, orders[0].ID)
	assert.Equal(t, old.ID, orders[1].ID)
}

func TestDetailForUser_IncludesItems(t *testing.T) {
	svc, db := newOrderService(t)
	chai := seedMenuItem(t, db, "Masala Chai", "Chai", 4000, true)
	o := seedOrder(t, db, 1, entity.StatusPending, 0)
	require.NoError(t, db.Create(&entity.OrderItem{
		OrderID: o.ID, MenuItemID: chai.ID, Quantity: 2, PriceAtTime: 4000,
	}).Error)

	got, err := svc.DetailForUser(1, o.ID)
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "Masala Chai", got.Items[0].MenuItem.Name)
}
