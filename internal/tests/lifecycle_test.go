package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"qrmesa/internal/domain"
	"qrmesa/internal/mocks"
	"qrmesa/internal/service"
)

func newOrderService(t *testing.T) (*service.OrderService, *mocks.OrderStore, *mocks.EventNotifier) {
	orders := mocks.NewOrderStore(t)
	tables := mocks.NewTableStore(t)
	menu := mocks.NewMenuItemStore(t)
	users := mocks.NewUserStore(t)
	notifier := mocks.NewEventNotifier(t)

	svc := service.NewOrderService(orders, tables, menu, users, nil, notifier)
	return svc, orders, notifier
}

func TestChangeStatus(t *testing.T) {
	openStatuses := []domain.OrderStatus{
		domain.StatusPending, domain.StatusPreparing, domain.StatusReady,
	}
	closedStatuses := []domain.OrderStatus{
		domain.StatusPaid, domain.StatusDelivered, domain.StatusCancelled,
	}

	t.Run("paid always reachable", func(t *testing.T) {
		for _, from := range append(openStatuses, closedStatuses...) {
			updated, err := service.ChangeStatus(domain.Order{ID: 1, Status: from}, domain.StatusPaid)
			assert.NoError(t, err, "from %s", from)
			assert.Equal(t, domain.StatusPaid, updated.Status)
		}
	})

	t.Run("closed orders reject everything else", func(t *testing.T) {
		for _, from := range closedStatuses {
			for _, to := range openStatuses {
				_, err := service.ChangeStatus(domain.Order{ID: 1, Status: from}, to)
				assert.ErrorIs(t, err, service.ErrOrderClosed, "%s -> %s", from, to)
			}
		}
	})

	t.Run("open orders may jump anywhere", func(t *testing.T) {
		// No forward ordering is enforced, backward jumps included.
		updated, err := service.ChangeStatus(domain.Order{ID: 1, Status: domain.StatusReady}, domain.StatusPending)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, updated.Status)
	})

	t.Run("fields other than status survive", func(t *testing.T) {
		order := domain.Order{ID: 5, TableID: 2, UserID: 7, Status: domain.StatusPending,
			Items: []domain.OrderItem{{Quantity: 2, Price: 15000}}}
		updated, err := service.ChangeStatus(order, domain.StatusPreparing)
		assert.NoError(t, err)
		assert.Equal(t, order.ID, updated.ID)
		assert.Equal(t, order.TableID, updated.TableID)
		assert.Equal(t, order.Items, updated.Items)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	staff := domain.User{ID: 3, Role: domain.RoleStaff}

	t.Run("unauthorized principal never touches the store", func(t *testing.T) {
		svc, orders, _ := newOrderService(t)

		_, err := svc.UpdateOrderStatus(ctx, 1, domain.StatusPreparing, domain.User{})
		assert.ErrorIs(t, err, service.ErrUnauthorized)
		orders.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
	})

	t.Run("nil principal rejected", func(t *testing.T) {
		svc, orders, _ := newOrderService(t)

		_, err := svc.UpdateOrderStatus(ctx, 1, domain.StatusPreparing, nil)
		assert.ErrorIs(t, err, service.ErrUnauthorized)
		orders.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
	})

	t.Run("order not found", func(t *testing.T) {
		svc, orders, _ := newOrderService(t)
		orders.On("GetOrder", ctx, 41).Return(nil, domain.ErrNotFound).Once()

		_, err := svc.UpdateOrderStatus(ctx, 41, domain.StatusPreparing, staff)
		assert.ErrorIs(t, err, service.ErrOrderNotFound)
		assert.EqualError(t, err, "Pedido no encontrado")
	})

	t.Run("storage errors pass through", func(t *testing.T) {
		svc, orders, _ := newOrderService(t)
		boom := errors.New("connection reset")
		orders.On("GetOrder", ctx, 41).Return(nil, boom).Once()

		_, err := svc.UpdateOrderStatus(ctx, 41, domain.StatusPreparing, staff)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled order can still be paid", func(t *testing.T) {
		svc, orders, notifier := newOrderService(t)
		orders.On("GetOrder", ctx, 7).
			Return(&domain.Order{ID: 7, Status: domain.StatusCancelled}, nil).Once()
		orders.On("UpdateStatus", ctx, 7, domain.StatusPaid).Return(nil).Once()
		notifier.On("Publish", ctx, mock.Anything, mock.Anything).Return(nil).Twice()

		updated, err := svc.UpdateOrderStatus(ctx, 7, domain.StatusPaid, staff)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, updated.Status)
	})

	t.Run("delivered order rejects preparing", func(t *testing.T) {
		svc, orders, _ := newOrderService(t)
		orders.On("GetOrder", ctx, 8).
			Return(&domain.Order{ID: 8, Status: domain.StatusDelivered}, nil).Once()

		_, err := svc.UpdateOrderStatus(ctx, 8, domain.StatusPreparing, staff)
		assert.ErrorIs(t, err, service.ErrOrderClosed)
		assert.EqualError(t, err, "Cannot modify a completed or cancelled order")
		orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publishes status change before generic update", func(t *testing.T) {
		svc, orders, notifier := newOrderService(t)
		orders.On("GetOrder", ctx, 9).
			Return(&domain.Order{ID: 9, Status: domain.StatusPending}, nil).Once()
		orders.On("UpdateStatus", ctx, 9, domain.StatusPreparing).Return(nil).Once()

		var published []domain.EventTopic
		notifier.On("Publish", ctx, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				published = append(published, args.Get(1).(domain.EventTopic))
				order := args.Get(2).(*domain.Order)
				assert.Equal(t, domain.StatusPreparing, order.Status)
			}).
			Return(nil).Twice()

		_, err := svc.UpdateOrderStatus(ctx, 9, domain.StatusPreparing, staff)
		assert.NoError(t, err)
		assert.Equal(t, []domain.EventTopic{domain.TopicOrderStatusChanged, domain.TopicOrderUpdated}, published)
	})

	t.Run("publish failure does not fail the transition", func(t *testing.T) {
		svc, orders, notifier := newOrderService(t)
		orders.On("GetOrder", ctx, 10).
			Return(&domain.Order{ID: 10, Status: domain.StatusPending}, nil).Once()
		orders.On("UpdateStatus", ctx, 10, domain.StatusReady).Return(nil).Once()
		notifier.On("Publish", ctx, mock.Anything, mock.Anything).
			Return(errors.New("broker down")).Twice()

		updated, err := svc.UpdateOrderStatus(ctx, 10, domain.StatusReady, staff)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusReady, updated.Status)
	})

	t.Run("persist failure surfaces and publishes nothing", func(t *testing.T) {
		svc, orders, notifier := newOrderService(t)
		boom := errors.New("deadlock detected")
		orders.On("GetOrder", ctx, 11).
			Return(&domain.Order{ID: 11, Status: domain.StatusPending}, nil).Once()
		orders.On("UpdateStatus", ctx, 11, domain.StatusReady).Return(boom).Once()

		_, err := svc.UpdateOrderStatus(ctx, 11, domain.StatusReady, staff)
		assert.ErrorIs(t, err, boom)
		notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}
