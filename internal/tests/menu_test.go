package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"qrmesa/internal/domain"
	"qrmesa/internal/mocks"
	"qrmesa/internal/service"
)

var (
	manager = domain.User{ID: 1, Role: domain.RoleManager}
	waiter  = domain.User{ID: 2, Role: domain.RoleStaff}
)

func TestCreateMenuItem(t *testing.T) {
	ctx := context.Background()

	t.Run("manager may create", func(t *testing.T) {
		menu := mocks.NewMenuItemStore(t)
		svc := service.NewMenuService(menu, nil, nil)

		menu.On("CreateItem", ctx, mock.AnythingOfType("*domain.MenuItem")).Return(nil).Once()

		item := domain.MenuItem{SKU: "HAM-01", Name: "Hamburguesa Clásica", Price: 15000, IsAvailable: true}
		assert.NoError(t, svc.CreateMenuItem(ctx, &item, manager))
	})

	t.Run("staff may not", func(t *testing.T) {
		menu := mocks.NewMenuItemStore(t)
		svc := service.NewMenuService(menu, nil, nil)

		item := domain.MenuItem{SKU: "HAM-01", Name: "Hamburguesa Clásica", Price: 15000}
		err := svc.CreateMenuItem(ctx, &item, waiter)
		assert.ErrorIs(t, err, service.ErrForbidden)
		menu.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
	})

	t.Run("duplicate sku conflicts", func(t *testing.T) {
		menu := mocks.NewMenuItemStore(t)
		svc := service.NewMenuService(menu, nil, nil)

		menu.On("CreateItem", ctx, mock.Anything).Return(domain.ErrDuplicate).Once()

		item := domain.MenuItem{SKU: "HAM-01", Name: "Hamburguesa Clásica", Price: 15000}
		err := svc.CreateMenuItem(ctx, &item, manager)
		assert.ErrorIs(t, err, service.ErrSKUTaken)
	})
}

func TestUpdateMenuItem(t *testing.T) {
	ctx := context.Background()

	t.Run("patch goes through as-is", func(t *testing.T) {
		menu := mocks.NewMenuItemStore(t)
		svc := service.NewMenuService(menu, nil, nil)

		price := 18000.0
		patch := domain.MenuItemPatch{Price: &price}
		menu.On("UpdateItem", ctx, 1, patch).
			Return(&domain.MenuItem{ID: 1, Name: "Hamburguesa Clásica", Price: 18000, IsAvailable: true}, nil).Once()

		item, err := svc.UpdateMenuItem(ctx, 1, patch, manager)
		assert.NoError(t, err)
		assert.Equal(t, 18000.0, item.Price)
	})

	t.Run("unknown id", func(t *testing.T) {
		menu := mocks.NewMenuItemStore(t)
		svc := service.NewMenuService(menu, nil, nil)

		menu.On("UpdateItem", ctx, 9, mock.Anything).Return(nil, domain.ErrNotFound).Once()

		_, err := svc.UpdateMenuItem(ctx, 9, domain.MenuItemPatch{}, manager)
		assert.ErrorIs(t, err, service.ErrMenuItemNotFound)
	})

	t.Run("set availability builds the patch", func(t *testing.T) {
		menu := mocks.NewMenuItemStore(t)
		svc := service.NewMenuService(menu, nil, nil)

		menu.On("UpdateItem", ctx, 1, mock.MatchedBy(func(patch domain.MenuItemPatch) bool {
			return patch.IsAvailable != nil && !*patch.IsAvailable && patch.Price == nil && patch.Name == nil
		})).Return(&domain.MenuItem{ID: 1, IsAvailable: false}, nil).Once()

		item, err := svc.SetAvailability(ctx, 1, false, manager)
		assert.NoError(t, err)
		assert.False(t, item.IsAvailable)
	})
}

func TestDeleteMenuItem(t *testing.T) {
	ctx := context.Background()

	t.Run("delete", func(t *testing.T) {
		menu := mocks.NewMenuItemStore(t)
		svc := service.NewMenuService(menu, nil, nil)

		menu.On("DeleteItem", ctx, 1).Return(int64(1), nil).Once()
		assert.NoError(t, svc.DeleteMenuItem(ctx, 1, manager))
	})

	t.Run("nothing deleted", func(t *testing.T) {
		menu := mocks.NewMenuItemStore(t)
		svc := service.NewMenuService(menu, nil, nil)

		menu.On("DeleteItem", ctx, 9).Return(int64(0), nil).Once()

		err := svc.DeleteMenuItem(ctx, 9, manager)
		assert.ErrorIs(t, err, service.ErrMenuItemNotFound)
	})

	t.Run("staff forbidden", func(t *testing.T) {
		menu := mocks.NewMenuItemStore(t)
		svc := service.NewMenuService(menu, nil, nil)

		err := svc.DeleteMenuItem(ctx, 1, waiter)
		assert.ErrorIs(t, err, service.ErrForbidden)
		menu.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
	})
}

func TestMenuByQRCode(t *testing.T) {
	ctx := context.Background()
	mesa := &domain.Table{ID: 4, QRCode: "QR123"}
	carta := []domain.MenuItem{{ID: 1, Name: "Hamburguesa Clásica", Price: 15000, IsAvailable: true}}

	t.Run("valid token returns the orderable menu", func(t *testing.T) {
		menu := mocks.NewMenuItemStore(t)
		tables := mocks.NewTableStore(t)
		svc := service.NewMenuService(menu, tables, nil)

		tables.On("GetByQRCode", ctx, "QR123").Return(mesa, nil).Once()
		menu.On("ListAvailable", ctx).Return(carta, nil).Once()

		items, err := svc.MenuByQRCode(ctx, "QR123")
		assert.NoError(t, err)
		assert.Equal(t, carta, items)
	})

	t.Run("unknown token", func(t *testing.T) {
		menu := mocks.NewMenuItemStore(t)
		tables := mocks.NewTableStore(t)
		svc := service.NewMenuService(menu, tables, nil)

		tables.On("GetByQRCode", ctx, "QR_INEXISTENTE").Return(nil, domain.ErrNotFound).Once()

		_, err := svc.MenuByQRCode(ctx, "QR_INEXISTENTE")
		assert.ErrorIs(t, err, service.ErrTableNotFound)
		menu.AssertNotCalled(t, "ListAvailable", mock.Anything)
	})

	t.Run("cache hit skips the table lookup", func(t *testing.T) {
		menu := mocks.NewMenuItemStore(t)
		tables := mocks.NewTableStore(t)
		cache := mocks.NewTableCache(t)
		svc := service.NewMenuService(menu, tables, cache)

		cache.On("GetByQRCode", ctx, "QR123").Return(mesa, nil).Once()
		menu.On("ListAvailable", ctx).Return(carta, nil).Once()

		_, err := svc.MenuByQRCode(ctx, "QR123")
		assert.NoError(t, err)
		tables.AssertNotCalled(t, "GetByQRCode", mock.Anything, mock.Anything)
	})
}
