package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qrmesa/internal/domain"
)

func TestOrderCanBeModified(t *testing.T) {
	tests := []struct {
		status     domain.OrderStatus
		modifiable bool
	}{
		{domain.StatusOpen, true},
		{domain.StatusPending, true},
		{domain.StatusPreparing, true},
		{domain.StatusReady, true},
		{domain.StatusDelivered, false},
		{domain.StatusPaid, false},
		{domain.StatusCancelled, false},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.status), func(t *testing.T) {
			order := domain.Order{ID: 1, Status: testCase.status}
			assert.Equal(t, testCase.modifiable, order.CanBeModified())
		})
	}
}

func TestMenuItemIsOrderable(t *testing.T) {
	tests := []struct {
		name      string
		item      domain.MenuItem
		orderable bool
	}{
		{"available with price", domain.MenuItem{Price: 15000, IsAvailable: true}, true},
		{"unavailable", domain.MenuItem{Price: 15000, IsAvailable: false}, false},
		{"zero price", domain.MenuItem{Price: 0, IsAvailable: true}, false},
		{"negative price", domain.MenuItem{Price: -1, IsAvailable: true}, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.orderable, testCase.item.IsOrderable())
		})
	}
}

func TestMenuItemWithAvailability(t *testing.T) {
	item := domain.MenuItem{ID: 1, Name: "Hamburguesa Clásica", Price: 15000, IsAvailable: true}
	toggled := item.WithAvailability(false)

	assert.False(t, toggled.IsAvailable)
	assert.True(t, item.IsAvailable, "original value must stay untouched")
}

func TestTableCanAccommodate(t *testing.T) {
	table := domain.Table{Number: 3, Capacity: 4}

	assert.True(t, table.CanAccommodate(4))
	assert.True(t, table.CanAccommodate(1))
	assert.False(t, table.CanAccommodate(5))
}

func TestOrderTotals(t *testing.T) {
	order := domain.Order{
		Status: domain.StatusPending,
		Items: []domain.OrderItem{
			{Name: "Hamburguesa Clásica", Quantity: 2, Price: 15000},
			{Name: "Limonada", Quantity: 3, Price: 5000},
		},
	}

	assert.Equal(t, 30000.0, order.Items[0].GetTotal())
	assert.Equal(t, 15000.0, order.Items[1].GetTotal())
	assert.Equal(t, 45000.0, order.GetTotalAmount())
}

func TestOrderWithStatusCopies(t *testing.T) {
	order := domain.Order{ID: 9, Status: domain.StatusPending}
	updated := order.WithStatus(domain.StatusPreparing)

	assert.Equal(t, domain.StatusPreparing, updated.Status)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, order.ID, updated.ID)
}

func TestUserPermissions(t *testing.T) {
	tests := []struct {
		role         domain.Role
		manageMenu   bool
		manageOrders bool
	}{
		{domain.RoleSuperadmin, true, true},
		{domain.RoleManager, true, true},
		{domain.RoleStaff, false, true},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.role), func(t *testing.T) {
			user := domain.User{Role: testCase.role}
			assert.Equal(t, testCase.manageMenu, user.CanManageMenu())
			assert.Equal(t, testCase.manageOrders, user.CanManageOrders())
		})
	}
}
