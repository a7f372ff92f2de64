package service

import (
	"context"

	"qrmesa/internal/domain"
)

// OrderStore persists orders and their line items. Implementations own
// the canonical order state; the services never cache it across calls.
type OrderStore interface {
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListByTable(ctx context.Context, tableID int) ([]domain.Order, error)
	ListByQRCode(ctx context.Context, qrCode string) ([]domain.Order, error)
	ListByStatuses(ctx context.Context, statuses []domain.OrderStatus) ([]domain.Order, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	AddItem(ctx context.Context, item *domain.OrderItem) error
	UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) error
	DeleteOrder(ctx context.Context, id int) error
}

type TableStore interface {
	GetTable(ctx context.Context, id int) (*domain.Table, error)
	GetByNumber(ctx context.Context, number int) (*domain.Table, error)
	GetByQRCode(ctx context.Context, qrCode string) (*domain.Table, error)
	ListTables(ctx context.Context) ([]domain.Table, error)
	MaxNumber(ctx context.Context) (int, error)
	HighestNumbered(ctx context.Context) (*domain.Table, error)
	CreateTable(ctx context.Context, table *domain.Table) error
	UpdateQRCode(ctx context.Context, id int, qrCode string) error
	DeleteTable(ctx context.Context, id int) (int64, error)
}

type MenuItemStore interface {
	GetItem(ctx context.Context, id int) (*domain.MenuItem, error)
	GetBySKU(ctx context.Context, sku string) (*domain.MenuItem, error)
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
	ListAvailable(ctx context.Context) ([]domain.MenuItem, error)
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	UpdateItem(ctx context.Context, id int, patch domain.MenuItemPatch) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id int) (int64, error)
}

type UserStore interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
}

// EventNotifier fans order events out to whoever is listening. Delivery
// is at-least-once and best-effort; callers never let a publish failure
// fail the operation that triggered it.
type EventNotifier interface {
	Publish(ctx context.Context, topic domain.EventTopic, order *domain.Order) error
}

// TableCache is an optional read-through cache for the QR scan hot path.
type TableCache interface {
	GetByQRCode(ctx context.Context, qrCode string) (*domain.Table, error)
	Set(ctx context.Context, table *domain.Table) error
	Invalidate(ctx context.Context, qrCode string) error
}

type OrderServiceInterface interface {
	CreateOrderByQRCode(ctx context.Context, qrCode string, items []domain.OrderItemRequest) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus, principal domain.Principal) (*domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListOrdersByTable(ctx context.Context, tableID int) ([]domain.Order, error)
	ListOrdersByQRCode(ctx context.Context, qrCode string) ([]domain.Order, error)
	ListOpenOrders(ctx context.Context) ([]domain.Order, error)
}

type TableServiceInterface interface {
	CreateTable(ctx context.Context, number *int, capacity int, withQRCode bool) (*domain.Table, error)
	GenerateQRCode(ctx context.Context, tableID int) (*domain.Table, error)
	RemoveTable(ctx context.Context) (*domain.Table, error)
	RemoveTableByID(ctx context.Context, id int) error
	GetTable(ctx context.Context, id int) (*domain.Table, error)
	ListTables(ctx context.Context) ([]domain.Table, error)
	QRImage(ctx context.Context, tableID int) ([]byte, error)
}

type MenuServiceInterface interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem, principal domain.Principal) error
	UpdateMenuItem(ctx context.Context, id int, patch domain.MenuItemPatch, principal domain.Principal) (*domain.MenuItem, error)
	SetAvailability(ctx context.Context, id int, available bool, principal domain.Principal) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int, principal domain.Principal) error
	ListMenu(ctx context.Context) ([]domain.MenuItem, error)
	ListAvailable(ctx context.Context) ([]domain.MenuItem, error)
	MenuByQRCode(ctx context.Context, qrCode string) ([]domain.MenuItem, error)
}

var _ OrderServiceInterface = (*OrderService)(nil)
var _ TableServiceInterface = (*TableService)(nil)
var _ MenuServiceInterface = (*MenuService)(nil)
