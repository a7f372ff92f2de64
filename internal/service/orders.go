package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"time"

	"qrmesa/internal/domain"
)

type OrderService struct {
	orders   OrderStore
	tables   TableStore
	menu     MenuItemStore
	users    UserStore
	cache    TableCache
	notifier EventNotifier
}

func NewOrderService(orders OrderStore, tables TableStore, menu MenuItemStore, users UserStore, cache TableCache, notifier EventNotifier) *OrderService {
	return &OrderService{
		orders:   orders,
		tables:   tables,
		menu:     menu,
		users:    users,
		cache:    cache,
		notifier: notifier,
	}
}

// CreateOrderByQRCode places a guest order against the table identified
// by qrCode. Line items are resolved sequentially in request order and
// each price is snapshotted from the menu at this instant. A failure
// mid-loop aborts the operation; items already written stay behind and
// the order is never returned to the caller (no rollback, matching the
// persisted source of truth semantics).
func (s *OrderService) CreateOrderByQRCode(ctx context.Context, qrCode string, items []domain.OrderItemRequest) (*domain.Order, error) {
	table, err := s.resolveTable(ctx, qrCode)
	if err != nil {
		return nil, err
	}

	guest, err := s.resolveGuest(ctx)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		TableID: table.ID,
		UserID:  guest.ID,
		Status:  domain.StatusPending,
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	for _, req := range items {
		menuItem, err := s.menu.GetItem(ctx, req.MenuItemID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &MenuItemNotFoundError{ID: req.MenuItemID}
			}
			return nil, err
		}
		if !menuItem.IsOrderable() {
			return nil, &MenuItemUnavailableError{Name: menuItem.Name}
		}

		item := &domain.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Quantity:   req.Quantity,
			Price:      menuItem.Price,
		}
		if err := s.orders.AddItem(ctx, item); err != nil {
			return nil, err
		}
	}

	// Re-fetch so the returned aggregate is exactly what was persisted.
	complete, err := s.orders.GetOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.TopicOrderCreated, complete)
	s.publish(ctx, domain.TopicOrderUpdated, complete)

	return complete, nil
}

// resolveTable looks the table up by QR token, going through the cache
// when one is wired.
func (s *OrderService) resolveTable(ctx context.Context, qrCode string) (*domain.Table, error) {
	if s.cache != nil {
		if table, err := s.cache.GetByQRCode(ctx, qrCode); err == nil && table != nil {
			return table, nil
		}
	}

	table, err := s.tables.GetByQRCode(ctx, qrCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, table)
	}
	return table, nil
}

// resolveGuest returns the shared guest identity, creating it on first
// use. Concurrent first orders race on the insert; the users.email
// uniqueness constraint arbitrates and the loser re-reads.
func (s *OrderService) resolveGuest(ctx context.Context) (*domain.User, error) {
	guest, err := s.users.GetByEmail(ctx, domain.GuestEmail)
	if err == nil {
		return guest, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	created := &domain.User{
		Email:        domain.GuestEmail,
		PasswordHash: guestCredential(),
		Role:         domain.RoleStaff,
	}
	err = s.users.CreateUser(ctx, created)
	if err == nil {
		return created, nil
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return s.users.GetByEmail(ctx, domain.GuestEmail)
	}
	return nil, err
}

// guestCredential derives the opaque placeholder hash stored on the
// guest account. Guests never log in interactively, so this is a
// provisioning detail, not a security boundary.
func guestCredential() []byte {
	sum := sha256.Sum256([]byte(domain.GuestEmail + ":" + time.Now().UTC().Format("2006-01-02")))
	return sum[:]
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrdersByTable(ctx context.Context, tableID int) ([]domain.Order, error) {
	return s.orders.ListByTable(ctx, tableID)
}

// ListOrdersByQRCode returns the orders placed against a table's QR
// token: the guest-facing order view. The token is the only
// authorization; it is assumed to be distributed physically.
func (s *OrderService) ListOrdersByQRCode(ctx context.Context, qrCode string) ([]domain.Order, error) {
	if _, err := s.resolveTable(ctx, qrCode); err != nil {
		return nil, err
	}
	return s.orders.ListByQRCode(ctx, qrCode)
}

// ListOpenOrders returns every order the staff can still act on, for
// the kitchen and dashboard boards.
func (s *OrderService) ListOpenOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListByStatuses(ctx, []domain.OrderStatus{
		domain.StatusOpen,
		domain.StatusPending,
		domain.StatusPreparing,
		domain.StatusReady,
	})
}
