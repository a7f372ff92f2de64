package domain

import "time"

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

const (
	// StatusOpen only appears in legacy seeded rows; the engine never
	// produces it and never targets it.
	StatusOpen      OrderStatus = "OPEN"
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusPaid      OrderStatus = "PAID"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Role represents the access level of a user.
type Role string

const (
	RoleSuperadmin Role = "SUPERADMIN"
	RoleManager    Role = "MANAGER"
	RoleStaff      Role = "STAFF"
)

// GuestEmail is the reserved address of the synthetic user that owns
// every QR-placed order. The account is provisioned lazily and is never
// used for interactive login.
const GuestEmail = "invitado@qrmesa.local"

type MenuItem struct {
	ID          int       `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsOrderable reports whether the item can be placed on a new order.
func (m MenuItem) IsOrderable() bool {
	return m.IsAvailable && m.Price > 0
}

// WithAvailability returns a copy with the availability flag replaced.
func (m MenuItem) WithAvailability(available bool) MenuItem {
	m.IsAvailable = available
	return m
}

type Table struct {
	ID       int    `json:"id"`
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	QRCode   string `json:"qr_code,omitempty"`
}

// CanAccommodate reports whether guests fit at this table.
func (t Table) CanAccommodate(guests int) bool {
	return t.Capacity >= guests
}

type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash []byte `json:"-"`
	Role         Role   `json:"role"`
}

// CanManageMenu reports whether the user may mutate menu items and tables.
func (u User) CanManageMenu() bool {
	return u.Role == RoleManager || u.Role == RoleSuperadmin
}

// CanManageOrders reports whether the user may transition order statuses.
// Any authenticated user qualifies; there is no customer role in the
// domain, guests act only through QR tokens.
func (u User) CanManageOrders() bool {
	return u.Role == RoleSuperadmin || u.Role == RoleManager || u.Role == RoleStaff
}

// Principal is the authenticated identity handed in by the transport
// layer. Credential verification happens outside this module.
type Principal interface {
	CanManageOrders() bool
	CanManageMenu() bool
}

var _ Principal = User{}

type OrderItem struct {
	ID         int     `json:"id"`
	OrderID    int     `json:"order_id"`
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	// Price is snapshotted from the menu item at order time; later menu
	// edits must never change it.
	Price float64 `json:"price"`
}

// GetTotal returns the line total for this item.
func (i OrderItem) GetTotal() float64 {
	return float64(i.Quantity) * i.Price
}

type Order struct {
	ID        int         `json:"id"`
	TableID   int         `json:"table_id"`
	UserID    int         `json:"user_id"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

// CanBeModified reports whether the order still accepts status changes.
// PAID, DELIVERED and CANCELLED orders are closed; everything else,
// including legacy OPEN rows, is modifiable.
func (o Order) CanBeModified() bool {
	switch o.Status {
	case StatusPaid, StatusDelivered, StatusCancelled:
		return false
	default:
		return true
	}
}

// WithStatus returns a copy of the order carrying the new status. The
// engine replaces orders wholesale on each transition.
func (o Order) WithStatus(status OrderStatus) Order {
	o.Status = status
	return o
}

// GetTotalAmount sums the line totals of all items.
func (o Order) GetTotalAmount() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.GetTotal()
	}
	return total
}
