package domain

// OrderItemRequest is one requested line of a QR order. The caller only
// names the item and the quantity; prices are always resolved
// server-side from the current menu.
type OrderItemRequest struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

// MenuItemPatch lists the only menu item fields an update may touch.
// Nil fields are left unchanged.
type MenuItemPatch struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// TablePatch lists the only table fields an update may touch.
type TablePatch struct {
	Capacity *int `json:"capacity,omitempty"`
}
