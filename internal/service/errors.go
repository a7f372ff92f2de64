package service

import (
	"errors"
	"fmt"
)

// Fixed user-visible messages. The Spanish strings are part of the
// contract with the existing clients and are asserted on by the tests.
var (
	ErrTableNotFound     = errors.New("Mesa no encontrada")
	ErrOrderNotFound     = errors.New("Pedido no encontrado")
	ErrUnauthorized      = errors.New("No tienes permisos para actualizar pedidos")
	ErrOrderClosed       = errors.New("Cannot modify a completed or cancelled order")
	ErrTableNumberTaken  = errors.New("table number already in use")
	ErrSKUTaken          = errors.New("menu item sku already in use")
	ErrNoTablesAvailable = errors.New("no tables available")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrForbidden         = errors.New("no tienes permisos para administrar el menú")
)

// MenuItemNotFoundError reports a line item referencing an unknown menu
// item during order creation.
type MenuItemNotFoundError struct {
	ID int
}

func (e *MenuItemNotFoundError) Error() string {
	return fmt.Sprintf("Menu item with ID %d not found", e.ID)
}

func (e *MenuItemNotFoundError) Is(target error) bool {
	return target == ErrMenuItemNotFound
}

// MenuItemUnavailableError reports an item that exists but cannot be
// ordered right now.
type MenuItemUnavailableError struct {
	Name string
}

func (e *MenuItemUnavailableError) Error() string {
	return fmt.Sprintf("Menu item %s is not available", e.Name)
}
