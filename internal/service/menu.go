package service

import (
	"context"
	"errors"

	"qrmesa/internal/domain"
)

type MenuService struct {
	menu   MenuItemStore
	tables TableStore
	cache  TableCache
}

func NewMenuService(menu MenuItemStore, tables TableStore, cache TableCache) *MenuService {
	return &MenuService{menu: menu, tables: tables, cache: cache}
}

// CreateMenuItem registers a new item. SKUs are unique business keys;
// a duplicate is rejected before anything is written.
func (s *MenuService) CreateMenuItem(ctx context.Context, item *domain.MenuItem, principal domain.Principal) error {
	if principal == nil || !principal.CanManageMenu() {
		return ErrForbidden
	}
	if err := s.menu.CreateItem(ctx, item); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return ErrSKUTaken
		}
		return err
	}
	return nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, id int, patch domain.MenuItemPatch, principal domain.Principal) (*domain.MenuItem, error) {
	if principal == nil || !principal.CanManageMenu() {
		return nil, ErrForbidden
	}
	item, err := s.menu.UpdateItem(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &MenuItemNotFoundError{ID: id}
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) SetAvailability(ctx context.Context, id int, available bool, principal domain.Principal) (*domain.MenuItem, error) {
	return s.UpdateMenuItem(ctx, id, domain.MenuItemPatch{IsAvailable: &available}, principal)
}

// DeleteMenuItem hard-deletes an item. Existing order items keep their
// snapshotted name and price, so historical totals are unaffected.
func (s *MenuService) DeleteMenuItem(ctx context.Context, id int, principal domain.Principal) error {
	if principal == nil || !principal.CanManageMenu() {
		return ErrForbidden
	}
	rows, err := s.menu.DeleteItem(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return &MenuItemNotFoundError{ID: id}
	}
	return nil
}

func (s *MenuService) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.ListItems(ctx)
}

func (s *MenuService) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.ListAvailable(ctx)
}

// MenuByQRCode is the QR scan landing call: it validates the token and
// returns what the guest can order right now.
func (s *MenuService) MenuByQRCode(ctx context.Context, qrCode string) ([]domain.MenuItem, error) {
	if s.cache != nil {
		if table, err := s.cache.GetByQRCode(ctx, qrCode); err == nil && table != nil {
			return s.menu.ListAvailable(ctx)
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

	return s.menu.ListAvailable(ctx)
}
