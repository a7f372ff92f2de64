package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qrmesa/internal/domain"
)

type TableService struct {
	tables TableStore
	cache  TableCache
	qr     QRRenderer
}

func NewTableService(tables TableStore, cache TableCache, qr QRRenderer) *TableService {
	return &TableService{
		tables: tables,
		cache:  cache,
		qr:     qr,
	}
}

// CreateTable registers a new table. When number is nil the next
// sequential number is assigned (max existing + 1, starting at 1).
// Duplicate numbers are rejected.
func (s *TableService) CreateTable(ctx context.Context, number *int, capacity int, withQRCode bool) (*domain.Table, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got %d", capacity)
	}

	assigned := 0
	if number != nil {
		assigned = *number
	} else {
		max, err := s.tables.MaxNumber(ctx)
		if err != nil {
			return nil, err
		}
		assigned = max + 1
	}

	table := &domain.Table{Number: assigned, Capacity: capacity}
	if err := s.tables.CreateTable(ctx, table); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, ErrTableNumberTaken
		}
		return nil, err
	}

	if withQRCode {
		return s.GenerateQRCode(ctx, table.ID)
	}
	return table, nil
}

// GenerateQRCode issues a fresh token for the table, overwriting any
// prior one. Old tokens stop resolving immediately; printed codes must
// be replaced.
func (s *TableService) GenerateQRCode(ctx context.Context, tableID int) (*domain.Table, error) {
	table, err := s.tables.GetTable(ctx, tableID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	token := fmt.Sprintf("table-%d-%d", table.ID, time.Now().UnixMilli())
	if err := s.tables.UpdateQRCode(ctx, table.ID, token); err != nil {
		return nil, err
	}

	if s.cache != nil && table.QRCode != "" {
		_ = s.cache.Invalidate(ctx, table.QRCode)
	}

	table.QRCode = token
	return table, nil
}

// RemoveTable deletes the highest-numbered table. The admin surface has
// always worked this way; removing a specific table goes through
// RemoveTableByID.
func (s *TableService) RemoveTable(ctx context.Context) (*domain.Table, error) {
	table, err := s.tables.HighestNumbered(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNoTablesAvailable
		}
		return nil, err
	}

	if _, err := s.tables.DeleteTable(ctx, table.ID); err != nil {
		return nil, err
	}
	if s.cache != nil && table.QRCode != "" {
		_ = s.cache.Invalidate(ctx, table.QRCode)
	}
	return table, nil
}

func (s *TableService) RemoveTableByID(ctx context.Context, id int) error {
	table, err := s.tables.GetTable(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrTableNotFound
		}
		return err
	}

	rows, err := s.tables.DeleteTable(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTableNotFound
	}
	if s.cache != nil && table.QRCode != "" {
		_ = s.cache.Invalidate(ctx, table.QRCode)
	}
	return nil
}

func (s *TableService) GetTable(ctx context.Context, id int) (*domain.Table, error) {
	table, err := s.tables.GetTable(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return table, nil
}

func (s *TableService) ListTables(ctx context.Context) ([]domain.Table, error) {
	return s.tables.ListTables(ctx)
}

// QRImage renders the table's current token as a printable PNG. A table
// without a token gets one issued first.
func (s *TableService) QRImage(ctx context.Context, tableID int) ([]byte, error) {
	table, err := s.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table.QRCode == "" {
		table, err = s.GenerateQRCode(ctx, tableID)
		if err != nil {
			return nil, err
		}
	}
	return s.qr.Render(table.QRCode)
}
