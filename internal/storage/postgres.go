package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"qrmesa/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the tables the repository expects. Statements
// are idempotent so every service instance can run them at startup.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash BYTEA NOT NULL,
			role TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tables (
			id SERIAL PRIMARY KEY,
			number INTEGER NOT NULL UNIQUE,
			capacity INTEGER NOT NULL,
			qr_code TEXT UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			sku TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			price NUMERIC(12,2) NOT NULL,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			table_id INTEGER NOT NULL REFERENCES tables(id),
			user_id INTEGER NOT NULL REFERENCES users(id),
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			price NUMERIC(12,2) NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// translate maps driver failures onto the storage sentinels the
// services branch on; anything else passes through unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicate
	}
	return err
}

// --- orders ---

func (r *PostgresRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, table_id, user_id, status, created_at
		FROM orders WHERE id = $1`, id).
		Scan(&order.ID, &order.TableID, &order.UserID, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}

	items, err := r.orderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PostgresRepository) orderItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, menu_item_id, name, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Name, &item.Quantity, &item.Price); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) scanOrders(ctx context.Context, rows *sql.Rows) ([]domain.Order, error) {
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.TableID, &order.UserID, &order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.orderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) ListByTable(ctx context.Context, tableID int) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, table_id, user_id, status, created_at
		FROM orders
		WHERE table_id = $1
		ORDER BY created_at DESC`, tableID)
	if err != nil {
		return nil, err
	}
	return r.scanOrders(ctx, rows)
}

func (r *PostgresRepository) ListByQRCode(ctx context.Context, qrCode string) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT o.id, o.table_id, o.user_id, o.status, o.created_at
		FROM orders o
		JOIN tables t ON o.table_id = t.id
		WHERE t.qr_code = $1
		ORDER BY o.created_at DESC`, qrCode)
	if err != nil {
		return nil, err
	}
	return r.scanOrders(ctx, rows)
}

func (r *PostgresRepository) ListByStatuses(ctx context.Context, statuses []domain.OrderStatus) ([]domain.Order, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, table_id, user_id, status, created_at
		FROM orders
		WHERE status = ANY($1)
		ORDER BY created_at`, pq.Array(values))
	if err != nil {
		return nil, err
	}
	return r.scanOrders(ctx, rows)
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO orders (table_id, user_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		order.TableID, order.UserID, order.Status).
		Scan(&order.ID, &order.CreatedAt)
	return translate(err)
}

func (r *PostgresRepository) AddItem(ctx context.Context, item *domain.OrderItem) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO order_items (order_id, menu_item_id, name, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		item.OrderID, item.MenuItemID, item.Name, item.Quantity, item.Price).
		Scan(&item.ID)
	return translate(err)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteOrder(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	return err
}

// --- tables ---

func (r *PostgresRepository) GetTable(ctx context.Context, id int) (*domain.Table, error) {
	return r.scanTable(r.DB.QueryRowContext(ctx, `
		SELECT id, number, capacity, COALESCE(qr_code, '')
		FROM tables WHERE id = $1`, id))
}

func (r *PostgresRepository) GetByNumber(ctx context.Context, number int) (*domain.Table, error) {
	return r.scanTable(r.DB.QueryRowContext(ctx, `
		SELECT id, number, capacity, COALESCE(qr_code, '')
		FROM tables WHERE number = $1`, number))
}

func (r *PostgresRepository) GetByQRCode(ctx context.Context, qrCode string) (*domain.Table, error) {
	return r.scanTable(r.DB.QueryRowContext(ctx, `
		SELECT id, number, capacity, COALESCE(qr_code, '')
		FROM tables WHERE qr_code = $1`, qrCode))
}

func (r *PostgresRepository) HighestNumbered(ctx context.Context) (*domain.Table, error) {
	return r.scanTable(r.DB.QueryRowContext(ctx, `
		SELECT id, number, capacity, COALESCE(qr_code, '')
		FROM tables
		ORDER BY number DESC
		LIMIT 1`))
}

func (r *PostgresRepository) scanTable(row *sql.Row) (*domain.Table, error) {
	var table domain.Table
	if err := row.Scan(&table.ID, &table.Number, &table.Capacity, &table.QRCode); err != nil {
		return nil, translate(err)
	}
	return &table, nil
}

func (r *PostgresRepository) ListTables(ctx context.Context) ([]domain.Table, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, number, capacity, COALESCE(qr_code, '')
		FROM tables
		ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []domain.Table
	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(&table.ID, &table.Number, &table.Capacity, &table.QRCode); err != nil {
			continue
		}
		tables = append(tables, table)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) MaxNumber(ctx context.Context) (int, error) {
	var max int
	err := r.DB.QueryRowContext(ctx, `SELECT COALESCE(MAX(number), 0) FROM tables`).Scan(&max)
	return max, err
}

func (r *PostgresRepository) CreateTable(ctx context.Context, table *domain.Table) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO tables (number, capacity)
		VALUES ($1, $2)
		RETURNING id`,
		table.Number, table.Capacity).
		Scan(&table.ID)
	return translate(err)
}

func (r *PostgresRepository) UpdateQRCode(ctx context.Context, id int, qrCode string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE tables SET qr_code = $1 WHERE id = $2`, qrCode, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteTable(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// --- menu items ---

func (r *PostgresRepository) GetItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	return r.scanMenuItem(r.DB.QueryRowContext(ctx, `
		SELECT id, sku, name, price, is_available, created_at
		FROM menu_items WHERE id = $1`, id))
}

func (r *PostgresRepository) GetBySKU(ctx context.Context, sku string) (*domain.MenuItem, error) {
	return r.scanMenuItem(r.DB.QueryRowContext(ctx, `
		SELECT id, sku, name, price, is_available, created_at
		FROM menu_items WHERE sku = $1`, sku))
}

func (r *PostgresRepository) scanMenuItem(row *sql.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := row.Scan(&item.ID, &item.SKU, &item.Name, &item.Price, &item.IsAvailable, &item.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *PostgresRepository) listMenuItems(ctx context.Context, query string) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.SKU, &item.Name, &item.Price, &item.IsAvailable, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	return r.listMenuItems(ctx, `
		SELECT id, sku, name, price, is_available, created_at
		FROM menu_items
		ORDER BY name`)
}

func (r *PostgresRepository) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	return r.listMenuItems(ctx, `
		SELECT id, sku, name, price, is_available, created_at
		FROM menu_items
		WHERE is_available AND price > 0
		ORDER BY name`)
}

func (r *PostgresRepository) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (sku, name, price, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		item.SKU, item.Name, item.Price, item.IsAvailable).
		Scan(&item.ID, &item.CreatedAt)
	return translate(err)
}

func (r *PostgresRepository) UpdateItem(ctx context.Context, id int, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	return r.scanMenuItem(r.DB.QueryRowContext(ctx, `
		UPDATE menu_items
		SET name = COALESCE($1, name),
		    price = COALESCE($2, price),
		    is_available = COALESCE($3, is_available)
		WHERE id = $4
		RETURNING id, sku, name, price, is_available, created_at`,
		patch.Name, patch.Price, patch.IsAvailable, id))
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// --- users ---

func (r *PostgresRepository) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return r.scanUser(r.DB.QueryRowContext(ctx, `
		SELECT id, email, password_hash, role
		FROM users WHERE id = $1`, id))
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(r.DB.QueryRowContext(ctx, `
		SELECT id, email, password_hash, role
		FROM users WHERE email = $1`, email))
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id`,
		user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID)
	return translate(err)
}
