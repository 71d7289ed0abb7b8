package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wellywell/giftbroker/internal/types"
)

type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type Database struct {
	pool pool
}

const orderColumns = `id, order_no, client_order_no, product_code, product_name, face_amount, quantity,
	total_amount, status, confirm_date, error_code, cards_data, created_at, updated_at`

func NewDatabase(connString string) (*Database, error) {

	err := Migrate(connString)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate %w", err)
	}

	ctx := context.Background()
	p, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	return &Database{
		pool: p,
	}, nil
}

func (d *Database) Close() {
	d.pool.Close()
}

func (d *Database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return d.pool.Ping(ctx)
}

func (d *Database) InsertOrder(ctx context.Context, order *types.Order) error {

	query := `
		INSERT INTO orders (order_no, client_order_no, product_code, product_name,
			face_amount, quantity, total_amount, status, error_code, cards_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	cards := order.Cards
	if cards == nil {
		cards = []types.Card{}
	}
	errorCode := order.ErrorCode
	if errorCode == "" {
		errorCode = "0"
	}

	row := d.pool.QueryRow(ctx, query,
		order.OrderNo, order.ClientOrderNo, order.ProductCode, order.ProductName,
		order.FaceAmount, order.Quantity, order.TotalAmount, string(order.Status), errorCode, cards)

	if err := row.Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			e := &OrderExistsError{OrderNo: order.OrderNo}
			return types.NewError(types.KindValidation, e.Error(), e)
		}
		return persistence("inserting order", err)
	}
	order.Cards = cards
	order.ErrorCode = errorCode
	return nil
}

func (d *Database) GetOrder(ctx context.Context, orderNo string) (*types.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE order_no = $1`

	order, err := scanOrder(d.pool.QueryRow(ctx, query, orderNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(orderNo)
		}
		return nil, persistence("reading order", err)
	}
	return order, nil
}

// ApplyOrderUpdate writes a reconciliation. Absent fields keep their stored value and the
// confirmation date only ever moves forward.
func (d *Database) ApplyOrderUpdate(ctx context.Context, update types.OrderUpdate) (*types.Order, error) {
	query := `
		UPDATE orders
		SET status = COALESCE($2, status),
			confirm_date = GREATEST(confirm_date, $3),
			error_code = $4,
			cards_data = COALESCE($5, cards_data),
			updated_at = $6
		WHERE order_no = $1
		RETURNING ` + orderColumns

	var status, confirmDate, cards any
	if update.Status != nil {
		status = string(*update.Status)
	}
	if update.ConfirmDate != nil {
		confirmDate = *update.ConfirmDate
	}
	if len(update.Cards) > 0 {
		cards = update.Cards
	}
	errorCode := update.ErrorCode
	if errorCode == "" {
		errorCode = "0"
	}

	row := d.pool.QueryRow(ctx, query, update.OrderNo, status, confirmDate, errorCode, cards, update.UpdatedAt)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(update.OrderNo)
		}
		return nil, persistence("updating order", err)
	}
	return order, nil
}

func (d *Database) GetOrdersWithStatus(ctx context.Context, status types.Status, startID int64, limit int) ([]types.OrderRecord, error) {
	query := `
	    SELECT id, order_no, status
		FROM orders
		WHERE status = $1
		AND id > $2
		ORDER BY id LIMIT $3
	`
	rows, err := d.pool.Query(ctx, query, string(status), startID, limit)
	if err != nil {
		return nil, persistence("failed collecting rows", err)
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[types.OrderRecord])
	if err != nil {
		return nil, persistence("failed unpacking rows", err)
	}
	return orders, nil
}

// GetDashboardStats counts orders and cards overall and since dayStart.
func (d *Database) GetDashboardStats(ctx context.Context, dayStart time.Time) (*types.DashboardStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= $1),
			COALESCE(SUM(quantity), 0),
			COALESCE(SUM(quantity) FILTER (WHERE created_at >= $1), 0)
		FROM orders
	`
	var stats types.DashboardStats
	err := d.pool.QueryRow(ctx, query, dayStart).Scan(
		&stats.TotalOrders, &stats.TodayOrders, &stats.TotalCards, &stats.TodayCards)
	if err != nil {
		return nil, persistence("reading dashboard stats", err)
	}
	return &stats, nil
}

func scanOrder(row pgx.Row) (*types.Order, error) {
	var o types.Order
	err := row.Scan(
		&o.ID, &o.OrderNo, &o.ClientOrderNo, &o.ProductCode, &o.ProductName, &o.FaceAmount, &o.Quantity,
		&o.TotalAmount, &o.Status, &o.ConfirmDate, &o.ErrorCode, &o.Cards, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
