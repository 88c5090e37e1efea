package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
)

type Repository interface {
	Finalize(ctx context.Context, req *CheckoutRequest) (int64, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]Summary, error)
	GetItems(ctx context.Context, orderID int64) ([]LineView, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Finalize writes the order, its line items and the user's new balances
// as one transaction. Either everything below commits together or the
// whole unit rolls back; a partial order is never durable.
func (r *PGRepo) Finalize(ctx context.Context, req *CheckoutRequest) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var orderID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, total) VALUES ($1,$2) RETURNING id
	`, req.UserID, req.FinalValue).Scan(&orderID)
	if err != nil {
		if isFKViolation(err) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	for _, it := range req.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			VALUES ($1,$2,$3,$4)
		`, orderID, it.ProductID, it.Quantity, it.UnitPrice); err != nil {
			if isFKViolation(err) {
				return 0, ErrProductNotFound
			}
			return 0, err
		}
	}

	tag, err := tx.Exec(ctx, `
		UPDATE users SET points = points + $2, coins = $3 WHERE id = $1
	`, req.UserID, req.PointsEarned, req.FinalCoinBalance)
	if err != nil {
		return 0, err
	}
	if tag.RowsAffected() == 0 {
		return 0, ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, `
		SELECT o.id, o.total::text, o.created_at,
		       EXISTS (SELECT 1 FROM ratings a WHERE a.order_id = o.id AND a.user_id = o.user_id) AS already_rated
		FROM orders o
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Total, &s.CreatedAt, &s.AlreadyRated); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetItems(ctx context.Context, orderID int64) ([]LineView, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists bool
	if err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM orders WHERE id=$1)
	`, orderID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := r.db.Query(ctx, `
		SELECT p.name, i.quantity, i.unit_price::text
		FROM order_items i
		JOIN products p ON i.product_id = p.id
		WHERE i.order_id = $1
		ORDER BY i.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LineView
	for rows.Next() {
		var it LineView
		if err := rows.Scan(&it.ProductName, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
