// Package rating records one-per-order reviews and their reward grants.
package rating

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAlreadyRated  = errors.New("order already rated by this user")
	ErrOrderNotFound = errors.New("order not found")
)

type Repository interface {
	Create(ctx context.Context, rt *Rating) error
	ListByOrder(ctx context.Context, orderID int64) ([]View, error)
	ListByDonor(ctx context.Context, donorID int64) ([]View, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Create inserts the rating and grants the author the bonus in one
// transaction. Duplicate submissions lose on the UNIQUE(order_id,user_id)
// index rather than on a racy pre-check: of two concurrent submissions,
// exactly one insert succeeds.
func (r *PGRepo) Create(ctx context.Context, rt *Rating) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO ratings (order_id, user_id, score, comment)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at
	`, rt.OrderID, rt.UserID, rt.Score, rt.Comment).Scan(&rt.ID, &rt.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return ErrAlreadyRated
			case "23503":
				return ErrOrderNotFound
			}
		}
		return err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE users SET points = points + $2, coins = coins + $3 WHERE id = $1
	`, rt.UserID, BonusPoints, BonusCoins); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGRepo) ListByOrder(ctx context.Context, orderID int64) ([]View, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT u.name, a.score, COALESCE(a.comment,''), a.created_at
		FROM ratings a
		JOIN users u ON a.user_id = u.id
		WHERE a.order_id = $1
		ORDER BY a.created_at DESC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanViews(rows)
}

// ListByDonor returns ratings left on any order that contains a product
// owned by the donor. DISTINCT guards against orders holding several of
// the donor's products.
func (r *PGRepo) ListByDonor(ctx context.Context, donorID int64) ([]View, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT u.name, a.score, COALESCE(a.comment,''), a.created_at
		FROM ratings a
		JOIN users u ON a.user_id = u.id
		JOIN order_items i ON i.order_id = a.order_id
		JOIN products p ON p.id = i.product_id
		WHERE p.user_id = $1
		ORDER BY a.created_at DESC
	`, donorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanViews(rows)
}

func scanViews(rows pgx.Rows) ([]View, error) {
	var out []View
	for rows.Next() {
		var v View
		if err := rows.Scan(&v.RaterName, &v.Score, &v.Comment, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
