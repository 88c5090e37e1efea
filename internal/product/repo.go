// Package product provides the repository interface and PostgreSQL implementation for managing products.
package product

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrDonorNotFound = errors.New("donor not found")
)

type Query struct {
	Q      string
	Limit  int
	Offset int
}

type Repository interface {
	CreateWithReward(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context, q Query) ([]Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// CreateWithReward inserts the product and grants the donor the listing
// bonus. Both writes land in one transaction: a product row without its
// reward (or the reverse) is never visible.
func (r *PGRepo) CreateWithReward(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO products (user_id, name, description, category, condition, price, size, brand, color, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, created_at
	`, p.UserID, p.Name, p.Description, p.Category, p.Condition, p.Price, p.Size, p.Brand, p.Color, p.ImageURL).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrDonorNotFound
		}
		return err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE users SET points = points + $2, coins = coins + $3 WHERE id = $1
	`, p.UserID, ListingBonusPoints, ListingBonusCoins)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDonorNotFound
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Product
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, COALESCE(description,''), COALESCE(category,''), COALESCE(condition,''),
		       price::text, COALESCE(size,''), COALESCE(brand,''), COALESCE(color,''), COALESCE(image_url,''), created_at
		FROM products WHERE id=$1
	`, id).Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Category, &p.Condition,
		&p.Price, &p.Size, &p.Brand, &p.Color, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	search := strings.TrimSpace(q.Q)

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, COALESCE(description,''), COALESCE(category,''), COALESCE(condition,''),
		       price::text, COALESCE(size,''), COALESCE(brand,''), COALESCE(color,''), COALESCE(image_url,''), created_at
		FROM products
		WHERE ($1 = '' OR name ILIKE '%'||$1||'%' OR description ILIKE '%'||$1||'%')
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Category, &p.Condition,
			&p.Price, &p.Size, &p.Brand, &p.Color, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
