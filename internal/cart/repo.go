package cart

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"thybackend/internal/domain/cart"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Each user has exactly one cart, created lazily on first touch.
func (r *Repo) getOrCreateCartID(ctx context.Context, userID int64) (int64, error) {
	var cartID int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
		RETURNING id
	`, userID).Scan(&cartID)
	return cartID, err
}

// AddItem inserts a line snapshotting the test's name and unit price.
// Adding the same test again increments its quantity; this merge policy is
// the server's, clients never re-derive it.
func (r *Repo) AddItem(ctx context.Context, userID int64, it cart.Item) error {
	cartID, err := r.getOrCreateCartID(ctx, userID)
	if err != nil {
		return err
	}

	qty := it.Quantity
	if qty <= 0 {
		qty = 1
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO cart_items (cart_id, item_id, name, price, quantity)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (cart_id, item_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`, cartID, it.ItemID, it.Name, it.Price, qty)
	return err
}

func (r *Repo) RemoveItem(ctx context.Context, userID, itemID int64) error {
	cartID, err := r.getOrCreateCartID(ctx, userID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		DELETE FROM cart_items WHERE cart_id=$1 AND item_id=$2
	`, cartID, itemID)
	return err
}

func (r *Repo) Clear(ctx context.Context, userID int64) error {
	cartID, err := r.getOrCreateCartID(ctx, userID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `DELETE FROM cart_items WHERE cart_id=$1`, cartID)
	return err
}

// GetCart returns the full cart with its server-computed total. Every cart
// response body comes from here so mutations always echo the whole state.
func (r *Repo) GetCart(ctx context.Context, userID int64) (cart.Cart, error) {
	cartID, err := r.getOrCreateCartID(ctx, userID)
	if err != nil {
		return cart.Cart{}, err
	}

	out := cart.Empty()

	rows, err := r.db.Query(ctx, `
		SELECT item_id, name, price, quantity
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at ASC
	`, cartID)
	if err != nil {
		return cart.Cart{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var it cart.Item
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return cart.Cart{}, err
		}
		out.Items = append(out.Items, it)
		out.TotalAmount += it.Price * float64(it.Quantity)
	}
	return out, rows.Err()
}
