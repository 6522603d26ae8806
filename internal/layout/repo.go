package layout

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"thybackend/internal/domain/layout"
)

// Sliders and background images share one shape, so one repo serves both,
// bound to its table at construction. The table name is a compile-time
// constant, never caller input.
type ImageListRepo struct {
	db    *pgxpool.Pool
	table string
}

const (
	TableSliders     = "sliders"
	TableBackgrounds = "background_images"
)

func NewSliderRepo(db *pgxpool.Pool) *ImageListRepo {
	return &ImageListRepo{db: db, table: TableSliders}
}

func NewBackgroundRepo(db *pgxpool.Pool) *ImageListRepo {
	return &ImageListRepo{db: db, table: TableBackgrounds}
}

func (r *ImageListRepo) List(ctx context.Context) ([]layout.Slider, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, image_url, alt_text, sort_order, created_at, updated_at
		FROM `+r.table+`
		ORDER BY sort_order ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []layout.Slider{}
	for rows.Next() {
		var s layout.Slider
		if err := rows.Scan(&s.ID, &s.ImageURL, &s.AltText, &s.Order, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ImageListRepo) Create(ctx context.Context, imageURL, altText string, order int) (layout.Slider, error) {
	var s layout.Slider
	err := r.db.QueryRow(ctx, `
		INSERT INTO `+r.table+` (image_url, alt_text, sort_order)
		VALUES ($1,$2,$3)
		RETURNING id, image_url, alt_text, sort_order, created_at, updated_at
	`, imageURL, altText, order).Scan(&s.ID, &s.ImageURL, &s.AltText, &s.Order, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *ImageListRepo) Update(ctx context.Context, id int64, imageURL, altText *string, order *int) (layout.Slider, error) {
	var s layout.Slider
	err := r.db.QueryRow(ctx, `
		UPDATE `+r.table+` SET
			image_url  = COALESCE($2, image_url),
			alt_text   = COALESCE($3, alt_text),
			sort_order = COALESCE($4, sort_order),
			updated_at = now()
		WHERE id = $1
		RETURNING id, image_url, alt_text, sort_order, created_at, updated_at
	`, id, imageURL, altText, order).Scan(&s.ID, &s.ImageURL, &s.AltText, &s.Order, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *ImageListRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM `+r.table+` WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

// Reorder persists the given id->order assignments in one transaction so a
// later List returns exactly this order.
func (r *ImageListRepo) Reorder(ctx context.Context, orders map[int64]int) error {
	return reorder(ctx, r.db, r.table, orders)
}

type MenuRepo struct {
	db *pgxpool.Pool
}

func NewMenuRepo(db *pgxpool.Pool) *MenuRepo {
	return &MenuRepo{db: db}
}

func (r *MenuRepo) List(ctx context.Context) ([]layout.MenuItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, path, sort_order, created_at, updated_at
		FROM menu_items
		ORDER BY sort_order ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []layout.MenuItem{}
	for rows.Next() {
		var m layout.MenuItem
		if err := rows.Scan(&m.ID, &m.Title, &m.Path, &m.Order, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MenuRepo) Create(ctx context.Context, title, path string, order int) (layout.MenuItem, error) {
	var m layout.MenuItem
	err := r.db.QueryRow(ctx, `
		INSERT INTO menu_items (title, path, sort_order)
		VALUES ($1,$2,$3)
		RETURNING id, title, path, sort_order, created_at, updated_at
	`, title, path, order).Scan(&m.ID, &m.Title, &m.Path, &m.Order, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *MenuRepo) Update(ctx context.Context, id int64, title, path *string, order *int) (layout.MenuItem, error) {
	var m layout.MenuItem
	err := r.db.QueryRow(ctx, `
		UPDATE menu_items SET
			title      = COALESCE($2, title),
			path       = COALESCE($3, path),
			sort_order = COALESCE($4, sort_order),
			updated_at = now()
		WHERE id = $1
		RETURNING id, title, path, sort_order, created_at, updated_at
	`, id, title, path, order).Scan(&m.ID, &m.Title, &m.Path, &m.Order, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *MenuRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (r *MenuRepo) Reorder(ctx context.Context, orders map[int64]int) error {
	return reorder(ctx, r.db, "menu_items", orders)
}

func reorder(ctx context.Context, db *pgxpool.Pool, table string, orders map[int64]int) error {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for id, ord := range orders {
		if _, err := tx.Exec(ctx, `UPDATE `+table+` SET sort_order=$2, updated_at=now() WHERE id=$1`, id, ord); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
