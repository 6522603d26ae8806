package offers

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"thybackend/internal/domain/offer"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) ListOffers(ctx context.Context) ([]offer.Offer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, discount, description, features, valid_till, popularity, created_at
		FROM offers ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []offer.Offer{}
	for rows.Next() {
		var o offer.Offer
		if err := rows.Scan(&o.ID, &o.Title, &o.Discount, &o.Description,
			&o.Features, &o.ValidTill, &o.Popularity, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *Repo) CreateOffer(ctx context.Context, o offer.Offer) (offer.Offer, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO offers (title, discount, description, features, valid_till, popularity)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at
	`, o.Title, o.Discount, o.Description, o.Features, o.ValidTill, o.Popularity).Scan(&o.ID, &o.CreatedAt)
	return o, err
}

func (r *Repo) DeleteOffer(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (r *Repo) ListReferrals(ctx context.Context) ([]offer.Referral, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, referrer_email, referrer_phone, friend_email, friend_phone, created_at
		FROM referrals ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []offer.Referral{}
	for rows.Next() {
		var rf offer.Referral
		if err := rows.Scan(&rf.ID, &rf.ReferrerEmail, &rf.ReferrerPhone,
			&rf.FriendEmail, &rf.FriendPhone, &rf.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rf)
	}
	return out, rows.Err()
}

func (r *Repo) CreateReferral(ctx context.Context, rf offer.Referral) (offer.Referral, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO referrals (referrer_email, referrer_phone, friend_email, friend_phone)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at
	`, rf.ReferrerEmail, rf.ReferrerPhone, rf.FriendEmail, rf.FriendPhone).Scan(&rf.ID, &rf.CreatedAt)
	return rf, err
}
