package auth

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenRepo persists hashed refresh tokens and password-reset tokens.
type TokenRepo struct {
	db *pgxpool.Pool
}

func NewTokenRepo(db *pgxpool.Pool) *TokenRepo {
	return &TokenRepo{db: db}
}

func (r *TokenRepo) StoreRefresh(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
		VALUES ($1,$2,$3)
	`, userID, tokenHash, expiresAt)
	return err
}

func (r *TokenRepo) RefreshIsValid(ctx context.Context, userID int64, tokenHash string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM refresh_tokens
			WHERE user_id=$1 AND token_hash=$2
			  AND revoked_at IS NULL
			  AND expires_at > now()
		)
	`, userID, tokenHash).Scan(&ok)
	return ok, err
}

func (r *TokenRepo) RevokeRefresh(ctx context.Context, userID int64, tokenHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked_at=now()
		WHERE user_id=$1 AND token_hash=$2 AND revoked_at IS NULL
	`, userID, tokenHash)
	return err
}

func (r *TokenRepo) CreateReset(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_resets (user_id, token_hash, expires_at)
		VALUES ($1,$2,$3)
	`, userID, tokenHash, expiresAt)
	return err
}

// ConsumeReset marks a valid reset token as used and returns its user id.
// Expired, already-used and unknown tokens all report found=false.
func (r *TokenRepo) ConsumeReset(ctx context.Context, tokenHash string) (int64, bool, error) {
	var userID int64
	err := r.db.QueryRow(ctx, `
		UPDATE password_resets
		SET used_at=now()
		WHERE token_hash=$1
		  AND used_at IS NULL
		  AND expires_at > now()
		RETURNING user_id
	`, tokenHash).Scan(&userID)
	if err != nil {
		return 0, false, nil
	}
	return userID, true, nil
}

// PurgeExpired is called by the janitor job.
func (r *TokenRepo) PurgeExpired(ctx context.Context) (int64, error) {
	ct, err := r.db.Exec(ctx, `
		DELETE FROM refresh_tokens WHERE expires_at < now() OR revoked_at IS NOT NULL
	`)
	if err != nil {
		return 0, err
	}
	n := ct.RowsAffected()
	ct, err = r.db.Exec(ctx, `
		DELETE FROM password_resets WHERE expires_at < now() OR used_at IS NOT NULL
	`)
	if err != nil {
		return n, err
	}
	return n + ct.RowsAffected(), nil
}
