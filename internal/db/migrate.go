package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema if it does not exist yet. Statements are
// idempotent so the server can run them on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			name          TEXT NOT NULL DEFAULT '',
			phone         TEXT NOT NULL DEFAULT '',
			role          TEXT NOT NULL DEFAULT 'user',
			is_active     BOOLEAN NOT NULL DEFAULT true,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS refresh_tokens (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			token_hash TEXT NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL,
			revoked_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS password_resets (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			token_hash TEXT NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL,
			used_at    TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS services (
			id                   BIGSERIAL PRIMARY KEY,
			title                TEXT NOT NULL,
			description          TEXT NOT NULL DEFAULT '',
			detailed_description TEXT NOT NULL DEFAULT '',
			price                NUMERIC(10,2) NOT NULL DEFAULT 0,
			duration             TEXT NOT NULL DEFAULT '',
			rating               REAL NOT NULL DEFAULT 0,
			patients             INT NOT NULL DEFAULT 0,
			is_popular           BOOLEAN NOT NULL DEFAULT false,
			category             TEXT NOT NULL DEFAULT '',
			image                TEXT NOT NULL DEFAULT '',
			image_alt            TEXT NOT NULL DEFAULT '',
			additional_images    TEXT[] NOT NULL DEFAULT '{}',
			features             TEXT[] NOT NULL DEFAULT '{}',
			requirements         TEXT[] NOT NULL DEFAULT '{}',
			package_file_url     TEXT NOT NULL DEFAULT '',
			created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS blood_tests (
			id          BIGSERIAL PRIMARY KEY,
			name        TEXT NOT NULL,
			price       NUMERIC(10,2) NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			category    TEXT NOT NULL DEFAULT '',
			tags        TEXT[] NOT NULL DEFAULT '{}',
			image_url   TEXT NOT NULL DEFAULT '',
			sample_type TEXT NOT NULL DEFAULT '',
			fasting     TEXT NOT NULL DEFAULT '',
			report_time TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sliders (
			id         BIGSERIAL PRIMARY KEY,
			image_url  TEXT NOT NULL,
			alt_text   TEXT NOT NULL DEFAULT '',
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS background_images (
			id         BIGSERIAL PRIMARY KEY,
			image_url  TEXT NOT NULL,
			alt_text   TEXT NOT NULL DEFAULT '',
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id         BIGSERIAL PRIMARY KEY,
			title      TEXT NOT NULL,
			path       TEXT NOT NULL,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS banner_content (
			id                    BIGINT PRIMARY KEY DEFAULT 1,
			title                 TEXT NOT NULL DEFAULT '',
			subtitle              TEXT NOT NULL DEFAULT '',
			description           TEXT NOT NULL DEFAULT '',
			primary_button_text   TEXT NOT NULL DEFAULT '',
			primary_button_link   TEXT NOT NULL DEFAULT '',
			secondary_button_text TEXT NOT NULL DEFAULT '',
			secondary_button_link TEXT NOT NULL DEFAULT '',
			updated_at            TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS about_section (
			id          BIGINT PRIMARY KEY DEFAULT 1,
			title       TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			image_url   TEXT NOT NULL DEFAULT '',
			features    TEXT[] NOT NULL DEFAULT '{}',
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS testimonials (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			role       TEXT NOT NULL DEFAULT '',
			company    TEXT NOT NULL DEFAULT '',
			content    TEXT NOT NULL DEFAULT '',
			rating     INT NOT NULL DEFAULT 5,
			image_url  TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS faqs (
			id         BIGSERIAL PRIMARY KEY,
			question   TEXT NOT NULL,
			answer     TEXT NOT NULL DEFAULT '',
			category   TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS blog_posts (
			id           BIGSERIAL PRIMARY KEY,
			title        TEXT NOT NULL,
			excerpt      TEXT NOT NULL DEFAULT '',
			content      TEXT NOT NULL DEFAULT '',
			author       TEXT NOT NULL DEFAULT '',
			publish_date TEXT NOT NULL DEFAULT '',
			category     TEXT NOT NULL DEFAULT '',
			image_url    TEXT NOT NULL DEFAULT '',
			tags         TEXT[] NOT NULL DEFAULT '{}',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS consultations (
			id           BIGSERIAL PRIMARY KEY,
			name         TEXT NOT NULL,
			email        TEXT NOT NULL DEFAULT '',
			address      TEXT NOT NULL DEFAULT '',
			phone        TEXT NOT NULL DEFAULT '',
			description  TEXT NOT NULL DEFAULT '',
			files        TEXT[] NOT NULL DEFAULT '{}',
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id           BIGSERIAL PRIMARY KEY,
			name         TEXT NOT NULL,
			phone        TEXT NOT NULL DEFAULT '',
			email        TEXT NOT NULL DEFAULT '',
			subject      TEXT NOT NULL DEFAULT '',
			message      TEXT NOT NULL,
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS thyroid_packages (
			id               BIGSERIAL PRIMARY KEY,
			name             TEXT NOT NULL,
			price            NUMERIC(10,2) NOT NULL DEFAULT 0,
			original_price   NUMERIC(10,2) NOT NULL DEFAULT 0,
			tests_included   TEXT NOT NULL DEFAULT '',
			description      TEXT NOT NULL DEFAULT '',
			report_time      TEXT NOT NULL DEFAULT '',
			sample_type      TEXT NOT NULL DEFAULT '',
			fasting_required TEXT NOT NULL DEFAULT '',
			popular          BOOLEAN NOT NULL DEFAULT false,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS company_profile (
			id         BIGINT PRIMARY KEY DEFAULT 1,
			profile    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS business_contact (
			id             BIGINT PRIMARY KEY DEFAULT 1,
			phone          TEXT NOT NULL DEFAULT '',
			email          TEXT NOT NULL DEFAULT '',
			address        TEXT NOT NULL DEFAULT '',
			business_hours TEXT NOT NULL DEFAULT '',
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS site_settings (
			id           BIGINT PRIMARY KEY DEFAULT 1,
			website_name TEXT NOT NULL DEFAULT '',
			logo_url     TEXT NOT NULL DEFAULT '',
			banner_url   TEXT NOT NULL DEFAULT '',
			favicon      TEXT NOT NULL DEFAULT '',
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS offers (
			id          BIGSERIAL PRIMARY KEY,
			title       TEXT NOT NULL,
			discount    TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			features    TEXT[] NOT NULL DEFAULT '{}',
			valid_till  TEXT NOT NULL DEFAULT '',
			popularity  TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS referrals (
			id             BIGSERIAL PRIMARY KEY,
			referrer_email TEXT NOT NULL DEFAULT '',
			referrer_phone TEXT NOT NULL DEFAULT '',
			friend_email   TEXT NOT NULL DEFAULT '',
			friend_phone   TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			id         BIGSERIAL PRIMARY KEY,
			cart_id    BIGINT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
			item_id    BIGINT NOT NULL,
			name       TEXT NOT NULL DEFAULT '',
			price      NUMERIC(10,2) NOT NULL DEFAULT 0,
			quantity   INT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (cart_id, item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id               BIGSERIAL PRIMARY KEY,
			user_id          BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			pincode          TEXT NOT NULL DEFAULT '',
			full_name        TEXT NOT NULL DEFAULT '',
			no_of_persons    INT NOT NULL DEFAULT 1,
			age              TEXT NOT NULL DEFAULT '',
			gender           TEXT NOT NULL DEFAULT '',
			mobile           TEXT NOT NULL DEFAULT '',
			email            TEXT NOT NULL DEFAULT '',
			address          TEXT NOT NULL DEFAULT '',
			appointment_date TEXT NOT NULL DEFAULT '',
			appointment_time TEXT NOT NULL DEFAULT '',
			wants_hard_copy  BOOLEAN NOT NULL DEFAULT false,
			payment_id       TEXT NOT NULL DEFAULT '',
			prescription_url TEXT NOT NULL DEFAULT '',
			items            JSONB NOT NULL DEFAULT '[]',
			total_amount     NUMERIC(10,2) NOT NULL DEFAULT 0,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
