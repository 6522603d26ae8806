package settings

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"thybackend/internal/domain/settings"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetBusinessContact(ctx context.Context) (settings.BusinessContact, bool, error) {
	var bc settings.BusinessContact
	err := r.db.QueryRow(ctx, `
		SELECT phone, email, address, business_hours FROM business_contact WHERE id=1
	`).Scan(&bc.Phone, &bc.Email, &bc.Address, &bc.BusinessHours)
	if err == pgx.ErrNoRows {
		return settings.BusinessContact{}, false, nil
	}
	if err != nil {
		return settings.BusinessContact{}, false, err
	}
	return bc, true, nil
}

func (r *Repo) PutBusinessContact(ctx context.Context, bc settings.BusinessContact) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO business_contact (id, phone, email, address, business_hours, updated_at)
		VALUES (1,$1,$2,$3,$4,now())
		ON CONFLICT (id) DO UPDATE SET
			phone=EXCLUDED.phone, email=EXCLUDED.email,
			address=EXCLUDED.address, business_hours=EXCLUDED.business_hours,
			updated_at=now()
	`, bc.Phone, bc.Email, bc.Address, bc.BusinessHours)
	return err
}

func (r *Repo) GetSiteSettings(ctx context.Context) (settings.SiteSettings, bool, error) {
	var s settings.SiteSettings
	err := r.db.QueryRow(ctx, `
		SELECT website_name, logo_url, banner_url, favicon FROM site_settings WHERE id=1
	`).Scan(&s.WebsiteName, &s.LogoURL, &s.BannerURL, &s.Favicon)
	if err == pgx.ErrNoRows {
		return settings.SiteSettings{}, false, nil
	}
	if err != nil {
		return settings.SiteSettings{}, false, err
	}
	return s, true, nil
}

func (r *Repo) GetCompanyProfile(ctx context.Context) (settings.CompanyProfile, bool, error) {
	var p settings.CompanyProfile
	err := r.db.QueryRow(ctx, `
		SELECT profile FROM company_profile WHERE id=1
	`).Scan(&p)
	if err == pgx.ErrNoRows {
		return settings.CompanyProfile{}, false, nil
	}
	if err != nil {
		return settings.CompanyProfile{}, false, err
	}
	return p, true, nil
}

func (r *Repo) PutCompanyProfile(ctx context.Context, p settings.CompanyProfile) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO company_profile (id, profile, updated_at)
		VALUES (1,$1,now())
		ON CONFLICT (id) DO UPDATE SET profile=EXCLUDED.profile, updated_at=now()
	`, p)
	return err
}

func (r *Repo) PutSiteSettings(ctx context.Context, s settings.SiteSettings) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO site_settings (id, website_name, logo_url, banner_url, favicon, updated_at)
		VALUES (1,$1,$2,$3,$4,now())
		ON CONFLICT (id) DO UPDATE SET
			website_name=EXCLUDED.website_name, logo_url=EXCLUDED.logo_url,
			banner_url=EXCLUDED.banner_url, favicon=EXCLUDED.favicon,
			updated_at=now()
	`, s.WebsiteName, s.LogoURL, s.BannerURL, s.Favicon)
	return err
}
