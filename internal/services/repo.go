package services

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"thybackend/internal/domain/service"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const serviceCols = `
	id, title, description, detailed_description, price, duration, rating,
	patients, is_popular, category, image, image_alt, additional_images,
	features, requirements, package_file_url, created_at, updated_at
`

func scanService(row interface{ Scan(...any) error }) (service.Service, error) {
	var s service.Service
	err := row.Scan(
		&s.ID, &s.Title, &s.Description, &s.DetailedDescription, &s.Price,
		&s.Duration, &s.Rating, &s.Patients, &s.IsPopular, &s.Category,
		&s.Image, &s.ImageAlt, &s.AdditionalImages, &s.Features,
		&s.Requirements, &s.PackageFileURL, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *Repo) List(ctx context.Context) ([]service.Service, error) {
	rows, err := r.db.Query(ctx, `SELECT `+serviceCols+` FROM services ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []service.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) ByID(ctx context.Context, id int64) (service.Service, error) {
	return scanService(r.db.QueryRow(ctx, `SELECT `+serviceCols+` FROM services WHERE id=$1`, id))
}

type CreateInput struct {
	Title               string
	Description         string
	DetailedDescription string
	Price               float64
	Duration            string
	Rating              float32
	Patients            int
	IsPopular           bool
	Category            string
	Image               string
	ImageAlt            string
	AdditionalImages    []string
	Features            []string
	Requirements        []string
	PackageFileURL      string
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (service.Service, error) {
	return scanService(r.db.QueryRow(ctx, `
		INSERT INTO services (
			title, description, detailed_description, price, duration, rating,
			patients, is_popular, category, image, image_alt, additional_images,
			features, requirements, package_file_url
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING `+serviceCols,
		in.Title, in.Description, in.DetailedDescription, in.Price, in.Duration,
		in.Rating, in.Patients, in.IsPopular, in.Category, in.Image, in.ImageAlt,
		in.AdditionalImages, in.Features, in.Requirements, in.PackageFileURL,
	))
}

type UpdateInput struct {
	Title               *string
	Description         *string
	DetailedDescription *string
	Price               *float64
	Duration            *string
	Rating              *float32
	Patients            *int
	IsPopular           *bool
	Category            *string
	Image               *string
	ImageAlt            *string
	AdditionalImages    []string
	Features            []string
	Requirements        []string
	PackageFileURL      *string
}

func (r *Repo) Update(ctx context.Context, id int64, in UpdateInput) (service.Service, error) {
	return scanService(r.db.QueryRow(ctx, `
		UPDATE services SET
			title                = COALESCE($2, title),
			description          = COALESCE($3, description),
			detailed_description = COALESCE($4, detailed_description),
			price                = COALESCE($5, price),
			duration             = COALESCE($6, duration),
			rating               = COALESCE($7, rating),
			patients             = COALESCE($8, patients),
			is_popular           = COALESCE($9, is_popular),
			category             = COALESCE($10, category),
			image                = COALESCE($11, image),
			image_alt            = COALESCE($12, image_alt),
			additional_images    = COALESCE($13, additional_images),
			features             = COALESCE($14, features),
			requirements         = COALESCE($15, requirements),
			package_file_url     = COALESCE($16, package_file_url),
			updated_at           = now()
		WHERE id = $1
		RETURNING `+serviceCols,
		id, in.Title, in.Description, in.DetailedDescription, in.Price,
		in.Duration, in.Rating, in.Patients, in.IsPopular, in.Category,
		in.Image, in.ImageAlt, in.AdditionalImages, in.Features,
		in.Requirements, in.PackageFileURL,
	))
}

func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
