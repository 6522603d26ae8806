package thyroidpackages

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"thybackend/internal/domain/thyroid"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const cols = `
	id, name, price, original_price, tests_included, description,
	report_time, sample_type, fasting_required, popular, created_at, updated_at
`

func scanPackage(row interface{ Scan(...any) error }) (thyroid.Package, error) {
	var p thyroid.Package
	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.TestsIncluded,
		&p.Description, &p.ReportTime, &p.SampleType, &p.FastingRequired,
		&p.Popular, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *Repo) List(ctx context.Context) ([]thyroid.Package, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cols+` FROM thyroid_packages ORDER BY price ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []thyroid.Package{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type CreateInput struct {
	Name            string
	Price           float64
	OriginalPrice   float64
	TestsIncluded   string
	Description     string
	ReportTime      string
	SampleType      string
	FastingRequired string
	Popular         bool
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (thyroid.Package, error) {
	return scanPackage(r.db.QueryRow(ctx, `
		INSERT INTO thyroid_packages (
			name, price, original_price, tests_included, description,
			report_time, sample_type, fasting_required, popular
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING `+cols,
		in.Name, in.Price, in.OriginalPrice, in.TestsIncluded, in.Description,
		in.ReportTime, in.SampleType, in.FastingRequired, in.Popular,
	))
}

type UpdateInput struct {
	Name            *string
	Price           *float64
	OriginalPrice   *float64
	TestsIncluded   *string
	Description     *string
	ReportTime      *string
	SampleType      *string
	FastingRequired *string
	Popular         *bool
}

func (r *Repo) Update(ctx context.Context, id int64, in UpdateInput) (thyroid.Package, error) {
	return scanPackage(r.db.QueryRow(ctx, `
		UPDATE thyroid_packages SET
			name             = COALESCE($2, name),
			price            = COALESCE($3, price),
			original_price   = COALESCE($4, original_price),
			tests_included   = COALESCE($5, tests_included),
			description      = COALESCE($6, description),
			report_time      = COALESCE($7, report_time),
			sample_type      = COALESCE($8, sample_type),
			fasting_required = COALESCE($9, fasting_required),
			popular          = COALESCE($10, popular),
			updated_at       = now()
		WHERE id = $1
		RETURNING `+cols,
		id, in.Name, in.Price, in.OriginalPrice, in.TestsIncluded, in.Description,
		in.ReportTime, in.SampleType, in.FastingRequired, in.Popular,
	))
}

func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM thyroid_packages WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
