package bloodtests

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"thybackend/internal/domain/bloodtest"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const cols = `
	id, name, price, description, category, tags, image_url,
	sample_type, fasting, report_time, created_at, updated_at
`

func scanTest(row interface{ Scan(...any) error }) (bloodtest.BloodTest, error) {
	var t bloodtest.BloodTest
	err := row.Scan(
		&t.ID, &t.Name, &t.Price, &t.Description, &t.Category, &t.Tags,
		&t.ImageURL, &t.SampleType, &t.Fasting, &t.ReportTime,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *Repo) List(ctx context.Context) ([]bloodtest.BloodTest, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cols+` FROM blood_tests ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []bloodtest.BloodTest{}
	for rows.Next() {
		t, err := scanTest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) ByID(ctx context.Context, id int64) (bloodtest.BloodTest, error) {
	return scanTest(r.db.QueryRow(ctx, `SELECT `+cols+` FROM blood_tests WHERE id=$1`, id))
}

type CreateInput struct {
	Name        string
	Price       float64
	Description string
	Category    string
	Tags        []string
	ImageURL    string
	SampleType  string
	Fasting     string
	ReportTime  string
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (bloodtest.BloodTest, error) {
	return scanTest(r.db.QueryRow(ctx, `
		INSERT INTO blood_tests (
			name, price, description, category, tags, image_url,
			sample_type, fasting, report_time
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING `+cols,
		in.Name, in.Price, in.Description, in.Category, in.Tags,
		in.ImageURL, in.SampleType, in.Fasting, in.ReportTime,
	))
}

type UpdateInput struct {
	Name        *string
	Price       *float64
	Description *string
	Category    *string
	Tags        []string
	ImageURL    *string
	SampleType  *string
	Fasting     *string
	ReportTime  *string
}

func (r *Repo) Update(ctx context.Context, id int64, in UpdateInput) (bloodtest.BloodTest, error) {
	return scanTest(r.db.QueryRow(ctx, `
		UPDATE blood_tests SET
			name        = COALESCE($2, name),
			price       = COALESCE($3, price),
			description = COALESCE($4, description),
			category    = COALESCE($5, category),
			tags        = COALESCE($6, tags),
			image_url   = COALESCE($7, image_url),
			sample_type = COALESCE($8, sample_type),
			fasting     = COALESCE($9, fasting),
			report_time = COALESCE($10, report_time),
			updated_at  = now()
		WHERE id = $1
		RETURNING `+cols,
		id, in.Name, in.Price, in.Description, in.Category, in.Tags,
		in.ImageURL, in.SampleType, in.Fasting, in.ReportTime,
	))
}

func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM blood_tests WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
