package content

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"thybackend/internal/domain/content"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Banner and About are single-row tables. Before the admin saves them for
// the first time there is no row; callers fall back to defaults.

func (r *Repo) GetBanner(ctx context.Context) (content.Banner, bool, error) {
	var b content.Banner
	err := r.db.QueryRow(ctx, `
		SELECT title, subtitle, description, primary_button_text, primary_button_link,
		       secondary_button_text, secondary_button_link
		FROM banner_content WHERE id=1
	`).Scan(&b.Title, &b.Subtitle, &b.Description, &b.PrimaryButtonText,
		&b.PrimaryButtonLink, &b.SecondaryButtonText, &b.SecondaryButtonLink)
	if err == pgx.ErrNoRows {
		return content.Banner{}, false, nil
	}
	if err != nil {
		return content.Banner{}, false, err
	}
	return b, true, nil
}

func (r *Repo) PutBanner(ctx context.Context, b content.Banner) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO banner_content (
			id, title, subtitle, description, primary_button_text,
			primary_button_link, secondary_button_text, secondary_button_link, updated_at
		)
		VALUES (1,$1,$2,$3,$4,$5,$6,$7,now())
		ON CONFLICT (id) DO UPDATE SET
			title=EXCLUDED.title, subtitle=EXCLUDED.subtitle,
			description=EXCLUDED.description,
			primary_button_text=EXCLUDED.primary_button_text,
			primary_button_link=EXCLUDED.primary_button_link,
			secondary_button_text=EXCLUDED.secondary_button_text,
			secondary_button_link=EXCLUDED.secondary_button_link,
			updated_at=now()
	`, b.Title, b.Subtitle, b.Description, b.PrimaryButtonText,
		b.PrimaryButtonLink, b.SecondaryButtonText, b.SecondaryButtonLink)
	return err
}

func (r *Repo) GetAbout(ctx context.Context) (content.About, bool, error) {
	var a content.About
	err := r.db.QueryRow(ctx, `
		SELECT title, description, image_url, features FROM about_section WHERE id=1
	`).Scan(&a.Title, &a.Description, &a.ImageURL, &a.Features)
	if err == pgx.ErrNoRows {
		return content.About{}, false, nil
	}
	if err != nil {
		return content.About{}, false, err
	}
	return a, true, nil
}

func (r *Repo) PutAbout(ctx context.Context, a content.About) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO about_section (id, title, description, image_url, features, updated_at)
		VALUES (1,$1,$2,$3,$4,now())
		ON CONFLICT (id) DO UPDATE SET
			title=EXCLUDED.title, description=EXCLUDED.description,
			image_url=EXCLUDED.image_url, features=EXCLUDED.features, updated_at=now()
	`, a.Title, a.Description, a.ImageURL, a.Features)
	return err
}

func (r *Repo) ListTestimonials(ctx context.Context) ([]content.Testimonial, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, role, company, content, rating, image_url
		FROM testimonials ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []content.Testimonial{}
	for rows.Next() {
		var t content.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Company, &t.Content, &t.Rating, &t.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) CreateTestimonial(ctx context.Context, t content.Testimonial) (content.Testimonial, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO testimonials (name, role, company, content, rating, image_url)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, t.Name, t.Role, t.Company, t.Content, t.Rating, t.ImageURL).Scan(&t.ID)
	return t, err
}

func (r *Repo) UpdateTestimonial(ctx context.Context, id int64, name, role, company, body *string, rating *int, imageURL *string) (content.Testimonial, error) {
	var t content.Testimonial
	err := r.db.QueryRow(ctx, `
		UPDATE testimonials SET
			name       = COALESCE($2, name),
			role       = COALESCE($3, role),
			company    = COALESCE($4, company),
			content    = COALESCE($5, content),
			rating     = COALESCE($6, rating),
			image_url  = COALESCE($7, image_url),
			updated_at = now()
		WHERE id = $1
		RETURNING id, name, role, company, content, rating, image_url
	`, id, name, role, company, body, rating, imageURL).Scan(
		&t.ID, &t.Name, &t.Role, &t.Company, &t.Content, &t.Rating, &t.ImageURL)
	return t, err
}

func (r *Repo) DeleteTestimonial(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "testimonials", id)
}

func (r *Repo) ListFAQs(ctx context.Context) ([]content.FAQ, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, question, answer, category FROM faqs ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []content.FAQ{}
	for rows.Next() {
		var f content.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *Repo) CreateFAQ(ctx context.Context, f content.FAQ) (content.FAQ, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO faqs (question, answer, category)
		VALUES ($1,$2,$3)
		RETURNING id
	`, f.Question, f.Answer, f.Category).Scan(&f.ID)
	return f, err
}

func (r *Repo) UpdateFAQ(ctx context.Context, id int64, question, answer, category *string) (content.FAQ, error) {
	var f content.FAQ
	err := r.db.QueryRow(ctx, `
		UPDATE faqs SET
			question   = COALESCE($2, question),
			answer     = COALESCE($3, answer),
			category   = COALESCE($4, category),
			updated_at = now()
		WHERE id = $1
		RETURNING id, question, answer, category
	`, id, question, answer, category).Scan(&f.ID, &f.Question, &f.Answer, &f.Category)
	return f, err
}

func (r *Repo) DeleteFAQ(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "faqs", id)
}

func (r *Repo) ListBlogs(ctx context.Context) ([]content.BlogPost, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, excerpt, content, author, publish_date, category, image_url, tags
		FROM blog_posts ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []content.BlogPost{}
	for rows.Next() {
		var b content.BlogPost
		if err := rows.Scan(&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.Author,
			&b.PublishDate, &b.Category, &b.ImageURL, &b.Tags); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) CreateBlog(ctx context.Context, b content.BlogPost) (content.BlogPost, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO blog_posts (title, excerpt, content, author, publish_date, category, image_url, tags)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`, b.Title, b.Excerpt, b.Content, b.Author, b.PublishDate, b.Category, b.ImageURL, b.Tags).Scan(&b.ID)
	return b, err
}

func (r *Repo) UpdateBlog(ctx context.Context, id int64, title, excerpt, body, author, publishDate, category, imageURL *string, tags []string) (content.BlogPost, error) {
	var b content.BlogPost
	err := r.db.QueryRow(ctx, `
		UPDATE blog_posts SET
			title        = COALESCE($2, title),
			excerpt      = COALESCE($3, excerpt),
			content      = COALESCE($4, content),
			author       = COALESCE($5, author),
			publish_date = COALESCE($6, publish_date),
			category     = COALESCE($7, category),
			image_url    = COALESCE($8, image_url),
			tags         = COALESCE($9, tags),
			updated_at   = now()
		WHERE id = $1
		RETURNING id, title, excerpt, content, author, publish_date, category, image_url, tags
	`, id, title, excerpt, body, author, publishDate, category, imageURL, tags).Scan(
		&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.Author, &b.PublishDate,
		&b.Category, &b.ImageURL, &b.Tags)
	return b, err
}

func (r *Repo) DeleteBlog(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "blog_posts", id)
}

func (r *Repo) ListConsultations(ctx context.Context) ([]content.Consultation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, address, phone, description, files, submitted_at
		FROM consultations ORDER BY submitted_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []content.Consultation{}
	for rows.Next() {
		var s content.Consultation
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.Phone,
			&s.Description, &s.Files, &s.SubmittedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) CreateConsultation(ctx context.Context, s content.Consultation) (content.Consultation, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO consultations (name, email, address, phone, description, files)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, submitted_at
	`, s.Name, s.Email, s.Address, s.Phone, s.Description, s.Files).Scan(&s.ID, &s.SubmittedAt)
	return s, err
}

func (r *Repo) DeleteConsultation(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "consultations", id)
}

func (r *Repo) ListContactMessages(ctx context.Context) ([]content.ContactMessage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, phone, email, subject, message, submitted_at
		FROM contact_messages ORDER BY submitted_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []content.ContactMessage{}
	for rows.Next() {
		var m content.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Email,
			&m.Subject, &m.Message, &m.SubmittedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *Repo) CreateContactMessage(ctx context.Context, m content.ContactMessage) (content.ContactMessage, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO contact_messages (name, phone, email, subject, message)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, submitted_at
	`, m.Name, m.Phone, m.Email, m.Subject, m.Message).Scan(&m.ID, &m.SubmittedAt)
	return m, err
}

func (r *Repo) DeleteContactMessage(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "contact_messages", id)
}

func (r *Repo) deleteByID(ctx context.Context, table string, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM `+table+` WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
