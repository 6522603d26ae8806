package orders

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"thybackend/internal/domain/cart"
	"thybackend/internal/domain/order"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, o order.Order) (order.Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return order.Order{}, err
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO orders (
			user_id, pincode, full_name, no_of_persons, age, gender, mobile,
			email, address, appointment_date, appointment_time, wants_hard_copy,
			payment_id, prescription_url, items, total_amount
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING id, created_at
	`, o.UserID, o.Pincode, o.FullName, o.NoOfPersons, o.Age, o.Gender,
		o.Mobile, o.Email, o.Address, o.AppointmentDate, o.AppointmentTime,
		o.WantsHardCopy, o.PaymentID, o.PrescriptionURL, items, o.TotalAmount,
	).Scan(&o.ID, &o.CreatedAt)
	return o, err
}

func (r *Repo) List(ctx context.Context) ([]order.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, pincode, full_name, no_of_persons, age, gender,
		       mobile, email, address, appointment_date, appointment_time,
		       wants_hard_copy, payment_id, prescription_url, items,
		       total_amount, created_at
		FROM orders ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []order.Order{}
	for rows.Next() {
		var o order.Order
		var items []byte
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Pincode, &o.FullName, &o.NoOfPersons, &o.Age,
			&o.Gender, &o.Mobile, &o.Email, &o.Address, &o.AppointmentDate,
			&o.AppointmentTime, &o.WantsHardCopy, &o.PaymentID,
			&o.PrescriptionURL, &items, &o.TotalAmount, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			o.Items = []cart.Item{}
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
