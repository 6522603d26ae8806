package order

import (
	"time"

	"thybackend/internal/domain/cart"
)

// Order is a booked home-collection appointment. The cart contents are
// snapshotted into the order at booking time.
type Order struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id"`
	Pincode         string      `json:"pincode"`
	FullName        string      `json:"fullName"`
	NoOfPersons     int         `json:"noOfPersons"`
	Age             string      `json:"age"`
	Gender          string      `json:"gender"`
	Mobile          string      `json:"mobile"`
	Email           string      `json:"email"`
	Address         string      `json:"address"`
	AppointmentDate string      `json:"appointmentDate"`
	AppointmentTime string      `json:"appointmentTime"`
	WantsHardCopy   bool        `json:"wantsHardCopy"`
	PaymentID       string      `json:"paymentId"`
	PrescriptionURL string      `json:"prescriptionUrl,omitempty"`
	Items           []cart.Item `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	CreatedAt       time.Time   `json:"created_at"`
}
