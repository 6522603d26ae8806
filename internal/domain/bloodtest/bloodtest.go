package bloodtest

import "time"

type BloodTest struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"imageUrl"`
	SampleType  string    `json:"sampleType,omitempty"`
	Fasting     string    `json:"fasting,omitempty"`
	ReportTime  string    `json:"reportTime,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
