package thyroid

import "time"

// Package is one thyroid test bundle. The wire keys mix cases because the
// package page binds to exactly these names.
type Package struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	OriginalPrice   float64   `json:"originalPrice"`
	TestsIncluded   string    `json:"tests_included"`
	Description     string    `json:"description"`
	ReportTime      string    `json:"report_time"`
	SampleType      string    `json:"sample_type"`
	FastingRequired string    `json:"fasting_required"`
	Popular         bool      `json:"popular"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
