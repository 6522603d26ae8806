package service

import "time"

// Service is one health-checkup package shown on the storefront.
type Service struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	DetailedDescription string    `json:"detailedDescription,omitempty"`
	Price               float64   `json:"price"`
	DisplayPrice        string    `json:"displayPrice,omitempty"`
	Duration            string    `json:"duration"`
	Rating              float32   `json:"rating"`
	Patients            int       `json:"patients"`
	IsPopular           bool      `json:"isPopular"`
	Category            string    `json:"category"`
	Image               string    `json:"image,omitempty"`
	ImageAlt            string    `json:"imageAlt"`
	AdditionalImages    []string  `json:"additionalImages"`
	Features            []string  `json:"features"`
	Requirements        []string  `json:"requirements"`
	PackageFileURL      string    `json:"packageFileUrl,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
