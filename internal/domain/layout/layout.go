package layout

import "time"

// Slider, BackgroundImage and MenuItem are ordered lists. The server is
// authoritative for ordering: every read sorts by Order ascending.

type Slider struct {
	ID        int64     `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	AltText   string    `json:"altText"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BackgroundImage struct {
	ID        int64     `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	AltText   string    `json:"altText"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Path      string    `json:"path"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
