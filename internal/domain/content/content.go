package content

import "time"

// Banner and About are singleton records edited from the admin console.

type Banner struct {
	Title               string `json:"title"`
	Subtitle            string `json:"subtitle"`
	Description         string `json:"description"`
	PrimaryButtonText   string `json:"primaryButtonText"`
	PrimaryButtonLink   string `json:"primaryButtonLink"`
	SecondaryButtonText string `json:"secondaryButtonText"`
	SecondaryButtonLink string `json:"secondaryButtonLink"`
}

type About struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Features    []string `json:"features"`
}

type Testimonial struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
	ImageURL string `json:"imageUrl"`
}

type FAQ struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type BlogPost struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	PublishDate string   `json:"publishDate"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

// ContactMessage comes from the home page contact form.
type ContactMessage struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Consultation is a lead-capture submission. File names only, not bytes.
type Consultation struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	Files       []string  `json:"files"`
	SubmittedAt time.Time `json:"submittedAt"`
}
