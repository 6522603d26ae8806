package client

import (
	"context"
	"net/http"
)

// ContactMessage is the home page contact form payload.
type ContactMessage struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact sends a contact-form message. No login is needed; it is a
// lead form.
func (c *Client) SubmitContact(ctx context.Context, m ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/contact", m, nil)
}
