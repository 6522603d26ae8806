package client

import (
	"context"
	"net/http"
	"strconv"
)

type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type Session struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// UserIDString is what the website puts in the x-user-id header.
func (s Session) UserIDString() string {
	return strconv.FormatInt(s.User.ID, 10)
}

// Login authenticates and returns the session. Persisting the token (and
// feeding it back through the TokenProvider) is the caller's job, the same
// way the website writes it to local storage.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var out Session
	err := c.do(ctx, http.MethodPost, "/user/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, email, password, name, phone string) error {
	return c.do(ctx, http.MethodPost, "/user/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
		"phone":    phone,
	}, nil)
}

func (c *Client) Me(ctx context.Context) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/user/me", nil, &out)
	return out, err
}
