package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginReturnsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/user/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.com" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(Session{
			User:  User{ID: 12, Email: "a@b.com", Role: "user"},
			Token: "jwt-here",
		})
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, TokenProvider: func() (string, string) { return "", "" }})

	sess, err := c.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Token != "jwt-here" || sess.User.ID != 12 {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if sess.UserIDString() != "12" {
		t.Fatalf("UserIDString() = %q", sess.UserIDString())
	}

	_, err = c.Login(context.Background(), "wrong@b.com", "pw")
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}
