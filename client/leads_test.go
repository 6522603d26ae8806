package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSubmitContact(t *testing.T) {
	var got ContactMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/contact" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, TokenProvider: func() (string, string) { return "", "" }})

	msg := ContactMessage{Name: "Asha", Phone: "9999999999", Message: "please call back"}
	if err := c.SubmitContact(context.Background(), msg); err != nil {
		t.Fatal(err)
	}
	if got != msg {
		t.Fatalf("server received %+v, want %+v", got, msg)
	}
}
