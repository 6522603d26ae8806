package content

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// Validation happens before the repo is touched, so a nil repo is enough to
// exercise the rejection paths.
func TestCreateContactMessageValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil)
	r := gin.New()
	r.POST("/contact", h.CreateContactMessage)

	cases := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing message", `{"name":"Asha","phone":"9999999999"}`},
		{"missing name", `{"message":"please call back"}`},
		{"bad email", `{"name":"Asha","message":"hi","email":"not-an-email"}`},
		{"not json", `name=Asha`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("got %d, want 400", w.Code)
			}
		})
	}
}
