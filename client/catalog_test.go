package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newCatalogClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{
		BaseURL:       srv.URL,
		TokenProvider: func() (string, string) { return "tok", "1" },
	})
}

func jsonHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

func TestMirrorLoadShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"id":1,"name":"CBC"},{"id":2,"name":"TSH"}]`, 2},
		{"services envelope", `{"services":[{"id":1,"name":"Full Body"}]}`, 1},
		{"data envelope", `{"data":[{"id":3,"name":"Lipid"},{"id":4,"name":"LFT"},{"id":5,"name":"KFT"}]}`, 3},
		{"items envelope", `{"items":[{"id":7,"name":"Thyroid"}]}`, 1},
		{"empty array", `[]`, 0},
		{"unknown shape", `{"message":"nothing here"}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newCatalogClient(t, jsonHandler(tc.body))
			m := c.BloodTests()
			if err := m.Load(context.Background()); err != nil {
				t.Fatal(err)
			}
			if got := m.Items(); len(got) != tc.want {
				t.Fatalf("want %d items, got %d (%+v)", tc.want, len(got), got)
			}
		})
	}
}

func TestMirrorAddAdoptsEchoedCollection(t *testing.T) {
	c := newCatalogClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"services":[{"id":1,"name":"Full Body"},{"id":2,"name":"Senior Citizen"}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"services":[]}`))
	}))

	m := c.Services()
	if err := m.Add(context.Background(), map[string]any{"name": "Senior Citizen"}); err != nil {
		t.Fatal(err)
	}
	got := m.Items()
	if len(got) != 2 {
		t.Fatalf("expected adopted collection of 2, got %+v", got)
	}
}

func TestMirrorAddAppendsSingleRecord(t *testing.T) {
	c := newCatalogClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"name":"Iron Studies","price":850}`))
	}))

	m := c.BloodTests()
	if err := m.Add(context.Background(), map[string]any{"name": "Iron Studies"}); err != nil {
		t.Fatal(err)
	}
	got := m.Items()
	if len(got) != 1 || got[0].ID != 9 {
		t.Fatalf("expected single appended record with id 9, got %+v", got)
	}
}

func TestMirrorUpdateReloads(t *testing.T) {
	gets := 0
	c := newCatalogClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPut:
			_, _ = w.Write([]byte(`{"id":1,"name":"CBC","price":600}`))
		case http.MethodGet:
			gets++
			_, _ = w.Write([]byte(`[{"id":1,"name":"CBC","price":600}]`))
		}
	}))

	m := c.BloodTests()
	if err := m.Update(context.Background(), 1, map[string]any{"price": 600}); err != nil {
		t.Fatal(err)
	}
	if gets != 1 {
		t.Fatalf("update must re-fetch the collection, saw %d GETs", gets)
	}
	got := m.Items()
	if len(got) != 1 || got[0].Price != 600 {
		t.Fatalf("expected reloaded record with new price, got %+v", got)
	}
}

func TestMirrorRemoveFiltersLocally(t *testing.T) {
	c := newCatalogClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":1,"name":"CBC"},{"id":2,"name":"TSH"}]`))
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{"message":"deleted"}`))
		}
	}))

	m := c.BloodTests()
	if err := m.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := m.Remove(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	got := m.Items()
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected id 1 filtered out, got %+v", got)
	}
}

func TestMirrorSortByDisplayOrder(t *testing.T) {
	c := newCatalogClient(t, jsonHandler(`[{"id":1,"order":3},{"id":2,"order":1},{"id":3,"order":2}]`))

	m := c.Sliders()
	if err := m.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	m.SortBy(func(a, b OrderedImage) bool { return a.Order < b.Order })

	got := m.Items()
	for i := 1; i < len(got); i++ {
		if got[i-1].Order > got[i].Order {
			t.Fatalf("not in ascending display order: %+v", got)
		}
	}
	if got[0].ID != 2 || got[2].ID != 1 {
		t.Fatalf("unexpected ordering: %+v", got)
	}
}

func TestMirrorAPIErrorSurfaces(t *testing.T) {
	c := newCatalogClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	}))

	m := c.Services()
	err := m.Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized classification, got %v", err)
	}
	if len(m.Items()) != 0 {
		t.Fatalf("failed load must not alter state")
	}
}
