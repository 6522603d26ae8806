package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeCartBackend is an in-memory stand-in for the cart endpoints with the
// real backend's merge policy: adding an item that is already in the cart
// increments its quantity.
type fakeCartBackend struct {
	mu    sync.Mutex
	items []CartItem

	getCalls int
}

func (f *fakeCartBackend) total() float64 {
	var t float64
	for _, it := range f.items {
		t += it.Price * float64(it.Quantity)
	}
	return t
}

func (f *fakeCartBackend) cart() Cart {
	items := make([]CartItem, len(f.items))
	copy(items, f.items)
	return Cart{Items: items, TotalAmount: f.total()}
}

func (f *fakeCartBackend) handler() http.Handler {
	mux := http.NewServeMux()
	requireAuth := func(w http.ResponseWriter, r *http.Request) bool {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return false
		}
		return true
	}

	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		f.mu.Lock()
		f.getCalls++
		body := f.cart()
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(body)
	})
	mux.HandleFunc("POST /cart/add", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		var it CartItem
		_ = json.NewDecoder(r.Body).Decode(&it)
		if it.Quantity <= 0 {
			it.Quantity = 1
		}
		f.mu.Lock()
		merged := false
		for i := range f.items {
			if f.items[i].ItemID == it.ItemID {
				f.items[i].Quantity += it.Quantity
				merged = true
				break
			}
		}
		if !merged {
			f.items = append(f.items, it)
		}
		body := f.cart()
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(body)
	})
	mux.HandleFunc("DELETE /cart/item/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		f.mu.Lock()
		kept := f.items[:0]
		for _, it := range f.items {
			if strconv.FormatInt(it.ItemID, 10) != r.PathValue("id") {
				kept = append(kept, it)
			}
		}
		f.items = kept
		body := f.cart()
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(body)
	})
	mux.HandleFunc("DELETE /cart/clear", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		f.mu.Lock()
		f.items = nil
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(Cart{Items: []CartItem{}, TotalAmount: 0})
	})
	return mux
}

type tokenBox struct {
	mu    sync.Mutex
	token string
	uid   string
}

func (b *tokenBox) set(token, uid string) {
	b.mu.Lock()
	b.token, b.uid = token, uid
	b.mu.Unlock()
}

func (b *tokenBox) provider() TokenProvider {
	return func() (string, string) {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.token, b.uid
	}
}

func newCartFixture(t *testing.T) (*fakeCartBackend, *tokenBox, *CartSession) {
	t.Helper()
	backend := &fakeCartBackend{}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	box := &tokenBox{}
	c := New(Config{BaseURL: srv.URL, TokenProvider: box.provider()})
	return backend, box, c.NewCartSession()
}

func TestCartAddUnauthenticated(t *testing.T) {
	backend, _, sess := newCartFixture(t)

	err := sess.Add(context.Background(), CartItem{ItemID: 1, Name: "CBC", Price: 500})
	if err != ErrLoginRequired {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}
	if got := sess.Current(); len(got.Items) != 0 || got.TotalAmount != 0 {
		t.Fatalf("cart changed on unauthenticated add: %+v", got)
	}
	if len(backend.items) != 0 {
		t.Fatalf("server cart mutated: %+v", backend.items)
	}
}

func TestCartFetchSkippedWhenLoggedOut(t *testing.T) {
	backend, _, sess := newCartFixture(t)

	if err := sess.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch without login should be a silent no-op, got %v", err)
	}
	if backend.getCalls != 0 {
		t.Fatalf("fetch hit the server while logged out")
	}
}

func TestCartAddMergesQuantity(t *testing.T) {
	_, box, sess := newCartFixture(t)
	box.set("tok", "7")

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := sess.Add(ctx, CartItem{ItemID: 42, Name: "Lipid Profile", Price: 750}); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	got := sess.Current()
	if len(got.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(got.Items))
	}
	if got.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", got.Items[0].Quantity)
	}
	if got.TotalAmount != 1500 {
		t.Fatalf("expected total 1500, got %v", got.TotalAmount)
	}
}

func TestCartClear(t *testing.T) {
	_, box, sess := newCartFixture(t)
	box.set("tok", "7")

	ctx := context.Background()
	if err := sess.Add(ctx, CartItem{ItemID: 1, Name: "CBC", Price: 500}); err != nil {
		t.Fatal(err)
	}
	if err := sess.Clear(ctx); err != nil {
		t.Fatal(err)
	}

	got := sess.Current()
	if len(got.Items) != 0 || got.TotalAmount != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", got)
	}
}

func TestCartRemove(t *testing.T) {
	_, box, sess := newCartFixture(t)
	box.set("tok", "7")

	ctx := context.Background()
	_ = sess.Add(ctx, CartItem{ItemID: 1, Name: "CBC", Price: 500})
	_ = sess.Add(ctx, CartItem{ItemID: 2, Name: "TSH", Price: 300})

	if err := sess.Remove(ctx, 1); err != nil {
		t.Fatal(err)
	}
	got := sess.Current()
	if len(got.Items) != 1 || got.Items[0].ItemID != 2 {
		t.Fatalf("expected only item 2 left, got %+v", got.Items)
	}
	if got.TotalAmount != 300 {
		t.Fatalf("expected total 300, got %v", got.TotalAmount)
	}
}

func TestCartStaleReadOnFetchFailure(t *testing.T) {
	fail := false
	backend := &fakeCartBackend{items: []CartItem{{ItemID: 9, Name: "Vitamin D", Price: 900, Quantity: 1}}}
	inner := backend.handler()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		inner.ServeHTTP(w, r)
	}))
	defer srv.Close()

	box := &tokenBox{}
	box.set("tok", "7")
	sess := New(Config{BaseURL: srv.URL, TokenProvider: box.provider()}).NewCartSession()

	ctx := context.Background()
	if err := sess.Fetch(ctx); err != nil {
		t.Fatal(err)
	}
	before := sess.Current()

	fail = true
	if err := sess.Fetch(ctx); err == nil {
		t.Fatal("expected fetch error")
	}
	after := sess.Current()
	if len(after.Items) != len(before.Items) || after.TotalAmount != before.TotalAmount {
		t.Fatalf("failed fetch must keep previous state: before=%+v after=%+v", before, after)
	}
}

// Guest adds a blood test, is told to log in, logs in, and the cart comes
// back with the item and a server-computed total.
func TestGuestAddThenLoginFlow(t *testing.T) {
	backend, box, sess := newCartFixture(t)
	ctx := context.Background()

	item := CartItem{ItemID: 101, Name: "HbA1c", Price: 500}
	if err := sess.Add(ctx, item); err != ErrLoginRequired {
		t.Fatalf("guest add should demand login, got %v", err)
	}

	// logged in now; retry the add and sync on identity change
	box.set("tok", "12")
	if err := sess.OnUserChange(ctx); err != nil {
		t.Fatal(err)
	}
	if err := sess.Add(ctx, item); err != nil {
		t.Fatal(err)
	}

	got := sess.Current()
	if len(got.Items) != 1 || got.Items[0].ItemID != 101 {
		t.Fatalf("expected item 101 in cart, got %+v", got.Items)
	}
	if got.Items[0].Quantity < 1 {
		t.Fatalf("expected quantity >= 1, got %d", got.Items[0].Quantity)
	}
	want := got.Items[0].Price * float64(got.Items[0].Quantity)
	if got.TotalAmount != want {
		t.Fatalf("total %v does not equal price*quantity %v", got.TotalAmount, want)
	}
	if backend.total() != got.TotalAmount {
		t.Fatalf("client total %v diverged from server %v", got.TotalAmount, backend.total())
	}
}

func TestCartCurrentReturnsCopy(t *testing.T) {
	_, box, sess := newCartFixture(t)
	box.set("tok", "7")

	if err := sess.Add(context.Background(), CartItem{ItemID: 1, Name: "CBC", Price: 500}); err != nil {
		t.Fatal(err)
	}

	view := sess.Current()
	view.Items[0].Quantity = 99
	view.Items[0].Name = "scribbled"

	fresh := sess.Current()
	if fresh.Items[0].Quantity != 1 || fresh.Items[0].Name != "CBC" {
		t.Fatalf("mutating the returned cart leaked into session state: %+v", fresh.Items[0])
	}
}

func TestCartOnUserChangeNoRefetchForSameUser(t *testing.T) {
	backend, box, sess := newCartFixture(t)
	box.set("tok", "7")
	ctx := context.Background()

	if err := sess.OnUserChange(ctx); err != nil {
		t.Fatal(err)
	}
	calls := backend.getCalls
	if err := sess.OnUserChange(ctx); err != nil {
		t.Fatal(err)
	}
	if backend.getCalls != calls {
		t.Fatalf("same identity must not trigger a re-fetch")
	}
}
