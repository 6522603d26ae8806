package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// Cart is the server cart's wire shape.
type Cart struct {
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
}

// CartItem carries the unit price snapshotted by the server at add time.
type CartItem struct {
	ItemID   int64   `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func emptyCart() Cart {
	return Cart{Items: []CartItem{}, TotalAmount: 0}
}

// CartSession keeps a local view of the server-owned cart. The local copy
// is a cache, never the source of truth: every successful call replaces it
// with the server's response body, and a failed fetch keeps the previous
// (possibly stale) view.
type CartSession struct {
	c *Client

	mu       sync.Mutex
	cart     Cart
	lastUser string
}

func (c *Client) NewCartSession() *CartSession {
	return &CartSession{c: c, cart: emptyCart()}
}

// Current returns a copy of the last adopted cart state.
func (s *CartSession) Current() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.cart
	out.Items = make([]CartItem, len(s.cart.Items))
	copy(out.Items, s.cart.Items)
	return out
}

// Fetch loads the cart from the server. Without a logged-in user it does
// nothing and reports no error; there is simply no cart to show. On failure
// the previous state stays in place.
func (s *CartSession) Fetch(ctx context.Context) error {
	if !s.c.authenticated() {
		return nil
	}

	var fresh Cart
	if err := s.c.do(ctx, http.MethodGet, "/cart", nil, &fresh); err != nil {
		return err
	}
	s.adopt(fresh)
	return nil
}

// Add sends the item to the server and adopts the returned cart. An
// unauthenticated call returns ErrLoginRequired with local state untouched;
// the item is discarded, not queued for later.
func (s *CartSession) Add(ctx context.Context, item CartItem) error {
	if !s.c.authenticated() {
		return ErrLoginRequired
	}

	var fresh Cart
	if err := s.c.do(ctx, http.MethodPost, "/cart/add", item, &fresh); err != nil {
		return err
	}
	s.adopt(fresh)
	return nil
}

func (s *CartSession) Remove(ctx context.Context, itemID int64) error {
	if !s.c.authenticated() {
		return ErrLoginRequired
	}

	var fresh Cart
	path := fmt.Sprintf("/cart/item/%d", itemID)
	if err := s.c.do(ctx, http.MethodDelete, path, nil, &fresh); err != nil {
		return err
	}
	s.adopt(fresh)
	return nil
}

// Clear empties the cart. Local state resets only after the server
// acknowledges, never optimistically before.
func (s *CartSession) Clear(ctx context.Context) error {
	if !s.c.authenticated() {
		return ErrLoginRequired
	}

	if err := s.c.do(ctx, http.MethodDelete, "/cart/clear", nil, nil); err != nil {
		return err
	}
	s.adopt(emptyCart())
	return nil
}

// OnUserChange is the cart's one invalidation rule: whenever the
// authenticated identity changes (login, logout, account switch) the local
// view is dropped and re-fetched. Nothing else invalidates it.
func (s *CartSession) OnUserChange(ctx context.Context) error {
	_, uid := s.c.tokens()

	s.mu.Lock()
	changed := uid != s.lastUser
	s.lastUser = uid
	if changed {
		s.cart = emptyCart()
	}
	s.mu.Unlock()

	if !changed {
		return nil
	}
	return s.Fetch(ctx)
}

func (s *CartSession) adopt(fresh Cart) {
	if fresh.Items == nil {
		fresh.Items = []CartItem{}
	}
	s.mu.Lock()
	s.cart = fresh
	s.mu.Unlock()
}
