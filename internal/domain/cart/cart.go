package cart

// Cart is the server-owned cart for one user. Clients treat the body of
// every cart response as the whole truth, so mutations always return the
// full cart with the recomputed total.
type Cart struct {
	Items       []Item  `json:"items"`
	TotalAmount float64 `json:"totalAmount"`
}

// Item snapshots the test's name and unit price at add time.
type Item struct {
	ItemID   int64   `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func Empty() Cart {
	return Cart{Items: []Item{}, TotalAmount: 0}
}
