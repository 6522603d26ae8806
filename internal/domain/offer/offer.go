package offer

import "time"

type Offer struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Discount    string    `json:"discount"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	ValidTill   string    `json:"validTill"`
	Popularity  string    `json:"popularity"`
	CreatedAt   time.Time `json:"created_at"`
}

type Referral struct {
	ID            int64     `json:"id"`
	ReferrerEmail string    `json:"referrerEmail"`
	ReferrerPhone string    `json:"referrerPhone"`
	FriendEmail   string    `json:"friendEmail"`
	FriendPhone   string    `json:"friendPhone"`
	CreatedAt     time.Time `json:"created_at"`
}
