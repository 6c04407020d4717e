package domain

import "time"

// SearchQuery is a logged search made by an authenticated user. Soft-deleted
// rows stay out of all aggregations.
type SearchQuery struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Query     string    `json:"query"`
	IsDeleted bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ViewHistory records a listing detail view by an authenticated user.
type ViewHistory struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ListingID int64     `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PopularQuery is one row of the popular-searches aggregation.
type PopularQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
