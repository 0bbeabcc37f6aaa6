package domain

import "time"

// Item is the managed resource: a stored row with server-assigned ID
// and timestamps.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateItemRequest carries the fields needed to create an item.
type CreateItemRequest struct {
	Name        string
	Description *string
}

// UpdateItemRequest carries a partial update. Nil fields are left unchanged.
type UpdateItemRequest struct {
	Name        *string
	Description *string
}
