package entity

import "time"

// Order is the projection of a storefront order exposed to the chat layer.
// UserID is the ownership scope and never leaves the server.
type Order struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"-" bson:"user_id"`
	Status      string    `json:"status" bson:"status"`
	TotalAmount float64   `json:"total_amount" bson:"total_amount"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
