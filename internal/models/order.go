package models

import "time"

// OrderDB represents an order placed by a user.
type OrderDB struct {
	OrderID   int64     `json:"id" db:"order_id"`       // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`   // Owning user
	Address   string    `json:"address" db:"address"`   // Shipping address
	City      string    `json:"city" db:"city"`         // Shipping city
	Country   string    `json:"country" db:"country"`   // Shipping country
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp

	// Items are the order lines, loaded with the order.
	Items []OrderItemDB `json:"items" db:"-"`
}

// OrderItemDB represents a single product line within an order.
type OrderItemDB struct {
	ItemID    int64 `json:"id" db:"item_id"`        // Primary key
	OrderID   int64 `json:"order_id" db:"order_id"` // Owning order
	ProductID int64 `json:"product_id" db:"product_id"`
	Quantity  int   `json:"quantity" db:"quantity"`
}
