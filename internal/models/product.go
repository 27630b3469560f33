package models

// ProductDB represents a product record in the catalog.
type ProductDB struct {
	ProductID        int64   `json:"id" db:"product_id"`                 // Primary key
	Name             string  `json:"name" db:"name"`                     // Product name
	ShortDescription string  `json:"short_description" db:"short_description"` // Listing text
	LongDescription  string  `json:"long_description" db:"long_description"`   // Detail text
	Price            float64 `json:"price" db:"price"`                   // Unit price
}
