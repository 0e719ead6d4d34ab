package model

// Inventory is a single tracked inventory record.
type Inventory struct {
	ID          string  `json:"inventoryId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}
