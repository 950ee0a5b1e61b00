package domain

import "time"

// Product is one entry of the fixed catalog the page supplies.
// Prices are whole rubles.
type Product struct {
	Label     string
	UnitPrice int
}

// Catalog is the read-only product list rendered into the order form.
type Catalog []Product

// UnitPrice looks up the price for a product label.
func (c Catalog) UnitPrice(label string) (int, bool) {
	for _, p := range c {
		if p.Label == label {
			return p.UnitPrice, true
		}
	}
	return 0, false
}

// Order is the payload built at submission time. Ownership transfers to the
// backend on a successful POST; the client never mutates it afterwards.
type Order struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	Details   string `json:"details"`
	TotalCost int    `json:"total_cost"`
}

// OrderRecord is the server-returned read model rendered by the admin
// console. It is never written back.
type OrderRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	Details   string    `json:"details"`
	TotalCost int       `json:"total_cost"`
	CreatedAt time.Time `json:"created_at"`
}
