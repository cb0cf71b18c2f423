package models

// CartLine is one cart entry. Name and Price are snapshots of the product
// at add time; the catalog stays the source of truth for everything else.
type CartLine struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// LineTotal is the price of this line, quantity included.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}
