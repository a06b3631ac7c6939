package domain

import "github.com/shopspring/decimal"

// LineItem is one product entry in a cart. Exactly one LineItem exists per
// distinct product id; quantity is always >= 1 while the item is present.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Cart keeps line items in the order the products were first added.
type Cart struct {
	Items []LineItem `json:"items"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
