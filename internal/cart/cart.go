// Package cart implements the pure state transitions of the shopping cart.
// Every operation returns a new Cart and never fails; unknown product ids
// are silently ignored so removal stays idempotent.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/raghu62-rp/OSM-main/internal/domain"
)

// AddItem merges the product into the cart: an existing line item gets its
// quantity bumped by one, otherwise a new line item with quantity 1 is
// appended. Insertion order of the other items is preserved.
func AddItem(c domain.Cart, p domain.Product) domain.Cart {
	items := cloneItems(c.Items)
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity++
			return domain.Cart{Items: items}
		}
	}
	items = append(items, domain.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
	return domain.Cart{Items: items}
}

// SetQuantity replaces the quantity of the matching line item in place.
// A quantity of zero or less removes the item entirely; an unknown product
// id leaves the cart unchanged.
func SetQuantity(c domain.Cart, productID string, qty int) domain.Cart {
	if qty <= 0 {
		return RemoveItem(c, productID)
	}
	items := cloneItems(c.Items)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = qty
			return domain.Cart{Items: items}
		}
	}
	return c
}

// RemoveItem drops the matching line item; no-op if it is not in the cart.
func RemoveItem(c domain.Cart, productID string) domain.Cart {
	for i, it := range c.Items {
		if it.ProductID == productID {
			items := make([]domain.LineItem, 0, len(c.Items)-1)
			items = append(items, c.Items[:i]...)
			items = append(items, c.Items[i+1:]...)
			return domain.Cart{Items: items}
		}
	}
	return c
}

// Total is the sum of price times quantity over all line items.
func Total(c domain.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ItemCount is the sum of quantities, not the number of distinct products.
func ItemCount(c domain.Cart) int {
	count := 0
	for _, it := range c.Items {
		count += it.Quantity
	}
	return count
}

func cloneItems(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out
}
