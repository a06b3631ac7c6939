package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/raghu62-rp/OSM-main/internal/domain"
)

// StaticProducts is the bundled dataset served when the catalog service is
// unreachable, so the storefront stays usable offline.
func StaticProducts() []domain.Product {
	return []domain.Product{
		{
			ID:           "p1",
			Name:         "Wireless Bluetooth Headphones",
			Description:  "Premium wireless headphones with active noise cancellation",
			Category:     "Electronics",
			Price:        decimal.NewFromFloat(99.99),
			Image:        "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop&q=80",
			CountInStock: 15,
			Rating:       4.5,
		},
		{
			ID:           "p2",
			Name:         "Smartphone Case",
			Description:  "Protective case with shock absorption",
			Category:     "Electronics",
			Price:        decimal.NewFromFloat(29.99),
			Image:        "https://images.unsplash.com/photo-1601784551446-20c9e07cdbdb?w=500&h=500&fit=crop&q=80",
			CountInStock: 30,
			Rating:       4.2,
		},
		{
			ID:           "p3",
			Name:         "Laptop Stand",
			Description:  "Ergonomic aluminum laptop stand for better posture",
			Category:     "Electronics",
			Price:        decimal.NewFromFloat(45.99),
			Image:        "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&h=500&fit=crop&q=80",
			CountInStock: 20,
			Rating:       4.4,
		},
		{
			ID:           "p4",
			Name:         "Wireless Mouse",
			Description:  "Ergonomic wireless mouse with precision tracking",
			Category:     "Electronics",
			Price:        decimal.NewFromFloat(35.99),
			Image:        "https://images.unsplash.com/photo-1527814050087-3793815479db?w=500&h=500&fit=crop&q=80",
			CountInStock: 40,
			Rating:       4.3,
		},
		{
			ID:           "p5",
			Name:         "USB-C Hub",
			Description:  "7-in-1 USB-C hub with HDMI and card reader",
			Category:     "Electronics",
			Price:        decimal.NewFromFloat(55.99),
			Image:        "https://images.unsplash.com/photo-1625948515291-69613efd103f?w=500&h=500&fit=crop&q=80",
			CountInStock: 25,
			Rating:       4.1,
		},
		{
			ID:           "p6",
			Name:         "Cotton T-Shirt",
			Description:  "Comfortable 100% cotton t-shirt",
			Category:     "Clothing",
			Price:        decimal.NewFromFloat(19.99),
			Image:        "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&h=500&fit=crop&q=80",
			CountInStock: 25,
			Rating:       4.0,
		},
		{
			ID:           "p7",
			Name:         "Denim Jeans",
			Description:  "Classic fit denim jeans",
			Category:     "Clothing",
			Price:        decimal.NewFromFloat(49.99),
			Image:        "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500&h=500&fit=crop&q=80",
			CountInStock: 20,
			Rating:       4.2,
		},
		{
			ID:           "p8",
			Name:         "Running Shoes",
			Description:  "Lightweight running shoes with cushioning",
			Category:     "Sports",
			Price:        decimal.NewFromFloat(89.99),
			Image:        "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&h=500&fit=crop&q=80",
			CountInStock: 10,
			Rating:       4.6,
		},
		{
			ID:           "p9",
			Name:         "Yoga Mat",
			Description:  "Non-slip yoga mat with carrying strap",
			Category:     "Sports",
			Price:        decimal.NewFromFloat(34.99),
			Image:        "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500&h=500&fit=crop&q=80",
			CountInStock: 30,
			Rating:       4.3,
		},
		{
			ID:           "p10",
			Name:         "Coffee Maker",
			Description:  "Programmable coffee maker with thermal carafe",
			Category:     "Home",
			Price:        decimal.NewFromFloat(129.99),
			Image:        "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=500&h=500&fit=crop&q=80",
			CountInStock: 8,
			Rating:       4.4,
		},
	}
}
