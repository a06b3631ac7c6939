package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image"`
	CountInStock int             `json:"countInStock"`
	Rating       float64         `json:"rating"`
}
