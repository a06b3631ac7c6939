package orders

import (
	"github.com/shopspring/decimal"

	"github.com/raghu62-rp/OSM-main/internal/domain"
)

type ReceiptLine struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// Receipt is the read-only view shown after a successful checkout.
// Shipping is always free on this storefront.
type Receipt struct {
	OrderID       string          `json:"orderId"`
	Date          string          `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	Lines         []ReceiptLine   `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Shipping      string          `json:"shipping"`
	Total         decimal.Decimal `json:"total"`
}

const receiptDateLayout = "2 January 2006, 15:04"

func BuildReceipt(o domain.Order) Receipt {
	lines := make([]ReceiptLine, len(o.Items))
	for i, it := range o.Items {
		lines[i] = ReceiptLine{
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			LineTotal: it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
		}
	}

	date := ""
	if !o.Date.IsZero() {
		date = o.Date.Format(receiptDateLayout)
	}

	return Receipt{
		OrderID:       o.OrderID,
		Date:          date,
		PaymentMethod: o.PaymentMethod.String(),
		Status:        "PAID",
		Lines:         lines,
		Subtotal:      o.Total,
		Shipping:      "FREE",
		Total:         o.Total,
	}
}
