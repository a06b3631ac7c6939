// Package tracking derives the fixed-schedule delivery timeline shown on
// the order tracking view. It is a read-only projection: the Order is
// never mutated and missing fields only degrade the display.
package tracking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/raghu62-rp/OSM-main/internal/domain"
)

const (
	placeholder = "N/A"
	dateLayout  = "2 January 2006"
)

type Step struct {
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

type View struct {
	OrderID           string             `json:"orderId"`
	Date              string             `json:"date"`
	Total             decimal.Decimal    `json:"total"`
	PaymentMethod     string             `json:"paymentMethod"`
	AddressLines      []string           `json:"addressLines"`
	Items             []domain.OrderItem `json:"items"`
	EstimatedDelivery string             `json:"estimatedDelivery"`
	Steps             []Step             `json:"steps"`
}

// Project renders the 5-step timeline for an order. The first two steps are
// always completed and dated at placement; the remaining three carry static
// relative-day labels regardless of how much real time has passed.
func Project(o domain.Order) View {
	date := formatOrDefault(o.Date, time.Now().Format(dateLayout))

	steps := []Step{
		{Status: "Order Placed", Completed: true, Date: date},
		{Status: "Processing", Completed: true, Date: date},
		{Status: "Shipped", Completed: false, Date: "Expected in 1-2 days"},
		{Status: "Out for Delivery", Completed: false, Date: "Expected in 2-3 days"},
		{Status: "Delivered", Completed: false, Date: "Expected in 3-5 days"},
	}

	items := o.Items
	if items == nil {
		items = []domain.OrderItem{}
	}

	return View{
		OrderID:           stringOrDefault(o.OrderID, placeholder),
		Date:              date,
		Total:             o.Total,
		PaymentMethod:     stringOrDefault(o.PaymentMethod.String(), domain.PaymentMethodUPI.String()),
		AddressLines:      addressLines(o.ShippingAddress),
		Items:             items,
		EstimatedDelivery: formatOrDefault(o.EstimatedDeliveryDate, placeholder),
		Steps:             steps,
	}
}

func addressLines(a domain.Address) []string {
	country := a.Country
	if country == "" {
		country = "India"
	}
	return []string{
		stringOrDefault(a.AddressLine, placeholder),
		stringOrDefault(a.City, placeholder) + ", " + stringOrDefault(a.Pincode, placeholder),
		country,
	}
}

func stringOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func formatOrDefault(t time.Time, def string) string {
	if t.IsZero() {
		return def
	}
	return t.Format(dateLayout)
}
