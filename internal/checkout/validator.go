package checkout

import (
	"strings"

	"github.com/raghu62-rp/OSM-main/internal/domain"
)

// Validate checks the address first and the payment-method input second.
// The rule order is fixed: the first failing rule wins, so an address
// problem is always reported before a payment problem. Fields belonging
// to a method that was not selected are ignored entirely.
func Validate(addr domain.Address, method domain.PaymentMethod, details domain.PaymentDetails) error {
	if addr.FullName == "" || addr.Phone == "" || addr.Email == "" ||
		addr.AddressLine == "" || addr.City == "" || addr.State == "" || addr.Pincode == "" {
		return &ValidationError{Reason: "missing address field"}
	}
	if len(addr.Phone) < 10 {
		return &ValidationError{Reason: "invalid phone"}
	}
	if !strings.Contains(addr.Email, "@") {
		return &ValidationError{Reason: "invalid email"}
	}

	switch method {
	case domain.PaymentMethodCard:
		c := details.Card
		if c.Number == "" || c.Name == "" || c.Exp == "" || c.CVV == "" {
			return &ValidationError{Reason: "missing card fields"}
		}
	case domain.PaymentMethodUPI:
		if details.UPIID == "" || !strings.Contains(details.UPIID, "@") {
			return &ValidationError{Reason: "invalid UPI id"}
		}
	}
	// wallet has nothing further to check
	return nil
}
