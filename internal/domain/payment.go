package domain

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodUPI    PaymentMethod = "upi"
	PaymentMethodWallet PaymentMethod = "wallet"
)

func (m PaymentMethod) String() string {
	return string(m)
}

type CardDetails struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Exp    string `json:"exp"`
	CVV    string `json:"cvv"`
}

// PaymentDetails carries the input for every payment method; only the
// fields of the selected method are looked at, the rest are ignored.
type PaymentDetails struct {
	Card  CardDetails `json:"card"`
	UPIID string      `json:"upiId"`
}
