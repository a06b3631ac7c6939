package domain

// Address is the delivery address collected at checkout. Country defaults
// to "India" in the checkout form; every other field is mandatory.
type Address struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Country     string `json:"country"`
}
