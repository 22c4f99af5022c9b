package entity

// Customer identifies the billing party on an invoice. Email is the identity key.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
