// Package models holds the bindery entity types as they are persisted.
// Optional text fields use the empty string for "absent" and are omitted
// from the JSON encoding, so absent values never round-trip as literals.
package models

// Customer is a bindery customer.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contactName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// GetID returns the record identity.
func (c Customer) GetID() string { return c.ID }

// CreateCustomerInput carries the fields accepted when creating a customer.
type CreateCustomerInput struct {
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	Notes       string
}

// UpdateCustomerInput is a partial update; nil fields are left untouched.
type UpdateCustomerInput struct {
	Name        *string
	ContactName *string
	Email       *string
	Phone       *string
	Address     *string
	Notes       *string
}
