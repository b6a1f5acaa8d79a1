package customer

import (
	ierr "github.com/carryint/carryint/internal/errors"
	"github.com/carryint/carryint/internal/types"
)

// Customer represents a billed party in the system
type Customer struct {
	// ID is the unique identifier for the customer
	ID string `json:"id"`

	// Name is the display name of the customer
	Name string `json:"name"`

	// Address is the billing address printed on invoices
	Address string `json:"address"`

	// Contact is the phone contact of the customer
	Contact string `json:"contact"`

	// Email is the optional email of the customer
	Email string `json:"email,omitempty"`

	// VATNumber is the optional tax registration number of the customer
	VATNumber string `json:"vat_number,omitempty"`

	// Type determines the default payment status at invoice creation:
	// one-time customers settle immediately, credit customers open unpaid
	Type types.CustomerType `json:"type"`

	types.BaseModel
}

func (c *Customer) Validate() error {
	if c.Name == "" {
		return ierr.NewError("customer name is required").
			WithHint("Customer name is required").
			Mark(ierr.ErrValidation)
	}
	if err := c.Type.Validate(); err != nil {
		return err
	}
	return nil
}
