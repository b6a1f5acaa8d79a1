package dto

import (
	"github.com/shopspring/decimal"

	"github.com/carryint/carryint/internal/domain/customer"
	"github.com/carryint/carryint/internal/domain/vendor"
	"github.com/carryint/carryint/internal/types"
	"github.com/carryint/carryint/internal/validator"
)

// CreateCustomerRequest registers a new billed party
type CreateCustomerRequest struct {
	Name      string             `json:"name" validate:"required"`
	Address   string             `json:"address"`
	Contact   string             `json:"contact"`
	Email     string             `json:"email,omitempty" validate:"omitempty,email"`
	VATNumber string             `json:"vat_number,omitempty"`
	Type      types.CustomerType `json:"type" validate:"required"`
}

func (r *CreateCustomerRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Type.Validate()
}

func (r *CreateCustomerRequest) ToCustomer() *customer.Customer {
	return &customer.Customer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:      r.Name,
		Address:   r.Address,
		Contact:   r.Contact,
		Email:     r.Email,
		VATNumber: r.VATNumber,
		Type:      r.Type,
		BaseModel: types.GetDefaultBaseModel(),
	}
}

// CustomerResponse wraps a customer together with its billing activity
type CustomerResponse struct {
	*customer.Customer

	// InvoiceCount and TotalBilled summarize the customer's invoices
	InvoiceCount int             `json:"invoice_count"`
	TotalBilled  decimal.Decimal `json:"total_billed"`
}

// CreateVendorRequest registers a new carrier
type CreateVendorRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

func (r *CreateVendorRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateVendorRequest) ToVendor() *vendor.Vendor {
	return &vendor.Vendor{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_VENDOR),
		Name:      r.Name,
		Contact:   r.Contact,
		Address:   r.Address,
		BaseModel: types.GetDefaultBaseModel(),
	}
}

// VendorResponse wraps a vendor together with its open payable balance
type VendorResponse struct {
	*vendor.Vendor

	// OutstandingPayable is the summed vendor cost of this vendor's
	// invoices whose vendor-facing balance is still open
	OutstandingPayable decimal.Decimal `json:"outstanding_payable"`
}
