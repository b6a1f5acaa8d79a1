package dto

import (
	"github.com/shopspring/decimal"

	"github.com/carryint/carryint/internal/domain/invoice"
	ierr "github.com/carryint/carryint/internal/errors"
	"github.com/carryint/carryint/internal/validator"
)

// DefaultVATPercent is applied to a line when the request does not carry
// an explicit rate. It is a convenience of the request layer; the totals
// calculator accepts whatever rate each line ends up with.
var DefaultVATPercent = decimal.NewFromInt(5)

// CreateInvoiceLineItemRequest is one freight line on a new invoice
type CreateInvoiceLineItemRequest struct {
	CommodityType string           `json:"commodity_type" validate:"required"`
	Description   string           `json:"description"`
	Weight        decimal.Decimal  `json:"weight"`
	Quantity      int              `json:"quantity" validate:"gt=0"`
	COO           string           `json:"coo"`
	Price         decimal.Decimal  `json:"price"`
	VATPercent    *decimal.Decimal `json:"vat_percent,omitempty"`
}

// CreateInvoiceRequest creates a new tax invoice for a customer
type CreateInvoiceRequest struct {
	CustomerID         string                         `json:"customer_id" validate:"required"`
	DestinationCountry string                         `json:"destination_country" validate:"required"`
	Items              []CreateInvoiceLineItemRequest `json:"items" validate:"required,min=1,dive"`
	VendorID           string                         `json:"vendor_id,omitempty"`
	VendorCost         decimal.Decimal                `json:"vendor_cost"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.VendorCost.IsNegative() {
		return ierr.NewError("vendor cost must be non negative").
			WithHint("Vendor cost must be non negative").
			Mark(ierr.ErrValidation)
	}
	for _, item := range r.ToLineItems() {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToLineItems converts the request lines into domain line items,
// preserving order and applying the default VAT rate where none is given.
func (r *CreateInvoiceRequest) ToLineItems() []invoice.LineItem {
	items := make([]invoice.LineItem, len(r.Items))
	for i, req := range r.Items {
		vatPercent := DefaultVATPercent
		if req.VATPercent != nil {
			vatPercent = *req.VATPercent
		}
		items[i] = invoice.LineItem{
			CommodityType: req.CommodityType,
			Description:   req.Description,
			Weight:        req.Weight,
			Quantity:      req.Quantity,
			COO:           req.COO,
			Price:         req.Price,
			VATPercent:    vatPercent,
		}
	}
	return items
}

// InvoiceResponse wraps an invoice for the presentation layer
type InvoiceResponse struct {
	*invoice.Invoice
}
