package invoice

import (
	"github.com/shopspring/decimal"

	ierr "github.com/carryint/carryint/internal/errors"
)

// LineItem is a single freight line on an invoice. Line items have no
// identity of their own; they are owned by exactly one invoice and their
// order within it is the display order on the rendered document.
type LineItem struct {
	// CommodityType is the cargo category, e.g. "General Cargo"
	CommodityType string `json:"commodity_type"`

	// Description is free text shown on the invoice
	Description string `json:"description"`

	// Weight is the chargeable weight in kilograms
	Weight decimal.Decimal `json:"weight"`

	// Quantity is the number of units billed
	Quantity int `json:"quantity"`

	// COO is the country-of-origin code of the cargo
	COO string `json:"coo"`

	// Price is the unit price in AED
	Price decimal.Decimal `json:"price"`

	// VATPercent is the VAT rate applied to this line, typically 5
	VATPercent decimal.Decimal `json:"vat_percent"`
}

// Net returns the pre-VAT line amount: price x quantity
func (li LineItem) Net() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// VAT returns the VAT charged on this line
func (li LineItem) VAT() decimal.Decimal {
	return li.Net().Mul(li.VATPercent).Div(decimal.NewFromInt(100))
}

// Gross returns the line amount including VAT
func (li LineItem) Gross() decimal.Decimal {
	return li.Net().Add(li.VAT())
}

// Validate constrains the line to the non-negative input domain. This runs
// on the creation path only; the totals calculator itself accepts whatever
// it is given.
func (li LineItem) Validate() error {
	if li.Price.IsNegative() {
		return ierr.NewError("line item validation failed").
			WithHint("price must be non negative").
			Mark(ierr.ErrValidation)
	}
	if li.Quantity <= 0 {
		return ierr.NewError("line item validation failed").
			WithHint("quantity must be positive").
			Mark(ierr.ErrValidation)
	}
	if li.Weight.IsNegative() {
		return ierr.NewError("line item validation failed").
			WithHint("weight must be non negative").
			Mark(ierr.ErrValidation)
	}
	if li.VATPercent.IsNegative() {
		return ierr.NewError("line item validation failed").
			WithHint("vat percent must be non negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
