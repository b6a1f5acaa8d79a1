package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/carryint/carryint/internal/errors"
	"github.com/carryint/carryint/internal/types"
)

// Invoice is a tax invoice issued to a customer. The billed customer's
// details are denormalized onto the invoice at creation time so that later
// edits to the customer record never alter a historical document. An
// invoice is immutable once created; corrections require a new invoice.
// The only stored field that changes afterwards is a payment status.
type Invoice struct {
	// ID is the unique identifier for the invoice
	ID string `json:"id"`

	// InvoiceNumber is the human-facing document number, e.g. INV-X8Q2A1
	InvoiceNumber string `json:"invoice_number"`

	// Date is the issue date of the invoice
	Date time.Time `json:"date"`

	// CustomerID references the customer record the snapshot was taken from
	CustomerID string `json:"customer_id"`

	// Snapshot of the billed customer at creation time
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	CustomerContact string `json:"customer_contact"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	CustomerVAT     string `json:"customer_vat,omitempty"`

	// DestinationCountry is where the shipment is bound
	DestinationCountry string `json:"destination_country"`

	// Items is the ordered list of freight lines on the invoice
	Items []LineItem `json:"items"`

	// VendorID and VendorName reference the optional carrier booked for
	// this shipment; VendorName is a snapshot like the customer fields
	VendorID   string `json:"vendor_id,omitempty"`
	VendorName string `json:"vendor_name,omitempty"`

	// VendorCost is what the vendor charges us for this shipment
	VendorCost decimal.Decimal `json:"vendor_cost"`

	// PaymentStatus tracks the customer-facing balance; VendorPaymentStatus
	// tracks what we owe the vendor. The two are independent.
	PaymentStatus       types.PaymentStatus `json:"status"`
	VendorPaymentStatus types.PaymentStatus `json:"vendor_status"`

	// Computed at creation by ComputeTotals and persisted
	NetAmount   decimal.Decimal `json:"net_amount"`
	TotalVAT    decimal.Decimal `json:"total_vat"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Profit      decimal.Decimal `json:"profit"`

	// CompanyTRN is the issuing company's tax registration number captured
	// at generation time
	CompanyTRN string `json:"company_trn,omitempty"`

	types.BaseModel
}

// ApplyTotals persists the computed amounts onto the invoice
func (i *Invoice) ApplyTotals(t Totals) {
	i.NetAmount = t.NetAmount
	i.TotalVAT = t.TotalVAT
	i.TotalAmount = t.TotalAmount
	i.Profit = t.Profit
}

// HasVendor reports whether a vendor is booked on this invoice
func (i *Invoice) HasVendor() bool {
	return i.VendorID != ""
}

// Validate checks the stored invoice against its own line items: the
// persisted totals must equal the recomputed sums exactly.
func (i *Invoice) Validate() error {
	if i.CustomerID == "" {
		return ierr.NewError("invoice validation failed").
			WithHint("customer is required").
			Mark(ierr.ErrValidation)
	}
	if err := i.PaymentStatus.Validate(); err != nil {
		return err
	}
	if err := i.VendorPaymentStatus.Validate(); err != nil {
		return err
	}
	for _, item := range i.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	if !i.TotalAmount.Equal(i.NetAmount.Add(i.TotalVAT)) {
		return ierr.NewError("invoice validation failed").
			WithHint("total amount must equal net amount plus total VAT").
			Mark(ierr.ErrValidation)
	}

	want := ComputeTotals(i.Items, i.VendorCost)
	if !i.NetAmount.Equal(want.NetAmount) || !i.TotalVAT.Equal(want.TotalVAT) ||
		!i.TotalAmount.Equal(want.TotalAmount) || !i.Profit.Equal(want.Profit) {
		return ierr.NewError("invoice validation failed").
			WithHint("stored totals do not match line items").
			Mark(ierr.ErrValidation)
	}

	return nil
}
