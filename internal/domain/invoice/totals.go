package invoice

import (
	"github.com/shopspring/decimal"
)

// Totals are the invoice-level computed amounts persisted onto an invoice
// at creation time.
type Totals struct {
	// NetAmount is the pre-VAT subtotal over all lines
	NetAmount decimal.Decimal `json:"net_amount"`

	// TotalVAT is the VAT accumulated over all lines
	TotalVAT decimal.Decimal `json:"total_vat"`

	// TotalAmount is NetAmount + TotalVAT
	TotalAmount decimal.Decimal `json:"total_amount"`

	// Profit is TotalAmount minus the vendor cost; negative values
	// represent a loss and are preserved as-is
	Profit decimal.Decimal `json:"profit"`
}

// ComputeTotals derives the invoice totals from its line items and the
// vendor cost. Amounts are accumulated at full precision and only rounded
// by display layers: summing line-rounded values would drift from the true
// total. The function is pure and performs no validation; constraining
// inputs to the non-negative domain is the caller's job.
//
// With no line items every total is zero and profit is -vendorCost.
func ComputeTotals(items []LineItem, vendorCost decimal.Decimal) Totals {
	netAmount := decimal.Zero
	totalVAT := decimal.Zero

	for _, item := range items {
		netAmount = netAmount.Add(item.Net())
		totalVAT = totalVAT.Add(item.VAT())
	}

	totalAmount := netAmount.Add(totalVAT)

	return Totals{
		NetAmount:   netAmount,
		TotalVAT:    totalVAT,
		TotalAmount: totalAmount,
		Profit:      totalAmount.Sub(vendorCost),
	}
}
