package statement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carryint/carryint/internal/domain/invoice"
	"github.com/carryint/carryint/internal/types"
)

func testInvoices(now time.Time) []*invoice.Invoice {
	return []*invoice.Invoice{
		{
			ID:                  "inv_1",
			InvoiceNumber:       "INV-000001",
			Date:                now.Add(-10 * 24 * time.Hour),
			CustomerID:          "a",
			PaymentStatus:       types.PaymentStatusUnpaid,
			VendorID:            "v1",
			VendorPaymentStatus: types.PaymentStatusUnpaid,
			TotalAmount:         decimal.NewFromInt(500),
			VendorCost:          decimal.NewFromInt(300),
		},
		{
			ID:                  "inv_2",
			InvoiceNumber:       "INV-000002",
			Date:                now.Add(-5 * 24 * time.Hour),
			CustomerID:          "b",
			PaymentStatus:       types.PaymentStatusPaid,
			VendorID:            "v1",
			VendorPaymentStatus: types.PaymentStatusPaid,
			TotalAmount:         decimal.NewFromInt(300),
			VendorCost:          decimal.NewFromInt(100),
		},
		{
			ID:            "inv_3",
			InvoiceNumber: "INV-000003",
			Date:          now.Add(-40 * 24 * time.Hour),
			CustomerID:    "a",
			PaymentStatus: types.PaymentStatusPartial,
			// no vendor booked; never appears on a payables statement
			TotalAmount: decimal.NewFromInt(250),
			VendorCost:  decimal.Zero,
		},
		{
			ID:                  "inv_4",
			InvoiceNumber:       "INV-000004",
			Date:                now.Add(-2 * 24 * time.Hour),
			CustomerID:          "c",
			PaymentStatus:       types.PaymentStatusPaid,
			VendorID:            "v2",
			VendorPaymentStatus: types.PaymentStatusUnpaid,
			TotalAmount:         decimal.NewFromInt(900),
			VendorCost:          decimal.NewFromInt(650),
		},
	}
}

func TestBuildReceivables(t *testing.T) {
	now := time.Now().UTC()
	invoices := []*invoice.Invoice{
		{ID: "inv_a", CustomerID: "a", PaymentStatus: types.PaymentStatusUnpaid, TotalAmount: decimal.NewFromInt(500), Date: now},
		{ID: "inv_b", CustomerID: "b", PaymentStatus: types.PaymentStatusPaid, TotalAmount: decimal.NewFromInt(300), Date: now},
	}

	got := Build(invoices, types.StatementTypeReceivables, EntityFilterAll, now)

	require.Len(t, got.Items, 1)
	assert.Equal(t, "inv_a", got.Items[0].Invoice.ID)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(500)), "total: %s", got.Total)
}

func TestBuildReceivablesTreatsPartialAsOpen(t *testing.T) {
	now := time.Now().UTC()
	got := Build(testInvoices(now), types.StatementTypeReceivables, "", now)

	ids := make([]string, 0, len(got.Items))
	for _, item := range got.Items {
		ids = append(ids, item.Invoice.ID)
	}
	assert.ElementsMatch(t, []string{"inv_1", "inv_3"}, ids)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(750)), "total: %s", got.Total)
}

func TestBuildPayables(t *testing.T) {
	now := time.Now().UTC()
	got := Build(testInvoices(now), types.StatementTypePayables, EntityFilterAll, now)

	ids := make([]string, 0, len(got.Items))
	for _, item := range got.Items {
		ids = append(ids, item.Invoice.ID)
	}
	// inv_3 has an open customer balance but no vendor booked
	assert.ElementsMatch(t, []string{"inv_1", "inv_4"}, ids)

	// payables total the vendor cost, not the invoice amount
	assert.True(t, got.Total.Equal(decimal.NewFromInt(950)), "total: %s", got.Total)
}

func TestBuildEntityFilter(t *testing.T) {
	now := time.Now().UTC()
	invoices := testInvoices(now)

	receivables := Build(invoices, types.StatementTypeReceivables, "a", now)
	require.Len(t, receivables.Items, 2)
	for _, item := range receivables.Items {
		assert.Equal(t, "a", item.Invoice.CustomerID)
	}

	payables := Build(invoices, types.StatementTypePayables, "v2", now)
	require.Len(t, payables.Items, 1)
	assert.Equal(t, "inv_4", payables.Items[0].Invoice.ID)
	assert.True(t, payables.Total.Equal(decimal.NewFromInt(650)))
}

func TestDaysOpenBoundary(t *testing.T) {
	now := time.Now().UTC()
	invoices := []*invoice.Invoice{
		{
			ID:            "inv_old",
			CustomerID:    "a",
			PaymentStatus: types.PaymentStatusUnpaid,
			Date:          now.Add(-31 * 24 * time.Hour),
			TotalAmount:   decimal.NewFromInt(100),
		},
	}

	got := Build(invoices, types.StatementTypeReceivables, "", now)

	require.Len(t, got.Items, 1)
	// exactly 31 whole days, not 30 or 32; the presentation layer flags
	// anything over 30 as overdue
	assert.Equal(t, 31, got.Items[0].DaysOpen)
}

func TestDaysOpenFloorsPartialDays(t *testing.T) {
	now := time.Now().UTC()
	invoices := []*invoice.Invoice{
		{
			ID:            "inv_recent",
			CustomerID:    "a",
			PaymentStatus: types.PaymentStatusUnpaid,
			Date:          now.Add(-(3*24 + 23) * time.Hour),
			TotalAmount:   decimal.NewFromInt(100),
		},
	}

	got := Build(invoices, types.StatementTypeReceivables, "", now)

	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].DaysOpen)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	now := time.Now().UTC()
	invoices := testInvoices(now)
	before := invoices[0].TotalAmount

	_ = Build(invoices, types.StatementTypeReceivables, EntityFilterAll, now)
	_ = Build(invoices, types.StatementTypePayables, EntityFilterAll, now)

	assert.True(t, invoices[0].TotalAmount.Equal(before))
	assert.Len(t, invoices, 4)
}
