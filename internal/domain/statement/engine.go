package statement

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/carryint/carryint/internal/domain/invoice"
	"github.com/carryint/carryint/internal/types"
)

// EntityFilterAll is the sentinel meaning "no entity restriction"
const EntityFilterAll = "all"

// Item is one open invoice on a statement together with its age.
type Item struct {
	Invoice *invoice.Invoice `json:"invoice"`

	// DaysOpen is the whole number of days elapsed since the issue date,
	// recomputed on every build and never stored. Overdue policy (the
	// 30-day threshold) belongs to the caller, not the engine.
	DaysOpen int `json:"days_open"`

	// Amount is the direction-relevant open amount: the invoice total for
	// receivables, the vendor cost for payables
	Amount decimal.Decimal `json:"amount"`
}

// Statement is the filtered open-item view over the invoice set.
type Statement struct {
	Type  types.StatementType `json:"type"`
	Items []Item              `json:"items"`
	Total decimal.Decimal     `json:"total"`
}

// Build projects the invoice set into an aging statement. Receivables
// select invoices whose customer-facing status is open; payables select
// invoices that have a vendor booked and whose vendor-facing status is
// open. An entityID narrows the selection to one customer (receivables)
// or one vendor (payables); empty or EntityFilterAll means everything.
//
// The projection is pure: it never mutates the input and holds no state.
func Build(invoices []*invoice.Invoice, statementType types.StatementType, entityID string, now time.Time) Statement {
	open := lo.Filter(invoices, func(inv *invoice.Invoice, _ int) bool {
		return selects(inv, statementType, entityID)
	})

	items := make([]Item, 0, len(open))
	total := decimal.Zero
	for _, inv := range open {
		amount := inv.TotalAmount
		if statementType == types.StatementTypePayables {
			amount = inv.VendorCost
		}
		items = append(items, Item{
			Invoice:  inv,
			DaysOpen: daysOpen(inv.Date, now),
			Amount:   amount,
		})
		total = total.Add(amount)
	}

	return Statement{
		Type:  statementType,
		Items: items,
		Total: total,
	}
}

func selects(inv *invoice.Invoice, statementType types.StatementType, entityID string) bool {
	switch statementType {
	case types.StatementTypePayables:
		if !inv.HasVendor() || inv.VendorPaymentStatus.IsSettled() {
			return false
		}
		return matchesEntity(entityID, inv.VendorID)
	default:
		if inv.PaymentStatus.IsSettled() {
			return false
		}
		return matchesEntity(entityID, inv.CustomerID)
	}
}

func matchesEntity(entityID, id string) bool {
	return entityID == "" || entityID == EntityFilterAll || entityID == id
}

func daysOpen(issued, now time.Time) int {
	return int(now.Sub(issued) / (24 * time.Hour))
}
